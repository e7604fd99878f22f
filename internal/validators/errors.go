package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidPersonID      = errors.New("invalid person ID")
	ErrEmptyName            = errors.New("name is required")
	ErrEmptyGender          = errors.New("gender is required")
	ErrEmptyMaritalStatus   = errors.New("marital status is required")
	ErrEmptyLocation        = errors.New("location is required")
	ErrInvalidAge           = errors.New("invalid age")
	ErrInvalidRating        = errors.New("invalid rating")
	ErrInvalidImageFilename = errors.New("invalid image filename")

	ErrEmptyLogin    = errors.New("login is required")
	ErrEmptyPassword = errors.New("password is required")
	ErrEmptyQuery    = errors.New("search query cannot be empty")
)
