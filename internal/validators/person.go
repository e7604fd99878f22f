package validators

import (
	"context"
	"strings"

	"github.com/peoplescope/peoplescope/models"
)

// Field name constants used to specify which fields should be validated.
// These constants are passed to Validate to restrict validation to a subset
// of fields (field-level scoping).
const (
	// FieldPersonID targets the numeric identifier of a person record.
	FieldPersonID = "person_id"

	// FieldName targets the full display name of a person.
	FieldName = "name"

	// FieldAge targets the age field, bounded to the 18-120 adult range.
	FieldAge = "age"

	// FieldGender targets the gender field.
	FieldGender = "gender"

	// FieldMaritalStatus targets the marital status field.
	FieldMaritalStatus = "marital_status"

	// FieldLocation targets the "City, ST" location field.
	FieldLocation = "location"

	// FieldRating targets the 1-5 reputation score.
	FieldRating = "rating"

	// FieldImage targets the optional profile image filename.
	FieldImage = "image"

	// FieldLogin targets the login of an account request.
	FieldLogin = "login"

	// FieldPassword targets the plaintext password of an account request.
	FieldPassword = "password"
)

// allowedImageExtensions is the exhaustive set of profile image file
// extensions accepted by the validator. Matching is case-insensitive.
var allowedImageExtensions = []string{".jpg", ".jpeg", ".png", ".gif", ".webp"}

const (
	minAge = 18
	maxAge = 120

	minRating = 1.0
	maxRating = 5.0
)

// PersonValidator implements the Validator interface for the person and
// user domain models.
//
// It supports both value and pointer receivers for every model type
// and allows optional field-level scoping via variadic field name arguments.
type PersonValidator struct {
}

// NewPersonValidator constructs a new PersonValidator
// and returns it as the Validator interface.
func NewPersonValidator() Validator {
	return &PersonValidator{}
}

// Validate dispatches validation to the appropriate type-specific method
// based on the dynamic type of obj. Both value and pointer forms of each
// supported model are accepted.
//
// Supported types:
//   - models.Person / *models.Person
//   - models.User / *models.User
//
// Returns ErrUnsupportedType if obj does not match any known model.
// Optional fields restrict validation to the named subset; when omitted,
// a sensible default set of fields is validated.
func (v *PersonValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Person:
		return v.validatePerson(ctx, value, fields...)
	case *models.Person:
		return v.validatePerson(ctx, *value, fields...)

	case models.User:
		return v.validateUser(ctx, value, fields...)
	case *models.User:
		return v.validateUser(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// hasAllowedImageExtension reports whether filename ends in one of the
// recognized profile image extensions.
func hasAllowedImageExtension(filename string) bool {
	lowered := strings.ToLower(filename)
	for _, ext := range allowedImageExtensions {
		if strings.HasSuffix(lowered, ext) && len(lowered) > len(ext) {
			return true
		}
	}
	return false
}

// validatePerson validates a single Person model.
//
// Default validated fields (when none specified):
// PersonID, Name, Age, Gender, MaritalStatus, Location, Rating, Image.
//
// The Image field is optional: an empty value passes, a present value must
// carry an allowed extension.
//
// Returns the first encountered validation error or nil.
func (v *PersonValidator) validatePerson(ctx context.Context, person models.Person, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldPersonID, FieldName, FieldAge, FieldGender, FieldMaritalStatus, FieldLocation, FieldRating, FieldImage}
	}

	for _, f := range fields {
		switch f {
		case FieldPersonID:
			if person.ID <= 0 {
				return ErrInvalidPersonID
			}
		case FieldName:
			if strings.TrimSpace(person.Name) == "" {
				return ErrEmptyName
			}
		case FieldAge:
			if person.Age < minAge || person.Age > maxAge {
				return ErrInvalidAge
			}
		case FieldGender:
			if strings.TrimSpace(person.Gender) == "" {
				return ErrEmptyGender
			}
		case FieldMaritalStatus:
			if strings.TrimSpace(person.MaritalStatus) == "" {
				return ErrEmptyMaritalStatus
			}
		case FieldLocation:
			if strings.TrimSpace(person.Location) == "" {
				return ErrEmptyLocation
			}
		case FieldRating:
			if person.Rating < minRating || person.Rating > maxRating {
				return ErrInvalidRating
			}
		case FieldImage:
			if person.Image != "" && !hasAllowedImageExtension(person.Image) {
				return ErrInvalidImageFilename
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateUser validates an inbound account request.
//
// Default validated fields: Login, Password.
func (v *PersonValidator) validateUser(ctx context.Context, user models.User, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldLogin, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldLogin:
			if strings.TrimSpace(user.Login) == "" {
				return ErrEmptyLogin
			}
		case FieldPassword:
			if user.Password == "" {
				return ErrEmptyPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
