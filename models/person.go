package models

// Person is a single people-search result record. All fields except Image
// are required; Age and Rating are expected within sane domain bounds
// (18–120 and 1.0–5.0) but repositories and the search pipeline never
// reject out-of-bound values — bounds are enforced only by the advisory
// validators package.
type Person struct {
	// ID is the internal unique identifier of the person record.
	ID int64 `json:"id"`

	// Name is the person's full display name.
	Name string `json:"name"`

	// Age in whole years.
	Age int `json:"age"`

	// Gender is a free-form attribute string (e.g. "Female").
	Gender string `json:"gender"`

	// MaritalStatus is a free-form attribute string (e.g. "Married").
	MaritalStatus string `json:"maritalStatus"`

	// Location is the person's last known location ("City, ST").
	Location string `json:"location"`

	// Rating is the aggregate record confidence score, conventionally
	// between 1.0 and 5.0.
	Rating float64 `json:"rating"`

	// References counts cross-referenced source documents.
	References int `json:"references"`

	// Companies counts linked company affiliations.
	Companies int `json:"companies"`

	// Contacts counts known associated contacts.
	Contacts int `json:"contacts"`

	// Image is an optional avatar reference (URL or file name).
	Image string `json:"image,omitempty"`
}

// TableName returns the name of the database table
// associated with the Person model.
func (p Person) TableName() string {
	return "people"
}
