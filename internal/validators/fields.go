package validators

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/peoplescope/peoplescope/models"
)

// Advisory field checks. Each function is pure and total: it never panics
// and never returns an error, only a models.ValidationResult carrying the
// collected messages. Nothing in the search pipeline enforces these; they
// exist for callers that want to surface feedback on individual values.

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern = regexp.MustCompile(`^\+?[0-9]{10,15}$`)

	// characters routinely found in formatted phone numbers
	phoneFormatting = strings.NewReplacer(" ", "", "-", "", "(", "", ")", "", ".", "")
)

func valid() models.ValidationResult {
	return models.ValidationResult{IsValid: true}
}

func invalid(messages ...string) models.ValidationResult {
	return models.ValidationResult{IsValid: false, Errors: messages}
}

// ValidateEmail checks that value looks like an email address: a local
// part, an @, and a dotted domain, none containing whitespace.
func ValidateEmail(value string) models.ValidationResult {
	if !emailPattern.MatchString(strings.TrimSpace(value)) {
		return invalid("invalid email address")
	}
	return valid()
}

// ValidatePhone checks that value is a plausible phone number: 10 to 15
// digits with an optional leading +, ignoring common formatting characters.
func ValidatePhone(value string) models.ValidationResult {
	stripped := phoneFormatting.Replace(strings.TrimSpace(value))
	if !phonePattern.MatchString(stripped) {
		return invalid("invalid phone number")
	}
	return valid()
}

// ValidateAge checks that age falls in the adult range 18-120.
func ValidateAge(age int) models.ValidationResult {
	if age < minAge || age > maxAge {
		return invalid(fmt.Sprintf("age must be between %d and %d", minAge, maxAge))
	}
	return valid()
}

// ValidateRating checks that rating falls in the 1-5 score range.
func ValidateRating(rating float64) models.ValidationResult {
	if rating < minRating || rating > maxRating {
		return invalid(fmt.Sprintf("rating must be between %.0f and %.0f", minRating, maxRating))
	}
	return valid()
}

// ValidateSearchQuery checks that query is non-empty after trimming.
func ValidateSearchQuery(query string) models.ValidationResult {
	if strings.TrimSpace(query) == "" {
		return invalid("search query cannot be empty")
	}
	return valid()
}

// ValidateImageFilename checks that filename carries one of the allowed
// profile image extensions (.jpg, .jpeg, .png, .gif, .webp), ignoring case.
func ValidateImageFilename(filename string) models.ValidationResult {
	if !hasAllowedImageExtension(filename) {
		return invalid("image must be a .jpg, .jpeg, .png, .gif or .webp file")
	}
	return valid()
}

// ValidatePersonRecord runs every field check against person and merges the
// results, so all problems are reported at once rather than first-error-only.
// An empty Image is fine; a present one must pass ValidateImageFilename.
func ValidatePersonRecord(person models.Person) models.ValidationResult {
	result := valid()

	if person.ID <= 0 {
		result = result.Merge(invalid("invalid person ID"))
	}
	if strings.TrimSpace(person.Name) == "" {
		result = result.Merge(invalid("name is required"))
	}
	if strings.TrimSpace(person.Gender) == "" {
		result = result.Merge(invalid("gender is required"))
	}
	if strings.TrimSpace(person.MaritalStatus) == "" {
		result = result.Merge(invalid("marital status is required"))
	}
	if strings.TrimSpace(person.Location) == "" {
		result = result.Merge(invalid("location is required"))
	}
	result = result.Merge(ValidateAge(person.Age))
	result = result.Merge(ValidateRating(person.Rating))
	if person.Image != "" {
		result = result.Merge(ValidateImageFilename(person.Image))
	}

	return result
}
