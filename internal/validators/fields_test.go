package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/peoplescope/peoplescope/models"
)

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"ann@example.com", true},
		{"first.last@sub.example.co", true},
		{"  ann@example.com  ", true},
		{"", false},
		{"ann", false},
		{"ann@example", false},
		{"ann example@test.com", false},
		{"@example.com", false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidateEmail(tt.value).IsValid)
		})
	}
}

func TestValidatePhone(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"5550100200", true},
		{"+15550100200", true},
		{"(555) 010-0200", true},
		{"555.010.0200", true},
		{"", false},
		{"12345", false},
		{"555-010-ABCD", false},
		{"+1234567890123456", false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidatePhone(tt.value).IsValid)
		})
	}
}

func TestValidateAge_Bounds(t *testing.T) {
	assert.False(t, ValidateAge(17).IsValid)
	assert.True(t, ValidateAge(18).IsValid)
	assert.True(t, ValidateAge(120).IsValid)
	assert.False(t, ValidateAge(121).IsValid)
}

func TestValidateRating_Bounds(t *testing.T) {
	assert.False(t, ValidateRating(0.99).IsValid)
	assert.True(t, ValidateRating(1).IsValid)
	assert.True(t, ValidateRating(5).IsValid)
	assert.False(t, ValidateRating(5.01).IsValid)
}

func TestValidateSearchQuery(t *testing.T) {
	assert.True(t, ValidateSearchQuery("jane doe").IsValid)
	assert.False(t, ValidateSearchQuery("").IsValid)
	assert.False(t, ValidateSearchQuery("   \t ").IsValid)
}

func TestValidateImageFilename(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"avatar.jpg", true},
		{"avatar.jpeg", true},
		{"avatar.png", true},
		{"avatar.gif", true},
		{"avatar.webp", true},
		{"AVATAR.JPG", true},
		{"avatar.bmp", false},
		{"avatar", false},
		{".png", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidateImageFilename(tt.value).IsValid)
		})
	}
}

// TestValidatePersonRecord_CollectsAllErrors verifies that every violated
// rule contributes a message instead of stopping at the first failure.
func TestValidatePersonRecord_CollectsAllErrors(t *testing.T) {
	result := ValidatePersonRecord(models.Person{})

	assert.False(t, result.IsValid)
	assert.Len(t, result.Errors, 7)
}

func TestValidatePersonRecord_Valid(t *testing.T) {
	result := ValidatePersonRecord(validPerson())

	assert.True(t, result.IsValid)
	assert.Empty(t, result.Errors)
}
