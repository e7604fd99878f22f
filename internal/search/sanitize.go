package search

import "github.com/peoplescope/peoplescope/models"

// ValidateResult is the advisory completeness check applied before a record
// enters the pipeline: every required field must carry a value. Image is
// optional. Domain bounds (age 18–120, rating 1–5) are deliberately NOT
// checked here — those live in the validators package and never gate the
// pipeline.
func ValidateResult(candidate models.Person) bool {
	switch {
	case candidate.ID <= 0:
		return false
	case candidate.Name == "":
		return false
	case candidate.Age <= 0:
		return false
	case candidate.Gender == "":
		return false
	case candidate.MaritalStatus == "":
		return false
	case candidate.Location == "":
		return false
	case candidate.Rating <= 0:
		return false
	default:
		return true
	}
}

// SanitizeResults keeps only the candidates passing [ValidateResult],
// silently discarding the rest. There is no partial-record repair.
// Idempotent: sanitizing an already-sanitized slice changes nothing.
func SanitizeResults(candidates []models.Person) []models.Person {
	valid := make([]models.Person, 0, len(candidates))
	for _, c := range candidates {
		if ValidateResult(c) {
			valid = append(valid, c)
		}
	}

	return valid
}
