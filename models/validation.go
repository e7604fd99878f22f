package models

// ValidationResult is the structured outcome of an advisory validation
// check. Validators never panic or return Go errors for bad input; callers
// decide how to surface the collected messages.
type ValidationResult struct {
	// IsValid is true when no validation rule was violated.
	IsValid bool `json:"isValid"`

	// Errors lists one human-readable message per violated rule, in the
	// order the rules were evaluated.
	Errors []string `json:"errors"`
}

// Merge folds another result into r: validity is AND-ed and error messages
// are appended in order.
func (r ValidationResult) Merge(other ValidationResult) ValidationResult {
	return ValidationResult{
		IsValid: r.IsValid && other.IsValid,
		Errors:  append(append([]string{}, r.Errors...), other.Errors...),
	}
}
