package services

// ValidationError reports request fields that failed validation, keyed by
// their JSON names.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string { return "Validation error" }
