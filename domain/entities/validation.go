package entities

// ValidationResult represents the outcome of validating a document against its schema.
type ValidationResult struct {
	Valid  bool
	Errors []ValidationError
}

// ValidationError is one schema violation; Field is the JSON pointer of the offending node.
type ValidationError struct {
	Field   string
	Message string
}
