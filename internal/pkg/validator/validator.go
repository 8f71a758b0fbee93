package validator

// Validator validates request and dependency structs.
type Validator interface {
	// Validate returns nil when data satisfies its `validate` tags.
	Validate(data any) error
}
