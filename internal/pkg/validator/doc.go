// Package validator checks structs against their `validate` tags and reports
// failures per field.
//
// Callers depend on the Validator interface. V10Validator is the
// go-playground/validator v10 implementation with English messages.
package validator
