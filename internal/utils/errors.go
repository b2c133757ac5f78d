package utils

import "fmt"

// ErrorWrappers provides common error wrapping patterns used throughout the codebase
// to reduce duplication and ensure consistent error formatting.

// WrapParseError wraps an error with a "failed to parse" message
func WrapParseError(item string, err error) error {
	return fmt.Errorf("failed to parse %s: %w", item, err)
}

// WrapLoadError wraps an error with a "failed to load" message
func WrapLoadError(item string, err error) error {
	return fmt.Errorf("failed to load %s: %w", item, err)
}

// WrapValidateError wraps an error with a "failed to validate" message
func WrapValidateError(item string, err error) error {
	return fmt.Errorf("failed to validate %s: %w", item, err)
}
