package models

import "fmt"

// GeneratorError represents an error that occurred during code generation
type GeneratorError struct {
	Type    ErrorType // type of error
	File    string    // entries file, empty for the built-in list
	Line    int       // 1-based entry index
	Message string    // error message
	Cause   error     // underlying error cause
}

// Error implements the error interface
func (e *GeneratorError) Error() string {
	if e.File != "" && e.Line > 0 {
		return fmt.Sprintf("%s:%d: %s", e.File, e.Line, e.Message)
	}
	if e.File != "" {
		return fmt.Sprintf("%s: %s", e.File, e.Message)
	}
	if e.Line > 0 {
		return fmt.Sprintf("entry %d: %s", e.Line, e.Message)
	}
	return e.Message
}

// Unwrap returns the underlying error cause
func (e *GeneratorError) Unwrap() error {
	return e.Cause
}
