package models

// ErrorType represents different types of generator errors
type ErrorType int

const (
	ErrorTypeMalformedEntry ErrorType = iota
	ErrorTypeConfiguration
	ErrorTypeGeneration
	ErrorTypeFileSystem
)

// String returns a human readable name for the error type
func (t ErrorType) String() string {
	switch t {
	case ErrorTypeMalformedEntry:
		return "Malformed Entry"
	case ErrorTypeConfiguration:
		return "Configuration Error"
	case ErrorTypeGeneration:
		return "Code Generation Error"
	case ErrorTypeFileSystem:
		return "File System Error"
	default:
		return "Unknown Error"
	}
}

// GenerationSummary contains information about a finished run
type GenerationSummary struct {
	EntriesProcessed int
	StructsGenerated int
	FieldsGenerated  int
	Base             string
	Source           string // "built-in" or the entries file path
}
