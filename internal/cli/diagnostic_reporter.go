package cli

import (
	stderrors "errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/fatih/color"

	"github.com/toyz/exprgen/internal/errors"
	"github.com/toyz/exprgen/internal/models"
)

// DiagnosticReporter provides user-friendly error reporting and diagnostics
type DiagnosticReporter struct {
	verbose bool
	out     io.Writer
}

// NewDiagnosticReporter creates a new diagnostic reporter writing to out
func NewDiagnosticReporter(verbose bool, out io.Writer) *DiagnosticReporter {
	return &DiagnosticReporter{
		verbose: verbose,
		out:     out,
	}
}

// ReportError provides comprehensive error reporting with user-friendly output
func (r *DiagnosticReporter) ReportError(err error) {
	red := color.New(color.FgRed, color.Bold)
	red.Fprintf(r.out, "\nERROR: Generation Failed\n")
	fmt.Fprintf(r.out, "========================\n\n")

	var multi *errors.MultipleErrors
	var genErr *models.GeneratorError
	var coded errors.ExprgenError

	switch {
	case stderrors.As(err, &multi):
		r.reportMultipleErrors(multi)
	case stderrors.As(err, &genErr):
		r.reportGeneratorError(genErr)
	case stderrors.As(err, &coded):
		r.printErrorHeader(typeForCode(coded.ErrorCode()))
		fmt.Fprintf(r.out, "Message: %s\n\n", coded.Error())
		r.reportDetails(coded)
		r.printAdditionalHelp(typeForCode(coded.ErrorCode()))
	default:
		r.reportBasicError(err)
	}

	fmt.Fprintf(r.out, "\n")
}

// reportGeneratorError reports a GeneratorError with full context and suggestions
func (r *DiagnosticReporter) reportGeneratorError(genErr *models.GeneratorError) {
	r.printErrorHeader(genErr.Type)

	fmt.Fprintf(r.out, "Message: %s\n\n", genErr.Message)

	if genErr.File != "" {
		if genErr.Line > 0 {
			fmt.Fprintf(r.out, "Location: %s:%d\n\n", genErr.File, genErr.Line)
		} else {
			fmt.Fprintf(r.out, "File: %s\n\n", genErr.File)
		}
	} else if genErr.Line > 0 {
		fmt.Fprintf(r.out, "Location: entry %d\n\n", genErr.Line)
	}

	var coded errors.ExprgenError
	if stderrors.As(genErr.Cause, &coded) {
		r.reportDetails(coded)
	} else if r.verbose && genErr.Cause != nil {
		fmt.Fprintf(r.out, "Underlying cause: %s\n\n", genErr.Cause.Error())
	}

	r.printAdditionalHelp(genErr.Type)
}

// reportMultipleErrors lists every collected error
func (r *DiagnosticReporter) reportMultipleErrors(multi *errors.MultipleErrors) {
	r.printErrorHeader(typeForCode(multi.ErrorCode()))
	fmt.Fprintf(r.out, "Found %d malformed entries:\n\n", multi.Count())

	for i, err := range multi.Errors {
		fmt.Fprintf(r.out, "  %d. %s\n", i+1, err.Error())
	}
	fmt.Fprintf(r.out, "\n")

	if suggestions := multi.Suggestions(); len(suggestions) > 0 {
		r.printSuggestions(suggestions)
	}
	r.printAdditionalHelp(models.ErrorTypeMalformedEntry)
}

// reportDetails prints context and suggestions of a coded error
func (r *DiagnosticReporter) reportDetails(coded errors.ExprgenError) {
	if context := coded.Context(); len(context) > 0 {
		r.printContext(context)
	}
	if suggestions := coded.Suggestions(); len(suggestions) > 0 {
		r.printSuggestions(suggestions)
	}
	if r.verbose {
		r.printErrorChain(coded)
	}
}

// reportBasicError reports a basic error without rich context
func (r *DiagnosticReporter) reportBasicError(err error) {
	fmt.Fprintf(r.out, "Message: %s\n\n", err.Error())

	errorMsg := strings.ToLower(err.Error())
	if strings.Contains(errorMsg, "flag") || strings.Contains(errorMsg, "argument") {
		fmt.Fprintf(r.out, "Run with --help to see the supported options.\n")
	}
}

// printErrorHeader prints a formatted error header based on error type
func (r *DiagnosticReporter) printErrorHeader(errorType models.ErrorType) {
	title := errorType.String()
	fmt.Fprintf(r.out, "Type: %s\n", title)
	fmt.Fprintf(r.out, "%s\n\n", strings.Repeat("-", len(title)+6))
}

// printContext prints context information in a readable format
func (r *DiagnosticReporter) printContext(context map[string]interface{}) {
	fmt.Fprintf(r.out, "Context:\n")

	importantKeys := []string{
		errors.ContextEntryIndex,
		errors.ContextRawEntry,
		errors.ContextFieldIndex,
		errors.ContextReason,
	}
	printed := make(map[string]bool)

	for _, key := range importantKeys {
		if value, exists := context[key]; exists {
			fmt.Fprintf(r.out, "   %s: %v\n", r.formatContextKey(key), value)
			printed[key] = true
		}
	}

	remaining := make([]string, 0, len(context))
	for key := range context {
		if !printed[key] {
			remaining = append(remaining, key)
		}
	}
	sort.Strings(remaining)
	for _, key := range remaining {
		fmt.Fprintf(r.out, "   %s: %v\n", r.formatContextKey(key), context[key])
	}

	fmt.Fprintf(r.out, "\n")
}

// formatContextKey formats context keys to be more readable
func (r *DiagnosticReporter) formatContextKey(key string) string {
	switch key {
	case errors.ContextEntryIndex:
		return "Entry"
	case errors.ContextRawEntry:
		return "Line"
	case errors.ContextFieldIndex:
		return "Field"
	case errors.ContextReason:
		return "Reason"
	default:
		// Convert snake_case to Title Case
		parts := strings.Split(key, "_")
		for i, part := range parts {
			if len(part) > 0 {
				parts[i] = strings.ToUpper(part[:1]) + part[1:]
			}
		}
		return strings.Join(parts, " ")
	}
}

// printSuggestions prints actionable suggestions
func (r *DiagnosticReporter) printSuggestions(suggestions []string) {
	fmt.Fprintf(r.out, "Suggestions:\n")
	for i, suggestion := range suggestions {
		fmt.Fprintf(r.out, "   %d. %s\n", i+1, suggestion)
	}
	fmt.Fprintf(r.out, "\n")
}

// printAdditionalHelp prints additional help based on error type
func (r *DiagnosticReporter) printAdditionalHelp(errorType models.ErrorType) {
	switch errorType {
	case models.ErrorTypeMalformedEntry:
		fmt.Fprintf(r.out, "Entry Format:\n")
		fmt.Fprintf(r.out, "  - Name : Type1 field1, Type2 field2\n")
		fmt.Fprintf(r.out, "  - Each field is exactly a type and a name separated by whitespace\n")
		fmt.Fprintf(r.out, "  - Use --check to list every malformed entry at once\n\n")

	case models.ErrorTypeConfiguration:
		fmt.Fprintf(r.out, "Configuration Help:\n")
		fmt.Fprintf(r.out, "  - Flags override EXPRGEN_* environment variables\n")
		fmt.Fprintf(r.out, "  - Run with --help to see the supported options\n\n")
	}
}

// printErrorChain prints the wrapped causes in verbose mode
func (r *DiagnosticReporter) printErrorChain(err error) {
	cause := stderrors.Unwrap(err)
	if cause == nil {
		return
	}

	fmt.Fprintf(r.out, "Error Chain:\n")
	level := 1
	for cause != nil {
		fmt.Fprintf(r.out, "    %d. %s\n", level, cause.Error())
		cause = stderrors.Unwrap(cause)
		level++
	}
	fmt.Fprintf(r.out, "\n")
}

// typeForCode maps an error code onto the reporting error type
func typeForCode(code errors.ErrorCode) models.ErrorType {
	switch code {
	case errors.MalformedEntryErrorCode:
		return models.ErrorTypeMalformedEntry
	case errors.ConfigurationErrorCode:
		return models.ErrorTypeConfiguration
	case errors.FileSystemErrorCode:
		return models.ErrorTypeFileSystem
	default:
		return models.ErrorTypeGeneration
	}
}
