package errors

import (
	stderrors "errors"
	"fmt"
)

// Context keys attached to malformed entry errors
const (
	ContextEntryIndex = "entry_index"
	ContextRawEntry   = "raw_entry"
	ContextReason     = "reason"
	ContextFieldIndex = "field_index"
)

// NewMalformedEntryError reports an entry that could not be split into a
// structure name and (type, name) field pairs.
func NewMalformedEntryError(index int, raw, reason string) *BaseError {
	err := Newf(MalformedEntryErrorCode, "malformed entry %q: %s", raw, reason).
		WithLocation(SourceLocation{Line: index}).
		WithContext(ContextEntryIndex, index).
		WithContext(ContextRawEntry, raw).
		WithContext(ContextReason, reason)
	return err.WithSuggestion("Entries must look like 'Name : Type1 field1, Type2 field2'")
}

// NewMalformedFieldError reports a single field substring that does not hold
// exactly a type and a name.
func NewMalformedFieldError(index int, raw string, fieldIndex int, field string, tokens int) *BaseError {
	reason := fmt.Sprintf("field %d %q: expected 2 tokens (type and name), got %d", fieldIndex, field, tokens)
	err := NewMalformedEntryError(index, raw, reason).WithContext(ContextFieldIndex, fieldIndex)
	switch {
	case tokens == 0:
		err.WithSuggestion("Remove the trailing or doubled ',' separator")
	case tokens > 2:
		err.WithSuggestion("Multi-word types are only supported with --strict")
	}
	return err
}

// IsMalformedEntry reports whether err carries a malformed entry error
func IsMalformedEntry(err error) bool {
	var coded ExprgenError
	if stderrors.As(err, &coded) {
		return coded.ErrorCode() == MalformedEntryErrorCode
	}
	return false
}

// RawEntry returns the offending raw line of a malformed entry error, if any
func RawEntry(err error) (string, bool) {
	var coded ExprgenError
	if !stderrors.As(err, &coded) {
		return "", false
	}
	raw, ok := coded.Context()[ContextRawEntry].(string)
	return raw, ok
}
