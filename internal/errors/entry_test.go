package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewMalformedEntryError(t *testing.T) {
	err := NewMalformedEntryError(2, "Bad OnlyOneToken", "missing ':' separator")

	assert.Equal(t, MalformedEntryErrorCode, err.ErrorCode())
	assert.Equal(t, 2, err.Location().Line)
	assert.Equal(t, `entry 2: malformed entry "Bad OnlyOneToken": missing ':' separator`, err.Error())
	assert.Equal(t, 2, err.Context()[ContextEntryIndex])
	assert.Equal(t, "missing ':' separator", err.Context()[ContextReason])
	assert.NotEmpty(t, err.Suggestions())
}

func TestNewMalformedFieldError(t *testing.T) {
	t.Run("single token", func(t *testing.T) {
		err := NewMalformedFieldError(1, "Bad : OnlyOneToken", 1, " OnlyOneToken", 1)
		assert.Contains(t, err.Error(), "expected 2 tokens (type and name), got 1")
		assert.Equal(t, 1, err.Context()[ContextFieldIndex])
		assert.Len(t, err.Suggestions(), 1)
	})

	t.Run("empty field", func(t *testing.T) {
		err := NewMalformedFieldError(1, "A : T a,", 2, "", 0)
		assert.Contains(t, err.Suggestions(), "Remove the trailing or doubled ',' separator")
	})

	t.Run("multi-word type", func(t *testing.T) {
		err := NewMalformedFieldError(1, "A : unsigned int a", 1, " unsigned int a", 3)
		assert.Contains(t, err.Suggestions(), "Multi-word types are only supported with --strict")
	})
}

func TestIsMalformedEntry(t *testing.T) {
	err := NewMalformedEntryError(4, "X", "missing ':' separator")
	wrapped := fmt.Errorf("failed to generate structs: %w", err)

	assert.True(t, IsMalformedEntry(err))
	assert.True(t, IsMalformedEntry(wrapped))
	assert.False(t, IsMalformedEntry(fmt.Errorf("plain")))
	assert.False(t, IsMalformedEntry(NewConfigurationError("base", "cannot be empty")))

	raw, ok := RawEntry(wrapped)
	assert.True(t, ok)
	assert.Equal(t, "X", raw)

	_, ok = RawEntry(fmt.Errorf("plain"))
	assert.False(t, ok)
}
