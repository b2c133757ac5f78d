package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestField_Rendering(t *testing.T) {
	tests := []struct {
		name        string
		field       Field
		declaration string
		initializer string
	}{
		{"pointer type", Field{Type: "Expression*", Name: "left"}, "Expression* left", "left(left)"},
		{"multi-word type", Field{Type: "unsigned int", Name: "count"}, "unsigned int count", "count(count)"},
		{"templated type", Field{Type: "std::vector<Expression*>", Name: "args"}, "std::vector<Expression*> args", "args(args)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.declaration, tt.field.Declaration())
			assert.Equal(t, tt.initializer, tt.field.Initializer())
		})
	}
}

func TestEntryList_Clone(t *testing.T) {
	original := EntryList{"GroupingExpr : Expression* expr", "LiteralExpr : lox_literal_t* literal"}

	clone := original.Clone()
	assert.Equal(t, original, clone)

	clone[0] = "changed"
	assert.Equal(t, "GroupingExpr : Expression* expr", original[0])

	assert.Empty(t, EntryList{}.Clone())
}
