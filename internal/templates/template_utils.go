package templates

import (
	"strings"
	"unicode"

	"github.com/toyz/exprgen/internal/models"
)

// JoinParams renders a constructor parameter list: "T1 f1, T2 f2"
func JoinParams(fields []models.Field) string {
	parts := make([]string, len(fields))
	for i, field := range fields {
		parts[i] = field.Declaration()
	}
	return strings.Join(parts, ", ")
}

// JoinInits renders a constructor initializer list: "f1(f1), f2(f2)"
func JoinInits(fields []models.Field) string {
	parts := make([]string, len(fields))
	for i, field := range fields {
		parts[i] = field.Initializer()
	}
	return strings.Join(parts, ", ")
}

// GuardName derives an include guard from a base name, e.g. "Expression" -> "EXPRESSION_H"
func GuardName(base string) string {
	var b strings.Builder
	for _, r := range base {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(unicode.ToUpper(r))
		} else {
			b.WriteRune('_')
		}
	}
	b.WriteString("_H")
	return b.String()
}
