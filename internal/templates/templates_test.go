package templates

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toyz/exprgen/internal/models"
)

func TestRenderStruct(t *testing.T) {
	renderer, err := NewDefaultRenderer()
	require.NoError(t, err)

	tests := []struct {
		name     string
		entry    *models.Entry
		base     string
		expected string
	}{
		{
			name: "single field",
			entry: &models.Entry{
				Name:   "LiteralExpr",
				Fields: []models.Field{{Type: "lox_literal_t*", Name: "literal"}},
			},
			base: "Expression",
			expected: "struct LiteralExpr: public Expression {\n" +
				"    lox_literal_t* literal;\n" +
				"\n" +
				"\tLiteralExpr(lox_literal_t* literal) : literal(literal) {}\n" +
				"};\n" +
				"\n",
		},
		{
			name: "three fields",
			entry: &models.Entry{
				Name: "BinaryExpr",
				Fields: []models.Field{
					{Type: "Expression*", Name: "left"},
					{Type: "Expression*", Name: "right"},
					{Type: "Token*", Name: "op"},
				},
			},
			base: "Expression",
			expected: "struct BinaryExpr: public Expression {\n" +
				"    Expression* left;\n" +
				"    Expression* right;\n" +
				"    Token* op;\n" +
				"\n" +
				"\tBinaryExpr(Expression* left, Expression* right, Token* op) : left(left), right(right), op(op) {}\n" +
				"};\n" +
				"\n",
		},
		{
			name: "custom base",
			entry: &models.Entry{
				Name:   "PrintStmt",
				Fields: []models.Field{{Type: "Expression*", Name: "expr"}},
			},
			base: "Stmt",
			expected: "struct PrintStmt: public Stmt {\n" +
				"    Expression* expr;\n" +
				"\n" +
				"\tPrintStmt(Expression* expr) : expr(expr) {}\n" +
				"};\n" +
				"\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := renderer.RenderStruct(tt.entry, tt.base)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, out)
		})
	}
}

func TestRenderStruct_EmptyConstructorBody(t *testing.T) {
	renderer, err := NewDefaultRenderer()
	require.NoError(t, err)

	out, err := renderer.RenderStruct(&models.Entry{
		Name:   "UnaryExpr",
		Fields: []models.Field{{Type: "Token*", Name: "op"}, {Type: "Expression*", Name: "right"}},
	}, "Expression")
	require.NoError(t, err)

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 8)
	assert.True(t, strings.HasSuffix(lines[4], " {}"))
	assert.Equal(t, "", lines[3])
	assert.Equal(t, "};", lines[5])
}

func TestRenderHeader(t *testing.T) {
	renderer, err := NewDefaultRenderer()
	require.NoError(t, err)

	t.Run("with includes", func(t *testing.T) {
		out, err := renderer.RenderHeader(HeaderData{
			Guard:    "EXPRESSION_H",
			Includes: []string{"Token.h"},
			Base:     "Expression",
			Body:     "struct A: public Expression {};\n\n",
		})
		require.NoError(t, err)

		expected := "#ifndef EXPRESSION_H\n" +
			"#define EXPRESSION_H\n" +
			"\n" +
			"#include \"Token.h\"\n" +
			"\n" +
			"struct Expression {};\n" +
			"\n" +
			"struct A: public Expression {};\n" +
			"\n" +
			"#endif //EXPRESSION_H\n"
		assert.Equal(t, expected, out)
	})

	t.Run("without includes", func(t *testing.T) {
		out, err := renderer.RenderHeader(HeaderData{
			Guard: "STMT_H",
			Base:  "Stmt",
		})
		require.NoError(t, err)
		assert.Equal(t, "#ifndef STMT_H\n#define STMT_H\n\nstruct Stmt {};\n\n#endif //STMT_H\n", out)
	})
}

func TestTemplateRegistry(t *testing.T) {
	registry := NewTemplateRegistry()

	for _, name := range registry.Names() {
		tmpl, ok := registry.Get(name)
		assert.True(t, ok, name)
		assert.NotEmpty(t, tmpl)
	}

	_, ok := registry.Get("missing")
	assert.False(t, ok)
	assert.Panics(t, func() { registry.MustGet("missing") })
}

func TestTemplateUtils(t *testing.T) {
	fields := []models.Field{
		{Type: "Expression*", Name: "left"},
		{Type: "Token*", Name: "op"},
	}

	assert.Equal(t, "Expression* left, Token* op", JoinParams(fields))
	assert.Equal(t, "left(left), op(op)", JoinInits(fields))
	assert.Equal(t, "", JoinParams(nil))

	assert.Equal(t, "EXPRESSION_H", GuardName("Expression"))
	assert.Equal(t, "JLOX__STMT_H", GuardName("jlox::Stmt"))
}
