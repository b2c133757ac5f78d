package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const literalExprOutput = "struct LiteralExpr: public Expression {\n" +
	"    lox_literal_t* literal;\n" +
	"\n" +
	"\tLiteralExpr(lox_literal_t* literal) : literal(literal) {}\n" +
	"};\n" +
	"\n"

func runCLI(t *testing.T, environ map[string]string, args ...string) (int, string, string) {
	t.Helper()
	if environ == nil {
		environ = map[string]string{}
	}
	var stdout, stderr bytes.Buffer
	code := run(args, environ, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func writeEntriesFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "entries.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestCLI_DefaultRun(t *testing.T) {
	code, stdout, stderr := runCLI(t, nil)

	assert.Equal(t, 0, code)
	assert.Empty(t, stderr, "a successful run prints only generated text")
	assert.Contains(t, stdout, "struct BinaryExpr: public Expression {\n")
	assert.Contains(t, stdout, "struct GroupingExpr: public Expression {\n")
	assert.Contains(t, stdout, "struct UnaryExpr: public Expression {\n")
	assert.Contains(t, stdout, literalExprOutput)
}

func TestCLI_Idempotent(t *testing.T) {
	_, first, _ := runCLI(t, nil)
	_, second, _ := runCLI(t, nil)
	assert.Equal(t, first, second)
}

func TestCLI_HelpFlag(t *testing.T) {
	code, stdout, _ := runCLI(t, nil, "--help")

	assert.Equal(t, 0, code)
	assert.Contains(t, stdout, "Usage:")
	assert.Contains(t, stdout, "Expression Structure Generator")
	assert.Contains(t, stdout, "--entries")
	assert.Contains(t, stdout, "--strict")
	assert.Contains(t, stdout, "EXPRGEN_BASE")
}

func TestCLI_UsageErrors(t *testing.T) {
	t.Run("unknown flag", func(t *testing.T) {
		code, stdout, stderr := runCLI(t, nil, "--bogus")
		assert.Equal(t, 2, code)
		assert.Empty(t, stdout)
		assert.Contains(t, stderr, "unknown flag: --bogus")
		assert.Contains(t, stderr, "Usage:")
	})

	t.Run("positional arguments", func(t *testing.T) {
		code, _, stderr := runCLI(t, nil, "extra")
		assert.Equal(t, 2, code)
		assert.Contains(t, stderr, "unexpected arguments: extra")
	})
}

func TestCLI_EntriesFile(t *testing.T) {
	path := writeEntriesFile(t, "entries:\n  - \"LiteralExpr : lox_literal_t* literal\"\n")

	code, stdout, stderr := runCLI(t, nil, "--entries", path)
	assert.Equal(t, 0, code)
	assert.Empty(t, stderr)
	assert.Equal(t, literalExprOutput, stdout)
}

func TestCLI_MalformedEntry(t *testing.T) {
	path := writeEntriesFile(t, `entries:
  - "LiteralExpr : lox_literal_t* literal"
  - "Bad : OnlyOneToken"
  - "GroupingExpr : Expression* expr"
`)

	code, stdout, stderr := runCLI(t, nil, "-f", path)
	assert.Equal(t, 1, code)
	assert.Equal(t, literalExprOutput, stdout)
	assert.NotContains(t, stdout, "GroupingExpr")
	assert.Contains(t, stderr, "Malformed Entry")
	assert.Contains(t, stderr, "Bad : OnlyOneToken")
	assert.Contains(t, stderr, path+":2")
}

func TestCLI_QuietSuppressesReport(t *testing.T) {
	path := writeEntriesFile(t, "entries:\n  - \"Bad : OnlyOneToken\"\n")

	code, stdout, stderr := runCLI(t, nil, "-q", "-f", path)
	assert.Equal(t, 1, code)
	assert.Empty(t, stdout)
	assert.Empty(t, stderr)
}

func TestCLI_Check(t *testing.T) {
	path := writeEntriesFile(t, `entries:
  - "Bad : OnlyOneToken"
  - "LiteralExpr : lox_literal_t* literal"
  - "NoSeparator"
`)

	code, stdout, stderr := runCLI(t, nil, "--check", "-f", path)
	assert.Equal(t, 1, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "Found 2 malformed entries")

	code, stdout, _ = runCLI(t, nil, "--check")
	assert.Equal(t, 0, code)
	assert.Empty(t, stdout)
}

func TestCLI_Header(t *testing.T) {
	code, stdout, _ := runCLI(t, nil, "--header")

	assert.Equal(t, 0, code)
	assert.True(t, len(stdout) > 0)
	assert.Regexp(t, `^#ifndef EXPRESSION_H\n#define EXPRESSION_H\n\n#include "Token.h"\n\nstruct Expression \{\};\n`, stdout)
	assert.Regexp(t, `#endif //EXPRESSION_H\n$`, stdout)
}

func TestCLI_Environment(t *testing.T) {
	environ := map[string]string{
		"EXPRGEN_BASE":   "Stmt",
		"EXPRGEN_STRICT": "true",
	}
	path := writeEntriesFile(t, "entries:\n  - \"VarStmt : unsigned int slot\"\n")

	code, stdout, _ := runCLI(t, environ, "-f", path)
	assert.Equal(t, 0, code)
	assert.Contains(t, stdout, "struct VarStmt: public Stmt {\n    unsigned int slot;\n")

	// flags take precedence over the environment
	code, stdout, _ = runCLI(t, environ, "-f", path, "--base", "Node")
	assert.Equal(t, 0, code)
	assert.Contains(t, stdout, "public Node {")
}

func TestCLI_VerboseDiagnosticsGoToStderr(t *testing.T) {
	code, stdout, stderr := runCLI(t, nil, "--verbose")

	assert.Equal(t, 0, code)
	assert.NotContains(t, stdout, "VERBOSE")
	assert.Contains(t, stderr, "Generating 4 entries from built-in")
	assert.Contains(t, stderr, "Generation Complete")
}
