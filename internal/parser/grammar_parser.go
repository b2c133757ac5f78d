package parser

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/toyz/exprgen/internal/errors"
	"github.com/toyz/exprgen/internal/models"
)

// entryGrammar is the root of a specification entry
type entryGrammar struct {
	Name   string          `parser:"@Word ':'"`
	Fields []*fieldGrammar `parser:"@@ ( ',' @@ )*"`
}

// fieldGrammar collects every token of one field; the last one is the name
type fieldGrammar struct {
	Pos    lexer.Position
	Tokens []string `parser:"( @Word | @Ptr )+"`
}

var identifierPattern = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

// GrammarParser parses entries with a participle grammar. Unlike SplitParser
// it accepts multi-word types ("unsigned int count"), scoped and templated
// types, and reports the column of a syntax error.
type GrammarParser struct {
	parser *participle.Parser[entryGrammar]
}

// NewGrammarParser creates a new parser using participle
func NewGrammarParser() *GrammarParser {
	lex := lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Word", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*(::[a-zA-Z_][a-zA-Z0-9_]*)*(<[^<>]*>)?[*&]*`},
		{Name: "Ptr", Pattern: `[*&]+`},
		{Name: "Colon", Pattern: `:`},
		{Name: "Comma", Pattern: `,`},
		{Name: "Whitespace", Pattern: `\s+`},
	})

	parser := participle.MustBuild[entryGrammar](
		participle.Lexer(lex),
		participle.Elide("Whitespace"),
		participle.UseLookahead(2),
	)

	return &GrammarParser{parser: parser}
}

// ParseEntry implements EntryParser
func (p *GrammarParser) ParseEntry(raw string, index int) (*models.Entry, error) {
	ast, err := p.parser.ParseString("", raw)
	if err != nil {
		return nil, p.syntaxError(raw, index, err)
	}

	fields := make([]models.Field, 0, len(ast.Fields))
	for i, field := range ast.Fields {
		n := len(field.Tokens)
		if n < 2 {
			return nil, errors.NewMalformedFieldError(index, raw, i+1, strings.Join(field.Tokens, " "), n).
				WithLocation(errors.SourceLocation{Line: index, Column: field.Pos.Column})
		}

		name := field.Tokens[n-1]
		if !identifierPattern.MatchString(name) {
			reason := fmt.Sprintf("field %d: name %q is not an identifier", i+1, name)
			return nil, errors.NewMalformedEntryError(index, raw, reason).
				WithLocation(errors.SourceLocation{Line: index, Column: field.Pos.Column}).
				WithContext(errors.ContextFieldIndex, i+1)
		}

		fields = append(fields, models.Field{
			Type: strings.Join(field.Tokens[:n-1], " "),
			Name: name,
		})
	}

	return &models.Entry{
		Index:  index,
		Raw:    raw,
		Name:   ast.Name,
		Fields: fields,
	}, nil
}

// syntaxError converts a participle error into a malformed entry error
// pointing at the offending column
func (p *GrammarParser) syntaxError(raw string, index int, err error) error {
	perr, ok := err.(participle.Error)
	if !ok {
		return errors.NewMalformedEntryError(index, raw, err.Error())
	}

	pos := perr.Position()
	return errors.NewMalformedEntryError(index, raw, perr.Message()).
		WithLocation(errors.SourceLocation{Line: index, Column: pos.Column}).
		WithContext("column", pos.Column)
}
