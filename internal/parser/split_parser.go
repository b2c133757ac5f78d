package parser

import (
	"strings"

	"github.com/toyz/exprgen/internal/errors"
	"github.com/toyz/exprgen/internal/models"
)

// SplitParser parses entries by plain string splitting.
//
// The name is everything before the first ':' (trimmed), the fields part is
// split on ',' and every field must split on whitespace into exactly a type
// and a name. There is no grammar behind it: a ':' inside the name or a
// multi-word type is reported as a malformed entry, never corrected.
type SplitParser struct{}

// NewSplitParser creates a new split parser
func NewSplitParser() *SplitParser {
	return &SplitParser{}
}

// ParseEntry implements EntryParser
func (p *SplitParser) ParseEntry(raw string, index int) (*models.Entry, error) {
	namePart, fieldsPart, found := strings.Cut(raw, ":")
	if !found {
		return nil, errors.NewMalformedEntryError(index, raw, "missing ':' separator")
	}

	parts := strings.Split(fieldsPart, ",")
	fields := make([]models.Field, 0, len(parts))
	for i, part := range parts {
		tokens := strings.Fields(part)
		if len(tokens) != 2 {
			return nil, errors.NewMalformedFieldError(index, raw, i+1, part, len(tokens))
		}
		fields = append(fields, models.Field{Type: tokens[0], Name: tokens[1]})
	}

	return &models.Entry{
		Index:  index,
		Raw:    raw,
		Name:   strings.TrimSpace(namePart),
		Fields: fields,
	}, nil
}
