package parser

import "github.com/toyz/exprgen/internal/models"

// EntryParser turns one raw specification line into an Entry.
// index is the 1-based position of the line in its list and is only used
// for error reporting.
type EntryParser interface {
	ParseEntry(raw string, index int) (*models.Entry, error)
}

// New returns the grammar based parser when strict is set and the
// split parser otherwise
func New(strict bool) EntryParser {
	if strict {
		return NewGrammarParser()
	}
	return NewSplitParser()
}
