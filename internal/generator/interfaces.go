package generator

import (
	"io"

	"github.com/toyz/exprgen/internal/models"
)

// CodeGenerator defines the interface for turning specification entries into structure definitions
type CodeGenerator interface {
	Generate(w io.Writer, entries models.EntryList) error
	GenerateHeader(w io.Writer, entries models.EntryList) error
	Check(entries models.EntryList) error
	Summary() models.GenerationSummary
}
