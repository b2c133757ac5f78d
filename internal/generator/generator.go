package generator

import (
	"io"
	"strings"

	"github.com/toyz/exprgen/internal/errors"
	"github.com/toyz/exprgen/internal/models"
	"github.com/toyz/exprgen/internal/parser"
	"github.com/toyz/exprgen/internal/templates"
)

// DefaultBase is the marker every generated structure derives from
const DefaultBase = "Expression"

// Options configures the generated text
type Options struct {
	Base     string   // marker base name, DefaultBase when empty
	Guard    string   // include guard for header output, derived from Base when empty
	Includes []string // includes for header output
}

var _ CodeGenerator = (*Generator)(nil)

// Generator implements the CodeGenerator interface
type Generator struct {
	parser   parser.EntryParser
	renderer *templates.Renderer
	options  Options
	summary  models.GenerationSummary
}

// NewGenerator creates a new generator from a parser and a renderer
func NewGenerator(p parser.EntryParser, renderer *templates.Renderer, options Options) *Generator {
	if options.Base == "" {
		options.Base = DefaultBase
	}
	if options.Guard == "" {
		options.Guard = templates.GuardName(options.Base)
	}
	return &Generator{
		parser:   p,
		renderer: renderer,
		options:  options,
		summary:  models.GenerationSummary{Base: options.Base},
	}
}

// NewDefaultGenerator creates a generator with the split parser, the
// built-in templates and the Expression base
func NewDefaultGenerator() (*Generator, error) {
	renderer, err := templates.NewDefaultRenderer()
	if err != nil {
		return nil, err
	}
	return NewGenerator(parser.NewSplitParser(), renderer, Options{}), nil
}

// Generate writes one structure definition per entry, in entry order.
//
// The first malformed entry stops the run: output for the entries before it
// has already been written, nothing is written for it or any later entry.
func (g *Generator) Generate(w io.Writer, entries models.EntryList) error {
	g.resetSummary()

	for i, raw := range entries {
		block, err := g.renderEntry(raw, i+1)
		if err != nil {
			return err
		}
		if _, err := io.WriteString(w, block); err != nil {
			return errors.WrapFileSystemError("write", "output", err)
		}
	}
	return nil
}

// GenerateHeader renders every entry and wraps the result in a header file
// with include guard, includes and the base marker declaration. Nothing is
// written unless every entry renders.
func (g *Generator) GenerateHeader(w io.Writer, entries models.EntryList) error {
	g.resetSummary()

	var body strings.Builder
	for i, raw := range entries {
		block, err := g.renderEntry(raw, i+1)
		if err != nil {
			return err
		}
		body.WriteString(block)
	}

	header, err := g.renderer.RenderHeader(templates.HeaderData{
		Guard:    g.options.Guard,
		Includes: g.options.Includes,
		Base:     g.options.Base,
		Body:     body.String(),
	})
	if err != nil {
		return err
	}

	if _, err := io.WriteString(w, header); err != nil {
		return errors.WrapFileSystemError("write", "output", err)
	}
	return nil
}

// Check parses every entry without rendering and reports all malformed
// entries at once. It returns nil when the whole list parses.
func (g *Generator) Check(entries models.EntryList) error {
	g.resetSummary()

	collected := errors.NewMultipleErrors()
	for i, raw := range entries {
		g.summary.EntriesProcessed++
		if _, err := g.parser.ParseEntry(raw, i+1); err != nil {
			if coded, ok := err.(errors.ExprgenError); ok {
				collected.Add(coded)
				continue
			}
			collected.Add(errors.NewMalformedEntryError(i+1, raw, err.Error()).WithCause(err))
		}
	}
	return collected.ToError()
}

// Summary returns statistics about the last run
func (g *Generator) Summary() models.GenerationSummary {
	return g.summary
}

// Options returns the effective generator options
func (g *Generator) Options() Options {
	return g.options
}

func (g *Generator) renderEntry(raw string, index int) (string, error) {
	g.summary.EntriesProcessed++

	entry, err := g.parser.ParseEntry(raw, index)
	if err != nil {
		return "", err
	}

	block, err := g.renderer.RenderStruct(entry, g.options.Base)
	if err != nil {
		return "", err
	}

	g.summary.StructsGenerated++
	g.summary.FieldsGenerated += len(entry.Fields)
	return block, nil
}

func (g *Generator) resetSummary() {
	g.summary = models.GenerationSummary{Base: g.options.Base, Source: g.summary.Source}
}

// SetSource records where the entries came from, for the run summary
func (g *Generator) SetSource(source string) {
	g.summary.Source = source
}
