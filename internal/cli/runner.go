package cli

import (
	"io"
	"time"

	"github.com/toyz/exprgen/internal/errors"
	"github.com/toyz/exprgen/internal/generator"
	"github.com/toyz/exprgen/internal/models"
	"github.com/toyz/exprgen/internal/parser"
	"github.com/toyz/exprgen/internal/templates"
	"github.com/toyz/exprgen/internal/utils"
)

// Runner coordinates one generation run
type Runner struct {
	config      *Config
	stdout      io.Writer
	diagnostics *utils.DiagnosticSystem
	generator   *generator.Generator
	summary     models.GenerationSummary
}

// NewRunner creates a runner writing generated text to stdout and
// diagnostics to the given diagnostic system
func NewRunner(config *Config, stdout io.Writer, diagnostics *utils.DiagnosticSystem) (*Runner, error) {
	renderer, err := templates.NewDefaultRenderer()
	if err != nil {
		return nil, utils.WrapLoadError("templates", err)
	}

	gen := generator.NewGenerator(parser.New(config.Strict), renderer, generator.Options{
		Base:     config.Base,
		Guard:    config.Guard,
		Includes: config.Includes,
	})
	gen.SetSource(config.Source())

	return &Runner{
		config:      config,
		stdout:      stdout,
		diagnostics: diagnostics,
		generator:   gen,
	}, nil
}

// Run executes the configured mode: check, header or plain generation
func (r *Runner) Run() error {
	startTime := time.Now()

	r.diagnostics.Info("Generating %d entries from %s", len(r.config.Entries), r.config.Source())
	r.diagnostics.Subsection("Configuration")
	r.diagnostics.Indent()
	r.diagnostics.List("Base: %s", r.config.Base)
	r.diagnostics.List("Parser: %s", parserName(r.config.Strict))
	if r.config.Header {
		r.diagnostics.List("Header guard: %s", r.generator.Options().Guard)
	}
	r.diagnostics.Unindent()

	if r.config.Strict {
		r.warnStrictOnly()
	}

	var err error
	switch {
	case r.config.Check:
		err = r.generator.Check(r.config.Entries)
	case r.config.Header:
		err = r.generator.GenerateHeader(r.stdout, r.config.Entries)
	default:
		err = r.generator.Generate(r.stdout, r.config.Entries)
	}

	r.summary = r.generator.Summary()
	if err != nil {
		return r.wrapError(err)
	}

	if r.config.Check {
		r.diagnostics.Success("All %d entries are well formed", r.summary.EntriesProcessed)
	} else {
		r.diagnostics.Success("Generated %d structures", r.summary.StructsGenerated)
	}
	r.diagnostics.Summary("Generation Complete", map[string]interface{}{
		"Entries processed": r.summary.EntriesProcessed,
		"Structs generated": r.summary.StructsGenerated,
		"Fields generated":  r.summary.FieldsGenerated,
		"Duration":          time.Since(startTime).Round(time.Microsecond),
	})
	return nil
}

// Summary returns statistics about the last run
func (r *Runner) Summary() models.GenerationSummary {
	return r.summary
}

// wrapError attaches the entries source to a single coded error.
// Collected errors from --check are returned as they are.
func (r *Runner) wrapError(err error) error {
	if _, ok := err.(*errors.MultipleErrors); ok {
		return err
	}

	coded, ok := err.(errors.ExprgenError)
	if !ok {
		return err
	}

	genErr := &models.GeneratorError{
		Type:    typeForCode(coded.ErrorCode()),
		Message: coded.Error(),
		Cause:   err,
	}
	if coded.ErrorCode() == errors.MalformedEntryErrorCode {
		genErr.File = r.config.EntriesFile
		genErr.Line = coded.Location().Line
		if base, ok := err.(*errors.BaseError); ok {
			genErr.Message = base.Message
		}
	}
	return genErr
}

// warnStrictOnly warns about entries the grammar parser accepts but the
// default split parser rejects, e.g. multi-word types
func (r *Runner) warnStrictOnly() {
	split := parser.NewSplitParser()
	grammar := parser.NewGrammarParser()
	for i, raw := range r.config.Entries {
		if _, err := split.ParseEntry(raw, i+1); err == nil {
			continue
		}
		if entry, err := grammar.ParseEntry(raw, i+1); err == nil {
			r.diagnostics.Warn("entry %d (%s) is only accepted with --strict", i+1, entry.Name)
		}
	}
}

func parserName(strict bool) string {
	if strict {
		return "grammar"
	}
	return "split"
}
