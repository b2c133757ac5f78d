package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/caarlos0/env/v6"
	"github.com/spf13/pflag"

	"github.com/toyz/exprgen/internal/errors"
	"github.com/toyz/exprgen/internal/generator"
	"github.com/toyz/exprgen/internal/models"
	"github.com/toyz/exprgen/internal/utils"
)

// Config holds the configuration for a generator run
type Config struct {
	// EntriesFile is a YAML file holding the specification entries.
	// If empty, DefaultEntries are used.
	EntriesFile string `env:"EXPRGEN_ENTRIES_FILE"`

	// Base is the marker every structure derives from
	Base string `env:"EXPRGEN_BASE"`

	// Strict selects the grammar based entry parser
	Strict bool `env:"EXPRGEN_STRICT"`

	// Header wraps the output in a header file
	Header bool `env:"EXPRGEN_HEADER"`

	// Guard is the include guard used with Header
	Guard string `env:"EXPRGEN_GUARD"`

	// Includes are emitted as #include lines with Header
	Includes []string `env:"EXPRGEN_INCLUDES" envDefault:"Token.h" envSeparator:","`

	// Verbose enables detailed diagnostics on stderr
	Verbose bool `env:"EXPRGEN_VERBOSE"`

	Check bool
	Quiet bool
	Help  bool

	// Entries is the resolved entry list
	Entries models.EntryList
}

// UsageError reports invalid command line usage
type UsageError struct {
	Err error
}

func (e *UsageError) Error() string {
	return e.Err.Error()
}

func (e *UsageError) Unwrap() error {
	return e.Err
}

// LoadConfig builds the configuration from defaults, then the environment,
// then command line flags, then the entries file. environ may be nil to use
// the process environment.
func LoadConfig(args []string, environ map[string]string) (*Config, error) {
	cfg := &Config{}

	opts := env.Options{}
	if environ != nil {
		opts.Environment = environ
	}
	if err := env.Parse(cfg, opts); err != nil {
		return nil, errors.WrapConfigurationError("environment", err)
	}

	flags := NewFlagSet(cfg, io.Discard)
	if err := flags.Parse(args); err != nil {
		return nil, &UsageError{Err: err}
	}
	if cfg.Help {
		return cfg, nil
	}
	if flags.NArg() > 0 {
		return nil, &UsageError{Err: fmt.Errorf("unexpected arguments: %s", strings.Join(flags.Args(), " "))}
	}
	if cfg.Quiet && cfg.Verbose {
		return nil, &UsageError{Err: fmt.Errorf("--quiet and --verbose are mutually exclusive")}
	}

	if cfg.EntriesFile != "" {
		file, err := LoadEntriesFile(cfg.EntriesFile)
		if err != nil {
			return nil, err
		}
		cfg.Entries = file.Entries
		// the file's base only applies when neither env nor flags set one
		if cfg.Base == "" {
			cfg.Base = file.Base
		}
	} else {
		cfg.Entries = DefaultEntries.Clone()
	}

	if cfg.Base == "" {
		cfg.Base = generator.DefaultBase
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// NewFlagSet defines the command line flags bound to cfg. Current cfg values
// become the flag defaults so flags override the environment.
func NewFlagSet(cfg *Config, output io.Writer) *pflag.FlagSet {
	flags := pflag.NewFlagSet("exprgen", pflag.ContinueOnError)
	flags.SetOutput(output)
	flags.SortFlags = false

	flags.StringVarP(&cfg.EntriesFile, "entries", "f", cfg.EntriesFile, "YAML file with the specification entries (defaults to the built-in Lox expressions)")
	flags.StringVarP(&cfg.Base, "base", "b", cfg.Base, "Marker base every structure derives from (default \"Expression\")")
	flags.BoolVar(&cfg.Strict, "strict", cfg.Strict, "Parse entries with the grammar parser (multi-word types, column diagnostics)")
	flags.BoolVar(&cfg.Header, "header", cfg.Header, "Wrap the output in a header file with include guard")
	flags.StringVar(&cfg.Guard, "guard", cfg.Guard, "Include guard for --header (default <BASE>_H)")
	flags.StringSliceVar(&cfg.Includes, "include", cfg.Includes, "Includes for --header")
	flags.BoolVar(&cfg.Check, "check", false, "Validate every entry and report all malformed ones, print nothing")
	flags.BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "Enable verbose diagnostics on stderr")
	flags.BoolVarP(&cfg.Quiet, "quiet", "q", false, "Suppress all diagnostics")
	flags.BoolVarP(&cfg.Help, "help", "h", false, "Show help information")

	return flags
}

// Validate checks the configuration values
func (c *Config) Validate() error {
	if err := utils.ValidateBaseName("base")(c.Base); err != nil {
		return errors.NewConfigurationError("base", err.Error()).WithCause(utils.WrapValidateError("base", err))
	}
	if c.Guard != "" {
		if err := utils.ValidateGuard("guard")(c.Guard); err != nil {
			return errors.NewConfigurationError("guard", err.Error()).WithCause(utils.WrapValidateError("guard", err))
		}
	}
	if err := utils.ValidateEach("includes", utils.ValidateIncludePath("include"))(c.Includes); err != nil {
		return errors.NewConfigurationError("includes", err.Error()).WithCause(utils.WrapValidateError("includes", err))
	}
	if err := utils.SliceNotEmpty[string]("entries")(c.Entries); err != nil {
		return errors.NewConfigurationError("entries", err.Error()).
			WithCause(utils.WrapValidateError("entries", err)).
			WithSuggestion("Add at least one 'Name : Type field' line under 'entries:'")
	}
	return nil
}

// Source describes where the entries came from
func (c *Config) Source() string {
	if c.EntriesFile != "" {
		return c.EntriesFile
	}
	return "built-in"
}

// Level maps the verbosity flags to a diagnostic level
func (c *Config) Level() utils.DiagnosticLevel {
	switch {
	case c.Quiet:
		return utils.DiagnosticSilent
	case c.Verbose:
		return utils.DiagnosticVerbose
	default:
		return utils.DiagnosticError
	}
}

// PrintUsage writes the help text
func PrintUsage(w io.Writer, program string) {
	fmt.Fprintf(w, "Usage: %s [options]\n\n", program)
	fmt.Fprintf(w, "Expression Structure Generator\n")
	fmt.Fprintf(w, "Prints C++ structure definitions for entries of the form 'Name : Type1 field1, Type2 field2'.\n\n")
	fmt.Fprintf(w, "Options:\n")
	fmt.Fprint(w, NewFlagSet(&Config{Includes: []string{"Token.h"}}, w).FlagUsages())
	fmt.Fprintf(w, "\nEnvironment:\n")
	fmt.Fprintf(w, "  EXPRGEN_ENTRIES_FILE, EXPRGEN_BASE, EXPRGEN_STRICT, EXPRGEN_HEADER,\n")
	fmt.Fprintf(w, "  EXPRGEN_GUARD, EXPRGEN_INCLUDES, EXPRGEN_VERBOSE (flags take precedence)\n")
	fmt.Fprintf(w, "\nExamples:\n")
	fmt.Fprintf(w, "  %s                                  # Print the built-in Lox expressions\n", program)
	fmt.Fprintf(w, "  %s -f stmt.yaml --base Stmt         # Generate from an entries file\n", program)
	fmt.Fprintf(w, "  %s --header > Expression.h          # Emit a complete header file\n", program)
	fmt.Fprintf(w, "  %s --check -f ast.yaml              # Report every malformed entry\n", program)
}
