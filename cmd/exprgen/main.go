package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/toyz/exprgen/internal/cli"
	"github.com/toyz/exprgen/internal/utils"
)

func main() {
	os.Exit(run(os.Args[1:], nil, os.Stdout, os.Stderr))
}

// run executes the generator and returns the process exit code.
// environ may be nil to use the process environment.
func run(args []string, environ map[string]string, stdout, stderr io.Writer) int {
	program := filepath.Base(os.Args[0])

	config, err := cli.LoadConfig(args, environ)
	if err != nil {
		var usageErr *cli.UsageError
		if errors.As(err, &usageErr) {
			fmt.Fprintf(stderr, "Error: %v\n\n", usageErr)
			cli.PrintUsage(stderr, program)
			return 2
		}
		cli.NewDiagnosticReporter(false, stderr).ReportError(err)
		return 1
	}

	if config.Help {
		cli.PrintUsage(stdout, program)
		return 0
	}

	diagnostics := utils.NewDiagnosticSystemWithWriter(config.Level(), stderr)
	reporter := cli.NewDiagnosticReporter(config.Verbose, stderr)

	runner, err := cli.NewRunner(config, stdout, diagnostics)
	if err != nil {
		reporter.ReportError(err)
		return 1
	}

	if err := runner.Run(); err != nil {
		if config.Level() > utils.DiagnosticSilent {
			reporter.ReportError(err)
		}
		return 1
	}

	return 0
}
