package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/softwcons/qlcheck/internal/analyzer"
	"github.com/softwcons/qlcheck/internal/ast"
	"github.com/softwcons/qlcheck/internal/checker"
	"github.com/softwcons/qlcheck/internal/config"
	"github.com/softwcons/qlcheck/internal/linter"
	"github.com/softwcons/qlcheck/internal/loader"
)

const usage = `qlcheck - Semantic analyzer for QL forms and QLS stylesheets

Usage:
  qlcheck check [options] <form.yml>    Type-check a form (and its stylesheet)
  qlcheck lint [options] <form.yml>     Run lint checks for style/best practices
  qlcheck print [--types] <form.yml>    Print the form tree

Options:
  --stylesheet <file>   QLS stylesheet to check against the form
  --config <file>       Configuration file (default .qlcheck.yml)
  --json                Print diagnostics as JSON
  --lint                Also run lint checks during check
  --types               Annotate expressions with their inferred types

Input files are serialized syntax trees in YAML.

Examples:
  qlcheck check tax.yml                         Check a form
  qlcheck check --stylesheet tax_style.yml tax.yml
  qlcheck lint tax.yml                          Lint a form
  qlcheck print --types tax.yml                 Show inferred expression types
`

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	if len(args) < 1 {
		fmt.Fprint(stderr, usage)
		return 1
	}

	command := args[0]

	switch command {
	case "check":
		return handleCheck(args[1:], stdout, stderr)
	case "lint":
		return handleLint(args[1:], stdout, stderr)
	case "print":
		return handlePrint(args[1:], stdout, stderr)
	case "help", "--help", "-h":
		fmt.Fprint(stdout, usage)
		return 0
	default:
		fmt.Fprintf(stderr, "Unknown command: %s\n\n", command)
		fmt.Fprint(stderr, usage)
		return 1
	}
}

type options struct {
	stylesheet string
	configPath string
	json       bool
	lint       bool
	types      bool
	filePath   string
}

// parseArgs accepts the flags listed in allowed; anything else starting
// with '-' is rejected.
func parseArgs(args []string, allowed ...string) (*options, error) {
	opts := &options{}
	isAllowed := func(flag string) bool {
		for _, a := range allowed {
			if a == flag {
				return true
			}
		}
		return false
	}

	for i := 0; i < len(args); i++ {
		arg := args[i]
		if !strings.HasPrefix(arg, "-") {
			if opts.filePath != "" {
				return nil, fmt.Errorf("unexpected argument: %s", arg)
			}
			opts.filePath = arg
			continue
		}
		if !isAllowed(arg) {
			return nil, fmt.Errorf("unknown option: %s", arg)
		}

		switch arg {
		case "--stylesheet", "--config":
			if i+1 >= len(args) {
				return nil, fmt.Errorf("option %s requires a file", arg)
			}
			i++
			if arg == "--stylesheet" {
				opts.stylesheet = args[i]
			} else {
				opts.configPath = args[i]
			}
		case "--json":
			opts.json = true
		case "--lint":
			opts.lint = true
		case "--types":
			opts.types = true
		}
	}

	if opts.filePath == "" {
		return nil, fmt.Errorf("no input file specified")
	}
	return opts, nil
}

func handleCheck(args []string, stdout, stderr io.Writer) int {
	opts, err := parseArgs(args, "--stylesheet", "--config", "--json", "--lint")
	if err != nil {
		fmt.Fprintf(stderr, "Error: %s\n", err)
		return 1
	}

	loaded, err := config.Load(opts.configPath)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %s\n", err)
		return 1
	}
	cfg, err := loaded.Effective(opts.lint, opts.json)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %s\n", err)
		return 1
	}

	res, err := analyzer.AnalyzeFiles(opts.filePath, opts.stylesheet, analyzer.Options{
		Lint:             cfg.Lint,
		WarningsAsErrors: cfg.WarningsAsErrors,
	})
	if err != nil {
		fmt.Fprintf(stderr, "Error: %s\n", err)
		return 1
	}

	if cfg.Format == config.FormatJSON {
		out, err := res.Diagnostics.FormatJSON(opts.filePath)
		if err != nil {
			fmt.Fprintf(stderr, "Error: %s\n", err)
			return 1
		}
		fmt.Fprintln(stdout, string(out))
		if res.Diagnostics.HasErrors() {
			return 1
		}
		return 0
	}

	if res.Diagnostics.HasErrors() {
		fmt.Fprintln(stderr, res.Diagnostics.Format(opts.filePath))
		if res.StylesheetSkipped {
			fmt.Fprintf(stderr, "note: stylesheet %s was not checked because the form has unresolved questions\n", opts.stylesheet)
		}
		return 1
	}
	if res.Diagnostics.Count() > 0 {
		fmt.Fprintln(stdout, res.Diagnostics.Format(opts.filePath))
		fmt.Fprintf(stdout, "%d warning(s) found.\n", res.Diagnostics.WarningCount())
		return 0
	}

	fmt.Fprintln(stdout, "No errors found.")
	return 0
}

func handleLint(args []string, stdout, stderr io.Writer) int {
	opts, err := parseArgs(args, "--stylesheet")
	if err != nil {
		fmt.Fprintf(stderr, "Error: %s\n", err)
		return 1
	}

	form, err := loader.LoadFormFile(opts.filePath)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %s\n", err)
		return 1
	}

	diag := linter.Lint(form)
	if opts.stylesheet != "" {
		sheet, err := loader.LoadStylesheetFile(opts.stylesheet)
		if err != nil {
			fmt.Fprintf(stderr, "Error: %s\n", err)
			return 1
		}
		diag.Append(linter.LintStylesheet(sheet, form), opts.stylesheet)
	}

	if diag.Count() == 0 {
		fmt.Fprintln(stdout, "No lint warnings.")
		return 0
	}

	fmt.Fprint(stdout, diag.Format(opts.filePath))
	fmt.Fprintln(stdout)
	fmt.Fprintf(stdout, "%d warning(s) found.\n", diag.Count())
	return 0
}

func handlePrint(args []string, stdout, stderr io.Writer) int {
	opts, err := parseArgs(args, "--types")
	if err != nil {
		fmt.Fprintf(stderr, "Error: %s\n", err)
		return 1
	}

	form, err := loader.LoadFormFile(opts.filePath)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %s\n", err)
		return 1
	}

	if !opts.types {
		fmt.Fprint(stdout, ast.Print(form))
		return 0
	}

	res := checker.Check(form)
	fmt.Fprint(stdout, ast.PrintTyped(form, res.TypeOf))
	if res.Diagnostics.HasErrors() {
		fmt.Fprintln(stderr, res.Diagnostics.Format(opts.filePath))
		return 1
	}
	return 0
}
