package analyzer

import (
	"fmt"

	"github.com/softwcons/qlcheck/internal/ast"
	"github.com/softwcons/qlcheck/internal/checker"
	"github.com/softwcons/qlcheck/internal/diagnostic"
	"github.com/softwcons/qlcheck/internal/linter"
	"github.com/softwcons/qlcheck/internal/loader"
	"github.com/softwcons/qlcheck/internal/stylesheet"
	"github.com/softwcons/qlcheck/internal/widgetcheck"
)

// Options controls which passes run
type Options struct {
	Lint             bool
	WarningsAsErrors bool
	FormFile         string // used to tag form diagnostics
	StylesheetFile   string // used to tag stylesheet diagnostics
}

// Result holds the output of an analysis run
type Result struct {
	Diagnostics *diagnostic.Diagnostics
	Form        *checker.Result

	// StylesheetSkipped is set when a stylesheet was supplied but the form
	// had duplicate or undefined questions, so widget types could not be
	// trusted.
	StylesheetSkipped bool
}

// Analyze runs the pipeline: form check -> stylesheet check -> lint.
// sheet may be nil.
func Analyze(form *ast.Form, sheet *stylesheet.Stylesheet, opts Options) *Result {
	res := &Result{Diagnostics: diagnostic.New()}

	formResult := checker.Check(form)
	res.Form = formResult
	res.Diagnostics.Append(formResult.Diagnostics, opts.FormFile)

	if sheet != nil {
		if formResult.Diagnostics.HasKind(diagnostic.DuplicateQuestion, diagnostic.UndefinedReference) {
			res.StylesheetSkipped = true
		} else {
			widgets := widgetcheck.Check(sheet, formResult.Env.Snapshot())
			res.Diagnostics.Append(widgets, opts.StylesheetFile)
		}
	}

	if opts.Lint {
		res.Diagnostics.Append(linter.Lint(form), opts.FormFile)
		if sheet != nil {
			res.Diagnostics.Append(linter.LintStylesheet(sheet, form), opts.StylesheetFile)
		}
		if opts.WarningsAsErrors {
			res.Diagnostics.PromoteWarnings()
		}
	}

	return res
}

// AnalyzeFiles loads the serialized form (and stylesheet, if stylesheetPath
// is not empty) and analyzes them.
func AnalyzeFiles(formPath, stylesheetPath string, opts Options) (*Result, error) {
	form, err := loader.LoadFormFile(formPath)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", formPath, err)
	}

	var sheet *stylesheet.Stylesheet
	if stylesheetPath != "" {
		sheet, err = loader.LoadStylesheetFile(stylesheetPath)
		if err != nil {
			return nil, fmt.Errorf("loading %s: %w", stylesheetPath, err)
		}
	}

	if opts.FormFile == "" {
		opts.FormFile = formPath
	}
	if opts.StylesheetFile == "" {
		opts.StylesheetFile = stylesheetPath
	}
	return Analyze(form, sheet, opts), nil
}
