package diagnostic

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Severity represents the severity level of a diagnostic message
type Severity int

const (
	Error Severity = iota
	Warning
	Info
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case Error:
		return "error"
	case Warning:
		return "warning"
	case Info:
		return "info"
	default:
		return "unknown"
	}
}

// Kind identifies which semantic rule a diagnostic reports
type Kind int

const (
	DuplicateQuestion Kind = iota
	UndefinedReference
	InvalidConditionType
	InvalidQuestionExpressionType
	InvalidOperatorTypes
	IncompatibleWidget
	Lint
)

// String returns the name of the diagnostic kind
func (k Kind) String() string {
	switch k {
	case DuplicateQuestion:
		return "DuplicateQuestion"
	case UndefinedReference:
		return "UndefinedReference"
	case InvalidConditionType:
		return "InvalidConditionType"
	case InvalidQuestionExpressionType:
		return "InvalidQuestionExpressionType"
	case InvalidOperatorTypes:
		return "InvalidOperatorTypes"
	case IncompatibleWidget:
		return "IncompatibleWidget"
	case Lint:
		return "Lint"
	default:
		return "Unknown"
	}
}

// Diagnostic represents a single analyzer error, warning, or info message
type Diagnostic struct {
	Kind     Kind
	Severity Severity
	Message  string
	Line     int
	Column   int
	File     string // optional file path (form or stylesheet)
	Hint     string // optional suggestion
}

// Diagnostics manages an ordered collection of diagnostic messages
type Diagnostics struct {
	items []Diagnostic
}

// New creates a new empty Diagnostics collection
func New() *Diagnostics {
	return &Diagnostics{
		items: make([]Diagnostic, 0),
	}
}

// Reportf adds an error diagnostic of the given kind with formatted message
func (d *Diagnostics) Reportf(kind Kind, line, col int, format string, args ...interface{}) {
	d.items = append(d.items, Diagnostic{
		Kind:     kind,
		Severity: Error,
		Message:  fmt.Sprintf(format, args...),
		Line:     line,
		Column:   col,
	})
}

// ReportWithHint adds an error diagnostic of the given kind with a hint
func (d *Diagnostics) ReportWithHint(kind Kind, line, col int, msg, hint string) {
	d.items = append(d.items, Diagnostic{
		Kind:     kind,
		Severity: Error,
		Message:  msg,
		Line:     line,
		Column:   col,
		Hint:     hint,
	})
}

// Warningf adds a lint warning with formatted message
func (d *Diagnostics) Warningf(line, col int, format string, args ...interface{}) {
	d.items = append(d.items, Diagnostic{
		Kind:     Lint,
		Severity: Warning,
		Message:  fmt.Sprintf(format, args...),
		Line:     line,
		Column:   col,
	})
}

// Append copies every diagnostic of other onto d, tagging those without a
// file with file.
func (d *Diagnostics) Append(other *Diagnostics, file string) {
	if other == nil {
		return
	}
	for _, item := range other.items {
		if item.File == "" {
			item.File = file
		}
		d.items = append(d.items, item)
	}
}

// HasErrors returns true if there are any error-level diagnostics
func (d *Diagnostics) HasErrors() bool {
	for _, item := range d.items {
		if item.Severity == Error {
			return true
		}
	}
	return false
}

// HasKind reports whether any diagnostic of the given kind was recorded
func (d *Diagnostics) HasKind(kinds ...Kind) bool {
	for _, item := range d.items {
		for _, k := range kinds {
			if item.Kind == k {
				return true
			}
		}
	}
	return false
}

// Errors returns only the error-level diagnostics
func (d *Diagnostics) Errors() []Diagnostic {
	errors := make([]Diagnostic, 0)
	for _, item := range d.items {
		if item.Severity == Error {
			errors = append(errors, item)
		}
	}
	return errors
}

// All returns all diagnostics regardless of severity, in report order
func (d *Diagnostics) All() []Diagnostic {
	return d.items
}

// Kinds returns the kind of every diagnostic, in report order
func (d *Diagnostics) Kinds() []Kind {
	kinds := make([]Kind, len(d.items))
	for i, item := range d.items {
		kinds[i] = item.Kind
	}
	return kinds
}

// Count returns the total number of diagnostics
func (d *Diagnostics) Count() int {
	return len(d.items)
}

// CountKind returns the number of diagnostics of the given kind
func (d *Diagnostics) CountKind(kind Kind) int {
	count := 0
	for _, item := range d.items {
		if item.Kind == kind {
			count++
		}
	}
	return count
}

// ErrorCount returns the number of error-level diagnostics
func (d *Diagnostics) ErrorCount() int {
	count := 0
	for _, item := range d.items {
		if item.Severity == Error {
			count++
		}
	}
	return count
}

// WarningCount returns the number of warning-level diagnostics
func (d *Diagnostics) WarningCount() int {
	count := 0
	for _, item := range d.items {
		if item.Severity == Warning {
			count++
		}
	}
	return count
}

// PromoteWarnings turns every warning into an error
func (d *Diagnostics) PromoteWarnings() {
	for i := range d.items {
		if d.items[i].Severity == Warning {
			d.items[i].Severity = Error
		}
	}
}

// Format returns human-readable error messages
// Output format:
//
//	error[form.yml:3:10]: UndefinedReference: undefined reference to 'x'
//	  hint: declare 'x' before using it
//	warning[form.yml:5:1]: Lint: question 'y' has an empty label
func (d *Diagnostics) Format(filename string) string {
	if len(d.items) == 0 {
		return ""
	}

	var builder strings.Builder
	for i, item := range d.items {
		fileToUse := filename
		if item.File != "" {
			fileToUse = item.File
		}

		builder.WriteString(fmt.Sprintf("%s[%s:%d:%d]: %s: %s",
			item.Severity.String(),
			fileToUse,
			item.Line,
			item.Column,
			item.Kind,
			item.Message,
		))

		if item.Hint != "" {
			builder.WriteString(fmt.Sprintf("\n  hint: %s", item.Hint))
		}

		if i < len(d.items)-1 {
			builder.WriteString("\n")
		}
	}

	return builder.String()
}

type jsonDiagnostic struct {
	Kind     string `json:"kind"`
	Severity string `json:"severity"`
	Message  string `json:"message"`
	File     string `json:"file,omitempty"`
	Line     int    `json:"line"`
	Column   int    `json:"column"`
	Hint     string `json:"hint,omitempty"`
}

// FormatJSON renders the diagnostics as a JSON array
func (d *Diagnostics) FormatJSON(filename string) ([]byte, error) {
	out := make([]jsonDiagnostic, 0, len(d.items))
	for _, item := range d.items {
		file := item.File
		if file == "" {
			file = filename
		}
		out = append(out, jsonDiagnostic{
			Kind:     item.Kind.String(),
			Severity: item.Severity.String(),
			Message:  item.Message,
			File:     file,
			Line:     item.Line,
			Column:   item.Column,
			Hint:     item.Hint,
		})
	}
	return json.MarshalIndent(out, "", "  ")
}

// Clear removes all diagnostics from the collection
func (d *Diagnostics) Clear() {
	d.items = make([]Diagnostic, 0)
}
