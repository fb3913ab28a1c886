package linter

import (
	"strings"
	"testing"

	"github.com/softwcons/qlcheck/internal/ast"
	"github.com/softwcons/qlcheck/internal/diagnostic"
	"github.com/softwcons/qlcheck/internal/stylesheet"
	"github.com/softwcons/qlcheck/internal/types"
)

func lintForm(t *testing.T, stmts ...ast.Statement) []string {
	t.Helper()
	diag := Lint(&ast.Form{Name: "test", Body: &ast.Block{Statements: stmts}})

	var warnings []string
	for _, d := range diag.All() {
		if d.Severity != diagnostic.Warning || d.Kind != diagnostic.Lint {
			t.Fatalf("linter produced a non-warning diagnostic: %+v", d)
		}
		warnings = append(warnings, d.Message)
	}
	return warnings
}

func containsWarning(warnings []string, substr string) bool {
	for _, w := range warnings {
		if strings.Contains(w, substr) {
			return true
		}
	}
	return false
}

func q(id, label string) *ast.Question {
	return &ast.Question{ID: id, Label: label, Type: types.Boolean}
}

// --- Empty form ---

func TestEmptyForm(t *testing.T) {
	warnings := lintForm(t)
	if !containsWarning(warnings, "has no questions") {
		t.Errorf("Expected empty form warning, got: %v", warnings)
	}
}

func TestNilFormNoWarning(t *testing.T) {
	if Lint(nil).Count() != 0 {
		t.Error("Expected no warnings for nil form")
	}
}

// --- Labels ---

func TestEmptyLabel(t *testing.T) {
	warnings := lintForm(t, q("hasSoldHouse", "  "))
	if !containsWarning(warnings, "empty label") {
		t.Errorf("Expected empty label warning, got: %v", warnings)
	}
}

func TestDuplicateLabel(t *testing.T) {
	warnings := lintForm(t,
		q("first", "Did you sell a house?"),
		&ast.Conditional{Condition: &ast.Identifier{Name: "first"}, Body: &ast.Block{Statements: []ast.Statement{
			&ast.ComputedQuestion{Question: *q("second", "Did you sell a house?"), Expr: &ast.BooleanLit{Value: true}},
		}}},
	)
	if !containsWarning(warnings, "question 'second' has the same label as 'first'") {
		t.Errorf("Expected duplicate label warning, got: %v", warnings)
	}
}

func TestWellFormedFormNoWarnings(t *testing.T) {
	warnings := lintForm(t,
		q("hasSoldHouse", "Did you sell a house?"),
		&ast.Conditional{Condition: &ast.Identifier{Name: "hasSoldHouse"}, Body: &ast.Block{Statements: []ast.Statement{
			q("sellingPrice", "Price the house was sold for:"),
		}}},
	)
	if len(warnings) != 0 {
		t.Errorf("Expected no warnings, got: %v", warnings)
	}
}

// --- Naming ---

func TestQuestionNaming(t *testing.T) {
	tests := []struct {
		id   string
		warn bool
	}{
		{"hasSoldHouse", false},
		{"q1", false},
		{"HasSoldHouse", true},
		{"has_sold_house", true},
		{"", true},
	}
	for _, tt := range tests {
		warnings := lintForm(t, q(tt.id, "Label "+tt.id))
		if got := containsWarning(warnings, "lowerCamelCase"); got != tt.warn {
			t.Errorf("id %q: naming warning = %v, want %v (%v)", tt.id, got, tt.warn, warnings)
		}
	}
}

// --- Conditionals ---

func TestEmptyConditional(t *testing.T) {
	warnings := lintForm(t, q("a", "A"), &ast.Conditional{Condition: &ast.Identifier{Name: "a"}})
	if !containsWarning(warnings, "empty body") {
		t.Errorf("Expected empty conditional warning, got: %v", warnings)
	}
}

func TestConstantCondition(t *testing.T) {
	warnings := lintForm(t, &ast.Conditional{
		Condition: &ast.BooleanLit{Value: false},
		Body:      &ast.Block{Statements: []ast.Statement{q("a", "A")}},
	})
	if !containsWarning(warnings, "condition is always false") {
		t.Errorf("Expected constant condition warning, got: %v", warnings)
	}
}

// --- Stylesheet coverage ---

func TestLintStylesheetUnplacedQuestion(t *testing.T) {
	form := &ast.Form{Body: &ast.Block{Statements: []ast.Statement{
		q("placed", "Placed"),
		&ast.Block{Statements: []ast.Statement{q("forgotten", "Forgotten")}},
	}}}
	sheet := &stylesheet.Stylesheet{Name: "s", Pages: []*stylesheet.Page{{
		Segments: []stylesheet.Segment{&stylesheet.Section{Segments: []stylesheet.Segment{&stylesheet.Question{ID: "placed"}}}},
	}}}

	diag := LintStylesheet(sheet, form)
	if diag.Count() != 1 || !strings.Contains(diag.All()[0].Message, "'forgotten'") {
		t.Errorf("Expected one unplaced question warning, got: %s", diag.Format("test"))
	}
	if LintStylesheet(nil, form).Count() != 0 {
		t.Error("Expected no warnings without a stylesheet")
	}
}
