package linter

import (
	"strings"
	"unicode"

	"github.com/softwcons/qlcheck/internal/ast"
	"github.com/softwcons/qlcheck/internal/diagnostic"
	"github.com/softwcons/qlcheck/internal/stylesheet"
)

// Linter performs style and best-practice checks on a QL form.
// It reports warnings (never errors) using the diagnostic system.
type Linter struct {
	form   *ast.Form
	diag   *diagnostic.Diagnostics
	labels map[string]string // label text -> first question using it
}

// Lint runs all lint rules on the given form and returns diagnostics.
func Lint(form *ast.Form) *diagnostic.Diagnostics {
	l := &Linter{
		form:   form,
		diag:   diagnostic.New(),
		labels: make(map[string]string),
	}
	if form == nil {
		return l.diag
	}

	if form.Body == nil || len(form.Body.Statements) == 0 {
		l.diag.Warningf(form.Line, form.Column, "form '%s' has no questions", form.Name)
		return l.diag
	}
	l.lintStatements(form.Body.Statements)

	return l.diag
}

// LintStylesheet warns about form questions that the stylesheet never places.
func LintStylesheet(sheet *stylesheet.Stylesheet, form *ast.Form) *diagnostic.Diagnostics {
	diag := diagnostic.New()
	if sheet == nil || form == nil || form.Body == nil {
		return diag
	}

	placed := make(map[string]bool)
	for _, q := range sheet.Questions() {
		placed[q.ID] = true
	}
	for _, q := range collectQuestions(form.Body.Statements, nil) {
		if !placed[q.ID] {
			line, col := sheet.Pos()
			diag.Warningf(line, col, "question '%s' is not placed in stylesheet '%s'", q.ID, sheet.Name)
		}
	}
	return diag
}

func (l *Linter) lintStatements(stmts []ast.Statement) {
	for _, stmt := range stmts {
		switch s := stmt.(type) {
		case *ast.Question:
			l.lintQuestion(s)
		case *ast.ComputedQuestion:
			l.lintQuestion(&s.Question)
		case *ast.Conditional:
			l.checkConstantCondition(s)
			if s.Body == nil || len(s.Body.Statements) == 0 {
				l.diag.Warningf(s.Line, s.Column, "conditional has an empty body")
				continue
			}
			l.lintStatements(s.Body.Statements)
		case *ast.Block:
			l.lintStatements(s.Statements)
		}
	}
}

func (l *Linter) lintQuestion(q *ast.Question) {
	l.checkEmptyLabel(q)
	l.checkQuestionNaming(q)
	l.checkDuplicateLabel(q)
}

// --- Lint rules ---

// checkEmptyLabel warns if a question has no label text.
func (l *Linter) checkEmptyLabel(q *ast.Question) {
	if strings.TrimSpace(q.Label) == "" {
		l.diag.Warningf(q.Line, q.Column, "question '%s' has an empty label", q.ID)
	}
}

// checkQuestionNaming warns if a question identifier is not lowerCamelCase.
func (l *Linter) checkQuestionNaming(q *ast.Question) {
	if !isCamelCase(q.ID) {
		l.diag.Warningf(q.Line, q.Column,
			"question '%s' should use lowerCamelCase naming", q.ID)
	}
}

// checkDuplicateLabel warns if two questions show the same label.
func (l *Linter) checkDuplicateLabel(q *ast.Question) {
	label := strings.TrimSpace(q.Label)
	if label == "" {
		return
	}
	if first, ok := l.labels[label]; ok && first != q.ID {
		l.diag.Warningf(q.Line, q.Column,
			"question '%s' has the same label as '%s'", q.ID, first)
		return
	}
	l.labels[label] = q.ID
}

// checkConstantCondition warns if a conditional is guarded by a literal.
func (l *Linter) checkConstantCondition(c *ast.Conditional) {
	if lit, ok := c.Condition.(*ast.BooleanLit); ok {
		l.diag.Warningf(c.Line, c.Column, "condition is always %t", lit.Value)
	}
}

func collectQuestions(stmts []ast.Statement, out []*ast.Question) []*ast.Question {
	for _, stmt := range stmts {
		switch s := stmt.(type) {
		case *ast.Question:
			out = append(out, s)
		case *ast.ComputedQuestion:
			out = append(out, &s.Question)
		case *ast.Conditional:
			if s.Body != nil {
				out = collectQuestions(s.Body.Statements, out)
			}
		case *ast.Block:
			out = collectQuestions(s.Statements, out)
		}
	}
	return out
}

// --- Naming convention helpers ---

// isCamelCase returns true if the name starts with a lowercase letter and
// contains only letters and digits.
func isCamelCase(name string) bool {
	if len(name) == 0 {
		return false
	}
	runes := []rune(name)
	if !unicode.IsLower(runes[0]) {
		return false
	}
	for _, r := range runes {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
