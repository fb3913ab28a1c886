// Package widgetcheck validates the widgets a QLS stylesheet assigns against
// the declared types of the questions in the paired QL form.
package widgetcheck

import (
	"strings"

	"github.com/softwcons/qlcheck/internal/ast"
	"github.com/softwcons/qlcheck/internal/checker"
	"github.com/softwcons/qlcheck/internal/diagnostic"
	"github.com/softwcons/qlcheck/internal/stylesheet"
	"github.com/softwcons/qlcheck/internal/types"
)

type widgetChecker struct {
	lookup checker.TypeLookup
	diag   *diagnostic.Diagnostics
}

// Check walks sheet depth-first and reports every widget that cannot render
// the type its question is declared with in lookup. Neither input is modified.
func Check(sheet *stylesheet.Stylesheet, lookup checker.TypeLookup) *diagnostic.Diagnostics {
	w := &widgetChecker{
		lookup: lookup,
		diag:   diagnostic.New(),
	}
	if sheet == nil {
		return w.diag
	}
	for _, page := range sheet.Pages {
		w.checkPage(page)
	}
	return w.diag
}

// CheckAgainstForm type-checks form and validates sheet against the
// resulting question types.
func CheckAgainstForm(sheet *stylesheet.Stylesheet, form *ast.Form) *diagnostic.Diagnostics {
	res := checker.Check(form)
	return Check(sheet, res.Env.Snapshot())
}

func (w *widgetChecker) checkPage(page *stylesheet.Page) {
	if page == nil {
		return
	}
	w.checkDefaults(page.Defaults)
	w.checkSegments(page.Segments)
}

func (w *widgetChecker) checkSegments(segments []stylesheet.Segment) {
	for _, seg := range segments {
		switch s := seg.(type) {
		case *stylesheet.Section:
			if s == nil {
				continue
			}
			w.checkDefaults(s.Defaults)
			w.checkSegments(s.Segments)
		case *stylesheet.Question:
			if s == nil {
				continue
			}
			w.checkQuestion(s)
		}
	}
}

func (w *widgetChecker) checkDefaults(defaults []*stylesheet.DefaultStyle) {
	for _, d := range defaults {
		if d == nil || d.Widget == nil {
			continue
		}
		w.checkWidget(d.Widget, d.Type, "default style")
	}
}

func (w *widgetChecker) checkQuestion(q *stylesheet.Question) {
	// Questions without a widget get the renderer's default and are exempt.
	if !q.HasWidget() {
		return
	}

	t := types.Undefined
	if w.lookup != nil {
		t = w.lookup.Resolve(q.ID)
	}
	if t == types.Undefined {
		line, col := q.Pos()
		w.diag.Reportf(diagnostic.UndefinedReference, line, col,
			"stylesheet references question '%s' which is not declared in the form", q.ID)
		return
	}

	for _, widget := range q.Widgets {
		if widget == nil {
			continue
		}
		w.checkWidget(widget, t, "question '"+q.ID+"'")
	}
}

func (w *widgetChecker) checkWidget(widget *stylesheet.StyledWidget, t types.Type, subject string) {
	if IsCompatible(t, widget.Kind) {
		return
	}
	line, col := widget.Pos()
	w.diag.ReportWithHint(diagnostic.IncompatibleWidget, line, col,
		"widget '"+widget.Kind.String()+"' cannot render "+subject+" of type "+t.String(),
		"use one of: "+kindList(Compatible(t)))
}

func kindList(kinds []stylesheet.WidgetKind) string {
	if len(kinds) == 0 {
		return "(none)"
	}
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = k.String()
	}
	return strings.Join(names, ", ")
}
