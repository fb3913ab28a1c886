// Package stylesheet defines the AST of QLS documents, which lay out the
// questions of a QL form into pages and sections and assign widgets to them.
package stylesheet

import "github.com/softwcons/qlcheck/internal/types"

// Node is the base interface for all stylesheet nodes
type Node interface {
	Pos() (line, col int)
}

// Segment is an element of a page or section body
type Segment interface {
	Node
	segmentNode()
}

// Stylesheet is the root of a QLS document
type Stylesheet struct {
	Name   string
	Pages  []*Page
	Line   int
	Column int
}

func (s *Stylesheet) Pos() (int, int) { return s.Line, s.Column }

// Page groups segments into one screen of the rendered form
type Page struct {
	Name     string
	Segments []Segment
	Defaults []*DefaultStyle
	Line     int
	Column   int
}

func (p *Page) Pos() (int, int) { return p.Line, p.Column }

// Section is a named group of segments inside a page or another section
type Section struct {
	Name     string
	Segments []Segment
	Defaults []*DefaultStyle
	Line     int
	Column   int
}

func (s *Section) Pos() (int, int) { return s.Line, s.Column }
func (s *Section) segmentNode()    {}

// Question places a form question, optionally with explicit widgets.
// ID refers to a question declared in the paired QL form.
type Question struct {
	ID      string
	Widgets []*StyledWidget
	Line    int
	Column  int
}

func (q *Question) Pos() (int, int) { return q.Line, q.Column }
func (q *Question) segmentNode()    {}

// HasWidget reports whether the question carries an explicit widget
func (q *Question) HasWidget() bool {
	return len(q.Widgets) > 0
}

// DefaultStyle assigns a widget to every question of Type within the
// enclosing page or section
type DefaultStyle struct {
	Type   types.Type
	Widget *StyledWidget
	Line   int
	Column int
}

func (d *DefaultStyle) Pos() (int, int) { return d.Line, d.Column }

// StyledWidget is a widget declaration with its parameters
type StyledWidget struct {
	Kind   WidgetKind
	Params []string          // e.g. slider bounds or radio labels, as written
	Style  map[string]string // width, font, fontsize, color
	Line   int
	Column int
}

func (w *StyledWidget) Pos() (int, int) { return w.Line, w.Column }
