package ast

import "github.com/softwcons/qlcheck/internal/types"

// Node is the base interface for all AST nodes
type Node interface {
	Pos() (line, col int)
}

// Statement nodes
type Statement interface {
	Node
	stmtNode()
}

// Expression nodes
type Expression interface {
	Node
	exprNode()
}

// Form is the root of a QL document
type Form struct {
	Name   string
	Body   *Block
	Line   int
	Column int
}

func (f *Form) Pos() (int, int) { return f.Line, f.Column }

// --- Statements ---

// Block is an ordered sequence of statements
type Block struct {
	Statements []Statement
	Line       int
	Column     int
}

func (b *Block) Pos() (int, int) { return b.Line, b.Column }
func (b *Block) stmtNode()       {}

// Question declares an answerable question of a given type
type Question struct {
	ID     string
	Label  string
	Type   types.Type
	Line   int
	Column int
}

func (q *Question) Pos() (int, int) { return q.Line, q.Column }
func (q *Question) stmtNode()       {}

// ComputedQuestion is a question whose value is derived from Expr
type ComputedQuestion struct {
	Question
	Expr Expression
}

func (c *ComputedQuestion) stmtNode() {}

// Conditional guards Body with Condition
type Conditional struct {
	Condition Expression
	Body      *Block
	Line      int
	Column    int
}

func (c *Conditional) Pos() (int, int) { return c.Line, c.Column }
func (c *Conditional) stmtNode()       {}

// --- Expressions ---

// Identifier references a previously declared question
type Identifier struct {
	Name   string
	Line   int
	Column int
}

func (i *Identifier) Pos() (int, int) { return i.Line, i.Column }
func (i *Identifier) exprNode()       {}

// BooleanLit is a boolean literal
type BooleanLit struct {
	Value  bool
	Line   int
	Column int
}

func (b *BooleanLit) Pos() (int, int) { return b.Line, b.Column }
func (b *BooleanLit) exprNode()       {}

// IntegerLit is an integer literal
type IntegerLit struct {
	Value  int64
	Line   int
	Column int
}

func (i *IntegerLit) Pos() (int, int) { return i.Line, i.Column }
func (i *IntegerLit) exprNode()       {}

// DecimalLit is a decimal literal; Value keeps the source text
type DecimalLit struct {
	Value  string
	Line   int
	Column int
}

func (d *DecimalLit) Pos() (int, int) { return d.Line, d.Column }
func (d *DecimalLit) exprNode()       {}

// StringLit is an already unquoted string literal
type StringLit struct {
	Value  string
	Line   int
	Column int
}

func (s *StringLit) Pos() (int, int) { return s.Line, s.Column }
func (s *StringLit) exprNode()       {}

// NotExpr is logical negation
type NotExpr struct {
	Operand Expression
	Line    int
	Column  int
}

func (n *NotExpr) Pos() (int, int) { return n.Line, n.Column }
func (n *NotExpr) exprNode()       {}

// ArithmeticExpr is one of + - * /
type ArithmeticExpr struct {
	Op     Operator
	Left   Expression
	Right  Expression
	Line   int
	Column int
}

func (a *ArithmeticExpr) Pos() (int, int) { return a.Line, a.Column }
func (a *ArithmeticExpr) exprNode()       {}

// RelationalExpr is one of < <= > >=
type RelationalExpr struct {
	Op     Operator
	Left   Expression
	Right  Expression
	Line   int
	Column int
}

func (r *RelationalExpr) Pos() (int, int) { return r.Line, r.Column }
func (r *RelationalExpr) exprNode()       {}

// EqualityExpr is = or !=
type EqualityExpr struct {
	Op     Operator
	Left   Expression
	Right  Expression
	Line   int
	Column int
}

func (e *EqualityExpr) Pos() (int, int) { return e.Line, e.Column }
func (e *EqualityExpr) exprNode()       {}

// LogicalExpr is and / or
type LogicalExpr struct {
	Op     Operator
	Left   Expression
	Right  Expression
	Line   int
	Column int
}

func (l *LogicalExpr) Pos() (int, int) { return l.Line, l.Column }
func (l *LogicalExpr) exprNode()       {}
