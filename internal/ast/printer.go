package ast

import (
	"fmt"
	"strings"

	"github.com/softwcons/qlcheck/internal/types"
)

// TypeOf reports the resolved type of an expression, if known
type TypeOf func(Expression) (types.Type, bool)

// Print returns a tree-like string representation of the AST for debugging
func Print(node Node) string {
	return PrintTyped(node, nil)
}

// PrintTyped is like Print but annotates every expression with the type
// reported by typeOf.
func PrintTyped(node Node, typeOf TypeOf) string {
	p := &printer{typeOf: typeOf}
	p.printNode(node, 0)
	return p.sb.String()
}

type printer struct {
	sb     strings.Builder
	typeOf TypeOf
}

func (p *printer) annotate(expr Expression) string {
	if p.typeOf == nil {
		return ""
	}
	if t, ok := p.typeOf(expr); ok {
		return " : " + t.String()
	}
	return ""
}

func (p *printer) printBinary(prefix, kind string, op Operator, left, right Expression, self Expression, indent int) {
	p.sb.WriteString(fmt.Sprintf("%s%s: %s%s\n", prefix, kind, op, p.annotate(self)))
	p.sb.WriteString(fmt.Sprintf("%s  Left:\n", prefix))
	p.printNode(left, indent+2)
	p.sb.WriteString(fmt.Sprintf("%s  Right:\n", prefix))
	p.printNode(right, indent+2)
}

func (p *printer) printNode(node Node, indent int) {
	if node == nil {
		return
	}

	prefix := strings.Repeat("  ", indent)

	switch n := node.(type) {
	case *Form:
		p.sb.WriteString(fmt.Sprintf("%sForm: %s\n", prefix, n.Name))
		if n.Body != nil {
			p.printNode(n.Body, indent+1)
		}

	case *Block:
		p.sb.WriteString(fmt.Sprintf("%sBlock\n", prefix))
		for _, stmt := range n.Statements {
			p.printNode(stmt, indent+1)
		}

	case *Question:
		p.sb.WriteString(fmt.Sprintf("%sQuestion: %s %q %s\n", prefix, n.ID, n.Label, n.Type))

	case *ComputedQuestion:
		p.sb.WriteString(fmt.Sprintf("%sComputedQuestion: %s %q %s\n", prefix, n.ID, n.Label, n.Type))
		p.sb.WriteString(fmt.Sprintf("%s  Value:\n", prefix))
		p.printNode(n.Expr, indent+2)

	case *Conditional:
		p.sb.WriteString(fmt.Sprintf("%sConditional\n", prefix))
		p.sb.WriteString(fmt.Sprintf("%s  Condition:\n", prefix))
		p.printNode(n.Condition, indent+2)
		if n.Body != nil {
			p.sb.WriteString(fmt.Sprintf("%s  Body:\n", prefix))
			p.printNode(n.Body, indent+2)
		}

	case *ArithmeticExpr:
		p.printBinary(prefix, "ArithmeticExpr", n.Op, n.Left, n.Right, n, indent)

	case *RelationalExpr:
		p.printBinary(prefix, "RelationalExpr", n.Op, n.Left, n.Right, n, indent)

	case *EqualityExpr:
		p.printBinary(prefix, "EqualityExpr", n.Op, n.Left, n.Right, n, indent)

	case *LogicalExpr:
		p.printBinary(prefix, "LogicalExpr", n.Op, n.Left, n.Right, n, indent)

	case *NotExpr:
		p.sb.WriteString(fmt.Sprintf("%sNotExpr%s\n", prefix, p.annotate(n)))
		p.sb.WriteString(fmt.Sprintf("%s  Operand:\n", prefix))
		p.printNode(n.Operand, indent+2)

	case *Identifier:
		p.sb.WriteString(fmt.Sprintf("%sIdentifier: %s%s\n", prefix, n.Name, p.annotate(n)))

	case *BooleanLit:
		p.sb.WriteString(fmt.Sprintf("%sBooleanLit: %t%s\n", prefix, n.Value, p.annotate(n)))

	case *IntegerLit:
		p.sb.WriteString(fmt.Sprintf("%sIntegerLit: %d%s\n", prefix, n.Value, p.annotate(n)))

	case *DecimalLit:
		p.sb.WriteString(fmt.Sprintf("%sDecimalLit: %s%s\n", prefix, n.Value, p.annotate(n)))

	case *StringLit:
		p.sb.WriteString(fmt.Sprintf("%sStringLit: %q%s\n", prefix, n.Value, p.annotate(n)))

	default:
		p.sb.WriteString(fmt.Sprintf("%sUnknown node type: %T\n", prefix, node))
	}
}
