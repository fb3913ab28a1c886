package loader

import (
	"io"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/softwcons/qlcheck/internal/ast"
	"github.com/softwcons/qlcheck/internal/types"
)

// LoadForm decodes a serialized QL form
func LoadForm(r io.Reader) (*ast.Form, error) {
	root, err := readDocument(r, "form")
	if err != nil {
		return nil, err
	}
	return decodeForm(root)
}

// LoadFormFile decodes the serialized QL form stored at path
func LoadFormFile(path string) (*ast.Form, error) {
	f, err := openFile(path, "form")
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return LoadForm(f)
}

func decodeForm(root *yaml.Node) (*ast.Form, error) {
	m, err := asMapping(root)
	if err != nil {
		return nil, err
	}
	name, err := m.scalar("form")
	if err != nil {
		return nil, err
	}
	line, col, err := m.position()
	if err != nil {
		return nil, err
	}
	form := &ast.Form{Name: name, Line: line, Column: col, Body: &ast.Block{Line: line, Column: col}}
	if body, ok := m.get("body"); ok {
		block, err := decodeBlock(body)
		if err != nil {
			return nil, err
		}
		form.Body = block
	}
	return form, nil
}

func decodeBlock(n *yaml.Node) (*ast.Block, error) {
	items, err := asSequence(n, "body")
	if err != nil {
		return nil, err
	}
	block := &ast.Block{Line: n.Line, Column: n.Column, Statements: make([]ast.Statement, 0, len(items))}
	for _, item := range items {
		stmt, err := decodeStatement(item)
		if err != nil {
			return nil, err
		}
		block.Statements = append(block.Statements, stmt)
	}
	return block, nil
}

func decodeStatement(n *yaml.Node) (ast.Statement, error) {
	m, err := asMapping(n)
	if err != nil {
		return nil, err
	}
	line, col, err := m.position()
	if err != nil {
		return nil, err
	}

	switch {
	case m.has("question"):
		return decodeQuestion(m, "question", line, col)

	case m.has("computed"):
		q, err := decodeQuestion(m, "computed", line, col)
		if err != nil {
			return nil, err
		}
		exprNode, err := m.require("expr")
		if err != nil {
			return nil, err
		}
		expr, err := decodeExpression(exprNode)
		if err != nil {
			return nil, err
		}
		return &ast.ComputedQuestion{Question: *q, Expr: expr}, nil

	case m.has("if"):
		condNode, _ := m.get("if")
		cond, err := decodeExpression(condNode)
		if err != nil {
			return nil, err
		}
		stmt := &ast.Conditional{Condition: cond, Line: line, Column: col, Body: &ast.Block{Line: line, Column: col}}
		if body, ok := m.get("body"); ok {
			block, err := decodeBlock(body)
			if err != nil {
				return nil, err
			}
			stmt.Body = block
		}
		return stmt, nil

	case m.has("block"):
		body, _ := m.get("block")
		return decodeBlock(body)

	default:
		return nil, errorAt(n, "unknown statement: expected one of question, computed, if, block")
	}
}

func decodeQuestion(m *mapping, key string, line, col int) (*ast.Question, error) {
	id, err := m.scalar(key)
	if err != nil {
		return nil, err
	}
	label, err := m.optionalScalar("label")
	if err != nil {
		return nil, err
	}
	typeName, err := m.scalar("type")
	if err != nil {
		return nil, err
	}
	t := types.Parse(typeName)
	if t == types.Undefined {
		typeNode, _ := m.get("type")
		return nil, errorAt(typeNode, "unknown question type %q", typeName)
	}
	return &ast.Question{ID: id, Label: label, Type: t, Line: line, Column: col}, nil
}

func decodeExpression(n *yaml.Node) (ast.Expression, error) {
	m, err := asMapping(n)
	if err != nil {
		return nil, err
	}
	line, col, err := m.position()
	if err != nil {
		return nil, err
	}

	switch {
	case m.has("id"):
		name, err := m.scalar("id")
		if err != nil {
			return nil, err
		}
		return &ast.Identifier{Name: name, Line: line, Column: col}, nil

	case m.has("bool"):
		v, _ := m.get("bool")
		b, err := strconv.ParseBool(v.Value)
		if err != nil {
			return nil, errorAt(v, "invalid boolean literal %q", v.Value)
		}
		return &ast.BooleanLit{Value: b, Line: line, Column: col}, nil

	case m.has("int"):
		v, _ := m.get("int")
		i, err := strconv.ParseInt(v.Value, 10, 64)
		if err != nil {
			return nil, errorAt(v, "invalid integer literal %q", v.Value)
		}
		return &ast.IntegerLit{Value: i, Line: line, Column: col}, nil

	case m.has("decimal"):
		v, _ := m.get("decimal")
		if _, err := strconv.ParseFloat(v.Value, 64); err != nil {
			return nil, errorAt(v, "invalid decimal literal %q", v.Value)
		}
		return &ast.DecimalLit{Value: v.Value, Line: line, Column: col}, nil

	case m.has("string"):
		s, err := m.scalar("string")
		if err != nil {
			return nil, err
		}
		return &ast.StringLit{Value: s, Line: line, Column: col}, nil

	case m.has("op"):
		return decodeOperator(m, line, col)

	default:
		return nil, errorAt(n, "unknown expression: expected one of id, bool, int, decimal, string, op")
	}
}

func decodeOperator(m *mapping, line, col int) (ast.Expression, error) {
	sym, err := m.scalar("op")
	if err != nil {
		return nil, err
	}
	op, ok := ast.ParseOperator(sym)
	if !ok {
		opNode, _ := m.get("op")
		return nil, errorAt(opNode, "unknown operator %q", sym)
	}

	if op == ast.OpNot {
		operandNode, err := m.require("operand")
		if err != nil {
			return nil, err
		}
		operand, err := decodeExpression(operandNode)
		if err != nil {
			return nil, err
		}
		return &ast.NotExpr{Operand: operand, Line: line, Column: col}, nil
	}

	leftNode, err := m.require("left")
	if err != nil {
		return nil, err
	}
	rightNode, err := m.require("right")
	if err != nil {
		return nil, err
	}
	left, err := decodeExpression(leftNode)
	if err != nil {
		return nil, err
	}
	right, err := decodeExpression(rightNode)
	if err != nil {
		return nil, err
	}

	switch op {
	case ast.OpAdd, ast.OpSub, ast.OpMul, ast.OpDiv:
		return &ast.ArithmeticExpr{Op: op, Left: left, Right: right, Line: line, Column: col}, nil
	case ast.OpLT, ast.OpLEQ, ast.OpGT, ast.OpGEQ:
		return &ast.RelationalExpr{Op: op, Left: left, Right: right, Line: line, Column: col}, nil
	case ast.OpEQ, ast.OpNEQ:
		return &ast.EqualityExpr{Op: op, Left: left, Right: right, Line: line, Column: col}, nil
	default:
		return &ast.LogicalExpr{Op: op, Left: left, Right: right, Line: line, Column: col}, nil
	}
}
