package checker

import (
	"github.com/softwcons/qlcheck/internal/ast"
	"github.com/softwcons/qlcheck/internal/diagnostic"
	"github.com/softwcons/qlcheck/internal/types"
)

// Checker performs semantic analysis on a QL form.
// A Checker is used for exactly one pass; it is not safe for concurrent use.
type Checker struct {
	diag      *diagnostic.Diagnostics
	env       *Environment
	exprTypes map[ast.Expression]types.Type
}

// Result holds the outcome of checking one form
type Result struct {
	Diagnostics *diagnostic.Diagnostics
	Env         *Environment
	ExprTypes   map[ast.Expression]types.Type
}

// TypeOf returns the resolved type of an expression visited during the pass
func (r *Result) TypeOf(expr ast.Expression) (types.Type, bool) {
	t, ok := r.ExprTypes[expr]
	return t, ok
}

// Check type-checks form and returns its diagnostics together with the
// environment built along the way.
func Check(form *ast.Form) *Result {
	c := &Checker{
		diag:      diagnostic.New(),
		env:       NewEnvironment(),
		exprTypes: make(map[ast.Expression]types.Type),
	}

	if form != nil && form.Body != nil {
		c.checkBlock(form.Body)
	}

	return &Result{
		Diagnostics: c.diag,
		Env:         c.env,
		ExprTypes:   c.exprTypes,
	}
}

// CheckForm type-checks form and returns only its diagnostics
func CheckForm(form *ast.Form) *diagnostic.Diagnostics {
	return Check(form).Diagnostics
}

// checkBlock checks a block of statements in document order
func (c *Checker) checkBlock(block *ast.Block) {
	for _, stmt := range block.Statements {
		c.checkStatement(stmt)
	}
}

// checkStatement checks a statement
func (c *Checker) checkStatement(stmt ast.Statement) {
	switch s := stmt.(type) {
	case *ast.Block:
		c.checkBlock(s)
	case *ast.Question:
		c.defineQuestion(s)
	case *ast.ComputedQuestion:
		c.checkComputedQuestion(s)
	case *ast.Conditional:
		c.checkConditional(s)
	}
}

// defineQuestion registers q in the environment. The first declaration of
// an identifier wins.
func (c *Checker) defineQuestion(q *ast.Question) {
	if err := c.env.Define(q.ID, q.Type); err != nil {
		line, col := q.Pos()
		first := c.env.Resolve(q.ID)
		c.diag.ReportWithHint(diagnostic.DuplicateQuestion, line, col,
			"question '"+q.ID+"' is already declared",
			"the first declaration (type "+first.String()+") is kept")
	}
}

func (c *Checker) checkComputedQuestion(q *ast.ComputedQuestion) {
	c.defineQuestion(&q.Question)

	exprType := c.checkExpression(q.Expr)
	if exprType != q.Type {
		line, col := q.Pos()
		c.diag.Reportf(diagnostic.InvalidQuestionExpressionType, line, col,
			"computed question '%s' is declared %s but its expression is %s", q.ID, q.Type, exprType)
	}
}

func (c *Checker) checkConditional(cond *ast.Conditional) {
	condType := c.checkExpression(cond.Condition)
	if condType != types.Boolean {
		line, col := cond.Pos()
		c.diag.Reportf(diagnostic.InvalidConditionType, line, col,
			"if condition must be boolean, got %s", condType)
	}

	// Errors in the condition never hide errors in the body.
	if cond.Body != nil {
		c.checkBlock(cond.Body)
	}
}

// storeExprType records the type of an expression for later stages
func (c *Checker) storeExprType(expr ast.Expression, t types.Type) types.Type {
	c.exprTypes[expr] = t
	return t
}

// checkExpression resolves the type of an expression. Resolution never
// fails; anything that cannot be typed is types.Undefined.
func (c *Checker) checkExpression(expr ast.Expression) types.Type {
	switch e := expr.(type) {
	case *ast.BooleanLit:
		return c.storeExprType(expr, types.Boolean)
	case *ast.IntegerLit:
		return c.storeExprType(expr, types.Integer)
	case *ast.DecimalLit:
		return c.storeExprType(expr, types.Decimal)
	case *ast.StringLit:
		return c.storeExprType(expr, types.String)
	case *ast.Identifier:
		return c.storeExprType(expr, c.checkIdentifier(e))
	case *ast.NotExpr:
		return c.storeExprType(expr, c.checkNotExpr(e))
	case *ast.ArithmeticExpr:
		// Arithmetic yields the resolved numeric type.
		return c.storeExprType(expr, c.checkBinary(e, e.Op, e.Left, e.Right))
	case *ast.RelationalExpr:
		c.checkBinary(e, e.Op, e.Left, e.Right)
		return c.storeExprType(expr, types.Boolean)
	case *ast.EqualityExpr:
		c.checkBinary(e, e.Op, e.Left, e.Right)
		return c.storeExprType(expr, types.Boolean)
	case *ast.LogicalExpr:
		c.checkBinary(e, e.Op, e.Left, e.Right)
		return c.storeExprType(expr, types.Boolean)
	default:
		return types.Undefined
	}
}

// checkBinary resolves both operands left to right, looks the pair up in
// the operator's table and validates the result.
func (c *Checker) checkBinary(node ast.Expression, op ast.Operator, left, right ast.Expression) types.Type {
	leftType := c.checkExpression(left)
	rightType := c.checkExpression(right)

	category := op.Category()
	resolved := types.Resolve(category, leftType, rightType)
	if !types.IsAllowedResult(category, resolved) {
		line, col := node.Pos()
		c.diag.Reportf(diagnostic.InvalidOperatorTypes, line, col,
			"operator '%s' not defined for %s and %s", op, leftType, rightType)
	}
	return resolved
}

func (c *Checker) checkNotExpr(expr *ast.NotExpr) types.Type {
	operandType := c.checkExpression(expr.Operand)
	if types.ResolveUnary(types.Logical, operandType) != types.Boolean {
		line, col := expr.Pos()
		c.diag.Reportf(diagnostic.InvalidOperatorTypes, line, col,
			"operator '%s' requires a boolean operand, got %s", ast.OpNot, operandType)
	}
	return types.Boolean
}

func (c *Checker) checkIdentifier(expr *ast.Identifier) types.Type {
	t := c.env.Resolve(expr.Name)
	if t == types.Undefined {
		line, col := expr.Pos()
		c.diag.Reportf(diagnostic.UndefinedReference, line, col,
			"undefined reference to question '%s'", expr.Name)
	}
	return t
}
