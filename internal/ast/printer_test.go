package ast

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/softwcons/qlcheck/internal/types"
)

func sampleForm() *Form {
	return &Form{
		Name: "taxOfficeExample",
		Body: &Block{Statements: []Statement{
			&Question{ID: "hasSoldHouse", Label: "Did you sell a house?", Type: types.Boolean, Line: 2, Column: 3},
			&Conditional{
				Condition: &Identifier{Name: "hasSoldHouse", Line: 3, Column: 7},
				Body: &Block{Statements: []Statement{
					&ComputedQuestion{
						Question: Question{ID: "valueResidue", Label: "Value residue:", Type: types.Decimal, Line: 4, Column: 5},
						Expr: &ArithmeticExpr{
							Op:    OpSub,
							Left:  &Identifier{Name: "sellingPrice"},
							Right: &DecimalLit{Value: "1.5"},
						},
					},
				}},
			},
		}},
	}
}

func TestPrintForm(t *testing.T) {
	out := Print(sampleForm())

	assert.True(t, strings.HasPrefix(out, "Form: taxOfficeExample\n"))
	assert.Contains(t, out, `Question: hasSoldHouse "Did you sell a house?" boolean`)
	assert.Contains(t, out, "ComputedQuestion: valueResidue")
	assert.Contains(t, out, "ArithmeticExpr: -")
	assert.Contains(t, out, "DecimalLit: 1.5\n")
}

func TestPrintTypedAnnotatesExpressions(t *testing.T) {
	form := sampleForm()
	out := PrintTyped(form, func(e Expression) (types.Type, bool) {
		if _, ok := e.(*Identifier); ok {
			return types.Boolean, true
		}
		return types.Undefined, false
	})

	assert.Contains(t, out, "Identifier: hasSoldHouse : boolean")
	assert.Contains(t, out, "DecimalLit: 1.5\n")
}

func TestComputedQuestionPosition(t *testing.T) {
	cq := &ComputedQuestion{Question: Question{ID: "x", Line: 7, Column: 2}}
	line, col := cq.Pos()
	assert.Equal(t, 7, line)
	assert.Equal(t, 2, col)
}

func TestOperatorCategories(t *testing.T) {
	assert.Equal(t, types.Arithmetic, OpDiv.Category())
	assert.Equal(t, types.Relational, OpGEQ.Category())
	assert.Equal(t, types.Equality, OpNEQ.Category())
	assert.Equal(t, types.Logical, OpOr.Category())
	assert.Equal(t, types.Logical, OpNot.Category())

	op, ok := ParseOperator("or")
	assert.True(t, ok)
	assert.Equal(t, OpOr, op)
	op, ok = ParseOperator("<=")
	assert.True(t, ok)
	assert.Equal(t, OpLEQ, op)
	_, ok = ParseOperator("%")
	assert.False(t, ok)
	_, ok = ParseOperator("&&")
	assert.False(t, ok)
}
