package ast

import "github.com/softwcons/qlcheck/internal/types"

// Operator is a QL operator
type Operator int

const (
	OpAdd Operator = iota
	OpSub
	OpMul
	OpDiv
	OpLT
	OpLEQ
	OpGT
	OpGEQ
	OpEQ
	OpNEQ
	OpAnd
	OpOr
	OpNot
)

var operatorSymbols = [...]string{
	OpAdd: "+",
	OpSub: "-",
	OpMul: "*",
	OpDiv: "/",
	OpLT:  "<",
	OpLEQ: "<=",
	OpGT:  ">",
	OpGEQ: ">=",
	OpEQ:  "=",
	OpNEQ: "!=",
	OpAnd: "and",
	OpOr:  "or",
	OpNot: "not",
}

// String returns the source symbol of the operator
func (o Operator) String() string {
	if int(o) >= 0 && int(o) < len(operatorSymbols) {
		return operatorSymbols[o]
	}
	return "?"
}

// Category returns the compatibility table the operator resolves against
func (o Operator) Category() types.Category {
	switch o {
	case OpAdd, OpSub, OpMul, OpDiv:
		return types.Arithmetic
	case OpLT, OpLEQ, OpGT, OpGEQ:
		return types.Relational
	case OpEQ, OpNEQ:
		return types.Equality
	default:
		return types.Logical
	}
}

// ParseOperator maps a QL operator spelling to an Operator
func ParseOperator(sym string) (Operator, bool) {
	for i, s := range operatorSymbols {
		if s == sym {
			return Operator(i), true
		}
	}
	return 0, false
}
