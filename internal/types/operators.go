package types

// Category groups operators that share a compatibility table.
type Category int

const (
	Arithmetic Category = iota // + - * /
	Equality                   // = !=
	Relational                 // < <= > >=
	Logical                    // and or not
)

// String returns the name of the operator category
func (c Category) String() string {
	switch c {
	case Arithmetic:
		return "arithmetic"
	case Equality:
		return "equality"
	case Relational:
		return "relational"
	case Logical:
		return "logical"
	default:
		return "unknown"
	}
}

type pair [2]Type

var numericPairs = []pair{
	{Integer, Integer},
	{Integer, Decimal},
	{Decimal, Integer},
	{Decimal, Decimal},
}

// Operand pair -> result type, per category. Populated once in init and read-only afterwards.
var binaryTables = map[Category]map[pair]Type{
	Arithmetic: {
		{Integer, Integer}: Integer,
		{Integer, Decimal}: Decimal,
		{Decimal, Integer}: Decimal,
		{Decimal, Decimal}: Decimal,
	},
	Equality: {
		{String, String}:   Boolean,
		{Boolean, Boolean}: Boolean,
	},
	Relational: {},
	Logical: {
		{Boolean, Boolean}: Boolean,
	},
}

var unaryTables = map[Category]map[Type]Type{
	Logical: {
		Boolean: Boolean,
	},
}

var allowedResults = map[Category][]Type{
	Arithmetic: {Integer, Decimal},
	Equality:   {Boolean},
	Relational: {Boolean},
	Logical:    {Boolean},
}

func init() {
	for _, p := range numericPairs {
		binaryTables[Equality][p] = Boolean
		binaryTables[Relational][p] = Boolean
	}
}

// Resolve looks up the result type of a binary operator of the given
// category applied to left and right. A miss yields Undefined.
func Resolve(cat Category, left, right Type) Type {
	table, ok := binaryTables[cat]
	if !ok {
		return Undefined
	}
	if t, ok := table[pair{left, right}]; ok {
		return t
	}
	return Undefined
}

// ResolveUnary looks up the result type of a unary operator of the given
// category. Only logical negation is defined.
func ResolveUnary(cat Category, operand Type) Type {
	table, ok := unaryTables[cat]
	if !ok {
		return Undefined
	}
	if t, ok := table[operand]; ok {
		return t
	}
	return Undefined
}

// AllowedResults returns the result types an operator of the category may produce.
func AllowedResults(cat Category) []Type {
	allowed := allowedResults[cat]
	out := make([]Type, len(allowed))
	copy(out, allowed)
	return out
}

// IsAllowedResult reports whether t is a valid result type for the category.
func IsAllowedResult(cat Category, t Type) bool {
	for _, a := range allowedResults[cat] {
		if a == t {
			return true
		}
	}
	return false
}
