package types

// Type is one of the primitive QL data types.
type Type int

const (
	Undefined Type = iota
	Integer
	Decimal
	Boolean
	String
	Date
)

// String returns the QL keyword for the type
func (t Type) String() string {
	switch t {
	case Integer:
		return "integer"
	case Decimal:
		return "decimal"
	case Boolean:
		return "boolean"
	case String:
		return "string"
	case Date:
		return "date"
	default:
		return "undefined"
	}
}

// IsNumeric reports whether t belongs to the number class (Integer or Decimal).
func (t Type) IsNumeric() bool {
	return t == Integer || t == Decimal
}

// Parse maps a QL type keyword to its Type. Unknown keywords yield Undefined.
// "number" is accepted as an alias for decimal.
func Parse(name string) Type {
	switch name {
	case "integer", "int":
		return Integer
	case "decimal", "number":
		return Decimal
	case "boolean", "bool":
		return Boolean
	case "string":
		return String
	case "date":
		return Date
	default:
		return Undefined
	}
}

// All lists every defined type, excluding Undefined.
func All() []Type {
	return []Type{Integer, Decimal, Boolean, String, Date}
}
