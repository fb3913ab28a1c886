package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveArithmetic(t *testing.T) {
	tests := []struct {
		left, right Type
		want        Type
	}{
		{Integer, Integer, Integer},
		{Integer, Decimal, Decimal},
		{Decimal, Integer, Decimal},
		{Decimal, Decimal, Decimal},
		{Boolean, Integer, Undefined},
		{String, String, Undefined},
		{Date, Date, Undefined},
		{Undefined, Integer, Undefined},
	}
	for _, tt := range tests {
		got := Resolve(Arithmetic, tt.left, tt.right)
		assert.Equal(t, tt.want, got, "%s + %s", tt.left, tt.right)
	}
}

func TestArithmeticResultsAreAllowed(t *testing.T) {
	for _, l := range All() {
		for _, r := range All() {
			got := Resolve(Arithmetic, l, r)
			if got == Undefined {
				continue
			}
			assert.True(t, IsAllowedResult(Arithmetic, got), "%s op %s -> %s", l, r, got)
		}
	}
}

func TestResolveEquality(t *testing.T) {
	valid := map[[2]Type]bool{
		{Integer, Integer}: true,
		{Integer, Decimal}: true,
		{Decimal, Integer}: true,
		{Decimal, Decimal}: true,
		{String, String}:   true,
		{Boolean, Boolean}: true,
	}
	all := append(All(), Undefined)
	for _, l := range all {
		for _, r := range all {
			want := Undefined
			if valid[[2]Type{l, r}] {
				want = Boolean
			}
			assert.Equal(t, want, Resolve(Equality, l, r), "%s = %s", l, r)
		}
	}
}

func TestResolveRelationalIsNumericOnly(t *testing.T) {
	assert.Equal(t, Boolean, Resolve(Relational, Integer, Decimal))
	assert.Equal(t, Boolean, Resolve(Relational, Decimal, Decimal))
	assert.Equal(t, Undefined, Resolve(Relational, String, String))
	assert.Equal(t, Undefined, Resolve(Relational, Date, Date))
	assert.Equal(t, Undefined, Resolve(Relational, Boolean, Boolean))
}

func TestResolveLogical(t *testing.T) {
	assert.Equal(t, Boolean, Resolve(Logical, Boolean, Boolean))
	assert.Equal(t, Undefined, Resolve(Logical, Boolean, Integer))
	assert.Equal(t, Boolean, ResolveUnary(Logical, Boolean))
	assert.Equal(t, Undefined, ResolveUnary(Logical, String))
	assert.Equal(t, Undefined, ResolveUnary(Arithmetic, Integer))
}

func TestAllowedResultsIsACopy(t *testing.T) {
	got := AllowedResults(Arithmetic)
	got[0] = Date
	assert.Equal(t, []Type{Integer, Decimal}, AllowedResults(Arithmetic))
}

func TestParse(t *testing.T) {
	assert.Equal(t, Integer, Parse("integer"))
	assert.Equal(t, Decimal, Parse("number"))
	assert.Equal(t, Date, Parse("date"))
	assert.Equal(t, Undefined, Parse("money"))
	assert.Equal(t, "boolean", Boolean.String())
}
