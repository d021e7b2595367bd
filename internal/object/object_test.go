package object

import (
	"testing"

	"github.com/cwbudde/amta/internal/ast"
	"github.com/stretchr/testify/require"
)

func TestObjectGetAbsentKeyReturnsNil(t *testing.T) {
	o := NewObject()
	require.Equal(t, Nil{}, o.Get("missing"))
}

func TestObjectSetAndGet(t *testing.T) {
	o := NewObject()
	o.Set("a", Number{Value: 1})
	require.Equal(t, Number{Value: 1}, o.Get("a"))
	require.Equal(t, 1, o.Len())
}

func TestObjectSetNilRemovesKey(t *testing.T) {
	o := NewObject()
	o.Set("a", Number{Value: 1})
	o.Set("a", Nil{})
	require.Equal(t, Nil{}, o.Get("a"))
	require.Equal(t, 0, o.Len())
}

func TestIsArrayEmptyObjectFails(t *testing.T) {
	o := NewObject()
	_, ok := IsArray(o)
	require.False(t, ok)
}

func TestIsArrayHoldsForWellFormedArray(t *testing.T) {
	o := NewArray([]Value{String{Value: "a"}, String{Value: "b"}, String{Value: "c"}})
	n, ok := IsArray(o)
	require.True(t, ok)
	require.Equal(t, 3, n)
}

func TestIsArrayFailsOnMissingIndexKey(t *testing.T) {
	o := NewObject()
	o.Set("0", String{Value: "a"})
	o.Set("length", Number{Value: 2})
	_, ok := IsArray(o)
	require.False(t, ok, "missing key \"1\" must fail the array-convention predicate")
}

func TestIsArrayFailsOnExtraKey(t *testing.T) {
	o := NewArray([]Value{Number{Value: 1}})
	o.Set("extra", Number{Value: 2})
	_, ok := IsArray(o)
	require.False(t, ok, "an extra key beyond length+1 must fail the predicate")
}

func TestIsArrayFailsOnNonIntegralLength(t *testing.T) {
	o := NewObject()
	o.Set("length", Number{Value: 1.5})
	_, ok := IsArray(o)
	require.False(t, ok)
}

// TestArrayConventionStability exercises testable property 4 of spec.md
// §8: extending a well-formed array by one element preserves the
// predicate.
func TestArrayConventionStability(t *testing.T) {
	o := NewArray([]Value{Number{Value: 1}, Number{Value: 2}})
	n, ok := IsArray(o)
	require.True(t, ok)
	require.Equal(t, 2, n)

	o.Set("2", Number{Value: 3})
	o.Set("length", Number{Value: 3})

	n, ok = IsArray(o)
	require.True(t, ok)
	require.Equal(t, 3, n)
}

func TestIsTruthy(t *testing.T) {
	require.False(t, IsTruthy(Nil{}))
	require.False(t, IsTruthy(Number{Value: 0}))
	require.True(t, IsTruthy(Number{Value: -1}))
	require.True(t, IsTruthy(String{Value: ""}))
	require.True(t, IsTruthy(NewObject()))
}

func TestEqualsKindMismatchIsFalse(t *testing.T) {
	require.False(t, Equals(Number{Value: 1}, String{Value: "1"}))
}

func TestEqualsByKind(t *testing.T) {
	require.True(t, Equals(Number{Value: 1}, Number{Value: 1}))
	require.False(t, Equals(Number{Value: 1}, Number{Value: 2}))
	require.True(t, Equals(String{Value: "a"}, String{Value: "a"}))
	require.True(t, Equals(Nil{}, Nil{}))
}

func TestEqualsObjectsStructural(t *testing.T) {
	a := NewObject()
	a.Set("x", Number{Value: 1})
	b := NewObject()
	b.Set("x", Number{Value: 1})
	require.True(t, Equals(a, b))

	b.Set("y", Number{Value: 2})
	require.False(t, Equals(a, b))
}

func TestEqualsFunctionsByParamSignature(t *testing.T) {
	f1 := &Function{Params: []Param{{Variable: &ast.Variable{Base: "a"}, Decl: NumberKind}}}
	f2 := &Function{Params: []Param{{Variable: &ast.Variable{Base: "a"}, Decl: NumberKind}}}
	f3 := &Function{Params: []Param{{Variable: &ast.Variable{Base: "b"}, Decl: NumberKind}}}

	require.True(t, Equals(f1, f2))
	require.False(t, Equals(f1, f3))
}

func TestNumberStringifyShortestRoundTrip(t *testing.T) {
	require.Equal(t, "1", Number{Value: 1}.String())
	require.Equal(t, "1.5", Number{Value: 1.5}.String())
	require.Equal(t, "-2", Number{Value: -2}.String())
}

func TestFunctionStringifyListsParamNames(t *testing.T) {
	f := &Function{Params: []Param{
		{Variable: &ast.Variable{Base: "a"}, Decl: AnyKind},
		{Variable: &ast.Variable{Base: "b"}, Decl: NumberKind},
	}}
	require.Equal(t, "fun(a, b)", f.String())
}

func TestDumpRendersKeysInSortedOrder(t *testing.T) {
	o := NewObject()
	o.Set("b", Number{Value: 2})
	o.Set("a", Number{Value: 1})
	require.Equal(t, "{\n  a: 1\n  b: 2\n}", Dump(o))
}
