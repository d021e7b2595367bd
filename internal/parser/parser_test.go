package parser

import (
	"testing"

	"github.com/cwbudde/amta/internal/amtaerr"
	"github.com/cwbudde/amta/internal/ast"
	"github.com/cwbudde/amta/internal/token"
	"github.com/stretchr/testify/require"
)

func kindOf(t *testing.T, err error) amtaerr.Kind {
	t.Helper()
	var e *amtaerr.Error
	require.ErrorAs(t, err, &e)
	return e.Kind
}

func TestParseAssignStatement(t *testing.T) {
	stmts, err := Parse(`$x = 1`)
	require.NoError(t, err)
	require.Len(t, stmts, 1)
	assign, ok := stmts[0].(*ast.AssignStatement)
	require.True(t, ok)
	require.Equal(t, "x", assign.Target.Base)
	require.Equal(t, ast.Default, assign.Target.Sigil)
	num, ok := assign.Value.(*ast.NumberLiteral)
	require.True(t, ok)
	require.Equal(t, 1.0, num.Value)
}

func TestParseVariableSigils(t *testing.T) {
	cases := map[string]ast.Sigil{
		"$x = 1":  ast.Default,
		"$!x = 1": ast.ForceLocal,
		"$:x = 1": ast.Global,
	}
	for src, want := range cases {
		stmts, err := Parse(src)
		require.NoError(t, err)
		assign := stmts[0].(*ast.AssignStatement)
		require.Equal(t, want, assign.Target.Sigil)
		require.Equal(t, "x", assign.Target.Base)
	}
}

func TestParseStaticIndexChainExpandsToSteps(t *testing.T) {
	stmts, err := Parse(`$o:a:b = 1`)
	require.NoError(t, err)
	assign := stmts[0].(*ast.AssignStatement)
	require.Equal(t, "o", assign.Target.Base)
	require.Len(t, assign.Target.Steps, 2)
	require.Equal(t, "a", *assign.Target.Steps[0].Static)
	require.Equal(t, "b", *assign.Target.Steps[1].Static)
}

func TestParseDynamicIndexStep(t *testing.T) {
	stmts, err := Parse(`$o[1] = 2`)
	require.NoError(t, err)
	assign := stmts[0].(*ast.AssignStatement)
	require.Len(t, assign.Target.Steps, 1)
	require.Nil(t, assign.Target.Steps[0].Static)
	require.NotNil(t, assign.Target.Steps[0].Dynamic)
}

func TestParseCallAsStatement(t *testing.T) {
	stmts, err := Parse(`$:print("hi")`)
	require.NoError(t, err)
	exprStmt, ok := stmts[0].(*ast.ExprStatement)
	require.True(t, ok)
	call, ok := exprStmt.Expr.(*ast.Call)
	require.True(t, ok)
	require.Equal(t, "print", call.Callee.Base)
	require.Len(t, call.Args, 1)
}

func TestParseIfWithoutElse(t *testing.T) {
	stmts, err := Parse("if 1\n  return 1\nfi")
	require.NoError(t, err)
	ifStmt := stmts[0].(*ast.IfStatement)
	require.Len(t, ifStmt.Then, 1)
	require.Nil(t, ifStmt.Else)
}

func TestParseIfWithElse(t *testing.T) {
	stmts, err := Parse("if 1\n  return 1\nel\n  return 2\nfi")
	require.NoError(t, err)
	ifStmt := stmts[0].(*ast.IfStatement)
	require.Len(t, ifStmt.Then, 1)
	require.Len(t, ifStmt.Else, 1)
}

func TestParseWhile(t *testing.T) {
	stmts, err := Parse("while 1\n  return 1\newhil")
	require.NoError(t, err)
	w := stmts[0].(*ast.WhileStatement)
	require.Len(t, w.Body, 1)
}

func TestParseForIn(t *testing.T) {
	stmts, err := Parse("for $x $:range(3)\n  return $x\nrfo")
	require.NoError(t, err)
	f := stmts[0].(*ast.ForInStatement)
	require.Equal(t, "x", f.Target.Base)
	require.Len(t, f.Body, 1)
}

func TestParseReturnBareAndWithValue(t *testing.T) {
	stmts, err := Parse("return")
	require.NoError(t, err)
	ret := stmts[0].(*ast.ReturnStatement)
	require.Nil(t, ret.Value)

	stmts, err = Parse("return 1")
	require.NoError(t, err)
	ret = stmts[0].(*ast.ReturnStatement)
	require.NotNil(t, ret.Value)
}

func TestParseFunctionLiteralWithTypedParams(t *testing.T) {
	stmts, err := Parse("$f = fun($a number, $b)\n  return $a\nnfu")
	require.NoError(t, err)
	assign := stmts[0].(*ast.AssignStatement)
	fn := assign.Value.(*ast.FunctionLiteral)
	require.Len(t, fn.Params, 2)
	require.Equal(t, "a", fn.Params[0].Variable.Base)
	require.Equal(t, token.TYPE_NUMBER, fn.Params[0].DeclType)
	require.Equal(t, "b", fn.Params[1].Variable.Base)
	require.Equal(t, token.ILLEGAL, fn.Params[1].DeclType)
}

func TestParseEmptyObjectLiteral(t *testing.T) {
	stmts, err := Parse("$o = {}")
	require.NoError(t, err)
	assign := stmts[0].(*ast.AssignStatement)
	_, ok := assign.Value.(*ast.EmptyObjectLiteral)
	require.True(t, ok)
}

// TestPrecedenceComparisonBindsTighterThanAdditive exercises the
// deliberately unusual ordering: "2 + 3 < 4" must parse as
// "2 + (3 < 4)", not "(2 + 3) < 4".
func TestPrecedenceComparisonBindsTighterThanAdditive(t *testing.T) {
	stmts, err := Parse("return 2 + 3 < 4")
	require.NoError(t, err)
	ret := stmts[0].(*ast.ReturnStatement)

	outer, ok := ret.Value.(*ast.BinaryExpr)
	require.True(t, ok)
	require.Equal(t, token.PLUS, outer.Op, "additive binds loosest of the two, so it must sit at the top")

	inner, ok := outer.Right.(*ast.BinaryExpr)
	require.True(t, ok)
	require.Equal(t, token.LT, inner.Op)
}

// TestPrecedenceMultiplicativeBindsLoosestOfFour exercises the other half
// of the unusual ordering: "*" binds looser than "+".
func TestPrecedenceMultiplicativeBindsLoosestOfFour(t *testing.T) {
	stmts, err := Parse("return 1 * 2 + 3")
	require.NoError(t, err)
	ret := stmts[0].(*ast.ReturnStatement)

	outer, ok := ret.Value.(*ast.BinaryExpr)
	require.True(t, ok)
	require.Equal(t, token.STAR, outer.Op)

	inner, ok := outer.Right.(*ast.BinaryExpr)
	require.True(t, ok)
	require.Equal(t, token.PLUS, inner.Op)
}

func TestPrecedenceUnaryBindsTightest(t *testing.T) {
	stmts, err := Parse("return -1 + 2")
	require.NoError(t, err)
	ret := stmts[0].(*ast.ReturnStatement)
	add, ok := ret.Value.(*ast.BinaryExpr)
	require.True(t, ok)
	require.Equal(t, token.PLUS, add.Op)
	_, ok = add.Left.(*ast.UnaryExpr)
	require.True(t, ok)
}

func TestParseBinaryIsLeftAssociative(t *testing.T) {
	stmts, err := Parse("return 1 * 2 * 3")
	require.NoError(t, err)
	ret := stmts[0].(*ast.ReturnStatement)
	outer := ret.Value.(*ast.BinaryExpr)
	_, ok := outer.Left.(*ast.BinaryExpr)
	require.True(t, ok, "left operand should itself be the nested product")
	_, ok = outer.Right.(*ast.NumberLiteral)
	require.True(t, ok, "right operand should be the trailing literal")
}

func TestParseParenthesizedExpressionOverridesPrecedence(t *testing.T) {
	stmts, err := Parse("return (1 + 2) * 3")
	require.NoError(t, err)
	ret := stmts[0].(*ast.ReturnStatement)
	outer := ret.Value.(*ast.BinaryExpr)
	require.Equal(t, token.STAR, outer.Op)
	_, ok := outer.Left.(*ast.BinaryExpr)
	require.True(t, ok)
}

func TestParseErrorMissingMatchingKeyword(t *testing.T) {
	_, err := Parse("if 1\n  return 1\n")
	require.Error(t, err)
	require.Equal(t, amtaerr.ParseError, kindOf(t, err))
}

func TestParseErrorUnexpectedTokenAtStatementStart(t *testing.T) {
	_, err := Parse("nfu")
	require.Error(t, err)
	require.Equal(t, amtaerr.ParseError, kindOf(t, err))
}

// TestParseErrorContinueIsNotAStatement documents the deliberate decision
// not to implement a continue-statement: the keyword lexes, but the
// statement grammar has no production for it, so it falls through to the
// same "unexpected token" error as any other non-statement keyword.
func TestParseErrorContinueIsNotAStatement(t *testing.T) {
	_, err := Parse("continue")
	require.Error(t, err)
	require.Equal(t, amtaerr.ParseError, kindOf(t, err))
}

func TestParseErrorMissingAssignRHS(t *testing.T) {
	_, err := Parse("$x =\n")
	require.Error(t, err)
	require.Equal(t, amtaerr.ParseError, kindOf(t, err))
}

func TestParseErrorUnclosedParen(t *testing.T) {
	_, err := Parse("return (1 + 2")
	require.Error(t, err)
	require.Equal(t, amtaerr.ParseError, kindOf(t, err))
}

func TestParseErrorTrailingTokensAtTopLevel(t *testing.T) {
	_, err := Parse("return 1\nfi")
	require.Error(t, err)
	require.Equal(t, amtaerr.ParseError, kindOf(t, err))
}
