package ast

import "github.com/cwbudde/amta/internal/token"

// NumberLiteral is a numeric literal expression.
type NumberLiteral struct {
	Position token.Position
	Value    float64
}

func (n *NumberLiteral) Pos() token.Position { return n.Position }
func (*NumberLiteral) expressionNode()       {}

// StringLiteral is a string literal expression.
type StringLiteral struct {
	Position token.Position
	Value    string
}

func (n *StringLiteral) Pos() token.Position { return n.Position }
func (*StringLiteral) expressionNode()       {}

// NilLiteral is the "nil" literal expression.
type NilLiteral struct {
	Position token.Position
}

func (n *NilLiteral) Pos() token.Position { return n.Position }
func (*NilLiteral) expressionNode()       {}

// EmptyObjectLiteral is the "{}" literal expression.
type EmptyObjectLiteral struct {
	Position token.Position
}

func (n *EmptyObjectLiteral) Pos() token.Position { return n.Position }
func (*EmptyObjectLiteral) expressionNode()       {}

// Variable is a left-value: a sigil-qualified base identifier chained with
// zero or more index steps. It implements Expression directly (resolve)
// and is also the node type assignment statements, for-in targets, and
// function parameters bind through (assign).
type Variable struct {
	Position token.Position
	Sigil    Sigil
	Base     string // base identifier, sigil prefix already stripped
	Steps    []IndexStep
}

func (v *Variable) Pos() token.Position { return v.Position }
func (*Variable) expressionNode()       {}

// FunctionLiteral is a "fun(...) ... nfu" expression.
type FunctionLiteral struct {
	Position token.Position
	Params   []Param
	Body     []Statement
}

func (f *FunctionLiteral) Pos() token.Position { return f.Position }
func (*FunctionLiteral) expressionNode()       {}

// Call is a function invocation: Callee() must resolve to a Function
// value; Args are evaluated left-to-right in the caller's scope.
type Call struct {
	Position token.Position
	Callee   *Variable
	Args     []Expression
}

func (c *Call) Pos() token.Position { return c.Position }
func (*Call) expressionNode()       {}

// BinaryExpr is a two-operand operator expression (+, -, *, /, %,
// <, <=, >, >=, ==, !=).
type BinaryExpr struct {
	Position token.Position
	Op       token.Type
	Left     Expression
	Right    Expression
}

func (b *BinaryExpr) Pos() token.Position { return b.Position }
func (*BinaryExpr) expressionNode()       {}

// UnaryExpr is a prefix operator expression (+, -, !).
type UnaryExpr struct {
	Position token.Position
	Op       token.Type
	Operand  Expression
}

func (u *UnaryExpr) Pos() token.Position { return u.Position }
func (*UnaryExpr) expressionNode()       {}
