package interp

import (
	"math"

	"github.com/cwbudde/amta/internal/ast"
	"github.com/cwbudde/amta/internal/lexer"
	"github.com/cwbudde/amta/internal/object"
	"github.com/cwbudde/amta/internal/scope"
	"github.com/cwbudde/amta/internal/token"
)

func boolValue(b bool) object.Value {
	if b {
		return object.Number{Value: 1}
	}
	return object.Number{Value: 0}
}

func (e *Evaluator) evalUnary(u *ast.UnaryExpr, s *scope.Scope) (object.Value, error) {
	operand, err := e.evalExpression(u.Operand, s)
	if err != nil {
		return nil, err
	}

	switch u.Op {
	case token.BANG:
		return boolValue(!object.IsTruthy(operand)), nil

	case token.MINUS:
		n, ok := operand.(object.Number)
		if !ok {
			return nil, typeErrorf(u.Pos(), "unary '-' requires a number, got %s", operand.String())
		}
		return object.Number{Value: -n.Value}, nil

	case token.PLUS:
		str, ok := operand.(object.String)
		if !ok {
			return nil, typeErrorf(u.Pos(), "unary '+' requires a string, got %s", operand.String())
		}
		v, ok := lexer.ParseNumberLiteral(str.Value)
		if !ok {
			return nil, typeErrorf(u.Pos(), "unary '+': %q is not a valid number", str.Value)
		}
		return object.Number{Value: v}, nil

	default:
		return nil, internalErrorf(u.Pos(), "unhandled unary operator %s", u.Op)
	}
}

func (e *Evaluator) evalBinary(b *ast.BinaryExpr, s *scope.Scope) (object.Value, error) {
	left, err := e.evalExpression(b.Left, s)
	if err != nil {
		return nil, err
	}
	right, err := e.evalExpression(b.Right, s)
	if err != nil {
		return nil, err
	}

	switch b.Op {
	case token.PLUS:
		return evalAdd(left, right), nil
	case token.MINUS:
		return evalArith(b.Pos(), left, right, func(x, y float64) float64 { return x - y })
	case token.STAR:
		return evalArith(b.Pos(), left, right, func(x, y float64) float64 { return x * y })
	case token.SLASH:
		return evalArith(b.Pos(), left, right, func(x, y float64) float64 { return x / y })
	case token.PERCENT:
		return evalModulo(b.Pos(), left, right)
	case token.LT:
		return evalOrder(b.Pos(), left, right, func(c int) bool { return c < 0 })
	case token.LE:
		return evalOrder(b.Pos(), left, right, func(c int) bool { return c <= 0 })
	case token.GT:
		return evalOrder(b.Pos(), left, right, func(c int) bool { return c > 0 })
	case token.GE:
		return evalOrder(b.Pos(), left, right, func(c int) bool { return c >= 0 })
	case token.EQ:
		return boolValue(object.Equals(left, right)), nil
	case token.NEQ:
		return boolValue(!object.Equals(left, right)), nil
	default:
		return nil, internalErrorf(b.Pos(), "unhandled binary operator %s", b.Op)
	}
}

// evalAdd implements "+": numeric addition when both operands are
// Number, otherwise stringify-and-concatenate (§4.6).
func evalAdd(left, right object.Value) object.Value {
	ln, lok := left.(object.Number)
	rn, rok := right.(object.Number)
	if lok && rok {
		return object.Number{Value: ln.Value + rn.Value}
	}
	return object.String{Value: left.String() + right.String()}
}

func evalArith(pos token.Position, left, right object.Value, op func(x, y float64) float64) (object.Value, error) {
	ln, lok := left.(object.Number)
	rn, rok := right.(object.Number)
	if !lok || !rok {
		return nil, typeErrorf(pos, "arithmetic operator requires two numbers, got %s and %s", left.String(), right.String())
	}
	return object.Number{Value: op(ln.Value, rn.Value)}, nil
}

// evalModulo implements "%": the unique representative of a mod b in
// [0, b) when b > 0, not C-style truncated remainder (§4.6, property 5).
func evalModulo(pos token.Position, left, right object.Value) (object.Value, error) {
	ln, lok := left.(object.Number)
	rn, rok := right.(object.Number)
	if !lok || !rok {
		return nil, typeErrorf(pos, "'%%' requires two numbers, got %s and %s", left.String(), right.String())
	}
	r := math.Mod(ln.Value, rn.Value)
	if r != 0 && (r < 0) != (rn.Value < 0) {
		r += rn.Value
	}
	return object.Number{Value: r}, nil
}

// evalOrder implements <, <=, >, >=: numeric comparison for two Numbers,
// lexicographic comparison for two Strings, TypeError for any other
// pairing (§4.6).
func evalOrder(pos token.Position, left, right object.Value, accept func(cmp int) bool) (object.Value, error) {
	switch lv := left.(type) {
	case object.Number:
		rv, ok := right.(object.Number)
		if !ok {
			return nil, typeErrorf(pos, "comparison requires matching operand types, got number and %s", right.String())
		}
		return boolValue(accept(compareFloat(lv.Value, rv.Value))), nil
	case object.String:
		rv, ok := right.(object.String)
		if !ok {
			return nil, typeErrorf(pos, "comparison requires matching operand types, got string and %s", right.String())
		}
		return boolValue(accept(compareString(lv.Value, rv.Value))), nil
	default:
		return nil, typeErrorf(pos, "comparison requires two numbers or two strings, got %s", left.String())
	}
}

func compareFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func compareString(a, b string) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
