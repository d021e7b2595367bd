package interp

import (
	"github.com/cwbudde/amta/internal/ast"
	"github.com/cwbudde/amta/internal/object"
	"github.com/cwbudde/amta/internal/scope"
	"github.com/cwbudde/amta/internal/token"
)

func (e *Evaluator) evalExpression(expr ast.Expression, s *scope.Scope) (object.Value, error) {
	switch ex := expr.(type) {
	case *ast.NumberLiteral:
		return object.Number{Value: ex.Value}, nil
	case *ast.StringLiteral:
		return object.String{Value: ex.Value}, nil
	case *ast.NilLiteral:
		return object.Nil{}, nil
	case *ast.EmptyObjectLiteral:
		return object.NewObject(), nil
	case *ast.Variable:
		return e.resolveVariable(ex, s)
	case *ast.FunctionLiteral:
		return e.evalFunctionLiteral(ex, s), nil
	case *ast.Call:
		return e.evalCall(ex, s)
	case *ast.BinaryExpr:
		return e.evalBinary(ex, s)
	case *ast.UnaryExpr:
		return e.evalUnary(ex, s)
	default:
		return nil, internalErrorf(expr.Pos(), "unhandled expression type %T", expr)
	}
}

func (e *Evaluator) evalFunctionLiteral(fl *ast.FunctionLiteral, s *scope.Scope) *object.Function {
	params := make([]object.Param, len(fl.Params))
	for i, p := range fl.Params {
		params[i] = object.Param{Variable: p.Variable, Decl: declKind(p.DeclType)}
	}
	return &object.Function{
		Params:   params,
		Body:     fl.Body,
		Defining: s,
	}
}

// declKind maps a parameter's declared type-name token to the runtime
// Kind it constrains arguments to; an omitted type-name is recorded by the
// parser as token.ILLEGAL and maps to object.AnyKind (§3.3).
func declKind(tt token.Type) object.Kind {
	switch tt {
	case token.TYPE_NUMBER:
		return object.NumberKind
	case token.TYPE_STRING:
		return object.StringKind
	case token.TYPE_FUNCTION:
		return object.FunctionKind
	case token.TYPE_OBJECT:
		return object.ObjectKind
	case token.TYPE_NIL:
		return object.NilKind
	default:
		return object.AnyKind
	}
}
