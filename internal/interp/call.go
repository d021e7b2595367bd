package interp

import (
	"github.com/cwbudde/amta/internal/ast"
	"github.com/cwbudde/amta/internal/object"
	"github.com/cwbudde/amta/internal/scope"
)

// evalCall implements the "Function call" evaluation rule (§4.6). The
// callee is resolved as a left-value (it must be a Function); arguments
// are evaluated left to right in the caller's scope; the new call scope
// is a child of the *caller's current scope* — the source's dynamic
// scoping, faithfully reproduced rather than "fixed" to lexical capture
// (spec.md §9).
func (e *Evaluator) evalCall(call *ast.Call, s *scope.Scope) (object.Value, error) {
	calleeVal, err := e.resolveVariable(call.Callee, s)
	if err != nil {
		return nil, err
	}
	fn, ok := calleeVal.(*object.Function)
	if !ok {
		return nil, typeErrorf(call.Pos(), "cannot call non-function value %s", calleeVal.String())
	}

	if fn.Variadic != nil {
		argVals := make([]object.Value, len(call.Args))
		for i, argExpr := range call.Args {
			v, err := e.evalExpression(argExpr, s)
			if err != nil {
				return nil, err
			}
			argVals[i] = v
		}
		return fn.Variadic(argVals)
	}

	if len(call.Args) != len(fn.Params) {
		return nil, arityErrorf(call.Pos(), "%s expects %d argument(s), got %d", fn.String(), len(fn.Params), len(call.Args))
	}

	argVals := make([]object.Value, len(call.Args))
	for i, argExpr := range call.Args {
		v, err := e.evalExpression(argExpr, s)
		if err != nil {
			return nil, err
		}
		argVals[i] = v
	}

	for i, param := range fn.Params {
		if param.Decl != object.AnyKind && argVals[i].Kind() != param.Decl {
			return nil, typeErrorf(call.Pos(), "argument %d to %s: expected %s, got %s",
				i+1, fn.String(), param.Decl, argVals[i].Kind())
		}
	}

	callScope := scope.NewChild(s)
	for i, param := range fn.Params {
		e.bindParam(param.Variable, callScope, argVals[i])
	}

	if fn.IsHost() {
		return fn.Action(callScope)
	}

	out, err := e.execBlock(fn.Body, callScope)
	if err != nil {
		return nil, err
	}
	if out.returned {
		return out.value, nil
	}
	return object.Nil{}, nil
}

// bindParam binds one evaluated argument into a fresh call scope. A
// parameter always declares a new binding local to this call, even when its
// sigil is Default — unlike an ordinary assignment, there is no "nearest
// enclosing definition" to walk out to here, because the call scope is the
// function's own frame (spec.md §8 S2: a parameter must shadow a
// caller-visible global of the same name, not overwrite it). Only the
// explicit Global sigil still opts a parameter into writing through to the
// program's global scope on every call.
func (e *Evaluator) bindParam(v *ast.Variable, callScope *scope.Scope, val object.Value) {
	if v.Sigil == ast.Global {
		callScope.SetGlobal(v.Base, val)
		return
	}
	callScope.SetLocal(v.Base, val)
}
