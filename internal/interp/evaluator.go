// Package interp is the tree-walking evaluator: it interprets an AST
// against a root scope, honoring the control-flow and operator semantics
// of spec.md §4.6.
package interp

import (
	"io"

	"github.com/cwbudde/amta/internal/ast"
	"github.com/cwbudde/amta/internal/object"
	"github.com/cwbudde/amta/internal/scope"
)

// Evaluator walks an AST against a current scope, single-threaded and
// synchronous end to end (spec.md §5).
type Evaluator struct {
	Global *scope.Scope
	Output io.Writer
}

// New creates an Evaluator with a fresh global scope carrying the given
// while-loop iteration budget. scope.Unbounded disables the budget.
func New(output io.Writer, maxLoopIterations int) *Evaluator {
	return &Evaluator{
		Global: scope.NewGlobal(maxLoopIterations),
		Output: output,
	}
}

// Register installs a host callable into the global scope under name,
// implementing the host-callable interface (C8, §4.7).
func (e *Evaluator) Register(name string, fn *object.Function) {
	e.Global.SetLocal(name, fn)
}

// outcome is the discriminated result of running a statement or block:
// either Normal completion, or Returned with the function's result value.
// This replaces the source's thrown-sentinel implementation of "return"
// (spec.md §9) with an explicit evaluation outcome that function-body
// evaluation unwinds explicitly.
type outcome struct {
	returned bool
	value    object.Value
}

var normalOutcome = outcome{}

func returnedOutcome(v object.Value) outcome {
	return outcome{returned: true, value: v}
}

// Run evaluates a whole program (a top-level statement list) against the
// global scope and returns its exit value: the value of the top-level
// return, or Nil if the program never returns.
func (e *Evaluator) Run(program []ast.Statement) (object.Value, error) {
	out, err := e.execBlock(program, e.Global)
	if err != nil {
		return nil, err
	}
	if out.returned {
		return out.value, nil
	}
	return object.Nil{}, nil
}

// execBlock runs a statement list in s, short-circuiting on the first
// Returned outcome.
func (e *Evaluator) execBlock(stmts []ast.Statement, s *scope.Scope) (outcome, error) {
	for _, stmt := range stmts {
		out, err := e.execStatement(stmt, s)
		if err != nil {
			return outcome{}, err
		}
		if out.returned {
			return out, nil
		}
	}
	return normalOutcome, nil
}

func (e *Evaluator) execStatement(stmt ast.Statement, s *scope.Scope) (outcome, error) {
	switch st := stmt.(type) {
	case *ast.AssignStatement:
		return normalOutcome, e.execAssign(st, s)
	case *ast.ExprStatement:
		_, err := e.evalExpression(st.Expr, s)
		return normalOutcome, err
	case *ast.IfStatement:
		return e.execIf(st, s)
	case *ast.WhileStatement:
		return e.execWhile(st, s)
	case *ast.ForInStatement:
		return e.execForIn(st, s)
	case *ast.ReturnStatement:
		return e.execReturn(st, s)
	default:
		return outcome{}, internalErrorf(stmt.Pos(), "unhandled statement type %T", stmt)
	}
}

func (e *Evaluator) execAssign(st *ast.AssignStatement, s *scope.Scope) error {
	val, err := e.evalExpression(st.Value, s)
	if err != nil {
		return err
	}
	return e.assignVariable(st.Target, s, val)
}

func (e *Evaluator) execIf(st *ast.IfStatement, s *scope.Scope) (outcome, error) {
	cond, err := e.evalExpression(st.Cond, s)
	if err != nil {
		return outcome{}, err
	}
	if object.IsTruthy(cond) {
		return e.execBlock(st.Then, scope.NewChild(s))
	}
	if st.Else != nil {
		return e.execBlock(st.Else, scope.NewChild(s))
	}
	return normalOutcome, nil
}

func (e *Evaluator) execWhile(st *ast.WhileStatement, s *scope.Scope) (outcome, error) {
	iterations := 0
	for {
		cond, err := e.evalExpression(st.Cond, s)
		if err != nil {
			return outcome{}, err
		}
		if !object.IsTruthy(cond) {
			return normalOutcome, nil
		}

		out, err := e.execBlock(st.Body, scope.NewChild(s))
		if err != nil {
			return outcome{}, err
		}
		if out.returned {
			return out, nil
		}

		iterations++
		if s.MaxLoopIterations != scope.Unbounded && iterations > s.MaxLoopIterations {
			return outcome{}, loopOverflowErrorf(st.Pos(), "while loop exceeded %d iterations", s.MaxLoopIterations)
		}
	}
}

func (e *Evaluator) execForIn(st *ast.ForInStatement, s *scope.Scope) (outcome, error) {
	iterableVal, err := e.evalExpression(st.Iterable, s)
	if err != nil {
		return outcome{}, err
	}
	obj, ok := iterableVal.(*object.Object)
	if !ok {
		return outcome{}, typeErrorf(st.Pos(), "for-in requires an array-convention object, got %s", iterableVal.String())
	}
	n, ok := object.IsArray(obj)
	if !ok {
		return outcome{}, typeErrorf(st.Pos(), "for-in requires an array-convention object, got %s", obj.String())
	}

	for i := 0; i < n; i++ {
		child := scope.NewChild(s)
		elem := obj.Get(itoa(i))
		if err := e.assignVariable(st.Target, child, elem); err != nil {
			return outcome{}, err
		}
		out, err := e.execBlock(st.Body, child)
		if err != nil {
			return outcome{}, err
		}
		if out.returned {
			return out, nil
		}
	}
	return normalOutcome, nil
}

func (e *Evaluator) execReturn(st *ast.ReturnStatement, s *scope.Scope) (outcome, error) {
	if st.Value == nil {
		return returnedOutcome(object.Nil{}), nil
	}
	val, err := e.evalExpression(st.Value, s)
	if err != nil {
		return outcome{}, err
	}
	return returnedOutcome(val), nil
}
