package interp

import (
	"github.com/cwbudde/amta/internal/ast"
	"github.com/cwbudde/amta/internal/object"
	"github.com/cwbudde/amta/internal/scope"
)

// resolveVariable implements the left-value "resolve" operation (§3.3,
// §4.4): the sigil picks the base scope-resolution rule, then each index
// step (static ":name" or dynamic "[expr]") walks one level deeper through
// Object.Get.
func (e *Evaluator) resolveVariable(v *ast.Variable, s *scope.Scope) (object.Value, error) {
	cur := e.sigilGet(v, s)
	for _, step := range v.Steps {
		key, err := e.stepKey(step, s)
		if err != nil {
			return nil, err
		}
		obj, ok := cur.(*object.Object)
		if !ok {
			return nil, typeErrorf(v.Pos(), "cannot index non-object value %s with key %q", cur.String(), key)
		}
		cur = obj.Get(key)
	}
	return cur, nil
}

// assignVariable implements the left-value "assign" operation. With no
// index steps it writes directly through the sigil's scope rule; with
// steps, every segment up to the last must already resolve to an Object —
// there is no auto-vivification, so indexing through an unset (Nil)
// intermediate is a TypeError.
func (e *Evaluator) assignVariable(v *ast.Variable, s *scope.Scope, val object.Value) error {
	if len(v.Steps) == 0 {
		e.sigilSet(v, s, val)
		return nil
	}

	cur := e.sigilGet(v, s)
	for _, step := range v.Steps[:len(v.Steps)-1] {
		key, err := e.stepKey(step, s)
		if err != nil {
			return err
		}
		obj, ok := cur.(*object.Object)
		if !ok {
			return typeErrorf(v.Pos(), "cannot index non-object value %s with key %q", cur.String(), key)
		}
		cur = obj.Get(key)
	}

	lastKey, err := e.stepKey(v.Steps[len(v.Steps)-1], s)
	if err != nil {
		return err
	}
	obj, ok := cur.(*object.Object)
	if !ok {
		return typeErrorf(v.Pos(), "cannot index non-object value %s with key %q", cur.String(), lastKey)
	}
	obj.Set(lastKey, val)
	return nil
}

// sigilGet reads the base identifier per its sigil (§4.4).
func (e *Evaluator) sigilGet(v *ast.Variable, s *scope.Scope) object.Value {
	switch v.Sigil {
	case ast.ForceLocal:
		val, ok := s.GetLocal(v.Base)
		if !ok {
			return object.Nil{}
		}
		return val
	case ast.Global:
		return s.GetGlobal(v.Base)
	default:
		return s.GetDefault(v.Base)
	}
}

// sigilSet writes the base identifier per its sigil (§4.4).
func (e *Evaluator) sigilSet(v *ast.Variable, s *scope.Scope, val object.Value) {
	switch v.Sigil {
	case ast.ForceLocal:
		s.SetLocal(v.Base, val)
	case ast.Global:
		s.SetGlobal(v.Base, val)
	default:
		s.SetDefault(v.Base, val)
	}
}

// stepKey evaluates one index step into the Object key it addresses: the
// literal segment text for a static step, or the stringified value of the
// bracketed expression for a dynamic step.
func (e *Evaluator) stepKey(step ast.IndexStep, s *scope.Scope) (string, error) {
	if step.Static != nil {
		return *step.Static, nil
	}
	val, err := e.evalExpression(step.Dynamic, s)
	if err != nil {
		return "", err
	}
	return val.String(), nil
}
