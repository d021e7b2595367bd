// Package scope implements the lexically nested variable environment
// described in spec.md §4.4: a scope owns its own bindings, a pointer to
// an outer scope, and a pointer to the global scope.
package scope

import "github.com/cwbudde/amta/internal/object"

// Unbounded disables the while-loop iteration budget.
const Unbounded = -1

// Scope is one level of the variable environment. Exactly one Scope in a
// program is the global scope (its outer and global pointers are itself).
type Scope struct {
	vars   map[string]object.Value
	outer  *Scope
	global *Scope

	// MaxLoopIterations is the budget inherited from the global scope at
	// creation time (§3.2). Unbounded disables the check.
	MaxLoopIterations int
}

// NewGlobal creates the single global scope of a program run, with the
// given loop-iteration budget.
func NewGlobal(maxLoopIterations int) *Scope {
	s := &Scope{
		vars:              make(map[string]object.Value),
		MaxLoopIterations: maxLoopIterations,
	}
	s.outer = s
	s.global = s
	return s
}

// NewChild creates a scope nested inside outer — used when entering a
// function body, an if/else branch, a while iteration, or a for iteration
// (§3.2).
func NewChild(outer *Scope) *Scope {
	return &Scope{
		vars:              make(map[string]object.Value),
		outer:             outer,
		global:            outer.global,
		MaxLoopIterations: outer.MaxLoopIterations,
	}
}

// Global returns the program's single global scope.
func (s *Scope) Global() *Scope {
	return s.global
}

// IsGlobal reports whether s is the program's global scope.
func (s *Scope) IsGlobal() bool {
	return s.outer == s
}

// GetLocal returns the value bound to name in this scope only, without
// consulting outer scopes, and whether it is bound at all.
func (s *Scope) GetLocal(name string) (object.Value, bool) {
	v, ok := s.vars[name]
	return v, ok
}

// SetLocal unconditionally defines name in this scope, shadowing any outer
// binding of the same name (the "!" force-local sigil, §4.4 rule 1).
// Assigning object.Nil{} deletes the binding.
func (s *Scope) SetLocal(name string, value object.Value) {
	if _, isNil := value.(object.Nil); isNil {
		delete(s.vars, name)
		return
	}
	s.vars[name] = value
}

// GetDefault walks outward from s to the nearest scope that defines name,
// returning object.Nil{} if none does (§4.4 rule 3, read side).
func (s *Scope) GetDefault(name string) object.Value {
	for cur := s; ; cur = cur.outer {
		if v, ok := cur.vars[name]; ok {
			return v
		}
		if cur.outer == cur {
			return object.Nil{}
		}
	}
}

// SetDefault assigns name at the nearest scope that already defines it,
// walking outward from s; if no scope defines it, it is defined in s
// itself (§4.4 rule 3, write side). Assigning object.Nil{} deletes the
// binding at whichever scope is resolved.
func (s *Scope) SetDefault(name string, value object.Value) {
	for cur := s; ; cur = cur.outer {
		if _, ok := cur.vars[name]; ok {
			cur.SetLocal(name, value)
			return
		}
		if cur.outer == cur {
			s.SetLocal(name, value)
			return
		}
	}
}

// GetGlobal reads name from the program's global scope (the ":" sigil,
// §4.4 rule 2).
func (s *Scope) GetGlobal(name string) object.Value {
	return s.global.GetDefault(name)
}

// SetGlobal assigns name in the program's global scope (the ":" sigil,
// §4.4 rule 2).
func (s *Scope) SetGlobal(name string, value object.Value) {
	s.global.SetDefault(name, value)
}

// Get implements object.HostScope so a *Scope can be passed directly to a
// host callable's action (§4.7): it looks up a bound parameter by its
// plain name in this scope only.
func (s *Scope) Get(name string) object.Value {
	v, ok := s.GetLocal(name)
	if !ok {
		return object.Nil{}
	}
	return v
}
