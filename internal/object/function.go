package object

import (
	"strings"

	"github.com/cwbudde/amta/internal/ast"
)

// Param is one (left-value, declared-kind) pair of a callable's parameter
// list (§4.7). Variable names the binding made in the call's own scope: a
// Default or ForceLocal parameter is always defined locally in that scope,
// and only a Global-sigil parameter writes to the global scope.
type Param struct {
	Variable *ast.Variable
	Decl     Kind // AnyKind means "no declared type"
}

// Name returns the parameter's base identifier, used for display and for
// the Function equality rule (equal parameter lists as sequences).
func (p Param) Name() string {
	return p.Variable.Base
}

// HostScope is the minimal view of a scope a host callable's action needs:
// read access to the arguments already bound under the callable's
// parameter names (§4.7).
type HostScope interface {
	Get(name string) Value
}

// HostAction is a native function body: given the call's scope (already
// populated with bound arguments), return a result or an error.
type HostAction func(scope HostScope) (Value, error)

// VariadicAction is a native function body that receives the raw argument
// list directly instead of a populated scope. It exists only for the
// handful of standard-library entries the spec itself overloads by arity
// under one name (range(stop), range(start, stop), range(start, stop,
// step) — spec.md §6): the general host-callable ABI binds a single fixed
// parameter list (§4.7), so a Function with Variadic set bypasses the
// arity/type check and parameter binding entirely and is handed the
// evaluated arguments as-is. Ordinary host and user functions never set
// this field.
type VariadicAction func(args []Value) (Value, error)

// Function is a callable value, either user-defined (Body holds its
// statements, possibly none) or host-defined (Action or Variadic non-nil).
type Function struct {
	Params []Param

	// User-defined
	Body []ast.Statement
	// Defining is the scope active when a user-defined function literal
	// was evaluated. The data model carries it (§3.1), but — faithfully
	// reproducing the source's dynamic-scoping quirk (spec.md §9) — a
	// call never consults it; the new call scope is chained from the
	// caller's current scope instead. Kept as interface{} to avoid the
	// object<->scope import cycle a concrete type would require.
	Defining interface{}

	// Host-defined
	Name     string
	Action   HostAction
	Variadic VariadicAction
}

func (*Function) Kind() Kind { return FunctionKind }

// String renders "fun(p1, p2, ...)" listing parameter names, per the
// stringify rule (§4.3).
func (f *Function) String() string {
	names := make([]string, len(f.Params))
	for i, p := range f.Params {
		names[i] = p.Name()
	}
	return "fun(" + strings.Join(names, ", ") + ")"
}

// IsHost reports whether f is a host-defined (native) callable.
func (f *Function) IsHost() bool {
	return f.Action != nil || f.Variadic != nil
}
