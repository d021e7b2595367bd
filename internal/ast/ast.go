// Package ast defines the abstract syntax tree produced by the parser and
// walked by the evaluator.
package ast

import "github.com/cwbudde/amta/internal/token"

// Node is the base of every AST node.
type Node interface {
	Pos() token.Position
}

// Expression is a node that evaluates to a Value.
type Expression interface {
	Node
	expressionNode()
}

// Statement is a node that is executed for its effect on a scope.
type Statement interface {
	Node
	statementNode()
}

// Sigil directs how a Variable's base identifier resolves against the
// scope chain (§4.4).
type Sigil int

const (
	// Default walks outward from the current scope to the nearest
	// definition, or (for assignment) defines in the current scope.
	Default Sigil = iota
	// ForceLocal always targets the current scope, shadowing any outer
	// binding of the same name.
	ForceLocal
	// Global always targets the root scope.
	Global
)

// IndexStep extends a Variable's left-value with one more level of
// indexing, either a static identifier segment (from ":name" chaining) or
// a dynamic expression (from "[expr]").
type IndexStep struct {
	Static  *string    // set for ":name" segments
	Dynamic Expression // set for "[expr]" segments
}

// Param is one (name, declared-kind) pair of a parameter list. DeclType is
// the raw type-name token, or token.ILLEGAL when no type-name was given;
// the evaluator maps it to an object.Kind (ILLEGAL to object.AnyKind).
// Param stores the token type rather than an object.Kind to avoid an
// import cycle.
type Param struct {
	Variable *Variable
	DeclType token.Type // token.ILLEGAL means "any"
}
