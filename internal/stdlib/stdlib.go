// Package stdlib is a reference implementation of the standard-library
// surface fixed by spec.md §6 (print, pow, range, typeof, ascii, isarray).
// The core only fixes the host-callable calling convention (C8); the
// library bodies themselves are an external collaborator, registered into
// the global scope before evaluation starts.
package stdlib

import (
	"github.com/cwbudde/amta/internal/ast"
	"github.com/cwbudde/amta/internal/interp"
	"github.com/cwbudde/amta/internal/object"
)

// Register installs the standard library into e's global scope.
func Register(e *interp.Evaluator) {
	registerCore(e)
	registerMath(e)
	registerType(e)
}

// param builds a bare "$name" parameter declaration for a host callable.
func param(name string, decl object.Kind) object.Param {
	return object.Param{Variable: &ast.Variable{Base: name}, Decl: decl}
}

func boolValue(b bool) object.Value {
	if b {
		return object.Number{Value: 1}
	}
	return object.Number{Value: 0}
}
