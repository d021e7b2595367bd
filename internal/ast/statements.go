package ast

import "github.com/cwbudde/amta/internal/token"

// AssignStatement is "variable = expr".
type AssignStatement struct {
	Position token.Position
	Target   *Variable
	Value    Expression
}

func (a *AssignStatement) Pos() token.Position { return a.Position }
func (*AssignStatement) statementNode()        {}

// ExprStatement wraps a call expression used as a statement; its value is
// discarded.
type ExprStatement struct {
	Position token.Position
	Expr     Expression
}

func (e *ExprStatement) Pos() token.Position { return e.Position }
func (*ExprStatement) statementNode()        {}

// IfStatement is "if expr NEWLINE then-stmts (el NEWLINE else-stmts)? fi".
type IfStatement struct {
	Position token.Position
	Cond     Expression
	Then     []Statement
	Else     []Statement // nil if no "el" branch
}

func (i *IfStatement) Pos() token.Position { return i.Position }
func (*IfStatement) statementNode()        {}

// WhileStatement is "while expr NEWLINE body ewhil".
type WhileStatement struct {
	Position token.Position
	Cond     Expression
	Body     []Statement
}

func (w *WhileStatement) Pos() token.Position { return w.Position }
func (*WhileStatement) statementNode()        {}

// ForInStatement is "for variable expr NEWLINE body rfo".
type ForInStatement struct {
	Position token.Position
	Target   *Variable
	Iterable Expression
	Body     []Statement
}

func (f *ForInStatement) Pos() token.Position { return f.Position }
func (*ForInStatement) statementNode()        {}

// ReturnStatement is "return expr?". Value is nil for a bare return.
type ReturnStatement struct {
	Position token.Position
	Value    Expression
}

func (r *ReturnStatement) Pos() token.Position { return r.Position }
func (*ReturnStatement) statementNode()        {}
