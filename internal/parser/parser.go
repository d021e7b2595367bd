// Package parser builds an AST from a token stream using operator
// precedence for expressions and keyword matching for block statements.
package parser

import (
	"strings"

	"github.com/cwbudde/amta/internal/amtaerr"
	"github.com/cwbudde/amta/internal/ast"
	"github.com/cwbudde/amta/internal/lexer"
	"github.com/cwbudde/amta/internal/token"
)

// Precedence levels for binary operators. The language's stated grammar is
// deliberately unusual (spec.md §4.5, §9): from tightest to loosest
// binding the order is unary, comparison, additive, multiplicative — so
// multiplicative operators bind *loosest* of the four. These constants
// encode that order directly; the climbing parser below does not assume
// the conventional ordering.
const (
	lowest             = 0
	precMultiplicative = 1 // * / %  (loosest binary level)
	precAdditive       = 2 // + -
	precComparison     = 3 // < <= > >= == !=  (tightest binary level)
)

var binaryPrecedence = map[token.Type]int{
	token.STAR:    precMultiplicative,
	token.SLASH:   precMultiplicative,
	token.PERCENT: precMultiplicative,
	token.PLUS:    precAdditive,
	token.MINUS:   precAdditive,
	token.LT:      precComparison,
	token.LE:      precComparison,
	token.GT:      precComparison,
	token.GE:      precComparison,
	token.EQ:      precComparison,
	token.NEQ:     precComparison,
}

// blockTerminators lists the keywords that close a block. parseStatements
// does not read it: each block parser passes its own stop set instead.
var blockTerminators = map[token.Type]bool{
	token.EL:    true,
	token.FI:    true,
	token.EWHIL: true,
	token.RFO:   true,
	token.NFU:   true,
}

// Parser consumes a token stream left to right and builds the AST.
type Parser struct {
	tokens []token.Token
	pos    int
	source string
}

// Parse tokenizes and parses source into a top-level statement list.
func Parse(source string) ([]ast.Statement, error) {
	tokens, err := lexer.Tokenize(source)
	if err != nil {
		return nil, err
	}
	p := New(tokens, source)
	return p.ParseProgram()
}

// New builds a Parser over an already-lexed token stream.
func New(tokens []token.Token, source string) *Parser {
	if len(tokens) == 0 {
		tokens = []token.Token{{Type: token.EOF}}
	}
	return &Parser{tokens: tokens, source: source}
}

func (p *Parser) cur() token.Token {
	return p.tokens[p.pos]
}

func (p *Parser) peek() token.Token {
	if p.pos+1 < len(p.tokens) {
		return p.tokens[p.pos+1]
	}
	return p.tokens[len(p.tokens)-1]
}

func (p *Parser) advance() token.Token {
	t := p.cur()
	if p.pos < len(p.tokens)-1 {
		p.pos++
	}
	return t
}

func (p *Parser) errorf(kind amtaerr.Kind, format string, args ...interface{}) error {
	return amtaerr.New(kind, p.cur().Pos, p.source, format, args...)
}

// expect consumes the current token if it has type tt, else returns a
// ParseError ("missing matching keyword/bracket").
func (p *Parser) expect(tt token.Type) (token.Token, error) {
	if p.cur().Type != tt {
		return token.Token{}, p.errorf(amtaerr.ParseError,
			"missing matching %s: found %s %q", tt, p.cur().Type, p.cur().Literal)
	}
	return p.advance(), nil
}

func (p *Parser) skipNewlines() {
	for p.cur().Type == token.NEWLINE {
		p.advance()
	}
}

// expectNewline requires a statement/block-header terminator: a NEWLINE
// token, or EOF at the very end of the program.
func (p *Parser) expectNewline() error {
	if p.cur().Type == token.NEWLINE {
		p.advance()
		return nil
	}
	if p.cur().Type == token.EOF {
		return nil
	}
	return p.errorf(amtaerr.ParseError, "unexpected token %s %q, expected newline", p.cur().Type, p.cur().Literal)
}

// ParseProgram parses the whole token stream as a top-level statement
// list, terminated only by EOF.
func (p *Parser) ParseProgram() ([]ast.Statement, error) {
	stmts, err := p.parseStatements(nil)
	if err != nil {
		return nil, err
	}
	if p.cur().Type != token.EOF {
		return nil, p.errorf(amtaerr.ParseError, "unexpected token %s %q at top level", p.cur().Type, p.cur().Literal)
	}
	return stmts, nil
}

// parseStatements parses statements separated by newlines until EOF or a
// token in stop is reached (the stop token itself is not consumed).
func (p *Parser) parseStatements(stop map[token.Type]bool) ([]ast.Statement, error) {
	var stmts []ast.Statement
	p.skipNewlines()
	for p.cur().Type != token.EOF && !stop[p.cur().Type] {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
		if err := p.expectNewline(); err != nil {
			return nil, err
		}
		p.skipNewlines()
	}
	return stmts, nil
}

// parseVariable parses a "$"-lexed VARIABLE token into a left-value: the
// sigil from the leading character, the base identifier, the static
// ":name" chain expanded into index steps, and any "[expr]" dynamic index
// steps that follow.
func (p *Parser) parseVariable() (*ast.Variable, error) {
	tok := p.cur()
	if tok.Type != token.VARIABLE {
		return nil, p.errorf(amtaerr.ParseError, "expected variable, found %s %q", tok.Type, tok.Literal)
	}
	p.advance()

	raw := strings.TrimPrefix(tok.Literal, "$")
	sigil := ast.Default
	switch {
	case strings.HasPrefix(raw, "!"):
		sigil = ast.ForceLocal
		raw = raw[1:]
	case strings.HasPrefix(raw, ":"):
		sigil = ast.Global
		raw = raw[1:]
	}

	segments := strings.Split(raw, ":")
	base := segments[0]
	steps := make([]ast.IndexStep, 0, len(segments)-1)
	for _, seg := range segments[1:] {
		seg := seg
		steps = append(steps, ast.IndexStep{Static: &seg})
	}

	v := &ast.Variable{Position: tok.Pos, Sigil: sigil, Base: base, Steps: steps}

	for p.cur().Type == token.LBRACK {
		p.advance()
		idx, err := p.parseExpression(lowest)
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.RBRACK); err != nil {
			return nil, err
		}
		v.Steps = append(v.Steps, ast.IndexStep{Dynamic: idx})
	}

	return v, nil
}
