package parser

import (
	"github.com/cwbudde/amta/internal/amtaerr"
	"github.com/cwbudde/amta/internal/ast"
	"github.com/cwbudde/amta/internal/token"
)

func (p *Parser) parseStatement() (ast.Statement, error) {
	switch p.cur().Type {
	case token.IF:
		return p.parseIf()
	case token.WHILE:
		return p.parseWhile()
	case token.FOR:
		return p.parseFor()
	case token.RETURN:
		return p.parseReturn()
	case token.VARIABLE:
		return p.parseAssignOrExprStatement()
	default:
		return nil, p.errorf(amtaerr.ParseError, "unexpected token %s %q at start of statement", p.cur().Type, p.cur().Literal)
	}
}

// parseAssignOrExprStatement parses either "variable = expr" or a call
// used as a statement (its value discarded).
func (p *Parser) parseAssignOrExprStatement() (ast.Statement, error) {
	v, err := p.parseVariable()
	if err != nil {
		return nil, err
	}

	if p.cur().Type == token.LPAREN {
		call, err := p.parseCall(v)
		if err != nil {
			return nil, err
		}
		return &ast.ExprStatement{Position: v.Position, Expr: call}, nil
	}

	if _, err := p.expect(token.ASSIGN); err != nil {
		return nil, err
	}
	value, err := p.parseExpression(lowest)
	if err != nil {
		return nil, err
	}
	if value == nil {
		return nil, p.errorf(amtaerr.ParseError, "expected right-hand side of assignment")
	}
	return &ast.AssignStatement{Position: v.Position, Target: v, Value: value}, nil
}

// parseIf parses "if expr NEWLINE then-stmts (el NEWLINE else-stmts)? fi".
// Matching el/fi is whatever parseStatements stops at first, since nested
// if/fi pairs are consumed whole by the recursive call before the
// terminator search resumes at this depth (§4.5).
func (p *Parser) parseIf() (ast.Statement, error) {
	ifTok, err := p.expect(token.IF)
	if err != nil {
		return nil, err
	}
	cond, err := p.parseExpression(lowest)
	if err != nil {
		return nil, err
	}
	if err := p.expectNewline(); err != nil {
		return nil, err
	}

	thenStmts, err := p.parseStatements(map[token.Type]bool{token.EL: true, token.FI: true})
	if err != nil {
		return nil, err
	}

	var elseStmts []ast.Statement
	if p.cur().Type == token.EL {
		p.advance()
		if err := p.expectNewline(); err != nil {
			return nil, err
		}
		elseStmts, err = p.parseStatements(map[token.Type]bool{token.FI: true})
		if err != nil {
			return nil, err
		}
	}

	if _, err := p.expect(token.FI); err != nil {
		return nil, err
	}

	return &ast.IfStatement{Position: ifTok.Pos, Cond: cond, Then: thenStmts, Else: elseStmts}, nil
}

// parseWhile parses "while expr NEWLINE body ewhil".
func (p *Parser) parseWhile() (ast.Statement, error) {
	whileTok, err := p.expect(token.WHILE)
	if err != nil {
		return nil, err
	}
	cond, err := p.parseExpression(lowest)
	if err != nil {
		return nil, err
	}
	if err := p.expectNewline(); err != nil {
		return nil, err
	}
	body, err := p.parseStatements(map[token.Type]bool{token.EWHIL: true})
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.EWHIL); err != nil {
		return nil, err
	}
	return &ast.WhileStatement{Position: whileTok.Pos, Cond: cond, Body: body}, nil
}

// parseFor parses "for variable expr NEWLINE body rfo".
func (p *Parser) parseFor() (ast.Statement, error) {
	forTok, err := p.expect(token.FOR)
	if err != nil {
		return nil, err
	}
	target, err := p.parseVariable()
	if err != nil {
		return nil, err
	}
	iterable, err := p.parseExpression(lowest)
	if err != nil {
		return nil, err
	}
	if err := p.expectNewline(); err != nil {
		return nil, err
	}
	body, err := p.parseStatements(map[token.Type]bool{token.RFO: true})
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RFO); err != nil {
		return nil, err
	}
	return &ast.ForInStatement{Position: forTok.Pos, Target: target, Iterable: iterable, Body: body}, nil
}

// parseReturn parses "return expr?"; a bare return yields Value == nil,
// which the evaluator treats as Nil.
func (p *Parser) parseReturn() (ast.Statement, error) {
	retTok, err := p.expect(token.RETURN)
	if err != nil {
		return nil, err
	}
	if p.cur().Type == token.NEWLINE || p.cur().Type == token.EOF {
		return &ast.ReturnStatement{Position: retTok.Pos, Value: nil}, nil
	}
	value, err := p.parseExpression(lowest)
	if err != nil {
		return nil, err
	}
	return &ast.ReturnStatement{Position: retTok.Pos, Value: value}, nil
}
