package parser

import (
	"github.com/cwbudde/amta/internal/amtaerr"
	"github.com/cwbudde/amta/internal/ast"
	"github.com/cwbudde/amta/internal/lexer"
	"github.com/cwbudde/amta/internal/token"
)

// parseExpression implements precedence climbing against binaryPrecedence.
// minPrec is the lowest operator precedence this call is allowed to
// absorb; recursing with prec+1 on the right-hand side makes each level
// left-associative.
func (p *Parser) parseExpression(minPrec int) (ast.Expression, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}

	for {
		prec, ok := binaryPrecedence[p.cur().Type]
		if !ok || prec < minPrec {
			break
		}
		opTok := p.advance()
		right, err := p.parseExpression(prec + 1)
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryExpr{Position: opTok.Pos, Op: opTok.Type, Left: left, Right: right}
	}

	return left, nil
}

// parseUnary handles the tightest-binding level: +, -, ! as prefix
// operators, recursing on themselves so "!!x" parses as expected.
func (p *Parser) parseUnary() (ast.Expression, error) {
	switch p.cur().Type {
	case token.PLUS, token.MINUS, token.BANG:
		opTok := p.advance()
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &ast.UnaryExpr{Position: opTok.Pos, Op: opTok.Type, Operand: operand}, nil
	default:
		return p.parsePrimary()
	}
}

func (p *Parser) parsePrimary() (ast.Expression, error) {
	tok := p.cur()
	switch tok.Type {
	case token.NUMBER:
		p.advance()
		v, ok := lexer.ParseNumberLiteral(tok.Literal)
		if !ok {
			return nil, p.errorf(amtaerr.ParseError, "malformed number literal %q", tok.Literal)
		}
		return &ast.NumberLiteral{Position: tok.Pos, Value: v}, nil

	case token.STRING:
		p.advance()
		return &ast.StringLiteral{Position: tok.Pos, Value: tok.Literal}, nil

	case token.TYPE_NIL:
		p.advance()
		return &ast.NilLiteral{Position: tok.Pos}, nil

	case token.EMPTYOBJ:
		p.advance()
		return &ast.EmptyObjectLiteral{Position: tok.Pos}, nil

	case token.FUN:
		return p.parseFunctionLiteral()

	case token.LPAREN:
		p.advance()
		expr, err := p.parseExpression(lowest)
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.RPAREN); err != nil {
			return nil, err
		}
		return expr, nil

	case token.VARIABLE:
		v, err := p.parseVariable()
		if err != nil {
			return nil, err
		}
		if p.cur().Type == token.LPAREN {
			return p.parseCall(v)
		}
		return v, nil

	default:
		return nil, p.errorf(amtaerr.ParseError, "unexpected token %s %q", tok.Type, tok.Literal)
	}
}

// parseCall parses the "(" arg, arg, ... ")" suffix of a call whose callee
// has already been parsed as a Variable.
func (p *Parser) parseCall(callee *ast.Variable) (ast.Expression, error) {
	lparen, err := p.expect(token.LPAREN)
	if err != nil {
		return nil, err
	}
	var args []ast.Expression
	if p.cur().Type != token.RPAREN {
		for {
			arg, err := p.parseExpression(lowest)
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
			if p.cur().Type != token.COMMA {
				break
			}
			p.advance()
		}
	}
	if _, err := p.expect(token.RPAREN); err != nil {
		return nil, err
	}
	return &ast.Call{Position: lparen.Pos, Callee: callee, Args: args}, nil
}

// parseFunctionLiteral parses "fun(" params ")" NEWLINE statements "nfu".
func (p *Parser) parseFunctionLiteral() (ast.Expression, error) {
	funTok, err := p.expect(token.FUN)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.LPAREN); err != nil {
		return nil, err
	}

	var params []ast.Param
	if p.cur().Type != token.RPAREN {
		for {
			param, err := p.parseParam()
			if err != nil {
				return nil, err
			}
			params = append(params, param)
			if p.cur().Type != token.COMMA {
				break
			}
			p.advance()
		}
	}
	if _, err := p.expect(token.RPAREN); err != nil {
		return nil, err
	}
	if err := p.expectNewline(); err != nil {
		return nil, err
	}

	body, err := p.parseStatements(map[token.Type]bool{token.NFU: true})
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.NFU); err != nil {
		return nil, err
	}

	return &ast.FunctionLiteral{Position: funTok.Pos, Params: params, Body: body}, nil
}

// parseParam parses one "$name [type-name]" parameter declaration. A
// parameter is a bare sigil-qualified name; index chaining is not part of
// the grammar here.
func (p *Parser) parseParam() (ast.Param, error) {
	tok := p.cur()
	if tok.Type != token.VARIABLE {
		return ast.Param{}, p.errorf(amtaerr.ParseError, "expected variable, found %s %q", tok.Type, tok.Literal)
	}
	p.advance()

	raw := tok.Literal[1:]
	sigil := ast.Default
	switch {
	case hasPrefix(raw, "!"):
		sigil = ast.ForceLocal
		raw = raw[1:]
	case hasPrefix(raw, ":"):
		sigil = ast.Global
		raw = raw[1:]
	}

	v := &ast.Variable{Position: tok.Pos, Sigil: sigil, Base: raw}

	declType := token.ILLEGAL
	if token.IsTypeName(p.cur().Type) {
		declType = p.cur().Type
		p.advance()
	}

	return ast.Param{Variable: v, DeclType: declType}, nil
}

func hasPrefix(s, prefix string) bool {
	return len(s) >= len(prefix) && s[:len(prefix)] == prefix
}
