package lam

import (
	"strconv"

	"github.com/pkg/errors"
	"github.com/vito/lam/pkg/ty"
)

// ErrIncomplete reports source that ended in the middle of a construct,
// such as an unclosed paren or a binder with no body. The REPL checks
// for it to prompt for a continuation line instead of reporting a parse
// error.
var ErrIncomplete = errors.New("incomplete input")

type parser struct {
	name   string
	source string
	tokens []Token
	pos    int
}

// ParseProgram parses a sequence of statements separated by semicolons
// or newlines. A bare term is itself a statement. name labels source
// locations (a file path, or something like "repl").
func ParseProgram(name, source string) ([]Statement, error) {
	tokens, err := lex(name, source)
	if err != nil {
		return nil, err
	}
	p := &parser{name: name, source: source, tokens: tokens}
	var stmts []Statement
	for {
		p.skipSeparators()
		if p.at(TokenEOF) {
			return stmts, nil
		}
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
		if !p.at(TokenEOF) && !p.at(TokenSemicolon) && !p.at(TokenNewline) {
			return nil, p.unexpected("a statement separator")
		}
	}
}

// ParseTerm parses source containing exactly one bare term.
func ParseTerm(name, source string) (Term, error) {
	stmts, err := ParseProgram(name, source)
	if err != nil {
		return nil, err
	}
	if len(stmts) != 1 {
		return nil, errors.Errorf("expected a single term, got %d statements", len(stmts))
	}
	term, ok := stmts[0].(Term)
	if !ok {
		return nil, errors.Errorf("expected a term, got %T", stmts[0])
	}
	return term, nil
}

func (p *parser) cur() Token {
	return p.tokens[p.pos]
}

func (p *parser) at(kind TokenKind) bool {
	return p.cur().Kind == kind
}

func (p *parser) advance() Token {
	tok := p.cur()
	if tok.Kind != TokenEOF {
		p.pos++
	}
	return tok
}

func (p *parser) skipNewlines() {
	for p.at(TokenNewline) {
		p.advance()
	}
}

func (p *parser) skipSeparators() {
	for p.at(TokenNewline) || p.at(TokenSemicolon) {
		p.advance()
	}
}

func (p *parser) expect(kind TokenKind, what string) (Token, error) {
	if !p.at(kind) {
		return Token{}, p.unexpected(what)
	}
	return p.advance(), nil
}

func (p *parser) unexpected(expected string) error {
	tok := p.cur()
	if tok.Kind == TokenEOF {
		return errors.Wrapf(ErrIncomplete, "expected %s", expected)
	}
	return NewSourceError(
		errors.Errorf("unexpected %s, expected %s", tok, expected),
		tok.location(p.name),
		p.source,
	)
}

func (p *parser) parseStatement() (Statement, error) {
	if p.at(TokenTypeKeyword) {
		return p.parseTypeAlias()
	}
	if p.startsAssignment() {
		return p.parseAssignment()
	}
	return p.parseTerm()
}

// startsAssignment looks one token ahead to tell `x = e` and `x : T = e`
// apart from a bare term. Numerals and booleans are valid targets too,
// which is how the standard library gets to define the literals.
func (p *parser) startsAssignment() bool {
	switch p.cur().Kind {
	case TokenIdent, TokenNumber, TokenTrue, TokenFalse:
	default:
		return false
	}
	next := p.tokens[p.pos+1].Kind
	return next == TokenEquals || next == TokenColon
}

func (p *parser) parseAssignment() (Statement, error) {
	target := p.advance()
	var declared ty.Type
	if p.at(TokenColon) {
		p.advance()
		p.skipNewlines()
		var err error
		declared, err = p.parseType()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.expect(TokenEquals, `"="`); err != nil {
		return nil, err
	}
	p.skipNewlines()
	body, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	return &Assignment{
		Name:     target.Literal,
		Declared: declared,
		Body:     body,
		Loc:      target.location(p.name),
	}, nil
}

func (p *parser) parseTypeAlias() (Statement, error) {
	kw := p.advance()
	name, err := p.expect(TokenIdent, "a type name")
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(TokenEquals, `"="`); err != nil {
		return nil, err
	}
	p.skipNewlines()
	target, err := p.parseType()
	if err != nil {
		return nil, err
	}
	return &TypeAlias{
		Name:   name.Literal,
		Target: target,
		Loc:    kw.location(p.name),
	}, nil
}

func (p *parser) parseTerm() (Term, error) {
	if p.at(TokenLambda) {
		return p.parseAbstraction()
	}
	return p.parseApplication()
}

func (p *parser) parseAbstraction() (Term, error) {
	lam := p.advance()
	var param string
	var paramType ty.Type
	if p.at(TokenLParen) {
		p.advance()
		id, err := p.expect(TokenIdent, "a parameter name")
		if err != nil {
			return nil, err
		}
		param = id.Literal
		if _, err := p.expect(TokenColon, `":"`); err != nil {
			return nil, err
		}
		paramType, err = p.parseType()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(TokenRParen, `")"`); err != nil {
			return nil, err
		}
	} else {
		id, err := p.expect(TokenIdent, "a parameter name")
		if err != nil {
			return nil, err
		}
		param = id.Literal
		if p.at(TokenColon) {
			p.advance()
			paramType, err = p.parseType()
			if err != nil {
				return nil, err
			}
		}
	}
	if _, err := p.expect(TokenDot, `"."`); err != nil {
		return nil, err
	}
	p.skipNewlines()
	body, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	return &Abstraction{
		Param:     param,
		ParamType: paramType,
		Body:      body,
		Loc:       lam.location(p.name),
	}, nil
}

func (p *parser) parseApplication() (Term, error) {
	left, err := p.parseAtom()
	if err != nil {
		return nil, err
	}
	for {
		if p.at(TokenLambda) {
			// A trailing abstraction extends as far right as it can, so
			// f λx. x parses as (f (λx. x)).
			arg, err := p.parseTerm()
			if err != nil {
				return nil, err
			}
			return &Application{Fn: left, Arg: arg, Loc: left.GetSourceLocation()}, nil
		}
		if !p.atAtomStart() {
			return left, nil
		}
		arg, err := p.parseAtom()
		if err != nil {
			return nil, err
		}
		left = &Application{Fn: left, Arg: arg, Loc: left.GetSourceLocation()}
	}
}

func (p *parser) atAtomStart() bool {
	switch p.cur().Kind {
	case TokenIdent, TokenNumber, TokenTrue, TokenFalse, TokenLParen:
		return true
	default:
		return false
	}
}

func (p *parser) parseAtom() (Term, error) {
	tok := p.cur()
	switch tok.Kind {
	case TokenIdent:
		p.advance()
		return &Variable{Name: tok.Literal, Loc: tok.location(p.name)}, nil
	case TokenNumber:
		p.advance()
		value, err := strconv.Atoi(tok.Literal)
		if err != nil {
			return nil, NewSourceError(
				errors.Wrap(err, "bad numeral"),
				tok.location(p.name),
				p.source,
			)
		}
		return &NatLiteral{Value: value, Loc: tok.location(p.name)}, nil
	case TokenTrue, TokenFalse:
		p.advance()
		return &BoolLiteral{Value: tok.Kind == TokenTrue, Loc: tok.location(p.name)}, nil
	case TokenLParen:
		p.advance()
		term, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(TokenRParen, `")"`); err != nil {
			return nil, err
		}
		return term, nil
	default:
		return nil, p.unexpected("a term")
	}
}

func (p *parser) parseType() (ty.Type, error) {
	atom, err := p.parseTypeAtom()
	if err != nil {
		return nil, err
	}
	if p.at(TokenArrow) {
		p.advance()
		p.skipNewlines()
		ret, err := p.parseType()
		if err != nil {
			return nil, err
		}
		return ty.NewFnType(atom, ret), nil
	}
	return atom, nil
}

func (p *parser) parseTypeAtom() (ty.Type, error) {
	tok := p.cur()
	switch tok.Kind {
	case TokenIdent:
		p.advance()
		return ty.NamedType(tok.Literal), nil
	case TokenStar:
		p.advance()
		return ty.Hole, nil
	case TokenLParen:
		p.advance()
		t, err := p.parseType()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(TokenRParen, `")"`); err != nil {
			return nil, err
		}
		return t, nil
	default:
		return nil, p.unexpected("a type")
	}
}
