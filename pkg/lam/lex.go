package lam

import (
	"fmt"
	"unicode"

	"github.com/pkg/errors"
)

type TokenKind int

const (
	TokenEOF TokenKind = iota
	TokenIdent
	TokenNumber
	TokenTrue
	TokenFalse
	TokenTypeKeyword
	TokenLambda
	TokenDot
	TokenLParen
	TokenRParen
	TokenEquals
	TokenColon
	TokenSemicolon
	TokenArrow
	TokenStar
	TokenNewline
)

type Token struct {
	Kind    TokenKind
	Literal string
	Line    int
	Column  int
}

func (t Token) String() string {
	switch t.Kind {
	case TokenEOF:
		return "end of input"
	case TokenNewline:
		return "end of line"
	default:
		return fmt.Sprintf("%q", t.Literal)
	}
}

func (t Token) location(name string) *SourceLocation {
	length := len([]rune(t.Literal))
	if length == 0 {
		length = 1
	}
	return &SourceLocation{
		Filename: name,
		Line:     t.Line,
		Column:   t.Column,
		Length:   length,
	}
}

type lexer struct {
	name string
	src  []rune
	pos  int
	line int
	col  int

	// parens tracks open parentheses so newlines inside a grouped term
	// don't terminate the statement.
	parens int
}

// lex tokenizes a whole source string up front. Comments run from -- to
// the end of the line; newlines are kept as tokens at the top level so
// the parser can treat them as statement separators.
func lex(name, src string) ([]Token, error) {
	l := &lexer{name: name, src: []rune(src), line: 1, col: 1}
	var tokens []Token
	for {
		tok, err := l.next()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
		if tok.Kind == TokenEOF {
			return tokens, nil
		}
	}
}

func (l *lexer) peek() rune {
	if l.pos >= len(l.src) {
		return 0
	}
	return l.src[l.pos]
}

func (l *lexer) advance() rune {
	ch := l.src[l.pos]
	l.pos++
	if ch == '\n' {
		l.line++
		l.col = 1
	} else {
		l.col++
	}
	return ch
}

func (l *lexer) next() (Token, error) {
	l.skipSpace()

	line, col := l.line, l.col
	tok := func(kind TokenKind, lit string) Token {
		return Token{Kind: kind, Literal: lit, Line: line, Column: col}
	}

	if l.pos >= len(l.src) {
		return tok(TokenEOF, ""), nil
	}

	ch := l.advance()
	switch {
	case ch == '\n':
		return tok(TokenNewline, "\n"), nil
	case ch == 'λ' || ch == '\\':
		return tok(TokenLambda, string(ch)), nil
	case ch == '.':
		return tok(TokenDot, "."), nil
	case ch == '(':
		l.parens++
		return tok(TokenLParen, "("), nil
	case ch == ')':
		if l.parens > 0 {
			l.parens--
		}
		return tok(TokenRParen, ")"), nil
	case ch == '=':
		return tok(TokenEquals, "="), nil
	case ch == ':':
		return tok(TokenColon, ":"), nil
	case ch == ';':
		return tok(TokenSemicolon, ";"), nil
	case ch == '*':
		return tok(TokenStar, "*"), nil
	case ch == '-':
		if l.peek() == '>' {
			l.advance()
			return tok(TokenArrow, "->"), nil
		}
		return Token{}, l.errorAt(line, col, ch)
	case isIdentStart(ch):
		start := l.pos - 1
		for l.pos < len(l.src) && isIdentPart(l.peek()) {
			l.advance()
		}
		lit := string(l.src[start:l.pos])
		switch lit {
		case "type":
			return tok(TokenTypeKeyword, lit), nil
		case "true":
			return tok(TokenTrue, lit), nil
		case "false":
			return tok(TokenFalse, lit), nil
		default:
			return tok(TokenIdent, lit), nil
		}
	case isDigit(ch):
		start := l.pos - 1
		for l.pos < len(l.src) && isDigit(l.peek()) {
			l.advance()
		}
		return tok(TokenNumber, string(l.src[start:l.pos])), nil
	default:
		return Token{}, l.errorAt(line, col, ch)
	}
}

func (l *lexer) errorAt(line, col int, ch rune) error {
	return NewSourceError(
		errors.Errorf("unexpected character %q", ch),
		&SourceLocation{Filename: l.name, Line: line, Column: col, Length: 1},
		string(l.src),
	)
}

// skipSpace consumes whitespace and comments. Newlines survive only at
// paren depth zero, where they separate statements.
func (l *lexer) skipSpace() {
	for l.pos < len(l.src) {
		ch := l.peek()
		switch {
		case ch == '\n':
			if l.parens > 0 {
				l.advance()
				continue
			}
			return
		case unicode.IsSpace(ch):
			l.advance()
		case ch == '-' && l.pos+1 < len(l.src) && l.src[l.pos+1] == '-':
			for l.pos < len(l.src) && l.peek() != '\n' {
				l.advance()
			}
		default:
			return
		}
	}
}

func isIdentStart(ch rune) bool {
	return unicode.IsLetter(ch) && ch != 'λ' || ch == '_'
}

func isIdentPart(ch rune) bool {
	return isIdentStart(ch) || isDigit(ch) || ch == '\''
}

func isDigit(ch rune) bool {
	return ch >= '0' && ch <= '9'
}
