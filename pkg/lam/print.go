package lam

import (
	"strings"
	"unicode"

	"charm.land/lipgloss/v2"
	"github.com/vito/lam/pkg/ty"
)

var (
	lambdaStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	punctStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	defNameStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("5"))
	numberStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	booleanStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Italic(true)
	varNameStyle = lipgloss.NewStyle().Italic(true)
)

// Printer renders terms for humans. Names starting with an uppercase
// letter read as definitions and come out pink, all-digit names and
// numerals green, booleans cyan, ordinary variables italic, and
// structural punctuation dark gray. With Color off the same text is
// produced unstyled.
type Printer struct {
	Color bool
}

func (p *Printer) style(s lipgloss.Style, text string) string {
	if !p.Color {
		return text
	}
	return s.Render(text)
}

// Name styles a bare name the way it would appear inside a term.
func (p *Printer) Name(name string) string {
	switch {
	case name == "true" || name == "false":
		return p.style(booleanStyle, name)
	case startsUpper(name):
		return p.style(defNameStyle, name)
	case allDigits(name):
		return p.style(numberStyle, name)
	default:
		return p.style(varNameStyle, name)
	}
}

// Term renders a term. Every application is parenthesized, which keeps
// reduction traces unambiguous at a glance.
func (p *Printer) Term(t Term) string {
	switch n := t.(type) {
	case *Variable:
		return p.Name(n.Name)
	case *NatLiteral:
		return p.style(numberStyle, n.Spelling())
	case *BoolLiteral:
		return p.style(booleanStyle, n.Spelling())
	case *Abstraction:
		var sb strings.Builder
		sb.WriteString(p.style(lambdaStyle, "λ"))
		if n.ParamType != nil {
			sb.WriteString(p.style(punctStyle, "("))
			sb.WriteString(p.Name(n.Param))
			sb.WriteString(p.style(punctStyle, ":"))
			sb.WriteString(p.Type(n.ParamType))
			sb.WriteString(p.style(punctStyle, ")"))
		} else {
			sb.WriteString(p.Name(n.Param))
		}
		sb.WriteString(p.style(punctStyle, "."))
		sb.WriteString(p.Term(n.Body))
		return sb.String()
	case *Application:
		return p.style(punctStyle, "(") +
			p.Term(n.Fn) + " " + p.Term(n.Arg) +
			p.style(punctStyle, ")")
	default:
		return t.String()
	}
}

// Type renders a type, parenthesizing function-typed domains.
func (p *Printer) Type(t ty.Type) string {
	switch n := t.(type) {
	case *ty.FunctionType:
		arg := p.Type(n.Arg())
		if _, nested := n.Arg().(*ty.FunctionType); nested {
			arg = p.style(punctStyle, "(") + arg + p.style(punctStyle, ")")
		}
		return arg + " " + p.style(punctStyle, "->") + " " + p.Type(n.Ret())
	case ty.HoleType:
		return p.style(punctStyle, "*")
	default:
		return p.style(defNameStyle, t.Name())
	}
}

// Assign renders an assignment echo, `x = e;` or `x : T = e;`.
func (p *Printer) Assign(name string, declared ty.Type, t Term) string {
	var sb strings.Builder
	sb.WriteString(p.Name(name))
	if declared != nil {
		sb.WriteString(" " + p.style(punctStyle, ":") + " ")
		sb.WriteString(p.Type(declared))
	}
	sb.WriteString(" = ")
	sb.WriteString(p.Term(t))
	sb.WriteString(p.style(punctStyle, ";"))
	return sb.String()
}

// Alias renders a type alias echo, `type A = T;`.
func (p *Printer) Alias(name string, target ty.Type) string {
	return p.style(lambdaStyle, "type") + " " +
		p.style(defNameStyle, name) + " = " +
		p.Type(target) +
		p.style(punctStyle, ";")
}

// Rule renders a horizontal separator of the given width.
func (p *Printer) Rule(width int) string {
	return p.style(punctStyle, strings.Repeat("-", width))
}

// Punct styles structural punctuation the way Term does, for callers
// assembling their own layouts around rendered terms.
func (p *Printer) Punct(text string) string {
	return p.style(punctStyle, text)
}

func startsUpper(name string) bool {
	for _, r := range name {
		return unicode.IsUpper(r)
	}
	return false
}

func allDigits(name string) bool {
	if name == "" {
		return false
	}
	for _, r := range name {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
