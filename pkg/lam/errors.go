package lam

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/vito/lam/pkg/ty"
)

// SourceLocation represents a location in source code.
type SourceLocation struct {
	Filename string
	Line     int
	Column   int
	Length   int // length of the syntax node that caused the error
}

func (loc *SourceLocation) String() string {
	if loc == nil {
		return "<unknown>"
	}
	return fmt.Sprintf("%s:%d:%d", loc.Filename, loc.Line, loc.Column)
}

// SourceLocatable is anything that knows where it came from.
type SourceLocatable interface {
	GetSourceLocation() *SourceLocation
}

// SourceError wraps an error with source location information and renders
// it with the offending line highlighted.
type SourceError struct {
	Inner    error
	Location *SourceLocation
	Source   string // the source code of the file
}

// NewSourceError creates a new SourceError.
func NewSourceError(inner error, location *SourceLocation, source string) *SourceError {
	return &SourceError{
		Inner:    inner,
		Location: location,
		Source:   source,
	}
}

func (e *SourceError) Unwrap() error {
	return e.Inner
}

func (e *SourceError) Error() string {
	if e.Location == nil {
		return e.Inner.Error()
	}
	return e.FormatWithHighlighting()
}

// FormatWithHighlighting returns a nicely formatted error with the
// offending line underlined.
func (e *SourceError) FormatWithHighlighting() string {
	if e.Location == nil && e.Source == "" {
		return e.Inner.Error()
	}

	if e.Source == "" && e.Location.Filename != "" {
		contents, err := os.ReadFile(e.Location.Filename)
		if err == nil {
			e.Source = string(contents)
		}
	}

	lines := strings.Split(e.Source, "\n")
	if e.Location.Line < 1 || e.Location.Line > len(lines) {
		return e.Inner.Error()
	}

	// Colors for terminal output
	const (
		red   = "\033[31m"
		blue  = "\033[34m"
		bold  = "\033[1m"
		reset = "\033[0m"
		dim   = "\033[2m"
	)

	var result strings.Builder

	result.WriteString(fmt.Sprintf("%s%sError:%s %s\n", bold, red, reset, e.Inner))
	result.WriteString(fmt.Sprintf("  %s%s--> %s:%d:%d%s\n", dim, blue, e.Location.Filename, e.Location.Line, e.Location.Column, reset))

	result.WriteString(fmt.Sprintf(" %s%s |%s\n", dim, padLeft("", 3), reset))

	startLine := max(1, e.Location.Line-2)
	endLine := min(len(lines), e.Location.Line+2)

	for i := startLine; i <= endLine; i++ {
		paddedLineStr := padLeft(fmt.Sprintf("%d", i), 3)
		if i == e.Location.Line {
			result.WriteString(fmt.Sprintf(" %s%s%s%s | %s%s\n",
				dim, blue, bold, paddedLineStr, reset, lines[i-1]))

			// Underline the error location: 1 space + 3 for the line
			// number + " | " + column offset.
			padding := strings.Repeat(" ", 1+3+3+e.Location.Column-1)
			underline := strings.Repeat("^", max(1, e.Location.Length))
			result.WriteString(fmt.Sprintf("%s%s%s%s%s\n",
				dim, padding, red, underline, reset))
		} else {
			result.WriteString(fmt.Sprintf(" %s%s | %s%s\n",
				dim, paddedLineStr, lines[i-1], reset))
		}
	}

	result.WriteString(fmt.Sprintf(" %s%s |%s\n", dim, padLeft("", 3), reset))

	return result.String()
}

func padLeft(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat(" ", width-len(s)) + s
}

// RenderError formats an error for terminal display. Errors that carry
// a source location come back with the offending line underlined;
// anything else is the bare message. source supplies the original text
// for locations that don't name a readable file, such as REPL input.
func RenderError(err error, source string) string {
	var srcErr *SourceError
	if errors.As(err, &srcErr) {
		return strings.TrimRight(srcErr.FormatWithHighlighting(), "\n")
	}
	var typeErr TypeError
	if errors.As(err, &typeErr) && typeErr.GetSourceLocation() != nil {
		wrapped := NewSourceError(typeErr, typeErr.GetSourceLocation(), source)
		return strings.TrimRight(wrapped.FormatWithHighlighting(), "\n")
	}
	return err.Error()
}

// TypeError is implemented by every diagnostic the checker can produce.
// Type errors are values surfaced per statement; they never abort a
// session and never block the offending term from being registered or
// reduced.
type TypeError interface {
	error
	SourceLocatable
	typeError()
}

// UnboundError reports a name with no binder in scope and no declared
// type in the environment.
type UnboundError struct {
	Name     string
	Location *SourceLocation
}

var _ TypeError = (*UnboundError)(nil)

func (e *UnboundError) Error() string {
	return fmt.Sprintf("unbound or untyped name %q", e.Name)
}

func (e *UnboundError) GetSourceLocation() *SourceLocation { return e.Location }
func (e *UnboundError) typeError()                         {}

// MismatchError reports a term whose type disagrees with the expected one.
type MismatchError struct {
	Expected ty.Type
	Actual   ty.Type
	Location *SourceLocation
}

var _ TypeError = (*MismatchError)(nil)

func (e *MismatchError) Error() string {
	return fmt.Sprintf("type mismatch: expected %s, got %s", e.Expected, e.Actual)
}

func (e *MismatchError) GetSourceLocation() *SourceLocation { return e.Location }
func (e *MismatchError) typeError()                         {}

// NotAFunctionError reports an application whose head is not function-typed.
type NotAFunctionError struct {
	Actual   ty.Type
	Location *SourceLocation
}

var _ TypeError = (*NotAFunctionError)(nil)

func (e *NotAFunctionError) Error() string {
	return fmt.Sprintf("not a function: %s", e.Actual)
}

func (e *NotAFunctionError) GetSourceLocation() *SourceLocation { return e.Location }
func (e *NotAFunctionError) typeError()                         {}

// CannotInferError reports an unannotated abstraction used where a type
// must be synthesized. Such terms are only typeable in checking mode.
type CannotInferError struct {
	Location *SourceLocation
}

var _ TypeError = (*CannotInferError)(nil)

func (e *CannotInferError) Error() string {
	return "cannot infer the type of an unannotated abstraction"
}

func (e *CannotInferError) GetSourceLocation() *SourceLocation { return e.Location }
func (e *CannotInferError) typeError()                         {}

// CyclicAliasError reports a type alias that resolves back to itself.
type CyclicAliasError struct {
	Name     string
	Location *SourceLocation
}

var _ TypeError = (*CyclicAliasError)(nil)

func (e *CyclicAliasError) Error() string {
	return fmt.Sprintf("cyclic type alias %q", e.Name)
}

func (e *CyclicAliasError) GetSourceLocation() *SourceLocation { return e.Location }
func (e *CyclicAliasError) typeError()                         {}
