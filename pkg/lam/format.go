package lam

import (
	"strings"
)

// FormatSource rewrites lam source into canonical form: one statement
// per line, semicolon-terminated, with the spacing the String methods
// produce. Blank lines and whole-line comments between statements are
// kept; continuation lines of multi-line statements fold into the
// statement's own line.
func FormatSource(name, source string) (string, error) {
	stmts, err := ParseProgram(name, source)
	if err != nil {
		return "", err
	}

	lines := strings.Split(source, "\n")
	var out []string
	si := 0
	for i, raw := range lines {
		ln := i + 1
		started := false
		for si < len(stmts) && stmtLine(stmts[si]) == ln {
			out = append(out, stmts[si].String()+";")
			si++
			started = true
		}
		if started {
			continue
		}
		trimmed := strings.TrimSpace(raw)
		switch {
		case trimmed == "":
			out = append(out, "")
		case strings.HasPrefix(trimmed, "--"):
			out = append(out, trimmed)
		default:
			// A continuation line of a statement already rendered.
		}
	}

	text := strings.Join(out, "\n")
	text = strings.TrimRight(text, "\n")
	if text == "" {
		return "", nil
	}
	return text + "\n", nil
}

func stmtLine(s Statement) int {
	if loc := s.GetSourceLocation(); loc != nil {
		return loc.Line
	}
	return 0
}
