package grammar

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"
)

var (
	lhsPattern    = regexp.MustCompile(`^[\w\-]+$`)
	symbolPattern = regexp.MustCompile(`^(?:[\w\-]+|"(?:[^"\\]|\\.)+")$`)
)

// Load reads a grammar in arrow format from the file at path.
func Load(path string) (*Grammar, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &Error{File: path, Msg: "could not open grammar", Err: err}
	}
	defer f.Close()

	return Parse(path, f)
}

// Parse reads a grammar in arrow format:
//
//	NP -> Det Nom | Nom   # trailing comment
//
// Each alternative becomes its own Production. Blank lines and lines holding
// only a comment are skipped.
func Parse(filename string, r io.Reader) (*Grammar, error) {
	g := New()
	scanner := bufio.NewScanner(r)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := strings.TrimSpace(stripComment(scanner.Text()))
		if line == "" {
			continue
		}

		lhs, rhs, ok := strings.Cut(line, "->")
		if !ok {
			return nil, &Error{File: filename, Line: lineno, Msg: fmt.Sprintf("problem parsing %q: missing \"->\"", line)}
		}
		lhs = strings.TrimSpace(lhs)
		if !lhsPattern.MatchString(lhs) {
			return nil, &Error{File: filename, Line: lineno, Msg: fmt.Sprintf("invalid left-hand side %q", lhs)}
		}

		for _, alt := range splitOutsideQuotes(rhs, '|') {
			syms := strings.Fields(alt)
			if len(syms) == 0 {
				return nil, &Error{File: filename, Line: lineno, Msg: fmt.Sprintf("empty alternative for %s", lhs)}
			}
			for _, sym := range syms {
				if !symbolPattern.MatchString(sym) {
					return nil, &Error{File: filename, Line: lineno, Msg: fmt.Sprintf("invalid symbol %q", sym)}
				}
			}
			g.Add(lhs, syms...)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, &Error{File: filename, Msg: "read grammar", Err: err}
	}
	if len(g.order) == 0 {
		return nil, &Error{File: filename, Msg: "no productions"}
	}
	return g, nil
}

func stripComment(line string) string {
	parts := splitOutsideQuotes(line, '#')
	return parts[0]
}

// splitOutsideQuotes splits s on sep, ignoring separators inside
// double-quoted literals.
func splitOutsideQuotes(s string, sep byte) []string {
	var parts []string
	quoted := false
	start := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\\':
			if quoted {
				i++
			}
		case '"':
			quoted = !quoted
		case sep:
			if !quoted {
				parts = append(parts, s[start:i])
				start = i + 1
			}
		}
	}
	return append(parts, s[start:])
}
