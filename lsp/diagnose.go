package lsp

import (
	"errors"
	"path/filepath"
	"reflect"
	"regexp"
	"strconv"
	"strings"

	"github.com/dhamidi/earley/grammar"
	"github.com/dhamidi/earley/lexicon"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"golang.org/x/exp/ebnf"
)

// Kind is the type of document a file holds.
type Kind int

const (
	Unknown Kind = iota
	Grammar
	EBNF
	Lexicon
)

// KindOf picks the document kind from the file extension.
func KindOf(path string) Kind {
	switch filepath.Ext(path) {
	case ".cfg", ".grammar":
		return Grammar
	case ".ebnf":
		return EBNF
	case ".lex", ".lexicon", ".data":
		return Lexicon
	}
	return Unknown
}

// Diagnose loads text as the document kind of path and reports every
// problem found. start is the start symbol used to flatten EBNF grammars;
// when empty only their syntax is checked.
func Diagnose(path, text, start string) []protocol.Diagnostic {
	lines := strings.Split(text, "\n")
	var err error
	switch KindOf(path) {
	case Grammar:
		_, err = grammar.Parse(path, strings.NewReader(text))
	case EBNF:
		return diagnoseEBNF(path, text, start, lines)
	case Lexicon:
		_, err = lexicon.Parse(path, strings.NewReader(text))
	default:
		return nil
	}
	if err == nil {
		return []protocol.Diagnostic{}
	}
	return []protocol.Diagnostic{newDiagnostic(lines, errorLine(err), err.Error())}
}

func diagnoseEBNF(path, text, start string, lines []string) []protocol.Diagnostic {
	src, err := ebnf.Parse(path, strings.NewReader(text))
	if err != nil {
		var diags []protocol.Diagnostic
		for _, e := range splitErrors(err) {
			diags = append(diags, newDiagnostic(lines, positionLine(e.Error()), e.Error()))
		}
		return diags
	}
	if start == "" {
		return []protocol.Diagnostic{}
	}
	if _, err := grammar.FromEBNF(src, start); err != nil {
		return []protocol.Diagnostic{newDiagnostic(lines, errorLine(err), err.Error())}
	}
	return []protocol.Diagnostic{}
}

// splitErrors unpacks the error list returned by ebnf.Parse.
func splitErrors(err error) []error {
	v := reflect.ValueOf(err)
	if v.Kind() != reflect.Slice {
		return []error{err}
	}
	out := make([]error, 0, v.Len())
	for i := 0; i < v.Len(); i++ {
		if e, ok := v.Index(i).Interface().(error); ok {
			out = append(out, e)
		}
	}
	return out
}

var positionPattern = regexp.MustCompile(`:(\d+):\d+: `)

// positionLine extracts the line from a "file:line:col: msg" message.
func positionLine(msg string) int {
	m := positionPattern.FindStringSubmatch(msg)
	if m == nil {
		return 0
	}
	n, _ := strconv.Atoi(m[1])
	return n
}

func errorLine(err error) int {
	var gerr *grammar.Error
	if errors.As(err, &gerr) {
		return gerr.Line
	}
	var lerr *lexicon.Error
	if errors.As(err, &lerr) {
		return lerr.Line
	}
	return 0
}

// newDiagnostic covers the whole of the 1-based line; zero means unknown
// and marks the first line.
func newDiagnostic(lines []string, line int, msg string) protocol.Diagnostic {
	if line > 0 {
		line--
	}
	if line >= len(lines) {
		line = len(lines) - 1
	}
	severity := protocol.DiagnosticSeverityError
	source := lsName
	return protocol.Diagnostic{
		Range: protocol.Range{
			Start: protocol.Position{Line: protocol.UInteger(line), Character: 0},
			End:   protocol.Position{Line: protocol.UInteger(line), Character: protocol.UInteger(len(lines[line]))},
		},
		Severity: &severity,
		Source:   &source,
		Message:  msg,
	}
}
