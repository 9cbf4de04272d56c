package grammar

import "fmt"

// Error reports a malformed grammar source or a lookup of a nonterminal
// that has no productions.
type Error struct {
	File   string
	Line   int
	Symbol string
	Msg    string
	Err    error
}

func (e *Error) Error() string {
	switch {
	case e.File != "" && e.Line > 0:
		return fmt.Sprintf("grammar: %s:%d: %s", e.File, e.Line, e.Msg)
	case e.File != "":
		return fmt.Sprintf("grammar: %s: %s", e.File, e.Msg)
	}
	return "grammar: " + e.Msg
}

func (e *Error) Unwrap() error { return e.Err }
