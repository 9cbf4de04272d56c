package lexicon

import "fmt"

// Error reports a word missing from the lexicon or a malformed lexicon source.
type Error struct {
	File string
	Line int
	Word string
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	switch {
	case e.File != "" && e.Line > 0:
		return fmt.Sprintf("lexicon: %s:%d: %s", e.File, e.Line, e.Msg)
	case e.File != "":
		return fmt.Sprintf("lexicon: %s: %s", e.File, e.Msg)
	}
	return "lexicon: " + e.Msg
}

func (e *Error) Unwrap() error { return e.Err }
