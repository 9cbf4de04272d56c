package earley

import "strings"

// ParseError reports a parser that cannot be built from the given grammar
// and lexicon.
type ParseError struct {
	Msg     string
	Missing []string
}

func (e *ParseError) Error() string {
	if len(e.Missing) == 0 {
		return "parse: " + e.Msg
	}
	return "parse: " + e.Msg + ": '" + strings.Join(e.Missing, "', '") + "'"
}
