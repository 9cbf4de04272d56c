package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/dhamidi/earley/earley"
	"github.com/dhamidi/earley/grammar"
	"github.com/dhamidi/earley/lexicon"
)

// describe prefixes err with the kind of failure the user has to fix.
func describe(err error) string {
	var gerr *grammar.Error
	var lerr *lexicon.Error
	var perr *earley.ParseError
	switch {
	case errors.As(err, &perr):
		return "Parse Error: " + err.Error()
	case errors.As(err, &lerr):
		return "Lexical Error: " + err.Error()
	case errors.As(err, &gerr):
		return "Grammar Error: " + err.Error()
	}
	return err.Error()
}

// printTraceback writes err and every error it wraps, outermost first.
func printTraceback(w io.Writer, err error) {
	fmt.Fprintf(w, "Error: %s\n", describe(err))
	depth := 0
	for e := err; e != nil; e = errors.Unwrap(e) {
		fmt.Fprintf(w, "  %d: %T: %s\n", depth, e, e)
		depth++
	}
}
