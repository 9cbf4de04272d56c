package earley

import (
	"fmt"
	"strings"

	"github.com/dhamidi/earley/grammar"
)

// StateID identifies a state in a chart's arena.
type StateID int

// NoState is the StateID of a missing state.
const NoState StateID = -1

// Span is a range of token boundaries. Origin is fixed when a state is
// created; Current is the boundary the state has been recognized up to.
type Span struct {
	Origin  int
	Current int
}

// State is a dotted rule: a production, how much of its right-hand side
// has been recognized, and the span of input that recognition covers.
//
// Two states are the same chart entry when their production, progress and
// span agree; how they were derived does not matter. Every distinct way of
// reaching an equal state is kept as a link on the single retained state.
type State struct {
	ID         StateID
	Production grammar.Production
	Progress   int
	Span       Span

	// Scanned marks a terminal match created by the scanner. Its production
	// is tag -> word.
	Scanned bool

	links []link
}

// link records one derivation step: the state before the dot moved, and the
// completed state that moved it.
type link struct {
	prev  StateID
	child StateID
}

// Complete reports whether the dot is at the end of the right-hand side.
func (s *State) Complete() bool {
	return s.Progress >= len(s.Production.RHS)
}

// Incomplete is the negation of Complete.
func (s *State) Incomplete() bool {
	return !s.Complete()
}

// NextSymbol returns the symbol after the dot.
func (s *State) NextSymbol() (string, bool) {
	if s.Complete() {
		return "", false
	}
	return s.Production.RHS[s.Progress], true
}

// IsAccepting reports whether s is a complete start-symbol state spanning
// all n tokens.
func (s *State) IsAccepting(start string, n int) bool {
	return s.Production.LHS == start && s.Complete() && s.Span.Origin == 0 && s.Span.Current == n
}

// Derivations returns how many distinct derivation steps were merged into s.
func (s *State) Derivations() int {
	return len(s.links)
}

// Key is the equality key of s.
func (s *State) Key() Key {
	return Key{
		LHS:      s.Production.LHS,
		RHS:      strings.Join(s.Production.RHS, "\x1f"),
		Progress: s.Progress,
		Span:     s.Span,
	}
}

func (s *State) String() string {
	rhs := make([]string, 0, len(s.Production.RHS)+1)
	rhs = append(rhs, s.Production.RHS[:s.Progress]...)
	rhs = append(rhs, "•")
	rhs = append(rhs, s.Production.RHS[s.Progress:]...)
	return fmt.Sprintf("%s → %s [%d, %d]", s.Production.LHS, strings.Join(rhs, " "), s.Span.Origin, s.Span.Current)
}

// Key identifies a state for deduplication.
type Key struct {
	LHS      string
	RHS      string
	Progress int
	Span     Span
}
