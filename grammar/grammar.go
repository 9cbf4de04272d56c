// Package grammar holds context-free grammars: productions grouped by their
// left-hand side, plus loaders for the arrow format and for EBNF.
package grammar

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Production is a single rewrite rule LHS -> RHS. It is a value type and
// must not be modified once it has been added to a Grammar.
type Production struct {
	LHS string
	RHS []string
}

func (p Production) String() string {
	if len(p.RHS) == 0 {
		return p.LHS + " -> ε"
	}
	return p.LHS + " -> " + strings.Join(p.RHS, " ")
}

// Equal reports whether p and q rewrite the same symbol to the same sequence.
func (p Production) Equal(q Production) bool {
	return p.LHS == q.LHS && slices.Equal(p.RHS, q.RHS)
}

// Grammar maps nonterminals to their productions.
type Grammar struct {
	start       string
	order       []string
	productions map[string][]Production
	symbols     map[string]struct{}
}

// New returns an empty grammar.
func New() *Grammar {
	return &Grammar{
		productions: make(map[string][]Production),
		symbols:     make(map[string]struct{}),
	}
}

// Add appends the production lhs -> rhs. Adding a production that is
// already present is a no-op.
func (g *Grammar) Add(lhs string, rhs ...string) {
	prod := Production{LHS: lhs, RHS: slices.Clone(rhs)}
	existing, ok := g.productions[lhs]
	if !ok {
		g.order = append(g.order, lhs)
	}
	for _, p := range existing {
		if p.Equal(prod) {
			return
		}
	}
	g.productions[lhs] = append(existing, prod)

	g.symbols[lhs] = struct{}{}
	for _, sym := range rhs {
		g.symbols[sym] = struct{}{}
	}
}

// SetStart overrides the start symbol.
func (g *Grammar) SetStart(symbol string) {
	g.start = symbol
}

// Start returns the start symbol: the one set with SetStart, or else the
// left-hand side of the first production added.
func (g *Grammar) Start() string {
	if g.start != "" {
		return g.start
	}
	if len(g.order) > 0 {
		return g.order[0]
	}
	return ""
}

// ProductionsFor returns the productions rewriting nonterminal, in the order
// they were added.
func (g *Grammar) ProductionsFor(nonterminal string) ([]Production, error) {
	prods, ok := g.productions[nonterminal]
	if !ok {
		return nil, &Error{Symbol: nonterminal, Msg: fmt.Sprintf("no production with the LHS %q", nonterminal)}
	}
	return prods, nil
}

// Contains reports whether symbol is a nonterminal with at least one production.
func (g *Grammar) Contains(symbol string) bool {
	_, ok := g.productions[symbol]
	return ok
}

// Nonterminals returns every left-hand side in order of first appearance.
func (g *Grammar) Nonterminals() []string {
	return slices.Clone(g.order)
}

// Symbols returns every symbol mentioned anywhere in the grammar, sorted.
// Preterminals only ever appear on right-hand sides, so this is the set a
// lexicon's tags are validated against.
func (g *Grammar) Symbols() []string {
	out := make([]string, 0, len(g.symbols))
	for sym := range g.symbols {
		out = append(out, sym)
	}
	slices.Sort(out)
	return out
}

// Len returns the number of productions.
func (g *Grammar) Len() int {
	n := 0
	for _, prods := range g.productions {
		n += len(prods)
	}
	return n
}

func (g *Grammar) String() string {
	var sb strings.Builder
	for _, lhs := range g.order {
		alts := make([]string, 0, len(g.productions[lhs]))
		for _, p := range g.productions[lhs] {
			if len(p.RHS) == 0 {
				alts = append(alts, "ε")
				continue
			}
			alts = append(alts, strings.Join(p.RHS, " "))
		}
		fmt.Fprintf(&sb, "%s -> %s\n", lhs, strings.Join(alts, " | "))
	}
	return sb.String()
}

// Literal returns the symbol matching the surface word itself rather than
// its part-of-speech tag.
func Literal(word string) string {
	return strconv.Quote(word)
}

// Unquote reports whether symbol is a literal and, if so, the word it matches.
func Unquote(symbol string) (string, bool) {
	if len(symbol) < 2 || symbol[0] != '"' {
		return "", false
	}
	word, err := strconv.Unquote(symbol)
	if err != nil {
		return "", false
	}
	return word, true
}
