// Package earley implements chart parsing of tagged sentences against a
// context-free grammar.
package earley

import (
	"context"
	"fmt"
	"slices"

	"github.com/dhamidi/earley/grammar"
	"github.com/dhamidi/earley/tokenize"
	"github.com/tliron/commonlog"
)

// Gamma is the left-hand side of the augmented start production.
const Gamma = "γ"

// Grammar is the view of a grammar the parser needs.
type Grammar interface {
	ProductionsFor(nonterminal string) ([]grammar.Production, error)
	Contains(symbol string) bool
	Symbols() []string
	Start() string
}

// Lexicon is the view of a lexicon the parser needs.
type Lexicon interface {
	TagOf(word string) (string, error)
	Preterminals() []string
}

// Parser parses sentences with a fixed grammar and lexicon. It keeps no
// state between calls and may be used from several goroutines.
type Parser struct {
	grammar Grammar
	lexicon Lexicon
	start   string
	log     commonlog.Logger
}

// Option configures a Parser.
type Option func(*Parser)

// WithStart overrides the grammar's start symbol.
func WithStart(symbol string) Option {
	return func(p *Parser) {
		p.start = symbol
	}
}

// WithLogger sets the logger used for parse tracing.
func WithLogger(log commonlog.Logger) Option {
	return func(p *Parser) {
		p.log = log
	}
}

// New creates a parser after checking that every tag the lexicon can
// produce is a symbol of the grammar.
func New(g Grammar, lex Lexicon, opts ...Option) (*Parser, error) {
	p := &Parser{
		grammar: g,
		lexicon: lex,
		start:   g.Start(),
		log:     commonlog.GetLogger("earley"),
	}
	for _, opt := range opts {
		opt(p)
	}

	if p.start == "" {
		return nil, &ParseError{Msg: "grammar has no start symbol"}
	}
	if !g.Contains(p.start) {
		return nil, &ParseError{Msg: fmt.Sprintf("start symbol %q has no productions", p.start)}
	}

	symbols := g.Symbols()
	var missing []string
	for _, tag := range lex.Preterminals() {
		if _, found := slices.BinarySearch(symbols, tag); !found {
			missing = append(missing, tag)
		}
	}
	if len(missing) > 0 {
		return nil, &ParseError{
			Msg:     "the following preterminals do not exist in the grammar",
			Missing: missing,
		}
	}
	return p, nil
}

// Start returns the start symbol.
func (p *Parser) Start() string {
	return p.start
}

// Parse tokenizes text with the parser's lexicon and parses the result.
func (p *Parser) Parse(ctx context.Context, text string) (*Result, error) {
	tokens, err := tokenize.Tokenize(p.lexicon, text)
	if err != nil {
		return nil, fmt.Errorf("tokenize: %w", err)
	}
	return p.ParseTokens(ctx, tokens)
}

// ParseTokens fills a fresh chart for tokens. The context is checked
// between chart positions.
func (p *Parser) ParseTokens(ctx context.Context, tokens []tokenize.Token) (*Result, error) {
	run := &run{
		parser: p,
		tokens: tokens,
		chart: Seed(State{
			Production: grammar.Production{LHS: Gamma, RHS: []string{p.start}},
			Span:       Span{Origin: 0, Current: 0},
		}),
	}

	n := len(tokens)
	for i := 0; i <= n && i < run.chart.Len(); i++ {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("parse aborted at position %d: %w", i, err)
		}
		if err := run.process(i); err != nil {
			return nil, err
		}
	}

	res := &Result{Tokens: tokens, Chart: run.chart, start: p.start}
	for _, e := range run.chart.entries {
		for _, id := range e.items {
			if run.chart.states[id].IsAccepting(p.start, n) {
				res.accepting = append(res.accepting, id)
			}
		}
	}

	p.log.Debugf("parsed %d tokens: %d entries, %d states, %d parses",
		n, run.chart.Len(), run.chart.Size(), len(res.accepting))
	return res, nil
}

// run is the mutable state of a single parse.
type run struct {
	parser *Parser
	tokens []tokenize.Token
	chart  *Chart
}

// process works through entry i until no state is left unprocessed,
// including the states appended while processing.
func (r *run) process(i int) error {
	e := r.chart.entries[i]
	for j := 0; j < len(e.items); j++ {
		id := e.items[j]
		st := r.chart.states[id]
		next, incomplete := st.NextSymbol()
		switch {
		case !incomplete:
			r.complete(id)
		case r.parser.grammar.Contains(next):
			if err := r.predict(i, id, next); err != nil {
				return err
			}
		default:
			r.scan(i, id, next)
		}
	}
	return nil
}

// predict adds a fresh state for every production of the awaited symbol.
func (r *run) predict(i int, id StateID, next string) error {
	prods, err := r.parser.grammar.ProductionsFor(next)
	if err != nil {
		return fmt.Errorf("predict %s at %d: %w", next, i, err)
	}
	for _, prod := range prods {
		r.chart.insert(i, State{
			Production: prod,
			Span:       Span{Origin: i, Current: i},
		}, nil)
	}

	// A symbol that already completed without consuming input at i will not
	// be completed again, so advance over it here.
	e := r.chart.entries[i]
	for k := 0; k < len(e.empty[next]); k++ {
		r.advance(i, id, e.empty[next][k])
	}
	return nil
}

// scan matches the awaited terminal against token i.
func (r *run) scan(i int, id StateID, next string) {
	if i >= len(r.tokens) {
		return
	}
	tok := r.tokens[i]
	if !matches(next, tok) {
		return
	}

	r.chart.Grow(i + 2)
	r.chart.insert(i+1, State{
		Production: grammar.Production{LHS: next, RHS: []string{tok.Word}},
		Progress:   1,
		Span:       Span{Origin: i, Current: i + 1},
		Scanned:    true,
	}, nil)
}

func matches(symbol string, tok tokenize.Token) bool {
	if symbol == tok.Tag {
		return true
	}
	word, ok := grammar.Unquote(symbol)
	return ok && word == tok.Word
}

// complete advances every state at the child's origin that was waiting for
// the child's left-hand side.
func (r *run) complete(child StateID) {
	st := r.chart.states[child]
	origin := r.chart.entries[st.Span.Origin]
	lhs := st.Production.LHS
	for k := 0; k < len(origin.waiting[lhs]); k++ {
		r.advance(st.Span.Current, origin.waiting[lhs][k], child)
	}
}

// advance stores parent with its dot moved over child as a new state in
// entry pos. Should the equal state exist already, this derivation is
// merged into it.
func (r *run) advance(pos int, parent, child StateID) {
	ps := r.chart.states[parent]
	r.chart.insert(pos, State{
		Production: ps.Production,
		Progress:   ps.Progress + 1,
		Span:       Span{Origin: ps.Span.Origin, Current: pos},
	}, &link{prev: parent, child: child})
}
