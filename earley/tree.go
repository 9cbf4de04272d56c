package earley

import (
	"iter"
	"strings"

	"github.com/dhamidi/earley/tokenize"
)

// Result is a filled chart together with the tokens it was built from.
type Result struct {
	Tokens []tokenize.Token
	Chart  *Chart

	start     string
	accepting []StateID
}

// Start returns the start symbol the chart was parsed against.
func (r *Result) Start() string {
	return r.start
}

// Accepting returns the complete start-symbol states spanning every token.
func (r *Result) Accepting() []*State {
	out := make([]*State, len(r.accepting))
	for i, id := range r.accepting {
		out[i] = r.Chart.State(id)
	}
	return out
}

// Grammatical reports whether at least one parse was found.
func (r *Result) Grammatical() bool {
	return len(r.accepting) > 0
}

// Tree returns the first derivation of id.
func (r *Result) Tree(id StateID) *Tree {
	for t := range r.Trees(id, 1) {
		return t
	}
	return nil
}

// Trees enumerates the derivations of id lazily. At most limit trees are
// produced; a limit of zero or less means no limit. The sequence can be
// iterated any number of times.
func (r *Result) Trees(id StateID, limit int) iter.Seq[*Tree] {
	return func(yield func(*Tree) bool) {
		n := 0
		for t := range r.trees(id, nil) {
			if !yield(t) {
				return
			}
			n++
			if limit > 0 && n >= limit {
				return
			}
		}
	}
}

// AllTrees enumerates the derivations of every accepting state, at most
// limit in total.
func (r *Result) AllTrees(limit int) iter.Seq[*Tree] {
	return func(yield func(*Tree) bool) {
		n := 0
		for _, id := range r.accepting {
			for t := range r.trees(id, nil) {
				if !yield(t) {
					return
				}
				n++
				if limit > 0 && n >= limit {
					return
				}
			}
		}
	}
}

// path is the chain of states being expanded, used to cut cycles through
// unit and empty productions.
type path struct {
	id   StateID
	next *path
}

func (p *path) contains(id StateID) bool {
	for ; p != nil; p = p.next {
		if p.id == id {
			return true
		}
	}
	return false
}

func (r *Result) trees(id StateID, seen *path) iter.Seq[*Tree] {
	return func(yield func(*Tree) bool) {
		if seen.contains(id) {
			return
		}
		st := r.Chart.State(id)
		for kids := range r.children(id, &path{id: id, next: seen}) {
			if !yield(&Tree{State: st, Children: kids}) {
				return
			}
		}
	}
}

// children enumerates every sequence of subtrees that moved the dot of id
// to its current position.
func (r *Result) children(id StateID, seen *path) iter.Seq[[]*Tree] {
	return func(yield func([]*Tree) bool) {
		st := r.Chart.State(id)
		if len(st.links) == 0 {
			yield(nil)
			return
		}
		for _, l := range st.links {
			for prefix := range r.children(l.prev, seen) {
				for child := range r.trees(l.child, seen) {
					kids := make([]*Tree, len(prefix), len(prefix)+1)
					copy(kids, prefix)
					if !yield(append(kids, child)) {
						return
					}
				}
			}
		}
	}
}

// Tree is one derivation: a state and the derivations of the completed
// states that advanced it. Leaves are scanned words and empty productions.
type Tree struct {
	State    *State
	Children []*Tree
}

// Leaves returns the leaf states from left to right.
func (t *Tree) Leaves() []*State {
	if len(t.Children) == 0 {
		return []*State{t.State}
	}
	var out []*State
	for _, c := range t.Children {
		out = append(out, c.Leaves()...)
	}
	return out
}

// Words returns the scanned words covered by t.
func (t *Tree) Words() []string {
	var out []string
	for _, leaf := range t.Leaves() {
		if leaf.Scanned {
			out = append(out, leaf.Production.RHS[0])
		}
	}
	return out
}

// String renders t in bracketed form, e.g. (NP (Det the) (N dog)).
func (t *Tree) String() string {
	var sb strings.Builder
	t.write(&sb)
	return sb.String()
}

func (t *Tree) write(sb *strings.Builder) {
	sb.WriteByte('(')
	sb.WriteString(t.State.Production.LHS)
	if t.State.Scanned {
		sb.WriteByte(' ')
		sb.WriteString(t.State.Production.RHS[0])
	}
	for _, c := range t.Children {
		sb.WriteByte(' ')
		c.write(sb)
	}
	sb.WriteByte(')')
}
