package earley

import "slices"

// Chart is a table of states indexed by token boundary. All states live in
// a single arena and refer to each other by StateID, so a state is never
// rewritten once it has been stored.
type Chart struct {
	states  []State
	entries []*Entry
}

// Entry holds the deduplicated states ending at one token boundary.
type Entry struct {
	position int
	items    []StateID
	index    map[Key]StateID

	// waiting indexes incomplete states by the symbol after their dot.
	waiting map[string][]StateID
	// empty indexes complete zero-width states by left-hand side.
	empty map[string][]StateID
}

func newEntry(pos int) *Entry {
	return &Entry{
		position: pos,
		index:    make(map[Key]StateID),
		waiting:  make(map[string][]StateID),
		empty:    make(map[string][]StateID),
	}
}

// Position returns the token boundary of e.
func (e *Entry) Position() int {
	return e.position
}

// IDs returns the states of e in insertion order.
func (e *Entry) IDs() []StateID {
	return slices.Clone(e.items)
}

func (e *Entry) Len() int {
	return len(e.items)
}

// Seed returns a chart with a single entry holding start.
func Seed(start State) *Chart {
	c := &Chart{}
	c.Grow(1)
	c.Insert(0, start)
	return c
}

// Len returns the number of entries.
func (c *Chart) Len() int {
	return len(c.entries)
}

// Grow appends empty entries until the chart has at least n.
func (c *Chart) Grow(n int) {
	for len(c.entries) < n {
		c.entries = append(c.entries, newEntry(len(c.entries)))
	}
}

// Entry returns the entry at boundary i, or nil if the chart has not grown
// that far.
func (c *Chart) Entry(i int) *Entry {
	if i < 0 || i >= len(c.entries) {
		return nil
	}
	return c.entries[i]
}

// Entries returns every entry in position order.
func (c *Chart) Entries() []*Entry {
	return slices.Clone(c.entries)
}

// State returns the state with the given id. The pointer is only valid
// until the next insertion.
func (c *Chart) State(id StateID) *State {
	return &c.states[id]
}

// States returns the states of entry i.
func (c *Chart) States(i int) []*State {
	e := c.Entry(i)
	if e == nil {
		return nil
	}
	out := make([]*State, len(e.items))
	for j, id := range e.items {
		out[j] = &c.states[id]
	}
	return out
}

// Size returns the number of states across all entries.
func (c *Chart) Size() int {
	return len(c.states)
}

// Insert adds s to entry i unless an equal state is already there. It
// returns the id of the retained state and whether s was added.
func (c *Chart) Insert(i int, s State) (StateID, bool) {
	return c.insert(i, s, nil)
}

func (c *Chart) insert(i int, s State, via *link) (StateID, bool) {
	e := c.entries[i]
	key := s.Key()
	if id, ok := e.index[key]; ok {
		if via != nil {
			c.merge(id, *via)
		}
		return id, false
	}

	id := StateID(len(c.states))
	s.ID = id
	s.links = nil
	if via != nil {
		s.links = []link{*via}
	}
	c.states = append(c.states, s)

	e.index[key] = id
	e.items = append(e.items, id)
	if next, ok := s.NextSymbol(); ok {
		e.waiting[next] = append(e.waiting[next], id)
	} else if s.Span.Origin == e.position {
		e.empty[s.Production.LHS] = append(e.empty[s.Production.LHS], id)
	}
	return id, true
}

func (c *Chart) merge(id StateID, l link) {
	st := &c.states[id]
	if slices.Contains(st.links, l) {
		return
	}
	st.links = append(st.links, l)
}

// Backpointers returns the completed children of the first derivation
// recorded for id, left to right.
func (c *Chart) Backpointers(id StateID) []StateID {
	var out []StateID
	for {
		st := &c.states[id]
		if len(st.links) == 0 {
			break
		}
		l := st.links[0]
		out = append(out, l.child)
		id = l.prev
	}
	slices.Reverse(out)
	return out
}
