package grammar

import (
	"fmt"
	"io"
	"os"
	"slices"

	"golang.org/x/exp/ebnf"
)

// LoadEBNF reads an EBNF grammar from path and converts it, see FromEBNF.
func LoadEBNF(path, start string) (*Grammar, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &Error{File: path, Msg: "could not open grammar", Err: err}
	}
	defer f.Close()

	return ParseEBNF(path, f, start)
}

// ParseEBNF parses an EBNF grammar in the notation of golang.org/x/exp/ebnf
// and converts it, see FromEBNF.
func ParseEBNF(filename string, r io.Reader, start string) (*Grammar, error) {
	src, err := ebnf.Parse(filename, r)
	if err != nil {
		return nil, &Error{File: filename, Msg: err.Error(), Err: err}
	}
	g, err := FromEBNF(src, start)
	if err != nil {
		if ge, ok := err.(*Error); ok && ge.File == "" {
			ge.File = filename
		}
		return nil, err
	}
	return g, nil
}

// FromEBNF flattens an EBNF grammar into plain productions.
//
// Alternatives become separate productions and tokens become literal
// terminals. Groups, options and repetitions are replaced by fresh
// nonterminals named after the enclosing production ("Nom~1"); options and
// repetitions get an empty production, repetitions are left-recursive.
// Names without a production of their own are left as preterminals, so
// EBNF grammars are not required to pass ebnf.Verify.
func FromEBNF(src ebnf.Grammar, start string) (*Grammar, error) {
	if start == "" {
		return nil, &Error{Msg: "EBNF grammars need an explicit start symbol"}
	}
	if src[start] == nil {
		return nil, &Error{Symbol: start, Msg: fmt.Sprintf("start production %q not found", start)}
	}

	names := make([]string, 0, len(src))
	for name := range src {
		if name != start {
			names = append(names, name)
		}
	}
	slices.Sort(names)
	names = append([]string{start}, names...)

	c := &ebnfConverter{g: New(), fresh: make(map[string]int)}
	c.g.SetStart(start)
	for _, name := range names {
		prod := src[name]
		alts, err := c.alternatives(name, prod.Expr)
		if err != nil {
			return nil, err
		}
		for _, rhs := range alts {
			c.g.Add(name, rhs...)
		}
	}
	return c.g, nil
}

type ebnfConverter struct {
	g     *Grammar
	fresh map[string]int
}

func (c *ebnfConverter) newName(owner string) string {
	c.fresh[owner]++
	return fmt.Sprintf("%s~%d", owner, c.fresh[owner])
}

// alternatives returns the right-hand sides x expands to.
func (c *ebnfConverter) alternatives(owner string, x ebnf.Expression) ([][]string, error) {
	switch x := x.(type) {
	case nil:
		return [][]string{{}}, nil
	case ebnf.Alternative:
		var out [][]string
		for _, alt := range x {
			rhs, err := c.alternatives(owner, alt)
			if err != nil {
				return nil, err
			}
			out = append(out, rhs...)
		}
		return out, nil
	case ebnf.Sequence:
		rhs := make([]string, 0, len(x))
		for _, elem := range x {
			sym, err := c.symbol(owner, elem)
			if err != nil {
				return nil, err
			}
			rhs = append(rhs, sym)
		}
		return [][]string{rhs}, nil
	default:
		sym, err := c.symbol(owner, x)
		if err != nil {
			return nil, err
		}
		return [][]string{{sym}}, nil
	}
}

// symbol returns a single symbol standing for x, introducing a fresh
// nonterminal when x is compound.
func (c *ebnfConverter) symbol(owner string, x ebnf.Expression) (string, error) {
	switch x := x.(type) {
	case *ebnf.Name:
		return x.String, nil
	case *ebnf.Token:
		return Literal(x.String), nil
	case *ebnf.Range:
		return "", &Error{Line: x.Pos().Line, Msg: fmt.Sprintf("%s: character ranges are not supported", owner)}
	case *ebnf.Group:
		return c.define(owner, x.Body, false, false)
	case *ebnf.Option:
		return c.define(owner, x.Body, true, false)
	case *ebnf.Repetition:
		return c.define(owner, x.Body, true, true)
	default:
		return c.define(owner, x, false, false)
	}
}

func (c *ebnfConverter) define(owner string, body ebnf.Expression, nullable, repeat bool) (string, error) {
	name := c.newName(owner)
	alts, err := c.alternatives(owner, body)
	if err != nil {
		return "", err
	}
	if nullable {
		c.g.Add(name)
	}
	for _, rhs := range alts {
		if repeat {
			rhs = append([]string{name}, rhs...)
		}
		c.g.Add(name, rhs...)
	}
	return name, nil
}
