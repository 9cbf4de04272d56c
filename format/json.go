package format

import (
	"encoding/json"
	"io"

	"github.com/dhamidi/earley/earley"
)

type JSONEncoder struct {
	w   io.Writer
	res *earley.Result

	// Limit caps the number of trees per parse; zero encodes all of them.
	Limit int
}

func NewJSONEncoder(w io.Writer) *JSONEncoder {
	return &JSONEncoder{w: w}
}

func (e *JSONEncoder) Encode(res *earley.Result) error {
	e.res = res
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	if _, err := e.w.Write(text); err != nil {
		return err
	}
	_, err = io.WriteString(e.w, "\n")
	return err
}

func (e *JSONEncoder) MarshalText() ([]byte, error) {
	return json.MarshalIndent(e.buildResultData(), "", "  ")
}

type jsonResult struct {
	Start       string      `json:"start"`
	Tokens      []jsonToken `json:"tokens"`
	Grammatical bool        `json:"grammatical"`
	Parses      []jsonParse `json:"parses"`
}

type jsonToken struct {
	Word   string `json:"word"`
	Tag    string `json:"tag"`
	Offset int    `json:"offset"`
}

type jsonParse struct {
	Rule  string     `json:"rule"`
	Span  [2]int     `json:"span"`
	Trees []jsonNode `json:"trees"`
}

type jsonNode struct {
	Symbol   string     `json:"symbol"`
	Rule     string     `json:"rule,omitempty"`
	Word     string     `json:"word,omitempty"`
	Span     [2]int     `json:"span"`
	Children []jsonNode `json:"children,omitempty"`
}

func (e *JSONEncoder) buildResultData() jsonResult {
	res := e.res
	data := jsonResult{
		Start:       res.Start(),
		Tokens:      make([]jsonToken, 0, len(res.Tokens)),
		Grammatical: res.Grammatical(),
		Parses:      make([]jsonParse, 0),
	}
	for _, tok := range res.Tokens {
		data.Tokens = append(data.Tokens, jsonToken{Word: tok.Word, Tag: tok.Tag, Offset: tok.Offset})
	}
	for _, st := range res.Accepting() {
		p := jsonParse{
			Rule: st.Production.String(),
			Span: [2]int{st.Span.Origin, st.Span.Current},
		}
		for tree := range res.Trees(st.ID, e.Limit) {
			p.Trees = append(p.Trees, buildNode(tree))
		}
		data.Parses = append(data.Parses, p)
	}
	return data
}

func buildNode(t *earley.Tree) jsonNode {
	st := t.State
	node := jsonNode{
		Symbol: st.Production.LHS,
		Span:   [2]int{st.Span.Origin, st.Span.Current},
	}
	if st.Scanned {
		node.Word = st.Production.RHS[0]
	} else {
		node.Rule = st.Production.String()
	}
	for _, c := range t.Children {
		node.Children = append(node.Children, buildNode(c))
	}
	return node
}
