package format

import (
	"fmt"
	"io"
	"strings"

	"github.com/dhamidi/earley/earley"
)

// TextEncoder prints derivations as indented trees, four spaces per level,
// optionally preceded by the chart.
type TextEncoder struct {
	w   io.Writer
	res *earley.Result

	// Chart enables the "Chart Entry" dump.
	Chart bool
	// Limit caps the number of trees printed; zero prints all of them.
	Limit int
}

func NewTextEncoder(w io.Writer) *TextEncoder {
	return &TextEncoder{w: w}
}

func (e *TextEncoder) Encode(res *earley.Result) error {
	e.res = res
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *TextEncoder) MarshalText() ([]byte, error) {
	var sb strings.Builder
	if e.Chart {
		WriteChart(&sb, e.res.Chart)
		sb.WriteString("\n")
	}

	if !e.res.Grammatical() {
		sb.WriteString("The input is ungrammatical.\n")
		return []byte(sb.String()), nil
	}

	sb.WriteString("Successful Parses:\n")
	for tree := range e.res.AllTrees(e.Limit) {
		writeTree(&sb, tree, 0)
	}
	return []byte(sb.String()), nil
}

// WriteChart writes every chart entry, one state per line.
func WriteChart(sb *strings.Builder, c *earley.Chart) {
	for i := 0; i < c.Len(); i++ {
		label := fmt.Sprintf("Chart Entry %d:  ", i)
		for j, st := range c.States(i) {
			if j == 0 {
				sb.WriteString(label)
			} else {
				sb.WriteString(strings.Repeat(" ", len(label)))
			}
			sb.WriteString(st.String())
			sb.WriteString("\n")
		}
	}
}

func writeTree(sb *strings.Builder, t *earley.Tree, level int) {
	sb.WriteString(strings.Repeat("    ", level))
	sb.WriteString(t.State.String())
	sb.WriteString("\n")
	for _, c := range t.Children {
		writeTree(sb, c, level+1)
	}
}
