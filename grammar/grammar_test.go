package grammar

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Alternatives(t *testing.T) {
	g, err := Parse("test.cfg", strings.NewReader(`
# noun phrases
NP -> Det Nom | Nom   # trailing comment
Nom -> N | Adj Nom
`))
	require.NoError(t, err)

	assert.Equal(t, "NP", g.Start())
	assert.Equal(t, []string{"NP", "Nom"}, g.Nonterminals())
	assert.Equal(t, 4, g.Len())

	prods, err := g.ProductionsFor("NP")
	require.NoError(t, err)
	require.Len(t, prods, 2)
	assert.Equal(t, []string{"Det", "Nom"}, prods[0].RHS)
	assert.Equal(t, []string{"Nom"}, prods[1].RHS)
	assert.Equal(t, "NP -> Det Nom", prods[0].String())
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		line int
	}{
		{name: "missing arrow", src: "NP Det N\n", line: 1},
		{name: "empty alternative", src: "NP -> Det N\nN -> dog | \n", line: 2},
		{name: "bad lhs", src: "N P -> Det\n", line: 1},
		{name: "bad symbol", src: "NP -> Det $N\n", line: 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse("bad.cfg", strings.NewReader(tt.src))
			require.Error(t, err)

			var gerr *Error
			require.True(t, errors.As(err, &gerr))
			assert.Equal(t, "bad.cfg", gerr.File)
			assert.Equal(t, tt.line, gerr.Line)
		})
	}
}

func TestParse_EmptySource(t *testing.T) {
	_, err := Parse("empty.cfg", strings.NewReader("# nothing here\n\n"))
	var gerr *Error
	require.ErrorAs(t, err, &gerr)
	assert.Contains(t, gerr.Error(), "no productions")
}

func TestParse_QuotedLiterals(t *testing.T) {
	g, err := Parse("lit.cfg", strings.NewReader(`RC -> "which" VP | "#" N # comment`))
	require.NoError(t, err)

	prods, err := g.ProductionsFor("RC")
	require.NoError(t, err)
	require.Len(t, prods, 2)
	assert.Equal(t, []string{`"which"`, "VP"}, prods[0].RHS)
	assert.Equal(t, []string{`"#"`, "N"}, prods[1].RHS)

	word, ok := Unquote(prods[0].RHS[0])
	assert.True(t, ok)
	assert.Equal(t, "which", word)

	_, ok = Unquote("VP")
	assert.False(t, ok)
}

func TestGrammar_ProductionsForUnknown(t *testing.T) {
	g := New()
	g.Add("NP", "Det", "N")

	_, err := g.ProductionsFor("VP")
	var gerr *Error
	require.ErrorAs(t, err, &gerr)
	assert.Equal(t, "VP", gerr.Symbol)
}

func TestGrammar_ContainsAndSymbols(t *testing.T) {
	g := New()
	g.Add("NP", "Det", "N")
	g.Add("NP", "Det", "N")
	g.Add("NP", "N")

	assert.True(t, g.Contains("NP"))
	assert.False(t, g.Contains("Det"), "preterminals have no productions")
	assert.Equal(t, []string{"Det", "N", "NP"}, g.Symbols())
	assert.Equal(t, 2, g.Len(), "duplicate production is ignored")
	assert.Equal(t, "NP -> Det N | N\n", g.String())
}

func TestGrammar_SetStart(t *testing.T) {
	g := New()
	g.Add("NP", "N")
	g.Add("S", "NP")
	assert.Equal(t, "NP", g.Start())

	g.SetStart("S")
	assert.Equal(t, "S", g.Start())
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "np.cfg")
	require.NoError(t, os.WriteFile(path, []byte("NP -> Det N\n"), 0o644))

	g, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 1, g.Len())

	_, err = Load(filepath.Join(t.TempDir(), "missing.cfg"))
	var gerr *Error
	require.ErrorAs(t, err, &gerr)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
