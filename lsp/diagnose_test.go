package lsp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindOf(t *testing.T) {
	assert.Equal(t, Grammar, KindOf("/k/nounphrases.cfg"))
	assert.Equal(t, EBNF, KindOf("np.ebnf"))
	assert.Equal(t, Lexicon, KindOf("lexicon.data"))
	assert.Equal(t, Unknown, KindOf("README.md"))
}

func TestDiagnose_Grammar(t *testing.T) {
	assert.Empty(t, Diagnose("np.cfg", "NP -> Det N\n", ""))

	diags := Diagnose("np.cfg", "NP -> Det N\nNom N\n", "")
	require.Len(t, diags, 1)
	assert.EqualValues(t, 1, diags[0].Range.Start.Line)
	assert.EqualValues(t, 5, diags[0].Range.End.Character)
	assert.Contains(t, diags[0].Message, "missing")
	require.NotNil(t, diags[0].Source)
	assert.Equal(t, "earley", *diags[0].Source)
}

func TestDiagnose_Lexicon(t *testing.T) {
	diags := Diagnose("lex.data", "the Det\n\ndog\n", "")
	require.Len(t, diags, 1)
	assert.EqualValues(t, 2, diags[0].Range.Start.Line)
}

func TestDiagnose_EBNF(t *testing.T) {
	assert.Empty(t, Diagnose("np.ebnf", "NP = Det N .\n", ""))
	assert.Empty(t, Diagnose("np.ebnf", "NP = Det N .\n", "NP"))

	diags := Diagnose("np.ebnf", "NP = Det N .\nNom = N ] .\n", "")
	require.NotEmpty(t, diags)
	assert.EqualValues(t, 1, diags[0].Range.Start.Line)

	diags = Diagnose("np.ebnf", "NP = Det N .\n", "S")
	require.Len(t, diags, 1)
	assert.Contains(t, diags[0].Message, `"S"`)
}

func TestDiagnose_UnknownKind(t *testing.T) {
	assert.Nil(t, Diagnose("notes.txt", "anything", ""))
}

func TestUriToPath(t *testing.T) {
	path, err := uriToPath("file:///tmp/my%20grammar.cfg")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/my grammar.cfg", path)

	path, err = uriToPath("np.cfg")
	require.NoError(t, err)
	assert.Equal(t, "np.cfg", path)
}
