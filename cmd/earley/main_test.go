package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFixtures(t *testing.T) (string, string) {
	t.Helper()
	dir := t.TempDir()
	g := filepath.Join(dir, "np.cfg")
	lex := filepath.Join(dir, "lex.data")
	require.NoError(t, os.WriteFile(g, []byte("NP -> Det N | N\n"), 0o644))
	require.NoError(t, os.WriteFile(lex, []byte("the Det\ndog N\n"), 0o644))
	return g, lex
}

func run(t *testing.T, args ...string) (string, *viper.Viper, error) {
	t.Helper()
	v := viper.New()
	cmd := newRootCmd(v)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), v, err
}

func TestParse_Text(t *testing.T) {
	g, lex := writeFixtures(t)

	out, _, err := run(t, "-g", g, "-l", lex, "parse", "The dog")
	require.NoError(t, err)
	assert.Equal(t, "Successful Parses:\n"+
		"NP → Det N • [0, 2]\n"+
		"    Det → the • [0, 1]\n"+
		"    N → dog • [1, 2]\n", out)
}

func TestParse_Chart(t *testing.T) {
	g, lex := writeFixtures(t)

	out, _, err := run(t, "-g", g, "-l", lex, "parse", "--chart", "dog")
	require.NoError(t, err)
	assert.Contains(t, out, "Chart Entry 0:  ")
	assert.Contains(t, out, "Successful Parses:\n")
}

func TestParse_JSON(t *testing.T) {
	g, lex := writeFixtures(t)

	out, _, err := run(t, "-g", g, "-l", lex, "parse", "--format", "json", "the dog")
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Equal(t, true, doc["grammatical"])
}

func TestParse_Ungrammatical(t *testing.T) {
	g, lex := writeFixtures(t)

	out, _, err := run(t, "-g", g, "-l", lex, "parse", "dog the")
	require.NoError(t, err)
	assert.Equal(t, "The input is ungrammatical.\n", out)
}

func TestParse_UnknownWord(t *testing.T) {
	g, lex := writeFixtures(t)

	_, _, err := run(t, "-g", g, "-l", lex, "parse", "the cat")
	require.Error(t, err)
	assert.Contains(t, describe(err), "Lexical Error: ")
	assert.Contains(t, err.Error(), `"cat"`)
}

func TestParse_MissingPhrase(t *testing.T) {
	g, lex := writeFixtures(t)

	_, _, err := run(t, "-g", g, "-l", lex, "parse")
	require.EqualError(t, err, "please specify a phrase to parse in quotes")
}

func TestParse_UnknownFormat(t *testing.T) {
	g, lex := writeFixtures(t)

	_, _, err := run(t, "-g", g, "-l", lex, "parse", "--format", "xml", "dog")
	require.EqualError(t, err, "unknown format: xml")
}

func TestCheck(t *testing.T) {
	g, lex := writeFixtures(t)

	out, _, err := run(t, "-g", g, "-l", lex, "check")
	require.NoError(t, err)
	assert.Contains(t, out, "2 productions")
	assert.Contains(t, out, "2 words, 2 tags")
	assert.Contains(t, out, "ok\n")
}

func TestCheck_MissingPreterminal(t *testing.T) {
	g, _ := writeFixtures(t)
	lex := filepath.Join(t.TempDir(), "lex.data")
	require.NoError(t, os.WriteFile(lex, []byte("the Det\ndog N\nran V\n"), 0o644))

	_, _, err := run(t, "-g", g, "-l", lex, "check")
	require.Error(t, err)
	assert.Contains(t, describe(err), "Parse Error: ")
	assert.Contains(t, err.Error(), "'V'")
}

func TestDescribe_GrammarError(t *testing.T) {
	_, lex := writeFixtures(t)

	_, _, err := run(t, "-g", filepath.Join(t.TempDir(), "none.cfg"), "-l", lex, "check")
	require.Error(t, err)
	assert.Contains(t, describe(err), "Grammar Error: ")
}

func TestPrintTraceback(t *testing.T) {
	g, lex := writeFixtures(t)

	_, v, err := run(t, "-g", g, "-l", lex, "--traceback", "parse", "the cat")
	require.Error(t, err)
	assert.True(t, v.GetBool("traceback"))

	var buf bytes.Buffer
	printTraceback(&buf, err)
	assert.Contains(t, buf.String(), "*lexicon.Error")
}
