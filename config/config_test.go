package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/dhamidi/earley/earley"
	"github.com/dhamidi/earley/grammar"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tliron/commonlog"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestFromViper_Defaults(t *testing.T) {
	v := viper.New()
	SetDefaults(v)

	assert.Equal(t, Default(), FromViper(v))
}

func TestFromViper_Overrides(t *testing.T) {
	v := viper.New()
	SetDefaults(v)
	v.Set(KeyGrammar, "g.ebnf")
	v.Set(KeyStart, "S")
	v.Set(KeyLimit, 3)
	v.Set(KeyTimeout, "2s")

	c := FromViper(v)
	assert.Equal(t, "g.ebnf", c.Grammar)
	assert.Equal(t, DefaultLexiconPath, c.Lexicon)
	assert.Equal(t, "S", c.Start)
	assert.Equal(t, 3, c.Limit)
	assert.Equal(t, 2*time.Second, c.Timeout)
}

func TestOpen(t *testing.T) {
	dir := t.TempDir()
	c := Config{
		Grammar: writeFile(t, dir, "np.cfg", "NP -> Det N\nS -> NP\n"),
		Lexicon: writeFile(t, dir, "lex.data", "the Det\ndog N\n"),
		Start:   "S",
	}

	p, err := c.Open(commonlog.GetLogger("test"))
	require.NoError(t, err)
	assert.Equal(t, "S", p.Start())
}

func TestOpen_EBNF(t *testing.T) {
	dir := t.TempDir()
	c := Config{
		Grammar: writeFile(t, dir, "np.ebnf", "NP = [ Det ] N .\n"),
		Lexicon: writeFile(t, dir, "lex.data", "the Det\ndog N\n"),
		Start:   "NP",
	}

	p, err := c.Open(commonlog.GetLogger("test"))
	require.NoError(t, err)
	assert.Equal(t, "NP", p.Start())
}

func TestOpen_Errors(t *testing.T) {
	dir := t.TempDir()
	lex := writeFile(t, dir, "lex.data", "the Det\ndog N\nran V\n")
	cfg := writeFile(t, dir, "np.cfg", "NP -> Det N\n")

	_, err := Config{Grammar: filepath.Join(dir, "none.cfg"), Lexicon: lex}.Open(commonlog.GetLogger("test"))
	var gerr *grammar.Error
	assert.ErrorAs(t, err, &gerr)

	_, err = Config{Grammar: cfg, Lexicon: lex}.Open(commonlog.GetLogger("test"))
	var perr *earley.ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, []string{"V"}, perr.Missing)
}
