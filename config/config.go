// Package config resolves where grammars and lexicons come from and how
// parses are bounded.
package config

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/dhamidi/earley/earley"
	"github.com/dhamidi/earley/grammar"
	"github.com/dhamidi/earley/lexicon"
	"github.com/spf13/viper"
	"github.com/tliron/commonlog"
)

const (
	DefaultGrammarPath = "knowledge/nounphrases.cfg"
	DefaultLexiconPath = "knowledge/lexicon.data"
	DefaultTimeout     = 30 * time.Second
)

// Keys under which settings are stored in viper.
const (
	KeyGrammar = "grammar"
	KeyLexicon = "lexicon"
	KeyStart   = "start"
	KeyLimit   = "limit"
	KeyTimeout = "timeout"
)

// Config names the data files a parser is built from.
type Config struct {
	Grammar string
	Lexicon string
	// Start overrides the grammar's start symbol. It is required for EBNF
	// grammars.
	Start string
	// Limit caps the derivations reported per parse; zero reports all.
	Limit   int
	Timeout time.Duration
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		Grammar: DefaultGrammarPath,
		Lexicon: DefaultLexiconPath,
		Timeout: DefaultTimeout,
	}
}

// SetDefaults registers Default's values with v.
func SetDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault(KeyGrammar, d.Grammar)
	v.SetDefault(KeyLexicon, d.Lexicon)
	v.SetDefault(KeyStart, d.Start)
	v.SetDefault(KeyLimit, d.Limit)
	v.SetDefault(KeyTimeout, d.Timeout)
}

// FromViper reads a Config from v.
func FromViper(v *viper.Viper) Config {
	return Config{
		Grammar: v.GetString(KeyGrammar),
		Lexicon: v.GetString(KeyLexicon),
		Start:   v.GetString(KeyStart),
		Limit:   v.GetInt(KeyLimit),
		Timeout: v.GetDuration(KeyTimeout),
	}
}

// LoadGrammar reads the grammar file, as EBNF when it ends in ".ebnf".
func (c Config) LoadGrammar() (*grammar.Grammar, error) {
	if filepath.Ext(c.Grammar) == ".ebnf" {
		return grammar.LoadEBNF(c.Grammar, c.Start)
	}
	g, err := grammar.Load(c.Grammar)
	if err != nil {
		return nil, err
	}
	if c.Start != "" {
		g.SetStart(c.Start)
	}
	return g, nil
}

// Open loads the grammar and lexicon and builds a parser from them.
func (c Config) Open(log commonlog.Logger) (*earley.Parser, error) {
	g, err := c.LoadGrammar()
	if err != nil {
		return nil, fmt.Errorf("load grammar: %w", err)
	}
	lex, err := lexicon.Load(c.Lexicon)
	if err != nil {
		return nil, fmt.Errorf("load lexicon: %w", err)
	}
	log.Debugf("loaded %d productions from %s, %d words from %s", g.Len(), c.Grammar, lex.Len(), c.Lexicon)

	p, err := earley.New(g, lex, earley.WithLogger(log))
	if err != nil {
		return nil, fmt.Errorf("validate: %w", err)
	}
	return p, nil
}
