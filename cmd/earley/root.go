package main

import (
	"fmt"

	"github.com/dhamidi/earley/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tliron/commonlog"

	_ "github.com/tliron/commonlog/simple"
)

func newRootCmd(v *viper.Viper) *cobra.Command {
	var configFile string
	var verbosity int

	cmd := &cobra.Command{
		Use:           "earley",
		Short:         "Chart parser for context-free grammars",
		Long:          "earley parses sentences against a context-free grammar and a lexicon, printing every derivation.",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			commonlog.Configure(verbosity, nil)
			if configFile != "" {
				v.SetConfigFile(configFile)
				if err := v.ReadInConfig(); err != nil {
					return fmt.Errorf("read config: %w", err)
				}
			}
			return nil
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&configFile, "config", "", "config file (yaml, toml or json)")
	flags.CountVarP(&verbosity, "verbose", "v", "increase log verbosity")
	flags.StringP(config.KeyGrammar, "g", config.DefaultGrammarPath, "grammar file (.cfg, or .ebnf with --start)")
	flags.StringP(config.KeyLexicon, "l", config.DefaultLexiconPath, "lexicon file")
	flags.String(config.KeyStart, "", "start symbol (default: left-hand side of the first rule)")
	flags.Int(config.KeyLimit, 0, "maximum number of derivations to print per parse (0 = all)")
	flags.Duration(config.KeyTimeout, config.DefaultTimeout, "abort a parse after this long (0 = never)")
	flags.Bool("traceback", false, "print the full error chain on failure")

	for _, key := range []string{config.KeyGrammar, config.KeyLexicon, config.KeyStart, config.KeyLimit, config.KeyTimeout, "traceback"} {
		_ = v.BindPFlag(key, flags.Lookup(key))
	}
	config.SetDefaults(v)
	v.SetEnvPrefix("EARLEY")
	v.AutomaticEnv()

	cmd.AddCommand(newParseCmd(v))
	cmd.AddCommand(newCheckCmd(v))
	cmd.AddCommand(newReplCmd(v))
	cmd.AddCommand(newLSPCmd(v))

	return cmd
}
