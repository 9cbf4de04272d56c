package main

import (
	"fmt"

	"github.com/dhamidi/earley/config"
	"github.com/dhamidi/earley/lexicon"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newCheckCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Load the grammar and lexicon and verify they fit together",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.FromViper(v)
			p, err := cfg.Open(log)
			if err != nil {
				return err
			}

			g, err := cfg.LoadGrammar()
			if err != nil {
				return err
			}
			lex, err := lexicon.Load(cfg.Lexicon)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "grammar %s: %d productions, %d nonterminals, start %s\n",
				cfg.Grammar, g.Len(), len(g.Nonterminals()), p.Start())
			fmt.Fprintf(out, "lexicon %s: %d words, %d tags\n",
				cfg.Lexicon, lex.Len(), len(lex.Preterminals()))
			fmt.Fprintln(out, "ok")
			return nil
		},
	}
}
