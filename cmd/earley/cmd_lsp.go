package main

import (
	"github.com/dhamidi/earley/config"
	"github.com/dhamidi/earley/lsp"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newLSPCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "lsp",
		Short: "Start a language server reporting grammar and lexicon errors",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.FromViper(v)
			server := lsp.NewServer(version, cfg.Start)
			return server.RunStdio()
		},
	}
}
