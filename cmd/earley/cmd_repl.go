package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/dhamidi/earley/config"
	"github.com/peterh/liner"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const historyFile = ".earley_history"

func newReplCmd(v *viper.Viper) *cobra.Command {
	var outputFormat string

	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Parse phrases read interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.FromViper(v)
			p, err := cfg.Open(log)
			if err != nil {
				return err
			}
			enc, err := newEncoder(cmd.OutOrStdout(), outputFormat, cfg, false)
			if err != nil {
				return err
			}

			home, _ := os.UserHomeDir()
			histPath := filepath.Join(home, historyFile)

			ln := liner.NewLiner()
			defer ln.Close()
			ln.SetCtrlCAborts(true)

			if f, err := os.Open(histPath); err == nil {
				_, _ = ln.ReadHistory(f)
				_ = f.Close()
			}
			defer func() {
				if f, err := os.Create(histPath); err == nil {
					_, _ = ln.WriteHistory(f)
					_ = f.Close()
				}
			}()

			for {
				phrase, err := ln.Prompt("earley> ")
				if errors.Is(err, io.EOF) || errors.Is(err, liner.ErrPromptAborted) {
					fmt.Fprintln(cmd.OutOrStdout())
					return nil
				}
				if err != nil {
					return fmt.Errorf("read phrase: %w", err)
				}

				phrase = strings.TrimSpace(phrase)
				switch phrase {
				case "":
					continue
				case ":quit":
					return nil
				}
				ln.AppendHistory(phrase)

				res, err := parse(cmd.Context(), p, cfg, phrase)
				if err != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "Error: %s\n", describe(err))
					continue
				}
				if err := enc.Encode(res); err != nil {
					return fmt.Errorf("encode: %w", err)
				}
			}
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "text", "output format (text, json)")

	return cmd
}
