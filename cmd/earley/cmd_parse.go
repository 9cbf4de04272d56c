package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/dhamidi/earley/config"
	"github.com/dhamidi/earley/earley"
	"github.com/dhamidi/earley/format"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("earley.cli")

func newParseCmd(v *viper.Viper) *cobra.Command {
	var outputFormat string
	var showChart bool

	cmd := &cobra.Command{
		Use:   "parse <phrase>",
		Short: "Parse a quoted phrase and print its derivations",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("please specify a phrase to parse in quotes")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.FromViper(v)
			p, err := cfg.Open(log)
			if err != nil {
				return err
			}

			enc, err := newEncoder(cmd.OutOrStdout(), outputFormat, cfg, showChart)
			if err != nil {
				return err
			}

			res, err := parse(cmd.Context(), p, cfg, args[0])
			if err != nil {
				return err
			}
			if err := enc.Encode(res); err != nil {
				return fmt.Errorf("encode: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "text", "output format (text, json)")
	cmd.Flags().BoolVar(&showChart, "chart", false, "print the chart before the derivations (text format)")

	return cmd
}

func newEncoder(w io.Writer, outputFormat string, cfg config.Config, showChart bool) (format.Encoder, error) {
	switch outputFormat {
	case "text":
		enc := format.NewTextEncoder(w)
		enc.Chart = showChart
		enc.Limit = cfg.Limit
		return enc, nil
	case "json":
		enc := format.NewJSONEncoder(w)
		enc.Limit = cfg.Limit
		return enc, nil
	}
	return nil, fmt.Errorf("unknown format: %s", outputFormat)
}

func parse(ctx context.Context, p *earley.Parser, cfg config.Config, phrase string) (*earley.Result, error) {
	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}
	res, err := p.Parse(ctx, phrase)
	if err != nil {
		return nil, fmt.Errorf("parse %q: %w", phrase, err)
	}
	return res, nil
}
