// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package main

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/creachadair/jsonfmt"
	"github.com/creachadair/jsonfmt/ast"
	"github.com/creachadair/jsonfmt/internal/fileio"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newRootCmd(log *zap.Logger, level zap.AtomicLevel) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "jsonfmt [input] [output]",
		Short: "Pretty-print or minify a JSON file",
		Example: `  jsonfmt data.json pretty.json --indent=2
  jsonfmt --input=data.json --output=small.json --minify
  jsonfmt --check data.json`,
		Args:          cobra.MaximumNArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	setFlags(cmd.Flags())

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		v, err := newViper(cmd.Flags())
		if err != nil {
			log.Error("failed to bind flags to config", zap.Error(err))
			return err
		}
		cfg, err := loadConfig(log, v, args)
		if err != nil {
			return err
		}
		if cfg.Verbose {
			level.SetLevel(zap.DebugLevel)
		}
		log.Debug("starting", zap.String("input", cfg.Input), zap.String("output", cfg.Output),
			zap.Bool("minify", cfg.Minify), zap.Int("indent", cfg.Indent), zap.Bool("check", cfg.Check))

		start := time.Now()
		if cfg.Check {
			err = check(cmd.OutOrStdout(), cfg)
		} else {
			err = rewrite(cfg)
		}
		if err != nil {
			return err
		}
		log.Debug("done", zap.Duration("elapsed", time.Since(start)))
		return nil
	}
	return cmd
}

// check parses the input into a document and reports a summary to w.
func check(w io.Writer, cfg *config) error {
	in, err := fileio.Open(cfg.Input)
	if err != nil {
		return err
	}
	defer in.Close()

	root, err := ast.Parse(in)
	if err != nil {
		return fmt.Errorf("%s: %w", cfg.Input, err)
	}
	fmt.Fprintf(w, "%s: valid (%v)\n", cfg.Input, root)
	return nil
}

// rewrite copies the input to the output, formatted as cfg specifies.
func rewrite(cfg *config) error {
	in, err := fileio.Open(cfg.Input)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := fileio.Create(cfg.Output)
	if err != nil {
		return err
	}
	if cfg.Minify {
		err = jsonfmt.Minify(out.Writer, in.Reader)
	} else {
		err = jsonfmt.Format(out.Writer, in.Reader, cfg.Indent)
	}
	if err != nil {
		err = fmt.Errorf("%s: %w", cfg.Input, err)
	}
	return errors.Join(err, out.Close())
}
