// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package main

import (
	"errors"
	"strconv"

	"github.com/creachadair/jsonfmt"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// envPrefix is the prefix of environment variables that set flag values.
const envPrefix = "JSONFMT"

var errUsage = errors.New("missing input or output file")

// config holds the settings for a single run of the tool.
type config struct {
	Input   string
	Output  string
	Minify  bool
	Indent  int
	Check   bool
	Verbose bool
}

// setFlags registers the flags of the tool on fs.
func setFlags(fs *pflag.FlagSet) {
	fs.StringP("input", "i", "", "Input file path")
	fs.StringP("output", "o", "", "Output file path")
	fs.BoolP("minify", "m", false, "Remove all insignificant whitespace")
	fs.String("indent", strconv.Itoa(jsonfmt.DefaultIndent), "Spaces per level of nesting")
	fs.Bool("check", false, "Parse the input and report whether it is valid")
	fs.BoolP("verbose", "v", false, "Enable debug logging")
}

// newViper returns a viper instance bound to the flags in fs and to
// environment variables with the JSONFMT prefix.
func newViper(fs *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	if err := v.BindPFlags(fs); err != nil {
		return nil, err
	}
	return v, nil
}

// loadConfig resolves the settings from v and the positional arguments.
// Positional arguments fill the input and then the output path, when those
// were not given by flag.
func loadConfig(log *zap.Logger, v *viper.Viper, args []string) (*config, error) {
	cfg := &config{
		Input:   v.GetString("input"),
		Output:  v.GetString("output"),
		Minify:  v.GetBool("minify"),
		Check:   v.GetBool("check"),
		Verbose: v.GetBool("verbose"),
	}
	for _, arg := range args {
		if cfg.Input == "" {
			cfg.Input = arg
		} else if cfg.Output == "" {
			cfg.Output = arg
		} else {
			log.Warn("ignoring extra argument", zap.String("arg", arg))
		}
	}

	text := v.GetString("indent")
	n, err := strconv.Atoi(text)
	if err != nil {
		log.Warn("invalid indent, using default",
			zap.String("indent", text), zap.Int("default", jsonfmt.DefaultIndent))
		n = jsonfmt.DefaultIndent
	}
	cfg.Indent = max(n, 0)

	if cfg.Input == "" || (cfg.Output == "" && !cfg.Check) {
		return nil, errUsage
	}
	return cfg, nil
}
