// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

// Program jsonfmt reformats a JSON file, either pretty-printing it with
// consistent indentation or minifying it.
//
// Usage:
//
//	jsonfmt <input> <output> [--minify] [--indent=<n>]
//	jsonfmt --input=<file> --output=<file> [--minify] [--indent=<n>]
//	jsonfmt --check <input>
//
// Flags may also be set from the environment with the prefix JSONFMT, for
// example JSONFMT_INDENT=2.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the tool with the given arguments and reports an exit code.
func run(args []string, stdout, stderr io.Writer) int {
	log, level := newLogger(stderr)
	defer log.Sync()

	cmd := newRootCmd(log, level)
	if args == nil {
		args = []string{} // cobra reads os.Args for a nil slice
	}
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.Execute(); err != nil {
		if errors.Is(err, errUsage) {
			fmt.Fprint(stderr, cmd.UsageString())
		}
		color.New(color.FgRed).Fprintf(stderr, "jsonfmt: %v\n", err)
		return 1
	}
	return 0
}
