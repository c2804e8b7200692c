// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jsonfmt

import "fmt"

// A LineCol describes the line number and column offset of a location in
// source text.
type LineCol struct {
	Line   int // line number, 1-based
	Column int // byte offset of column in line, 0-based
}

func (lc LineCol) String() string { return fmt.Sprintf("%d:%d", lc.Line, lc.Column) }

// IsValid reports whether lc refers to a position in the input.  The zero
// LineCol is used for errors that have no source position.
func (lc LineCol) IsValid() bool { return lc.Line > 0 }
