// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jsonfmt

import (
	"bufio"
	"io"
)

// A byteCursor delivers input one byte at a time from a buffered source. It
// tracks the position of each byte and holds at most one pushed-back byte.
type byteCursor struct {
	r *bufio.Reader

	back    byte // valid if hasBack
	hasBack bool

	next LineCol // position of the next input byte
	last LineCol // position of the most recently read byte
}

func newByteCursor(r io.Reader) byteCursor {
	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(r)
	}
	return byteCursor{r: br, next: LineCol{Line: 1}}
}

// readByte returns the next input byte, preferring a pushed-back byte.
// At the end of the input it returns io.EOF.
func (c *byteCursor) readByte() (byte, error) {
	var ch byte
	if c.hasBack {
		ch, c.hasBack = c.back, false
	} else {
		var err error
		ch, err = c.r.ReadByte()
		if err != nil {
			return 0, err
		}
	}
	c.last = c.next
	if ch == '\n' {
		c.next.Line++
		c.next.Column = 0
	} else {
		c.next.Column++
	}
	return ch, nil
}

// unreadByte pushes back ch, which must be the byte most recently returned by
// readByte. Only one byte of push-back is supported.
func (c *byteCursor) unreadByte(ch byte) {
	c.back, c.hasBack = ch, true
	c.next = c.last
}
