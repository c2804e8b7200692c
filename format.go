// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package jsonfmt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
)

// DefaultIndent is the number of spaces per nesting level conventionally used
// for pretty-printing.
const DefaultIndent = 4

// Format copies the JSON text from r to w, rewriting the whitespace outside
// strings so that each member or element begins a line indented by indent
// spaces per level of nesting, and each key is separated from its value by
// ": ". A negative indent is treated as zero. Empty objects and arrays are
// rendered as "{}" and "[]".
//
// Format does not build a syntax tree. It reports a LexicalError for a byte
// outside a string that cannot occur in JSON text or for input that ends
// inside a string. It reports a GrammarError for unbalanced brackets, and for
// a value that follows another value with no separator between them, such as
// "[1 2]". Format does not otherwise check the grammar. Output written before
// an error is flushed to w.
func Format(w io.Writer, r io.Reader, indent int) error {
	return newRewriter(w, r, max(indent, 0), false).run()
}

// Minify copies the JSON text from r to w, discarding all whitespace outside
// strings. It reports errors in the same way as Format.
func Minify(w io.Writer, r io.Reader) error {
	return newRewriter(w, r, 0, true).run()
}

type rewriteMode byte

const (
	modeStructural rewriteMode = iota
	modeString
)

// A rewriter re-emits the bytes of a JSON text with normalized whitespace.
// It tracks only whether it is inside a string, and the stack of brackets
// that are still open.
type rewriter struct {
	in     byteCursor
	out    *bufio.Writer
	minify bool
	indent int

	mode   rewriteMode
	esc    bool    // the previous string byte was an unescaped backslash
	strPos LineCol // where the current string began
	open   []byte  // unclosed brackets, innermost last
	werr   error   // the first write error

	// Adjacent values, which would run together once whitespace is removed.
	inScalar  bool // the previous byte belonged to a number or literal
	valueDone bool // a complete value ends here; a separator or closer must follow

	// Pending whitespace, emitted lazily before the next byte.
	openPending   bool // a newline is due after an opening bracket
	indentPending bool // a line has started and needs its indentation
}

func newRewriter(w io.Writer, r io.Reader, indent int, minify bool) *rewriter {
	bw, ok := w.(*bufio.Writer)
	if !ok {
		bw = bufio.NewWriter(w)
	}
	return &rewriter{in: newByteCursor(r), out: bw, minify: minify, indent: indent}
}

func (rw *rewriter) run() (err error) {
	defer func() {
		if ferr := rw.out.Flush(); ferr != nil && rw.werr == nil {
			err = errors.Join(err, NewIOError(ferr))
		}
	}()

	for {
		pos := rw.in.next
		ch, rerr := rw.in.readByte()
		if rerr == io.EOF {
			break
		} else if rerr != nil {
			return NewIOError(rerr)
		}

		if rw.mode == modeString {
			rw.write(ch)
			if rw.esc {
				rw.esc = false
			} else if ch == '\\' {
				rw.esc = true
			} else if ch == '"' {
				rw.mode = modeStructural
				rw.valueDone = true
			}
		} else if err := rw.structural(ch, pos); err != nil {
			return err
		}
		if rw.werr != nil {
			return NewIOError(rw.werr)
		}
	}

	if rw.mode == modeString {
		return lexicalErrorf(rw.strPos, "unterminated string")
	} else if n := len(rw.open); n != 0 {
		return grammarErrorf(rw.in.next, "unclosed %q at end of input", rw.open[n-1])
	}
	return nil
}

// structural handles a byte outside of any string.
func (rw *rewriter) structural(ch byte, pos LineCol) error {
	switch {
	case isSpace(ch):
		// Discard whitespace; replacements are generated as needed.
		if rw.inScalar {
			rw.inScalar, rw.valueDone = false, true
		}

	case ch == '{' || ch == '[':
		if err := rw.checkAdjacent(ch, pos); err != nil {
			return err
		}
		rw.settle()
		rw.write(ch)
		rw.open = append(rw.open, ch)
		rw.openPending = !rw.minify

	case ch == '}' || ch == ']':
		n := len(rw.open)
		if n == 0 {
			return grammarErrorf(pos, "unexpected %q", ch)
		} else if want := closerFor(rw.open[n-1]); ch != want {
			return grammarErrorf(pos, "expected %q, got %q", want, ch)
		}
		rw.open = rw.open[:n-1]
		rw.inScalar, rw.valueDone = false, true
		if rw.openPending {
			rw.openPending = false // empty; close on the same line
		} else if !rw.minify {
			if !rw.indentPending {
				rw.write('\n')
			}
			rw.indentPending = false
			rw.writeIndent()
		}
		rw.write(ch)

	case ch == ',':
		rw.inScalar, rw.valueDone = false, false
		rw.settle()
		rw.write(ch)
		if !rw.minify {
			rw.write('\n')
			rw.indentPending = true
		}

	case ch == ':':
		rw.inScalar, rw.valueDone = false, false
		rw.settle()
		rw.write(ch)
		if !rw.minify {
			rw.write(' ')
		}

	case ch == '"':
		if err := rw.checkAdjacent(ch, pos); err != nil {
			return err
		}
		rw.settle()
		rw.write(ch)
		rw.mode = modeString
		rw.strPos = pos

	case isNumByte(ch) || isLetter(ch):
		if rw.valueDone {
			return grammarErrorf(pos, "unexpected %q after value", ch)
		}
		rw.settle()
		rw.write(ch)
		rw.inScalar = true

	default:
		return lexicalErrorf(pos, "invalid character %q", ch)
	}
	return nil
}

// checkAdjacent reports an error if a value beginning with ch would directly
// follow another value.
func (rw *rewriter) checkAdjacent(ch byte, pos LineCol) error {
	if rw.inScalar || rw.valueDone {
		return grammarErrorf(pos, "unexpected %q after value", ch)
	}
	return nil
}

// settle emits any whitespace owed before the next non-closing byte.
func (rw *rewriter) settle() {
	if rw.openPending {
		rw.write('\n')
		rw.openPending = false
		rw.indentPending = true
	}
	if rw.indentPending {
		rw.writeIndent()
		rw.indentPending = false
	}
}

func (rw *rewriter) writeIndent() {
	for range len(rw.open) * rw.indent {
		rw.write(' ')
	}
}

func (rw *rewriter) write(ch byte) {
	if err := rw.out.WriteByte(ch); err != nil && rw.werr == nil {
		rw.werr = err
	}
}

func closerFor(open byte) byte {
	if open == '{' {
		return '}'
	}
	return ']'
}

func grammarErrorf(pos LineCol, msg string, args ...any) *Error {
	return &Error{Kind: GrammarError, Pos: pos, Message: fmt.Sprintf(msg, args...)}
}
