// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jsonfmt

import (
	"bytes"
	"io"
	"strings"

	"go4.org/mem"
)

// A Scanner reads lexical tokens from an input stream. Each call to Next
// advances the scanner to the next token, or reports an error. Peek reports
// the next token without consuming it.
//
// A Scanner holds at most one token of lookahead and one byte of pushed-back
// input. It is not safe for concurrent use.
type Scanner struct {
	in     byteCursor
	strict bool         // apply the strict number grammar
	buf    bytes.Buffer // text of the token being assembled

	// The lookahead token, if peeked is true.
	peek   Token
	peeked bool

	done bool  // the input is exhausted
	err  error // the first error reported, if any
}

// NewScanner constructs a new lexical scanner that consumes input from r.
func NewScanner(r io.Reader) *Scanner { return &Scanner{in: newByteCursor(r)} }

// StrictNumbers configures the scanner to check numbers against the strict
// (true) or the relaxed (false) number grammar. See ValidNumber. The default
// is relaxed.
func (s *Scanner) StrictNumbers(ok bool) { s.strict = ok }

// Peek returns the next token of the input without consuming it. Repeated
// calls to Peek return the same token until Next is called.
func (s *Scanner) Peek() (Token, error) {
	if !s.peeked {
		tok, err := s.scan()
		if err != nil {
			return Token{}, err
		}
		s.peek, s.peeked = tok, true
	}
	return s.peek, nil
}

// Next consumes and returns the next token of the input. If the previous call
// was Peek, Next returns the token Peek reported.
//
// At the end of the input, Next returns a token of kind EOF, and continues to
// do so on subsequent calls. After an error, every call reports that error.
func (s *Scanner) Next() (Token, error) {
	if s.peeked {
		s.peeked = false
		return s.peek, nil
	}
	return s.scan()
}

func (s *Scanner) scan() (Token, error) {
	if s.err != nil {
		return Token{}, s.err
	}
	s.buf.Reset()
	for {
		if s.done {
			return Token{Kind: EOF, Pos: s.in.next}, nil
		}
		pos := s.in.next
		ch, err := s.in.readByte()
		if err == io.EOF {
			s.done = true
			continue
		} else if err != nil {
			return s.fail(NewIOError(err))
		}

		// Discard whitespace.
		if isSpace(ch) {
			continue
		}

		// Handle punctuation.
		if k, ok := selfDelim(ch); ok {
			return Token{Kind: k, Pos: pos}, nil
		}

		switch {
		case ch == '"':
			return s.scanString(pos)
		case ch == '-' || isDigit(ch):
			return s.scanNumber(ch, pos)
		case isLetter(ch):
			return s.scanLiteral(ch, pos)
		}
		return s.fail(lexicalErrorf(pos, "invalid character %q", ch))
	}
}

// scanString consumes a string whose open quotation mark has been read.
// Escape sequences are copied without interpretation.
func (s *Scanner) scanString(pos LineCol) (Token, error) {
	var esc bool
	for {
		ch, err := s.in.readByte()
		if err == io.EOF {
			return s.fail(lexicalErrorf(pos, "unterminated string %s", quoteText(s.buf.String())))
		} else if err != nil {
			return s.fail(NewIOError(err))
		}
		if ch == '"' && !esc {
			return Token{Kind: String, Text: s.buf.String(), Pos: pos}, nil
		}
		s.buf.WriteByte(ch)
		esc = ch == '\\' && !esc
	}
}

// scanNumber consumes the bytes of a number beginning with first. The byte
// that ends the number is pushed back for the next token.
func (s *Scanner) scanNumber(first byte, pos LineCol) (Token, error) {
	s.buf.WriteByte(first)
	for {
		ch, err := s.in.readByte()
		if err == io.EOF {
			s.done = true
			break
		} else if err != nil {
			return s.fail(NewIOError(err))
		}
		if !isNumByte(ch) {
			s.in.unreadByte(ch)
			break
		}
		s.buf.WriteByte(ch)
	}

	text := s.buf.String()
	valid := ValidNumber
	if s.strict {
		valid = ValidNumberStrict
	}
	if !valid(text) {
		return s.fail(lexicalErrorf(pos, "invalid number %s", quoteText(text)))
	}
	return Token{Kind: Number, Text: text, Pos: pos}, nil
}

var literals = [...]struct {
	text string
	kind Kind
}{
	{"true", Bool},
	{"false", Bool},
	{"null", Null},
}

// scanLiteral consumes one of the constants true, false, or null beginning
// with first. It fails as soon as the letters read cannot begin a constant.
func (s *Scanner) scanLiteral(first byte, pos LineCol) (Token, error) {
	s.buf.WriteByte(first)
	for {
		got := mem.B(s.buf.Bytes())
		var prefix bool
		for _, lit := range literals {
			want := mem.S(lit.text)
			if got.Equal(want) {
				return Token{Kind: lit.kind, Text: lit.text, Pos: pos}, nil
			}
			prefix = prefix || mem.HasPrefix(want, got)
		}
		if !prefix {
			return s.fail(lexicalErrorf(pos, "invalid literal %s", quoteText(got.StringCopy())))
		}

		ch, err := s.in.readByte()
		if err == io.EOF {
			s.done = true
			return s.fail(lexicalErrorf(pos, "truncated literal %s", quoteText(got.StringCopy())))
		} else if err != nil {
			return s.fail(NewIOError(err))
		}
		if !isLetter(ch) {
			s.in.unreadByte(ch)
			return s.fail(lexicalErrorf(pos, "truncated literal %s", quoteText(got.StringCopy())))
		}
		s.buf.WriteByte(ch)
	}
}

func (s *Scanner) fail(err *Error) (Token, error) {
	s.err = err
	return Token{}, err
}

func isSpace(ch byte) bool {
	return ch == ' ' || ch == '\r' || ch == '\n' || ch == '\t'
}

func isLetter(ch byte) bool { return ('a' <= ch && ch <= 'z') || ('A' <= ch && ch <= 'Z') }

var self = [...]Kind{LBrace, RBrace, LSquare, RSquare, Comma, Colon}

func selfDelim(ch byte) (Kind, bool) {
	i := strings.IndexByte("{}[],:", ch)
	if i >= 0 {
		return self[i], true
	}
	return Invalid, false
}
