// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jsonfmt

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/creachadair/mds/mstr"
)

// ErrorKind classifies the errors reported by this module.
type ErrorKind byte

// Constants defining the valid ErrorKind values.
const (
	IOError      ErrorKind = iota + 1 // a source or sink could not be opened, read, or written
	LexicalError                      // an invalid byte, string, number, or literal
	GrammarError                      // an unexpected token for the current production
	TypeError                         // access to a document node of the wrong type
	LookupError                       // a missing object key or an array index out of range
)

// Sentinel errors matching each ErrorKind under errors.Is.
var (
	ErrIO      = errors.New("I/O error")
	ErrLexical = errors.New("lexical error")
	ErrGrammar = errors.New("grammar error")
	ErrType    = errors.New("type error")
	ErrLookup  = errors.New("lookup error")
)

func (k ErrorKind) sentinel() error {
	switch k {
	case IOError:
		return ErrIO
	case LexicalError:
		return ErrLexical
	case GrammarError:
		return ErrGrammar
	case TypeError:
		return ErrType
	case LookupError:
		return ErrLookup
	}
	return nil
}

func (k ErrorKind) String() string {
	if s := k.sentinel(); s != nil {
		return s.Error()
	}
	return "unknown error"
}

// Error is the concrete type of all errors reported by the scanner, the
// parser, the rewriters, and the document accessor.
type Error struct {
	Kind ErrorKind
	Pos  LineCol // where the error was detected; zero if unknown

	// For grammar errors, the production that was active, a description of
	// what it expected, and the token actually found.
	Production string
	Expected   string
	Token      Token

	Message string // human-readable description
	Err     error  // underlying cause, if any
}

// Error satisfies the error interface.
func (e *Error) Error() string {
	var sb strings.Builder
	if e.Pos.IsValid() {
		fmt.Fprintf(&sb, "at %s: ", e.Pos)
	}
	sb.WriteString(e.Kind.String())
	if e.Production != "" {
		fmt.Fprintf(&sb, " in %s", e.Production)
	}
	sb.WriteString(": ")
	sb.WriteString(e.Message)
	return sb.String()
}

// Unwrap supports error wrapping.
func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is the sentinel error for the kind of e.
func (e *Error) Is(target error) bool { return target != nil && target == e.Kind.sentinel() }

// NewGrammarError constructs a grammar error reporting that production
// expected a token described by expected, but found got.
func NewGrammarError(production, expected string, got Token) *Error {
	return &Error{
		Kind:       GrammarError,
		Pos:        got.Pos,
		Production: production,
		Expected:   expected,
		Token:      got,
		Message:    fmt.Sprintf("expected %s, got %s", expected, describe(got)),
	}
}

// NewTypeError constructs a type error with a formatted message.
func NewTypeError(msg string, args ...any) *Error {
	return &Error{Kind: TypeError, Message: fmt.Sprintf(msg, args...)}
}

// NewLookupError constructs a lookup error with a formatted message.
func NewLookupError(msg string, args ...any) *Error {
	return &Error{Kind: LookupError, Message: fmt.Sprintf(msg, args...)}
}

// NewIOError constructs an I/O error wrapping err.
func NewIOError(err error) *Error {
	return &Error{Kind: IOError, Message: err.Error(), Err: err}
}

func lexicalErrorf(pos LineCol, msg string, args ...any) *Error {
	return &Error{Kind: LexicalError, Pos: pos, Message: fmt.Sprintf(msg, args...)}
}

// maxErrorText is the longest prefix of offending input quoted in a message.
const maxErrorText = 64

// quoteText quotes s for a diagnostic, truncating long values.
func quoteText(s string) string {
	if len(s) > maxErrorText {
		return strconv.Quote(mstr.Trunc(s, maxErrorText)) + "..."
	}
	return strconv.Quote(s)
}

func describe(t Token) string {
	switch t.Kind {
	case String, Number, Bool:
		return fmt.Sprintf("%v %s", t.Kind, quoteText(t.Text))
	default:
		return t.Kind.String()
	}
}
