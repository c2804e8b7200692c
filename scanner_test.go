// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jsonfmt_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/creachadair/jsonfmt"
	"github.com/google/go-cmp/cmp"
)

// scanAll returns the tokens of input up to but not including EOF.
func scanAll(t *testing.T, s *jsonfmt.Scanner) ([]jsonfmt.Token, error) {
	t.Helper()
	var toks []jsonfmt.Token
	for {
		tok, err := s.Next()
		if err != nil {
			return toks, err
		} else if tok.Kind == jsonfmt.EOF {
			return toks, nil
		}
		toks = append(toks, tok)
	}
}

func kinds(toks []jsonfmt.Token) []jsonfmt.Kind {
	var out []jsonfmt.Kind
	for _, tok := range toks {
		out = append(out, tok.Kind)
	}
	return out
}

func TestScanner(t *testing.T) {
	const (
		lb = jsonfmt.LBrace
		rb = jsonfmt.RBrace
		ls = jsonfmt.LSquare
		rs = jsonfmt.RSquare
		st = jsonfmt.String
		nu = jsonfmt.Number
		bo = jsonfmt.Bool
		nl = jsonfmt.Null
		cm = jsonfmt.Comma
		co = jsonfmt.Colon
	)
	tests := []struct {
		input string
		want  []jsonfmt.Kind
	}{
		// Empty inputs
		{"", nil},
		{"  ", nil},
		{"\n\n  \n", nil},
		{"\t  \r\n \t  \r\n", nil},

		// Constants
		{"true false null", []jsonfmt.Kind{bo, bo, nl}},

		// Punctuation
		{"{ [ ] } , :", []jsonfmt.Kind{lb, ls, rs, rb, cm, co}},

		// Strings
		{`"" "a b c" "a\nb\tc"`, []jsonfmt.Kind{st, st, st}},
		{`"\"\\\/\b\f\n\r\t"`, []jsonfmt.Kind{st}},
		{`"\u0000\u01fc\uAA9c"`, []jsonfmt.Kind{st}},

		// Numbers
		{`0 -1 5139 2.3 5e+9 3.6E+4 -0.001E-100`, []jsonfmt.Kind{nu, nu, nu, nu, nu, nu, nu}},
		{`-.5 01 -01`, []jsonfmt.Kind{nu, nu, nu}},

		// Mixed types
		{`{true,"false":-15 null[]}`, []jsonfmt.Kind{lb, bo, cm, st, co, nu, nl, ls, rs, rb}},
		{`{"a": true, "b":[null, 1, 0.5]}`, []jsonfmt.Kind{
			lb, st, co, bo, cm, st, co, ls, nl, cm, nu, cm, nu, rs, rb,
		}},
		{`"a",1,true
       false["b"]
       `, []jsonfmt.Kind{st, cm, nu, cm, bo, bo, ls, st, rs}},

		// Tokens need not be separated.
		{`[1,2]{"a":3}`, []jsonfmt.Kind{ls, nu, cm, nu, rs, lb, st, co, nu, rb}},
		{`truefalse`, []jsonfmt.Kind{bo, bo}},
	}

	for _, test := range tests {
		toks, err := scanAll(t, jsonfmt.NewScanner(strings.NewReader(test.input)))
		if err != nil {
			t.Errorf("Scan %#q: unexpected error: %v", test.input, err)
		}
		if diff := cmp.Diff(test.want, kinds(toks)); diff != "" {
			t.Errorf("Input: %#q\nTokens: (-want, +got)\n%s", test.input, diff)
		}
	}
}

func TestScannerText(t *testing.T) {
	tok := func(k jsonfmt.Kind, text string, line, col int) jsonfmt.Token {
		return jsonfmt.Token{Kind: k, Text: text, Pos: jsonfmt.LineCol{Line: line, Column: col}}
	}
	tests := []struct {
		input string
		want  []jsonfmt.Token
	}{
		{`{"a":"say \"hi\""}`, []jsonfmt.Token{
			tok(jsonfmt.LBrace, "", 1, 0),
			tok(jsonfmt.String, "a", 1, 1),
			tok(jsonfmt.Colon, "", 1, 4),
			tok(jsonfmt.String, `say \"hi\"`, 1, 5),
			tok(jsonfmt.RBrace, "", 1, 17),
		}},
		{"{\n  \"a\": 1}", []jsonfmt.Token{
			tok(jsonfmt.LBrace, "", 1, 0),
			tok(jsonfmt.String, "a", 2, 2),
			tok(jsonfmt.Colon, "", 2, 5),
			tok(jsonfmt.Number, "1", 2, 7),
			tok(jsonfmt.RBrace, "", 2, 8),
		}},
		{`["\\", "x\\\"y"]`, []jsonfmt.Token{
			tok(jsonfmt.LSquare, "", 1, 0),
			tok(jsonfmt.String, `\\`, 1, 1),
			tok(jsonfmt.Comma, "", 1, 5),
			tok(jsonfmt.String, `x\\\"y`, 1, 7),
			tok(jsonfmt.RSquare, "", 1, 15),
		}},
		{`[-2.5E-3,true,null]`, []jsonfmt.Token{
			tok(jsonfmt.LSquare, "", 1, 0),
			tok(jsonfmt.Number, "-2.5E-3", 1, 1),
			tok(jsonfmt.Comma, "", 1, 8),
			tok(jsonfmt.Bool, "true", 1, 9),
			tok(jsonfmt.Comma, "", 1, 13),
			tok(jsonfmt.Null, "null", 1, 14),
			tok(jsonfmt.RSquare, "", 1, 18),
		}},

		// A number at the end of input is complete.
		{`12`, []jsonfmt.Token{tok(jsonfmt.Number, "12", 1, 0)}},
		{`[12`, []jsonfmt.Token{
			tok(jsonfmt.LSquare, "", 1, 0),
			tok(jsonfmt.Number, "12", 1, 1),
		}},
	}
	for _, test := range tests {
		got, err := scanAll(t, jsonfmt.NewScanner(strings.NewReader(test.input)))
		if err != nil {
			t.Errorf("Scan %#q: unexpected error: %v", test.input, err)
		}
		if diff := cmp.Diff(test.want, got); diff != "" {
			t.Errorf("Input: %#q\nTokens: (-want, +got)\n%s", test.input, diff)
		}
	}
}

func TestScannerErrors(t *testing.T) {
	tests := []struct {
		input string
		want  string // substring of the error message
	}{
		{`"abc`, `unterminated string "abc"`},
		{`["ok", "abc\"`, `unterminated string "abc\\\""`},
		{`tru`, `truncated literal "tru"`},
		{`nul,`, `truncated literal "nul"`},
		{`trux`, `invalid literal "trux"`},
		{`Nan`, `invalid literal "N"`},
		{`[nope]`, `invalid literal "no"`},
		{`@`, `invalid character '@'`},
		{`+1`, `invalid character '+'`},
		{`[.5]`, `invalid character '.'`},
		{`[1, 'x']`, `invalid character '\''`},
		{`1.`, `invalid number "1."`},
		{`--1`, `invalid number "--1"`},
		{`[1e]`, `invalid number "1e"`},
		{`1.2.3`, `invalid number "1.2.3"`},
	}
	for _, test := range tests {
		_, err := scanAll(t, jsonfmt.NewScanner(strings.NewReader(test.input)))
		if err == nil {
			t.Errorf("Scan %#q: got nil error, want %q", test.input, test.want)
			continue
		}
		if !errors.Is(err, jsonfmt.ErrLexical) {
			t.Errorf("Scan %#q: got %v, want a lexical error", test.input, err)
		}
		if !strings.Contains(err.Error(), test.want) {
			t.Errorf("Scan %#q: got %q, want %q", test.input, err.Error(), test.want)
		}
	}
}

func TestScannerPeek(t *testing.T) {
	s := jsonfmt.NewScanner(strings.NewReader(`[ true ]`))
	check := func(tok jsonfmt.Token, err error, want jsonfmt.Kind) {
		t.Helper()
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if tok.Kind != want {
			t.Errorf("Got %v, want %v", tok.Kind, want)
		}
	}

	tok, err := s.Peek()
	check(tok, err, jsonfmt.LSquare)
	tok, err = s.Peek()
	check(tok, err, jsonfmt.LSquare)
	tok, err = s.Next()
	check(tok, err, jsonfmt.LSquare)

	tok, err = s.Next()
	check(tok, err, jsonfmt.Bool)
	if tok.Text != "true" {
		t.Errorf("Text: got %q, want true", tok.Text)
	}

	tok, err = s.Peek()
	check(tok, err, jsonfmt.RSquare)
	tok, err = s.Next()
	check(tok, err, jsonfmt.RSquare)

	// End of input is reported repeatedly.
	for range 3 {
		tok, err = s.Next()
		check(tok, err, jsonfmt.EOF)
		tok, err = s.Peek()
		check(tok, err, jsonfmt.EOF)
	}
}

func TestScannerStickyError(t *testing.T) {
	s := jsonfmt.NewScanner(strings.NewReader(`[ @ 1 ]`))
	if tok, err := s.Next(); err != nil || tok.Kind != jsonfmt.LSquare {
		t.Fatalf("Next: got (%v, %v), want %v", tok, err, jsonfmt.LSquare)
	}
	_, first := s.Next()
	if first == nil {
		t.Fatal("Next: got nil error, want failure")
	}
	for range 2 {
		if _, err := s.Next(); err != first {
			t.Errorf("Next: got %v, want %v", err, first)
		}
		if _, err := s.Peek(); err != first {
			t.Errorf("Peek: got %v, want %v", err, first)
		}
	}

	var e *jsonfmt.Error
	if !errors.As(first, &e) {
		t.Fatalf("Error has type %T, want *jsonfmt.Error", first)
	}
	if want := (jsonfmt.LineCol{Line: 1, Column: 2}); e.Pos != want {
		t.Errorf("Error position: got %v, want %v", e.Pos, want)
	}
	if e.Kind != jsonfmt.LexicalError {
		t.Errorf("Error kind: got %v, want %v", e.Kind, jsonfmt.LexicalError)
	}
}

func TestScannerStrictNumbers(t *testing.T) {
	for _, input := range []string{"01", "-01", "-.5", "00"} {
		s := jsonfmt.NewScanner(strings.NewReader(input))
		if toks, err := scanAll(t, s); err != nil {
			t.Errorf("Relaxed %q: unexpected error: %v", input, err)
		} else if len(toks) != 1 || toks[0].Text != input {
			t.Errorf("Relaxed %q: got %v, want one number", input, toks)
		}

		s = jsonfmt.NewScanner(strings.NewReader(input))
		s.StrictNumbers(true)
		if toks, err := scanAll(t, s); err == nil {
			t.Errorf("Strict %q: got %v, want error", input, toks)
		} else if !errors.Is(err, jsonfmt.ErrLexical) {
			t.Errorf("Strict %q: got %v, want a lexical error", input, err)
		}
	}
}
