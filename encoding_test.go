// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jsonfmt_test

import (
	"testing"

	"github.com/creachadair/jsonfmt"
)

func TestQuote(t *testing.T) {
	tests := []struct {
		input, want string
	}{
		{"", `""`},
		{"abc", `"abc"`},
		{`a"b\c`, `"a\"b\\c"`},
		{"line\nbreak\ttab\r\b\f", `"line\nbreak\ttab\r\b\f"`},
		{"\x00\x01\x1f", `"\u0000\u0001\u001f"`},
		{"a/b", `"a/b"`},
		{"\u00e9\u4e16", "\"\u00e9\u4e16\""},
		{"a\u2028b", `"a\u2028b"`},
		{"bad\xffbyte", `"bad\ufffdbyte"`},
	}
	for _, test := range tests {
		if got := jsonfmt.Quote(test.input); got != test.want {
			t.Errorf("Quote(%q): got %#q, want %#q", test.input, got, test.want)
		}
	}
}

func TestUnquote(t *testing.T) {
	tests := []struct {
		input, want string
	}{
		{`""`, ""},
		{`"abc"`, "abc"},
		{`"a\"b\\c\/d"`, `a"b\c/d`},
		{`"\b\f\n\r\t"`, "\b\f\n\r\t"},
		{`"A\u00e9"`, "A\u00e9"},
		{`"\ud83d\ude00"`, "\U0001F600"},
		{`"\ud83d\ude00!"`, "\U0001F600!"},

		// Malformed escapes decode to the replacement rune.
		{`"\q"`, "\ufffd"},
		{`"\uZZZZ"`, "\ufffd"},
		{`"\uD83Dx"`, "\ufffdx"},
		{`"\uDE00"`, "\ufffd"},
	}
	for _, test := range tests {
		got, err := jsonfmt.Unquote(test.input)
		if err != nil {
			t.Errorf("Unquote(%#q): unexpected error: %v", test.input, err)
		} else if got != test.want {
			t.Errorf("Unquote(%#q): got %q, want %q", test.input, got, test.want)
		}
	}
}

func TestUnquoteErrors(t *testing.T) {
	for _, input := range []string{
		``, `"`, `abc`, `"abc`, `"\"`, `"\u12"`,
	} {
		if got, err := jsonfmt.Unquote(input); err == nil {
			t.Errorf("Unquote(%#q): got %q, want error", input, got)
		}
	}
}

func TestEscapeRoundTrip(t *testing.T) {
	for _, input := range []string{
		"", "plain", "quote \" and backslash \\", "\x00\x7f\n", "\u00e9 \U0001F600",
	} {
		got, err := jsonfmt.Unescape(jsonfmt.Escape(input))
		if err != nil {
			t.Errorf("Unescape(Escape(%q)): unexpected error: %v", input, err)
		} else if got != input {
			t.Errorf("Unescape(Escape(%q)): got %q", input, got)
		}
	}
}
