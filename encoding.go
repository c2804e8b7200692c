// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jsonfmt

import (
	"errors"
	"strings"

	"github.com/creachadair/jsonfmt/internal/escape"
	"go4.org/mem"
)

// Quote encodes src as a JSON string value. The contents are escaped and
// double quotation marks are added.
func Quote(src string) string { return `"` + Escape(src) + `"` }

// Escape encodes src for inclusion in a JSON string, without adding the
// quotation marks. The result is suitable as the Text of a String token.
func Escape(src string) string { return string(escape.Quote(mem.S(src))) }

// Unescape decodes the text of a String token, replacing escape sequences
// with their unescaped equivalents.
//
// Invalid escapes are replaced by the Unicode replacement rune. Unescape
// reports an error for an incomplete escape sequence.
func Unescape(text string) (string, error) {
	dec, err := escape.Unquote(mem.S(text))
	if err != nil {
		return "", err
	}
	return string(dec), nil
}

// Unquote decodes a JSON string value.  Double quotation marks are removed,
// and escape sequences are replaced with their unescaped equivalents.
func Unquote(src string) (string, error) {
	if len(src) < 2 || !strings.HasPrefix(src, `"`) || !strings.HasSuffix(src, `"`) {
		return "", errors.New("missing quotations")
	}
	return Unescape(src[1 : len(src)-1])
}
