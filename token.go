// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jsonfmt

// Kind is the type of a lexical token in the JSON grammar.
type Kind byte

// Constants defining the valid Kind values.
const (
	Invalid Kind = iota // invalid token
	LBrace              // left brace "{"
	RBrace              // right brace "}"
	LSquare             // left square bracket "["
	RSquare             // right square bracket "]"
	String              // quoted string
	Number              // number
	Bool                // constant: true or false
	Null                // constant: null
	Comma               // comma ","
	Colon               // colon ":"
	EOF                 // end of input
)

var kindStr = [...]string{
	Invalid: "invalid token",
	LBrace:  `"{"`,
	RBrace:  `"}"`,
	LSquare: `"["`,
	RSquare: `"]"`,
	String:  "string",
	Number:  "number",
	Bool:    "boolean",
	Null:    "null",
	Comma:   `","`,
	Colon:   `":"`,
	EOF:     "end of input",
}

func (k Kind) String() string {
	v := int(k)
	if v >= len(kindStr) {
		return kindStr[Invalid]
	}
	return kindStr[v]
}

// A Token is a single lexical token. Text is empty for punctuation and for
// EOF. For a String, Text is the content between the quotation marks with
// escape sequences left undecoded.
type Token struct {
	Kind Kind
	Text string
	Pos  LineCol // location of the first byte of the token
}

// String renders the token for use in diagnostics.
func (t Token) String() string { return describe(t) }
