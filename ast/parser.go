// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package ast

import (
	"io"

	"github.com/creachadair/jsonfmt"
)

// Parse parses a single JSON document from r and returns its root. The root
// must be an object or an array, and nothing but whitespace may follow it.
func Parse(r io.Reader) (Value, error) {
	return NewParser(jsonfmt.NewScanner(r)).Parse()
}

// A Parser builds a syntax tree from the tokens delivered by a Scanner. The
// parser keeps no state between calls other than the scanner position.
type Parser struct {
	s *jsonfmt.Scanner

	trailingCommas bool
}

// NewParser constructs a new parser that consumes tokens from s.
func NewParser(s *jsonfmt.Scanner) *Parser { return &Parser{s: s} }

// AllowTrailingCommas configures the parser to accept (true) or reject (false)
// a comma after the last member of an object or the last element of an array.
// The default is to reject them.
func (p *Parser) AllowTrailingCommas(ok bool) { p.trailingCommas = ok }

// Parse parses a complete document and returns its root value.
//
// A lexical error from the scanner is returned unchanged. Any other violation
// of the grammar is reported as a *jsonfmt.Error of kind GrammarError naming
// the active production, what it expected, and the token it found.
func (p *Parser) Parse() (Value, error) {
	tok, err := p.s.Peek()
	if err != nil {
		return nil, err
	}

	var root Value
	switch tok.Kind {
	case jsonfmt.LBrace:
		root, err = p.parseObject()
	case jsonfmt.LSquare:
		root, err = p.parseArray()
	default:
		return nil, jsonfmt.NewGrammarError("document", `"{" or "["`, tok)
	}
	if err != nil {
		return nil, err
	}

	if tok, err := p.s.Next(); err != nil {
		return nil, err
	} else if tok.Kind != jsonfmt.EOF {
		return nil, jsonfmt.NewGrammarError("document", "end of input", tok)
	}
	return root, nil
}

// parseObject parses an object whose opening brace is the next token.
func (p *Parser) parseObject() (Value, error) {
	if _, err := p.s.Next(); err != nil {
		return nil, err
	}
	obj := Object{}
	expect := `string or "}"`
	for {
		tok, err := p.s.Next()
		if err != nil {
			return nil, err
		}
		if tok.Kind == jsonfmt.RBrace && (len(obj) == 0 || p.trailingCommas) {
			return obj, nil
		} else if tok.Kind != jsonfmt.String {
			return nil, jsonfmt.NewGrammarError("object key", expect, tok)
		}
		key := tok.Text

		if tok, err := p.s.Next(); err != nil {
			return nil, err
		} else if tok.Kind != jsonfmt.Colon {
			return nil, jsonfmt.NewGrammarError("object member", `":"`, tok)
		}

		val, err := p.parseValue("object value")
		if err != nil {
			return nil, err
		}
		obj = append(obj, &Member{Key: key, Value: val})

		tok, err = p.s.Next()
		if err != nil {
			return nil, err
		}
		switch tok.Kind {
		case jsonfmt.RBrace:
			return obj, nil
		case jsonfmt.Comma:
			// more members follow
		default:
			return nil, jsonfmt.NewGrammarError("object", `"," or "}"`, tok)
		}
		if !p.trailingCommas {
			expect = "string"
		}
	}
}

// parseArray parses an array whose opening bracket is the next token.
func (p *Parser) parseArray() (Value, error) {
	if _, err := p.s.Next(); err != nil {
		return nil, err
	}
	arr := Array{}
	for {
		tok, err := p.s.Peek()
		if err != nil {
			return nil, err
		}
		if tok.Kind == jsonfmt.RSquare && (len(arr) == 0 || p.trailingCommas) {
			p.advance()
			return arr, nil
		}

		val, err := p.parseValue("array element")
		if err != nil {
			return nil, err
		}
		arr = append(arr, val)

		tok, err = p.s.Next()
		if err != nil {
			return nil, err
		}
		switch tok.Kind {
		case jsonfmt.RSquare:
			return arr, nil
		case jsonfmt.Comma:
			// more elements follow
		default:
			return nil, jsonfmt.NewGrammarError("array", `"," or "]"`, tok)
		}
	}
}

// parseValue parses a value of any kind in the context of production.
func (p *Parser) parseValue(production string) (Value, error) {
	tok, err := p.s.Peek()
	if err != nil {
		return nil, err
	}
	switch tok.Kind {
	case jsonfmt.LBrace:
		return p.parseObject()
	case jsonfmt.LSquare:
		return p.parseArray()
	case jsonfmt.String:
		p.advance()
		return String{text: tok.Text}, nil
	case jsonfmt.Number:
		p.advance()
		num, err := parseNumber(tok.Text)
		if err != nil {
			return nil, &jsonfmt.Error{
				Kind:    jsonfmt.LexicalError,
				Pos:     tok.Pos,
				Message: "invalid number " + tok.Text,
				Err:     err,
			}
		}
		return num, nil
	case jsonfmt.Bool:
		p.advance()
		return Bool(tok.Text == "true"), nil
	case jsonfmt.Null:
		p.advance()
		return Null{}, nil
	}
	return nil, jsonfmt.NewGrammarError(production, "value", tok)
}

// advance consumes the token most recently reported by Peek. The scanner
// returns a peeked token without scanning, so this cannot fail.
func (p *Parser) advance() { _, _ = p.s.Next() }
