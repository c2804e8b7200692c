// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Package ast defines a syntax tree for JSON documents, and a recursive
// descent parser that constructs syntax trees from JSON source.
package ast

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/creachadair/jsonfmt"
)

// A Value is an arbitrary JSON value. The concrete type of a Value is exactly
// one of Object, Array, String, Number, Bool, or Null.
//
// A tree built by the parser is not modified after it is returned, and may be
// read concurrently.
type Value interface {
	// JSON renders the value as minified JSON text.
	JSON() string

	appendJSON([]byte) []byte
}

// An Object is an ordered collection of key-value members. The order of
// members is the order of the input, and duplicate keys are retained.
type Object []*Member

// Find returns the first member of o with the given key, or nil. The key is
// compared to the undecoded text of each member key.
func (o Object) Find(key string) *Member {
	for _, m := range o {
		if m.Key == key {
			return m
		}
	}
	return nil
}

// Len reports the number of members in o, including duplicates.
func (o Object) Len() int { return len(o) }

func (o Object) String() string { return fmt.Sprintf("Object(len=%d)", len(o)) }

// JSON satisfies the Value interface.
func (o Object) JSON() string { return string(o.appendJSON(nil)) }

func (o Object) appendJSON(buf []byte) []byte {
	buf = append(buf, '{')
	for i, m := range o {
		if i > 0 {
			buf = append(buf, ',')
		}
		buf = m.appendTo(buf)
	}
	return append(buf, '}')
}

// A Member is a single key-value pair belonging to an Object. The Key is the
// text between the quotation marks of the key in the input, with escape
// sequences left undecoded.
type Member struct {
	Key   string
	Value Value
}

// Field constructs an object member with the given key and value.  The key is
// escaped as necessary. The value must be a type accepted by ToValue.
func Field(key string, value any) *Member {
	return &Member{Key: jsonfmt.Escape(key), Value: ToValue(value)}
}

// JSON renders the member as "key":value.
func (m *Member) JSON() string { return string(m.appendTo(nil)) }

func (m *Member) appendTo(buf []byte) []byte {
	buf = append(buf, '"')
	buf = append(buf, m.Key...)
	buf = append(buf, '"', ':')
	return m.Value.appendJSON(buf)
}

// An Array is a sequence of values.
type Array []Value

// Len reports the number of elements in a.
func (a Array) Len() int { return len(a) }

func (a Array) String() string { return fmt.Sprintf("Array(len=%d)", len(a)) }

// JSON satisfies the Value interface.
func (a Array) JSON() string { return string(a.appendJSON(nil)) }

func (a Array) appendJSON(buf []byte) []byte {
	buf = append(buf, '[')
	for i, v := range a {
		if i > 0 {
			buf = append(buf, ',')
		}
		buf = v.appendJSON(buf)
	}
	return append(buf, ']')
}

// A String is a string value. It holds the text between the quotation marks
// as written in the input; escape sequences are not decoded.
type String struct{ text string }

// NewString constructs a String whose decoded value is s.
func NewString(s string) String { return String{text: jsonfmt.Escape(s)} }

// Text returns the undecoded text of s, without quotation marks.
func (s String) Text() string { return s.text }

// Unescape returns the decoded value of s.
func (s String) Unescape() (string, error) { return jsonfmt.Unescape(s.text) }

// JSON satisfies the Value interface.
func (s String) JSON() string { return `"` + s.text + `"` }

func (s String) appendJSON(buf []byte) []byte {
	buf = append(buf, '"')
	buf = append(buf, s.text...)
	return append(buf, '"')
}

// A Number is a numeric value. The value is stored with single precision;
// the text of the input is retained and used when the value is rendered.
type Number struct {
	text  string
	value float32
}

// NewNumber constructs a Number with the given value.
func NewNumber(v float32) Number {
	return Number{text: strconv.FormatFloat(float64(v), 'g', -1, 32), value: v}
}

// parseNumber constructs a Number from text accepted by the scanner.  A value
// out of range for a float32 becomes an infinity of the same sign.
func parseNumber(text string) (Number, error) {
	v, err := strconv.ParseFloat(text, 32)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return Number{}, err
	}
	return Number{text: text, value: float32(v)}, nil
}

// Float32 returns the value of n.
func (n Number) Float32() float32 { return n.value }

// Text returns the text of n as written in the input.
func (n Number) Text() string { return n.text }

// JSON satisfies the Value interface.
func (n Number) JSON() string { return n.text }

func (n Number) appendJSON(buf []byte) []byte { return append(buf, n.text...) }

// A Bool is a Boolean constant, true or false.
type Bool bool

// JSON satisfies the Value interface.
func (b Bool) JSON() string { return strconv.FormatBool(bool(b)) }

func (b Bool) appendJSON(buf []byte) []byte { return strconv.AppendBool(buf, bool(b)) }

// Null represents the null constant.
type Null struct{}

// JSON satisfies the Value interface.
func (Null) JSON() string { return "null" }

func (Null) appendJSON(buf []byte) []byte { return append(buf, "null"...) }

// ToValue converts a string, int, float, bool, nil, or ast.Value into an
// ast.Value. It panics if v does not have one of those types.
func ToValue(v any) Value {
	switch t := v.(type) {
	case Value:
		return t
	case string:
		return NewString(t)
	case int:
		return Number{text: strconv.Itoa(t), value: float32(t)}
	case float32:
		return NewNumber(t)
	case float64:
		return Number{text: strconv.FormatFloat(t, 'g', -1, 64), value: float32(t)}
	case bool:
		return Bool(t)
	case nil:
		return Null{}
	default:
		panic(fmt.Sprintf("invalid value %T", v))
	}
}
