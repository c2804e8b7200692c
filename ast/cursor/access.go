// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package cursor

import (
	"github.com/creachadair/jsonfmt"
	"github.com/creachadair/jsonfmt/ast"
)

// IsObject reports whether the current value is an object.
func (c *Cursor) IsObject() bool { _, ok := c.Value().(ast.Object); return ok }

// IsArray reports whether the current value is an array.
func (c *Cursor) IsArray() bool { _, ok := c.Value().(ast.Array); return ok }

// IsString reports whether the current value is a string.
func (c *Cursor) IsString() bool { _, ok := c.Value().(ast.String); return ok }

// IsNumber reports whether the current value is a number.
func (c *Cursor) IsNumber() bool { _, ok := c.Value().(ast.Number); return ok }

// IsBool reports whether the current value is true or false.
func (c *Cursor) IsBool() bool { _, ok := c.Value().(ast.Bool); return ok }

// IsNull reports whether the current value is null.
func (c *Cursor) IsNull() bool { _, ok := c.Value().(ast.Null); return ok }

// HasKey reports whether the current value, which must be an object, has a
// member with the given key.
func (c *Cursor) HasKey(key string) (bool, error) {
	obj, err := as[ast.Object](c.Value())
	if err != nil {
		return false, err
	}
	return obj.Find(key) != nil, nil
}

// Len reports the number of members or elements of the current value, which
// must be an object or an array.
func (c *Cursor) Len() (int, error) {
	switch t := c.Value().(type) {
	case ast.Object:
		return len(t), nil
	case ast.Array:
		return len(t), nil
	}
	return 0, jsonfmt.NewTypeError("got %s, want object or array", typeName(c.Value()))
}

// AsString returns the decoded value of the current value, which must be a
// string.
func (c *Cursor) AsString() (string, error) {
	s, err := as[ast.String](c.Value())
	if err != nil {
		return "", err
	}
	return s.Unescape()
}

// AsNumber returns the value of the current value, which must be a number.
func (c *Cursor) AsNumber() (float32, error) {
	n, err := as[ast.Number](c.Value())
	if err != nil {
		return 0, err
	}
	return n.Float32(), nil
}

// AsBool returns the value of the current value, which must be a Boolean.
func (c *Cursor) AsBool() (bool, error) {
	b, err := as[ast.Bool](c.Value())
	if err != nil {
		return false, err
	}
	return bool(b), nil
}

// Key returns the value of the first member of the current value with the
// given key. The current value must be an object. Key does not move c.
func (c *Cursor) Key(key string) (ast.Value, error) {
	obj, err := as[ast.Object](c.Value())
	if err != nil {
		return nil, err
	}
	if m := obj.Find(key); m != nil {
		return m.Value, nil
	}
	return nil, jsonfmt.NewLookupError("key %q not found", key)
}

// Index returns the element at offset i of the current value, which must be
// an array. Negative offsets count backward from the end. Index does not move
// c.
func (c *Cursor) Index(i int) (ast.Value, error) {
	arr, err := as[ast.Array](c.Value())
	if err != nil {
		return nil, err
	}
	j, ok := fixArrayBound(len(arr), i)
	if !ok {
		return nil, jsonfmt.NewLookupError("array index %d out of bounds (n=%d)", i, len(arr))
	}
	return arr[j], nil
}

func as[T ast.Value](v ast.Value) (T, error) {
	t, ok := v.(T)
	if !ok {
		return t, jsonfmt.NewTypeError("got %s, want %s", typeName(v), typeName(t))
	}
	return t, nil
}

// typeName returns the JSON name of the concrete type of v.
func typeName(v any) string {
	switch v.(type) {
	case ast.Object:
		return "object"
	case ast.Array:
		return "array"
	case ast.String:
		return "string"
	case ast.Number:
		return "number"
	case ast.Bool:
		return "boolean"
	case ast.Null:
		return "null"
	case nil:
		return "nothing"
	}
	return "value"
}
