// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

// Package ast defines the value domain for decoded JSON: a tagged tree of
// null, Boolean, number, string, array, and object values.
package ast

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/creachadair/jfsm/internal/escape"

	"go4.org/mem"
)

// A Value is an arbitrary decoded JSON value.
type Value interface {
	// JSON returns a JSON encoding of the value.
	JSON() string
}

// An Object is a collection of key-value members. Members are kept in
// insertion order.
type Object []*Member

// A Member is a single key-value pair belonging to an Object.
type Member struct {
	Key   string
	Value Value
}

// Find returns the member of o with the given key, or nil.
func (o Object) Find(key string) *Member {
	for _, m := range o {
		if m.Key == key {
			return m
		}
	}
	return nil
}

// Len returns the number of members of o.
func (o Object) Len() int { return len(o) }

// Set updates the member of o with the given key in place, or appends a new
// member, and returns the updated object. Setting an existing key keeps its
// original position.
func (o Object) Set(key string, v Value) Object {
	if m := o.Find(key); m != nil {
		m.Value = v
		return o
	}
	return append(o, &Member{Key: key, Value: v})
}

// JSON satisfies the Value interface.
func (o Object) JSON() string {
	var sb strings.Builder
	sb.WriteString("{")
	for i, m := range o {
		if i > 0 {
			sb.WriteString(",")
		}
		sb.WriteString(m.JSON())
	}
	sb.WriteString("}")
	return sb.String()
}

// JSON renders the member in the form "key":value.
func (m *Member) JSON() string {
	return String(m.Key).JSON() + ":" + m.Value.JSON()
}

// An Array is an ordered sequence of values.
type Array []Value

// Len returns the number of elements of a.
func (a Array) Len() int { return len(a) }

// JSON satisfies the Value interface.
func (a Array) JSON() string {
	var sb strings.Builder
	sb.WriteString("[")
	for i, v := range a {
		if i > 0 {
			sb.WriteString(",")
		}
		sb.WriteString(v.JSON())
	}
	sb.WriteString("]")
	return sb.String()
}

// A Number is a numeric value. All JSON numbers decode to float64.
type Number float64

// Float64 returns n as a plain float64.
func (n Number) Float64() float64 { return float64(n) }

// JSON satisfies the Value interface.
func (n Number) JSON() string { return strconv.FormatFloat(float64(n), 'g', -1, 64) }

// A String is a string value. The text is fully unescaped.
type String string

// JSON satisfies the Value interface.
func (s String) JSON() string { return escape.Quote(mem.S(string(s))) }

// A Bool is a Boolean value.
type Bool bool

// JSON satisfies the Value interface.
func (b Bool) JSON() string {
	if b {
		return "true"
	}
	return "false"
}

// Null represents the JSON null constant.
type Null struct{}

// JSON satisfies the Value interface.
func (Null) JSON() string { return "null" }

// ToValue converts a plain Go value of a supported type to a Value.
// The supported types are nil, bool, string, int, int64, float64, []any,
// and any type that already implements Value. ToValue panics if v does not
// have one of these types.
func ToValue(v any) Value {
	switch t := v.(type) {
	case nil:
		return Null{}
	case Value:
		return t
	case bool:
		return Bool(t)
	case string:
		return String(t)
	case int:
		return Number(t)
	case int64:
		return Number(t)
	case float64:
		return Number(t)
	case []any:
		out := make(Array, len(t))
		for i, elt := range t {
			out[i] = ToValue(elt)
		}
		return out
	default:
		panic(fmt.Sprintf("cannot convert %T to a value", v))
	}
}
