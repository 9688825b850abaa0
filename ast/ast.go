// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Package ast defines an abstract syntax tree for JSON values,
// and a parser that constructs syntax trees from JSON tokens.
package ast

import (
	"fmt"
	"strconv"
)

// A Value is an arbitrary JSON value. The concrete type is one of Object,
// Array, String, Number, Bool, or the value Null.
type Value interface {
	// String returns a short human-readable summary of the value.
	String() string

	isValue()
}

// An Object is a collection of key-value members, in input order.
// Keys are not required to be unique.
type Object []*Member

func (Object) isValue() {}

func (o Object) String() string { return fmt.Sprintf("Object(len=%d)", len(o)) }

// Len reports the number of members in o.
func (o Object) Len() int { return len(o) }

// Find returns the first member of o with the given key, or nil.
func (o Object) Find(key string) *Member {
	for _, m := range o {
		if m.Key == key {
			return m
		}
	}
	return nil
}

// Keys returns the keys of o in order, including duplicates.
func (o Object) Keys() []string {
	keys := make([]string, len(o))
	for i, m := range o {
		keys[i] = m.Key
	}
	return keys
}

// A Member is a single key-value pair belonging to an Object.
// The Key is the undecoded text of the key string, without quotes.
type Member struct {
	Key   string
	Value Value
}

func (m Member) String() string { return fmt.Sprintf("Member(key=%q)", m.Key) }

// Field constructs an object member with the given key and value.
func Field(key string, value Value) *Member { return &Member{Key: key, Value: value} }

// An Array is a sequence of values.
type Array []Value

func (Array) isValue() {}

func (a Array) String() string { return fmt.Sprintf("Array(len=%d)", len(a)) }

// Len reports the number of elements in a.
func (a Array) Len() int { return len(a) }

// A String is a string value. Its contents are the undecoded text of the
// string as written, without quotes.
type String string

func (String) isValue() {}

func (s String) String() string { return strconv.Quote(string(s)) }

// A Number is a numeric value.
type Number float64

func (Number) isValue() {}

func (n Number) String() string { return strconv.FormatFloat(float64(n), 'g', -1, 64) }

// A Bool is a Boolean constant, true or false.
type Bool bool

func (Bool) isValue() {}

func (b Bool) String() string { return strconv.FormatBool(bool(b)) }

type nullValue struct{}

func (nullValue) isValue() {}

func (nullValue) String() string { return "null" }

// Null is the null constant.
var Null Value = nullValue{}
