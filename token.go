// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jcheck

import (
	"fmt"
	"strconv"

	"go4.org/mem"
)

// Kind is the type of a lexical token in the JSON grammar.
type Kind byte

// Constants defining the valid Kind values.
const (
	Invalid Kind = iota // invalid token
	LBrace              // left brace "{"
	RBrace              // right brace "}"
	LSquare             // left square bracket "["
	RSquare             // right square bracket "]"
	Comma               // comma ","
	Colon               // colon ":"
	Number              // number
	String              // quoted string
	True                // constant: true
	False               // constant: false
	Null                // constant: null
)

var kindStr = [...]string{
	Invalid: "invalid token",
	LBrace:  `"{"`,
	RBrace:  `"}"`,
	LSquare: `"["`,
	RSquare: `"]"`,
	Comma:   `","`,
	Colon:   `":"`,
	Number:  "number",
	String:  "string",
	True:    "true",
	False:   "false",
	Null:    "null",
}

func (k Kind) String() string {
	v := int(k)
	if v >= len(kindStr) {
		return kindStr[Invalid]
	}
	return kindStr[v]
}

// IsValue reports whether k is a token that is a complete JSON value by
// itself: a string, number, or constant.
func (k Kind) IsValue() bool { return k >= Number && k <= Null }

// A Token is a single lexical unit of JSON input.
//
// The text of a String or Number token is a view of the input buffer it was
// scanned from, and is only valid as long as that buffer is not modified.
type Token struct {
	Kind Kind
	Span Span // location in the input; zero for synthetic tokens

	text mem.RO
	num  float64
}

// NewToken returns a token of the given kind with no source text.
// It is intended for punctuation and constants.
func NewToken(kind Kind) Token { return Token{Kind: kind} }

// NewString returns a String token whose contents are s.
func NewString(s string) Token { return Token{Kind: String, text: mem.S(s)} }

// NewNumber returns a Number token with value v.
func NewNumber(v float64) Token {
	return Token{Kind: Number, num: v, text: mem.S(strconv.FormatFloat(v, 'g', -1, 64))}
}

// Text returns the text of t. For a String token this is the undecoded text
// between the quotation marks; for a Number it is the lexeme as written.
// For other tokens it is empty.
func (t Token) Text() mem.RO { return t.text }

// Float64 returns the value of a Number token, or 0 for any other kind.
func (t Token) Float64() float64 { return t.num }

func (t Token) String() string {
	switch t.Kind {
	case String:
		return fmt.Sprintf("string %q", t.text.StringCopy())
	case Number:
		return "number " + t.text.StringCopy()
	default:
		return t.Kind.String()
	}
}
