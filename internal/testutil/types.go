// Package testutil defines support code for unit tests.
package testutil

import (
	"fmt"

	"github.com/creachadair/jcheck"
)

// Kinds returns the kinds of toks, in order.
func Kinds(toks []jcheck.Token) []jcheck.Kind {
	var out []jcheck.Kind
	for _, tok := range toks {
		out = append(out, tok.Kind)
	}
	return out
}

// Tokens builds a synthetic token sequence. Each argument is converted as
// follows: a jcheck.Kind becomes a token of that kind, a string becomes a
// String token, an int or float64 becomes a Number token, a bool becomes
// True or False, and nil becomes Null. Any other type panics.
func Tokens(args ...any) []jcheck.Token {
	out := make([]jcheck.Token, len(args))
	for i, arg := range args {
		switch t := arg.(type) {
		case jcheck.Kind:
			out[i] = jcheck.NewToken(t)
		case string:
			out[i] = jcheck.NewString(t)
		case int:
			out[i] = jcheck.NewNumber(float64(t))
		case float64:
			out[i] = jcheck.NewNumber(t)
		case bool:
			if t {
				out[i] = jcheck.NewToken(jcheck.True)
			} else {
				out[i] = jcheck.NewToken(jcheck.False)
			}
		case nil:
			out[i] = jcheck.NewToken(jcheck.Null)
		default:
			panic(fmt.Sprintf("invalid token argument %T", arg))
		}
	}
	return out
}
