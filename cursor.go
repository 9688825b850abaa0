// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jcheck

// A Cursor is a forward-only position in a sequence of tokens, with one
// token of lookahead. A zero Cursor has no tokens.
type Cursor struct {
	toks []Token
	pos  int
}

// NewCursor constructs a cursor positioned at the first of toks.
func NewCursor(toks []Token) *Cursor { return &Cursor{toks: toks} }

// Peek returns the next token without consuming it. It reports false if no
// tokens remain.
func (c *Cursor) Peek() (Token, bool) {
	if c.pos >= len(c.toks) {
		return Token{}, false
	}
	return c.toks[c.pos], true
}

// Next consumes and returns the next token. It reports false if no tokens
// remain.
func (c *Cursor) Next() (Token, bool) {
	tok, ok := c.Peek()
	if ok {
		c.pos++
	}
	return tok, ok
}

// Len reports the number of tokens not yet consumed.
func (c *Cursor) Len() int { return len(c.toks) - c.pos }

// Consumed reports the number of tokens consumed so far.
func (c *Cursor) Consumed() int { return c.pos }
