// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package ast

import (
	"github.com/creachadair/jcheck"
)

// DefaultMaxDepth is the default limit on the nesting depth of arrays and
// objects accepted by a Parser.
const DefaultMaxDepth = 10000

// Messages reported by a ParseError.
const (
	msgEndOfInput       = "unexpected end of input"
	msgUnexpectedToken  = "unexpected token"
	msgUnexpectedKey    = "unexpected object key"
	msgExpectedColon    = "expected colon after string key"
	msgMissingComma     = "missing comma"
	msgCommaBeforeBrace = "unexpected comma before end of object"
	msgCommaBeforeBrack = "unexpected comma before end of array"
	msgTrailingData     = "unexpected token after value"
	msgTooDeep          = "maximum nesting depth exceeded"
)

// ParseError is the concrete type of structural errors reported by the
// parser. For tokens constructed without source text the Offset is 0.
type ParseError struct {
	Message string
	Offset  int // input offset of the offending token, or -1 at end of input
}

// Error satisfies the error interface.
func (e *ParseError) Error() string { return "invalid JSON: " + e.Message }

// Parse parses a single JSON value from toks with default settings.  If toks
// is empty, Parse returns nil, nil.
func Parse(toks []jcheck.Token) (Value, error) { return NewParser(toks).Parse() }

// Check tokenizes src and parses a single JSON value from the result with
// default settings. A lexical error is reported as a *jcheck.TokenError, a
// structural error as a *ParseError. An empty input is valid and yields a
// nil Value.
func Check(src []byte) (Value, error) {
	toks, err := jcheck.Tokenize(src)
	if err != nil {
		return nil, err
	}
	return Parse(toks)
}

// A Parser constructs a syntax tree from a sequence of tokens.
type Parser struct {
	cur      *jcheck.Cursor
	trailing bool // allow tokens after the top-level value
	maxDepth int
	depth    int
}

// NewParser constructs a parser that consumes toks.
func NewParser(toks []jcheck.Token) *Parser {
	return &Parser{cur: jcheck.NewCursor(toks), maxDepth: DefaultMaxDepth}
}

// AllowTrailingData configures the parser to ignore (true) or reject (false)
// tokens remaining after the top-level value. The default is false.
func (p *Parser) AllowTrailingData(ok bool) { p.trailing = ok }

// SetMaxDepth sets the maximum nesting depth of arrays and objects.  If n is
// zero there is no limit.
func (p *Parser) SetMaxDepth(n int) { p.maxDepth = n }

// Parse parses a single value from the tokens of p. If there are no tokens,
// it returns nil, nil. In case of error the returned error has concrete type
// *ParseError. Parsing stops at the first error.
func (p *Parser) Parse() (_ Value, err error) {
	defer p.recoverParseError(&err)

	if p.cur.Len() == 0 {
		return nil, nil
	}
	v := p.parseValue()
	if tok, ok := p.cur.Peek(); ok && !p.trailing {
		p.fail(tok, msgTrailingData)
	}
	return v, nil
}

func (p *Parser) recoverParseError(errp *error) {
	if perr := recover(); perr != nil {
		if err, ok := perr.(*ParseError); ok {
			*errp = err
			return
		}
		panic(perr)
	}
}

// parseValue consumes a single value of any type.
func (p *Parser) parseValue() Value {
	tok := p.next()
	switch tok.Kind {
	case jcheck.String:
		return String(tok.Text().StringCopy())
	case jcheck.Number:
		return Number(tok.Float64())
	case jcheck.True:
		return Bool(true)
	case jcheck.False:
		return Bool(false)
	case jcheck.Null:
		return Null
	case jcheck.LBrace:
		p.push(tok)
		defer p.pop()
		return p.parseObject()
	case jcheck.LSquare:
		p.push(tok)
		defer p.pop()
		return p.parseArray()
	}
	p.fail(tok, msgUnexpectedToken)
	return nil
}

// parseObject consumes zero or more comma-separated key:value members.
// Precondition: "{" has been consumed.
// Postcondition: "}" has been consumed.
func (p *Parser) parseObject() Object {
	obj := Object{}
	first, wantMore := true, false
	for {
		tok := p.next()
		switch tok.Kind {
		case jcheck.RBrace:
			if wantMore {
				p.fail(tok, msgCommaBeforeBrace)
			}
			return obj

		case jcheck.String:
			if !first && !wantMore {
				p.fail(tok, msgMissingComma)
			}
			if next := p.next(); next.Kind != jcheck.Colon {
				p.fail(next, msgExpectedColon)
			}
			obj = append(obj, &Member{Key: tok.Text().StringCopy(), Value: p.parseValue()})
			first = false
			wantMore = p.skipComma()

		default:
			p.fail(tok, msgUnexpectedKey)
		}
	}
}

// parseArray consumes zero or more comma-separated values.
// Precondition: "[" has been consumed.
// Postcondition: "]" has been consumed.
func (p *Parser) parseArray() Array {
	arr := Array{}
	first, wantMore := true, false
	for {
		tok, ok := p.cur.Peek()
		if !ok {
			p.failEOF()
		}
		if tok.Kind == jcheck.RSquare {
			if wantMore {
				p.fail(tok, msgCommaBeforeBrack)
			}
			p.cur.Next()
			return arr
		}
		if !first && !wantMore {
			p.fail(tok, msgMissingComma)
		}
		arr = append(arr, p.parseValue())
		first = false
		wantMore = p.skipComma()
	}
}

// skipComma consumes a comma if one is next, and reports whether it did.
func (p *Parser) skipComma() bool {
	if tok, ok := p.cur.Peek(); ok && tok.Kind == jcheck.Comma {
		p.cur.Next()
		return true
	}
	return false
}

func (p *Parser) next() jcheck.Token {
	tok, ok := p.cur.Next()
	if !ok {
		p.failEOF()
	}
	return tok
}

func (p *Parser) push(tok jcheck.Token) {
	if p.maxDepth > 0 && p.depth >= p.maxDepth {
		p.fail(tok, msgTooDeep)
	}
	p.depth++
}

func (p *Parser) pop() { p.depth-- }

func (p *Parser) fail(tok jcheck.Token, msg string) {
	panic(&ParseError{Message: msg, Offset: tok.Span.Pos})
}

func (p *Parser) failEOF() {
	panic(&ParseError{Message: msgEndOfInput, Offset: -1})
}
