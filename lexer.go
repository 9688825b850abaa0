// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jcheck

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"go4.org/mem"
)

// Sentinel causes wrapped by a *TokenError. Use errors.Is to test for them.
var (
	ErrUnexpectedChar     = errors.New("unexpected character")
	ErrUnknownLiteral     = errors.New("unknown literal")
	ErrUnterminatedString = errors.New("unterminated string")
	ErrNewlineInString    = errors.New("newline in string")
	ErrInvalidNumber      = errors.New("invalid number")
)

// TokenError is the concrete type of lexical errors reported by a Lexer.
type TokenError struct {
	Offset int   // byte offset of the start of the bad lexeme
	Err    error // the cause
}

// Error satisfies the error interface.
func (e *TokenError) Error() string {
	return fmt.Sprintf("%s (offset %d)", e.Err.Error(), e.Offset)
}

// Unwrap supports error wrapping.
func (e *TokenError) Unwrap() error { return e.Err }

// A Lexer reads lexical tokens from an in-memory input. Each call to Next
// returns the next token, or reports an error.
type Lexer struct {
	src mem.RO
	pos int
	err error
}

// NewLexer constructs a new lexer that consumes input from src.
// The caller must not modify src while the lexer or its tokens are in use.
func NewLexer(src mem.RO) *Lexer { return &Lexer{src: src} }

// Offset reports the byte offset of the next unread input.
func (lx *Lexer) Offset() int { return lx.pos }

// Next returns the next token of the input, or reports an error.  At the
// end of the input, Next returns io.EOF. Any other error has concrete type
// *TokenError. Once Next has reported an error, it reports the same error on
// every subsequent call.
func (lx *Lexer) Next() (Token, error) {
	if lx.err != nil {
		return Token{}, lx.err
	}
	for lx.pos < lx.src.Len() {
		start := lx.pos
		ch, n := mem.DecodeRune(lx.src.SliceFrom(start))

		// Discard whitespace and control characters.
		if isSpace(ch) {
			lx.pos += n
			continue
		}

		// Handle punctuation.
		if k, ok := selfDelim(ch); ok {
			lx.pos += n
			return Token{Kind: k, Span: Span{Pos: start, End: lx.pos}}, nil
		}

		switch {
		case ch == '"':
			return lx.scanString(start)
		case isNumStart(ch):
			return lx.scanNumber(start)
		case ch == 't':
			return lx.scanLiteral(start, True, "true")
		case ch == 'f':
			return lx.scanLiteral(start, False, "false")
		case ch == 'n':
			return lx.scanLiteral(start, Null, "null")
		}
		return Token{}, lx.failf(start, "%w %q", ErrUnexpectedChar, ch)
	}
	return Token{}, io.EOF
}

// scanString scans a quoted string whose open quote is at start.  A
// backslash keeps the following character from closing the string, but
// escapes are not otherwise interpreted.
func (lx *Lexer) scanString(start int) (Token, error) {
	for i := start + 1; i < lx.src.Len(); i++ {
		switch lx.src.At(i) {
		case '"':
			lx.pos = i + 1
			return Token{
				Kind: String,
				Span: Span{Pos: start, End: lx.pos},
				text: lx.src.Slice(start+1, i),
			}, nil
		case '\n', '\r':
			return Token{}, lx.fail(start, ErrNewlineInString)
		case '\\':
			if i+1 < lx.src.Len() {
				if c := lx.src.At(i + 1); c == '\n' || c == '\r' {
					return Token{}, lx.fail(start, ErrNewlineInString)
				}
				i++ // skip the protected character
			}
		}
	}
	return Token{}, lx.fail(start, ErrUnterminatedString)
}

// scanLiteral matches the constant word at start.
func (lx *Lexer) scanLiteral(start int, kind Kind, word string) (Token, error) {
	for i := 0; i < len(word); i++ {
		p := start + i
		if p >= lx.src.Len() || lx.src.At(p) != word[i] {
			end := min(p+1, lx.src.Len())
			return Token{}, lx.failf(start, "%w %q", ErrUnknownLiteral, lx.src.Slice(start, end).StringCopy())
		}
	}
	lx.pos = start + len(word)
	return Token{Kind: kind, Span: Span{Pos: start, End: lx.pos}}, nil
}

// scanNumber greedily consumes number characters beginning at start, then
// checks the result against the JSON number grammar.
func (lx *Lexer) scanNumber(start int) (Token, error) {
	end := start
	for end < lx.src.Len() && isNumByte(lx.src.At(end)) {
		end++
	}
	text := lx.src.Slice(start, end)
	if why := checkNumber(text); why != "" {
		return Token{}, lx.failf(start, "%w %q: %s", ErrInvalidNumber, text.StringCopy(), why)
	}
	// Values beyond the float64 range parse as ±Inf.
	v, err := mem.ParseFloat(text, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return Token{}, lx.failf(start, "%w %q: %v", ErrInvalidNumber, text.StringCopy(), err)
	}
	lx.pos = end
	return Token{Kind: Number, Span: Span{Pos: start, End: end}, text: text, num: v}, nil
}

func (lx *Lexer) fail(pos int, err error) error {
	lx.err = &TokenError{Offset: pos, Err: err}
	return lx.err
}

func (lx *Lexer) failf(pos int, msg string, args ...any) error {
	return lx.fail(pos, fmt.Errorf(msg, args...))
}

// checkNumber reports why text is not a valid JSON number, or "" if it is.
//
// OK: 0, -0, 0.5, -1.0e+5, 3E9.
// Bad: 01, -01.2, 1., 1.e5, 1.1e, 1-2.
func checkNumber(text mem.RO) string {
	i, n := 0, text.Len()
	digits := func() int {
		p := i
		for i < n && isDigit(rune(text.At(i))) {
			i++
		}
		return i - p
	}

	if i < n && text.At(i) == '-' {
		i++ // skip leading sign
	}
	if i < n && text.At(i) == '0' && i+1 < n && isDigit(rune(text.At(i+1))) {
		return "extra leading zeroes"
	}
	if digits() == 0 {
		return "missing digits"
	}
	if i < n && text.At(i) == '.' {
		i++
		if i == n {
			return "trailing decimal point"
		} else if digits() == 0 {
			return "no digits after decimal point"
		}
	}
	if i < n && (text.At(i) == 'e' || text.At(i) == 'E') {
		i++
		if i < n && (text.At(i) == '+' || text.At(i) == '-') {
			i++
		}
		if digits() == 0 {
			return "missing exponent digits"
		}
	}
	if i != n {
		return fmt.Sprintf("unexpected %q", text.At(i))
	}
	return ""
}

// Tokenize returns the complete sequence of tokens in src, or the first
// lexical error. An empty or all-whitespace input yields no tokens.
//
// The String and Number tokens returned refer to the contents of src.
func Tokenize(src []byte) ([]Token, error) { return tokenize(mem.B(src)) }

// TokenizeString is a wrapper for Tokenize that accepts a string.
func TokenizeString(src string) ([]Token, error) { return tokenize(mem.S(src)) }

// MustTokenize returns the tokens of src, and panics if src does not contain
// only valid tokens. It is intended for use in tests and examples.
func MustTokenize(src string) []Token {
	toks, err := TokenizeString(src)
	if err != nil {
		panic(fmt.Sprintf("tokenize %q: %v", src, err))
	}
	return toks
}

func tokenize(src mem.RO) ([]Token, error) {
	lx := NewLexer(src)
	var toks []Token
	for {
		tok, err := lx.Next()
		if err == io.EOF {
			return toks, nil
		} else if err != nil {
			return nil, err
		}
		toks = append(toks, tok)
	}
}

func isSpace(ch rune) bool    { return unicode.IsSpace(ch) || unicode.IsControl(ch) }
func isNumStart(ch rune) bool { return ch == '-' || isDigit(ch) }
func isDigit(ch rune) bool    { return '0' <= ch && ch <= '9' }

func isNumByte(b byte) bool {
	return isDigit(rune(b)) || b == '.' || b == 'e' || b == 'E' || b == '+' || b == '-'
}

var self = [...]Kind{LBrace, RBrace, LSquare, RSquare, Comma, Colon}

func selfDelim(ch rune) (Kind, bool) {
	i := strings.IndexRune("{}[],:", ch)
	if i >= 0 {
		return self[i], true
	}
	return Invalid, false
}
