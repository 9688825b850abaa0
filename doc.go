// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Package jcheck implements a lexical scanner for validating JSON text.
//
// # Tokenizing
//
// Tokenize converts an in-memory buffer into the complete sequence of its
// tokens, or reports the first lexical error:
//
//	toks, err := jcheck.Tokenize(input)
//	if err != nil {
//	   log.Fatalf("Tokenize failed: %v", err)
//	}
//
// A lexical error has concrete type *jcheck.TokenError, whose Offset field
// gives the byte offset of the lexeme that could not be scanned. Use Locate
// to convert an offset to a line and column.
//
// The Lexer type scans one token at a time. Next returns io.EOF when the
// input has been fully consumed:
//
//	lx := jcheck.NewLexer(mem.B(input))
//	for {
//	   tok, err := lx.Next()
//	   if err == io.EOF {
//	      break
//	   } else if err != nil {
//	      log.Fatalf("Next failed: %v", err)
//	   }
//	   log.Printf("Next token: %v", tok)
//	}
//
// # Strings and numbers
//
// The text of a String token is the undecoded content between its quotation
// marks. A backslash prevents the character after it from closing the
// string, but escape sequences are not interpreted. A string may not span
// lines.
//
// Number tokens must match the JSON number grammar exactly and are converted
// to float64 when scanned.
//
// # Parsing
//
// The ast subpackage consumes a token sequence and constructs a syntax tree,
// reporting structural errors such as missing or misplaced commas.
package jcheck
