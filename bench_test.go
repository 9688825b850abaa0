package jcheck_test

import (
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/creachadair/jcheck"
	"github.com/creachadair/jcheck/ast"
)

// benchInput constructs a document of n episode records.
func benchInput(n int) []byte {
	var sb strings.Builder
	sb.WriteString(`{"episodes": [`)
	for i := range n {
		if i > 0 {
			sb.WriteString(",\n")
		}
		fmt.Fprintf(&sb, `{"episode": %d, "title": "Episode %d", "rating": %g, `+
			`"hasDetail": %v, "guests": [null, "someone", -%d.5e-3]}`,
			i, i, float64(i)/7, i%2 == 0, i)
	}
	sb.WriteString("]}")
	return []byte(sb.String())
}

func BenchmarkTokenize(b *testing.B) {
	input := benchInput(2000)
	b.Logf("Benchmark input: %d bytes", len(input))

	b.Run("Valid", func(b *testing.B) {
		for b.Loop() {
			if !json.Valid(input) {
				b.Fatal("Input is not valid")
			}
		}
	})

	b.Run("Tokenize", func(b *testing.B) {
		for b.Loop() {
			if _, err := jcheck.Tokenize(input); err != nil {
				b.Fatalf("Unexpected error: %v", err)
			}
		}
	})

	b.Run("Check", func(b *testing.B) {
		for b.Loop() {
			if _, err := ast.Check(input); err != nil {
				b.Fatalf("Unexpected error: %v", err)
			}
		}
	})
}
