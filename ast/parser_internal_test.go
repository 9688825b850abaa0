// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package ast

import (
	"strings"
	"testing"

	"github.com/creachadair/jcheck"
)

func TestDepthBalanced(t *testing.T) {
	tests := []struct {
		input string
		limit int
		fail  bool
	}{
		{`[[[]]]`, 3, false},
		{`[[[[]]]]`, 3, true},
		{`{"a": [{"b": []}]}`, 3, true},
		{strings.Repeat("[", 5), 0, true}, // end of input, no limit
		{`[[1,]]`, 5, true},
	}
	for _, test := range tests {
		p := NewParser(jcheck.MustTokenize(test.input))
		p.SetMaxDepth(test.limit)
		_, err := p.Parse()
		if (err != nil) != test.fail {
			t.Errorf("Parse %#q: got error %v, want failure %v", test.input, err, test.fail)
		}
		if p.depth != 0 {
			t.Errorf("Parse %#q: depth is %d after parsing, want 0", test.input, p.depth)
		}
	}
}
