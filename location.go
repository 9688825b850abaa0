// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jcheck

import (
	"fmt"

	"go4.org/mem"
)

// A Span describes a contiguous span of a source input.
type Span struct {
	Pos int // the start offset, 0-based
	End int // the end offset, 0-based (noninclusive)
}

func (s Span) String() string { return fmt.Sprintf("%d-%d", s.Pos, s.End) }

// A LineCol describes the line number and column offset of a location in
// source text.
type LineCol struct {
	Line   int // line number, 1-based
	Column int // byte offset of column in line, 0-based
}

func (lc LineCol) String() string { return fmt.Sprintf("%d:%d", lc.Line, lc.Column) }

// Locate reports the line and column of the byte at offset pos in src.
// Offsets past the end of src are clamped to the end.
func Locate(src []byte, pos int) LineCol { return locate(mem.B(src), pos) }

func locate(src mem.RO, pos int) LineCol {
	pos = min(max(pos, 0), src.Len())
	lc := LineCol{Line: 1}
	for {
		i := mem.IndexByte(src.SliceTo(pos), '\n')
		if i < 0 {
			break
		}
		lc.Line++
		src = src.SliceFrom(i + 1)
		pos -= i + 1
	}
	lc.Column = pos
	return lc
}
