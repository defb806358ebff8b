package lzwpack

import (
	"fmt"
	"strings"

	"github.com/akeane/lzwpack/logging"
)

// Decode reconstructs the input that produced codes, using the initial
// table that was persisted alongside them. It rebuilds the encoder's
// working table as it goes; a code that the encoder could not have
// emitted fails with ErrCorrupt.
func Decode(codes []Code, table *Table) (string, error) {
	if len(codes) == 0 {
		return "", nil
	}

	// Invert the initial table; this working copy grows in lockstep
	// with the encoder's, one entry per consumed code.
	work := make(map[Code]string, 2*table.Len())
	for code, sym := range table.symbols {
		work[Code(code)] = string(sym)
	}
	next := table.Len()

	logging.Trace.Printf("decode: %d codes, %d initial table entries", len(codes), table.Len())

	prev, ok := work[codes[0]]
	if !ok {
		return "", fmt.Errorf("code %d at offset 0 is not in the initial table: %w", codes[0], ErrCorrupt)
	}
	var out strings.Builder
	out.WriteString(prev)

	for i, c := range codes[1:] {
		var cur string
		if s, ok := work[c]; ok {
			cur = s
		} else if int(c) == next {
			// The encoder defined this entry while emitting the
			// previous code, so we are exactly one entry behind it.
			// That entry is previous + its own first symbol.
			cur = prev + firstSym(prev)
		} else {
			return "", fmt.Errorf("code %d at offset %d with %d table entries: %w", c, i+1, next, ErrCorrupt)
		}
		out.WriteString(cur)
		// Mirror the encoder's insertion, including its ceiling.
		if next < MaxTableSize {
			work[Code(next)] = prev + firstSym(cur)
			next++
		}
		prev = cur
	}

	logging.Trace.Printf("decode: produced %d bytes, working table grew to %d entries", out.Len(), next)
	return out.String(), nil
}

// firstSym returns the first symbol of s as a string.
func firstSym(s string) string {
	for _, c := range s {
		return string(c)
	}
	return ""
}
