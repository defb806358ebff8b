package lzwpack

import "fmt"

// A Table is the initial string table for one input: a dense
// assignment of codes to the input's distinct symbols, in order of
// first appearance. It is immutable once built. Encode and Decode each
// derive a private working table from it, so a Table can safely cross
// package boundaries and be serialized while coding is in progress.
type Table struct {
	codes   map[rune]Code
	symbols []rune // indexed by Code
}

// BuildTable scans src and assigns codes 0..n-1 to its n distinct
// symbols. An empty src yields an empty table. BuildTable fails with
// ErrAlphabetTooLarge if src holds more than MaxTableSize distinct
// symbols, since the extra symbols could never be assigned a code.
func BuildTable(src string) (*Table, error) {
	t := &Table{codes: make(map[rune]Code)}
	for _, c := range src {
		if _, ok := t.codes[c]; ok {
			continue
		}
		if len(t.symbols) == MaxTableSize {
			return nil, fmt.Errorf("more than %d distinct symbols: %w", MaxTableSize, ErrAlphabetTooLarge)
		}
		t.codes[c] = Code(len(t.symbols))
		t.symbols = append(t.symbols, c)
	}
	return t, nil
}

// NewTable builds a Table that assigns each symbol the code equal to
// its index in symbols. It is used to reconstruct a persisted table.
func NewTable(symbols []rune) (*Table, error) {
	if len(symbols) > MaxTableSize {
		return nil, fmt.Errorf("%d symbols: %w", len(symbols), ErrAlphabetTooLarge)
	}
	t := &Table{
		codes:   make(map[rune]Code, len(symbols)),
		symbols: make([]rune, len(symbols)),
	}
	copy(t.symbols, symbols)
	for i, c := range symbols {
		if prev, ok := t.codes[c]; ok {
			return nil, fmt.Errorf("symbol %q assigned codes %d and %d", c, prev, i)
		}
		t.codes[c] = Code(i)
	}
	return t, nil
}

// Len returns the number of entries in the table.
func (t *Table) Len() int {
	return len(t.symbols)
}

// Code returns the code assigned to symbol c.
func (t *Table) Code(c rune) (Code, bool) {
	code, ok := t.codes[c]
	return code, ok
}

// Symbol returns the symbol assigned to code.
func (t *Table) Symbol(code Code) (rune, bool) {
	if int(code) >= len(t.symbols) {
		return 0, false
	}
	return t.symbols[code], true
}

// Symbols returns the table's symbols in code order.
func (t *Table) Symbols() []rune {
	s := make([]rune, len(t.symbols))
	copy(s, t.symbols)
	return s
}
