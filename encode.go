package lzwpack

import "github.com/akeane/lzwpack/logging"

// Encode compresses src with the LZW algorithm, deriving the initial
// table from src itself. It returns the code stream together with the
// frozen initial table; both are needed to reconstruct the input.
//
// An empty src yields an empty code stream and an empty table. The
// only failure is ErrAlphabetTooLarge from building the table.
func Encode(src string) ([]Code, *Table, error) {
	table, err := BuildTable(src)
	if err != nil {
		return nil, nil, err
	}

	// The working table starts as a copy of the initial table and
	// learns one prefix+symbol string per emitted code until frozen.
	work := make(map[string]Code, 2*table.Len())
	for code, sym := range table.symbols {
		work[string(sym)] = Code(code)
	}
	next := table.Len()

	logging.Trace.Printf("encode: %d bytes of input, %d distinct symbols", len(src), table.Len())

	var codes []Code
	prefix := ""
	for _, c := range src {
		ext := prefix + string(c)
		if _, ok := work[ext]; ok {
			// Longest-match rule: keep extending, emit nothing yet.
			prefix = ext
			continue
		}
		codes = append(codes, work[prefix])
		if next < MaxTableSize {
			work[ext] = Code(next)
			next++
		}
		prefix = string(c)
	}
	// prefix holds the unemitted tail; it is empty only for empty input.
	if prefix != "" {
		codes = append(codes, work[prefix])
	}

	logging.Trace.Printf("encode: emitted %d codes, working table grew to %d entries", len(codes), next)
	return codes, table, nil
}
