package lzwfile

import (
	"encoding/binary"
	"fmt"

	"github.com/akeane/lzwpack"
)

// classicFormat is the original layout, little-endian throughout:
//
//	1 byte             initial-table entry count minus one
//	3 bytes per entry  uint16 code point, uint8 code
//	2 bytes per code   the compressed stream, running to end of data
//
// The count-minus-one field means the layout cannot express an empty
// table, and the 1-byte code field caps it at 256 entries; symbols
// must fit in 16 bits. Inputs beyond those limits need Checked.
type classicFormat struct{}

func (classicFormat) Name() string { return "classic" }

func (classicFormat) Marshal(dst []byte, table *lzwpack.Table, codes []lzwpack.Code) ([]byte, error) {
	n := table.Len()
	if n == 0 {
		return nil, fmt.Errorf("classic layout cannot express an empty table: %w", ErrCapacity)
	}
	if n > 256 {
		return nil, fmt.Errorf("classic layout holds at most 256 table entries, got %d: %w", n, ErrCapacity)
	}
	dst = append(dst, byte(n-1))
	for code, sym := range table.Symbols() {
		if sym > 0xFFFF {
			return nil, fmt.Errorf("symbol %q is outside the classic 16-bit range: %w", sym, ErrCapacity)
		}
		dst = binary.LittleEndian.AppendUint16(dst, uint16(sym))
		dst = append(dst, byte(code))
	}
	for _, c := range codes {
		dst = binary.LittleEndian.AppendUint16(dst, uint16(c))
	}
	return dst, nil
}

func (classicFormat) Unmarshal(data []byte) (*lzwpack.Table, []lzwpack.Code, error) {
	if len(data) == 0 {
		return nil, nil, fmt.Errorf("missing table size: %w", ErrTruncated)
	}
	n := int(data[0]) + 1
	data = data[1:]
	if len(data) < 3*n {
		return nil, nil, fmt.Errorf("table needs %d bytes, have %d: %w", 3*n, len(data), ErrTruncated)
	}

	symbols := make([]rune, n)
	seen := make([]bool, n)
	for i := 0; i < n; i++ {
		sym := rune(binary.LittleEndian.Uint16(data[:2]))
		code := int(data[2])
		data = data[3:]
		if code >= n {
			return nil, nil, fmt.Errorf("table code %d out of range [0,%d): %w", code, n, ErrMalformed)
		}
		if seen[code] {
			return nil, nil, fmt.Errorf("table code %d assigned twice: %w", code, ErrMalformed)
		}
		seen[code] = true
		symbols[code] = sym
	}

	if len(data)%2 != 0 {
		return nil, nil, fmt.Errorf("odd byte left after the code stream: %w", ErrTruncated)
	}
	codes := make([]lzwpack.Code, 0, len(data)/2)
	for len(data) > 0 {
		codes = append(codes, lzwpack.Code(binary.LittleEndian.Uint16(data[:2])))
		data = data[2:]
	}

	table, err := lzwpack.NewTable(symbols)
	if err != nil {
		return nil, nil, fmt.Errorf("%v: %w", err, ErrMalformed)
	}
	return table, codes, nil
}
