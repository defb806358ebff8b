package lzwfile

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/akeane/lzwpack"
	"github.com/pierrec/xxHash/xxHash32"
)

var checkedMagic = []byte{'L', 'Z', 'W', '2'}

// checkedFormat widens the classic layout's count fields so the table
// capacity no longer depends on the field width, and guards the whole
// container with a checksum, little-endian throughout:
//
//	4 bytes            magic "LZW2"
//	2 bytes            initial-table entry count (zero allowed)
//	6 bytes per entry  uint32 code point, uint16 code
//	4 bytes            code count
//	2 bytes per code   the compressed stream
//	4 bytes            xxHash32 (seed 0) of everything after the magic
type checkedFormat struct{}

func (checkedFormat) Name() string { return "checked" }

func (checkedFormat) Marshal(dst []byte, table *lzwpack.Table, codes []lzwpack.Code) ([]byte, error) {
	n := table.Len()
	if n > 0xFFFF {
		return nil, fmt.Errorf("checked layout holds at most %d table entries, got %d: %w", 0xFFFF, n, ErrCapacity)
	}

	dst = append(dst, checkedMagic...)
	body := len(dst)
	dst = binary.LittleEndian.AppendUint16(dst, uint16(n))
	for code, sym := range table.Symbols() {
		dst = binary.LittleEndian.AppendUint32(dst, uint32(sym))
		dst = binary.LittleEndian.AppendUint16(dst, uint16(code))
	}
	dst = binary.LittleEndian.AppendUint32(dst, uint32(len(codes)))
	for _, c := range codes {
		dst = binary.LittleEndian.AppendUint16(dst, uint16(c))
	}
	dst = binary.LittleEndian.AppendUint32(dst, xxHash32.Checksum(dst[body:], 0))
	return dst, nil
}

func (checkedFormat) Unmarshal(data []byte) (*lzwpack.Table, []lzwpack.Code, error) {
	// Shortest possible container: magic, zero entries, zero codes, checksum.
	if len(data) < len(checkedMagic)+2+4+4 {
		return nil, nil, fmt.Errorf("%d bytes is shorter than an empty container: %w", len(data), ErrTruncated)
	}
	if !bytes.Equal(data[:len(checkedMagic)], checkedMagic) {
		return nil, nil, fmt.Errorf("bad magic %q: %w", data[:len(checkedMagic)], ErrMalformed)
	}

	body := data[len(checkedMagic) : len(data)-4]
	want := binary.LittleEndian.Uint32(data[len(data)-4:])
	if got := xxHash32.Checksum(body, 0); got != want {
		return nil, nil, fmt.Errorf("xxh32 %08x, want %08x: %w", got, want, ErrChecksum)
	}

	n := int(binary.LittleEndian.Uint16(body))
	body = body[2:]
	if len(body) < 6*n {
		return nil, nil, fmt.Errorf("table needs %d bytes, have %d: %w", 6*n, len(body), ErrTruncated)
	}
	symbols := make([]rune, n)
	seen := make([]bool, n)
	for i := 0; i < n; i++ {
		sym := rune(binary.LittleEndian.Uint32(body[:4]))
		code := int(binary.LittleEndian.Uint16(body[4:6]))
		body = body[6:]
		if code >= n {
			return nil, nil, fmt.Errorf("table code %d out of range [0,%d): %w", code, n, ErrMalformed)
		}
		if seen[code] {
			return nil, nil, fmt.Errorf("table code %d assigned twice: %w", code, ErrMalformed)
		}
		seen[code] = true
		symbols[code] = sym
	}

	if len(body) < 4 {
		return nil, nil, fmt.Errorf("missing code count: %w", ErrTruncated)
	}
	count := int(binary.LittleEndian.Uint32(body))
	body = body[4:]
	if len(body) != 2*count {
		return nil, nil, fmt.Errorf("code count %d but %d bytes of codes: %w", count, len(body), ErrMalformed)
	}
	codes := make([]lzwpack.Code, 0, count)
	for len(body) > 0 {
		codes = append(codes, lzwpack.Code(binary.LittleEndian.Uint16(body[:2])))
		body = body[2:]
	}

	table, err := lzwpack.NewTable(symbols)
	if err != nil {
		return nil, nil, fmt.Errorf("%v: %w", err, ErrMalformed)
	}
	return table, codes, nil
}
