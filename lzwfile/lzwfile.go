// Package lzwfile defines the binary container layouts for persisted
// LZW output. A container holds the frozen initial table followed by
// the 16-bit code stream; the decoder needs both to rebuild the
// working dictionary.
//
// Two layouts exist. Classic is the original format: a 1-byte entry
// count, so it caps the initial table at 256 symbols even though the
// code stream itself is 16-bit. Checked widens the count fields so
// they are independent of the code width and appends an xxHash32
// integrity checksum. Detect tells the two apart when reading.
package lzwfile

import (
	"bytes"
	"errors"

	"github.com/akeane/lzwpack"
)

var (
	// ErrTruncated is returned when data ends in the middle of a field.
	ErrTruncated = errors.New("lzwfile: truncated data")

	// ErrMalformed is returned when a field holds a value the layout
	// does not allow, such as a duplicate table code.
	ErrMalformed = errors.New("lzwfile: malformed data")

	// ErrChecksum is returned when a checked container fails its
	// integrity check.
	ErrChecksum = errors.New("lzwfile: checksum mismatch")

	// ErrCapacity is returned by Marshal when a table does not fit the
	// layout's fixed-width fields.
	ErrCapacity = errors.New("lzwfile: value does not fit format field")
)

// A Format is one binary layout for a (table, codes) pair.
type Format interface {
	// Name identifies the layout in diagnostics.
	Name() string

	// Marshal appends the serialized form of table and codes to dst
	// and returns dst.
	Marshal(dst []byte, table *lzwpack.Table, codes []lzwpack.Code) ([]byte, error)

	// Unmarshal parses a whole container back into its table and
	// code stream.
	Unmarshal(data []byte) (*lzwpack.Table, []lzwpack.Code, error)
}

var (
	// Classic is the original 1-byte-count layout.
	Classic Format = classicFormat{}

	// Checked is the widened layout with an integrity checksum.
	Checked Format = checkedFormat{}
)

// Detect returns the Format that data appears to use: Checked when its
// magic word is present, otherwise Classic (which has no signature).
func Detect(data []byte) Format {
	if len(data) >= len(checkedMagic) && bytes.Equal(data[:len(checkedMagic)], checkedMagic) {
		return Checked
	}
	return Classic
}
