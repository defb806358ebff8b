// The lzwpack package implements LZW dictionary compression with an
// explicit initial string table.
//
// Most LZW variants seed the dictionary with all 256 byte values and
// assume the decoder does the same. This package instead derives the
// initial table from the distinct symbols of the input, freezes it,
// and persists it alongside the code stream (see the lzwfile package
// for the on-disk layouts). The code space starts as small as the
// alphabet actually used, and the decoder rebuilds the working
// dictionary from the persisted table plus the codes alone.
//
// Encode and Decode are pure in-memory transformations; each call owns
// its own working table, so values returned by one call never alias
// state used by another.
package lzwpack

import "errors"

// A Code identifies one dictionary entry. Codes are dense, starting at
// 0 for the initial table and growing by one for each string the
// working table learns.
type Code uint16

// MaxTableSize is the number of codes available to a working table.
// Once a table holds this many entries it is frozen and coding
// continues read-only against it.
const MaxTableSize = 1 << 16

var (
	// ErrCorrupt is returned by Decode when a code is neither a known
	// table entry nor the single not-yet-defined code the encoder may
	// legally be ahead by.
	ErrCorrupt = errors.New("lzwpack: corrupt code stream")

	// ErrAlphabetTooLarge is returned when an input contains more
	// distinct symbols than the code space can hold.
	ErrAlphabetTooLarge = errors.New("lzwpack: alphabet exceeds code space")
)
