package bloomgo

import "unicode/utf16"

// ToCharCodeArray converts text to one byte per UTF-16 code unit, keeping
// only the low byte of each unit.
//
// For ASCII and Latin-1 text this is the obvious per-character byte value.
// Multi-byte code points are not specially encoded: a character outside
// Latin-1 contributes the truncated low bytes of its UTF-16 units. The
// conversion exists so that string and byte-slice forms of the same Latin-1
// text hash identically; it is not a general-purpose text encoding.
func ToCharCodeArray(text string) []byte {
	units := utf16.Encode([]rune(text))
	out := make([]byte, len(units))
	for i, u := range units {
		out[i] = byte(u)
	}
	return out
}
