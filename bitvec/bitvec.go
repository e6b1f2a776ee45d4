// Package bitvec provides a fixed-size packed bit array backed by a byte buffer.
//
// Bit numbering is LSB0: bit i lives at byte i/8, and within that byte it is
// the least-significant bit shifted left by i%8. The free functions Set and
// IsSet operate on any caller-supplied buffer; Vector wraps a buffer with a
// fixed bit count decided at construction.
//
// Neither the free functions nor Vector range-check positions beyond normal
// slice indexing. Callers are expected to have reduced positions into
// [0, bit count) already; the bloomgo filter always does so via modulo on the
// hash output.
package bitvec

import "math/bits"

// Set marks bit pos as 1 in buf. Setting an already-set bit is a no-op.
func Set(buf []byte, pos uint64) {
	buf[pos>>3] |= 1 << (pos & 7)
}

// IsSet reports whether bit pos is 1 in buf.
func IsSet(buf []byte, pos uint64) bool {
	return buf[pos>>3]&(1<<(pos&7)) != 0
}

// BytesLen returns the buffer length required for bits bits: ceil(bits/8).
func BytesLen(bits uint64) uint64 {
	return (bits + 7) / 8
}

// Vector is a fixed-size bit array. The bit count is fixed at construction
// and the vector never shrinks. Bits are only ever set, never cleared.
//
// Vector is not safe for concurrent mutation; see the bloomgo package docs
// for the single-writer contract.
type Vector struct {
	buf  []byte
	bits uint64
}

// New creates a zeroed Vector holding the given number of bits.
func New(bits uint64) *Vector {
	return &Vector{
		buf:  make([]byte, BytesLen(bits)),
		bits: bits,
	}
}

// FromBytes creates a Vector that adopts a copy of buf. The bit count is
// len(buf)*8; the caller's slice is never aliased.
func FromBytes(buf []byte) *Vector {
	copied := make([]byte, len(buf))
	copy(copied, buf)
	return &Vector{
		buf:  copied,
		bits: uint64(len(buf)) * 8,
	}
}

// Set marks bit pos as 1.
func (v *Vector) Set(pos uint64) {
	Set(v.buf, pos)
}

// IsSet reports whether bit pos is 1.
func (v *Vector) IsSet(pos uint64) bool {
	return IsSet(v.buf, pos)
}

// Bits returns the fixed bit count.
func (v *Vector) Bits() uint64 {
	return v.bits
}

// Len returns the byte length of the backing buffer.
func (v *Vector) Len() int {
	return len(v.buf)
}

// Bytes returns a copy of the backing buffer. Mutating the returned slice
// does not affect the vector.
func (v *Vector) Bytes() []byte {
	out := make([]byte, len(v.buf))
	copy(out, v.buf)
	return out
}

// PopCount returns the number of set bits.
func (v *Vector) PopCount() uint64 {
	var n uint64
	for _, b := range v.buf {
		n += uint64(bits.OnesCount8(b))
	}
	return n
}
