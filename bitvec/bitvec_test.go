package bitvec

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSetAndIsSet(t *testing.T) {
	buf := make([]byte, 4) // 32 bits

	for pos := uint64(0); pos < 32; pos++ {
		require.False(t, IsSet(buf, pos))
	}

	for pos := uint64(0); pos < 32; pos++ {
		fresh := make([]byte, 4)
		Set(fresh, pos)

		for other := uint64(0); other < 32; other++ {
			if other == pos {
				require.True(t, IsSet(fresh, other), "bit %d should be set", pos)
			} else {
				require.False(t, IsSet(fresh, other), "bit %d leaked onto bit %d", pos, other)
			}
		}
	}
}

func TestSetIsIdempotent(t *testing.T) {
	buf := make([]byte, 2)
	Set(buf, 9)
	Set(buf, 9)
	require.True(t, IsSet(buf, 9))
	require.Equal(t, []byte{0x00, 0x02}, buf)
}

func TestBitNumberingLSB0(t *testing.T) {
	buf := make([]byte, 2)

	// Bit 0 is the least-significant bit of byte 0.
	Set(buf, 0)
	require.Equal(t, byte(0x01), buf[0])

	// Bit 7 is the most-significant bit of byte 0.
	Set(buf, 7)
	require.Equal(t, byte(0x81), buf[0])

	// Bit 8 starts byte 1.
	Set(buf, 8)
	require.Equal(t, byte(0x01), buf[1])
}

func TestBytesLen(t *testing.T) {
	require.Equal(t, uint64(0), BytesLen(0))
	require.Equal(t, uint64(1), BytesLen(1))
	require.Equal(t, uint64(1), BytesLen(8))
	require.Equal(t, uint64(2), BytesLen(9))
	require.Equal(t, uint64(62500), BytesLen(500000))
}

func TestVectorNew(t *testing.T) {
	v := New(20)
	require.Equal(t, uint64(20), v.Bits())
	require.Equal(t, 3, v.Len())
	require.Equal(t, uint64(0), v.PopCount())

	v.Set(13)
	require.True(t, v.IsSet(13))
	require.False(t, v.IsSet(12))
	require.False(t, v.IsSet(14))
	require.Equal(t, uint64(1), v.PopCount())
}

func TestVectorFromBytesCopies(t *testing.T) {
	src := []byte{0xFF, 0x00}
	v := FromBytes(src)
	require.Equal(t, uint64(16), v.Bits())

	// Mutating the source must not affect the vector.
	src[1] = 0xFF
	require.False(t, v.IsSet(8))

	// Mutating the exported bytes must not affect the vector.
	out := v.Bytes()
	out[0] = 0x00
	require.True(t, v.IsSet(0))
}

func TestVectorPopCount(t *testing.T) {
	v := FromBytes([]byte{0xFF, 0x0F, 0x00})
	require.Equal(t, uint64(12), v.PopCount())
}
