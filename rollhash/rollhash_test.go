package rollhash

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// testData produces deterministic pseudo-random bytes.
func testData(n int) []byte {
	data := make([]byte, n)
	state := uint32(0x2545F491)
	for i := range data {
		state ^= state << 13
		state ^= state >> 17
		state ^= state << 5
		data[i] = byte(state)
	}
	return data
}

func TestPolynomialHashKnownValues(t *testing.T) {
	f := NewPolynomial(11)

	require.Equal(t, uint64(0), f.Hash(nil))
	require.Equal(t, uint64(7), f.Hash([]byte{7}))

	// 2*11 + 3
	require.Equal(t, uint64(25), f.Hash([]byte{2, 3}))

	// 1*11^2 + 2*11 + 3
	require.Equal(t, uint64(146), f.Hash([]byte{1, 2, 3}))
}

func TestRollEqualsHashFromScratch(t *testing.T) {
	data := testData(256)

	for _, prime := range DefaultPrimes {
		f := NewPolynomial(prime)

		for _, window := range []int{1, 2, 3, 5, 8, 16, 31, 64} {
			prev := f.Hash(data[:window])
			for i := 1; i+window <= len(data); i++ {
				w := data[i : i+window]
				rolled := f.Roll(prev, data[i-1], w)
				require.Equal(t, f.Hash(w), rolled,
					"prime=%d window=%d offset=%d", prime, window, i)
				prev = rolled
			}
		}
	}
}

// Long windows overflow uint64; wraparound must stay consistent between the
// rolling and from-scratch paths.
func TestRollConsistentUnderWraparound(t *testing.T) {
	data := testData(512)
	f := NewPolynomial(23)

	window := 200 // 23^199 wraps many times over
	prev := f.Hash(data[:window])
	for i := 1; i+window <= len(data); i++ {
		w := data[i : i+window]
		rolled := f.Roll(prev, data[i-1], w)
		require.Equal(t, f.Hash(w), rolled, "offset=%d", i)
		prev = rolled
	}
}

func TestRollEmptyWindow(t *testing.T) {
	f := NewPolynomial(17)
	require.Equal(t, uint64(0), f.Roll(12345, 7, nil))
}

func TestDefaultFamily(t *testing.T) {
	fns := DefaultFamily()
	require.Len(t, fns, 3)

	// The functions are independent: a nontrivial input hashes differently
	// under each prime.
	in := []byte("abc")
	seen := map[uint64]bool{}
	for _, fn := range fns {
		seen[fn.Hash(in)] = true
	}
	require.Len(t, seen, 3)

	// Two families are mutually compatible.
	other := DefaultFamily()
	for i := range fns {
		require.Equal(t, fns[i].Hash(in), other[i].Hash(in))
	}
}

// recomputing is a Function that ignores the rolling parameters, which the
// protocol explicitly allows.
type recomputing struct {
	inner Function
}

func (r recomputing) Hash(window []byte) uint64 { return r.inner.Hash(window) }
func (r recomputing) Roll(_ uint64, _ byte, window []byte) uint64 {
	return r.inner.Hash(window)
}

func TestRecomputingFunctionSatisfiesProtocol(t *testing.T) {
	data := testData(64)
	f := recomputing{inner: NewPolynomial(11)}
	g := NewPolynomial(11)

	window := 8
	prevF := f.Hash(data[:window])
	prevG := g.Hash(data[:window])
	for i := 1; i+window <= len(data); i++ {
		w := data[i : i+window]
		prevF = f.Roll(prevF, data[i-1], w)
		prevG = g.Roll(prevG, data[i-1], w)
		require.Equal(t, prevG, prevF)
	}
}
