// Package rollhash provides the hash function protocol used by bloomgo
// filters: a family of functions mapping a byte window to a uint64, where an
// implementation may additionally support an O(1)-style rolling update as a
// fixed-width window slides forward by one byte.
//
// All arithmetic is plain uint64 with natural wraparound. Wraparound is lossy,
// but it is consistently lossy across the from-scratch and rolling code paths,
// which is what preserves the Roll/Hash equivalence below.
package rollhash

// Function hashes byte windows. Implementations must be stateless: the same
// inputs always produce the same output, and a single Function may be shared
// across filters and goroutines.
//
// The contract between the two methods is strict equality:
//
//	Roll(Hash(prevWindow), prevWindow[0], window) == Hash(window)
//
// whenever prevWindow and window have the same length n, and
// prevWindow[1:] == window[:n-1]. An implementation that cannot roll may
// simply recompute: `return f.Hash(window)` is a valid Roll.
type Function interface {
	// Hash computes the hash of window from scratch.
	Hash(window []byte) uint64

	// Roll computes the hash of window given prev, the hash of the window
	// one byte earlier, and outgoing, the byte that slid out of its front.
	// window is the new window; its last byte is the newly appended one.
	Roll(prev uint64, outgoing byte, window []byte) uint64
}

// DefaultPrimes parameterize the default three-function family.
var DefaultPrimes = []uint64{11, 17, 23}

// DefaultFamily returns the default family of three independent polynomial
// hash functions. Filters built with the default family are mutually
// compatible for buffer restore.
func DefaultFamily() []Function {
	fns := make([]Function, len(DefaultPrimes))
	for i, p := range DefaultPrimes {
		fns[i] = NewPolynomial(p)
	}
	return fns
}

// NewPolynomial returns a rolling-capable positional polynomial hash
// ("Rabin fingerprint") with the given base prime p:
//
//	Hash(b[0..n)) = b[0]*p^(n-1) + b[1]*p^(n-2) + ... + b[n-1]
//
// The result is not reduced modulo any filter size; callers reduce at lookup
// time.
func NewPolynomial(prime uint64) Function {
	return polynomial{prime: prime}
}

type polynomial struct {
	prime uint64
}

// Hash evaluates the polynomial with Horner's rule.
func (f polynomial) Hash(window []byte) uint64 {
	var h uint64
	for _, b := range window {
		h = h*f.prime + uint64(b)
	}
	return h
}

// Roll removes the outgoing leading term, shifts the remaining terms up one
// power of p, and adds the new trailing byte:
//
//	(prev - outgoing*p^(n-1)) * p + window[n-1]
func (f polynomial) Roll(prev uint64, outgoing byte, window []byte) uint64 {
	n := len(window)
	if n == 0 {
		return 0
	}
	lead := pow(f.prime, uint64(n-1))
	return (prev-uint64(outgoing)*lead)*f.prime + uint64(window[n-1])
}

// pow computes base^exp with uint64 wraparound. Multiplication mod 2^64 is
// associative, so squaring yields the same result as the iterated product the
// from-scratch path effectively computes.
func pow(base, exp uint64) uint64 {
	result := uint64(1)
	for exp > 0 {
		if exp&1 == 1 {
			result *= base
		}
		base *= base
		exp >>= 1
	}
	return result
}
