package bloomgo

import (
	"fmt"
	"math"
	"time"

	"github.com/hupe1980/bloomgo/bitvec"
	"github.com/hupe1980/bloomgo/rollhash"
)

const (
	// DefaultBitsPerElement is the sizing default: ~10 bits per element gives
	// roughly a 1% false-positive rate at capacity with the default family.
	DefaultBitsPerElement = 10

	// DefaultEstimatedElementCount is the sizing default for the expected
	// number of additions.
	DefaultEstimatedElementCount = 50000
)

// BloomFilter is a probabilistic membership set over byte sequences.
//
// A filter owns exactly one bit vector and an ordered list of hash functions.
// Add only ever sets bits and no operation clears one, which is what
// guarantees zero false negatives. See the package documentation for the
// concurrency contract.
type BloomFilter struct {
	vec     *bitvec.Vector
	hashFns []rollhash.Function
	logger  *Logger
	metrics MetricsCollector
}

// New creates a filter sized to bitsPerElement * estimatedElementCount bits.
//
// Both arguments must be positive; otherwise ErrInvalidConstructorArguments
// is returned. The hash family defaults to rollhash.DefaultFamily and can be
// replaced with WithHashFunctions.
func New(bitsPerElement, estimatedElementCount int, optFns ...Option) (*BloomFilter, error) {
	if bitsPerElement <= 0 || estimatedElementCount <= 0 {
		return nil, fmt.Errorf("%w: bitsPerElement=%d, estimatedElementCount=%d",
			ErrInvalidConstructorArguments, bitsPerElement, estimatedElementCount)
	}

	o, err := applyOptions(optFns)
	if err != nil {
		return nil, err
	}

	bits := uint64(bitsPerElement) * uint64(estimatedElementCount)

	f := &BloomFilter{
		vec:     bitvec.New(bits),
		hashFns: o.hashFns,
		logger:  o.logger,
		metrics: o.metrics,
	}
	f.logger.LogCreate(bits, len(f.hashFns))
	return f, nil
}

// From restores a filter from a previously serialized buffer. The buffer is
// copied, never aliased, and the bit count is len(buf)*8.
//
// The hash family must be identical in count, order and behavior to the
// filter that produced buf, or membership results will be meaningless. That
// is a caller obligation; it is not (and cannot be) enforced here.
func From(buf []byte, optFns ...Option) (*BloomFilter, error) {
	if len(buf) == 0 {
		return nil, fmt.Errorf("%w: empty restore buffer", ErrInvalidConstructorArguments)
	}

	o, err := applyOptions(optFns)
	if err != nil {
		return nil, err
	}

	f := &BloomFilter{
		vec:     bitvec.FromBytes(buf),
		hashFns: o.hashFns,
		logger:  o.logger,
		metrics: o.metrics,
	}
	f.logger.LogCreate(f.vec.Bits(), len(f.hashFns))
	return f, nil
}

// Bits returns the fixed bit count of the underlying bit vector.
func (f *BloomFilter) Bits() uint64 {
	return f.vec.Bits()
}

// Locations evaluates every hash function against data and returns one bit
// position per function, each reduced modulo the filter's bit count.
// Duplicates are possible and meaningful: if two functions collide, the bit
// is simply not strengthened twice.
func (f *BloomFilter) Locations(data []byte) []uint64 {
	locations := make([]uint64, len(f.hashFns))
	for i, fn := range f.hashFns {
		locations[i] = fn.Hash(data) % f.vec.Bits()
	}
	return locations
}

// Add inserts data into the filter. Adding an element twice is a no-op.
func (f *BloomFilter) Add(data []byte) {
	start := time.Now()
	for _, pos := range f.Locations(data) {
		f.vec.Set(pos)
	}
	f.metrics.RecordAdd(time.Since(start))
	f.logger.LogAdd(len(data))
}

// AddString inserts the char-code bytes of s; see ToCharCodeArray.
func (f *BloomFilter) AddString(s string) {
	f.Add(ToCharCodeArray(s))
}

// Exists reports whether data is probably in the set. A false return is
// definitive; a true return may be a false positive, with a probability that
// grows with the filter's load factor.
func (f *BloomFilter) Exists(data []byte) bool {
	start := time.Now()
	hit := true
	for _, pos := range f.Locations(data) {
		if !f.vec.IsSet(pos) {
			hit = false
			break
		}
	}
	f.metrics.RecordExists(time.Since(start), hit)
	return hit
}

// ExistsString reports membership of the char-code bytes of s.
func (f *BloomFilter) ExistsString(s string) bool {
	return f.Exists(ToCharCodeArray(s))
}

// SubstringExists reports whether any contiguous window of exactly
// substringLength bytes within data would individually test positive.
//
// The first window is hashed from scratch; every following window reuses the
// previous window's per-function hashes via the rolling update, so the scan
// is amortized O(len(data)) rather than O(len(data)*substringLength). The
// scan short-circuits on the first matching window.
//
// If substringLength exceeds len(data) or is not positive, the scan performs
// zero iterations and the result is false.
func (f *BloomFilter) SubstringExists(data []byte, substringLength int) bool {
	start := time.Now()
	hit, windows := f.scanSubstrings(data, substringLength)
	f.metrics.RecordSubstringScan(windows, time.Since(start), hit)
	f.logger.LogSubstringScan(len(data), substringLength, windows, hit)
	return hit
}

// SubstringExistsString scans the char-code bytes of s; see SubstringExists.
func (f *BloomFilter) SubstringExistsString(s string, substringLength int) bool {
	return f.SubstringExists(ToCharCodeArray(s), substringLength)
}

func (f *BloomFilter) scanSubstrings(data []byte, n int) (hit bool, windows int) {
	if n <= 0 || n > len(data) {
		return false, 0
	}

	hashes := make([]uint64, len(f.hashFns))
	for i := 0; i+n <= len(data); i++ {
		window := data[i : i+n]
		if i == 0 {
			for j, fn := range f.hashFns {
				hashes[j] = fn.Hash(window)
			}
		} else {
			outgoing := data[i-1]
			for j, fn := range f.hashFns {
				hashes[j] = fn.Roll(hashes[j], outgoing, window)
			}
		}

		if f.testHashes(hashes) {
			return true, i + 1
		}
	}
	return false, len(data) - n + 1
}

// testHashes reduces each unreduced hash modulo the bit count and tests the
// corresponding bit, exactly as Exists does.
func (f *BloomFilter) testHashes(hashes []uint64) bool {
	for _, h := range hashes {
		if !f.vec.IsSet(h % f.vec.Bits()) {
			return false
		}
	}
	return true
}

// Bytes returns a copy of the underlying byte buffer. This is the filter's
// entire serialized form: no framing, no checksum, no hash family identity.
func (f *BloomFilter) Bytes() []byte {
	return f.vec.Bytes()
}

// MarshalBinary implements encoding.BinaryMarshaler. The encoding is the
// identity copy of the bit vector buffer.
func (f *BloomFilter) MarshalBinary() ([]byte, error) {
	return f.Bytes(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler. The filter adopts a
// copy of buf and keeps its current hash family, which must match the family
// that produced buf.
func (f *BloomFilter) UnmarshalBinary(buf []byte) error {
	if len(buf) == 0 {
		return fmt.Errorf("%w: empty restore buffer", ErrInvalidConstructorArguments)
	}
	f.vec = bitvec.FromBytes(buf)
	return nil
}

// Stats is a point-in-time snapshot of filter occupancy.
type Stats struct {
	// Bits is the fixed bit count.
	Bits uint64
	// SetBits is the number of bits currently set.
	SetBits uint64
	// LoadFactor is SetBits/Bits.
	LoadFactor float64
	// FalsePositiveRate estimates the probability that Exists reports true
	// for an element never added, at the current load: LoadFactor^k for k
	// hash functions.
	FalsePositiveRate float64
	// HashFunctions is the size of the hash family.
	HashFunctions int
}

// Stats returns a snapshot of the filter's occupancy. It walks the whole
// buffer; treat it as a diagnostic, not a hot-path call.
func (f *BloomFilter) Stats() Stats {
	set := f.vec.PopCount()
	load := float64(set) / float64(f.vec.Bits())
	return Stats{
		Bits:              f.vec.Bits(),
		SetBits:           set,
		LoadFactor:        load,
		FalsePositiveRate: math.Pow(load, float64(len(f.hashFns))),
		HashFunctions:     len(f.hashFns),
	}
}
