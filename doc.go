// Package bloomgo provides an embeddable Bloom filter for Go.
//
// A Bloom filter is a probabilistic set-membership structure over byte
// sequences: membership queries never produce false negatives, and may
// produce false positives at a rate tunable via sizing. On top of plain
// membership, bloomgo offers a sliding-window substring query driven by a
// rolling hash, answering "does any window of exactly n bytes test positive"
// in a single amortized pass.
//
// # Quick Start
//
// Create a filter, add entries, query membership:
//
//	f, _ := bloomgo.New(10, 50000) // ~1% false positives at capacity
//	f.AddString("hello")
//	f.AddString("world")
//
//	f.ExistsString("hello")                  // true
//	f.ExistsString("goodbye")                // false (almost certainly)
//	f.SubstringExistsString("say hello!", 5) // true: contains "hello"
//
// # Sizing
//
// New(bitsPerElement, estimatedElementCount) allocates
// bitsPerElement*estimatedElementCount bits. With the default three-function
// hash family, 10 bits per element yields roughly a 1% false-positive rate at
// capacity. Overloading a filter degrades it gracefully: queries never turn
// false-negative, they just false-positive more often.
//
// # Persistence
//
// The filter serializes to the raw bytes of its bit vector and nothing else:
//
//	buf := f.Bytes()
//	g, _ := bloomgo.From(buf)
//
// There is no framing, length header, or checksum; the byte count itself
// encodes the bit count. The hash function family is deliberately not
// serialized: a filter restored with a different family than the one that
// produced the buffer answers garbage. Agreeing on the family is the caller's
// obligation, out-of-band. The blobstore and snapshot packages provide
// store/load collaborators (memory, local disk, MinIO, S3) that persist the
// buffer verbatim.
//
// # Concurrency
//
// Exists, SubstringExists, Locations, Bytes and Stats are safe to call
// concurrently with each other. Add mutates the shared bit vector without
// locking and must be externally serialized against all other calls.
//
// # Non-goals
//
// Element removal (it would reintroduce false negatives), counting variants,
// and cryptographic hashing are out of scope.
package bloomgo
