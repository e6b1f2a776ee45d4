// Package snapshot persists bloomgo filters through a blobstore.Store.
//
// The filter's serialized form is the raw bytes of its bit vector; by default
// Save stores exactly those bytes and Load hands them back to bloomgo.From
// untouched. Optional at-rest compression wraps the bytes in an LZ4 frame or
// a zstd stream. Both are self-describing formats, so no custom framing is
// added; the caller chooses the same compression for Save and Load, the same
// way the hash function family is agreed out-of-band.
package snapshot

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/hupe1980/bloomgo"
	"github.com/hupe1980/bloomgo/blobstore"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Compression selects the at-rest encoding of a snapshot.
type Compression uint8

const (
	// CompressionNone stores the filter buffer verbatim. The blob length is
	// the buffer length, so the bit count survives the round trip untouched.
	CompressionNone Compression = iota

	// CompressionLZ4 wraps the buffer in an LZ4 frame (fast, modest ratio).
	CompressionLZ4

	// CompressionZSTD wraps the buffer in a zstd stream (better ratio).
	// Sparse filters compress extremely well.
	CompressionZSTD
)

// Options configure Save and Load.
type Options struct {
	// Compression is the at-rest encoding. Save and Load must agree.
	Compression Compression

	// FilterOptions are passed through to bloomgo.From on Load, e.g.
	// bloomgo.WithHashFunctions for filters written with a non-default
	// family. Ignored by Save.
	FilterOptions []bloomgo.Option
}

// Save writes the filter's buffer to the named blob.
func Save(ctx context.Context, store blobstore.Store, name string, filter *bloomgo.BloomFilter, optFns ...func(*Options)) error {
	var o Options
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}

	data, err := encode(filter.Bytes(), o.Compression)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	if err := store.Put(ctx, name, data); err != nil {
		return fmt.Errorf("put snapshot %q: %w", name, err)
	}
	return nil
}

// Load reads the named blob and restores a filter from it.
//
// The restored filter uses the default hash family unless Options
// FilterOptions say otherwise; the family must match the one the snapshot
// was written with.
func Load(ctx context.Context, store blobstore.Store, name string, optFns ...func(*Options)) (*bloomgo.BloomFilter, error) {
	var o Options
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}

	data, err := blobstore.ReadAll(ctx, store, name)
	if err != nil {
		return nil, fmt.Errorf("read snapshot %q: %w", name, err)
	}
	buf, err := decode(data, o.Compression)
	if err != nil {
		return nil, fmt.Errorf("decode snapshot %q: %w", name, err)
	}
	return bloomgo.From(buf, o.FilterOptions...)
}

func encode(buf []byte, c Compression) ([]byte, error) {
	switch c {
	case CompressionNone:
		return buf, nil

	case CompressionLZ4:
		var out bytes.Buffer
		zw := lz4.NewWriter(&out)
		if _, err := zw.Write(buf); err != nil {
			return nil, err
		}
		if err := zw.Close(); err != nil {
			return nil, err
		}
		return out.Bytes(), nil

	case CompressionZSTD:
		enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
		if err != nil {
			return nil, err
		}
		out := enc.EncodeAll(buf, nil)
		if err := enc.Close(); err != nil {
			return nil, err
		}
		return out, nil

	default:
		return nil, fmt.Errorf("unknown compression: %d", c)
	}
}

func decode(data []byte, c Compression) ([]byte, error) {
	switch c {
	case CompressionNone:
		return data, nil

	case CompressionLZ4:
		zr := lz4.NewReader(bytes.NewReader(data))
		return io.ReadAll(zr)

	case CompressionZSTD:
		dec, err := zstd.NewReader(nil)
		if err != nil {
			return nil, err
		}
		defer dec.Close()
		return dec.DecodeAll(data, nil)

	default:
		return nil, fmt.Errorf("unknown compression: %d", c)
	}
}
