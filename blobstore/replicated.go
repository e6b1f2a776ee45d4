package blobstore

import (
	"bytes"
	"context"
	"errors"

	"golang.org/x/sync/errgroup"
)

// ReplicatedStore fans writes out to several stores in parallel and serves
// reads from the first store that has the blob.
//
// It is intended for keeping filter snapshots on more than one backend, e.g.
// local disk plus object storage. Writes succeed only if every replica
// succeeds; reads fall through replicas in order.
type ReplicatedStore struct {
	replicas []Store
}

// NewReplicatedStore creates a ReplicatedStore over the given replicas,
// which must be non-empty. The first replica is the preferred read source.
func NewReplicatedStore(replicas ...Store) (*ReplicatedStore, error) {
	if len(replicas) == 0 {
		return nil, errors.New("blobstore: at least one replica required")
	}
	return &ReplicatedStore{replicas: replicas}, nil
}

// Open opens the blob from the first replica that has it.
func (s *ReplicatedStore) Open(ctx context.Context, name string) (Blob, error) {
	var lastErr error
	for _, r := range s.replicas {
		blob, err := r.Open(ctx, name)
		if err == nil {
			return blob, nil
		}
		lastErr = err
		if !errors.Is(err, ErrNotFound) {
			return nil, err
		}
	}
	return nil, lastErr
}

// Create buffers writes and replicates them on Close.
func (s *ReplicatedStore) Create(_ context.Context, name string) (WritableBlob, error) {
	return &replicatedWritableBlob{store: s, name: name}, nil
}

// Put writes the blob to every replica in parallel. The write fails if any
// replica fails; replicas that already succeeded keep the new content.
func (s *ReplicatedStore) Put(ctx context.Context, name string, data []byte) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, r := range s.replicas {
		r := r
		g.Go(func() error {
			return r.Put(ctx, name, data)
		})
	}
	return g.Wait()
}

// Delete removes the blob from every replica in parallel.
func (s *ReplicatedStore) Delete(ctx context.Context, name string) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, r := range s.replicas {
		r := r
		g.Go(func() error {
			return r.Delete(ctx, name)
		})
	}
	return g.Wait()
}

// List lists from the preferred replica.
func (s *ReplicatedStore) List(ctx context.Context, prefix string) ([]string, error) {
	return s.replicas[0].List(ctx, prefix)
}

type replicatedWritableBlob struct {
	store *ReplicatedStore
	name  string
	buf   bytes.Buffer
}

func (w *replicatedWritableBlob) Write(p []byte) (int, error) {
	return w.buf.Write(p)
}

func (w *replicatedWritableBlob) Sync() error {
	return nil
}

func (w *replicatedWritableBlob) Close() error {
	return w.store.Put(context.Background(), w.name, w.buf.Bytes())
}
