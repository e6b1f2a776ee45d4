package blobstore

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

// failingStore fails every write, for exercising replica error paths.
type failingStore struct {
	*MemoryStore
	err error
}

func (f *failingStore) Put(_ context.Context, _ string, _ []byte) error {
	return f.err
}

func (f *failingStore) Delete(_ context.Context, _ string) error {
	return f.err
}

func TestReplicatedStoreRequiresReplicas(t *testing.T) {
	_, err := NewReplicatedStore()
	require.Error(t, err)
}

func TestReplicatedStorePutFansOut(t *testing.T) {
	ctx := context.Background()
	a, b := NewMemoryStore(), NewMemoryStore()
	store, err := NewReplicatedStore(a, b)
	require.NoError(t, err)

	require.NoError(t, store.Put(ctx, "snap", []byte("data")))

	for _, replica := range []Store{a, b} {
		data, err := ReadAll(ctx, replica, "snap")
		require.NoError(t, err)
		require.Equal(t, []byte("data"), data)
	}
}

func TestReplicatedStoreOpenFallsThrough(t *testing.T) {
	ctx := context.Background()
	a, b := NewMemoryStore(), NewMemoryStore()
	store, err := NewReplicatedStore(a, b)
	require.NoError(t, err)

	// Present only on the second replica.
	require.NoError(t, b.Put(ctx, "only-b", []byte("data")))

	data, err := ReadAll(ctx, store, "only-b")
	require.NoError(t, err)
	require.Equal(t, []byte("data"), data)

	_, err = store.Open(ctx, "nowhere")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestReplicatedStorePartialFailure(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("replica down")
	a := NewMemoryStore()
	b := &failingStore{MemoryStore: NewMemoryStore(), err: boom}
	store, err := NewReplicatedStore(a, b)
	require.NoError(t, err)

	err = store.Put(ctx, "snap", []byte("data"))
	require.ErrorIs(t, err, boom)

	err = store.Delete(ctx, "snap")
	require.ErrorIs(t, err, boom)
}

func TestReplicatedStoreCreateReplicatesOnClose(t *testing.T) {
	ctx := context.Background()
	a, b := NewMemoryStore(), NewMemoryStore()
	store, err := NewReplicatedStore(a, b)
	require.NoError(t, err)

	w, err := store.Create(ctx, "streamed")
	require.NoError(t, err)
	_, err = w.Write([]byte("chunk"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	for _, replica := range []Store{a, b} {
		data, err := ReadAll(ctx, replica, "streamed")
		require.NoError(t, err)
		require.Equal(t, []byte("chunk"), data)
	}
}

func TestReplicatedStoreDeleteAndList(t *testing.T) {
	ctx := context.Background()
	a, b := NewMemoryStore(), NewMemoryStore()
	store, err := NewReplicatedStore(a, b)
	require.NoError(t, err)

	require.NoError(t, store.Put(ctx, "x", []byte("1")))
	require.NoError(t, store.Put(ctx, "y", []byte("2")))

	names, err := store.List(ctx, "")
	require.NoError(t, err)
	require.Equal(t, []string{"x", "y"}, names)

	require.NoError(t, store.Delete(ctx, "x"))
	for _, replica := range []Store{a, b} {
		_, err := replica.Open(ctx, "x")
		require.ErrorIs(t, err, ErrNotFound)
	}
}
