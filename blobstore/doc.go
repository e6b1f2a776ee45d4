// Package blobstore abstracts the persistence collaborator for bloomgo
// filters: a named-blob store that writes and reads filter buffers verbatim.
//
// The filter's serialized form is its raw bit vector bytes, so a Store has no
// notion of framing, versioning, or filter semantics; it moves opaque bytes.
// Implementations:
//
//   - MemoryStore: in-memory, for tests and ephemeral use
//   - LocalStore: local filesystem with atomic replace on Put
//   - ReplicatedStore: fan-out writes to several stores in parallel
//   - ThrottledStore: rate-limits operations against a shared backend
//   - blobstore/minio: MinIO and other S3-compatible object storage
//   - blobstore/s3: AWS S3, optionally with a DynamoDB commit pointer
//
// All operations take a context and are safe for concurrent use when the
// underlying backend is.
package blobstore
