// Package s3 provides an AWS S3 implementation of blobstore.Store.
//
// # Usage
//
//	store, err := s3blob.NewDefault(ctx, "my-bucket", "filters/")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	err = snapshot.Save(ctx, store, "allowlist.bloom", filter)
//
// # Features
//
//   - Range reads for partial fetches
//   - Streaming multipart uploads via the S3 upload manager
//   - Automatic pagination for listing
//   - Configurable prefix for multi-tenant isolation
//   - Optional DynamoDB commit pointer for versioned snapshots
//     (see DDBCommitStore)
package s3
