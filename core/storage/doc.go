// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client behind a small Client interface so the
// backup archive can run against AWS S3 or a self-hosted MinIO instance,
// and so tests can mock storage interactions (see core/storage/mocks).
//
// # Operations
//
//   - BucketExists / MakeBucket: Verify or create the archive bucket.
//   - PutObject: Upload content (with size and options).
//   - GetObject: Retrieve content as a stream.
//   - ListObjects: List objects under a prefix.
//   - RemoveObject: Delete a single object (archive pruning).
//
// # Usage
//
//	client, err := storage.NewClient(config)
//	exists, err := client.BucketExists(ctx, "gradevault")
package storage
