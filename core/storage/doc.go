// Package storage provides an abstraction layer for the object store that
// holds holiday pack documents.
//
// It wraps the MinIO Go client to provide a simplified interface for the
// operations the pack source and the pack admin feature need. The
// abstraction works against both AWS S3 and self-hosted MinIO instances.
//
// # Client Interface
//
// The Client interface abstracts the underlying storage provider, making it
// easy to mock storage interactions for unit testing (see
// core/storage/mocks).
//
// # Operations
//
//   - BucketExists: Verifies access to the pack bucket.
//   - GetObject: Retrieves a pack document as a stream.
//   - PutObject: Uploads a pack document.
//   - ListObjects: Lists pack documents (supports prefix/recursive).
//   - StatObject: Checks a single pack document's presence.
//   - RemoveObject: Deletes a pack document.
//
// # Usage
//
//	client, err := storage.NewClient(config)
//	exists, err := client.BucketExists(ctx, "holiday-packs")
package storage
