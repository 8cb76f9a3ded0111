// Package storage provides the low-level object storage client.
//
// It wraps the MinIO Go client behind the Client interface so the file store and
// HTTP features can be tested against core/storage/mocks. The same client works
// against AWS S3 and self-hosted MinIO.
//
// # Operations
//
//   - BucketExists / MakeBucket: bucket lifecycle used by Save.
//   - PutObject: uploads content with size and content type.
//   - GetObject: opens an object; missing keys fail at open time.
//   - StatObject: metadata only (size, content type).
//   - ListObjects / RemoveObject: listing and deletion.
//
// IsNotFound classifies NoSuchKey and NoSuchBucket responses.
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	info, err := client.StatObject(ctx, "media", "photos/cat.png", minio.StatObjectOptions{})
package storage
