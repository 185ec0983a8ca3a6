package backup

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"gradevault/core/reconcile"
	"gradevault/core/storage"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// keepArchives is how many pre-restore archives are retained per owner.
const keepArchives = 5

// archiveTimeFormat keeps object keys free of colons.
const archiveTimeFormat = "20060102T150405.000Z"

// Archiver writes an owner's pre-restore snapshot to object storage so a
// mistaken restore can be undone by an operator.
type Archiver struct {
	client storage.Client
	bucket string
	logger *zap.Logger
}

// NewArchiver creates an archiver writing to the given bucket.
func NewArchiver(client storage.Client, bucket string, logger *zap.Logger) *Archiver {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Archiver{client: client, bucket: bucket, logger: logger}
}

// EnsureBucket verifies the archive bucket exists, creating it if needed.
func (a *Archiver) EnsureBucket(ctx context.Context) error {
	exists, err := a.client.BucketExists(ctx, a.bucket)
	if err != nil {
		return fmt.Errorf("failed to check archive bucket: %w", err)
	}
	if exists {
		return nil
	}
	if err := a.client.MakeBucket(ctx, a.bucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("failed to create archive bucket: %w", err)
	}
	return nil
}

// ArchivePreImage stores the owner's current snapshot as a JSON object and
// prunes archives beyond the retention count. Returns the object key.
func (a *Archiver) ArchivePreImage(ctx context.Context, ownerID string, snap reconcile.Snapshot) (string, error) {
	payload, err := json.Marshal(snap)
	if err != nil {
		return "", fmt.Errorf("failed to encode snapshot: %w", err)
	}

	key := fmt.Sprintf("archives/%s/%s.json", ownerID, time.Now().UTC().Format(archiveTimeFormat))
	_, err = a.client.PutObject(ctx, a.bucket, key, bytes.NewReader(payload), int64(len(payload)),
		minio.PutObjectOptions{ContentType: "application/json"})
	if err != nil {
		return "", fmt.Errorf("failed to write archive object: %w", err)
	}

	a.prune(ctx, ownerID)
	return key, nil
}

// prune removes the oldest archives beyond the retention count. The time
// format sorts lexicographically, so key order is chronological order.
func (a *Archiver) prune(ctx context.Context, ownerID string) {
	prefix := fmt.Sprintf("archives/%s/", ownerID)
	var keys []string
	for obj := range a.client.ListObjects(ctx, a.bucket, minio.ListObjectsOptions{Prefix: prefix, Recursive: true}) {
		if obj.Err != nil {
			a.logger.Warn("archive listing failed", zap.String("owner_id", ownerID), zap.Error(obj.Err))
			return
		}
		keys = append(keys, obj.Key)
	}
	if len(keys) <= keepArchives {
		return
	}

	sort.Strings(keys)
	for _, key := range keys[:len(keys)-keepArchives] {
		if err := a.client.RemoveObject(ctx, a.bucket, key, minio.RemoveObjectOptions{}); err != nil {
			a.logger.Warn("archive pruning failed", zap.String("object", key), zap.Error(err))
		}
	}
}
