package session

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"craft-planner/core/pool"
	"craft-planner/core/storage"

	"github.com/klauspost/compress/zstd"
	"github.com/minio/minio-go/v7"
)

// SnapshotPrefix is where snapshots live in the bucket.
const SnapshotPrefix = "sessions/"

// SnapshotKey returns the object key of the snapshot for session id.
func SnapshotKey(id string) string {
	return SnapshotPrefix + id + ".json.zst"
}

// Snapshots exports and imports compressed pool snapshots.
type Snapshots struct {
	client storage.Client
	bucket string
}

// NewSnapshots creates a snapshot store on bucket.
func NewSnapshots(client storage.Client, bucket string) *Snapshots {
	return &Snapshots{client: client, bucket: bucket}
}

// Export writes the pool of s and returns the object key.
func (x *Snapshots) Export(ctx context.Context, s *Session) (string, error) {
	raw, err := json.Marshal(s.Pool)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	enc, err := zstd.NewWriter(&buf, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return "", err
	}
	if _, err := enc.Write(raw); err != nil {
		enc.Close()
		return "", err
	}
	if err := enc.Close(); err != nil {
		return "", err
	}

	key := SnapshotKey(s.ID)
	_, err = x.client.PutObject(ctx, x.bucket, key, &buf, int64(buf.Len()), minio.PutObjectOptions{
		ContentType: "application/zstd",
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload snapshot %s: %w", key, err)
	}
	return key, nil
}

// Import reads the snapshot of session id back into a pool.
func (x *Snapshots) Import(ctx context.Context, id string) (pool.Pool, error) {
	key := SnapshotKey(id)
	obj, err := x.client.GetObject(ctx, x.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return pool.Pool{}, fmt.Errorf("failed to get snapshot %s: %w", key, err)
	}
	defer obj.Close()

	dec, err := zstd.NewReader(obj)
	if err != nil {
		return pool.Pool{}, err
	}
	defer dec.Close()

	var p pool.Pool
	if err := json.NewDecoder(dec).Decode(&p); err != nil {
		return pool.Pool{}, fmt.Errorf("failed to decode snapshot %s: %w", key, err)
	}
	return p, nil
}
