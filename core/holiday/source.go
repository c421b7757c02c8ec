package holiday

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"holiday-manager/core/storage"

	"github.com/minio/minio-go/v7"
)

// Lister supplies the full set of holiday packs for a run.
type Lister interface {
	ListPacks(ctx context.Context) ([]Pack, error)
}

// Source loads holiday packs from an object-storage bucket. Every .json
// object in the bucket is one pack document.
type Source struct {
	client storage.Client
	bucket string
}

// NewSource creates a pack source backed by the given bucket.
func NewSource(client storage.Client, bucket string) *Source {
	return &Source{client: client, bucket: bucket}
}

// ListPacks returns every pack in the bucket. Objects are listed in
// lexicographic key order, so the merge input order is deterministic.
// A missing bucket yields ErrSourceUnavailable; a pack that fails to decode
// or validate yields ErrMalformedRecord.
func (s *Source) ListPacks(ctx context.Context) ([]Pack, error) {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return nil, fmt.Errorf("check pack bucket %s: %w", s.bucket, err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: bucket %s does not exist", ErrSourceUnavailable, s.bucket)
	}

	var packs []Pack
	for object := range s.client.ListObjects(ctx, s.bucket, minio.ListObjectsOptions{Recursive: true}) {
		if object.Err != nil {
			return nil, fmt.Errorf("list pack objects: %w", object.Err)
		}
		if !strings.HasSuffix(object.Key, ".json") {
			continue
		}

		pack, err := s.readPack(ctx, object.Key)
		if err != nil {
			return nil, err
		}
		packs = append(packs, pack)
	}

	return packs, nil
}

func (s *Source) readPack(ctx context.Context, key string) (Pack, error) {
	reader, err := s.client.GetObject(ctx, s.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return Pack{}, fmt.Errorf("get pack %s: %w", key, err)
	}
	defer reader.Close()

	data, err := io.ReadAll(reader)
	if err != nil {
		return Pack{}, fmt.Errorf("read pack %s: %w", key, err)
	}

	var pack Pack
	if err := json.Unmarshal(data, &pack); err != nil {
		return Pack{}, fmt.Errorf("%w: pack %s: %v", ErrMalformedRecord, key, err)
	}
	if err := pack.Validate(); err != nil {
		return Pack{}, fmt.Errorf("pack %s: %w", key, err)
	}
	return pack, nil
}
