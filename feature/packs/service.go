package packs

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"holiday-manager/core/holiday"
	"holiday-manager/core/storage"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// ErrPackNotFound indicates the bucket has no object for the given name.
var ErrPackNotFound = errors.New("pack not found")

// Invalidator is the pack cache hook; uploads and deletions must make the
// next population run see the new bucket state.
type Invalidator interface {
	Invalidate()
}

// Summary describes one pack object without its holiday records.
type Summary struct {
	Name     string `json:"name"`
	ID       string `json:"id"`
	Category string `json:"category"`
	Holidays int    `json:"holidays"`
}

// Service manages the pack bucket contents.
type Service struct {
	client storage.Client
	bucket string
	cache  Invalidator
	logger *zap.Logger
}

// NewService creates a new packs service. cache may be nil when no pack
// cache is configured.
func NewService(client storage.Client, bucket string, cache Invalidator, logger *zap.Logger) *Service {
	return &Service{
		client: client,
		bucket: bucket,
		cache:  cache,
		logger: logger,
	}
}

// List returns a summary for every pack object in the bucket.
func (s *Service) List(ctx context.Context) ([]Summary, error) {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return nil, fmt.Errorf("check pack bucket %s: %w", s.bucket, err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: bucket %s does not exist", holiday.ErrSourceUnavailable, s.bucket)
	}

	summaries := []Summary{}
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

		summaries = append(summaries, Summary{
			Name:     object.Key,
			ID:       pack.ID,
			Category: pack.Category,
			Holidays: len(pack.Holidays),
		})
	}

	return summaries, nil
}

// Upload validates and stores a pack document under the given object name.
// A pack without an ID is assigned one.
func (s *Service) Upload(ctx context.Context, name string, body []byte) (*holiday.Pack, error) {
	var pack holiday.Pack
	if err := json.Unmarshal(body, &pack); err != nil {
		return nil, fmt.Errorf("%w: %v", holiday.ErrMalformedRecord, err)
	}
	if err := pack.Validate(); err != nil {
		return nil, err
	}

	if pack.ID == "" {
		pack.ID = uuid.NewString()
	}

	data, err := json.Marshal(pack)
	if err != nil {
		return nil, fmt.Errorf("encode pack %s: %w", name, err)
	}

	if !strings.HasSuffix(name, ".json") {
		name += ".json"
	}

	_, err = s.client.PutObject(ctx, s.bucket, name, bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: "application/json"})
	if err != nil {
		return nil, fmt.Errorf("store pack %s: %w", name, err)
	}

	if s.cache != nil {
		s.cache.Invalidate()
	}

	s.logger.Info("Stored holiday pack",
		zap.String("name", name),
		zap.String("id", pack.ID),
		zap.String("category", pack.Category),
		zap.Int("holidays", len(pack.Holidays)),
	)
	return &pack, nil
}

// Delete removes a pack object from the bucket.
func (s *Service) Delete(ctx context.Context, name string) error {
	if !strings.HasSuffix(name, ".json") {
		name += ".json"
	}

	if _, err := s.client.StatObject(ctx, s.bucket, name, minio.StatObjectOptions{}); err != nil {
		return fmt.Errorf("%w: %s", ErrPackNotFound, name)
	}

	if err := s.client.RemoveObject(ctx, s.bucket, name, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("remove pack %s: %w", name, err)
	}

	if s.cache != nil {
		s.cache.Invalidate()
	}

	s.logger.Info("Removed holiday pack", zap.String("name", name))
	return nil
}

func (s *Service) readPack(ctx context.Context, key string) (holiday.Pack, error) {
	reader, err := s.client.GetObject(ctx, s.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return holiday.Pack{}, fmt.Errorf("read pack %s: %w", key, err)
	}
	defer reader.Close()

	var pack holiday.Pack
	if err := json.NewDecoder(reader).Decode(&pack); err != nil {
		return holiday.Pack{}, fmt.Errorf("%w: pack %s: %v", holiday.ErrMalformedRecord, key, err)
	}
	return pack, nil
}
