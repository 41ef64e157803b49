package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/custodia-labs/textscan/internal/core/domain"
	"github.com/custodia-labs/textscan/internal/core/ports/driven"
	"github.com/redis/go-redis/v9"
)

// Verify interface compliance
var _ driven.DocumentStore = (*DocumentStore)(nil)

const (
	// Key layout for Redis
	defaultKeyPrefix = "textscan:"
	documentKey      = "doc:"
	indexKeySuffix   = "docs"
	sequenceKey      = "docs:seq"
)

// DocumentStore implements driven.DocumentStore using Redis.
// Content lives in one string key per document; a sorted set scored by
// first-insertion sequence keeps enumeration order stable across overwrites.
type DocumentStore struct {
	client *redis.Client
	prefix string
}

// NewDocumentStore creates a new Redis-backed DocumentStore
func NewDocumentStore(client *redis.Client) *DocumentStore {
	return &DocumentStore{client: client, prefix: defaultKeyPrefix}
}

// WithPrefix returns a copy of the store using a different key prefix
func (s *DocumentStore) WithPrefix(prefix string) *DocumentStore {
	return &DocumentStore{client: s.client, prefix: prefix}
}

func (s *DocumentStore) docKey(name string) string {
	return s.prefix + documentKey + name
}

func (s *DocumentStore) indexKey() string {
	return s.prefix + indexKeySuffix
}

// Save stores a document, replacing existing content (last write wins)
func (s *DocumentStore) Save(ctx context.Context, name string, data []byte) error {
	if err := domain.ValidateName(name); err != nil {
		return err
	}

	seq, err := s.client.Incr(ctx, s.prefix+sequenceKey).Result()
	if err != nil {
		return fmt.Errorf("failed to allocate document sequence: %w", err)
	}

	_, err = s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, s.docKey(name), data, 0)
		// NX keeps the original position when a document is overwritten
		pipe.ZAddNX(ctx, s.indexKey(), redis.Z{Score: float64(seq), Member: name})
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to save document: %w", err)
	}

	return nil
}

// Get retrieves the stored bytes of a document
func (s *DocumentStore) Get(ctx context.Context, name string) ([]byte, error) {
	if !domain.IsDocumentName(name) {
		return nil, domain.ErrNotFound
	}

	data, err := s.client.Get(ctx, s.docKey(name)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get document: %w", err)
	}

	return data, nil
}

// List returns document names in first-insertion order
func (s *DocumentStore) List(ctx context.Context) ([]string, error) {
	names, err := s.client.ZRange(ctx, s.indexKey(), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}
	return domain.FilterDocumentNames(names), nil
}

// Delete removes a document and its index entry
func (s *DocumentStore) Delete(ctx context.Context, name string) error {
	if !domain.IsDocumentName(name) {
		return domain.ErrNotFound
	}

	var del *redis.IntCmd
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		del = pipe.Del(ctx, s.docKey(name))
		pipe.ZRem(ctx, s.indexKey(), name)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to delete document: %w", err)
	}

	if del.Val() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Ping checks the Redis connection
func (s *DocumentStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}
