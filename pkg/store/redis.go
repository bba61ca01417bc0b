package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/redis/go-redis/v9"
)

// keyPrefix namespaces treekit records in a shared Redis instance.
const keyPrefix = "treekit:tree:"

// RedisStore is a Redis-backed tree store for multi-instance deployments.
// Records are stored as JSON values under "treekit:tree:{name}" keys.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore creates a tree store on top of an existing Redis client.
// The store takes ownership of the client; Close closes it.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func recordKey(name string) string {
	return keyPrefix + name
}

func (s *RedisStore) Get(ctx context.Context, name string) (*Record, error) {
	data, err := s.client.Get(ctx, recordKey(name)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("redis get: %w", err)
	}

	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("parse tree record: %w", err)
	}
	return &rec, nil
}

func (s *RedisStore) Put(ctx context.Context, rec *Record) error {
	if err := validateRecord(rec); err != nil {
		return err
	}

	prev, err := s.Get(ctx, rec.Name)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return err
	}
	mergePrevious(rec, prev)

	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshal tree record: %w", err)
	}
	if err := s.client.Set(ctx, recordKey(rec.Name), data, 0).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, name string) error {
	n, err := s.client.Del(ctx, recordKey(name)).Result()
	if err != nil {
		return fmt.Errorf("redis del: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *RedisStore) List(ctx context.Context) ([]*Record, error) {
	var recs []*Record

	iter := s.client.Scan(ctx, 0, keyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		name := strings.TrimPrefix(iter.Val(), keyPrefix)
		rec, err := s.Get(ctx, name)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				continue // deleted between scan and get
			}
			return nil, err
		}
		recs = append(recs, rec)
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("redis scan: %w", err)
	}

	slices.SortFunc(recs, func(a, b *Record) int {
		return strings.Compare(a.Name, b.Name)
	})
	return recs, nil
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}

var _ Store = (*RedisStore)(nil)
