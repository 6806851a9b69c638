// Package redis implements the sequence generator on Redis and a read-through
// cache in front of the mapping store.
package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/vadimbarashkov/shorturl/internal/entity"
)

const sequenceKeyPrefix = "sequence:"

// incrExisting increments KEYS[1] only if it exists, so an uninitialized
// sequence is reported instead of silently starting from zero.
var incrExisting = redis.NewScript(`
if redis.call("EXISTS", KEYS[1]) == 0 then
	return false
end
return redis.call("INCR", KEYS[1])
`)

// SequenceRepository hands out short codes from a Redis counter.
type SequenceRepository struct {
	client redis.Cmdable
	key    string
}

func NewSequenceRepository(client redis.Cmdable, name string) *SequenceRepository {
	return &SequenceRepository{
		client: client,
		key:    sequenceKeyPrefix + name,
	}
}

// EnsureSequence sets the counter to 0 unless it already exists.
func (r *SequenceRepository) EnsureSequence(ctx context.Context) error {
	const op = "adapter.repository.redis.SequenceRepository.EnsureSequence"

	if err := r.client.SetNX(ctx, r.key, 0, 0).Err(); err != nil {
		return fmt.Errorf("%s: failed to set sequence key: %w: %w", op, entity.ErrStorageUnavailable, err)
	}

	return nil
}

// Next increments the counter and returns the new value.
func (r *SequenceRepository) Next(ctx context.Context) (int64, error) {
	const op = "adapter.repository.redis.SequenceRepository.Next"

	value, err := incrExisting.Run(ctx, r.client, []string{r.key}).Int64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, fmt.Errorf("%s: %w", op, entity.ErrSequenceNotFound)
		}

		return 0, fmt.Errorf("%s: failed to increment sequence key: %w: %w", op, entity.ErrStorageUnavailable, err)
	}

	return value, nil
}
