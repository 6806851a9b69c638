package redis

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/vadimbarashkov/shorturl/internal/entity"
)

const (
	shortCodeKeyPrefix   = "url:code:"
	originalURLKeyPrefix = "url:original:"
)

type urlRepository interface {
	Save(ctx context.Context, originalURL string, shortCode int64) (*entity.URL, error)
	RetrieveByOriginalURL(ctx context.Context, originalURL string) (*entity.URL, error)
	RetrieveByShortCode(ctx context.Context, shortCode int64) (*entity.URL, error)
}

type urlCache struct {
	OriginalURL string    `json:"original_url"`
	ShortCode   int64     `json:"short_url"`
	CreatedAt   time.Time `json:"created_at"`
}

// CachedURLRepository serves lookups from Redis before falling back to the
// underlying store. Mappings never change once saved, so cached entries are
// only dropped by their TTL.
//
// Redis failures are logged and never fail a lookup.
type CachedURLRepository struct {
	repo   urlRepository
	client redis.Cmdable
	ttl    time.Duration
	logger *slog.Logger
}

func NewCachedURLRepository(repo urlRepository, client redis.Cmdable, ttl time.Duration, logger *slog.Logger) *CachedURLRepository {
	return &CachedURLRepository{
		repo:   repo,
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

func shortCodeKey(shortCode int64) string {
	return shortCodeKeyPrefix + strconv.FormatInt(shortCode, 10)
}

func originalURLKey(originalURL string) string {
	sum := sha256.Sum256([]byte(originalURL))
	return originalURLKeyPrefix + hex.EncodeToString(sum[:])
}

func (r *CachedURLRepository) Save(ctx context.Context, originalURL string, shortCode int64) (*entity.URL, error) {
	const op = "adapter.repository.redis.CachedURLRepository.Save"

	url, err := r.repo.Save(ctx, originalURL, shortCode)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	r.store(ctx, url)

	return url, nil
}

func (r *CachedURLRepository) RetrieveByOriginalURL(ctx context.Context, originalURL string) (*entity.URL, error) {
	const op = "adapter.repository.redis.CachedURLRepository.RetrieveByOriginalURL"

	if url, ok := r.load(ctx, originalURLKey(originalURL)); ok && url.OriginalURL == originalURL {
		return url, nil
	}

	url, err := r.repo.RetrieveByOriginalURL(ctx, originalURL)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	r.store(ctx, url)

	return url, nil
}

func (r *CachedURLRepository) RetrieveByShortCode(ctx context.Context, shortCode int64) (*entity.URL, error) {
	const op = "adapter.repository.redis.CachedURLRepository.RetrieveByShortCode"

	if url, ok := r.load(ctx, shortCodeKey(shortCode)); ok && url.ShortCode == shortCode {
		return url, nil
	}

	url, err := r.repo.RetrieveByShortCode(ctx, shortCode)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	r.store(ctx, url)

	return url, nil
}

func (r *CachedURLRepository) load(ctx context.Context, key string) (*entity.URL, bool) {
	data, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			r.logger.WarnContext(ctx, "failed to read url from cache", slog.String("key", key), slog.Any("err", err))
		}
		return nil, false
	}

	var c urlCache
	if err := json.Unmarshal(data, &c); err != nil {
		r.logger.WarnContext(ctx, "failed to decode cached url", slog.String("key", key), slog.Any("err", err))
		return nil, false
	}

	return &entity.URL{
		OriginalURL: c.OriginalURL,
		ShortCode:   c.ShortCode,
		CreatedAt:   c.CreatedAt,
	}, true
}

func (r *CachedURLRepository) store(ctx context.Context, url *entity.URL) {
	data, err := json.Marshal(urlCache{
		OriginalURL: url.OriginalURL,
		ShortCode:   url.ShortCode,
		CreatedAt:   url.CreatedAt,
	})
	if err != nil {
		r.logger.WarnContext(ctx, "failed to encode url for cache", slog.Any("err", err))
		return
	}

	for _, key := range []string{shortCodeKey(url.ShortCode), originalURLKey(url.OriginalURL)} {
		if err := r.client.Set(ctx, key, data, r.ttl).Err(); err != nil {
			r.logger.WarnContext(ctx, "failed to write url to cache", slog.String("key", key), slog.Any("err", err))
			return
		}
	}
}
