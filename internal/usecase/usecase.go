// Package usecase implements the shortening flow: dedup lookup, validation,
// code allocation and the race-tolerant save.
package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/vadimbarashkov/shorturl/internal/entity"
	"github.com/vadimbarashkov/shorturl/internal/metrics"
)

type urlRepository interface {
	Save(ctx context.Context, originalURL string, shortCode int64) (*entity.URL, error)
	RetrieveByOriginalURL(ctx context.Context, originalURL string) (*entity.URL, error)
	RetrieveByShortCode(ctx context.Context, shortCode int64) (*entity.URL, error)
}

type sequence interface {
	Next(ctx context.Context) (int64, error)
}

type urlValidator interface {
	Validate(ctx context.Context, raw string) (string, error)
}

type URLUseCase struct {
	urlRepo   urlRepository
	seq       sequence
	validator urlValidator
	metrics   *metrics.Metrics
	logger    *slog.Logger
}

func NewURLUseCase(
	urlRepo urlRepository,
	seq sequence,
	validator urlValidator,
	m *metrics.Metrics,
	logger *slog.Logger,
) *URLUseCase {
	return &URLUseCase{
		urlRepo:   urlRepo,
		seq:       seq,
		validator: validator,
		metrics:   m,
		logger:    logger,
	}
}

// ShortenURL returns the mapping for originalURL, creating it if needed.
// Repeated calls with the same string always yield the same short code.
// Rejected input never consumes a sequence value.
func (uc *URLUseCase) ShortenURL(ctx context.Context, originalURL string) (*entity.URL, error) {
	const op = "usecase.URLUseCase.ShortenURL"

	url, err := uc.urlRepo.RetrieveByOriginalURL(ctx, originalURL)
	if err == nil {
		uc.metrics.Shortened.WithLabelValues(metrics.ResultExisting).Inc()
		return url, nil
	}
	if !errors.Is(err, entity.ErrURLNotFound) {
		uc.metrics.Shortened.WithLabelValues(metrics.ResultFailed).Inc()
		return nil, fmt.Errorf("%s: failed to look up url: %w", op, err)
	}

	host, err := uc.validator.Validate(ctx, originalURL)
	if err != nil {
		if errors.Is(err, entity.ErrInvalidURL) || errors.Is(err, entity.ErrInvalidHostname) {
			uc.metrics.Shortened.WithLabelValues(metrics.ResultRejected).Inc()
			uc.logger.DebugContext(ctx, "url rejected", slog.String("host", host), slog.Any("err", err))
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		uc.metrics.Shortened.WithLabelValues(metrics.ResultFailed).Inc()
		return nil, fmt.Errorf("%s: failed to validate url: %w", op, err)
	}

	uc.logger.DebugContext(ctx, "url validated", slog.String("host", host))

	shortCode, err := uc.seq.Next(ctx)
	if err != nil {
		uc.metrics.Shortened.WithLabelValues(metrics.ResultFailed).Inc()
		return nil, fmt.Errorf("%s: failed to allocate short code: %w", op, err)
	}

	url, err = uc.urlRepo.Save(ctx, originalURL, shortCode)
	if err != nil {
		if !errors.Is(err, entity.ErrURLExists) {
			uc.metrics.Shortened.WithLabelValues(metrics.ResultFailed).Inc()
			return nil, fmt.Errorf("%s: failed to save url: %w", op, err)
		}

		// A concurrent request stored the same URL first; its code wins and
		// ours is left as a gap.
		url, err = uc.urlRepo.RetrieveByOriginalURL(ctx, originalURL)
		if err != nil {
			uc.metrics.Shortened.WithLabelValues(metrics.ResultFailed).Inc()
			return nil, fmt.Errorf("%s: failed to look up stored url: %w", op, err)
		}

		uc.metrics.Shortened.WithLabelValues(metrics.ResultExisting).Inc()
		return url, nil
	}

	uc.metrics.Shortened.WithLabelValues(metrics.ResultCreated).Inc()
	return url, nil
}

func (uc *URLUseCase) ResolveShortCode(ctx context.Context, shortCode int64) (*entity.URL, error) {
	const op = "usecase.URLUseCase.ResolveShortCode"

	url, err := uc.urlRepo.RetrieveByShortCode(ctx, shortCode)
	if err != nil {
		if errors.Is(err, entity.ErrURLNotFound) {
			uc.metrics.Resolved.WithLabelValues(metrics.ResultNotFound).Inc()
		} else {
			uc.metrics.Resolved.WithLabelValues(metrics.ResultFailed).Inc()
		}

		return nil, fmt.Errorf("%s: failed to resolve short code: %w", op, err)
	}

	uc.metrics.Resolved.WithLabelValues(metrics.ResultFound).Inc()
	return url, nil
}
