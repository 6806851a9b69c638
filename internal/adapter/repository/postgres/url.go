package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/vadimbarashkov/shorturl/internal/entity"
)

type urlDB struct {
	OriginalURL string    `db:"original_url"`
	ShortCode   int64     `db:"short_url"`
	CreatedAt   time.Time `db:"created_at"`
}

func (u *urlDB) toEntity() *entity.URL {
	return &entity.URL{
		OriginalURL: u.OriginalURL,
		ShortCode:   u.ShortCode,
		CreatedAt:   u.CreatedAt,
	}
}

// URLRepository stores URL mappings in the urls table.
// The original URL is the primary key, so concurrent saves of the same URL
// leave exactly one row behind.
type URLRepository struct {
	db *sqlx.DB
}

func NewURLRepository(db *sqlx.DB) *URLRepository {
	return &URLRepository{db: db}
}

func (r *URLRepository) Save(ctx context.Context, originalURL string, shortCode int64) (*entity.URL, error) {
	const op = "adapter.repository.postgres.URLRepository.Save"
	const query = `INSERT INTO urls(original_url, short_url) VALUES ($1, $2) RETURNING original_url, short_url, created_at`

	var url urlDB

	if err := r.db.GetContext(ctx, &url, query, originalURL, shortCode); err != nil {
		if isUniqueViolationError(err) {
			if isShortCodeViolation(err) {
				return nil, fmt.Errorf("%s: %w", op, entity.ErrShortCodeExists)
			}

			return nil, fmt.Errorf("%s: %w", op, entity.ErrURLExists)
		}

		return nil, fmt.Errorf("%s: failed to insert into urls table: %w: %w", op, entity.ErrStorageUnavailable, err)
	}

	return url.toEntity(), nil
}

func (r *URLRepository) RetrieveByOriginalURL(ctx context.Context, originalURL string) (*entity.URL, error) {
	const op = "adapter.repository.postgres.URLRepository.RetrieveByOriginalURL"
	const query = `SELECT original_url, short_url, created_at FROM urls WHERE original_url = $1`

	var url urlDB

	if err := r.db.GetContext(ctx, &url, query, originalURL); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, entity.ErrURLNotFound)
		}

		return nil, fmt.Errorf("%s: failed to get row from urls table: %w: %w", op, entity.ErrStorageUnavailable, err)
	}

	return url.toEntity(), nil
}

func (r *URLRepository) RetrieveByShortCode(ctx context.Context, shortCode int64) (*entity.URL, error) {
	const op = "adapter.repository.postgres.URLRepository.RetrieveByShortCode"
	const query = `SELECT original_url, short_url, created_at FROM urls WHERE short_url = $1`

	var url urlDB

	if err := r.db.GetContext(ctx, &url, query, shortCode); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, entity.ErrURLNotFound)
		}

		return nil, fmt.Errorf("%s: failed to get row from urls table: %w: %w", op, entity.ErrStorageUnavailable, err)
	}

	return url.toEntity(), nil
}
