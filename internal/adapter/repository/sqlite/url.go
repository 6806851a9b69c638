package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/mattn/go-sqlite3"
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

type URLRepository struct {
	db  *sqlx.DB
	now func() time.Time
}

func NewURLRepository(db *sqlx.DB) *URLRepository {
	return &URLRepository{
		db:  db,
		now: func() time.Time { return time.Now().UTC() },
	}
}

func (r *URLRepository) Save(ctx context.Context, originalURL string, shortCode int64) (*entity.URL, error) {
	const op = "adapter.repository.sqlite.URLRepository.Save"
	const query = `INSERT INTO urls(original_url, short_url, created_at) VALUES (?, ?, ?)`

	url := urlDB{
		OriginalURL: originalURL,
		ShortCode:   shortCode,
		CreatedAt:   r.now(),
	}

	if _, err := r.db.ExecContext(ctx, query, url.OriginalURL, url.ShortCode, url.CreatedAt); err != nil {
		switch constraintCode(err) {
		case sqlite3.ErrConstraintPrimaryKey:
			return nil, fmt.Errorf("%s: %w", op, entity.ErrURLExists)
		case sqlite3.ErrConstraintUnique:
			return nil, fmt.Errorf("%s: %w", op, entity.ErrShortCodeExists)
		}

		return nil, fmt.Errorf("%s: failed to insert into urls table: %w: %w", op, entity.ErrStorageUnavailable, err)
	}

	return url.toEntity(), nil
}

func (r *URLRepository) RetrieveByOriginalURL(ctx context.Context, originalURL string) (*entity.URL, error) {
	const op = "adapter.repository.sqlite.URLRepository.RetrieveByOriginalURL"
	const query = `SELECT original_url, short_url, created_at FROM urls WHERE original_url = ?`

	return r.retrieve(ctx, op, query, originalURL)
}

func (r *URLRepository) RetrieveByShortCode(ctx context.Context, shortCode int64) (*entity.URL, error) {
	const op = "adapter.repository.sqlite.URLRepository.RetrieveByShortCode"
	const query = `SELECT original_url, short_url, created_at FROM urls WHERE short_url = ?`

	return r.retrieve(ctx, op, query, shortCode)
}

func (r *URLRepository) retrieve(ctx context.Context, op, query string, arg any) (*entity.URL, error) {
	var url urlDB

	if err := r.db.GetContext(ctx, &url, query, arg); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, entity.ErrURLNotFound)
		}

		return nil, fmt.Errorf("%s: failed to get row from urls table: %w: %w", op, entity.ErrStorageUnavailable, err)
	}

	return url.toEntity(), nil
}
