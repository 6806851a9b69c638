package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/vadimbarashkov/shorturl/internal/entity"
)

type SequenceRepository struct {
	db   *sqlx.DB
	name string
}

func NewSequenceRepository(db *sqlx.DB, name string) *SequenceRepository {
	return &SequenceRepository{
		db:   db,
		name: name,
	}
}

func (r *SequenceRepository) EnsureSequence(ctx context.Context) error {
	const op = "adapter.repository.sqlite.SequenceRepository.EnsureSequence"
	const query = `INSERT INTO sequences(name, value) VALUES (?, 0) ON CONFLICT (name) DO NOTHING`

	if _, err := r.db.ExecContext(ctx, query, r.name); err != nil {
		return fmt.Errorf("%s: failed to insert into sequences table: %w: %w", op, entity.ErrStorageUnavailable, err)
	}

	return nil
}

func (r *SequenceRepository) Next(ctx context.Context) (int64, error) {
	const op = "adapter.repository.sqlite.SequenceRepository.Next"
	const query = `UPDATE sequences SET value = value + 1 WHERE name = ? RETURNING value`

	var value int64

	if err := r.db.GetContext(ctx, &value, query, r.name); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, fmt.Errorf("%s: %w", op, entity.ErrSequenceNotFound)
		}

		return 0, fmt.Errorf("%s: failed to update sequences table row: %w: %w", op, entity.ErrStorageUnavailable, err)
	}

	return value, nil
}
