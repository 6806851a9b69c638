// Package postgres opens PostgreSQL connection pools through the pgx driver
// and applies the embedded schema migrations.
package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	_ "github.com/jackc/pgx/v5/stdlib"
)

type pool struct {
	connectTimeout  time.Duration
	connMaxIdleTime time.Duration
	connMaxLifetime time.Duration
	maxIdleConns    int
	maxOpenConns    int
}

var defaultPool = pool{
	connectTimeout:  10 * time.Second,
	connMaxIdleTime: 5 * time.Minute,
	connMaxLifetime: 30 * time.Minute,
	maxIdleConns:    5,
	maxOpenConns:    25,
}

type Option func(*pool)

// WithConnectTimeout bounds the initial connection and ping.
func WithConnectTimeout(d time.Duration) Option {
	return func(p *pool) {
		p.connectTimeout = d
	}
}

func WithConnMaxIdleTime(d time.Duration) Option {
	return func(p *pool) {
		p.connMaxIdleTime = d
	}
}

func WithConnMaxLifetime(d time.Duration) Option {
	return func(p *pool) {
		p.connMaxLifetime = d
	}
}

func WithMaxIdleConns(n int) Option {
	return func(p *pool) {
		p.maxIdleConns = n
	}
}

func WithMaxOpenConns(n int) Option {
	return func(p *pool) {
		p.maxOpenConns = n
	}
}

func New(ctx context.Context, dsn string, opts ...Option) (*sqlx.DB, error) {
	const op = "postgres.New"

	p := defaultPool
	for _, opt := range opts {
		opt(&p)
	}

	if p.connectTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.connectTimeout)
		defer cancel()
	}

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to connect to database: %w", op, err)
	}

	db.SetConnMaxIdleTime(p.connMaxIdleTime)
	db.SetConnMaxLifetime(p.connMaxLifetime)
	db.SetMaxIdleConns(p.maxIdleConns)
	db.SetMaxOpenConns(p.maxOpenConns)

	return db, nil
}
