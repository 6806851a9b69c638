// Package sqlite implements the mapping store and the sequence generator on SQLite.
// It is meant for single-instance deployments and local development.
package sqlite

import (
	"errors"

	"github.com/mattn/go-sqlite3"
)

func constraintCode(err error) sqlite3.ErrNoExtended {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) && sqliteErr.Code == sqlite3.ErrConstraint {
		return sqliteErr.ExtendedCode
	}
	return 0
}
