package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"github.com/vadimbarashkov/shorturl/internal/entity"
)

func TestIsUniqueViolationError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{
			name: "unique violation error",
			err:  &pgconn.PgError{Code: uniqueViolationErrCode},
			want: true,
		},
		{
			name: "wrapped unique violation error",
			err:  errors.Join(errors.New("insert failed"), &pgconn.PgError{Code: uniqueViolationErrCode}),
			want: true,
		},
		{
			name: "not unique violation error",
			err:  &pgconn.PgError{Code: "unknown error code"},
			want: false,
		},
		{
			name: "not PgError",
			err:  errors.New("unknown error"),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isUniqueViolationError(tt.err))
		})
	}
}

type RepositoryTestSuite struct {
	suite.Suite
	errUnknown error
	columns    []string
	mock       sqlmock.Sqlmock
	urlRepo    *URLRepository
	seqRepo    *SequenceRepository
}

func (suite *RepositoryTestSuite) SetupSuite() {
	suite.errUnknown = errors.New("unknown error")
	suite.columns = []string{"original_url", "short_url", "created_at"}
}

func (suite *RepositoryTestSuite) SetupSubTest() {
	mockDB, mock, err := sqlmock.New()
	if err != nil {
		suite.T().Fatalf("Failed to create mock database: %v", err)
	}

	db := sqlx.NewDb(mockDB, "sqlmock")
	suite.T().Cleanup(func() {
		db.Close()
	})

	suite.mock = mock
	suite.urlRepo = NewURLRepository(db)
	suite.seqRepo = NewSequenceRepository(db, "url_sequence")
}

func (suite *RepositoryTestSuite) TearDownSubTest() {
	suite.NoError(suite.mock.ExpectationsWereMet())
}

func (suite *RepositoryTestSuite) TestSave() {
	suite.Run("url exists", func() {
		suite.mock.ExpectQuery(`INSERT INTO urls`).
			WithArgs("https://example.com", int64(1)).
			WillReturnError(&pgconn.PgError{Code: uniqueViolationErrCode, ConstraintName: "urls_pkey"})

		url, err := suite.urlRepo.Save(context.Background(), "https://example.com", 1)

		suite.ErrorIs(err, entity.ErrURLExists)
		suite.NotErrorIs(err, entity.ErrStorageUnavailable)
		suite.Nil(url)
	})

	suite.Run("short code exists", func() {
		suite.mock.ExpectQuery(`INSERT INTO urls`).
			WithArgs("https://example.com", int64(1)).
			WillReturnError(&pgconn.PgError{Code: uniqueViolationErrCode, ConstraintName: shortCodeConstraint})

		url, err := suite.urlRepo.Save(context.Background(), "https://example.com", 1)

		suite.ErrorIs(err, entity.ErrShortCodeExists)
		suite.Nil(url)
	})

	suite.Run("unknown error", func() {
		suite.mock.ExpectQuery(`INSERT INTO urls`).
			WithArgs("https://example.com", int64(1)).
			WillReturnError(suite.errUnknown)

		url, err := suite.urlRepo.Save(context.Background(), "https://example.com", 1)

		suite.ErrorIs(err, suite.errUnknown)
		suite.ErrorIs(err, entity.ErrStorageUnavailable)
		suite.Nil(url)
	})

	suite.Run("success", func() {
		createdAt := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
		rows := sqlmock.NewRows(suite.columns).
			AddRow("https://example.com", 1, createdAt)

		suite.mock.ExpectQuery(`INSERT INTO urls`).
			WithArgs("https://example.com", int64(1)).
			WillReturnRows(rows)

		url, err := suite.urlRepo.Save(context.Background(), "https://example.com", 1)

		suite.NoError(err)
		suite.Equal(&entity.URL{
			OriginalURL: "https://example.com",
			ShortCode:   1,
			CreatedAt:   createdAt,
		}, url)
	})
}

func (suite *RepositoryTestSuite) TestRetrieveByOriginalURL() {
	suite.Run("url not found", func() {
		suite.mock.ExpectQuery(`SELECT (.+) FROM urls WHERE original_url`).
			WithArgs("https://example.com").
			WillReturnError(sql.ErrNoRows)

		url, err := suite.urlRepo.RetrieveByOriginalURL(context.Background(), "https://example.com")

		suite.ErrorIs(err, entity.ErrURLNotFound)
		suite.Nil(url)
	})

	suite.Run("unknown error", func() {
		suite.mock.ExpectQuery(`SELECT (.+) FROM urls WHERE original_url`).
			WithArgs("https://example.com").
			WillReturnError(suite.errUnknown)

		url, err := suite.urlRepo.RetrieveByOriginalURL(context.Background(), "https://example.com")

		suite.ErrorIs(err, suite.errUnknown)
		suite.ErrorIs(err, entity.ErrStorageUnavailable)
		suite.Nil(url)
	})

	suite.Run("success", func() {
		rows := sqlmock.NewRows(suite.columns).
			AddRow("https://example.com", 7, time.Time{})

		suite.mock.ExpectQuery(`SELECT (.+) FROM urls WHERE original_url`).
			WithArgs("https://example.com").
			WillReturnRows(rows)

		url, err := suite.urlRepo.RetrieveByOriginalURL(context.Background(), "https://example.com")

		suite.NoError(err)
		suite.NotNil(url)
		suite.Equal("https://example.com", url.OriginalURL)
		suite.Equal(int64(7), url.ShortCode)
	})
}

func (suite *RepositoryTestSuite) TestRetrieveByShortCode() {
	suite.Run("url not found", func() {
		suite.mock.ExpectQuery(`SELECT (.+) FROM urls WHERE short_url`).
			WithArgs(int64(999999)).
			WillReturnError(sql.ErrNoRows)

		url, err := suite.urlRepo.RetrieveByShortCode(context.Background(), 999999)

		suite.ErrorIs(err, entity.ErrURLNotFound)
		suite.Nil(url)
	})

	suite.Run("unknown error", func() {
		suite.mock.ExpectQuery(`SELECT (.+) FROM urls WHERE short_url`).
			WithArgs(int64(1)).
			WillReturnError(suite.errUnknown)

		url, err := suite.urlRepo.RetrieveByShortCode(context.Background(), 1)

		suite.ErrorIs(err, suite.errUnknown)
		suite.ErrorIs(err, entity.ErrStorageUnavailable)
		suite.Nil(url)
	})

	suite.Run("success", func() {
		rows := sqlmock.NewRows(suite.columns).
			AddRow("https://example.com", 1, time.Time{})

		suite.mock.ExpectQuery(`SELECT (.+) FROM urls WHERE short_url`).
			WithArgs(int64(1)).
			WillReturnRows(rows)

		url, err := suite.urlRepo.RetrieveByShortCode(context.Background(), 1)

		suite.NoError(err)
		suite.NotNil(url)
		suite.Equal("https://example.com", url.OriginalURL)
		suite.Equal(int64(1), url.ShortCode)
	})
}

func (suite *RepositoryTestSuite) TestEnsureSequence() {
	suite.Run("unknown error", func() {
		suite.mock.ExpectExec(`INSERT INTO sequences`).
			WithArgs("url_sequence").
			WillReturnError(suite.errUnknown)

		err := suite.seqRepo.EnsureSequence(context.Background())

		suite.ErrorIs(err, suite.errUnknown)
		suite.ErrorIs(err, entity.ErrStorageUnavailable)
	})

	suite.Run("already exists", func() {
		suite.mock.ExpectExec(`INSERT INTO sequences`).
			WithArgs("url_sequence").
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := suite.seqRepo.EnsureSequence(context.Background())

		suite.NoError(err)
	})

	suite.Run("success", func() {
		suite.mock.ExpectExec(`INSERT INTO sequences`).
			WithArgs("url_sequence").
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := suite.seqRepo.EnsureSequence(context.Background())

		suite.NoError(err)
	})
}

func (suite *RepositoryTestSuite) TestNext() {
	suite.Run("sequence not found", func() {
		suite.mock.ExpectQuery(`UPDATE sequences`).
			WithArgs("url_sequence").
			WillReturnError(sql.ErrNoRows)

		value, err := suite.seqRepo.Next(context.Background())

		suite.ErrorIs(err, entity.ErrSequenceNotFound)
		suite.Zero(value)
	})

	suite.Run("unknown error", func() {
		suite.mock.ExpectQuery(`UPDATE sequences`).
			WithArgs("url_sequence").
			WillReturnError(suite.errUnknown)

		value, err := suite.seqRepo.Next(context.Background())

		suite.ErrorIs(err, suite.errUnknown)
		suite.ErrorIs(err, entity.ErrStorageUnavailable)
		suite.Zero(value)
	})

	suite.Run("success", func() {
		suite.mock.ExpectQuery(`UPDATE sequences`).
			WithArgs("url_sequence").
			WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow(42))

		value, err := suite.seqRepo.Next(context.Background())

		suite.NoError(err)
		suite.Equal(int64(42), value)
	})
}

func TestRepository(t *testing.T) {
	suite.Run(t, new(RepositoryTestSuite))
}
