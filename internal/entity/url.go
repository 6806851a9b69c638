// Package entity defines the entities and errors used in the application.
// It includes the URL struct, which maps an original URL to its numeric short code,
// and the errors shared by the use case and the adapters.
package entity

import (
	"errors"
	"time"
)

var (
	// ErrInvalidURL is returned when the input cannot be parsed as an absolute URL.
	ErrInvalidURL = errors.New("invalid url")
	// ErrInvalidHostname is returned when the host of a well-formed URL does not resolve.
	ErrInvalidHostname = errors.New("invalid hostname")
	// ErrURLExists is returned when attempting to save an original URL that is already mapped.
	ErrURLExists = errors.New("url exists")
	// ErrShortCodeExists is returned when attempting to save a short code that is already taken.
	ErrShortCodeExists = errors.New("short code exists")
	// ErrURLNotFound is returned when no mapping matches the lookup key.
	ErrURLNotFound = errors.New("url not found")
	// ErrSequenceNotFound is returned when the sequence counter has not been initialized.
	ErrSequenceNotFound = errors.New("sequence not found")
	// ErrStorageUnavailable is returned when the backing store fails or cannot be reached.
	ErrStorageUnavailable = errors.New("storage unavailable")
)

// URL represents the mapping between an original URL and its short code.
type URL struct {
	OriginalURL string    // OriginalURL is the full URL; it is the unique key of the mapping.
	ShortCode   int64     // ShortCode is the number minted by the sequence for this URL.
	CreatedAt   time.Time // CreatedAt is the timestamp when the mapping was stored.
}
