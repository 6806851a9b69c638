// Package validator checks that a submitted URL is well formed and that its
// host resolves in DNS.
package validator

import (
	"context"
	"fmt"
	"net"
	"net/url"
	"time"

	"github.com/vadimbarashkov/shorturl/internal/entity"
)

const defaultLookupTimeout = 5 * time.Second

// Resolver is the subset of *net.Resolver used for host lookups.
type Resolver interface {
	LookupIPAddr(ctx context.Context, host string) ([]net.IPAddr, error)
}

type URLValidator struct {
	resolver      Resolver
	lookupTimeout time.Duration
}

type Option func(*URLValidator)

func WithResolver(resolver Resolver) Option {
	return func(v *URLValidator) {
		v.resolver = resolver
	}
}

func WithLookupTimeout(timeout time.Duration) Option {
	return func(v *URLValidator) {
		if timeout > 0 {
			v.lookupTimeout = timeout
		}
	}
}

func New(opts ...Option) *URLValidator {
	v := &URLValidator{
		resolver:      net.DefaultResolver,
		lookupTimeout: defaultLookupTimeout,
	}

	for _, opt := range opts {
		opt(v)
	}

	return v
}

// Validate parses raw as an absolute URL and resolves its hostname.
// It returns the hostname so callers can log what was looked up.
func (v *URLValidator) Validate(ctx context.Context, raw string) (string, error) {
	const op = "adapter.validator.URLValidator.Validate"

	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("%s: %w: %w", op, entity.ErrInvalidURL, err)
	}

	host := u.Hostname()
	if u.Scheme == "" || host == "" {
		return "", fmt.Errorf("%s: %w", op, entity.ErrInvalidURL)
	}

	ctx, cancel := context.WithTimeout(ctx, v.lookupTimeout)
	defer cancel()

	addrs, err := v.resolver.LookupIPAddr(ctx, host)
	if err != nil {
		return host, fmt.Errorf("%s: failed to resolve %q: %w: %w", op, host, entity.ErrInvalidHostname, err)
	}
	if len(addrs) == 0 {
		return host, fmt.Errorf("%s: no addresses for %q: %w", op, host, entity.ErrInvalidHostname)
	}

	return host, nil
}
