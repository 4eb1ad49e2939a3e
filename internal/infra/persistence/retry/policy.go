// Package retry bounds store calls with a per-attempt timeout and retries
// idempotent reads that failed because the store was unavailable.
package retry

import (
	"context"
	"time"

	"github.com/sethvargo/go-retry"

	"secrets/config"
	domainerrors "secrets/internal/domain/errors"
	"secrets/internal/errors"
)

const (
	defaultTimeout = 3 * time.Second
	defaultBackoff = 50 * time.Millisecond
)

// Policy is shared by every repository implementation.
type Policy struct {
	Timeout time.Duration
	Retries uint64
	Backoff time.Duration
}

// NewPolicy builds the store policy from the store section of the config.
func NewPolicy(cfg *config.Config) *Policy {
	policy := &Policy{
		Timeout: defaultTimeout,
		Backoff: defaultBackoff,
	}
	if cfg != nil && cfg.Store != nil {
		if cfg.Store.Timeout > 0 {
			policy.Timeout = cfg.Store.Timeout
		}
		if cfg.Store.Retries > 0 {
			policy.Retries = uint64(cfg.Store.Retries)
		}
	}

	return policy
}

// Read runs an idempotent operation. Attempts that fail with ErrStoreUnavailable
// are retried with exponential backoff; any other error is returned at once.
func (p *Policy) Read(ctx context.Context, fn func(ctx context.Context) error) error {
	if p == nil {
		return fn(ctx)
	}

	backoff := retry.WithMaxRetries(p.Retries, retry.NewExponential(p.backoff()))

	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		err := p.Write(ctx, fn)
		if err != nil && errors.Is(err, domainerrors.ErrStoreUnavailable) {
			return retry.RetryableError(err)
		}

		return err
	})
}

// Write runs a single attempt under the per-operation timeout.
func (p *Policy) Write(ctx context.Context, fn func(ctx context.Context) error) error {
	if p == nil || p.Timeout <= 0 {
		return fn(ctx)
	}

	ctx, cancel := context.WithTimeout(ctx, p.Timeout)
	defer cancel()

	return fn(ctx)
}

func (p *Policy) backoff() time.Duration {
	if p.Backoff <= 0 {
		return defaultBackoff
	}

	return p.Backoff
}
