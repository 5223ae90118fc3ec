package exchange

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

var ErrRateLimited = errors.New("exchange rate refreshed too recently")

// Refresher holds the last good rate and refreshes it from a Source. A failed
// refresh never replaces the held rate.
type Refresher struct {
	src     Source
	limiter *rate.Limiter
	logger  *slog.Logger
	onFail  func()

	mu      sync.RWMutex
	rate    float64
	updated time.Time
	now     func() time.Time
}

type RefresherOption func(*Refresher)

func WithLogger(l *slog.Logger) RefresherOption {
	return func(r *Refresher) { r.logger = l }
}

// WithFailureHook is called once for every failed fetch.
func WithFailureHook(f func()) RefresherOption {
	return func(r *Refresher) { r.onFail = f }
}

// NewRefresher starts at fallback and allows one fetch per minInterval.
// A zero minInterval disables the limit.
func NewRefresher(src Source, fallback float64, minInterval time.Duration, opts ...RefresherOption) *Refresher {
	limit := rate.Inf
	if minInterval > 0 {
		limit = rate.Every(minInterval)
	}
	r := &Refresher{
		src:     src,
		limiter: rate.NewLimiter(limit, 1),
		logger:  slog.Default(),
		rate:    fallback,
		now:     time.Now,
	}
	for _, o := range opts {
		o(r)
	}
	return r
}

// Rate returns the last good rate (or the fallback).
func (r *Refresher) Rate() float64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.rate
}

// UpdatedAt returns when the rate was last fetched; zero if never.
func (r *Refresher) UpdatedAt() time.Time {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.updated
}

// Refresh fetches a new rate. Automatic refreshes (manual=false) swallow
// failures and only log them. Manual refreshes return the error so the
// caller can warn the user. Either way the returned rate is the one now held.
func (r *Refresher) Refresh(ctx context.Context, manual bool) (float64, error) {
	if !r.limiter.Allow() {
		if manual {
			return r.Rate(), ErrRateLimited
		}
		return r.Rate(), nil
	}

	v, err := r.src.FetchRate(ctx)
	if err != nil {
		if r.onFail != nil {
			r.onFail()
		}
		r.logger.Warn("exchange rate refresh failed", "manual", manual, "error", err)
		if manual {
			return r.Rate(), err
		}
		return r.Rate(), nil
	}

	r.mu.Lock()
	r.rate = v
	r.updated = r.now()
	r.mu.Unlock()
	r.logger.Debug("exchange rate updated", "rate", v)
	return v, nil
}
