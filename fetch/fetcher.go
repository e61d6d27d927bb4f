// Package fetch provides cached, retried release retrieval from package
// registries, with optional per-datasource circuit breaking.
package fetch

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cenk/backoff"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/git-pkgs/offset/internal/core"
)

const (
	// DefaultCacheTTL is how long a fetched release set stays valid.
	DefaultCacheTTL = 15 * time.Minute

	// DefaultCacheSize bounds the number of cached release sets.
	DefaultCacheSize = 1024

	defaultMaxAttempts  = 3
	defaultInitialDelay = 1000 * time.Millisecond
	defaultMaxDelay     = 30000 * time.Millisecond
	defaultMultiplier   = 2.0
)

// Source retrieves the raw release set for a package from a registry.
// Implementations report transport failures as-is; the Fetcher decides which
// are worth retrying.
type Source interface {
	FetchReleases(ctx context.Context, datasource, pkg string) ([]core.Release, error)
}

// Fetcher wraps a Source with a TTL cache and exponential-backoff retries.
// Safe for concurrent use: the cache tolerates racing writers for the same
// key (entries are immutable snapshots, last writer wins).
type Fetcher struct {
	source       Source
	cache        *expirable.LRU[string, []core.Release]
	maxAttempts  int
	initialDelay time.Duration
	maxDelay     time.Duration
	multiplier   float64
	logger       *slog.Logger
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithMaxAttempts sets the total number of attempts per cache miss.
func WithMaxAttempts(n int) Option {
	return func(f *Fetcher) {
		f.maxAttempts = n
	}
}

// WithInitialDelay sets the delay before the first retry.
func WithInitialDelay(d time.Duration) Option {
	return func(f *Fetcher) {
		f.initialDelay = d
	}
}

// WithMaxDelay caps the backoff delay between retries.
func WithMaxDelay(d time.Duration) Option {
	return func(f *Fetcher) {
		f.maxDelay = d
	}
}

// WithCache replaces the default cache, letting tests substitute a
// deterministic size and TTL.
func WithCache(c *expirable.LRU[string, []core.Release]) Option {
	return func(f *Fetcher) {
		f.cache = c
	}
}

// WithLogger sets the diagnostic logger.
func WithLogger(l *slog.Logger) Option {
	return func(f *Fetcher) {
		f.logger = l
	}
}

// NewFetcher creates a Fetcher over the given source.
func NewFetcher(source Source, opts ...Option) *Fetcher {
	f := &Fetcher{
		source:       source,
		maxAttempts:  defaultMaxAttempts,
		initialDelay: defaultInitialDelay,
		maxDelay:     defaultMaxDelay,
		multiplier:   defaultMultiplier,
		logger:       slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(f)
	}
	if f.maxAttempts < 1 {
		f.maxAttempts = 1
	}
	if f.cache == nil {
		f.cache = expirable.NewLRU[string, []core.Release](DefaultCacheSize, nil, DefaultCacheTTL)
	}
	return f
}

// Fetch returns the release set for a package, serving from cache within the
// TTL and otherwise retrying transient registry failures with exponential
// backoff. It fails only after a non-retryable error or exhausted attempts.
//
// An empty package name is passed through to the source unmodified; sources
// that support a parameterless lookup (test fixtures) may serve it.
func (f *Fetcher) Fetch(ctx context.Context, datasource, pkg, scheme string) ([]core.Release, error) {
	key := cacheKey(datasource, pkg, scheme)
	if releases, ok := f.cache.Get(key); ok {
		return releases, nil
	}

	releases, err := f.fetchWithRetry(ctx, datasource, pkg)
	if err != nil {
		return nil, err
	}

	f.cache.Add(key, releases)
	return releases, nil
}

func (f *Fetcher) fetchWithRetry(ctx context.Context, datasource, pkg string) ([]core.Release, error) {
	exp := backoff.NewExponentialBackOff()
	exp.InitialInterval = f.initialDelay
	exp.MaxInterval = f.maxDelay
	exp.Multiplier = f.multiplier
	exp.RandomizationFactor = 0
	exp.MaxElapsedTime = 0
	exp.Reset()

	// maxAttempts counts the first try, WithMaxRetries counts only retries.
	policy := backoff.WithContext(backoff.WithMaxRetries(exp, uint64(f.maxAttempts-1)), ctx)

	var releases []core.Release
	operation := func() error {
		var err error
		releases, err = f.source.FetchReleases(ctx, datasource, pkg)
		if err != nil && !Retryable(err) {
			return backoff.Permanent(err)
		}
		return err
	}
	notify := func(err error, delay time.Duration) {
		f.logger.Debug("retrying release fetch",
			"datasource", datasource, "package", pkg, "delay", delay, "err", err)
	}

	if err := backoff.RetryNotify(operation, policy, notify); err != nil {
		return nil, err
	}
	return releases, nil
}

func cacheKey(datasource, pkg, scheme string) string {
	return fmt.Sprintf("%s/%s/%s", datasource, pkg, scheme)
}
