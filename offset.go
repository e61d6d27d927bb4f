// Package offset resolves, for a single package, the version a configured
// number of releases behind the latest available release.
//
// It is built for dependency-update tooling that deliberately stays behind
// the bleeding edge: an offset of -1 picks the release before the latest,
// and an offset level of major, minor or patch applies the offset to
// semantic-level buckets instead of the flat release list.
//
// Basic usage:
//
//	import (
//		"context"
//		"github.com/git-pkgs/offset"
//		_ "github.com/git-pkgs/offset/all"
//	)
//
//	r := offset.New()
//	res, err := r.Resolve(context.Background(), offset.Request{
//		Datasource: "npm",
//		Package:    "react",
//		Scheme:     "semver",
//		Current:    "18.2.0",
//		Constraints: offset.Constraints{Offset: -1, OffsetLevel: offset.LevelMajor},
//	})
//	if err != nil {
//		log.Fatal(err) // only an unregistered scheme id errors
//	}
//	fmt.Println(res.Version) // selected version, or "18.2.0" on fallback
//
// Resolve never fails for data problems: misconfiguration, registry outages,
// empty or malformed release lists and out-of-range offsets all fall back to
// the caller's current value, with the cause on Result.Reason.
package offset

import (
	"context"
	"log/slog"

	"github.com/git-pkgs/purl"

	"github.com/git-pkgs/offset/fetch"
	"github.com/git-pkgs/offset/internal/core"
)

// Re-export types from internal/core
type (
	// Release is a single published release of a package.
	Release = core.Release

	// Constraints configures the offset, its level, and prerelease handling.
	Constraints = core.Constraints

	// Level is the semantic granularity at which an offset is applied.
	Level = core.Level

	// Request identifies one resolution.
	Request = core.Request

	// Result is the outcome of a resolution; Version is always usable.
	Result = core.Result

	// Scheme is the versioning capability a resolution runs under.
	Scheme = core.Scheme
)

// Re-export constants
const (
	LevelMajor = core.LevelMajor
	LevelMinor = core.LevelMinor
	LevelPatch = core.LevelPatch
)

// Re-export errors
var (
	ErrUnknownScheme = core.ErrUnknownScheme
)

// Error types
type (
	InvalidOffsetError      = core.InvalidOffsetError
	InvalidOffsetLevelError = core.InvalidOffsetLevelError
	EmptyVersionListError   = core.EmptyVersionListError
	OffsetOutOfBoundsError  = core.OffsetOutOfBoundsError
	FetchError              = core.FetchError
)

// RegisterScheme adds a versioning scheme to the global registry.
// Note: bundled schemes must be imported to be registered; the all package
// imports every one.
var RegisterScheme = core.RegisterScheme

// SupportedSchemes returns all registered scheme ids.
var SupportedSchemes = core.SupportedSchemes

// Resolver resolves offset version requests against package registries.
type Resolver struct {
	core *core.Resolver
}

// Option configures a Resolver.
type Option func(*config)

type config struct {
	source       fetch.Source
	fetchOptions []fetch.Option
	logger       *slog.Logger
	noBreaker    bool
}

// WithSource replaces the default HTTP registry source.
func WithSource(s fetch.Source) Option {
	return func(c *config) {
		c.source = s
	}
}

// WithFetchOptions forwards options to the underlying release fetcher
// (retry attempts, delays, cache).
func WithFetchOptions(opts ...fetch.Option) Option {
	return func(c *config) {
		c.fetchOptions = append(c.fetchOptions, opts...)
	}
}

// WithLogger sets the diagnostic logger. Misconfiguration logs at warning,
// operational fallbacks at debug.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		c.logger = l
	}
}

// WithoutCircuitBreaker disables the per-datasource circuit breaker around
// the source.
func WithoutCircuitBreaker() Option {
	return func(c *config) {
		c.noBreaker = true
	}
}

// New creates a Resolver. By default releases are fetched from the public
// registry APIs through a circuit breaker, retried with exponential backoff,
// and cached for 15 minutes.
func New(opts ...Option) *Resolver {
	var c config
	for _, opt := range opts {
		opt(&c)
	}

	source := c.source
	if source == nil {
		source = fetch.NewHTTPSource()
	}
	if !c.noBreaker {
		source = fetch.NewCircuitBreakerSource(source)
	}

	fetchOpts := c.fetchOptions
	if c.logger != nil {
		fetchOpts = append(fetchOpts, fetch.WithLogger(c.logger))
	}
	fetcher := fetch.NewFetcher(source, fetchOpts...)

	return &Resolver{core: core.NewResolver(fetcher, c.logger)}
}

// Resolve computes the version req.Constraints.Offset releases behind the
// latest for one package. The returned Result always carries a usable
// version; the error is non-nil only for an unregistered scheme id.
func (r *Resolver) Resolve(ctx context.Context, req Request) (Result, error) {
	return r.core.Resolve(ctx, req)
}

// ResolvePURL resolves from a Package URL. The PURL's type selects the
// datasource and its conventional scheme; a version in the PURL becomes the
// current value unless current is non-empty.
func (r *Resolver) ResolvePURL(ctx context.Context, purlStr, current string, c Constraints) (Result, error) {
	parts, err := core.SplitPURL(purlStr)
	if err != nil {
		return Result{Version: current}, err
	}
	if current == "" {
		current = parts.Version
	}

	return r.Resolve(ctx, Request{
		Datasource:  parts.Datasource,
		Package:     parts.Name,
		Scheme:      core.SchemeForDatasource(parts.Datasource),
		Current:     current,
		Constraints: c,
	})
}

// PURL represents a parsed Package URL.
type PURL = purl.PURL

// ParsePURL parses a Package URL string into its components.
// Supports both package PURLs (pkg:npm/react) and version PURLs
// (pkg:npm/react@18.2.0).
func ParsePURL(purlStr string) (*PURL, error) {
	return purl.Parse(purlStr)
}
