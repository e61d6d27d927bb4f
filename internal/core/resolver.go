package core

import (
	"context"
	"log/slog"
)

// Fetcher retrieves the release set for a package. Implementations are
// expected to cache and retry; the resolver only sees the final outcome.
type Fetcher interface {
	Fetch(ctx context.Context, datasource, pkg, scheme string) ([]Release, error)
}

// Resolver computes, for one package, the version a configured number of
// releases behind the latest.
//
// Resolve is total for data problems: misconfiguration, fetch failure, empty
// or junk release lists, and out-of-range offsets all fall back to the
// caller's current value rather than erroring. The only hard failure is an
// unregistered scheme id.
type Resolver struct {
	fetcher Fetcher
	logger  *slog.Logger
}

// NewResolver creates a resolver over the given fetcher. A nil logger
// discards diagnostics.
func NewResolver(fetcher Fetcher, logger *slog.Logger) *Resolver {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Resolver{fetcher: fetcher, logger: logger}
}

// Resolve runs the pipeline: validate, fetch, filter, sort, group when a
// level is requested, select. The returned Result always carries a usable
// version.
func (r *Resolver) Resolve(ctx context.Context, req Request) (Result, error) {
	if err := validateConstraints(req.Constraints); err != nil {
		r.logger.Warn("invalid offset constraints",
			"package", req.Package, "datasource", req.Datasource, "err", err)
		return fallback(req, err), nil
	}

	// Scheme lookup precedes the fetch so a misconfigured scheme id fails
	// before costing a network call.
	scheme, err := SchemeFor(req.Scheme)
	if err != nil {
		return fallback(req, err), err
	}

	releases, err := r.fetcher.Fetch(ctx, req.Datasource, req.Package, req.Scheme)
	if err != nil {
		reason := &FetchError{Datasource: req.Datasource, Package: req.Package, Err: err}
		r.logger.Debug("release fetch failed", "package", req.Package,
			"datasource", req.Datasource, "err", err)
		return fallback(req, reason), nil
	}
	if len(releases) == 0 {
		reason := &EmptyVersionListError{Datasource: req.Datasource, Package: req.Package}
		r.logger.Debug("no releases found", "package", req.Package, "datasource", req.Datasource)
		return fallback(req, reason), nil
	}

	versions := filterVersions(releases, scheme, req.Constraints.IncludePrerelease)
	if len(versions) == 0 {
		reason := &EmptyVersionListError{Datasource: req.Datasource, Package: req.Package}
		r.logger.Debug("no versions survived filtering",
			"package", req.Package, "datasource", req.Datasource, "raw", len(releases))
		return fallback(req, reason), nil
	}
	versions = sortVersions(versions, scheme)

	var selected string
	var selErr error
	if level := effectiveLevel(req.Constraints); level != "" {
		selected, selErr = selectGrouped(versions, scheme, level, req.Current, req.Constraints.Offset)
	} else {
		selected, selErr = selectFlat(versions, req.Constraints.Offset)
	}
	if selErr != nil {
		r.logger.Debug("offset selected no version", "package", req.Package,
			"datasource", req.Datasource, "offset", req.Constraints.Offset, "err", selErr)
		return fallback(req, selErr), nil
	}

	return Result{Version: selected, Updated: selected != req.Current}, nil
}

func fallback(req Request, reason error) Result {
	return Result{Version: req.Current, Reason: reason}
}
