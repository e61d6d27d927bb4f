package fetch

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/rs/dnscache"

	"github.com/git-pkgs/offset/internal/core"
)

var (
	// ErrUnsupportedDatasource is returned for datasources the bundled HTTP
	// source has no endpoint for.
	ErrUnsupportedDatasource = errors.New("unsupported datasource")

	// ErrNoPackage is returned when a fetch is attempted without a package name.
	ErrNoPackage = errors.New("no package name")
)

// HTTPSource lists package releases from public registry APIs over HTTP.
// It understands the npm, pypi, gem and cargo datasources.
type HTTPSource struct {
	client    *http.Client
	userAgent string
	baseURLs  map[string]string
}

// SourceOption configures an HTTPSource.
type SourceOption func(*HTTPSource)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(c *http.Client) SourceOption {
	return func(s *HTTPSource) {
		s.client = c
	}
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) SourceOption {
	return func(s *HTTPSource) {
		s.userAgent = ua
	}
}

// WithBaseURL overrides the registry base URL for a datasource, for mirrors
// and private registries.
func WithBaseURL(datasource, baseURL string) SourceOption {
	return func(s *HTTPSource) {
		s.baseURLs[datasource] = baseURL
	}
}

// NewHTTPSource creates an HTTPSource with the given options.
func NewHTTPSource(opts ...SourceOption) *HTTPSource {
	// DNS cache with 5 minute refresh interval
	resolver := &dnscache.Resolver{}
	go func() {
		ticker := time.NewTicker(5 * time.Minute)
		defer ticker.Stop()
		for range ticker.C {
			resolver.Refresh(true)
		}
	}()

	dialer := &net.Dialer{
		Timeout:   30 * time.Second,
		KeepAlive: 30 * time.Second,
	}

	s := &HTTPSource{
		client: &http.Client{
			Timeout: 30 * time.Second,
			Transport: &http.Transport{
				DialContext: func(ctx context.Context, network, addr string) (net.Conn, error) {
					host, port, err := net.SplitHostPort(addr)
					if err != nil {
						return nil, err
					}
					ips, err := resolver.LookupHost(ctx, host)
					if err != nil {
						return nil, err
					}
					for _, ip := range ips {
						conn, err := dialer.DialContext(ctx, network, net.JoinHostPort(ip, port))
						if err == nil {
							return conn, nil
						}
					}
					return nil, fmt.Errorf("failed to dial any resolved IP")
				},
				MaxIdleConns:          100,
				MaxIdleConnsPerHost:   10,
				IdleConnTimeout:       90 * time.Second,
				TLSHandshakeTimeout:   10 * time.Second,
				ExpectContinueTimeout: 1 * time.Second,
			},
		},
		userAgent: "git-pkgs-offset/1.0",
		baseURLs:  make(map[string]string),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// FetchReleases lists the releases of a package from its registry API.
func (s *HTTPSource) FetchReleases(ctx context.Context, datasource, pkg string) ([]core.Release, error) {
	if pkg == "" {
		return nil, ErrNoPackage
	}

	url, err := releasesURL(datasource, s.baseURLs[datasource], pkg)
	if err != nil {
		return nil, err
	}

	body, err := s.get(ctx, url)
	if err != nil {
		return nil, err
	}

	return parseReleases(datasource, body)
}

func (s *HTTPSource) get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", s.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("listing releases: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 1024))
		return nil, &HTTPError{StatusCode: resp.StatusCode, URL: url}
	}

	return io.ReadAll(resp.Body)
}

// Registry response shapes, one per datasource.
type (
	npmResponse struct {
		Versions map[string]json.RawMessage `json:"versions"`
		Time     map[string]string          `json:"time"`
	}

	pypiResponse struct {
		Releases map[string][]pypiFile `json:"releases"`
	}

	pypiFile struct {
		UploadTime string `json:"upload_time"`
	}

	gemVersion struct {
		Number    string `json:"number"`
		CreatedAt string `json:"created_at"`
	}

	cargoResponse struct {
		Versions []cargoVersion `json:"versions"`
	}

	cargoVersion struct {
		Num       string `json:"num"`
		CreatedAt string `json:"created_at"`
	}
)

func parseReleases(datasource string, body []byte) ([]core.Release, error) {
	switch datasource {
	case "npm":
		var resp npmResponse
		if err := json.Unmarshal(body, &resp); err != nil {
			return nil, fmt.Errorf("parsing npm response: %w", err)
		}
		releases := make([]core.Release, 0, len(resp.Versions))
		for v := range resp.Versions {
			releases = append(releases, core.Release{Version: v, ReleaseTimestamp: resp.Time[v]})
		}
		return releases, nil

	case "pypi":
		var resp pypiResponse
		if err := json.Unmarshal(body, &resp); err != nil {
			return nil, fmt.Errorf("parsing pypi response: %w", err)
		}
		releases := make([]core.Release, 0, len(resp.Releases))
		for v, files := range resp.Releases {
			r := core.Release{Version: v}
			if len(files) > 0 {
				r.ReleaseTimestamp = files[0].UploadTime
			}
			releases = append(releases, r)
		}
		return releases, nil

	case "gem":
		var versions []gemVersion
		if err := json.Unmarshal(body, &versions); err != nil {
			return nil, fmt.Errorf("parsing gem response: %w", err)
		}
		releases := make([]core.Release, 0, len(versions))
		for _, v := range versions {
			releases = append(releases, core.Release{Version: v.Number, ReleaseTimestamp: v.CreatedAt})
		}
		return releases, nil

	case "cargo":
		var resp cargoResponse
		if err := json.Unmarshal(body, &resp); err != nil {
			return nil, fmt.Errorf("parsing cargo response: %w", err)
		}
		releases := make([]core.Release, 0, len(resp.Versions))
		for _, v := range resp.Versions {
			releases = append(releases, core.Release{Version: v.Num, ReleaseTimestamp: v.CreatedAt})
		}
		return releases, nil

	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedDatasource, datasource)
	}
}
