package fetch

import (
	"fmt"
	"strings"
)

// Default registry base URLs per datasource.
const (
	DefaultNpmURL   = "https://registry.npmjs.org"
	DefaultPypiURL  = "https://pypi.org"
	DefaultGemURL   = "https://rubygems.org"
	DefaultCargoURL = "https://crates.io"
)

var defaultBaseURLs = map[string]string{
	"npm":   DefaultNpmURL,
	"pypi":  DefaultPypiURL,
	"gem":   DefaultGemURL,
	"cargo": DefaultCargoURL,
}

// releasesURL constructs the release-listing endpoint for a package. baseURL
// overrides the datasource default when non-empty (private registries).
func releasesURL(datasource, baseURL, pkg string) (string, error) {
	if baseURL == "" {
		baseURL = defaultBaseURLs[datasource]
	}
	baseURL = strings.TrimSuffix(baseURL, "/")

	switch datasource {
	case "npm":
		return fmt.Sprintf("%s/%s", baseURL, pkg), nil

	case "pypi":
		return fmt.Sprintf("%s/pypi/%s/json", baseURL, strings.ToLower(pkg)), nil

	case "gem":
		return fmt.Sprintf("%s/api/v1/versions/%s.json", baseURL, pkg), nil

	case "cargo":
		return fmt.Sprintf("%s/api/v1/crates/%s", baseURL, pkg), nil

	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedDatasource, datasource)
	}
}

// SupportedDatasources returns the datasources the bundled HTTP source can
// list releases for.
func SupportedDatasources() []string {
	out := make([]string, 0, len(defaultBaseURLs))
	for ds := range defaultBaseURLs {
		out = append(out, ds)
	}
	return out
}
