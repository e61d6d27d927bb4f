package core

import (
	packageurl "github.com/package-url/packageurl-go"
)

// PURLParts is a Package URL broken into the pieces a resolution needs.
type PURLParts struct {
	Datasource  string
	Name        string
	Version     string
	RegistryURL string
}

// SplitPURL parses a Package URL string into resolution parts. Both package
// PURLs (pkg:npm/react) and version PURLs (pkg:npm/react@18.2.0) are accepted;
// the version, when present, is the caller's current value.
func SplitPURL(purl string) (*PURLParts, error) {
	p, err := packageurl.FromString(purl)
	if err != nil {
		return nil, err
	}

	return &PURLParts{
		Datasource:  p.Type,
		Name:        fullName(p),
		Version:     p.Version,
		RegistryURL: p.Qualifiers.Map()["repository_url"],
	}, nil
}

// fullName returns the package name in the format expected by the registry.
// For npm: "@babel/core", for maven: "org.apache.commons:commons-lang3"
func fullName(p packageurl.PackageURL) string {
	if p.Namespace == "" {
		return p.Name
	}

	switch p.Type {
	case "maven":
		return p.Namespace + ":" + p.Name
	default:
		// packageurl keeps @ in the npm namespace, so "@babel" + "/" + "core"
		return p.Namespace + "/" + p.Name
	}
}

// SchemeForDatasource returns the versioning scheme conventionally used by a
// datasource. Unknown datasources get the permissive loose scheme.
func SchemeForDatasource(datasource string) string {
	switch datasource {
	case "npm", "cargo", "crate", "gem", "golang", "hex":
		return "semver"
	case "pypi":
		return "pep440"
	case "docker", "oci":
		return "docker"
	default:
		return "loose"
	}
}
