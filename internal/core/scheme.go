package core

import (
	"fmt"
	"sync"
)

// Scheme is the versioning capability a resolution runs under. Implementations
// are stateless and selected by string id.
type Scheme interface {
	// ID returns the scheme id (e.g. "semver", "pep440", "docker", "loose").
	ID() string

	// IsValid reports whether v parses under this scheme.
	IsValid(v string) bool

	// IsStable reports whether v is a non-prerelease version.
	// Only meaningful for valid versions.
	IsStable(v string) bool

	// Compare returns <0 if a sorts before b, 0 if equal, >0 otherwise.
	// The order is total for valid versions; invalid input sorts first.
	Compare(a, b string) int

	// Major returns the major component of v.
	Major(v string) (int, error)

	// Minor returns the minor component of v.
	Minor(v string) (int, error)

	// Patch returns the patch component of v.
	Patch(v string) (int, error)
}

var (
	schemes   = make(map[string]Scheme)
	schemesMu sync.RWMutex
)

// RegisterScheme adds a scheme implementation to the global registry.
// Scheme packages call this from init; importing the all package registers
// every bundled scheme.
func RegisterScheme(s Scheme) {
	schemesMu.Lock()
	defer schemesMu.Unlock()
	schemes[s.ID()] = s
}

// SchemeFor returns the scheme registered under id.
func SchemeFor(id string) (Scheme, error) {
	schemesMu.RLock()
	s, ok := schemes[id]
	schemesMu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownScheme, id)
	}
	return s, nil
}

// SupportedSchemes returns all registered scheme ids.
func SupportedSchemes() []string {
	schemesMu.RLock()
	defer schemesMu.RUnlock()

	ids := make([]string, 0, len(schemes))
	for id := range schemes {
		ids = append(ids, id)
	}
	return ids
}
