// Package core provides the resolution data model, the versioning scheme
// registry, and the resolver pipeline.
package core

// Release is a single published release of a package, as reported by a
// registry. Version is the raw registry string and may be empty or malformed;
// the pipeline filters rather than rejects such entries.
type Release struct {
	Version          string
	ReleaseTimestamp string
}

// Level is the semantic granularity at which an offset is applied.
type Level string

const (
	LevelMajor Level = "major"
	LevelMinor Level = "minor"
	LevelPatch Level = "patch"
)

// known reports whether l is one of the supported levels.
func (l Level) known() bool {
	switch l {
	case LevelMajor, LevelMinor, LevelPatch:
		return true
	}
	return false
}

// Constraints configures how far behind the latest release to resolve.
//
// Offset counts releases behind the latest (0 = latest) and must never be
// positive. OffsetLevel, when set, applies the offset to semantic-level
// buckets instead of the flat release list and requires a non-zero Offset.
// AllowedVersions is carried for callers but not interpreted here.
type Constraints struct {
	Offset            int
	OffsetLevel       Level
	IncludePrerelease bool
	AllowedVersions   string
}

// Request identifies one resolution: which package, on which datasource,
// versioned under which scheme, and what the caller currently uses.
type Request struct {
	Datasource  string
	Package     string
	Scheme      string
	Current     string
	Constraints Constraints
}

// Result is the outcome of a resolution. Version always holds a usable value:
// the selected version when Updated is true, otherwise the caller's current
// value. Reason carries the typed cause of a fallback and is nil on success.
type Result struct {
	Version string
	Updated bool
	Reason  error
}
