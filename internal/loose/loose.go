// Package loose provides a permissive fallback versioning scheme for
// datasources with no well-defined version syntax.
package loose

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/git-pkgs/vers"

	"github.com/git-pkgs/offset/internal/core"
)

const id = "loose"

func init() {
	core.RegisterScheme(Scheme{})
}

var componentsRe = regexp.MustCompile(`^v?(\d+)(?:\.(\d+))?(?:\.(\d+))?`)

var prereleaseRe = regexp.MustCompile(`(?i)(?:^|[._-])(alpha|beta|rc|dev|pre|preview|snapshot|nightly|canary)(?:[._-]|\d|$)`)

// Scheme implements core.Scheme on top of the universal version comparison
// from the vers package. Anything with a leading number is a version.
type Scheme struct{}

func (Scheme) ID() string {
	return id
}

func (Scheme) IsValid(v string) bool {
	v = normalize(v)
	return componentsRe.MatchString(v) && vers.Valid(v)
}

func (Scheme) IsStable(v string) bool {
	return !prereleaseRe.MatchString(v)
}

func (Scheme) Compare(a, b string) int {
	return vers.Compare(normalize(a), normalize(b))
}

// normalize strips the decoration vers has no opinion on.
func normalize(v string) string {
	return strings.TrimPrefix(strings.TrimSpace(v), "v")
}

func (s Scheme) Major(v string) (int, error) {
	return s.component(v, 1)
}

func (s Scheme) Minor(v string) (int, error) {
	return s.component(v, 2)
}

func (s Scheme) Patch(v string) (int, error) {
	return s.component(v, 3)
}

func (Scheme) component(v string, n int) (int, error) {
	m := componentsRe.FindStringSubmatch(strings.TrimSpace(v))
	if m == nil {
		return 0, fmt.Errorf("no numeric components in %q", v)
	}
	if m[n] == "" {
		return 0, nil
	}
	return strconv.Atoi(m[n])
}
