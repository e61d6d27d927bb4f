// Package docker provides a versioning scheme for Docker image tags.
//
// Tags are an optional "v", dot-separated numeric components, and an optional
// suffix after the first hyphen ("1.24", "v2.1.3", "8.1-bookworm"). Numeric
// components order the tags; on a numeric tie a bare tag sorts after a
// suffixed one, and suffixes order lexically.
package docker

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/git-pkgs/offset/internal/core"
)

const id = "docker"

func init() {
	core.RegisterScheme(Scheme{})
}

var tagRe = regexp.MustCompile(`^v?(\d+(?:\.\d+)*)(?:-([A-Za-z0-9.-]+))?$`)

// Suffix words that mark a tag as a pre-release rather than a platform
// variant like "-alpine" or "-bookworm".
var prereleaseWords = map[string]bool{
	"alpha":    true,
	"beta":     true,
	"rc":       true,
	"dev":      true,
	"pre":      true,
	"preview":  true,
	"nightly":  true,
	"snapshot": true,
	"canary":   true,
}

// Scheme implements core.Scheme for Docker tags.
type Scheme struct{}

func (Scheme) ID() string {
	return id
}

func (Scheme) IsValid(v string) bool {
	return tagRe.MatchString(v)
}

func (Scheme) IsStable(v string) bool {
	m := tagRe.FindStringSubmatch(v)
	if m == nil {
		return false
	}
	for _, word := range strings.FieldsFunc(strings.ToLower(m[2]), func(r rune) bool {
		return r == '.' || r == '-'
	}) {
		if prereleaseWords[strings.TrimRight(word, "0123456789")] {
			return false
		}
	}
	return true
}

func (Scheme) Compare(a, b string) int {
	am := tagRe.FindStringSubmatch(a)
	bm := tagRe.FindStringSubmatch(b)
	switch {
	case am == nil && bm == nil:
		return 0
	case am == nil:
		return -1
	case bm == nil:
		return 1
	}

	an := numbers(am[1])
	bn := numbers(bm[1])
	for i := 0; i < len(an) || i < len(bn); i++ {
		av, bv := 0, 0
		if i < len(an) {
			av = an[i]
		}
		if i < len(bn) {
			bv = bn[i]
		}
		if av != bv {
			if av < bv {
				return -1
			}
			return 1
		}
	}

	// Numeric tie: bare tag beats suffixed, then lexical suffix order.
	switch {
	case am[2] == bm[2]:
		return 0
	case am[2] == "":
		return 1
	case bm[2] == "":
		return -1
	}
	return strings.Compare(am[2], bm[2])
}

func (s Scheme) Major(v string) (int, error) {
	return s.component(v, 0)
}

func (s Scheme) Minor(v string) (int, error) {
	return s.component(v, 1)
}

func (s Scheme) Patch(v string) (int, error) {
	return s.component(v, 2)
}

// component returns the nth numeric part of the tag, 0 when the tag has
// fewer parts ("1.24" has patch 0).
func (Scheme) component(v string, n int) (int, error) {
	m := tagRe.FindStringSubmatch(v)
	if m == nil {
		return 0, fmt.Errorf("invalid docker tag: %q", v)
	}
	parts := numbers(m[1])
	if n >= len(parts) {
		return 0, nil
	}
	return parts[n], nil
}

func numbers(s string) []int {
	parts := strings.Split(s, ".")
	out := make([]int, len(parts))
	for i, p := range parts {
		n, _ := strconv.Atoi(p)
		out[i] = n
	}
	return out
}
