// Package semver provides the semver versioning scheme.
package semver

import (
	mmsemver "github.com/Masterminds/semver/v3"

	"github.com/git-pkgs/offset/internal/core"
)

const id = "semver"

func init() {
	core.RegisterScheme(Scheme{})
}

// Scheme implements core.Scheme for semantic versions. Parsing is coercing:
// a leading "v" and missing minor/patch components are tolerated, the way
// registries report them.
type Scheme struct{}

func (Scheme) ID() string {
	return id
}

func (Scheme) IsValid(v string) bool {
	_, err := mmsemver.NewVersion(v)
	return err == nil
}

func (Scheme) IsStable(v string) bool {
	sv, err := mmsemver.NewVersion(v)
	if err != nil {
		return false
	}
	return sv.Prerelease() == ""
}

func (Scheme) Compare(a, b string) int {
	av, aerr := mmsemver.NewVersion(a)
	bv, berr := mmsemver.NewVersion(b)
	switch {
	case aerr != nil && berr != nil:
		return 0
	case aerr != nil:
		return -1
	case berr != nil:
		return 1
	}
	return av.Compare(bv)
}

func (Scheme) Major(v string) (int, error) {
	sv, err := mmsemver.NewVersion(v)
	if err != nil {
		return 0, err
	}
	return int(sv.Major()), nil
}

func (Scheme) Minor(v string) (int, error) {
	sv, err := mmsemver.NewVersion(v)
	if err != nil {
		return 0, err
	}
	return int(sv.Minor()), nil
}

func (Scheme) Patch(v string) (int, error) {
	sv, err := mmsemver.NewVersion(v)
	if err != nil {
		return 0, err
	}
	return int(sv.Patch()), nil
}
