// Package pep440 provides the Python versioning scheme.
package pep440

import (
	goversion "github.com/hashicorp/go-version"

	"github.com/git-pkgs/offset/internal/core"
)

const id = "pep440"

func init() {
	core.RegisterScheme(Scheme{})
}

// Scheme implements core.Scheme for PEP 440-style versions: multi-segment
// numbers with optional pre-release suffixes ("1.2.3", "2.0.0-rc1",
// "1.4.0.2").
type Scheme struct{}

func (Scheme) ID() string {
	return id
}

func (Scheme) IsValid(v string) bool {
	_, err := goversion.NewVersion(v)
	return err == nil
}

func (Scheme) IsStable(v string) bool {
	pv, err := goversion.NewVersion(v)
	if err != nil {
		return false
	}
	return pv.Prerelease() == ""
}

func (Scheme) Compare(a, b string) int {
	av, aerr := goversion.NewVersion(a)
	bv, berr := goversion.NewVersion(b)
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
	return segment(v, 0)
}

func (Scheme) Minor(v string) (int, error) {
	return segment(v, 1)
}

func (Scheme) Patch(v string) (int, error) {
	return segment(v, 2)
}

// segment returns the nth numeric component. Segments() pads to three, so
// "2.1" yields patch 0.
func segment(v string, n int) (int, error) {
	pv, err := goversion.NewVersion(v)
	if err != nil {
		return 0, err
	}
	return pv.Segments()[n], nil
}
