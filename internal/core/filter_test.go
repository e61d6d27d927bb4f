package core

import (
	"slices"
	"testing"
)

func releaseList(versions ...string) []Release {
	out := make([]Release, len(versions))
	for i, v := range versions {
		out[i] = Release{Version: v}
	}
	return out
}

func TestFilterVersionsDropsInvalid(t *testing.T) {
	got := filterVersions(releaseList("1.0.0", "invalid", "2.0.0", "not-a-version", "", "3.0.0"), fakeScheme{}, false)
	want := []string{"1.0.0", "2.0.0", "3.0.0"}
	if !slices.Equal(got, want) {
		t.Errorf("filterVersions = %v, want %v", got, want)
	}
}

func TestFilterVersionsPrereleases(t *testing.T) {
	releases := releaseList("1.0.0", "2.0.0-rc.1", "2.0.0")

	got := filterVersions(releases, fakeScheme{}, false)
	if want := []string{"1.0.0", "2.0.0"}; !slices.Equal(got, want) {
		t.Errorf("stable only = %v, want %v", got, want)
	}

	got = filterVersions(releases, fakeScheme{}, true)
	if want := []string{"1.0.0", "2.0.0-rc.1", "2.0.0"}; !slices.Equal(got, want) {
		t.Errorf("with prereleases = %v, want %v", got, want)
	}
}

func TestFilterVersionsEmptyInput(t *testing.T) {
	if got := filterVersions(nil, fakeScheme{}, false); len(got) != 0 {
		t.Errorf("filterVersions(nil) = %v, want empty", got)
	}
}

func TestFilterVersionsContainsPanics(t *testing.T) {
	// A scheme that panics on validity checks must not take the pipeline down.
	got := filterVersions(releaseList("1.0.0", "2.0.0"), panicScheme{}, false)
	if len(got) != 0 {
		t.Errorf("filterVersions = %v, want empty when validity checks panic", got)
	}
}

func TestSortVersionsAscending(t *testing.T) {
	got := sortVersions([]string{"2.0.0", "1.0.0", "10.0.0", "1.2.0"}, fakeScheme{})
	want := []string{"1.0.0", "1.2.0", "2.0.0", "10.0.0"}
	if !slices.Equal(got, want) {
		t.Errorf("sortVersions = %v, want %v", got, want)
	}
}

func TestSortVersionsDeduplicates(t *testing.T) {
	// Comparator-equal spellings must not inflate offset counting.
	got := sortVersions([]string{"1.0.0", "2.0.0", "1.0.0", "3.0.0", "2.0.0"}, fakeScheme{})
	want := []string{"1.0.0", "2.0.0", "3.0.0"}
	if !slices.Equal(got, want) {
		t.Errorf("sortVersions = %v, want %v", got, want)
	}
}
