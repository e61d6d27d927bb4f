package core

import "sort"

// filterVersions extracts the usable version strings from a raw release list:
// non-empty, valid under the scheme, and stable unless prereleases are
// included. Invalid entries are dropped, never propagated.
func filterVersions(releases []Release, s Scheme, includePrerelease bool) []string {
	var out []string
	for _, r := range releases {
		if r.Version == "" {
			continue
		}
		if !r.isValid(s) {
			continue
		}
		if !includePrerelease && !s.IsStable(r.Version) {
			continue
		}
		out = append(out, r.Version)
	}
	return out
}

// isValid guards against scheme implementations that panic on garbage input.
// A version whose validity check blows up is invalid, not fatal.
func (r Release) isValid(s Scheme) (ok bool) {
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()
	return s.IsValid(r.Version)
}

// sortVersions orders versions ascending under the scheme comparator and
// collapses comparator-equal neighbours, keeping the first textual form.
// Without the dedup, equal versions with different spellings would inflate
// offset counting.
func sortVersions(versions []string, s Scheme) []string {
	sort.SliceStable(versions, func(i, j int) bool {
		return s.Compare(versions[i], versions[j]) < 0
	})

	out := versions[:0]
	for i, v := range versions {
		if i > 0 && s.Compare(out[len(out)-1], v) == 0 {
			continue
		}
		out = append(out, v)
	}
	return out
}
