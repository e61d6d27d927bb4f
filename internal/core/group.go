package core

import (
	"fmt"
	"sort"
)

// group is one semantic-level bucket of the sorted version list. Members stay
// in ascending order, so the last member is the group's maximum.
type group struct {
	key     string
	members []string
}

func (g group) max() string {
	return g.members[len(g.members)-1]
}

// groupKey builds the bucket key for v at the given level: "M" for major,
// "M.m" for minor, "M.m.p" for patch.
func groupKey(s Scheme, v string, level Level) (string, error) {
	major, err := s.Major(v)
	if err != nil {
		return "", err
	}
	if level == LevelMajor {
		return fmt.Sprintf("%d", major), nil
	}

	minor, err := s.Minor(v)
	if err != nil {
		return "", err
	}
	if level == LevelMinor {
		return fmt.Sprintf("%d.%d", major, minor), nil
	}

	patch, err := s.Patch(v)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%d.%d.%d", major, minor, patch), nil
}

// groupVersions partitions the sorted version list into level buckets, ordered
// by each bucket's maximal member under the scheme comparator.
//
// For minor and patch levels only siblings of current are considered: minor
// groups must share current's major, patch groups current's major and minor.
// Offsets at a sub-major level never cross a major boundary.
func groupVersions(versions []string, s Scheme, level Level, current string) []group {
	buckets := make(map[string][]string)
	for _, v := range versions {
		key, err := groupKey(s, v, level)
		if err != nil {
			continue
		}
		buckets[key] = append(buckets[key], v)
	}

	groups := make([]group, 0, len(buckets))
	for key, members := range buckets {
		groups = append(groups, group{key: key, members: members})
	}
	sort.Slice(groups, func(i, j int) bool {
		return s.Compare(groups[i].max(), groups[j].max()) < 0
	})

	if level == LevelMajor {
		return groups
	}
	return siblingGroups(groups, s, level, current)
}

// siblingGroups restricts groups to those sharing current's major (minor
// level) or major and minor (patch level). An unparsable current version has
// no siblings.
func siblingGroups(groups []group, s Scheme, level Level, current string) []group {
	wantMajor, err := s.Major(current)
	if err != nil {
		return nil
	}
	wantMinor := 0
	if level == LevelPatch {
		if wantMinor, err = s.Minor(current); err != nil {
			return nil
		}
	}

	var out []group
	for _, g := range groups {
		major, err := s.Major(g.max())
		if err != nil || major != wantMajor {
			continue
		}
		if level == LevelPatch {
			minor, err := s.Minor(g.max())
			if err != nil || minor != wantMinor {
				continue
			}
		}
		out = append(out, g)
	}
	return out
}
