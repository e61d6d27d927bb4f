package core

// selectFlat applies the offset to the flat sorted list: index len-1+offset,
// so offset 0 is the latest. An index outside the list means no selection.
func selectFlat(versions []string, offset int) (string, error) {
	idx := len(versions) - 1 + offset
	if idx < 0 || idx >= len(versions) {
		return "", &OffsetOutOfBoundsError{Offset: offset, Available: len(versions)}
	}
	return versions[idx], nil
}

// selectGrouped applies the same index arithmetic over the level-filtered
// group list and yields the chosen group's maximal member.
func selectGrouped(versions []string, s Scheme, level Level, current string, offset int) (string, error) {
	groups := groupVersions(versions, s, level, current)
	idx := len(groups) - 1 + offset
	if idx < 0 || idx >= len(groups) {
		return "", &OffsetOutOfBoundsError{Offset: offset, Available: len(groups), Level: level}
	}
	return groups[idx].max(), nil
}
