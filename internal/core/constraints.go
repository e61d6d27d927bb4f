package core

// validateConstraints checks the offset configuration for well-formedness.
// It runs before any network access: a bad offset must never cost a fetch.
//
// Rules, first violation wins:
//  1. positive offset is an error
//  2. an unknown offset level is an error
//  3. a level without a non-zero offset is ignored, not rejected
func validateConstraints(c Constraints) error {
	if c.Offset > 0 {
		return &InvalidOffsetError{Offset: c.Offset}
	}
	if c.OffsetLevel != "" && !c.OffsetLevel.known() {
		return &InvalidOffsetLevelError{Level: c.OffsetLevel}
	}
	return nil
}

// effectiveLevel returns the level to group by, dropping the level when the
// offset is zero (rule 3: offset 0 always means the flat latest).
func effectiveLevel(c Constraints) Level {
	if c.Offset == 0 {
		return ""
	}
	return c.OffsetLevel
}
