package core

import (
	"errors"
	"fmt"
)

// ErrUnknownScheme is returned when a scheme id has no registered
// implementation. This is the only error a resolution surfaces to its caller.
var ErrUnknownScheme = errors.New("unknown versioning scheme")

// InvalidOffsetError reports a positive offset.
type InvalidOffsetError struct {
	Offset int
}

func (e *InvalidOffsetError) Error() string {
	return fmt.Sprintf("offset must be zero or negative, got %d", e.Offset)
}

// InvalidOffsetLevelError reports an offset level outside major/minor/patch.
type InvalidOffsetLevelError struct {
	Level Level
}

func (e *InvalidOffsetLevelError) Error() string {
	return fmt.Sprintf("offset level %q is not one of major, minor, patch", string(e.Level))
}

// EmptyVersionListError reports that no releases were available, or that none
// survived filtering.
type EmptyVersionListError struct {
	Datasource string
	Package    string
}

func (e *EmptyVersionListError) Error() string {
	return fmt.Sprintf("%s: no usable versions for package %s", e.Datasource, e.Package)
}

// OffsetOutOfBoundsError reports that the offset index fell outside the
// available versions or groups.
type OffsetOutOfBoundsError struct {
	Offset    int
	Available int
	Level     Level
}

func (e *OffsetOutOfBoundsError) Error() string {
	if e.Level != "" {
		return fmt.Sprintf("offset %d out of range for %d %s groups", e.Offset, e.Available, string(e.Level))
	}
	return fmt.Sprintf("offset %d out of range for %d versions", e.Offset, e.Available)
}

// FetchError reports that release retrieval failed after exhausting retries.
type FetchError struct {
	Datasource string
	Package    string
	Err        error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("%s: fetching releases for %s: %v", e.Datasource, e.Package, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}
