package docker

import "testing"

func TestIsValid(t *testing.T) {
	tests := []struct {
		v    string
		want bool
	}{
		{"1.24", true},
		{"v2.1.3", true},
		{"8.1-bookworm", true},
		{"1.21.3-alpine3.18", true},
		{"3.0.0-rc1", true},
		{"latest", false},
		{"", false},
		{"stable-slim", false},
	}
	for _, tt := range tests {
		if got := (Scheme{}).IsValid(tt.v); got != tt.want {
			t.Errorf("IsValid(%q) = %v, want %v", tt.v, got, tt.want)
		}
	}
}

func TestIsStable(t *testing.T) {
	tests := []struct {
		v    string
		want bool
	}{
		{"1.24", true},
		{"8.1-bookworm", true},
		{"1.21.3-alpine3.18", true},
		{"3.0.0-rc1", false},
		{"2.0.0-beta", false},
		{"5.0-nightly", false},
		{"latest", false},
	}
	for _, tt := range tests {
		if got := (Scheme{}).IsStable(tt.v); got != tt.want {
			t.Errorf("IsStable(%q) = %v, want %v", tt.v, got, tt.want)
		}
	}
}

func TestCompare(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"1.24", "1.25", -1},
		{"1.9", "1.10", -1},
		{"2.0", "2.0.0", 0},
		{"v1.2", "1.2", 0},
		{"8.1-bookworm", "8.1", -1},
		{"8.1-bookworm", "8.2-bullseye", -1},
		{"3.0.0-rc1", "3.0.0", -1},
	}
	for _, tt := range tests {
		got := (Scheme{}).Compare(tt.a, tt.b)
		if sign(got) != tt.want {
			t.Errorf("Compare(%q, %q) = %d, want sign %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestComponents(t *testing.T) {
	s := Scheme{}
	major, err := s.Major("1.21.3-alpine3.18")
	if err != nil || major != 1 {
		t.Errorf("Major = %d, %v", major, err)
	}
	minor, err := s.Minor("1.21.3-alpine3.18")
	if err != nil || minor != 21 {
		t.Errorf("Minor = %d, %v", minor, err)
	}
	patch, err := s.Patch("1.21.3-alpine3.18")
	if err != nil || patch != 3 {
		t.Errorf("Patch = %d, %v", patch, err)
	}

	// Short tags read as zero for the missing parts.
	minor, err = s.Minor("8")
	if err != nil || minor != 0 {
		t.Errorf("Minor(8) = %d, %v, want 0", minor, err)
	}

	if _, err := s.Major("latest"); err == nil {
		t.Error("Major(latest) should fail")
	}
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	}
	return 0
}
