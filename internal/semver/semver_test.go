package semver

import "testing"

func TestIsValid(t *testing.T) {
	tests := []struct {
		v    string
		want bool
	}{
		{"1.2.3", true},
		{"v1.2.3", true},
		{"1.2", true},
		{"2.0.0-rc.1", true},
		{"1.0.0+build.5", true},
		{"", false},
		{"not-a-version", false},
		{"1.x.3", false},
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
		{"1.2.3", true},
		{"2.0.0-rc.1", false},
		{"2.0.0-beta", false},
		{"1.0.0+build.5", true},
		{"garbage", false},
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
		{"1.0.0", "2.0.0", -1},
		{"2.0.0", "1.0.0", 1},
		{"1.2.3", "1.2.3", 0},
		{"1.9.0", "1.10.0", -1},
		{"2.0.0-rc.1", "2.0.0", -1},
		{"1.2.3", "v1.2.3", 0},
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
	major, err := s.Major("2.1.3")
	if err != nil || major != 2 {
		t.Errorf("Major = %d, %v", major, err)
	}
	minor, err := s.Minor("2.1.3")
	if err != nil || minor != 1 {
		t.Errorf("Minor = %d, %v", minor, err)
	}
	patch, err := s.Patch("2.1.3")
	if err != nil || patch != 3 {
		t.Errorf("Patch = %d, %v", patch, err)
	}

	if _, err := s.Major("junk"); err == nil {
		t.Error("Major(junk) should fail")
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
