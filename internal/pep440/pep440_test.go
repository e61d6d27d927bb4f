package pep440

import "testing"

func TestIsValid(t *testing.T) {
	tests := []struct {
		v    string
		want bool
	}{
		{"1.2.3", true},
		{"2.31.0", true},
		{"1.4.0.2", true},
		{"2.0.0rc1", true},
		{"1.0b1", true},
		{"", false},
		{"not-a-version", false},
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
		{"2.31.0", true},
		{"2.0.0rc1", false},
		{"1.0b1", false},
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
		{"2.9.0", "2.10.0", -1},
		{"2.0.0rc1", "2.0.0", -1},
		{"1.4.0", "1.4.0.2", -1},
		{"2.31.0", "2.31.0", 0},
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
	major, err := s.Major("2.31.4")
	if err != nil || major != 2 {
		t.Errorf("Major = %d, %v", major, err)
	}
	minor, err := s.Minor("2.31.4")
	if err != nil || minor != 31 {
		t.Errorf("Minor = %d, %v", minor, err)
	}
	patch, err := s.Patch("2.31.4")
	if err != nil || patch != 4 {
		t.Errorf("Patch = %d, %v", patch, err)
	}

	// Short forms pad with zeros.
	patch, err = s.Patch("2.31")
	if err != nil || patch != 0 {
		t.Errorf("Patch(2.31) = %d, %v, want 0", patch, err)
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
