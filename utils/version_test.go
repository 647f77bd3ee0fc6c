package utils

import "testing"

func TestParseVersion(t *testing.T) {
	tests := []struct {
		in      string
		want    Version
		wantErr bool
	}{
		{"1.2.3", Version{1, 2, 3}, false},
		{"v1.2.0", Version{1, 2, 0}, false},
		{"1.2.0-rc1", Version{1, 2, 0}, false},
		{"0.0.1", Version{0, 0, 1}, false},
		{"1.2", Version{}, true},
		{"", Version{}, true},
		{"a.b.c", Version{}, true},
	}

	for _, tt := range tests {
		got, err := ParseVersion(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseVersion(%q): expected error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseVersion(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseVersion(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestVersionString(t *testing.T) {
	v := Version{Major: 1, Minor: 0, Patch: 7}
	if v.String() != "1.0.7" {
		t.Errorf("String() = %q, want %q", v.String(), "1.0.7")
	}
}

func TestVersionGreaterThan(t *testing.T) {
	tests := []struct {
		a, b Version
		want bool
	}{
		{Version{2, 0, 0}, Version{1, 9, 9}, true},
		{Version{1, 3, 0}, Version{1, 2, 9}, true},
		{Version{1, 2, 4}, Version{1, 2, 3}, true},
		{Version{1, 2, 3}, Version{1, 2, 3}, false},
		{Version{1, 2, 3}, Version{1, 2, 4}, false},
		{Version{1, 2, 3}, Version{2, 0, 0}, false},
	}

	for _, tt := range tests {
		if got := tt.a.GreaterThan(tt.b); got != tt.want {
			t.Errorf("%v.GreaterThan(%v) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}
