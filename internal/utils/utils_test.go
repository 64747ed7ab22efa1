package utils

import (
	"os"
	"path/filepath"
	"testing"
)

func TestExpandTilde(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	tests := []struct {
		in, want string
	}{
		{"~", home},
		{"~/shots", filepath.Join(home, "shots")},
		{"/abs/path", "/abs/path"},
		{"rel/path", "rel/path"},
		{"~other/path", "~other/path"},
	}

	for _, tt := range tests {
		if got := ExpandTilde(tt.in); got != tt.want {
			t.Errorf("ExpandTilde(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
