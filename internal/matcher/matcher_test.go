package matcher

import (
	"strings"
	"testing"
)

func TestImageMatcher(t *testing.T) {
	m := NewImageMatcher()

	tests := []struct {
		name string
		want bool
	}{
		{"a.png", true},
		{"b.jpg", true},
		{"c.jpeg", true},
		{"d.gif", true},
		{"notes.txt", false},
		{"IMG.PNG", false},
		{"photo.png.tmp", false},
		{"shotpng", true},
		{"", false},
	}

	for _, tt := range tests {
		if got := m.Matches(tt.name); got != tt.want {
			t.Errorf("Matches(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestNewInvalidPattern(t *testing.T) {
	_, err := NewMatcher([]string{"*png", "[unterminated"})
	if err == nil {
		t.Fatal("expected error for invalid pattern")
	}
	if !strings.Contains(err.Error(), "[unterminated") {
		t.Errorf("error %q does not name the pattern", err)
	}
}

func TestEmptyMatcher(t *testing.T) {
	m, err := NewMatcher(nil)
	if err != nil {
		t.Fatalf("NewMatcher(nil): %v", err)
	}
	if m.Matches("a.png") {
		t.Error("empty matcher should match nothing")
	}
}
