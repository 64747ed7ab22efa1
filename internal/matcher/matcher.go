package matcher

import (
	"fmt"

	"github.com/gobwas/glob"
)

// ImagePatterns are the name suffixes treated as images. Matching is
// case-sensitive and has no leading dot, so "shotpng" is an image too.
var ImagePatterns = []string{"*png", "*jpg", "*jpeg", "*gif"}

// Matcher matches entry names against a list of glob patterns.
type Matcher struct {
	globs []glob.Glob
}

// NewMatcher compiles patterns into a Matcher. Names never contain a path
// separator, so '*' covers the whole name.
func NewMatcher(patterns []string) (*Matcher, error) {
	globs := make([]glob.Glob, 0, len(patterns))
	for _, pat := range patterns {
		g, err := glob.Compile(pat, '/')
		if err != nil {
			return nil, fmt.Errorf("invalid pattern %q: %w", pat, err)
		}
		globs = append(globs, g)
	}
	return &Matcher{globs: globs}, nil
}

// NewImageMatcher returns a Matcher for ImagePatterns.
func NewImageMatcher() *Matcher {
	m, err := NewMatcher(ImagePatterns)
	if err != nil {
		panic(err)
	}
	return m
}

// Matches reports whether name matches any of the patterns.
func (m *Matcher) Matches(name string) bool {
	for _, g := range m.globs {
		if g.Match(name) {
			return true
		}
	}
	return false
}
