package scanner

import (
	"fmt"
	"os"
	"sort"

	"github.com/mahyarmirrashed/imgwatch/internal/matcher"
)

// DirectoryScanner lists the image files of a single directory.
type DirectoryScanner struct {
	matcher *matcher.Matcher
}

// New creates a DirectoryScanner. A nil matcher falls back to the image
// suffix matcher.
func New(m *matcher.Matcher) *DirectoryScanner {
	if m == nil {
		m = matcher.NewImageMatcher()
	}
	return &DirectoryScanner{matcher: m}
}

// ImageFiles returns the names of entries in dir whose name matches, sorted
// ascending. Subdirectories are not descended into, and entry types are not
// checked: a directory called "x.png" is listed like a file.
func (s *DirectoryScanner) ImageFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %q: %w", dir, err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if s.matcher.Matches(entry.Name()) {
			names = append(names, entry.Name())
		}
	}

	sort.Strings(names)
	return names, nil
}

// Latest returns the last name of a sorted listing. Numeric ordering only
// holds when names are zero-padded to the same width.
func Latest(names []string) (string, bool) {
	if len(names) == 0 {
		return "", false
	}
	return names[len(names)-1], true
}
