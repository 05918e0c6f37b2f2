package domain

import (
	"fmt"
	"regexp"

	m "covquest.dev/pkg/covquest/internal/model"
)

// DefaultExcludedSegments lists the path segments that mark test sources.
var DefaultExcludedSegments = []string{"test"}

// PathFilter drops changed paths that cannot become challenge targets.
//
// A path is dropped when one of its "/"-separated segments equals an excluded
// segment exactly (case-sensitive), or when it matches one of the optional
// exclude patterns.
type PathFilter struct {
	segments map[string]struct{}
	patterns []*regexp.Regexp
}

// NewPathFilter builds a filter. A nil segments slice selects
// DefaultExcludedSegments; an empty non-nil slice disables segment matching.
func NewPathFilter(segments []string, patterns []string) (*PathFilter, error) {
	if segments == nil {
		segments = DefaultExcludedSegments
	}

	filter := &PathFilter{segments: make(map[string]struct{}, len(segments))}
	for _, segment := range segments {
		filter.segments[segment] = struct{}{}
	}

	for _, pattern := range patterns {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid exclude pattern %q: %w", pattern, err)
		}

		filter.patterns = append(filter.patterns, re)
	}

	return filter, nil
}

// Keep reports whether path survives the filter.
func (f *PathFilter) Keep(path m.Path) bool {
	for _, segment := range path.Segments() {
		if _, excluded := f.segments[segment]; excluded {
			return false
		}
	}

	for _, re := range f.patterns {
		if re.MatchString(string(path)) {
			return false
		}
	}

	return true
}

// Apply returns the subset of set that survives the filter, in the same order.
func (f *PathFilter) Apply(set *m.ChangedFileSet) *m.ChangedFileSet {
	return set.Filter(f.Keep)
}
