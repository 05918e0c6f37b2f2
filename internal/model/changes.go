package model

// ChangedFileSet is an insertion-ordered set of distinct paths.
//
// Paths keep the order in which they were first added, which for history
// scans is the order commits were visited (most recent first). The zero value
// is an empty set ready to use.
type ChangedFileSet struct {
	paths []Path
	index map[Path]struct{}
}

// NewChangedFileSet builds a set from the given paths, dropping duplicates.
func NewChangedFileSet(paths ...Path) *ChangedFileSet {
	set := &ChangedFileSet{}
	set.Add(paths...)

	return set
}

// Add appends paths that are not yet part of the set.
func (s *ChangedFileSet) Add(paths ...Path) {
	if s.index == nil {
		s.index = make(map[Path]struct{}, len(paths))
	}

	for _, path := range paths {
		if _, ok := s.index[path]; ok {
			continue
		}

		s.index[path] = struct{}{}
		s.paths = append(s.paths, path)
	}
}

// Contains reports whether path is part of the set.
func (s *ChangedFileSet) Contains(path Path) bool {
	if s == nil {
		return false
	}

	_, ok := s.index[path]

	return ok
}

// Len returns the number of paths in the set.
func (s *ChangedFileSet) Len() int {
	if s == nil {
		return 0
	}

	return len(s.paths)
}

// Paths returns a copy of the paths in insertion order.
func (s *ChangedFileSet) Paths() []Path {
	if s == nil {
		return []Path{}
	}

	out := make([]Path, len(s.paths))
	copy(out, s.paths)

	return out
}

// Filter returns a new set holding only the paths for which keep is true.
func (s *ChangedFileSet) Filter(keep func(Path) bool) *ChangedFileSet {
	filtered := &ChangedFileSet{}

	for _, path := range s.Paths() {
		if keep(path) {
			filtered.Add(path)
		}
	}

	return filtered
}
