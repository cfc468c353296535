package domain

import "sort"

// SourceSet is the union of source paths reported by the query tool
type SourceSet map[string]struct{}

// NewSourceSet creates a SourceSet holding the given paths
func NewSourceSet(paths ...string) SourceSet {
	s := make(SourceSet, len(paths))
	s.Add(paths...)
	return s
}

// Add inserts paths, ignoring duplicates
func (s SourceSet) Add(paths ...string) {
	for _, p := range paths {
		s[p] = struct{}{}
	}
}

// Sorted returns the paths in byte order
func (s SourceSet) Sorted() []string {
	paths := make([]string, 0, len(s))
	for p := range s {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}
