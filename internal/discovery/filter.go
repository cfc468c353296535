package discovery

import (
	"path/filepath"
	"sort"
	"strings"
)

// Filter narrows and formats test class names
type Filter struct{}

// NewFilter creates a new Filter
func NewFilter() *Filter {
	return &Filter{}
}

// BuildFilter returns the gtest filter for names: every name as "<name>.*",
// sorted, joined with ":". Duplicates collapse; no escaping is applied.
func (f *Filter) BuildFilter(names []string) string {
	seen := make(map[string]bool, len(names))
	filters := make([]string, 0, len(names))
	for _, name := range names {
		if seen[name] {
			continue
		}
		seen[name] = true
		filters = append(filters, name+".*")
	}
	sort.Strings(filters)
	return strings.Join(filters, ":")
}

// MatchNames keeps the names matching include and not matching exclude.
// Patterns use * and ? wildcards; a pattern without wildcards matches as a
// substring. Empty patterns are ignored.
func (f *Filter) MatchNames(names []string, include, exclude string) []string {
	if include == "" && exclude == "" {
		return names
	}

	var filtered []string
	for _, name := range names {
		if include != "" && !matchName(include, name) {
			continue
		}
		if exclude != "" && matchName(exclude, name) {
			continue
		}
		filtered = append(filtered, name)
	}
	return filtered
}

func matchName(pattern, name string) bool {
	if !strings.ContainsAny(pattern, "*?[") {
		return strings.Contains(name, pattern)
	}
	matched, err := filepath.Match(pattern, name)
	return err == nil && matched
}
