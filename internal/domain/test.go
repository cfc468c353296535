package domain

import "sort"

// TestClasses maps a test class (fixture) name to the source files declaring it
type TestClasses map[string][]string

// Add records that source declares class. A source is listed once per class.
func (tc TestClasses) Add(class, source string) {
	for _, existing := range tc[class] {
		if existing == source {
			return
		}
	}
	tc[class] = append(tc[class], source)
}

// Merge copies every entry of other into tc
func (tc TestClasses) Merge(other TestClasses) {
	for class, sources := range other {
		for _, source := range sources {
			tc.Add(class, source)
		}
	}
}

// Names returns the class names sorted in byte order
func (tc TestClasses) Names() []string {
	names := make([]string, 0, len(tc))
	for name := range tc {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
