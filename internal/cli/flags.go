package cli

import "gtestfilter/internal/config"

// Flags holds command-line flags
type Flags struct {
	GNPath     string
	SourceRoot string
	Match      string
	Exclude    string
	Progress   bool
	Verbose    bool
	Files      bool
	JSON       bool
}

// ToConfigFlags converts CLI flags to config flags
func (f *Flags) ToConfigFlags() config.Flags {
	return config.Flags{
		GNPath:     f.GNPath,
		SourceRoot: f.SourceRoot,
		Match:      f.Match,
		Exclude:    f.Exclude,
		Progress:   f.Progress,
		Verbose:    f.Verbose,
		Files:      f.Files,
		JSON:       f.JSON,
	}
}
