package config

const (
	// DefaultGNPath is the build-graph query tool looked up on PATH
	DefaultGNPath = "gn"
	// DefaultSourceRoot is where stripped source paths are resolved from
	DefaultSourceRoot = "."
	// DefaultEnvFile is read from the working directory when present
	DefaultEnvFile = ".env"
	// RootMarker prefixes every source path printed by gn desc
	RootMarker = "//"
)

// Environment variables that override the defaults
const (
	EnvGNPath     = "GTESTFILTER_GN"
	EnvSourceRoot = "GTESTFILTER_SOURCE_ROOT"
)

// SourcesQuery is the gn desc "what" argument listing a target's sources
const SourcesQuery = "sources"
