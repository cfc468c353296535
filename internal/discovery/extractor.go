package discovery

import (
	"os"
	"strings"

	"gtestfilter/internal/config"
	"gtestfilter/internal/domain"
	"gtestfilter/internal/ui"
)

// Extractor turns resolved GN sources into test class names
type Extractor struct {
	config   *config.Config
	parser   *Parser
	reporter *ui.Reporter
}

// NewExtractor creates a new Extractor
func NewExtractor(cfg *config.Config, parser *Parser, reporter *ui.Reporter) *Extractor {
	return &Extractor{
		config:   cfg,
		parser:   parser,
		reporter: reporter,
	}
}

// StripRootMarker drops the two character "//" root marker gn desc prints in
// front of every source. The second result is false when the marker was not
// there and the cut may have eaten part of the path.
func StripRootMarker(source string) (string, bool) {
	if len(source) < len(config.RootMarker) {
		return "", false
	}
	return source[len(config.RootMarker):], strings.HasPrefix(source, config.RootMarker)
}

// Extract scans every source that exists on disk and collects the declared
// test classes. Missing or unreadable files are reported and skipped.
func (e *Extractor) Extract(sources domain.SourceSet) domain.TestClasses {
	classes := make(domain.TestClasses)

	paths := sources.Sorted()
	progress := ui.NewProgress(e.config.Flags.Progress, len(paths))
	defer progress.Finish()

	for i, source := range paths {
		e.extractOne(source, classes)
		progress.Update(i+1, len(classes))
	}

	return classes
}

func (e *Extractor) extractOne(source string, classes domain.TestClasses) {
	relative, marked := StripRootMarker(source)
	if !marked {
		e.reporter.Warnf("Source does not start with %q, path may be wrong: %s", config.RootMarker, source)
	}

	path := e.config.GetSourcePath(relative)
	if !isRegularFile(path) {
		e.reporter.Warnf("Couldn't find file from source: %s", source)
		return
	}

	found, err := e.parser.FindTestClasses(path)
	if err != nil {
		e.reporter.Warnf("Skipping source %s: %v", source, err)
		return
	}

	e.reporter.Debugf("%s: %d test class(es)", source, len(found))
	for _, class := range found {
		classes.Add(class, source)
	}
}

func isRegularFile(path string) bool {
	if path == "" {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
