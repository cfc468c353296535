package discovery

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gtestfilter/internal/config"
	"gtestfilter/internal/domain"
	"gtestfilter/internal/ui"
)

func writeSource(t *testing.T, root, rel, content string) {
	t.Helper()
	full := filepath.Join(root, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(full), 0755))
	require.NoError(t, os.WriteFile(full, []byte(content), 0644))
}

func newTestExtractor(root string) (*Extractor, *bytes.Buffer) {
	var stderr bytes.Buffer
	cfg := config.New()
	cfg.SourceRoot = root
	return NewExtractor(cfg, NewParser(), ui.NewReporterTo(&stderr, false)), &stderr
}

func TestStripRootMarker(t *testing.T) {
	tests := []struct {
		source   string
		path     string
		isMarked bool
	}{
		{"//base/foo.cc", "base/foo.cc", true},
		{"//", "", true},
		{"base/foo.cc", "se/foo.cc", false},
		{"/", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.source, func(t *testing.T) {
			path, marked := StripRootMarker(tt.source)
			assert.Equal(t, tt.path, path)
			assert.Equal(t, tt.isMarked, marked)
		})
	}
}

func TestExtractor_Extract(t *testing.T) {
	root := t.TempDir()
	writeSource(t, root, "a/foo_unittest.cc", "#include \"foo.h\"\nTEST(Foo, Bar) {}\n")
	writeSource(t, root, "a/baz_unittest.cc", "\nTEST_F(Baz, Qux) {}\nTEST_F(Foo, Again) {}\n")
	writeSource(t, root, "a/foo.h", "#pragma once\nclass Foo {};\n")
	require.NoError(t, os.MkdirAll(filepath.Join(root, "a/dir_source"), 0755))

	extractor, stderr := newTestExtractor(root)

	classes := extractor.Extract(domain.NewSourceSet(
		"//a/foo_unittest.cc",
		"//a/baz_unittest.cc",
		"//a/foo.h",
		"//a/missing_unittest.cc",
		"//a/dir_source",
	))

	assert.Equal(t, []string{"Baz", "Foo"}, classes.Names())
	assert.Equal(t, []string{"//a/baz_unittest.cc", "//a/foo_unittest.cc"}, classes["Foo"])
	assert.Equal(t, "Baz.*:Foo.*", NewFilter().BuildFilter(classes.Names()))

	assert.Contains(t, stderr.String(), "Couldn't find file from source: //a/missing_unittest.cc")
	assert.Contains(t, stderr.String(), "Couldn't find file from source: //a/dir_source")
}

func TestExtractor_NoDeclarations(t *testing.T) {
	root := t.TempDir()
	writeSource(t, root, "lib.cc", "int Add(int a, int b) { return a + b; }\n")
	writeSource(t, root, "first_line_unittest.cc", "TEST(OnlyOnFirstLine, Missed) {}\n")

	extractor, stderr := newTestExtractor(root)
	classes := extractor.Extract(domain.NewSourceSet("//lib.cc", "//first_line_unittest.cc"))

	assert.Empty(t, classes)
	assert.Equal(t, "", NewFilter().BuildFilter(classes.Names()))
	assert.Empty(t, stderr.String())
}

func TestExtractor_WarnsOnMissingMarker(t *testing.T) {
	root := t.TempDir()
	writeSource(t, root, "se/foo_unittest.cc", "\nTEST(Foo, Bar) {}\n")

	extractor, stderr := newTestExtractor(root)
	classes := extractor.Extract(domain.NewSourceSet("base/foo_unittest.cc"))

	// The cut still removes two characters, the warning flags it
	assert.Equal(t, []string{"Foo"}, classes.Names())
	assert.Contains(t, stderr.String(), `Source does not start with "//"`)
}

func TestExtractor_IsIdempotent(t *testing.T) {
	root := t.TempDir()
	writeSource(t, root, "x_unittest.cc", "\nTEST(Zeta, A)\nTEST(Alpha, B)\nTEST(Mid, C)\n")
	writeSource(t, root, "y_unittest.cc", "\nTEST(Alpha, D)\n")

	extractor, _ := newTestExtractor(root)
	sources := domain.NewSourceSet("//x_unittest.cc", "//y_unittest.cc")
	filter := NewFilter()

	first := filter.BuildFilter(extractor.Extract(sources).Names())
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, filter.BuildFilter(extractor.Extract(sources).Names()))
	}
	assert.Equal(t, "Alpha.*:Mid.*:Zeta.*", first)
}
