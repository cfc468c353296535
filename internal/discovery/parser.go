package discovery

import (
	"fmt"
	"os"
	"regexp"
)

// testClassPattern matches a TEST or TEST_F macro and captures the fixture
// name. The leading newline is required, so a declaration on the very first
// line of a file is not picked up.
var testClassPattern = regexp.MustCompile(`\n(?:TEST|TEST_F)\s*\(\s*(\w+)\s*,[^)]+\)`)

// Parser extracts gtest class names from C++ sources
type Parser struct{}

// NewParser creates a new Parser
func NewParser() *Parser {
	return &Parser{}
}

// FindTestClasses reads a source file and returns the unique test class names
// it declares, in order of first appearance
func (p *Parser) FindTestClasses(filePath string) ([]string, error) {
	content, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("error reading file %s: %w", filePath, err)
	}

	return p.ParseTestClasses(string(content)), nil
}

// ParseTestClasses returns the unique test class names declared in content
func (p *Parser) ParseTestClasses(content string) []string {
	seen := make(map[string]bool)
	var classes []string

	for _, match := range testClassPattern.FindAllStringSubmatch(content, -1) {
		if len(match) < 2 || seen[match[1]] {
			continue
		}
		seen[match[1]] = true
		classes = append(classes, match[1])
	}

	return classes
}
