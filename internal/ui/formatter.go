package ui

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"gtestfilter/internal/domain"
)

// ClassListing is the JSON document printed by `list --json`
type ClassListing struct {
	Classes []ClassEntry `json:"classes"`
}

// ClassEntry is one discovered test class
type ClassEntry struct {
	Name  string   `json:"name"`
	Files []string `json:"files"`
}

// Formatter formats discovered classes for the list command
type Formatter struct {
	out io.Writer
}

// NewFormatter creates a new Formatter writing to out
func NewFormatter(out io.Writer) *Formatter {
	return &Formatter{out: out}
}

// PrintClassList prints one class per line, optionally followed by the
// sources declaring it
func (f *Formatter) PrintClassList(names []string, classes domain.TestClasses, withFiles bool) error {
	for _, name := range names {
		if !withFiles {
			if _, err := fmt.Fprintln(f.out, name); err != nil {
				return err
			}
			continue
		}

		line := color.CyanString("%s", name) + " " + color.New(color.Faint).Sprint(strings.Join(classes[name], " "))
		if _, err := fmt.Fprintln(f.out, line); err != nil {
			return err
		}
	}
	return nil
}

// PrintClassJSON prints the classes as an indented JSON document
func (f *Formatter) PrintClassJSON(names []string, classes domain.TestClasses) error {
	listing := ClassListing{Classes: make([]ClassEntry, 0, len(names))}
	for _, name := range names {
		files := classes[name]
		if files == nil {
			files = []string{}
		}
		listing.Classes = append(listing.Classes, ClassEntry{Name: name, Files: files})
	}

	data, err := json.MarshalIndent(listing, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal classes: %w", err)
	}
	_, err = fmt.Fprintln(f.out, string(data))
	return err
}
