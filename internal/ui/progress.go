package ui

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/schollz/progressbar/v3"
)

// Progress receives per-file scan updates
type Progress interface {
	Update(scanned, classes int)
	Finish()
}

// NoProgress discards updates
type NoProgress struct{}

func (NoProgress) Update(int, int) {}
func (NoProgress) Finish()         {}

// ProgressBar renders scan progress on stderr
type ProgressBar struct {
	bar *progressbar.ProgressBar
}

// NewProgress returns a ProgressBar when enabled and stderr is a terminal,
// NoProgress otherwise
func NewProgress(enabled bool, count int) Progress {
	if !enabled || count == 0 || !isatty.IsTerminal(os.Stderr.Fd()) {
		return NoProgress{}
	}
	return NewProgressBar(count)
}

// NewProgressBar creates a new progress bar
func NewProgressBar(count int) *ProgressBar {
	bar := progressbar.NewOptions(count,
		progressbar.OptionSetDescription(
			color.CyanString("Scanning sources: ")+
				color.GreenString("[classes: 0]"),
		),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        color.CyanString("█"),
			SaucerHead:    color.CyanString("█"),
			SaucerPadding: "░",
			BarStart:      "│",
			BarEnd:        "│",
		}),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprint(os.Stderr, "\n")
		}),
		progressbar.OptionSetRenderBlankState(true),
	)

	return &ProgressBar{bar: bar}
}

// Update sets the number of scanned files and classes found so far
func (p *ProgressBar) Update(scanned, classes int) {
	_ = p.bar.Set(scanned)
	p.bar.Describe(
		color.CyanString("Scanning sources: ") +
			color.GreenString("[classes: %d]", classes),
	)
}

// Finish completes the progress bar
func (p *ProgressBar) Finish() {
	_ = p.bar.Finish()
}
