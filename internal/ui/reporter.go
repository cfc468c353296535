package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// Reporter writes diagnostics. Everything goes to stderr so stdout carries
// nothing but the result.
type Reporter struct {
	out     io.Writer
	verbose bool

	warn  *color.Color
	err   *color.Color
	debug *color.Color
}

// NewReporter creates a Reporter writing to stderr
func NewReporter(verbose bool) *Reporter {
	return NewReporterTo(os.Stderr, verbose)
}

// NewReporterTo creates a Reporter writing to w
func NewReporterTo(w io.Writer, verbose bool) *Reporter {
	r := &Reporter{
		out:     w,
		verbose: verbose,
		warn:    color.New(color.FgYellow),
		err:     color.New(color.FgRed),
		debug:   color.New(color.Faint),
	}

	// color only checks stdout; stderr may be redirected on its own
	if f, ok := w.(*os.File); ok && !isatty.IsTerminal(f.Fd()) {
		r.warn.DisableColor()
		r.err.DisableColor()
		r.debug.DisableColor()
	}

	return r
}

// Writer returns the underlying diagnostics stream
func (r *Reporter) Writer() io.Writer {
	return r.out
}

// Verbose reports whether Debugf output is enabled
func (r *Reporter) Verbose() bool {
	return r.verbose
}

// Warnf prints a non-fatal warning
func (r *Reporter) Warnf(format string, args ...interface{}) {
	r.warn.Fprintln(r.out, fmt.Sprintf(format, args...))
}

// Errorf prints an error line
func (r *Reporter) Errorf(format string, args ...interface{}) {
	r.err.Fprintln(r.out, fmt.Sprintf(format, args...))
}

// Debugf prints only in verbose mode
func (r *Reporter) Debugf(format string, args ...interface{}) {
	if !r.verbose {
		return
	}
	r.debug.Fprintln(r.out, fmt.Sprintf(format, args...))
}
