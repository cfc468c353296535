package gn

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/alessio/shellescape"

	"gtestfilter/internal/config"
	"gtestfilter/internal/domain"
	"gtestfilter/internal/ui"
)

// Querier lists the source files of a single build target
type Querier interface {
	Sources(ctx context.Context, outputDir, target string) ([]string, error)
}

// CommandQuerier runs `gn desc <out> <target> sources`
type CommandQuerier struct {
	config   *config.Config
	reporter *ui.Reporter
	stderr   io.Writer
}

// NewCommandQuerier creates a new CommandQuerier. The child's stderr is
// forwarded to the reporter's stream.
func NewCommandQuerier(cfg *config.Config, reporter *ui.Reporter) *CommandQuerier {
	return &CommandQuerier{
		config:   cfg,
		reporter: reporter,
		stderr:   reporter.Writer(),
	}
}

// Command returns the argv used to query target's sources
func (q *CommandQuerier) Command(outputDir, target string) []string {
	return []string{q.config.GNPath, "desc", outputDir, target, config.SourcesQuery}
}

// Sources runs the query tool and returns one entry per non-blank output line.
// A non-zero exit yields *domain.QueryFailedError.
func (q *CommandQuerier) Sources(ctx context.Context, outputDir, target string) ([]string, error) {
	argv := q.Command(outputDir, target)
	q.reporter.Debugf("running: %s", shellescape.QuoteCommand(argv))

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Env = os.Environ()

	var stdout bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = q.stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			code := exitErr.ExitCode()
			if code <= 0 {
				code = 1
			}
			return nil, &domain.QueryFailedError{ExitCode: code, Command: argv}
		}
		return nil, fmt.Errorf("failed to run %s: %w", q.config.GNPath, err)
	}

	return SplitLines(stdout.String()), nil
}

// SplitLines splits query output into lines, dropping blank ones and any
// trailing carriage return
func SplitLines(output string) []string {
	var lines []string
	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}
