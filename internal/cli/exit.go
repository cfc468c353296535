package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"gtestfilter/internal/domain"
)

// MinArgs is the output directory plus at least one target
const MinArgs = 2

// ValidateArgs is a cobra.PositionalArgs requiring an output dir and targets
func ValidateArgs(_ *cobra.Command, args []string) error {
	if len(args) < MinArgs {
		return &domain.UsageError{Reason: fmt.Sprintf("expected at least %d arguments, got %d", MinArgs, len(args))}
	}
	return nil
}

// WriteUsage prints the short description and usage line for command
func WriteUsage(w io.Writer, command string) {
	fmt.Fprintf(w, "%s: prints a Google Test filter string containing all tests from GN targets' sources.\n", command)
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Usage: %s <output_dir> <gn_target_1> <gn_target_2> ...\n", command)
}

// ExitCode maps an error returned by a command to the process exit status.
// Query failures propagate the query tool's own code.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var qerr *domain.QueryFailedError
	if errors.As(err, &qerr) && qerr.ExitCode > 0 {
		return qerr.ExitCode
	}
	return 1
}

// ReportError prints err the way the command line reports it and returns the
// exit status to use
func ReportError(w io.Writer, command string, err error) int {
	if err == nil {
		return 0
	}

	var usage *domain.UsageError
	var qerr *domain.QueryFailedError
	switch {
	case errors.As(err, &usage):
		WriteUsage(w, command)
	case errors.As(err, &qerr):
		fmt.Fprintln(w, qerr.Error())
	default:
		fmt.Fprintf(w, "Error: %v\n", err)
	}
	return ExitCode(err)
}
