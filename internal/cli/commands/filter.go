package commands

import (
	"fmt"
	"io"

	"gtestfilter/internal/discovery"

	"github.com/spf13/cobra"
)

// FilterCommand prints the gtest filter for all discovered classes
type FilterCommand struct {
	discoverer *Discoverer
	filter     *discovery.Filter
	out        io.Writer
}

// NewFilterCommand creates a new FilterCommand
func NewFilterCommand(discoverer *Discoverer, out io.Writer) *FilterCommand {
	return &FilterCommand{
		discoverer: discoverer,
		filter:     discovery.NewFilter(),
		out:        out,
	}
}

// Execute runs the command
func (fc *FilterCommand) Execute(cmd *cobra.Command, args []string) error {
	_, names, err := fc.discoverer.Discover(cmd.Context(), args)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(fc.out, fc.filter.BuildFilter(names))
	return err
}
