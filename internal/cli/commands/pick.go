package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gtestfilter/internal/discovery"
	"gtestfilter/internal/ui"
)

// PickCommand handles the pick command
type PickCommand struct {
	discoverer *Discoverer
	picker     ui.Picker
	filter     *discovery.Filter
	out        io.Writer
}

// NewPickCommand creates a new PickCommand
func NewPickCommand(discoverer *Discoverer, picker ui.Picker, out io.Writer) *PickCommand {
	return &PickCommand{
		discoverer: discoverer,
		picker:     picker,
		filter:     discovery.NewFilter(),
		out:        out,
	}
}

// Execute runs the command
func (pc *PickCommand) Execute(cmd *cobra.Command, args []string) error {
	_, names, err := pc.discoverer.Discover(cmd.Context(), args)
	if err != nil {
		return err
	}

	selected, err := pc.picker.Pick(names)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(pc.out, pc.filter.BuildFilter(selected))
	return err
}
