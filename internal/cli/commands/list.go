package commands

import (
	"github.com/spf13/cobra"
	"gtestfilter/internal/config"
	"gtestfilter/internal/ui"
)

// ListCommand handles the list command
type ListCommand struct {
	config     *config.Config
	discoverer *Discoverer
	formatter  *ui.Formatter
}

// NewListCommand creates a new ListCommand
func NewListCommand(
	cfg *config.Config,
	discoverer *Discoverer,
	formatter *ui.Formatter,
) *ListCommand {
	return &ListCommand{
		config:     cfg,
		discoverer: discoverer,
		formatter:  formatter,
	}
}

// Execute runs the command
func (lc *ListCommand) Execute(cmd *cobra.Command, args []string) error {
	classes, names, err := lc.discoverer.Discover(cmd.Context(), args)
	if err != nil {
		return err
	}

	if lc.config.Flags.JSON {
		return lc.formatter.PrintClassJSON(names, classes)
	}
	return lc.formatter.PrintClassList(names, classes, lc.config.Flags.Files)
}
