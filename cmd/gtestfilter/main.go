package main

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"

	"gtestfilter/internal/cli"
	"gtestfilter/internal/cli/commands"
	"gtestfilter/internal/config"
	"gtestfilter/internal/ui"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	command := filepath.Base(os.Args[0])

	// Create root command
	rootCmd := &cobra.Command{
		Use:   command + " <output_dir> <gn_target>...",
		Short: "Google Test filter from GN targets",
		Long: `Prints a Google Test filter string containing all test classes declared in the
sources of one or more GN targets. Typical use:

  out/Debug/components_unittests --gtest_filter=$(gtestfilter out/Debug //components/foo:unit_tests)`,
		Version: version,
	}
	if args == nil {
		args = []string{}
	}
	rootCmd.SetArgs(args)

	// Create initial config with defaults
	cfg := config.New()

	// Create flags struct (will be populated by command flags)
	var flags cli.Flags

	// Create commands with dependencies
	cmds := commands.NewCommands(cfg, os.Stdout, os.Stderr, commands.CommandQuerierFactory, ui.NewTUIPicker())

	// Register all commands
	cmds.Register(rootCmd, &flags, cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// Execute root command
	err := rootCmd.ExecuteContext(ctx)
	return cli.ReportError(os.Stderr, command, err)
}
