package commands

import (
	"context"
	"fmt"
	"io"

	"gtestfilter/internal/cli"
	"gtestfilter/internal/config"
	"gtestfilter/internal/discovery"
	"gtestfilter/internal/domain"
	"gtestfilter/internal/gn"
	"gtestfilter/internal/ui"

	"github.com/spf13/cobra"
)

// QuerierFactory builds the source querier once flags are known
type QuerierFactory func(cfg *config.Config, reporter *ui.Reporter) gn.Querier

// CommandQuerierFactory queries the real gn binary
func CommandQuerierFactory(cfg *config.Config, reporter *ui.Reporter) gn.Querier {
	return gn.NewCommandQuerier(cfg, reporter)
}

// Commands holds all CLI commands
type Commands struct {
	Filter *FilterCommand
	List   *ListCommand
	Pick   *PickCommand
}

// NewCommands creates all commands with dependencies
func NewCommands(cfg *config.Config, stdout, stderr io.Writer, newQuerier QuerierFactory, picker ui.Picker) *Commands {
	discoverer := &Discoverer{
		config:     cfg,
		stderr:     stderr,
		newQuerier: newQuerier,
		filter:     discovery.NewFilter(),
	}

	return &Commands{
		Filter: NewFilterCommand(discoverer, stdout),
		List:   NewListCommand(cfg, discoverer, ui.NewFormatter(stdout)),
		Pick:   NewPickCommand(discoverer, picker, stdout),
	}
}

// Discoverer runs resolve and extract for the positional arguments
type Discoverer struct {
	config     *config.Config
	stderr     io.Writer
	newQuerier QuerierFactory
	filter     *discovery.Filter
}

// Discover resolves args[0] (output dir) and args[1:] (targets) to test
// classes. The returned names are sorted and already narrowed by --match and
// --exclude.
func (d *Discoverer) Discover(ctx context.Context, args []string) (domain.TestClasses, []string, error) {
	reporter := ui.NewReporterTo(d.stderr, d.config.Flags.Verbose)
	outputDir, targets := args[0], args[1:]

	resolver := gn.NewResolver(d.newQuerier(d.config, reporter))
	sources, err := resolver.Resolve(ctx, outputDir, targets)
	if err != nil {
		return nil, nil, fmt.Errorf("resolve sources: %w", err)
	}
	reporter.Debugf("%d source(s) from %d target(s)", len(sources), len(targets))

	extractor := discovery.NewExtractor(d.config, discovery.NewParser(), reporter)
	classes := extractor.Extract(sources)

	names := d.filter.MatchNames(classes.Names(), d.config.Flags.Match, d.config.Flags.Exclude)
	reporter.Debugf("%d test class(es), %d after filtering", len(classes), len(names))

	return classes, names, nil
}

// Register registers all commands with cobra
func (c *Commands) Register(rootCmd *cobra.Command, flags *cli.Flags, cfg *config.Config) {
	loadConfig := func(cmd *cobra.Command, args []string) error {
		// Update config with flags after parsing
		*cfg = *config.Load(flags.ToConfigFlags())
		return nil
	}

	rootCmd.Args = cli.ValidateArgs
	rootCmd.RunE = c.Filter.Execute
	rootCmd.PersistentPreRunE = loadConfig
	rootCmd.SilenceUsage = true
	rootCmd.SilenceErrors = true
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flags.GNPath, "gn", "", "Path to the gn binary (default \"gn\", or $"+config.EnvGNPath+")")
	pf.StringVarP(&flags.SourceRoot, "source-root", "C", "", "Directory that source paths are relative to (default \".\", or $"+config.EnvSourceRoot+")")
	pf.StringVarP(&flags.Match, "match", "m", "", "Keep only test classes matching this pattern (supports wildcards, e.g. '*TaskTest')")
	pf.StringVarP(&flags.Exclude, "exclude", "x", "", "Drop test classes matching this pattern (supports wildcards)")
	pf.BoolVar(&flags.Progress, "progress", false, "Show a progress bar on stderr while scanning sources")
	pf.BoolVarP(&flags.Verbose, "verbose", "v", false, "Print gn invocations and scan details on stderr")

	// List command
	listCmd := &cobra.Command{
		Use:   "list <output_dir> <gn_target>...",
		Short: "List discovered test classes",
		Long:  "Resolve the targets' sources and print every test class found, one per line",
		Args:  cli.ValidateArgs,
		RunE:  c.List.Execute,
	}
	listCmd.Flags().BoolVar(&flags.Files, "files", false, "Print the sources declaring each class")
	listCmd.Flags().BoolVar(&flags.JSON, "json", false, "Print classes and their sources as JSON")
	rootCmd.AddCommand(listCmd)

	// Pick command
	pickCmd := &cobra.Command{
		Use:   "pick <output_dir> <gn_target>...",
		Short: "Choose test classes interactively",
		Long:  "Show a checklist of discovered test classes and print the filter for the selected ones",
		Args:  cli.ValidateArgs,
		RunE:  c.Pick.Execute,
	}
	rootCmd.AddCommand(pickCmd)
}
