// Command cavepaths counts and lists every start→end path through a cave
// network described by "A-B" edge lines.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/cavepaths/config"
)

// flagValues holds the persistent flags of one command tree.
type flagValues struct {
	configPath string
	verbose    bool
	start      string
	end        string
	separator  string
	policies   []string
	maxPaths   int
	maxDepth   int
	timeout    time.Duration
}

var (
	// Loaded in PersistentPreRunE
	cfg    *config.Config
	logger *zap.Logger
)

// newRootCmd builds the command tree with fresh flag state.
func newRootCmd() *cobra.Command {
	var fv flagValues

	rootCmd := &cobra.Command{
		Use:   "cavepaths [file]",
		Short: "Enumerate paths through a cave network",
		Long: `cavepaths reads an undirected cave graph, one "A-B" edge per line,
and enumerates every path from "start" to "end".

Small caves (all lower-case names) may be entered once per path under the
single-visit policy; under one-small-twice a single small cave may be
entered twice. Large caves are unrestricted and "start" is never re-entered.

Run without a subcommand to print both path counts. Use "-" to read stdin.`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setup(cmd, &fv)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
		RunE: runCount,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&fv.configPath, "config", "c", "", "YAML config file")
	pf.BoolVarP(&fv.verbose, "verbose", "v", false, "debug logging")
	pf.StringVar(&fv.start, "start", "", "start node (default from config: start)")
	pf.StringVar(&fv.end, "end", "", "end node (default from config: end)")
	pf.StringVar(&fv.separator, "separator", "", "edge separator (default from config: -)")
	pf.StringSliceVarP(&fv.policies, "policy", "p", nil, "policies to run: single, twice (repeatable)")
	pf.IntVar(&fv.maxPaths, "max-paths", 0, "abort when more paths exist (0 = unlimited)")
	pf.IntVar(&fv.maxDepth, "max-depth", 0, "abort when a path grows longer (0 = unlimited)")
	pf.DurationVar(&fv.timeout, "timeout", 0, "abort enumeration after this long (0 = none)")

	rootCmd.AddCommand(newCountCmd(), newListCmd(), newInspectCmd(), newConfigCmd())

	return rootCmd
}

// setup loads the config, applies flag overrides, and builds the logger.
func setup(cmd *cobra.Command, fv *flagValues) error {
	var err error
	cfg, err = config.Load(fv.configPath)
	if err != nil {
		return err
	}
	applyFlags(cmd, fv, cfg)
	if err = cfg.Validate(); err != nil {
		return err
	}

	logger, err = newLogger(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	return nil
}

// applyFlags copies explicitly set flags over config values.
func applyFlags(cmd *cobra.Command, fv *flagValues, c *config.Config) {
	fs := cmd.Flags()
	if fs.Changed("start") {
		c.Start = fv.start
	}
	if fs.Changed("end") {
		c.End = fv.end
	}
	if fs.Changed("separator") {
		c.Separator = fv.separator
	}
	if fs.Changed("policy") {
		c.Policies = fv.policies
	}
	if fs.Changed("max-paths") {
		c.MaxPaths = fv.maxPaths
	}
	if fs.Changed("max-depth") {
		c.MaxDepth = fv.maxDepth
	}
	if fs.Changed("timeout") {
		c.Timeout = fv.timeout
	}
	if fv.verbose {
		c.LogLevel = "debug"
	}
}

// newLogger builds a production zap logger at the given level.
func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(lvl)

	return zc.Build()
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
