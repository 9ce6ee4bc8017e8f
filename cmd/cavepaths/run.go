package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/cavepaths/core"
	"github.com/katalvlaran/cavepaths/dfs"
	"github.com/katalvlaran/cavepaths/visit"
)

// loadGraph reads edge lines from the file named by args[0], or stdin when
// args is empty or "-".
func loadGraph(cmd *cobra.Command, args []string) (*core.Graph, error) {
	var r io.Reader = cmd.InOrStdin()
	name := "stdin"
	if len(args) == 1 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return nil, fmt.Errorf("failed to open input: %w", err)
		}
		defer f.Close()
		r, name = f, args[0]
	}

	g, err := core.Parse(r, cfg.GraphOptions()...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	logger.Debug("graph loaded",
		zap.String("input", name),
		zap.Int("nodes", g.Len()),
		zap.Int("edges", g.EdgeCount()),
	)

	return g, nil
}

// enumerate runs AllPaths for one policy with the config's limits.
func enumerate(ctx context.Context, g *core.Graph, p visit.Policy) (*dfs.PathSet, error) {
	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}
	opts := append(cfg.EnumOptions(), dfs.WithContext(ctx), dfs.WithLogger(logger))

	set, err := dfs.AllPaths(g, p, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", p, err)
	}

	return set, nil
}

// runCount prints "<policy>: <count>" for every configured policy.
func runCount(cmd *cobra.Command, args []string) error {
	g, err := loadGraph(cmd, args)
	if err != nil {
		return err
	}
	ps, err := cfg.ParsedPolicies()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, p := range ps {
		set, err := enumerate(cmd.Context(), g, p)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%s: %d\n", p, set.Len())
	}

	return nil
}

// newCountCmd is the explicit form of the root action.
func newCountCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "count [file]",
		Short: "Print the number of paths under each policy",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runCount,
	}
}

// newListCmd prints every path, sorted, for each policy.
func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list [file]",
		Short: "Print every path under each policy",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runList,
	}
}

func runList(cmd *cobra.Command, args []string) error {
	g, err := loadGraph(cmd, args)
	if err != nil {
		return err
	}
	ps, err := cfg.ParsedPolicies()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, p := range ps {
		set, err := enumerate(cmd.Context(), g, p)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "# %s: %d\n", p, set.Len())
		for _, path := range set.Paths() {
			fmt.Fprintln(out, path)
		}
	}

	return nil
}
