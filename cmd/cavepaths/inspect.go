package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/cavepaths/bfs"
	"github.com/katalvlaran/cavepaths/core"
)

// newInspectCmd prints the adjacency matrix and start-node reachability.
func newInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect [file]",
		Short: "Show the adjacency matrix and what start can reach",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runInspect,
	}
}

func runInspect(cmd *cobra.Command, args []string) error {
	g, err := loadGraph(cmd, args)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprint(out, g)

	var small, large []string
	for _, n := range g.Nodes() {
		if core.IsSmall(n) {
			small = append(small, n)
		} else {
			large = append(large, n)
		}
	}
	sort.Strings(small)
	sort.Strings(large)
	fmt.Fprintf(out, "\nnodes: %d (small %v, large %v), edges: %d\n", g.Len(), small, large, g.EdgeCount())

	if !g.HasNode(cfg.Start) {
		fmt.Fprintf(out, "start %q: not in graph\n", cfg.Start)
		return nil
	}
	res, err := bfs.BFS(g, cfg.Start, bfs.WithContext(cmd.Context()))
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "reachable from %s: %d of %d\n", cfg.Start, len(res.Order), g.Len())
	if route, err := res.PathTo(cfg.End); err == nil {
		fmt.Fprintf(out, "fewest hops to %s: %d via %v\n", cfg.End, len(route)-1, route)
	} else {
		fmt.Fprintf(out, "%s: not reachable\n", cfg.End)
	}

	return nil
}

// newConfigCmd prints the effective configuration as YAML.
func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := yaml.Marshal(cfg)
			if err != nil {
				return fmt.Errorf("failed to marshal config: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(data)

			return err
		},
	}
}
