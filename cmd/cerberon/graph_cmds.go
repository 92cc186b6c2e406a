package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/cerberon/core"
	"github.com/katalvlaran/cerberon/tsp"
)

func (a *app) routesCmd() *cobra.Command {
	var start, end int64
	cmd := &cobra.Command{
		Use:   "routes",
		Short: "Trace a breadth-first and a depth-first route between two nodes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			routes, err := a.eng.TraceRoutes(cmd.Context(), a.description, core.NodeID(start), core.NodeID(end))
			if err != nil {
				return err
			}
			return printYAML(cmd.OutOrStdout(), routes)
		},
	}
	a.addGraphFlag(cmd)
	cmd.Flags().Int64Var(&start, "start", 1, "start node id")
	cmd.Flags().Int64Var(&end, "end", 4, "end node id")
	return cmd
}

func (a *app) secureCmd() *cobra.Command {
	var start, end int64
	cmd := &cobra.Command{
		Use:   "secure",
		Short: "Find the lowest-latency and the fewest-hop path between two nodes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			routes, err := a.eng.SecurePaths(cmd.Context(), a.description, core.NodeID(start), core.NodeID(end))
			if err != nil {
				return err
			}
			return printYAML(cmd.OutOrStdout(), routes)
		},
	}
	a.addGraphFlag(cmd)
	cmd.Flags().Int64Var(&start, "start", 1, "start node id")
	cmd.Flags().Int64Var(&end, "end", 5, "end node id")
	return cmd
}

func (a *app) delaysCmd() *cobra.Command {
	var source int64
	cmd := &cobra.Command{
		Use:   "delays",
		Short: "Report high-latency links and negative cycles",
		Long: `Report links whose latency exceeds twice the mean and any negative
cycle reachable from the source. Failures are reported inside the
document (status: error) rather than as a command error.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rep := a.eng.DetectDelays(cmd.Context(), a.description, core.NodeID(source))
			return printYAML(cmd.OutOrStdout(), rep)
		},
	}
	a.addGraphFlag(cmd)
	cmd.Flags().Int64Var(&source, "source", 1, "source node id")
	return cmd
}

func (a *app) tourCmd() *cobra.Command {
	var nodes []int64
	cmd := &cobra.Command{
		Use:   "tour",
		Short: "Plan the cheapest closed tour over a set of nodes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ids := make([]core.NodeID, len(nodes))
			for i, n := range nodes {
				ids[i] = core.NodeID(n)
			}
			sol, err := a.eng.OptimizeTour(cmd.Context(), a.description, ids)
			if err != nil {
				return err
			}
			return printYAML(cmd.OutOrStdout(), sol)
		},
	}
	a.addGraphFlag(cmd)
	cmd.Flags().Int64SliceVar(&nodes, "nodes", []int64{1, 2, 3, 4}, "comma-separated node ids; the first is the start")
	cmd.Flags().IntVar(&a.exactLimit, "exact-limit", tsp.MaxExactNodes, "largest tour solved exactly")
	return cmd
}
