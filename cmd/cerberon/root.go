package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/cerberon/core"
	"github.com/katalvlaran/cerberon/engine"
	"github.com/katalvlaran/cerberon/tsp"
)

// app carries state shared by every subcommand.
type app struct {
	verbose     bool
	metrics     bool
	graphPath   string
	exactLimit  int
	registry    *prometheus.Registry
	eng         *engine.Engine
	logger      *slog.Logger
	description core.Description
}

func newRootCmd() *cobra.Command {
	a := &app{exactLimit: tsp.MaxExactNodes}

	root := &cobra.Command{
		Use:           "cerberon",
		Short:         "Graph, route and log analysis for security operations",
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			level := slog.LevelInfo
			if a.verbose {
				level = slog.LevelDebug
			}
			a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
			a.registry = prometheus.NewRegistry()
			a.eng = engine.New(
				engine.WithLogger(a.logger),
				engine.WithRegisterer(a.registry),
				engine.WithTourOptions(tsp.WithExactLimit(a.exactLimit)),
			)
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			if !a.metrics {
				return nil
			}
			return writeMetrics(cmd.ErrOrStderr(), a.registry)
		},
	}
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
	root.PersistentFlags().BoolVar(&a.metrics, "metrics", false, "print Prometheus metrics to stderr on exit")

	root.AddCommand(
		a.routesCmd(),
		a.secureCmd(),
		a.delaysCmd(),
		a.tourCmd(),
		a.logsCmd(),
		a.searchCmd(),
		a.alertsCmd(),
	)

	return root
}

// loadGraph reads the --graph file into a.description.
func (a *app) loadGraph(_ *cobra.Command, _ []string) error {
	if a.graphPath == "" {
		return errors.New(`required flag "graph" not set`)
	}
	desc, err := core.Load(a.graphPath)
	if err != nil {
		return err
	}
	a.description = desc
	a.logger.Debug("graph loaded",
		slog.String("path", a.graphPath),
		slog.Int("nodes", len(desc.Nodes)),
		slog.Int("edges", len(desc.Edges)))
	return nil
}

func (a *app) addGraphFlag(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&a.graphPath, "graph", "g", "", "graph description file (YAML or JSON)")
	_ = cmd.MarkFlagRequired("graph")
	cmd.PreRunE = a.loadGraph
}

// printYAML writes v to w as a YAML document.
func printYAML(w io.Writer, v interface{}) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	return enc.Close()
}

// writeMetrics dumps every gathered family in the text exposition format.
func writeMetrics(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return err
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}
	return nil
}
