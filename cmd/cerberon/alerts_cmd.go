package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/cerberon/alerttree"
)

func (a *app) alertsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "alerts FILE",
		Short: "Trace an alert tree in inorder, preorder, postorder and breadth-first order",
		Long: `Read an alert tree ({root|node: name, children: [...]}, YAML or JSON)
and print its nodes in all four traversal orders.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tree, err := alerttree.Load(args[0])
			if err != nil {
				return err
			}
			tr, err := a.eng.TraceAlerts(cmd.Context(), tree)
			if err != nil {
				return err
			}
			return printYAML(cmd.OutOrStdout(), tr)
		},
	}
}
