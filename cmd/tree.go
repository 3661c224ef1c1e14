// Copyright (c) 2025 Tracectl
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"github.com/spf13/cobra"

	"tracectl/cli/internal/bridge"
	"tracectl/cli/internal/render"
)

var treeExpUUID string

var treeCmd = &cobra.Command{
	Use:   "tree",
	Short: "Fetch the entry tree of an analysis output",
}

var treeDataCmd = &cobra.Command{
	Use:   "data OUTPUT_ID",
	Short: "Fetch the tree of a data-tree output",
	Long: `Fetches the entry tree of a data-tree output. Servers that predate the
data-tree endpoint are handled transparently by retrying once against the
time-graph endpoint.`,
	Args: cobra.ExactArgs(1),
	RunE: runTree(bridge.DataTree),
}

var treeTimeGraphCmd = &cobra.Command{
	Use:   "timegraph OUTPUT_ID",
	Short: "Fetch the tree of a time-graph output",
	Args:  cobra.ExactArgs(1),
	RunE:  runTree(bridge.TimeGraph),
}

var treeXYCmd = &cobra.Command{
	Use:   "xy OUTPUT_ID",
	Short: "Fetch the tree of an XY output",
	Args:  cobra.ExactArgs(1),
	RunE:  runTree(bridge.TreeTimeXY),
}

// runTree binds one tree kind to the resolution procedure.
func runTree(kind bridge.TreeKind) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if err := requireUUID(treeExpUUID, "experiment"); err != nil {
			return err
		}
		tree, desc, err := bridge.ResolveTree(cmd.Context(), client, treeExpUUID, args[0], kind)
		if err != nil {
			return presentErr(err)
		}
		render.Tree(tree, desc.Name)
		render.Summary("%d entries", len(tree.Entries))
		return nil
	}
}

func init() {
	treeCmd.PersistentFlags().StringVar(&treeExpUUID, "uuid", "", "Experiment UUID")
	treeCmd.AddCommand(treeDataCmd, treeTimeGraphCmd, treeXYCmd)
	rootCmd.AddCommand(treeCmd)
}
