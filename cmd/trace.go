// Copyright (c) 2025 Tracectl
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"tracectl/cli/internal/render"
)

var traceOpenName string

var traceCmd = &cobra.Command{
	Use:   "trace",
	Short: "Manage open traces on the trace server",
}

var traceListCmd = &cobra.Command{
	Use:   "list",
	Short: "List traces open on the server",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		traces, err := client.Traces(cmd.Context())
		if err != nil {
			return presentErr(err)
		}
		render.Traces(traces)
		render.Summary("%d trace(s) open", len(traces))
		return nil
	},
}

var traceShowCmd = &cobra.Command{
	Use:   "show UUID",
	Short: "Show one open trace",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireUUID(args[0], "trace"); err != nil {
			return err
		}
		t, err := client.Trace(cmd.Context(), args[0])
		if err != nil {
			return presentErr(err)
		}
		render.JSON(t)
		return nil
	},
}

var traceOpenCmd = &cobra.Command{
	Use:   "open PATH",
	Short: "Open the trace at PATH on the server",
	Long: `Opens the trace stored at PATH on the server's filesystem. The display
name defaults to the final path segment and can be overridden with --name.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := traceOpenName
		if name == "" {
			name = filepath.Base(args[0])
		}
		t, err := client.OpenTrace(cmd.Context(), name, args[0])
		if err != nil {
			return presentErr(err)
		}
		render.Summary("opened trace %s (%s)", t.Name, t.UUID)
		return nil
	},
}

var traceDeleteCmd = &cobra.Command{
	Use:   "delete UUID",
	Short: "Delete an open trace",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireUUID(args[0], "trace"); err != nil {
			return err
		}
		t, err := client.DeleteTrace(cmd.Context(), args[0])
		if err != nil {
			return presentErr(err)
		}
		render.Summary("deleted trace %s (%s)", t.Name, t.UUID)
		return nil
	},
}

func init() {
	traceOpenCmd.Flags().StringVar(&traceOpenName, "name", "", "Display name for the opened trace")
	traceCmd.AddCommand(traceListCmd, traceShowCmd, traceOpenCmd, traceDeleteCmd)
	rootCmd.AddCommand(traceCmd)
}
