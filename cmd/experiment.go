// Copyright (c) 2025 Tracectl
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"os"
	"time"

	"atomicgo.dev/cursor"
	"github.com/spf13/cobra"

	"tracectl/cli/internal/bridge"
	"tracectl/cli/internal/render"
)

var (
	expOpenPaths    []string
	expOpenUUIDs    []string
	expDeleteTraces bool
)

var experimentCmd = &cobra.Command{
	Use:   "experiment",
	Short: "Manage experiments on the trace server",
}

var experimentListCmd = &cobra.Command{
	Use:   "list",
	Short: "List experiments on the server",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		exps, err := client.Experiments(cmd.Context())
		if err != nil {
			return presentErr(err)
		}
		render.Experiments(exps)
		render.Summary("%d experiment(s)", len(exps))
		return nil
	},
}

var experimentShowCmd = &cobra.Command{
	Use:   "show UUID",
	Short: "Show one experiment",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireUUID(args[0], "experiment"); err != nil {
			return err
		}
		exp, err := client.Experiment(cmd.Context(), args[0])
		if err != nil {
			return presentErr(err)
		}
		render.JSON(exp)
		return nil
	},
}

var experimentOpenCmd = &cobra.Command{
	Use:   "open NAME",
	Short: "Open an experiment over traces",
	Long: `Opens an experiment named NAME over a set of traces. Traces are given
either as server filesystem paths (--paths), which are opened first with
names derived from their final path segment, or as UUIDs of already-open
traces (--uuids). If any individual trace fails to open, no experiment is
created.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cursor.Hide()
		stop := startInlineSpinner(os.Stderr, "contacting trace server",
			[]string{"|", "/", "-", "\\"}, 120*time.Millisecond)
		exp, err := bridge.OpenExperiment(cmd.Context(), client, args[0],
			expOpenPaths, expOpenUUIDs, stop.SetText)
		stop.Stop()
		cursor.Show()
		if err != nil {
			return presentErr(err)
		}
		render.Summary("opened experiment %s (%s) over %d trace(s)",
			exp.Name, exp.UUID, len(exp.Traces))
		return nil
	},
}

var experimentDeleteCmd = &cobra.Command{
	Use:   "delete UUID",
	Short: "Delete an experiment",
	Long: `Deletes the experiment with the given UUID. With --do-delete-traces, the
traces that belonged to it are deleted afterwards as well; a trace that
fails to delete is reported but does not change the outcome once the
experiment deletion itself succeeded.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireUUID(args[0], "experiment"); err != nil {
			return err
		}
		exp, err := bridge.DeleteExperiment(cmd.Context(), client, args[0],
			expDeleteTraces, render.Warn)
		if err != nil {
			return presentErr(err)
		}
		render.Summary("deleted experiment %s (%s)", exp.Name, exp.UUID)
		return nil
	},
}

func init() {
	experimentOpenCmd.Flags().StringSliceVar(&expOpenPaths, "paths", nil, "Server filesystem paths of traces to open")
	experimentOpenCmd.Flags().StringSliceVar(&expOpenUUIDs, "uuids", nil, "UUIDs of already-open traces")
	experimentDeleteCmd.Flags().BoolVar(&expDeleteTraces, "do-delete-traces", false, "Also delete the traces that belonged to the experiment")
	experimentCmd.AddCommand(experimentListCmd, experimentShowCmd, experimentOpenCmd, experimentDeleteCmd)
	rootCmd.AddCommand(experimentCmd)
}
