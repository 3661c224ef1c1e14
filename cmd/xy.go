// Copyright (c) 2025 Tracectl
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"github.com/spf13/cobra"

	"tracectl/cli/internal/errs"
	"tracectl/cli/internal/query"
	"tracectl/cli/internal/render"
	"tracectl/cli/internal/tsp"
)

var (
	xyExpUUID  string
	xyItems    []int64
	xyStart    int64
	xyEnd      int64
	xyNumTimes int64
)

var xyCmd = &cobra.Command{
	Use:   "xy OUTPUT_ID",
	Short: "Fetch sampled XY series of an output",
	Long: `Fetches the XY model of an output for the given item ids over a sampled
time range. The three time range values (--start, --end, --num-times) are
mandatory together.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireUUID(xyExpUUID, "experiment"); err != nil {
			return err
		}
		tr, err := xyTimeRange(cmd)
		if err != nil {
			return err
		}
		payload, err := query.XY(xyItems, tr)
		if err != nil {
			return err
		}
		env, err := client.XY(cmd.Context(), xyExpUUID, args[0], payload)
		if err != nil {
			return presentErr(err)
		}
		model, err := tsp.Model(env, "XY fetch for "+args[0])
		if err != nil {
			return err
		}
		render.JSON(model)
		render.Summary("%d series", len(model.Series))
		return nil
	},
}

// xyTimeRange enforces the all-or-nothing contract on the three range flags.
func xyTimeRange(cmd *cobra.Command) (*query.TimeRange, error) {
	set := 0
	for _, name := range []string{"start", "end", "num-times"} {
		if cmd.Flags().Changed(name) {
			set++
		}
	}
	switch set {
	case 0:
		return nil, nil
	case 3:
		return &query.TimeRange{Start: xyStart, End: xyEnd, NumTimes: xyNumTimes}, nil
	default:
		return nil, errs.New(errs.MissingArgument,
			"--start, --end and --num-times must be supplied together")
	}
}

func init() {
	xyCmd.Flags().StringVar(&xyExpUUID, "uuid", "", "Experiment UUID")
	xyCmd.Flags().Int64SliceVar(&xyItems, "items", nil, "Item ids from the XY tree to sample")
	xyCmd.Flags().Int64Var(&xyStart, "start", 0, "Range start timestamp (ns)")
	xyCmd.Flags().Int64Var(&xyEnd, "end", 0, "Range end timestamp (ns)")
	xyCmd.Flags().Int64Var(&xyNumTimes, "num-times", 0, "Number of samples in the range")
	rootCmd.AddCommand(xyCmd)
}
