// Copyright (c) 2025 Tracectl
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"github.com/spf13/cobra"

	"tracectl/cli/internal/params"
	"tracectl/cli/internal/query"
	"tracectl/cli/internal/render"
)

var (
	outputExpUUID   string
	outputTypeID    string
	outputParams    string
	outputParamFile string
	outputDerivedID string
)

var outputCmd = &cobra.Command{
	Use:   "output",
	Short: "Inspect and manage analysis outputs of an experiment",
}

var outputListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the outputs an experiment provides",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireUUID(outputExpUUID, "experiment"); err != nil {
			return err
		}
		outputs, err := client.ExperimentOutputs(cmd.Context(), outputExpUUID)
		if err != nil {
			return presentErr(err)
		}
		render.Outputs(outputs)
		render.Summary("%d output(s)", len(outputs))
		return nil
	},
}

var outputShowCmd = &cobra.Command{
	Use:   "show OUTPUT_ID",
	Short: "Show one output descriptor",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireUUID(outputExpUUID, "experiment"); err != nil {
			return err
		}
		desc, err := client.Output(cmd.Context(), outputExpUUID, args[0])
		if err != nil {
			return presentErr(err)
		}
		render.JSON(desc)
		return nil
	},
}

var outputCreateCmd = &cobra.Command{
	Use:   "create OUTPUT_ID",
	Short: "Create a derived output under OUTPUT_ID",
	Long: `Creates a derived output under the parent output OUTPUT_ID from a
configuration parameter set, given either inline (--params "key=value;...")
or as a JSON/YAML document (--file).`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireUUID(outputExpUUID, "experiment"); err != nil {
			return err
		}
		m, err := params.Decode(outputParams, outputParamFile)
		if err != nil {
			return err
		}
		body, err := query.Config(outputTypeID, m)
		if err != nil {
			return err
		}
		desc, err := client.CreateDerivedOutput(cmd.Context(), outputExpUUID, args[0], body)
		if err != nil {
			return presentErr(err)
		}
		render.Summary("created derived output %s (%s)", desc.Name, desc.ID)
		return nil
	},
}

var outputDeleteCmd = &cobra.Command{
	Use:   "delete OUTPUT_ID",
	Short: "Delete a derived output",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireUUID(outputExpUUID, "experiment"); err != nil {
			return err
		}
		if outputDerivedID == "" {
			return missingFlag("--derived")
		}
		desc, err := client.DeleteDerivedOutput(cmd.Context(), outputExpUUID, args[0], outputDerivedID)
		if err != nil {
			return presentErr(err)
		}
		render.Summary("deleted derived output %s", desc.ID)
		return nil
	},
}

func init() {
	outputCmd.PersistentFlags().StringVar(&outputExpUUID, "uuid", "", "Experiment UUID")
	outputCreateCmd.Flags().StringVar(&outputTypeID, "type-id", "", "Configuration source type id")
	outputCreateCmd.Flags().StringVar(&outputParams, "params", "", "Inline parameters, key=value pairs separated by ';'")
	outputCreateCmd.Flags().StringVar(&outputParamFile, "file", "", "Parameter document (JSON or YAML)")
	outputDeleteCmd.Flags().StringVar(&outputDerivedID, "derived", "", "Derived output id to delete")
	outputCmd.AddCommand(outputListCmd, outputShowCmd, outputCreateCmd, outputDeleteCmd)
	rootCmd.AddCommand(outputCmd)
}
