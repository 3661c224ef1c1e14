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
	configTypeID    string
	configID        string
	configParams    string
	configParamFile string
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage server-side analysis configurations",
}

var configSourcesCmd = &cobra.Command{
	Use:   "sources [TYPE_ID]",
	Short: "List configuration source types, or show one",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 1 {
			src, err := client.ConfigSource(cmd.Context(), args[0])
			if err != nil {
				return presentErr(err)
			}
			render.JSON(src)
			return nil
		}
		sources, err := client.ConfigSources(cmd.Context())
		if err != nil {
			return presentErr(err)
		}
		render.ConfigSources(sources)
		render.Summary("%d source type(s)", len(sources))
		return nil
	},
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "List configurations of one source type",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if configTypeID == "" {
			return missingFlag("--type-id")
		}
		configs, err := client.Configs(cmd.Context(), configTypeID)
		if err != nil {
			return presentErr(err)
		}
		render.Configs(configs)
		render.Summary("%d configuration(s)", len(configs))
		return nil
	},
}

var configLoadCmd = &cobra.Command{
	Use:   "load",
	Short: "Instantiate a configuration from parameters",
	Long: `Instantiates a configuration of the source type --type-id from a
parameter set, given either inline (--params "key=value;...") or as a
JSON/YAML document (--file). The two parameter forms are interchangeable.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := params.Decode(configParams, configParamFile)
		if err != nil {
			return err
		}
		body, err := query.Config(configTypeID, m)
		if err != nil {
			return err
		}
		c, err := client.CreateConfig(cmd.Context(), configTypeID, body)
		if err != nil {
			return presentErr(err)
		}
		render.Summary("loaded configuration %s (%s)", c.Name, c.ID)
		return nil
	},
}

var configUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Replace the parameters of an existing configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := params.Decode(configParams, configParamFile)
		if err != nil {
			return err
		}
		body, err := query.ConfigUpdate(configTypeID, configID, m)
		if err != nil {
			return err
		}
		c, err := client.UpdateConfig(cmd.Context(), configTypeID, configID, body)
		if err != nil {
			return presentErr(err)
		}
		render.Summary("updated configuration %s (%s)", c.Name, c.ID)
		return nil
	},
}

var configDeleteCmd = &cobra.Command{
	Use:   "delete CONFIG_ID",
	Short: "Delete a configuration",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if configTypeID == "" {
			return missingFlag("--type-id")
		}
		c, err := client.DeleteConfig(cmd.Context(), configTypeID, args[0])
		if err != nil {
			return presentErr(err)
		}
		render.Summary("deleted configuration %s", c.ID)
		return nil
	},
}

func init() {
	configCmd.PersistentFlags().StringVar(&configTypeID, "type-id", "", "Configuration source type id")
	configUpdateCmd.Flags().StringVar(&configID, "config-id", "", "Configuration id to update")
	for _, c := range []*cobra.Command{configLoadCmd, configUpdateCmd} {
		c.Flags().StringVar(&configParams, "params", "", "Inline parameters, key=value pairs separated by ';'")
		c.Flags().StringVar(&configParamFile, "file", "", "Parameter document (JSON or YAML)")
	}
	configCmd.AddCommand(configSourcesCmd, configListCmd, configLoadCmd, configUpdateCmd, configDeleteCmd)
	rootCmd.AddCommand(configCmd)
}
