// Copyright (c) 2025 Tracectl
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"github.com/spf13/cobra"

	"tracectl/cli/internal/errs"
	"tracectl/cli/internal/render"
)

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check that the trace server is up",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		h, err := client.Health(cmd.Context())
		if err != nil {
			return presentErr(err)
		}
		if !h.Up() {
			return errs.New(errs.ProtocolFailure, "trace server reports status "+h.Status)
		}
		render.Summary("trace server at %s is up", client.BaseURL())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(healthCmd)
}
