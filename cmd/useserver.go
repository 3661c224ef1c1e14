// Copyright (c) 2025 Tracectl
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"strconv"

	"github.com/spf13/cobra"

	"tracectl/cli/internal/config"
	"tracectl/cli/internal/errs"
	"tracectl/cli/internal/render"
)

var useServerCmd = &cobra.Command{
	Use:   "use-server IP PORT",
	Short: "Save the default trace server address",
	Long: `Saves IP and PORT as the default trace server address in the user
config directory, so later invocations can omit --ip and --port.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		port, err := strconv.Atoi(args[1])
		if err != nil || port <= 0 || port > 65535 {
			return errs.New(errs.MalformedParameter, "port "+args[1]+" is not a valid TCP port")
		}
		if err := config.Save(config.Config{ServerIP: args[0], ServerPort: port}); err != nil {
			return err
		}
		render.Summary("default trace server set to %s:%d", args[0], port)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(useServerCmd)
}
