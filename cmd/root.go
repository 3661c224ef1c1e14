// Copyright (c) 2025 Tracectl
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package cmd provides the command-line interface for tracectl.
// It implements subcommands for traces, experiments, analysis outputs and
// server-side configurations using the Cobra CLI framework. Each invocation
// resolves exactly one intent; the command either prints its result and
// exits 0, or prints one targeted failure line and exits 1.
package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"tracectl/cli/internal/config"
	"tracectl/cli/internal/errs"
	"tracectl/cli/internal/httperrors"
	"tracectl/cli/internal/tsp"
)

var (
	serverIP    string
	serverPort  int
	showVersion bool

	// client is the transport client for this invocation, constructed once
	// in the root PersistentPreRunE and passed to every command.
	client *tsp.Client
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:           "tracectl",
	Short:         "CLI bridge to a Trace Server Protocol server",
	Long:          `tracectl opens and closes traces and experiments on a trace analysis server, enumerates analysis outputs, fetches tree, XY and virtual table data, and manages server-side configurations.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if !cmd.Flags().Changed("ip") && cfg.ServerIP != "" {
			serverIP = cfg.ServerIP
		}
		if !cmd.Flags().Changed("port") && cfg.ServerPort != 0 {
			serverPort = cfg.ServerPort
		}
		client = tsp.NewClient(serverIP, serverPort)
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if showVersion {
			fmt.Printf("tracectl %s\n", Version)
			h, err := client.Health(cmd.Context())
			if err != nil {
				fmt.Println("trace server unreachable")
				return nil
			}
			fmt.Printf("trace server %s: %s\n", client.BaseURL(), h.Status)
			return nil
		}
		// If no flag is set, show help
		return cmd.Help()
	},
}

// Execute runs the CLI application.
// It executes the root command and handles any errors that occur during execution.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&serverIP, "ip", config.DefaultIP, "Trace server IP address or hostname")
	rootCmd.PersistentFlags().IntVar(&serverPort, "port", config.DefaultPort, "Trace server port")
	rootCmd.Flags().BoolVar(&showVersion, "version", false, "Show CLI version and trace server health")
}

// presentErr routes transport failures through the connectivity reporter so
// the user gets targeted guidance instead of a raw dial error. All other
// errors pass through to Execute's exit path unchanged.
func presentErr(err error) error {
	if err == nil {
		return nil
	}
	var e *errs.E
	if errors.As(err, &e) && e.Kind == errs.TransportError {
		return httperrors.Format(err, client.BaseURL())
	}
	return err
}

// missingFlag builds the targeted message for a required companion flag.
func missingFlag(flag string) error {
	return errs.New(errs.MissingArgument, flag+" is required")
}

// requireUUID validates a server-issued identifier before it is spent on a
// network call.
func requireUUID(s, what string) error {
	if s == "" {
		return errs.New(errs.MissingArgument, what+" UUID is required (--uuid)")
	}
	if _, err := uuid.Parse(s); err != nil {
		return errs.New(errs.MalformedParameter, what+" UUID "+s+" is not a valid UUID")
	}
	return nil
}
