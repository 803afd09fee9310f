package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yllada/exforms/cli"
	"github.com/yllada/exforms/common"
	"github.com/yllada/exforms/config"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Display build information",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", common.AppName, appVersion)
			if buildTime != "unknown" {
				fmt.Fprintf(cmd.OutOrStdout(), "  Build:  %s\n", buildTime)
				fmt.Fprintf(cmd.OutOrStdout(), "  Commit: %s\n", commitSHA)
			}
			return nil
		},
	}
}

func newPositionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "positions",
		Short: "Inspect saved window positions",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List saved window positions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withCLI(cmd, func(c *cli.CLI) error { return c.ListPositions() })
		},
	})

	var all bool
	reset := &cobra.Command{
		Use:   "reset [NAME]",
		Short: "Forget a saved window position",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if all {
				return withCLI(cmd, func(c *cli.CLI) error { return c.ResetAll() })
			}
			if len(args) != 1 {
				return errors.New("a window name or --all is required")
			}
			return withCLI(cmd, func(c *cli.CLI) error { return c.ResetPosition(args[0]) })
		},
	}
	reset.Flags().BoolVar(&all, "all", false, "Forget every saved position")
	cmd.AddCommand(reset)

	return cmd
}

// withCLI runs fn against the configured position store.
func withCLI(cmd *cobra.Command, fn func(*cli.CLI) error) error {
	cfg, err := config.Load()
	if err != nil {
		common.LogWarn("Using default configuration: %v", err)
		cfg = config.DefaultConfig()
	}

	store, closeStore, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	c := cli.New(store)
	c.SetOutput(cmd.OutOrStdout())
	return fn(c)
}
