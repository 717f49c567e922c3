package main

import (
	"github.com/spf13/cobra"
)

const serviceTitle = "SMC-GarageService"

func newRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           "smc-garage",
		Short:         "Garage appointment calendar: HTTP API, migrations and CLI tools",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVarP(&configPath, "config", "c", "config.toml", "path to TOML config")

	root.AddCommand(newServeCmd(&configPath))
	root.AddCommand(newMigrateCmd(&configPath))
	root.AddCommand(newCalendarCmd(&configPath))
	root.AddCommand(newKeysCmd())

	return root
}
