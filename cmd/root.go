package main

import (
	"github.com/spf13/cobra"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "reservation",
	Short: "Resource reservation service",
	Long: `reservation books time windows on shared resources and guarantees that
no resource is reserved twice for overlapping windows.

Configuration comes from the environment, layered over an optional YAML file
(--config, $RESERVATION_CONFIG, ./reservation.yml, ~/.config/reservation.yml
or /etc/reservation.yml).`,
	SilenceUsage:  true,
	SilenceErrors: true,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to a YAML config file")
	rootCmd.AddCommand(serveCmd, migrateCmd)
}
