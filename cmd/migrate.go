package main

import (
	"fmt"

	"github.com/zhangwenhan0216/reservation/internal/infra/db"
	"github.com/zhangwenhan0216/reservation/internal/pkg/config"
	"github.com/zhangwenhan0216/reservation/migrations"

	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending schema migrations",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}

		pool, cleanup, err := db.Connect(cmd.Context(), cfg.DB)
		if err != nil {
			return err
		}
		defer cleanup()

		applied, err := db.Migrate(cmd.Context(), pool, migrations.FS)
		if err != nil {
			return err
		}
		if len(applied) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "schema is up to date")
			return nil
		}
		for _, version := range applied {
			fmt.Fprintf(cmd.OutOrStdout(), "applied %s\n", version)
		}
		return nil
	},
}
