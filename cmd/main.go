package main

import (
	"context"
	"os"

	"foodstall-backend/cmd/bootstrap"
	"foodstall-backend/internal/infrastructure/database"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

var configPath string

func main() {
	rootCmd := &cobra.Command{
		Use:          "foodstall",
		Short:        "Food stall management backend",
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", ".env", "Path to the env file")

	serve := serveCmd()
	rootCmd.RunE = serve.RunE
	rootCmd.Flags().AddFlagSet(serve.Flags())

	rootCmd.AddCommand(serve, migrateCmd(), seedCmd())

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	var autoMigrate bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API (default)",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := bootstrap.New(cmd.Context(), configPath, autoMigrate)
			if err != nil {
				logrus.Errorf("Failed to initialize application: %v", err)
				return err
			}
			return app.Run()
		},
	}
	cmd.Flags().BoolVar(&autoMigrate, "migrate", false, "Run database migrations before serving")

	return cmd
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := bootstrap.Load(configPath)
			if err != nil {
				return err
			}
			db, err := database.NewConnection(cfg.DB)
			if err != nil {
				return err
			}
			defer closeDB(db)

			if err := database.Migrate(db); err != nil {
				return err
			}
			log.Info("Database migrated")
			return nil
		},
	}
}

func seedCmd() *cobra.Command {
	var admin bootstrap.AdminAccount

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Create the admin and staff roles and an optional admin user",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := bootstrap.Load(configPath)
			if err != nil {
				return err
			}
			db, err := database.NewConnection(cfg.DB)
			if err != nil {
				return err
			}
			defer closeDB(db)

			if err := database.Migrate(db); err != nil {
				return err
			}
			return bootstrap.Seed(cmd.Context(), log, db, admin)
		},
	}
	cmd.Flags().StringVar(&admin.Email, "admin-email", os.Getenv("SEED_ADMIN_EMAIL"), "Email of the admin user to create")
	cmd.Flags().StringVar(&admin.Password, "admin-password", os.Getenv("SEED_ADMIN_PASSWORD"), "Password of the admin user to create")

	return cmd
}

func closeDB(db *gorm.DB) {
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.Close()
	}
}
