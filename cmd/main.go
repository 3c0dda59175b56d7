package main

import (
	"context"
	"fmt"
	"os"

	"go-hospital-admin/cmd/bootstrap"
	"go-hospital-admin/config"
	"go-hospital-admin/internal/infrastructure/database"
	"go-hospital-admin/pkg/jwt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "hospital-admin",
		Short: "Hospital administration API server",
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(migrateCmd())
	rootCmd.AddCommand(tokenCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the admin API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			// Initialize application with all dependencies
			app, err := bootstrap.New(cmd.Context(), cfg)
			if err != nil {
				logrus.Fatalf("Failed to initialize application: %v", err)
			}

			// Run the application
			app.Run()
			return nil
		},
	}
}

func migrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations",
	}

	for _, direction := range []database.Direction{database.Up, database.Down} {
		direction := direction
		cmd.AddCommand(&cobra.Command{
			Use:   string(direction),
			Short: fmt.Sprintf("Apply every %s migration", direction),
			RunE: func(cmd *cobra.Command, args []string) error {
				return runMigrations(cmd.Context(), direction)
			},
		})
	}

	return cmd
}

func runMigrations(ctx context.Context, direction database.Direction) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if cfg.DB.Driver == config.DriverMemory {
		return fmt.Errorf("migrations need DB_DRIVER=%s", config.DriverPostgres)
	}

	log := bootstrap.NewLogger(cfg.App)
	db, err := database.NewPostgresConnection(cfg.DB, log)
	if err != nil {
		return err
	}
	defer func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	}()

	if err := database.Migrate(db, direction); err != nil {
		return err
	}

	log.Infof("Migrations %s complete", direction)
	return nil
}

func tokenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token <operator>",
		Short: "Issue a signed access token for a dashboard operator",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			if !cfg.JWT.Enabled() {
				return fmt.Errorf("JWT_SECRET is not set")
			}

			svc := jwt.NewJWTService(cfg.JWT)
			token, tokenID, err := svc.GenerateAccessToken(args[0])
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), token)
			fmt.Fprintf(cmd.ErrOrStderr(), "token %s for %s expires in %s\n", tokenID, args[0], svc.GetAccessExpiry())
			return nil
		},
	}

	return cmd
}
