package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"runtime"
	"time"

	"github.com/smallbiznis/coffeestore/internal/clock"
	"github.com/smallbiznis/coffeestore/internal/config"
	"github.com/smallbiznis/coffeestore/internal/migration"
	"github.com/smallbiznis/coffeestore/internal/observability"
	"github.com/smallbiznis/coffeestore/internal/server"
	"github.com/smallbiznis/coffeestore/pkg/db"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const migrateTimeout = 2 * time.Minute

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "coffeestore",
		Short:         "Coffee store backend: clients, addresses and the coffee catalog",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newServeCmd(),
		newMigrateCmd(),
		newVersionCmd(),
	)
	return root
}

func newServeCmd() *cobra.Command {
	var skipMigrate bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			app := fx.New(serveOptions(skipMigrate)...)
			if err := app.Err(); err != nil {
				return err
			}
			app.Run()
			return nil
		},
	}
	cmd.Flags().BoolVar(&skipMigrate, "skip-migrate", false, "Do not apply schema migrations on startup")
	return cmd
}

func serveOptions(skipMigrate bool) []fx.Option {
	opts := []fx.Option{
		config.Module,
		observability.Module,
		fx.Provide(RegisterSnowflake),
		db.Module,
		clock.Module,
	}
	if !skipMigrate {
		opts = append(opts, migration.Module)
	}
	return append(opts, server.Module)
}

func newMigrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the database schema",
	}

	up := &cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithDB(cmd.Context(), func(conn *gorm.DB, cfg config.Config, log *zap.Logger) error {
				if err := migration.Apply(conn, cfg.DBType); err != nil {
					return err
				}
				log.Info("database schema up to date", zap.String("type", cfg.DBType))
				return nil
			})
		},
	}

	var steps int
	down := &cobra.Command{
		Use:   "down",
		Short: "Revert applied migrations (postgres only)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if steps <= 0 {
				return fmt.Errorf("--steps must be positive, got %d", steps)
			}
			return runWithDB(cmd.Context(), func(conn *gorm.DB, cfg config.Config, log *zap.Logger) error {
				sqlDB, err := postgresHandle(conn, cfg)
				if err != nil {
					return err
				}
				if err := migration.Rollback(sqlDB, steps); err != nil {
					return err
				}
				log.Info("migrations reverted", zap.Int("steps", steps))
				return nil
			})
		},
	}
	down.Flags().IntVar(&steps, "steps", 1, "Number of versions to revert")

	version := &cobra.Command{
		Use:   "version",
		Short: "Print the applied schema version (postgres only)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithDB(cmd.Context(), func(conn *gorm.DB, cfg config.Config, log *zap.Logger) error {
				sqlDB, err := postgresHandle(conn, cfg)
				if err != nil {
					return err
				}
				v, dirty, err := migration.Version(sqlDB)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "version %d (dirty=%t)\n", v, dirty)
				return nil
			})
		},
	}

	cmd.AddCommand(up, down, version)
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "coffeestore %s (%s) %s %s/%s\n",
				Version, Commit, runtime.Version(), runtime.GOOS, runtime.GOARCH)
		},
	}
}

// runWithDB starts a short-lived app holding only config, logging and the
// database, runs fn once, and stops the app.
func runWithDB(ctx context.Context, fn func(conn *gorm.DB, cfg config.Config, log *zap.Logger) error) error {
	if ctx == nil {
		ctx = context.Background()
	}

	var runErr error
	app := fx.New(
		config.Module,
		observability.Module,
		db.Module,
		fx.NopLogger,
		fx.Invoke(func(conn *gorm.DB, cfg config.Config, log *zap.Logger) {
			runErr = fn(conn, cfg, log)
		}),
	)
	if err := app.Err(); err != nil {
		return err
	}

	startCtx, cancel := context.WithTimeout(ctx, migrateTimeout)
	defer cancel()
	if err := app.Start(startCtx); err != nil {
		return err
	}

	stopCtx, stopCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer stopCancel()
	return errors.Join(runErr, app.Stop(stopCtx))
}

func postgresHandle(conn *gorm.DB, cfg config.Config) (*sql.DB, error) {
	if cfg.DBType != db.TypePostgres {
		return nil, fmt.Errorf("versioned migrations need postgres, configured %q", cfg.DBType)
	}
	return conn.DB()
}
