package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"
)

// rootOptions holds the flags shared by every subcommand.
type rootOptions struct {
	verbose     bool
	databaseURL string
}

// newRootCmd builds the command tree. A fresh tree per call keeps flag state
// out of package globals.
func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "sharectl",
		Short: "Manage the share gallery",
		Long: `sharectl works with the share gallery database: it applies migrations,
imports shares from YAML files and lists shares the way the gallery filters them.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelInfo
			if opts.verbose {
				level = slog.LevelDebug
			}
			logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
			slog.SetDefault(logger)
		},
	}

	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable verbose logging")
	root.PersistentFlags().StringVar(&opts.databaseURL, "database-url", os.Getenv("DATABASE_URL"),
		"Postgres connection string (defaults to $DATABASE_URL)")

	root.AddCommand(
		newMigrateCmd(opts),
		newImportCmd(opts),
		newListCmd(opts),
		newSearchCmd(),
	)
	return root
}

// requireDatabaseURL returns the configured connection string or an error
// naming both ways to set it.
func (o *rootOptions) requireDatabaseURL() (string, error) {
	if o.databaseURL == "" {
		return "", fmt.Errorf("no database: set DATABASE_URL or pass --database-url")
	}
	return o.databaseURL, nil
}

// openPool connects to the database and verifies it is reachable.
// Callers must Close the pool.
func (o *rootOptions) openPool(ctx context.Context) (*pgxpool.Pool, error) {
	dsn, err := o.requireDatabaseURL()
	if err != nil {
		return nil, err
	}
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("connect: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("connect: %w", err)
	}
	return pool, nil
}
