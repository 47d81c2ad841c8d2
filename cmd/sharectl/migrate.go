package main

import (
	"database/sql"
	"fmt"
	"log/slog"

	_ "github.com/jackc/pgx/v5/stdlib" // registers the "pgx" database/sql driver for goose
	"github.com/spf13/cobra"

	"github.com/zvz09/2025-blog-public/migrations"
)

func newMigrateCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:       "migrate [up|down|status]",
		Short:     "Apply, roll back or inspect database migrations",
		Long:      "migrate up applies every pending migration, migrate down rolls back the latest one, and migrate status lists them all.",
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"up", "down", "status"},
		RunE: func(cmd *cobra.Command, args []string) error {
			action := "up"
			if len(args) == 1 {
				action = args[0]
			}

			dsn, err := opts.requireDatabaseURL()
			if err != nil {
				return err
			}
			db, err := sql.Open("pgx", dsn)
			if err != nil {
				return err
			}
			defer db.Close()

			provider, err := migrations.NewProvider(db)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			out := cmd.OutOrStdout()
			switch action {
			case "up":
				results, err := provider.Up(ctx)
				if err != nil {
					return fmt.Errorf("migrate up: %w", err)
				}
				for _, res := range results {
					slog.Debug("migration applied", "version", res.Source.Version, "duration_ms", res.Duration.Milliseconds())
				}
				fmt.Fprintf(out, "applied %d migration(s)\n", len(results))
			case "down":
				res, err := provider.Down(ctx)
				if err != nil {
					return fmt.Errorf("migrate down: %w", err)
				}
				fmt.Fprintf(out, "rolled back version %d\n", res.Source.Version)
			case "status":
				statuses, err := provider.Status(ctx)
				if err != nil {
					return fmt.Errorf("migrate status: %w", err)
				}
				for _, st := range statuses {
					fmt.Fprintf(out, "%-5d %-8s %s\n", st.Source.Version, st.State, st.Source.Path)
				}
			}
			return nil
		},
	}
}
