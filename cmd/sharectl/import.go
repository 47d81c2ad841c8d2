package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/zvz09/2025-blog-public/internal/repo"
	"github.com/zvz09/2025-blog-public/internal/service"
)

func newImportCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE.yaml",
		Short: "Create or update shares from a YAML file",
		Long:  "Shares are matched by URL: an existing share with the same URL is overwritten, any other share is created.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			shares, err := readSharesFile(args[0])
			if err != nil {
				return err
			}
			slog.Debug("seed file read", "path", args[0], "shares", len(shares))

			ctx := cmd.Context()
			pool, err := opts.openPool(ctx)
			if err != nil {
				return err
			}
			defer pool.Close()

			svc := service.NewShareService(repo.NewShareRepo(pool), repo.NewLogoRepo(pool))
			res, err := svc.Import(ctx, shares)
			fmt.Fprintf(cmd.OutOrStdout(), "created %d, updated %d\n", res.Created, res.Updated)
			return err
		},
	}
}
