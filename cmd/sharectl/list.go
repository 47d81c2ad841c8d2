package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/zvz09/2025-blog-public/internal/domain"
	"github.com/zvz09/2025-blog-public/internal/gallery"
	"github.com/zvz09/2025-blog-public/internal/repo"
)

type listOptions struct {
	term   string
	tag    string
	engine string
	file   string
	json   bool
}

func newListCmd(opts *rootOptions) *cobra.Command {
	lo := &listOptions{}
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List shares as the gallery would show them",
		Long: `list applies the gallery filter to the shares in the database, or in a YAML
file given with --file, and prints each with its gradient and initials.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var shares []domain.Share
			if lo.file != "" {
				var err error
				if shares, err = readSharesFile(lo.file); err != nil {
					return err
				}
			} else {
				ctx := cmd.Context()
				pool, err := opts.openPool(ctx)
				if err != nil {
					return err
				}
				defer pool.Close()
				if shares, err = repo.NewShareRepo(pool).List(ctx); err != nil {
					return err
				}
			}

			visible := gallery.Filter(shares, lo.term, lo.tag, gallery.Engine(lo.engine))
			if lo.json {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(visible)
			}
			return printShares(cmd.OutOrStdout(), visible)
		},
	}
	cmd.Flags().StringVarP(&lo.term, "q", "q", "", "Search term")
	cmd.Flags().StringVar(&lo.tag, "tag", gallery.AllTagsValue, "Tag to match")
	cmd.Flags().StringVar(&lo.engine, "engine", string(gallery.EngineLocal), "Search engine; any engine but local ignores --q")
	cmd.Flags().StringVar(&lo.file, "file", "", "Read shares from a YAML file instead of the database")
	cmd.Flags().BoolVar(&lo.json, "json", false, "Output in JSON format")
	return cmd
}

// printShares writes one aligned row per share: the logo or the gradient and
// initials a card would show, then name, URL and tags.
func printShares(w io.Writer, shares []domain.Share) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "BADGE\tNAME\tURL\tTAGS")
	for _, s := range shares {
		card := gallery.NewCard(s, false)
		badge := "logo"
		if !card.HasLogo {
			badge = card.Fallback + " " + card.Gradient.From + "/" + card.Gradient.To
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", badge, s.Name, card.Href, strings.Join(s.Tags, ","))
	}
	return tw.Flush()
}
