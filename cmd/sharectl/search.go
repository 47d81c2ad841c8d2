package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zvz09/2025-blog-public/internal/gallery"
)

func newSearchCmd() *cobra.Command {
	var engine string
	cmd := &cobra.Command{
		Use:   "search TERM...",
		Short: "Print the web search URL for a term",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			term := strings.Join(args, " ")
			target, ok := gallery.WebSearchURL(gallery.Engine(engine), term)
			if !ok {
				return fmt.Errorf("engine %q does not search the web", engine)
			}
			fmt.Fprintln(cmd.OutOrStdout(), target)
			return nil
		},
	}
	cmd.Flags().StringVar(&engine, "engine", string(gallery.EngineBing), "One of bing, baidu, google")
	return cmd
}
