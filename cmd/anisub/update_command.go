package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"anisub/internal/store"
	"anisub/internal/update"
)

func newUpdateCommand(ctx *commandContext) *cobra.Command {
	var feedFlags []string

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Run a full update pass over all subscriptions",
		Long: "Refreshes source show records from the given feeds, binds unbound " +
			"records to canonical shows, filters fresh episodes per subscription, " +
			"and queues the survivors for download.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.logger()
			if err != nil {
				return err
			}

			sources := make([]update.Source, 0, len(feedFlags))
			for _, path := range feedFlags {
				src, err := update.LoadFeed(path)
				if err != nil {
					return err
				}
				sources = append(sources, src)
			}

			return ctx.withStore(func(st *store.Store) error {
				runner := update.NewRunner(st, cfg, sources, logger)
				summary, err := runner.Run(cmd.Context())
				if err != nil {
					return err
				}
				cmd.Printf("source shows refreshed: %d\n", summary.SourceShows)
				cmd.Printf("new bindings: %d\n", summary.Bound)
				cmd.Printf("subscriptions updated: %d\n", summary.Subscriptions)
				cmd.Printf("episodes queued: %d\n", summary.Queued)
				return nil
			})
		},
	}
	cmd.Flags().StringSliceVar(&feedFlags, "feed", nil, "JSON feed file with scraped shows and episodes (repeatable)")
	return cmd
}

func newDownloadsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "downloads",
		Short: "List queued downloads",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(st *store.Store) error {
				downloads, err := st.ListDownloads(cmd.Context())
				if err != nil {
					return err
				}
				if len(downloads) == 0 {
					cmd.Println("no queued downloads")
					return nil
				}
				rows := make([][]string, 0, len(downloads))
				for _, d := range downloads {
					rows = append(rows, []string{
						d.ShowName,
						fmt.Sprintf("%d", d.Episode),
						d.Title,
						d.QueuedAt.Format("2006-01-02 15:04"),
					})
				}
				cmd.Println(renderTable(
					[]string{"Show", "Episode", "Title", "Queued"},
					rows,
					[]columnAlignment{alignLeft, alignRight, alignLeft, alignLeft},
				))
				return nil
			})
		},
	}
}
