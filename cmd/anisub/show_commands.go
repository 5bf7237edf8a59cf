package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"anisub/internal/binder"
	"anisub/internal/store"
)

func newShowCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Manage canonical shows",
	}
	cmd.AddCommand(newShowListCommand(ctx))
	cmd.AddCommand(newShowAddCommand(ctx))
	return cmd
}

func newShowListCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List canonical shows",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(st *store.Store) error {
				shows, err := st.ListCanonicalShows(cmd.Context())
				if err != nil {
					return err
				}
				if len(shows) == 0 {
					cmd.Println("no shows")
					return nil
				}
				rows := make([][]string, 0, len(shows))
				for _, show := range shows {
					rows = append(rows, []string{
						strconv.FormatInt(show.ID, 10),
						show.Name,
						show.UpdateWeekday.String(),
						string(show.Status),
						yesNo(show.HasDataSource),
					})
				}
				cmd.Println(renderTable(
					[]string{"ID", "Name", "Weekday", "Status", "Source"},
					rows,
					[]columnAlignment{alignRight, alignLeft, alignLeft, alignLeft, alignLeft},
				))
				return nil
			})
		},
	}
}

func newShowAddCommand(ctx *commandContext) *cobra.Command {
	var weekdayFlag int
	var endedFlag bool

	cmd := &cobra.Command{
		Use:   "add <id> <name>",
		Short: "Add or refresh a canonical show from the schedule feed",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("show id %q is not an integer", args[0])
			}
			name := strings.TrimSpace(args[1])
			if name == "" {
				return fmt.Errorf("show name must not be empty")
			}
			status := binder.StatusUpdating
			if endedFlag {
				status = binder.StatusEnded
			}
			show, err := binder.NewCanonicalShow(id, name, binder.Weekday(weekdayFlag), status)
			if err != nil {
				return err
			}
			return ctx.withStore(func(st *store.Store) error {
				if err := st.UpsertCanonicalShow(cmd.Context(), show); err != nil {
					return err
				}
				cmd.Printf("show %d (%s) saved\n", show.ID, show.Name)
				return nil
			})
		},
	}
	cmd.Flags().IntVar(&weekdayFlag, "weekday", 0, "Update weekday, 1=Mon .. 7=Sun, 0=unknown")
	cmd.Flags().BoolVar(&endedFlag, "ended", false, "Mark the show as no longer airing")
	return cmd
}
