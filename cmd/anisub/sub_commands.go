package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"anisub/internal/filter"
	"anisub/internal/store"
)

func newSubCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sub",
		Short: "Manage subscriptions",
	}
	cmd.AddCommand(newSubListCommand(ctx))
	cmd.AddCommand(newSubAddCommand(ctx))
	cmd.AddCommand(newSubRemoveCommand(ctx))
	return cmd
}

func newSubListCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List subscriptions",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(st *store.Store) error {
				subs, err := st.ListSubscriptions(cmd.Context())
				if err != nil {
					return err
				}
				if len(subs) == 0 {
					cmd.Println("no subscriptions")
					return nil
				}
				rows := make([][]string, 0, len(subs))
				for _, sub := range subs {
					name := ""
					if show, err := st.GetCanonicalShow(cmd.Context(), sub.ShowID); err == nil {
						name = show.Name
					}
					rows = append(rows, []string{
						strconv.FormatInt(sub.ShowID, 10),
						name,
						strings.Join(sub.Filter.Include, ","),
						strings.Join(sub.Filter.Exclude, ","),
						sub.Filter.Regex,
						strings.Join(sub.Filter.Sources, ","),
					})
				}
				cmd.Println(renderTable(
					[]string{"Show", "Name", "Include", "Exclude", "Regex", "Sources"},
					rows,
					[]columnAlignment{alignRight, alignLeft, alignLeft, alignLeft, alignLeft, alignLeft},
				))
				return nil
			})
		},
	}
}

func newSubAddCommand(ctx *commandContext) *cobra.Command {
	var spec filter.Spec

	cmd := &cobra.Command{
		Use:   "add <show-id>",
		Short: "Subscribe to a show, replacing any existing filter settings",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			showID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("show id %q is not an integer", args[0])
			}
			return ctx.withStore(func(st *store.Store) error {
				// Subscribing to an unknown show is almost always a typo.
				if _, err := st.GetCanonicalShow(cmd.Context(), showID); err != nil {
					return err
				}
				if err := st.AddSubscription(cmd.Context(), showID, spec); err != nil {
					return err
				}
				cmd.Printf("subscribed to show %d\n", showID)
				return nil
			})
		},
	}
	cmd.Flags().StringSliceVar(&spec.Include, "include", nil, "Keep only titles containing all of these terms")
	cmd.Flags().StringSliceVar(&spec.Exclude, "exclude", nil, "Drop titles containing any of these terms")
	cmd.Flags().StringVar(&spec.Regex, "regex", "", "Keep only titles matching this regex")
	cmd.Flags().StringSliceVar(&spec.Sources, "source", nil, "Restrict to these source ids")
	cmd.Flags().StringSliceVar(&spec.SubtitleGroups, "group", nil, "Restrict to these subtitle group ids")
	return cmd
}

func newSubRemoveCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <show-id>",
		Short: "Unsubscribe from a show",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			showID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("show id %q is not an integer", args[0])
			}
			return ctx.withStore(func(st *store.Store) error {
				if err := st.RemoveSubscription(cmd.Context(), showID); err != nil {
					return err
				}
				cmd.Printf("unsubscribed from show %d\n", showID)
				return nil
			})
		},
	}
}
