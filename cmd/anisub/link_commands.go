package main

import (
	"github.com/spf13/cobra"

	"anisub/internal/matching"
	"anisub/internal/store"
)

func newLinkCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "link",
		Short: "Manage manual name overrides for the matcher",
	}
	cmd.AddCommand(newLinkListCommand(ctx))
	cmd.AddCommand(newLinkPutCommand(ctx, "add", matching.KindLink,
		"Force two names to match as the same show"))
	cmd.AddCommand(newLinkPutCommand(ctx, "block", matching.KindUnlink,
		"Force two names apart no matter how similar they look"))
	cmd.AddCommand(newLinkRemoveCommand(ctx))
	return cmd
}

func newLinkListCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List manual overrides",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(st *store.Store) error {
				table, err := st.LoadLinks(cmd.Context())
				if err != nil {
					return err
				}
				if table.Len() == 0 {
					cmd.Println("no overrides")
					return nil
				}
				var rows [][]string
				table.Each(func(a, b string, kind matching.LinkKind) {
					rows = append(rows, []string{a, b, string(kind)})
				})
				cmd.Println(renderTable(
					[]string{"Name A", "Name B", "Kind"},
					rows,
					[]columnAlignment{alignLeft, alignLeft, alignLeft},
				))
				return nil
			})
		},
	}
}

func newLinkPutCommand(ctx *commandContext, use string, kind matching.LinkKind, short string) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <name-a> <name-b>",
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(st *store.Store) error {
				if err := st.PutLink(cmd.Context(), args[0], args[1], kind); err != nil {
					return err
				}
				cmd.Printf("%s recorded for %q and %q\n", kind, args[0], args[1])
				return nil
			})
		},
	}
}

func newLinkRemoveCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <name-a> <name-b>",
		Short: "Remove any override for a pair of names",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(st *store.Store) error {
				if err := st.DeleteLink(cmd.Context(), args[0], args[1]); err != nil {
					return err
				}
				cmd.Printf("override removed for %q and %q\n", args[0], args[1])
				return nil
			})
		},
	}
}
