package main

import (
	"github.com/spf13/cobra"

	"anisub/internal/matching"
	"anisub/internal/store"
)

func newMatchCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "match <name-a> <name-b>",
		Short: "Score two show names with the similarity matcher",
		Long: "Prints the similarity score the binder would use, honoring any " +
			"stored manual overrides. Scores above 60 bind.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(st *store.Store) error {
				links, err := st.LoadLinks(cmd.Context())
				if err != nil {
					return err
				}
				matcher := matching.NewMatcher(nil)
				score := matcher.Similarity(args[0], args[1], links)
				cmd.Printf("%d\n", score)
				return nil
			})
		},
	}
}
