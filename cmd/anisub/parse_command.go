package main

import (
	"strconv"

	"github.com/spf13/cobra"

	"anisub/internal/episode"
)

func newParseCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "parse <title>...",
		Short: "Extract episode numbers from release titles",
		Long: "Runs the episode number extractor over each title and prints the " +
			"result. Titles that name a range or no single episode print 0.",
		Args:        cobra.MinimumNArgs(1),
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			rows := make([][]string, 0, len(args))
			for _, title := range args {
				rows = append(rows, []string{
					strconv.Itoa(episode.ParseEpisode(title)),
					title,
				})
			}
			cmd.Println(renderTable(
				[]string{"Episode", "Title"},
				rows,
				[]columnAlignment{alignRight, alignLeft},
			))
			return nil
		},
	}
}
