package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ewilliams-labs/spotify-insights/internal/core/domain"
)

func newStatCommands(ctx *commandContext) []*cobra.Command {
	short := map[domain.StatisticKind]string{
		domain.KindRecentEvents: "Show when you listen, as a day by hour grid",
		domain.KindTopArtists:   "Show your top artists by popularity",
		domain.KindTopTracks:    "Show your top tracks with popularity and duration",
		domain.KindTopGenres:    "Show your genre galaxy",
		domain.KindMood:         "Show the simulated mood of your favourite tracks",
	}

	cmds := make([]*cobra.Command, 0, len(domain.Kinds()))
	for _, kind := range domain.Kinds() {
		cmds = append(cmds, newStatCommand(ctx, kind, short[kind]))
	}
	return cmds
}

func newStatCommand(ctx *commandContext, kind domain.StatisticKind, short string) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:     kind.Slug(),
		Aliases: []string{string(kind)},
		Short:   short,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := ctx.ensureApp(cmd.Context())
			if err != nil {
				return err
			}
			page, err := a.Insights.Page(cmd.Context(), kind)
			if err != nil {
				return err
			}
			if jsonOutput {
				return writeJSON(cmd, newStatOutput(page))
			}
			printPage(cmd, page)
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output the page as JSON")
	return cmd
}

func printPage(cmd *cobra.Command, page domain.Page) {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, page.Title)
	if page.IsFallback && page.Notice != "" {
		fmt.Fprintf(out, "note: %s\n", page.Notice)
	}
	fmt.Fprintln(out)

	t := page.Table()
	fmt.Fprintln(out, renderTable(out, t.Columns, t.Rows, numericAlignments(t)))

	if page.Insight != "" {
		fmt.Fprintln(out)
		fmt.Fprintln(out, page.Insight)
	}
}

// numericAlignments right-aligns every column whose cells all parse as numbers.
func numericAlignments(t domain.Table) []columnAlignment {
	aligns := make([]columnAlignment, len(t.Columns))
	if len(t.Rows) == 0 {
		return aligns
	}
	for col := range t.Columns {
		numeric := true
		for _, row := range t.Rows {
			if col >= len(row) {
				numeric = false
				break
			}
			if _, err := strconv.ParseFloat(row[col], 64); err != nil {
				numeric = false
				break
			}
		}
		if numeric {
			aligns[col] = alignRight
		}
	}
	return aligns
}
