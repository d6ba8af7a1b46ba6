package main

import (
	"encoding/json"
	"time"

	"github.com/spf13/cobra"

	"github.com/ewilliams-labs/spotify-insights/internal/core/domain"
)

// statOutput is the --json shape of a stat command. Records holds the
// kind's record list; habits also carry the day by hour grid.
type statOutput struct {
	Kind        domain.StatisticKind `json:"kind"`
	Source      string               `json:"source"`
	Notice      string               `json:"notice,omitempty"`
	Insight     string               `json:"insight,omitempty"`
	GeneratedAt time.Time            `json:"generated_at"`
	Count       int                  `json:"count"`
	Records     any                  `json:"records"`
	Heatmap     *domain.Heatmap      `json:"heatmap,omitempty"`
}

func newStatOutput(page domain.Page) statOutput {
	source := "live"
	if page.IsFallback {
		source = "sample"
	}
	return statOutput{
		Kind:        page.Kind,
		Source:      source,
		Notice:      page.Notice,
		Insight:     page.Insight,
		GeneratedAt: page.GeneratedAt,
		Count:       page.Len(),
		Records:     page.Records(),
		Heatmap:     page.Heatmap,
	}
}

// writeJSON encodes v as indented JSON to the command's stdout.
func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
