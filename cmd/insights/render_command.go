package main

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ewilliams-labs/spotify-insights/internal/adapters/charts"
	"github.com/ewilliams-labs/spotify-insights/internal/core/domain"
)

const dashboardTarget = "dashboard"

func newRenderCommand(ctx *commandContext) *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "render <kind|dashboard>",
		Short: "Write an interactive HTML chart",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target := strings.ToLower(strings.TrimSpace(args[0]))

			var kind domain.StatisticKind
			if target != dashboardTarget {
				parsed, err := domain.ParseStatisticKind(target)
				if err != nil {
					return err
				}
				kind = parsed
				target = kind.Slug()
			}

			a, err := ctx.ensureApp(cmd.Context())
			if err != nil {
				return err
			}

			renderer := charts.NewRenderer()
			var buf bytes.Buffer
			if kind == "" {
				pages, err := a.Insights.Dashboard(cmd.Context())
				if err != nil {
					return err
				}
				if err := renderer.RenderDashboard(&buf, pages); err != nil {
					return err
				}
			} else {
				page, err := a.Insights.Page(cmd.Context(), kind)
				if err != nil {
					return err
				}
				if err := renderer.RenderPage(&buf, page); err != nil {
					return err
				}
			}

			path := strings.TrimSpace(outPath)
			if path == "" {
				path = target + ".html"
			}
			if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
				return fmt.Errorf("write %s: %w", path, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Destination HTML file (default <kind>.html)")
	return cmd
}
