// Package charts draws dashboard pages as interactive HTML using go-echarts.
package charts

import (
	"fmt"
	"io"
	"strings"

	"github.com/go-echarts/go-echarts/v2/components"

	"github.com/ewilliams-labs/spotify-insights/internal/core/domain"
	"github.com/ewilliams-labs/spotify-insights/internal/core/ports"
)

const (
	chartWidth      = "1100px"
	chartHeight     = "600px"
	backgroundColor = "#0e1117"
	textColor       = "#fafafa"
	noticeColor     = "#f5c542"
)

// Renderer implements ports.ChartRenderer.
type Renderer struct {
	Width  string
	Height string
}

// compile-time interface assertion
var _ ports.ChartRenderer = (*Renderer)(nil)

// NewRenderer returns a Renderer with the default chart size.
func NewRenderer() *Renderer {
	return &Renderer{Width: chartWidth, Height: chartHeight}
}

// RenderPage writes one page as a standalone HTML document.
func (r *Renderer) RenderPage(w io.Writer, page domain.Page) error {
	chart, err := r.build(page)
	if err != nil {
		return err
	}
	p := components.NewPage()
	p.PageTitle = page.Title
	p.AddCharts(chart)
	if err := p.Render(w); err != nil {
		return fmt.Errorf("charts: render %s: %w", page.Kind, err)
	}
	return nil
}

// RenderDashboard writes every page into one HTML document, in order.
func (r *Renderer) RenderDashboard(w io.Writer, pages []domain.Page) error {
	p := components.NewPage()
	p.PageTitle = "spotify insights"
	for _, page := range pages {
		chart, err := r.build(page)
		if err != nil {
			return err
		}
		p.AddCharts(chart)
	}
	if err := p.Render(w); err != nil {
		return fmt.Errorf("charts: render dashboard: %w", err)
	}
	return nil
}

func (r *Renderer) build(page domain.Page) (components.Charter, error) {
	switch page.Kind {
	case domain.KindRecentEvents:
		return r.habitsChart(page), nil
	case domain.KindTopArtists:
		return r.artistsChart(page), nil
	case domain.KindTopTracks:
		return r.tracksChart(page), nil
	case domain.KindTopGenres:
		return r.galaxyChart(page), nil
	case domain.KindMood:
		return r.auraChart(page), nil
	default:
		return nil, fmt.Errorf("charts: %w: %q", domain.ErrUnknownKind, page.Kind)
	}
}

// subtitle puts the fallback notice first so it is read before the chart.
func subtitle(page domain.Page) string {
	lines := make([]string, 0, 3)
	if page.Notice != "" {
		lines = append(lines, page.Notice)
	}
	if page.Description != "" {
		lines = append(lines, page.Description)
	}
	if page.Insight != "" {
		lines = append(lines, page.Insight)
	}
	return strings.Join(lines, "\n")
}

func subtitleColor(page domain.Page) string {
	if page.IsFallback {
		return noticeColor
	}
	return textColor
}
