package charts

import (
	"fmt"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/ewilliams-labs/spotify-insights/internal/core/domain"
)

func (r *Renderer) baseOptions(page domain.Page) []charts.GlobalOpts {
	return []charts.GlobalOpts{
		charts.WithInitializationOpts(opts.Initialization{
			Width:           r.Width,
			Height:          r.Height,
			BackgroundColor: backgroundColor,
		}),
		charts.WithTitleOpts(opts.Title{
			Title:         page.Title,
			Subtitle:      subtitle(page),
			TitleStyle:    &opts.TextStyle{Color: textColor},
			SubtitleStyle: &opts.TextStyle{Color: subtitleColor(page)},
		}),
		charts.WithLegendOpts(opts.Legend{
			Show: opts.Bool(false),
		}),
		charts.WithGridOpts(opts.Grid{
			Left:   "100",
			Top:    "120",
			Bottom: "60",
		}),
	}
}

func axisLabel() *opts.AxisLabel {
	return &opts.AxisLabel{Color: textColor}
}

// habitsChart is the day-by-hour heatmap.
func (r *Renderer) habitsChart(page domain.Page) *charts.HeatMap {
	hm := domain.BuildHeatmap(page.Events)
	if page.Heatmap != nil {
		hm = *page.Heatmap
	}

	data := make([]opts.HeatMapData, 0, len(hm.Days)*len(hm.Hours))
	for _, cell := range hm.Cells() {
		data = append(data, opts.HeatMapData{Value: [3]interface{}{cell.Hour, cell.Day, cell.Count}})
	}
	maxCount := hm.Max()
	if maxCount == 0 {
		maxCount = 1
	}

	chart := charts.NewHeatMap()
	chart.SetGlobalOptions(r.baseOptions(page)...)
	chart.SetGlobalOptions(
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "item"}),
		charts.WithXAxisOpts(opts.XAxis{
			Name:      "Hour of day",
			Type:      "category",
			AxisLabel: axisLabel(),
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name:      "Day of week",
			Type:      "category",
			Data:      hm.Days[:],
			AxisLabel: axisLabel(),
		}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Calculable: opts.Bool(true),
			Min:        0,
			Max:        float32(maxCount),
			InRange:    &opts.VisualMapInRange{Color: domain.PlasmaPalette},
		}),
	)
	chart.SetXAxis(hm.Hours[:]).AddSeries("Plays", data)
	return chart
}

// artistsChart is a bar per artist, height is popularity.
func (r *Renderer) artistsChart(page domain.Page) *charts.Bar {
	names := make([]string, 0, len(page.Artists))
	data := make([]opts.BarData, 0, len(page.Artists))
	for _, a := range page.Artists {
		names = append(names, a.Artist)
		data = append(data, opts.BarData{Name: a.Artist, Value: a.Popularity})
	}

	chart := charts.NewBar()
	chart.SetGlobalOptions(r.baseOptions(page)...)
	chart.SetGlobalOptions(
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithXAxisOpts(opts.XAxis{Name: page.Encoding.X, AxisLabel: axisLabel()}),
		charts.WithYAxisOpts(opts.YAxis{Name: page.Encoding.Y, Min: 0, Max: 100, AxisLabel: axisLabel()}),
	)
	chart.SetXAxis(names).
		AddSeries("Popularity", data, charts.WithItemStyleOpts(opts.ItemStyle{Color: domain.PlasmaPalette[4]}))
	return chart
}

// tracksChart plots duration against popularity. The visual map colours
// each point by its last value, popularity.
func (r *Renderer) tracksChart(page domain.Page) *charts.Scatter {
	data := make([]opts.ScatterData, 0, len(page.Tracks))
	for _, t := range page.Tracks {
		data = append(data, opts.ScatterData{
			Name:       fmt.Sprintf("%s by %s", t.Track, t.Artist),
			Value:      []interface{}{t.DurationMinutes, t.Popularity},
			SymbolSize: 14,
		})
	}

	chart := charts.NewScatter()
	chart.SetGlobalOptions(r.baseOptions(page)...)
	chart.SetGlobalOptions(
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "item"}),
		charts.WithXAxisOpts(opts.XAxis{Name: page.Encoding.X, Type: "value", AxisLabel: axisLabel()}),
		charts.WithYAxisOpts(opts.YAxis{Name: page.Encoding.Y, Type: "value", AxisLabel: axisLabel()}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Calculable: opts.Bool(true),
			Min:        0,
			Max:        100,
			InRange:    &opts.VisualMapInRange{Color: domain.PlasmaPalette},
		}),
	)
	chart.AddSeries("Tracks", data)
	return chart
}

// galaxyChart draws one series per genre so each planet keeps its colour.
func (r *Renderer) galaxyChart(page domain.Page) *charts.Scatter {
	chart := charts.NewScatter()
	chart.SetGlobalOptions(r.baseOptions(page)...)
	chart.SetGlobalOptions(
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "item"}),
		charts.WithXAxisOpts(opts.XAxis{Type: "value", Show: opts.Bool(false)}),
		charts.WithYAxisOpts(opts.YAxis{Type: "value", Show: opts.Bool(false)}),
	)
	for _, g := range page.Genres {
		chart.AddSeries(g.Genre, []opts.ScatterData{{
			Name:       fmt.Sprintf("%s (%d)", g.Genre, g.Count),
			Value:      []interface{}{g.X, g.Y},
			SymbolSize: g.MarkerSize,
		}}, charts.WithItemStyleOpts(opts.ItemStyle{Color: g.Color}))
	}
	return chart
}

// auraChart plots danceability against energy. Points are sized by energy
// and coloured by valence, the last value of each point.
func (r *Renderer) auraChart(page domain.Page) *charts.Scatter {
	data := make([]opts.ScatterData, 0, len(page.Moods))
	for _, m := range page.Moods {
		data = append(data, opts.ScatterData{
			Name:       fmt.Sprintf("%s by %s", m.Track, m.Artist),
			Value:      []interface{}{m.Danceability, m.Energy, m.Valence},
			SymbolSize: int(m.Energy*30) + 6,
		})
	}

	chart := charts.NewScatter()
	chart.SetGlobalOptions(r.baseOptions(page)...)
	chart.SetGlobalOptions(
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "item"}),
		charts.WithXAxisOpts(opts.XAxis{Name: page.Encoding.X, Type: "value", Min: 0, Max: 1, AxisLabel: axisLabel()}),
		charts.WithYAxisOpts(opts.YAxis{Name: page.Encoding.Y, Type: "value", Min: 0, Max: 1, AxisLabel: axisLabel()}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Calculable: opts.Bool(true),
			Min:        0,
			Max:        1,
			InRange:    &opts.VisualMapInRange{Color: domain.PlasmaPalette},
		}),
	)
	chart.AddSeries("Aura", data)
	return chart
}
