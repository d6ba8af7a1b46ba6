package domain

import (
	"strconv"
	"time"
)

// Encoding tells the chart renderer which record fields drive each visual
// channel.
type Encoding struct {
	X     string   `json:"x"`
	Y     string   `json:"y"`
	Color string   `json:"color,omitempty"`
	Size  string   `json:"size,omitempty"`
	Hover []string `json:"hover,omitempty"`
}

// Dataset is the normalized record set of one statistic. Only the slice
// matching Kind is populated; the shape is the same for live and sample data.
type Dataset struct {
	Kind       StatisticKind    `json:"kind"`
	IsFallback bool             `json:"is_fallback"`
	Notice     string           `json:"notice,omitempty"`
	Events     []ListeningEvent `json:"events,omitempty"`
	Artists    []ArtistRecord   `json:"artists,omitempty"`
	Tracks     []TrackRecord    `json:"tracks,omitempty"`
	Genres     []GenreRecord    `json:"genres,omitempty"`
	Moods      []MoodRecord     `json:"moods,omitempty"`
}

// Len returns the number of records for the dataset's kind.
func (d Dataset) Len() int {
	switch d.Kind {
	case KindRecentEvents:
		return len(d.Events)
	case KindTopArtists:
		return len(d.Artists)
	case KindTopTracks:
		return len(d.Tracks)
	case KindTopGenres:
		return len(d.Genres)
	case KindMood:
		return len(d.Moods)
	default:
		return 0
	}
}

// Records returns the populated record slice, or an empty list for an
// unknown kind.
func (d Dataset) Records() any {
	switch d.Kind {
	case KindRecentEvents:
		return d.Events
	case KindTopArtists:
		return d.Artists
	case KindTopTracks:
		return d.Tracks
	case KindTopGenres:
		return d.Genres
	case KindMood:
		return d.Moods
	default:
		return []struct{}{}
	}
}

// Page is everything a renderer needs to draw one dashboard page.
type Page struct {
	RenderID    string    `json:"render_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Insight     string    `json:"insight,omitempty"`
	GeneratedAt time.Time `json:"generated_at"`
	Encoding    Encoding  `json:"encoding"`
	Heatmap     *Heatmap  `json:"heatmap,omitempty"`
	Dataset
}

// Table is a plain tabular view of a record set.
type Table struct {
	Columns []string   `json:"columns"`
	Rows    [][]string `json:"rows"`
}

// Table returns the page as rows of text. Listening habits are shown as the
// day-by-hour heatmap, every other kind as its record list.
func (p Page) Table() Table {
	if p.Kind == KindRecentEvents && p.Heatmap != nil {
		return p.Heatmap.Table()
	}
	return p.Dataset.Table()
}

// Table returns the dataset records as rows of text.
func (d Dataset) Table() Table {
	switch d.Kind {
	case KindRecentEvents:
		t := Table{Columns: []string{"Day", "Hour", "Track", "Artist"}}
		for _, e := range d.Events {
			t.Rows = append(t.Rows, []string{e.Day, e.Hour, e.Track, e.Artist})
		}
		return t
	case KindTopArtists:
		t := Table{Columns: []string{"Artist", "Popularity"}}
		for _, a := range d.Artists {
			t.Rows = append(t.Rows, []string{a.Artist, strconv.Itoa(a.Popularity)})
		}
		return t
	case KindTopTracks:
		t := Table{Columns: []string{"Track", "Artist", "Popularity", "Duration (min)"}}
		for _, tr := range d.Tracks {
			t.Rows = append(t.Rows, []string{tr.Track, tr.Artist, strconv.Itoa(tr.Popularity), formatFloat(tr.DurationMinutes)})
		}
		return t
	case KindTopGenres:
		t := Table{Columns: []string{"Genre", "Count", "Angle", "Radius", "X", "Y"}}
		for _, g := range d.Genres {
			t.Rows = append(t.Rows, []string{
				g.Genre, strconv.Itoa(g.Count),
				formatFloat(g.Angle), formatFloat(g.Radius), formatFloat(g.X), formatFloat(g.Y),
			})
		}
		return t
	case KindMood:
		t := Table{Columns: []string{"Track", "Artist", "Energy", "Valence", "Danceability"}}
		for _, m := range d.Moods {
			t.Rows = append(t.Rows, []string{m.Track, m.Artist, formatFloat(m.Energy), formatFloat(m.Valence), formatFloat(m.Danceability)})
		}
		return t
	default:
		return Table{}
	}
}

// Table returns the heatmap with one row per weekday and one column per hour.
func (h Heatmap) Table() Table {
	t := Table{Columns: make([]string, 0, len(h.Hours)+1)}
	t.Columns = append(t.Columns, "Day")
	t.Columns = append(t.Columns, h.Hours[:]...)
	for d, day := range h.Days {
		row := make([]string, 0, len(h.Hours)+1)
		row = append(row, day)
		for _, c := range h.Counts[d] {
			row = append(row, strconv.Itoa(c))
		}
		t.Rows = append(t.Rows, row)
	}
	return t
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
