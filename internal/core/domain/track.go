package domain

import "time"

// ListeningEvent is one play from the recently-played history.
// Day is the English weekday name and Hour a 12-hour clock label ("03 PM"),
// both in the dashboard's configured time zone.
type ListeningEvent struct {
	Track    string    `json:"track"`
	Artist   string    `json:"artist"`
	PlayedAt time.Time `json:"played_at"`
	Day      string    `json:"day"`
	Hour     string    `json:"hour"`
}

// TrackRecord is a row of the top tracks table.
type TrackRecord struct {
	Track           string  `json:"Track"`
	Artist          string  `json:"Artist"`
	Popularity      int     `json:"Popularity"`
	DurationMinutes float64 `json:"Duration (min)"`
}

// ArtistRecord is a row of the top artists table.
type ArtistRecord struct {
	Artist     string `json:"Artist"`
	Popularity int    `json:"Popularity"`
}

// GenreRecord is a genre counted across top artists. Everything after Count
// is derived by LayoutSpiral for the galaxy chart.
type GenreRecord struct {
	Genre      string  `json:"genre"`
	Count      int     `json:"count"`
	Angle      float64 `json:"angle"`
	Radius     float64 `json:"radius"`
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	MarkerSize int     `json:"marker_size"`
	Color      string  `json:"color"`
}

// MoodRecord carries the three mood dimensions of a track, each in [0,1].
type MoodRecord struct {
	Track        string  `json:"Track"`
	Artist       string  `json:"Artist"`
	Energy       float64 `json:"Energy"`
	Valence      float64 `json:"Valence"`
	Danceability float64 `json:"Danceability"`
}
