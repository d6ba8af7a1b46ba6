package spotify

// Wire types for the Web API endpoints the client reads. Fields that the API
// may omit or null out are pointers so the mapper can tell absent from zero.

type wireArtist struct {
	Name       string   `json:"name"`
	Popularity *int     `json:"popularity"`
	Genres     []string `json:"genres"`
}

type wireTrack struct {
	Name       string       `json:"name"`
	Artists    []wireArtist `json:"artists"`
	Popularity *int         `json:"popularity"`
	DurationMs *int         `json:"duration_ms"`
}

type wirePlayHistory struct {
	Track    *wireTrack `json:"track"`
	PlayedAt string     `json:"played_at"`
}

// recentlyPlayedResponse is GET /me/player/recently-played.
type recentlyPlayedResponse struct {
	Items []wirePlayHistory `json:"items"`
}

// topArtistsResponse is GET /me/top/artists.
type topArtistsResponse struct {
	Items []wireArtist `json:"items"`
}

// topTracksResponse is GET /me/top/tracks.
type topTracksResponse struct {
	Items []wireTrack `json:"items"`
}

type errorResponse struct {
	Error struct {
		Status  int    `json:"status"`
		Message string `json:"message"`
	} `json:"error"`
}
