package services

import (
	"reflect"
	"testing"
	"time"

	"github.com/ewilliams-labs/spotify-insights/internal/core/domain"
)

func TestSampleEvents_Deterministic(t *testing.T) {
	first := SampleEvents(NewRand(DefaultSeed), time.UTC)
	second := SampleEvents(NewRand(DefaultSeed), time.UTC)

	if len(first) != SampleEventCount {
		t.Fatalf("events: got %d, want %d", len(first), SampleEventCount)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("same seed produced different samples")
	}

	other := SampleEvents(NewRand(7), time.UTC)
	if reflect.DeepEqual(first, other) {
		t.Fatalf("different seeds produced identical samples")
	}
}

func TestSampleEvents_LabelsMatchPlayTime(t *testing.T) {
	for _, ev := range SampleEvents(NewRand(DefaultSeed), time.UTC) {
		if ev.PlayedAt.Weekday().String() != ev.Day {
			t.Fatalf("day label %q does not match %s", ev.Day, ev.PlayedAt)
		}
		if ev.PlayedAt.Format(domain.HourLabelLayout) != ev.Hour {
			t.Fatalf("hour label %q does not match %s", ev.Hour, ev.PlayedAt)
		}
	}
}

func TestSampleMoods_Ranges(t *testing.T) {
	moods := SampleMoods(NewRand(DefaultSeed))

	if len(moods) != 20 {
		t.Fatalf("moods: got %d, want 20", len(moods))
	}
	for _, m := range moods {
		if m.Energy < 0.4 || m.Energy >= 1.0 {
			t.Errorf("%s energy out of range: %v", m.Track, m.Energy)
		}
		if m.Valence < 0.2 || m.Valence >= 1.0 {
			t.Errorf("%s valence out of range: %v", m.Track, m.Valence)
		}
		if m.Danceability < 0.3 || m.Danceability >= 1.0 {
			t.Errorf("%s danceability out of range: %v", m.Track, m.Danceability)
		}
	}
	if !reflect.DeepEqual(moods, SampleMoods(NewRand(DefaultSeed))) {
		t.Fatalf("same seed produced different moods")
	}
}

func TestSampleLiterals(t *testing.T) {
	if got := len(SampleArtists()); got != 10 {
		t.Errorf("artists: got %d, want 10", got)
	}
	if got := len(SampleTracks()); got != 10 {
		t.Errorf("tracks: got %d, want 10", got)
	}
	genres := SampleGenres()
	if len(genres) != 8 || genres[0].Genre != "indie pop" || genres[0].Count != 18 {
		t.Errorf("genres: got %+v", genres)
	}
}
