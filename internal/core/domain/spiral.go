package domain

import (
	"math"
	"sort"
)

// SpiralTurns is how far the galaxy spiral winds, in radians (two full turns).
const SpiralTurns = 4 * math.Pi

// PlasmaPalette is the sequential colour scale used across the dashboard.
var PlasmaPalette = []string{
	"#0d0887", "#46039f", "#7201a8", "#9c179e", "#bd3786",
	"#d8576b", "#ed7953", "#fb9f3a", "#fdca26", "#f0f921",
}

// LayoutSpiral orders genres by descending count and places them on a
// two-turn spiral. Angles are spaced evenly over [0, 4π] so neighbouring
// markers separate even when counts are close; the base radius steps evenly
// from maxRadius down to 0.2*maxRadius and is scaled by count/maxCount.
func LayoutSpiral(genres []GenreRecord, maxRadius float64) []GenreRecord {
	out := make([]GenreRecord, len(genres))
	copy(out, genres)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Count > out[j].Count
	})

	n := len(out)
	if n == 0 {
		return out
	}
	maxCount := out[0].Count

	innerRadius := 0.2 * maxRadius
	for i := range out {
		var step float64
		if n > 1 {
			step = float64(i) / float64(n-1)
		}
		angle := SpiralTurns * step
		base := maxRadius - (maxRadius-innerRadius)*step
		radius := 0.0
		if maxCount > 0 {
			radius = base * float64(out[i].Count) / float64(maxCount)
		}

		out[i].Angle = angle
		out[i].Radius = radius
		out[i].X = radius * math.Cos(angle)
		out[i].Y = radius * math.Sin(angle)
		out[i].MarkerSize = out[i].Count*2 + 10
		out[i].Color = paletteColor(i, n)
	}
	return out
}

// paletteColor picks evenly spaced palette entries for n markers.
func paletteColor(i, n int) string {
	if n <= 1 {
		return PlasmaPalette[0]
	}
	pos := float64(i) * float64(len(PlasmaPalette)-1) / float64(n-1)
	return PlasmaPalette[int(pos)]
}
