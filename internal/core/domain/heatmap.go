package domain

import (
	"fmt"
	"strings"
	"time"
)

// HourLabelLayout formats an hour of day on a 12-hour clock, e.g. "03 PM".
const HourLabelLayout = "03 PM"

var weekdays = [7]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// Weekdays returns the weekday names Monday through Sunday.
func Weekdays() [7]string {
	return weekdays
}

// HourLabel returns the 12-hour clock label for hour h (0-23).
func HourLabel(h int) string {
	return time.Date(2000, time.January, 1, h, 0, 0, 0, time.UTC).Format(HourLabelLayout)
}

// HourLabels returns the 24 hour labels in chronological order, "12 AM" first.
func HourLabels() [24]string {
	var labels [24]string
	for h := range labels {
		labels[h] = HourLabel(h)
	}
	return labels
}

// ParseHourLabel maps a 12-hour clock label ("03 PM" or "3 PM") back to the
// hour of day it names.
func ParseHourLabel(label string) (int, error) {
	t, err := time.Parse("3 PM", strings.TrimSpace(label))
	if err != nil {
		return 0, fmt.Errorf("domain: invalid hour label %q: %w", label, err)
	}
	return t.Hour(), nil
}

// WeekdayIndex returns the Monday-based position of a weekday name.
func WeekdayIndex(day string) (int, bool) {
	for i, d := range weekdays {
		if strings.EqualFold(d, strings.TrimSpace(day)) {
			return i, true
		}
	}
	return 0, false
}

// Heatmap is a day-by-hour play count table. Rows follow calendar order
// Monday..Sunday and columns follow clock order 12 AM..11 PM.
type Heatmap struct {
	Days   [7]string  `json:"days"`
	Hours  [24]string `json:"hours"`
	Counts [7][24]int `json:"counts"`
}

// HeatmapCell is a single non-positional view of one heatmap entry.
type HeatmapCell struct {
	Day   int
	Hour  int
	Count int
}

// BuildHeatmap counts events per weekday and hour. Every combination is
// present in the result; events whose labels cannot be placed are ignored.
func BuildHeatmap(events []ListeningEvent) Heatmap {
	hm := Heatmap{Days: Weekdays(), Hours: HourLabels()}
	for _, ev := range events {
		day, ok := WeekdayIndex(ev.Day)
		if !ok {
			continue
		}
		hour, err := ParseHourLabel(ev.Hour)
		if err != nil {
			continue
		}
		hm.Counts[day][hour]++
	}
	return hm
}

// Cells flattens the table row by row.
func (h Heatmap) Cells() []HeatmapCell {
	cells := make([]HeatmapCell, 0, len(h.Days)*len(h.Hours))
	for d := range h.Counts {
		for hr, c := range h.Counts[d] {
			cells = append(cells, HeatmapCell{Day: d, Hour: hr, Count: c})
		}
	}
	return cells
}

// Total returns the number of events counted.
func (h Heatmap) Total() int {
	total := 0
	for d := range h.Counts {
		for _, c := range h.Counts[d] {
			total += c
		}
	}
	return total
}

// Max returns the largest cell count, 0 for an empty heatmap.
func (h Heatmap) Max() int {
	return h.Peak().Count
}

// Peak returns the busiest cell. Ties resolve to the earliest day, then hour.
func (h Heatmap) Peak() HeatmapCell {
	peak := HeatmapCell{}
	for _, cell := range h.Cells() {
		if cell.Count > peak.Count {
			peak = cell
		}
	}
	return peak
}
