package booking

import (
	"fmt"
	"time"
)

// Çalışma saatleri: 09:00 - 18:00, yarım saatlik dilimler.
const (
	WorkDayStartHour = 9
	WorkDayEndHour   = 18
	SlotMinutes      = 30
)

// SlotGrid returns every half-hour label of the working day,
// "09:00" through "17:30" (18 labels, upper bound exclusive).
func SlotGrid() []string {
	var grid []string
	for hour := WorkDayStartHour; hour < WorkDayEndHour; hour++ {
		grid = append(grid, fmt.Sprintf("%02d:00", hour))
		grid = append(grid, fmt.Sprintf("%02d:30", hour))
	}
	return grid
}

// SlotLabel derives the grid label of an appointment's start time.
func SlotLabel(t time.Time, loc *time.Location) string {
	return t.In(loc).Format("15:04")
}

// AvailableSlots returns the grid minus the labels already booked.
// The result keeps the grid's order. Availability is read-only and
// can be stale the instant after it is returned; nothing is reserved.
func AvailableSlots(booked []string) []string {
	taken := make(map[string]bool, len(booked))
	for _, label := range booked {
		taken[label] = true
	}

	var free []string
	for _, label := range SlotGrid() {
		if !taken[label] {
			free = append(free, label)
		}
	}
	return free
}
