package models

import (
	"fmt"
	"strings"
	"time"
)

// TimeSlot is a fixed label for a bookable interval of the business day.
type TimeSlot string

// The daily slot grid. One appointment may be held per shop per slot.
var AllTimeSlots = []TimeSlot{
	"09:00 AM - 10:00 AM",
	"10:00 AM - 11:00 AM",
	"11:00 AM - 12:00 PM",
	"01:00 PM - 02:00 PM",
	"02:00 PM - 03:00 PM",
	"03:00 PM - 04:00 PM",
	"04:00 PM - 05:00 PM",
}

// ValidTimeSlot reports whether the label belongs to the slot grid.
func ValidTimeSlot(slot TimeSlot) bool {
	for _, s := range AllTimeSlots {
		if s == slot {
			return true
		}
	}
	return false
}

// SlotStartTime resolves the wall-clock start of a slot on a given day.
// Slots carry no timezone; UTC is assumed throughout.
func SlotStartTime(date string, slot TimeSlot) (time.Time, error) {
	start, _, ok := strings.Cut(string(slot), " - ")
	if !ok {
		return time.Time{}, fmt.Errorf("malformed time slot %q", slot)
	}
	return time.Parse("2006-01-02 03:04 PM", date+" "+start)
}

// NormalizeDate parses a booking date and reduces it to the calendar day.
// Both plain dates and RFC3339 timestamps are accepted; the time-of-day
// component is dropped so slot comparisons work on whole days.
func NormalizeDate(raw string) (string, error) {
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t.Format("2006-01-02"), nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return "", err
	}
	return t.UTC().Format("2006-01-02"), nil
}
