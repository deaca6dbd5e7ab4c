package model

import (
	"fmt"
	"time"
)

// TimeSlot is a fixed daily window during which equipment may be rented
// and must be returned.
type TimeSlot struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	StartTime string `json:"start_time"` // HH:MM
	EndTime   string `json:"end_time"`   // HH:MM
}

// Slot IDs.
const (
	SlotRecess = "recess"
	SlotLunch  = "lunch"
)

// TimeSlots lists the rental windows in display order.
var TimeSlots = []TimeSlot{
	{ID: SlotRecess, Name: "Recess", StartTime: "11:00", EndTime: "11:30"},
	{ID: SlotLunch, Name: "Lunch", StartTime: "12:30", EndTime: "13:00"},
}

// SlotByID returns the time slot with the given ID.
func SlotByID(id string) (TimeSlot, bool) {
	for _, s := range TimeSlots {
		if s.ID == id {
			return s, true
		}
	}
	return TimeSlot{}, false
}

// ValidSlot reports whether id names a known time slot.
func ValidSlot(id string) bool {
	_, ok := SlotByID(id)
	return ok
}

// SlotIndex returns the display position of a slot (recess before lunch).
// Unknown slots sort last.
func SlotIndex(id string) int {
	for i, s := range TimeSlots {
		if s.ID == id {
			return i
		}
	}
	return len(TimeSlots)
}

// DateLayout is the calendar-day format used on rentals.
const DateLayout = "2006-01-02"

// ValidDate reports whether date is a well-formed calendar day.
func ValidDate(date string) bool {
	_, err := time.Parse(DateLayout, date)
	return err == nil
}

// DueAt returns the moment the slot ends on the given day, in loc.
func DueAt(date, slotID string, loc *time.Location) (time.Time, error) {
	slot, ok := SlotByID(slotID)
	if !ok {
		return time.Time{}, fmt.Errorf("unknown time slot %q", slotID)
	}
	due, err := time.ParseInLocation(DateLayout+" 15:04", date+" "+slot.EndTime, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing due date: %w", err)
	}
	return due, nil
}
