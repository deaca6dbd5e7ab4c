package model

import "time"

// Rental represents a single borrowing of one unit of equipment for one
// time slot. EquipmentName and Sport are copied from the catalog at creation
// time so history stays stable if the catalog later changes.
type Rental struct {
	ID            string     `json:"id"`
	UserID        string     `json:"user_id"`
	EquipmentID   string     `json:"equipment_id"`
	EquipmentName string     `json:"equipment_name"`
	Sport         string     `json:"sport"`
	TimeSlot      string     `json:"time_slot"`
	Date          string     `json:"date"` // YYYY-MM-DD
	Status        string     `json:"status"`
	RentedAt      time.Time  `json:"rented_at"`
	DueDate       time.Time  `json:"due_date"`
	ReturnedAt    *time.Time `json:"returned_at,omitempty"`
}

// Rental statuses. "Overdue" is derived from the due date, never stored.
const (
	RentalStatusActive   = "active"
	RentalStatusReturned = "returned"
)

// IsOverdue reports whether the rental is past due and still out.
// A returned rental is never overdue, no matter how late it came back.
func (r *Rental) IsOverdue(now time.Time) bool {
	return r.Status == RentalStatusActive && now.After(r.DueDate)
}
