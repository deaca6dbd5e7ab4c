package store

import (
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/tjhs/sportrental/apperr"
	"github.com/tjhs/sportrental/model"
)

// decrementAvailable takes one unit. Rejects when none are left, so the
// available count can never go negative.
func decrementAvailable(eq *model.Equipment) error {
	if eq.AvailableQuantity <= 0 {
		return apperr.Conflictf("no %s available", eq.Name)
	}
	eq.AvailableQuantity--
	return nil
}

// incrementAvailable puts one unit back. Rejects above the total, so a
// stray double-return cannot inflate the count.
func incrementAvailable(eq *model.Equipment) error {
	if eq.AvailableQuantity >= eq.TotalQuantity {
		return apperr.Conflictf("%s is already fully returned", eq.Name)
	}
	eq.AvailableQuantity++
	return nil
}

// CreateRental books one unit of equipment for a user, date and time slot.
// The ledger insert and the inventory decrement happen in the same critical
// section: both succeed or neither does.
func (s *Store) CreateRental(userID, equipmentID, date, slotID string) (*model.Rental, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !model.ValidDate(date) {
		return nil, apperr.Validationf("invalid date %q, want YYYY-MM-DD", date)
	}
	if !model.ValidSlot(slotID) {
		return nil, apperr.Validationf("unknown time slot %q", slotID)
	}

	user := s.findUser(userID)
	if user == nil {
		return nil, apperr.NotFoundf("user %q not found", userID)
	}
	eq := s.findEquipment(equipmentID)
	if eq == nil {
		return nil, apperr.NotFoundf("equipment %q not found", equipmentID)
	}
	if eq.AvailableQuantity <= 0 {
		return nil, apperr.Conflictf("no %s available", eq.Name)
	}

	// One active rental per (equipment, date, slot).
	for i := range s.rentals {
		r := &s.rentals[i]
		if r.Status == model.RentalStatusActive && r.EquipmentID == equipmentID &&
			r.Date == date && r.TimeSlot == slotID {
			return nil, apperr.Conflictf("%s is already rented for %s on %s", eq.Name, slotID, date)
		}
	}

	due, err := model.DueAt(date, slotID, s.loc)
	if err != nil {
		return nil, apperr.Validationf("%v", err)
	}

	rental := model.Rental{
		ID:            uuid.NewString(),
		UserID:        userID,
		EquipmentID:   equipmentID,
		EquipmentName: eq.Name,
		Sport:         eq.Sport,
		TimeSlot:      slotID,
		Date:          date,
		Status:        model.RentalStatusActive,
		RentedAt:      time.Now(),
		DueDate:       due,
	}

	if err := decrementAvailable(eq); err != nil {
		return nil, err
	}
	s.rentals = append(s.rentals, rental)

	if err := s.save(); err != nil {
		s.rentals = s.rentals[:len(s.rentals)-1]
		eq.AvailableQuantity++
		return nil, err
	}

	out := rental
	return &out, nil
}

// ReturnRental marks an active rental returned and puts the unit back.
// A second return of the same rental is a conflict, never a double increment.
func (s *Store) ReturnRental(id string) (*model.Rental, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rental := s.findRental(id)
	if rental == nil {
		return nil, apperr.NotFoundf("rental %q not found", id)
	}
	if rental.Status != model.RentalStatusActive {
		return nil, apperr.Conflictf("rental %q is already returned", id)
	}

	// Equipment may have been deleted since the rental was created; the
	// rental still flips to returned, there is just no stock to put back.
	eq := s.findEquipment(rental.EquipmentID)
	if eq != nil {
		if err := incrementAvailable(eq); err != nil {
			return nil, err
		}
	}

	now := time.Now()
	prev := *rental
	rental.Status = model.RentalStatusReturned
	rental.ReturnedAt = &now

	if err := s.save(); err != nil {
		*rental = prev
		if eq != nil {
			eq.AvailableQuantity--
		}
		return nil, err
	}

	out := *rental
	return &out, nil
}

// BulkReturnResult reports the outcome of each attempted return.
type BulkReturnResult struct {
	Returned []string
	Failed   map[string]error
}

// BulkReturn returns each rental independently; one failure does not stop
// the rest.
func (s *Store) BulkReturn(ids []string) BulkReturnResult {
	result := BulkReturnResult{Failed: make(map[string]error)}
	for _, id := range ids {
		if _, err := s.ReturnRental(id); err != nil {
			result.Failed[id] = err
			continue
		}
		result.Returned = append(result.Returned, id)
	}
	return result
}

// GetRental returns a rental by ID, or nil if unknown.
func (s *Store) GetRental(id string) (*model.Rental, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r := s.findRental(id)
	if r == nil {
		return nil, nil
	}
	out := *r
	return &out, nil
}

// ListRentals returns all rentals in display order.
func (s *Store) ListRentals() []model.Rental {
	s.mu.Lock()
	defer s.mu.Unlock()
	return sortRentals(s.rentals)
}

// RentalsByUser returns a user's rentals. Unknown users yield an empty list.
func (s *Store) RentalsByUser(userID string) []model.Rental {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []model.Rental
	for _, r := range s.rentals {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return sortRentals(out)
}

// RentalsByDate returns the rentals for a calendar day.
func (s *Store) RentalsByDate(date string) []model.Rental {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []model.Rental
	for _, r := range s.rentals {
		if r.Date == date {
			out = append(out, r)
		}
	}
	return sortRentals(out)
}

// OverdueRentals returns active rentals whose due date has passed. The
// caller supplies now, which keeps the cutoff testable.
func (s *Store) OverdueRentals(now time.Time) []model.Rental {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []model.Rental
	for i := range s.rentals {
		if s.rentals[i].IsOverdue(now) {
			out = append(out, s.rentals[i])
		}
	}
	return sortRentals(out)
}

// ActiveRentalCount counts active rentals for one equipment ID.
func (s *Store) ActiveRentalCount(equipmentID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.activeRentalCount(equipmentID)
}

// activeRentalCount is ActiveRentalCount for callers already holding s.mu.
func (s *Store) activeRentalCount(equipmentID string) int {
	count := 0
	for i := range s.rentals {
		if s.rentals[i].Status == model.RentalStatusActive && s.rentals[i].EquipmentID == equipmentID {
			count++
		}
	}
	return count
}

// sortRentals copies rs into display order: recess before lunch, then
// equipment name, case-insensitive.
func sortRentals(rs []model.Rental) []model.Rental {
	out := make([]model.Rental, len(rs))
	copy(out, rs)
	sort.SliceStable(out, func(i, j int) bool {
		si, sj := model.SlotIndex(out[i].TimeSlot), model.SlotIndex(out[j].TimeSlot)
		if si != sj {
			return si < sj
		}
		return strings.ToLower(out[i].EquipmentName) < strings.ToLower(out[j].EquipmentName)
	})
	return out
}
