// Package store holds the whole application state (users, equipment
// catalog, rental ledger) behind a single mutex and persists it as one
// snapshot file after every mutation. Create/return are compound
// read-check-then-write operations, so all of them run inside the same
// critical section.
package store

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/tjhs/sportrental/model"
)

// Store is the process-wide state holder.
type Store struct {
	mu   sync.Mutex
	path string
	loc  *time.Location

	users         []model.User
	equipment     []model.Equipment
	rentals       []model.Rental
	currentUserID string
}

// New returns a memory-only store with the default catalog, for callers
// that do not need persistence.
func New(loc *time.Location) *Store {
	if loc == nil {
		loc = time.Local
	}
	return &Store{
		loc:       loc,
		equipment: defaultCatalog(),
	}
}

// Open loads the snapshot at path, or seeds the default catalog when no
// snapshot exists yet. Due dates on new rentals are computed in loc.
func Open(path string, loc *time.Location) (*Store, error) {
	s := New(loc)
	s.path = path

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading snapshot: %w", err)
	}

	if err := s.restore(data); err != nil {
		return nil, err
	}
	return s, nil
}

// defaultCatalog is the equipment seeded on first run.
func defaultCatalog() []model.Equipment {
	now := time.Now()
	items := []model.Equipment{
		{ID: "1", Name: "Soccer Ball", Sport: model.SportSoccer, TotalQuantity: 10, AvailableQuantity: 10, Description: "Standard size 5 soccer ball"},
		{ID: "2", Name: "Basketball", Sport: model.SportBasketball, TotalQuantity: 8, AvailableQuantity: 8, Description: "Official size basketball"},
		{ID: "3", Name: "Handball", Sport: model.SportHandball, TotalQuantity: 6, AvailableQuantity: 6, Description: "Official handball"},
		{ID: "4", Name: "Rugby Ball", Sport: model.SportRugby, TotalQuantity: 5, AvailableQuantity: 5, Description: "Official rugby ball"},
	}
	for i := range items {
		items[i].CreatedAt = now
		items[i].UpdatedAt = now
	}
	return items
}

// findUser returns a pointer into the user slice. Callers must hold s.mu.
func (s *Store) findUser(id string) *model.User {
	for i := range s.users {
		if s.users[i].ID == id {
			return &s.users[i]
		}
	}
	return nil
}

// findEquipment returns a pointer into the catalog. Callers must hold s.mu.
func (s *Store) findEquipment(id string) *model.Equipment {
	for i := range s.equipment {
		if s.equipment[i].ID == id {
			return &s.equipment[i]
		}
	}
	return nil
}

// findRental returns a pointer into the ledger. Callers must hold s.mu.
func (s *Store) findRental(id string) *model.Rental {
	for i := range s.rentals {
		if s.rentals[i].ID == id {
			return &s.rentals[i]
		}
	}
	return nil
}
