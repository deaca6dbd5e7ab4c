package store

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/tjhs/sportrental/apperr"
	"github.com/tjhs/sportrental/imaging"
	"github.com/tjhs/sportrental/model"
)

// AddEquipmentParams are the inputs for AddEquipment. An empty ID gets a
// generated one; a supplied ID must be unique.
type AddEquipmentParams struct {
	ID                string
	Name              string
	Sport             string
	TotalQuantity     int
	AvailableQuantity int
	Description       string
}

// AddEquipment adds a catalog entry. Out-of-range quantities are rejected,
// never clamped.
func (s *Store) AddEquipment(p AddEquipmentParams) (*model.Equipment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if p.Name == "" {
		return nil, apperr.Validationf("name is required")
	}
	if !model.ValidSport(p.Sport) {
		return nil, apperr.Validationf("unknown sport %q", p.Sport)
	}
	if p.TotalQuantity < 1 {
		return nil, apperr.Validationf("total quantity must be at least 1")
	}
	if p.AvailableQuantity < 0 || p.AvailableQuantity > p.TotalQuantity {
		return nil, apperr.Validationf("available quantity must be between 0 and %d", p.TotalQuantity)
	}
	if p.ID != "" && s.findEquipment(p.ID) != nil {
		return nil, apperr.Conflictf("equipment %q already exists", p.ID)
	}

	id := p.ID
	if id == "" {
		id = uuid.NewString()
	}

	now := time.Now()
	eq := model.Equipment{
		ID:                id,
		Name:              p.Name,
		Sport:             p.Sport,
		TotalQuantity:     p.TotalQuantity,
		AvailableQuantity: p.AvailableQuantity,
		Description:       p.Description,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	s.equipment = append(s.equipment, eq)

	if err := s.save(); err != nil {
		s.equipment = s.equipment[:len(s.equipment)-1]
		return nil, err
	}

	out := eq
	return &out, nil
}

// GetEquipment returns a catalog entry by ID, or nil if unknown.
func (s *Store) GetEquipment(id string) (*model.Equipment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	eq := s.findEquipment(id)
	if eq == nil {
		return nil, nil
	}
	out := *eq
	return &out, nil
}

// ListEquipment returns the catalog ordered by name.
func (s *Store) ListEquipment() []model.Equipment {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]model.Equipment, len(s.equipment))
	copy(out, s.equipment)
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// UpdateEquipmentParams are the optional fields for UpdateEquipment.
// Nil pointers leave the current value untouched.
type UpdateEquipmentParams struct {
	Name              *string
	Sport             *string
	TotalQuantity     *int
	AvailableQuantity *int
	Description       *string
}

// UpdateEquipment applies a partial update to a catalog entry. The result
// is re-validated as a whole; rentals keep their denormalized copies.
func (s *Store) UpdateEquipment(id string, p UpdateEquipmentParams) (*model.Equipment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	eq := s.findEquipment(id)
	if eq == nil {
		return nil, apperr.NotFoundf("equipment %q not found", id)
	}

	updated := *eq
	if p.Name != nil {
		updated.Name = *p.Name
	}
	if p.Sport != nil {
		updated.Sport = *p.Sport
	}
	if p.TotalQuantity != nil {
		updated.TotalQuantity = *p.TotalQuantity
	}
	if p.AvailableQuantity != nil {
		updated.AvailableQuantity = *p.AvailableQuantity
	}
	if p.Description != nil {
		updated.Description = *p.Description
	}

	if updated.Name == "" {
		return nil, apperr.Validationf("name is required")
	}
	if !model.ValidSport(updated.Sport) {
		return nil, apperr.Validationf("unknown sport %q", updated.Sport)
	}
	if updated.TotalQuantity < 1 {
		return nil, apperr.Validationf("total quantity must be at least 1")
	}
	if updated.AvailableQuantity < 0 || updated.AvailableQuantity > updated.TotalQuantity {
		return nil, apperr.Validationf("available quantity must be between 0 and %d", updated.TotalQuantity)
	}
	// Quantity edits must leave room for the units currently out, or a
	// later return would push available past the total.
	if active := s.activeRentalCount(id); updated.AvailableQuantity+active > updated.TotalQuantity {
		return nil, apperr.Validationf("available quantity %d plus %d active rentals exceeds total %d",
			updated.AvailableQuantity, active, updated.TotalQuantity)
	}

	updated.UpdatedAt = time.Now()
	prev := *eq
	*eq = updated

	if err := s.save(); err != nil {
		*eq = prev
		return nil, err
	}

	out := updated
	return &out, nil
}

// DeleteEquipment removes a catalog entry. Active rentals referencing it
// keep their denormalized name and sport.
func (s *Store) DeleteEquipment(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i := range s.equipment {
		if s.equipment[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return apperr.NotFoundf("equipment %q not found", id)
	}

	removed := s.equipment[idx]
	s.equipment = append(s.equipment[:idx], s.equipment[idx+1:]...)

	if err := s.save(); err != nil {
		s.equipment = append(s.equipment, model.Equipment{})
		copy(s.equipment[idx+1:], s.equipment[idx:])
		s.equipment[idx] = removed
		return err
	}
	return nil
}

// SetEquipmentImage attaches a catalog photo, validated and downscaled.
func (s *Store) SetEquipmentImage(id string, data []byte) error {
	photo, err := imaging.Process(data)
	if err != nil {
		return apperr.Validationf("processing image: %v", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	eq := s.findEquipment(id)
	if eq == nil {
		return apperr.NotFoundf("equipment %q not found", id)
	}

	prevImage, prevMime := eq.Image, eq.ImageMime
	eq.Image = photo.Data
	eq.ImageMime = photo.MIME
	eq.UpdatedAt = time.Now()

	if err := s.save(); err != nil {
		eq.Image, eq.ImageMime = prevImage, prevMime
		return err
	}
	return nil
}

// EquipmentImage returns a catalog photo and its MIME type.
func (s *Store) EquipmentImage(id string) ([]byte, string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	eq := s.findEquipment(id)
	if eq == nil {
		return nil, "", nil
	}
	return eq.Image, eq.ImageMime, nil
}
