package store

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"testing"

	"github.com/tjhs/sportrental/apperr"
	"github.com/tjhs/sportrental/model"
)

func TestDefaultCatalogSeeded(t *testing.T) {
	s := NewTestStore(t)

	items := s.ListEquipment()
	if len(items) != 4 {
		t.Fatalf("expected 4 seed items, got %d", len(items))
	}

	soccer, err := s.GetEquipment("1")
	if err != nil {
		t.Fatalf("GetEquipment: %v", err)
	}
	if soccer.Name != "Soccer Ball" || soccer.TotalQuantity != 10 || soccer.AvailableQuantity != 10 {
		t.Errorf("unexpected seed soccer ball: %+v", soccer)
	}
}

func TestAddEquipment(t *testing.T) {
	s := NewTestStore(t)

	eq, err := s.AddEquipment(AddEquipmentParams{
		Name:              "Futsal Ball",
		Sport:             model.SportSoccer,
		TotalQuantity:     3,
		AvailableQuantity: 3,
		Description:       "Low-bounce size 4",
	})
	if err != nil {
		t.Fatalf("AddEquipment: %v", err)
	}
	if eq.ID == "" {
		t.Error("expected a generated id")
	}

	got, _ := s.GetEquipment(eq.ID)
	if got == nil || got.Name != "Futsal Ball" {
		t.Errorf("expected futsal ball, got %+v", got)
	}
}

func TestAddEquipmentValidation(t *testing.T) {
	s := NewTestStore(t)

	tests := []struct {
		name   string
		params AddEquipmentParams
	}{
		{"missing name", AddEquipmentParams{Sport: model.SportSoccer, TotalQuantity: 1, AvailableQuantity: 1}},
		{"unknown sport", AddEquipmentParams{Name: "X", Sport: "cricket", TotalQuantity: 1, AvailableQuantity: 1}},
		{"zero total", AddEquipmentParams{Name: "X", Sport: model.SportSoccer, TotalQuantity: 0}},
		{"negative available", AddEquipmentParams{Name: "X", Sport: model.SportSoccer, TotalQuantity: 2, AvailableQuantity: -1}},
		{"available above total", AddEquipmentParams{Name: "X", Sport: model.SportSoccer, TotalQuantity: 2, AvailableQuantity: 3}},
	}

	for _, tt := range tests {
		if _, err := s.AddEquipment(tt.params); !apperr.IsValidation(err) {
			t.Errorf("%s: expected validation error, got %v", tt.name, err)
		}
	}
}

func TestAddEquipmentDuplicateID(t *testing.T) {
	s := NewTestStore(t)

	_, err := s.AddEquipment(AddEquipmentParams{
		ID: "1", Name: "Clone", Sport: model.SportSoccer, TotalQuantity: 1, AvailableQuantity: 1,
	})
	if !apperr.IsConflict(err) {
		t.Errorf("expected conflict for duplicate id, got %v", err)
	}
}

func TestListEquipmentOrderedByName(t *testing.T) {
	s := NewTestStore(t)

	items := s.ListEquipment()
	for i := 1; i < len(items); i++ {
		if items[i-1].Name > items[i].Name {
			t.Errorf("expected name order, got %q before %q", items[i-1].Name, items[i].Name)
		}
	}
}

func TestUpdateEquipmentPartial(t *testing.T) {
	s := NewTestStore(t)

	name := "Match Soccer Ball"
	total := 12
	avail := 12
	eq, err := s.UpdateEquipment("1", UpdateEquipmentParams{
		Name:              &name,
		TotalQuantity:     &total,
		AvailableQuantity: &avail,
	})
	if err != nil {
		t.Fatalf("UpdateEquipment: %v", err)
	}
	if eq.Name != "Match Soccer Ball" || eq.TotalQuantity != 12 {
		t.Errorf("unexpected update result: %+v", eq)
	}
	// Untouched fields survive.
	if eq.Sport != model.SportSoccer || eq.Description == "" {
		t.Errorf("partial update clobbered other fields: %+v", eq)
	}
}

func TestUpdateEquipmentRejectsInvalid(t *testing.T) {
	s := NewTestStore(t)

	bad := 20
	if _, err := s.UpdateEquipment("1", UpdateEquipmentParams{AvailableQuantity: &bad}); !apperr.IsValidation(err) {
		t.Errorf("expected validation error for available > total, got %v", err)
	}
	if _, err := s.UpdateEquipment("missing", UpdateEquipmentParams{}); !apperr.IsNotFound(err) {
		t.Errorf("expected not-found for unknown id, got %v", err)
	}

	// Nothing changed.
	eq, _ := s.GetEquipment("1")
	if eq.AvailableQuantity != 10 {
		t.Errorf("rejected update must not mutate, available = %d", eq.AvailableQuantity)
	}
}

func TestUpdateEquipmentRespectsActiveRentals(t *testing.T) {
	s := NewTestStore(t)
	u := createTestUser(t, s, "u@school.test")

	// One unit of the soccer ball is out, so available is 9 of 10.
	if _, err := s.CreateRental(u.ID, "1", "2025-01-06", model.SlotRecess); err != nil {
		t.Fatalf("CreateRental: %v", err)
	}

	// Claiming all 10 available would make the eventual return overflow
	// the total.
	full := 10
	if _, err := s.UpdateEquipment("1", UpdateEquipmentParams{AvailableQuantity: &full}); !apperr.IsValidation(err) {
		t.Errorf("expected validation error for available+active > total, got %v", err)
	}
	eq, _ := s.GetEquipment("1")
	if eq.AvailableQuantity != 9 {
		t.Errorf("rejected update must not mutate, available = %d", eq.AvailableQuantity)
	}

	// Growing the total alongside is fine: 11 available + 1 active = 12.
	total := 12
	avail := 11
	eq, err := s.UpdateEquipment("1", UpdateEquipmentParams{TotalQuantity: &total, AvailableQuantity: &avail})
	if err != nil {
		t.Fatalf("UpdateEquipment: %v", err)
	}
	if eq.AvailableQuantity+s.ActiveRentalCount("1") != eq.TotalQuantity {
		t.Errorf("invariant broken after update: available=%d active=%d total=%d",
			eq.AvailableQuantity, s.ActiveRentalCount("1"), eq.TotalQuantity)
	}
}

func TestDeleteEquipment(t *testing.T) {
	s := NewTestStore(t)

	if err := s.DeleteEquipment("4"); err != nil {
		t.Fatalf("DeleteEquipment: %v", err)
	}
	if got, _ := s.GetEquipment("4"); got != nil {
		t.Error("expected rugby ball to be gone")
	}
	if err := s.DeleteEquipment("4"); !apperr.IsNotFound(err) {
		t.Errorf("expected not-found for second delete, got %v", err)
	}
}

func testPhoto(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 32, 32))
	for x := 0; x < 32; x++ {
		for y := 0; y < 32; y++ {
			img.Set(x, y, color.RGBA{200, 120, 40, 255})
		}
	}
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, nil); err != nil {
		t.Fatalf("encoding test photo: %v", err)
	}
	return buf.Bytes()
}

func TestEquipmentImage(t *testing.T) {
	s := NewTestStore(t)

	if err := s.SetEquipmentImage("1", testPhoto(t)); err != nil {
		t.Fatalf("SetEquipmentImage: %v", err)
	}

	data, mime, err := s.EquipmentImage("1")
	if err != nil {
		t.Fatalf("EquipmentImage: %v", err)
	}
	if len(data) == 0 {
		t.Error("expected stored image data")
	}
	if mime != "image/jpeg" {
		t.Errorf("expected image/jpeg, got %q", mime)
	}

	if err := s.SetEquipmentImage("1", []byte("not an image")); !apperr.IsValidation(err) {
		t.Errorf("expected validation error for bad image, got %v", err)
	}
	if err := s.SetEquipmentImage("missing", testPhoto(t)); !apperr.IsNotFound(err) {
		t.Errorf("expected not-found for unknown equipment, got %v", err)
	}
}
