// Package report computes read-only views over the catalog and the rental
// ledger. Every function is a pure projection of its inputs and is cheap
// enough to recompute on each call at classroom scale.
package report

import (
	"fmt"
	"sort"
	"time"

	"github.com/tjhs/sportrental/model"
)

// Utilization is the share of an item's capacity consumed by all-time
// rentals, as a percentage.
type Utilization struct {
	EquipmentID   string  `json:"equipment_id"`
	Name          string  `json:"name"`
	Sport         string  `json:"sport"`
	TotalQuantity int     `json:"total_quantity"`
	RentalCount   int     `json:"rental_count"`
	Percent       float64 `json:"percent"`
}

// Utilizations computes per-item utilization, ordered by name.
func Utilizations(equipment []model.Equipment, rentals []model.Rental) []Utilization {
	counts := make(map[string]int)
	for i := range rentals {
		counts[rentals[i].EquipmentID]++
	}

	out := make([]Utilization, 0, len(equipment))
	for _, eq := range equipment {
		u := Utilization{
			EquipmentID:   eq.ID,
			Name:          eq.Name,
			Sport:         eq.Sport,
			TotalQuantity: eq.TotalQuantity,
			RentalCount:   counts[eq.ID],
		}
		// The catalog guarantees TotalQuantity >= 1; guard anyway so a bad
		// record cannot panic the report.
		if eq.TotalQuantity > 0 {
			u.Percent = float64(u.RentalCount) / float64(eq.TotalQuantity) * 100
		}
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// DayCounts are the rental counts for one calendar day.
type DayCounts struct {
	Date     string `json:"date"`
	Total    int    `json:"total"`
	Active   int    `json:"active"`
	Returned int    `json:"returned"`
}

// WeeklyRollup counts rentals per day for days consecutive days starting
// at from (YYYY-MM-DD).
func WeeklyRollup(rentals []model.Rental, from string, days int) ([]DayCounts, error) {
	start, err := time.Parse(model.DateLayout, from)
	if err != nil {
		return nil, fmt.Errorf("parsing start date: %w", err)
	}
	if days < 1 {
		return nil, fmt.Errorf("days must be at least 1")
	}

	byDate := make(map[string][]model.Rental)
	for _, r := range rentals {
		byDate[r.Date] = append(byDate[r.Date], r)
	}

	out := make([]DayCounts, 0, days)
	for i := 0; i < days; i++ {
		date := start.AddDate(0, 0, i).Format(model.DateLayout)
		day := DayCounts{Date: date}
		for _, r := range byDate[date] {
			day.Total++
			switch r.Status {
			case model.RentalStatusActive:
				day.Active++
			case model.RentalStatusReturned:
				day.Returned++
			}
		}
		out = append(out, day)
	}
	return out, nil
}

// CountsBySport tallies all-time rentals per sport.
func CountsBySport(rentals []model.Rental) map[string]int {
	out := make(map[string]int)
	for i := range rentals {
		out[rentals[i].Sport]++
	}
	return out
}
