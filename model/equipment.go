package model

import "time"

// Equipment represents a catalog entry (quantity-based, not per-unit tracking).
type Equipment struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	Sport             string    `json:"sport"`
	TotalQuantity     int       `json:"total_quantity"`
	AvailableQuantity int       `json:"available_quantity"`
	Description       string    `json:"description,omitempty"`
	Image             []byte    `json:"image,omitempty"`
	ImageMime         string    `json:"image_mime,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// Sports.
const (
	SportSoccer     = "soccer"
	SportBasketball = "basketball"
	SportHandball   = "handball"
	SportRugby      = "rugby"
)

// ValidSport reports whether sport is one of the known sports.
func ValidSport(sport string) bool {
	switch sport {
	case SportSoccer, SportBasketball, SportHandball, SportRugby:
		return true
	}
	return false
}
