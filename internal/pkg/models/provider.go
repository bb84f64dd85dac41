package models

import "time"

// Provider represents a tow-truck operator as the matching engine sees one.
type Provider struct {
	ID                 string    `json:"id"`
	Name               string    `json:"name"`
	Model              string    `json:"model"`
	Phone              string    `json:"phone"`
	Online             bool      `json:"online"`
	Location           *Location `json:"location,omitempty"`
	LastStatusChangeAt time.Time `json:"last_status_change_at"`
}

// ToProvider converts the wire shape. A malformed lat_long leaves Location
// nil; the ranking step excludes such providers instead of erroring.
func (w *ProviderWire) ToProvider() *Provider {
	p := &Provider{
		ID:     w.ID.String(),
		Name:   w.Name,
		Model:  w.Model,
		Phone:  w.Phone,
		Online: true,
	}
	if loc, err := ParseLatLong(w.LatLong); err == nil {
		p.Location = loc
	}
	return p
}

// RankedProvider is a provider with the matching engine's derived attributes
// attached: distance to the requester, total trip distance, the quoted price
// and the ETA to reach the requester.
type RankedProvider struct {
	Provider
	DistanceKm      float64 `json:"distance_km"`
	TotalDistanceKm float64 `json:"total_distance_km"`
	Price           float64 `json:"price"`
	EtaMinutes      int     `json:"eta_minutes"`
}
