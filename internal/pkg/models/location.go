package models

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Location represents a geographical location with latitude and longitude
type Location struct {
	Latitude  float64   `json:"latitude" db:"latitude"`
	Longitude float64   `json:"longitude" db:"longitude"`
	Timestamp time.Time `json:"timestamp,omitempty" db:"timestamp"`
}

// ParseLatLong parses the backend's "lat,long" coordinate pair format.
// Whitespace around either component is tolerated.
func ParseLatLong(s string) (*Location, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return nil, fmt.Errorf("invalid coordinate pair %q", s)
	}

	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid latitude in %q: %w", s, err)
	}

	lng, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid longitude in %q: %w", s, err)
	}

	if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		return nil, fmt.Errorf("coordinates out of range in %q", s)
	}

	return &Location{Latitude: lat, Longitude: lng}, nil
}

// LatLong renders the location back into the backend's wire format.
func (l Location) LatLong() string {
	return strconv.FormatFloat(l.Latitude, 'f', -1, 64) + "," + strconv.FormatFloat(l.Longitude, 'f', -1, 64)
}

// LocationUpdate represents a provider location push
type LocationUpdate struct {
	ProviderID string    `json:"provider_id"`
	AddressID  string    `json:"address_id"`
	Location   Location  `json:"location"`
	ReceivedAt time.Time `json:"received_at"`
}
