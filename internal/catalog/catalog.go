// Package catalog serves the static vehicle classes and the mock location
// suggestions used by the booking flow.
package catalog

import (
	"strings"

	"quickride/internal/domain"
)

var vehicles = []domain.Vehicle{
	{
		ID:                   1,
		Name:                 "QuickRide",
		Type:                 domain.VehicleTypeEconomy,
		Capacity:             4,
		EstimatedTimeMinutes: 3,
		EstimatedFare:        8.50,
		Description:          "Affordable rides for everyday travel",
	},
	{
		ID:                   2,
		Name:                 "Comfort",
		Type:                 domain.VehicleTypeComfort,
		Capacity:             4,
		EstimatedTimeMinutes: 5,
		EstimatedFare:        12.50,
		Description:          "Extra legroom and newer vehicles",
	},
	{
		ID:                   3,
		Name:                 "Premium",
		Type:                 domain.VehicleTypePremium,
		Capacity:             4,
		EstimatedTimeMinutes: 7,
		EstimatedFare:        18.00,
		Description:          "Luxury vehicles with premium service",
	},
	{
		ID:                   4,
		Name:                 "QuickXL",
		Type:                 domain.VehicleTypeSUV,
		Capacity:             6,
		EstimatedTimeMinutes: 6,
		EstimatedFare:        15.00,
		Description:          "Extra space for groups and luggage",
	},
}

var locations = []domain.Location{
	{Name: "Times Square, New York", Address: "Times Square, NY 10036", Lat: 40.7580, Lng: -73.9855},
	{Name: "Central Park", Address: "Central Park, New York, NY", Lat: 40.7831, Lng: -73.9712},
	{Name: "Empire State Building", Address: "350 5th Ave, New York, NY 10118", Lat: 40.7484, Lng: -73.9857},
	{Name: "Brooklyn Bridge", Address: "Brooklyn Bridge, New York, NY", Lat: 40.7061, Lng: -73.9969},
	{Name: "Grand Central Terminal", Address: "89 E 42nd St, New York, NY 10017", Lat: 40.7527, Lng: -73.9772},
}

// Vehicles returns all bookable vehicle classes.
func Vehicles() []domain.Vehicle {
	out := make([]domain.Vehicle, len(vehicles))
	copy(out, vehicles)
	return out
}

// VehicleByID returns the catalog entry with the given ID, or nil.
func VehicleByID(id int) *domain.Vehicle {
	for _, v := range vehicles {
		if v.ID == id {
			out := v
			return &out
		}
	}
	return nil
}

// VehicleByType returns the catalog entry for the given type, or nil.
func VehicleByType(t domain.VehicleType) *domain.Vehicle {
	for _, v := range vehicles {
		if v.Type == t {
			out := v
			return &out
		}
	}
	return nil
}

// SearchLocations returns suggestions whose name or address contains the
// query, case-insensitively. An empty query returns no suggestions so the
// autocomplete dropdown stays closed until the user types.
func SearchLocations(query string) []domain.Location {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}

	var out []domain.Location
	for _, l := range locations {
		if strings.Contains(strings.ToLower(l.Name), q) || strings.Contains(strings.ToLower(l.Address), q) {
			out = append(out, l)
		}
	}
	return out
}
