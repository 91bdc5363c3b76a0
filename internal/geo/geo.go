// Package geo provides pure distance, fare and travel-time estimation.
// All functions are total and side-effect free apart from a log line on
// unknown vehicle types.
package geo

import (
	"log"
	"math"

	"quickride/internal/domain"
)

// earthRadiusMiles is the mean Earth radius used for haversine distances.
const earthRadiusMiles = 3959.0

// averageCitySpeedMph is the assumed average speed for ETA estimation.
const averageCitySpeedMph = 20.0

// fareRate holds the pricing constants for one vehicle type.
type fareRate struct {
	base    float64
	perMile float64
}

var fareRates = map[domain.VehicleType]fareRate{
	domain.VehicleTypeEconomy: {base: 2.50, perMile: 1.25},
	domain.VehicleTypeComfort: {base: 3.50, perMile: 1.75},
	domain.VehicleTypePremium: {base: 5.00, perMile: 2.50},
	domain.VehicleTypeSUV:     {base: 4.00, perMile: 2.00},
}

// Distance returns the great-circle distance between two locations in miles.
func Distance(a, b domain.Location) float64 {
	dLat := toRadians(b.Lat - a.Lat)
	dLng := toRadians(b.Lng - a.Lng)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRadians(a.Lat))*math.Cos(toRadians(b.Lat))*
			math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusMiles * c
}

// EstimateFare returns the estimated fare for a trip of the given distance.
// Unknown vehicle types fall back to economy rates; this is a deliberate
// default rather than an error, but it is logged so misuse is visible.
func EstimateFare(distanceMiles float64, vehicleType domain.VehicleType) float64 {
	rate, ok := fareRates[vehicleType]
	if !ok {
		log.Printf("[GEO] unknown vehicle type %q, using economy rates", vehicleType)
		rate = fareRates[domain.VehicleTypeEconomy]
	}
	return rate.base + rate.perMile*distanceMiles
}

// EstimateTimeMinutes returns the estimated travel time in whole minutes,
// assuming the average city speed.
func EstimateTimeMinutes(distanceMiles float64) int {
	return int(math.Round(distanceMiles / averageCitySpeedMph * 60))
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}
