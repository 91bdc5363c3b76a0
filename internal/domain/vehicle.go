package domain

// VehicleType represents the service class of a vehicle.
type VehicleType string

const (
	VehicleTypeEconomy VehicleType = "economy"
	VehicleTypeComfort VehicleType = "comfort"
	VehicleTypePremium VehicleType = "premium"
	VehicleTypeSUV     VehicleType = "suv"
)

// IsValid reports whether the vehicle type is a known service class.
func (t VehicleType) IsValid() bool {
	switch t {
	case VehicleTypeEconomy, VehicleTypeComfort, VehicleTypePremium, VehicleTypeSUV:
		return true
	}
	return false
}

// Vehicle represents a bookable catalog entry.
type Vehicle struct {
	ID                   int         `json:"id"`
	Name                 string      `json:"name"`
	Type                 VehicleType `json:"type"`
	Capacity             int         `json:"capacity"`
	EstimatedTimeMinutes int         `json:"estimated_time_minutes"`
	EstimatedFare        float64     `json:"estimated_fare"`
	Description          string      `json:"description"`
}
