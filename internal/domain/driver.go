package domain

// DriverVehicle describes the car a driver arrives in.
type DriverVehicle struct {
	Model        string `json:"model"`
	LicensePlate string `json:"license_plate"`
	Color        string `json:"color"`
}

// Driver represents a driver assigned to a ride.
// A Driver exists only after the ride reaches the driver_assigned state.
type Driver struct {
	ID      string        `json:"id"`
	Name    string        `json:"name"`
	Rating  float64       `json:"rating"` // 0..5
	Vehicle DriverVehicle `json:"vehicle"`
}
