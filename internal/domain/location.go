package domain

// Location represents a named point on the map.
// Locations are immutable once selected by the user.
type Location struct {
	Name    string  `json:"name"`
	Address string  `json:"address"`
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
}

// IsZero reports whether the location carries no data.
func (l Location) IsZero() bool {
	return l.Name == "" && l.Address == "" && l.Lat == 0 && l.Lng == 0
}
