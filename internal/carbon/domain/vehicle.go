package domain

// Vehicle is one row of the emission factor table. Type is matched exactly
// and case-sensitively; EmissionFactor is emission per distance unit.
type Vehicle struct {
	Type           string
	EmissionFactor float64
}

// DefaultVehicles is the seed data loaded by cmd/seed.
var DefaultVehicles = []Vehicle{
	{Type: "Bike", EmissionFactor: 0},
	{Type: "Bus", EmissionFactor: 0.15},
	{Type: "Car", EmissionFactor: 0.05},
	{Type: "Motorcycle", EmissionFactor: 0.02},
	{Type: "Train", EmissionFactor: 0.04},
	{Type: "Truck", EmissionFactor: 0.1},
}
