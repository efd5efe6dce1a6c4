package domain

import "math"

// Tariff is the pricing policy for a trip: a fixed base fare plus a
// per-kilometre rate, both in euros. Keeping it a pure value lets pricing
// changes stay out of the network-call code.
type Tariff struct {
	BaseFare float64
	PerKm    float64
}

// DefaultTariff is the published rate: 7€ pickup plus 2€ per kilometre.
// A 2 km trip prices at 11.00€.
var DefaultTariff = Tariff{BaseFare: 7, PerKm: 2}

// Price returns the fare in euros for the given distance, rounded to
// 2 decimal places. Distances are never negative in practice; a negative
// input is clamped to the base fare.
func (t Tariff) Price(distanceKm float64) float64 {
	if distanceKm < 0 {
		distanceKm = 0
	}
	return Round2(t.BaseFare + t.PerKm*distanceKm)
}

// Round2 rounds to 2 decimal places, half away from zero.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
