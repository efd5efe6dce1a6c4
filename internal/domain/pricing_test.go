package domain

import "testing"

func TestTariffPrice(t *testing.T) {
	tests := []struct {
		name       string
		distanceKm float64
		want       float64
	}{
		{"zero distance is base fare", 0, 7.00},
		{"two km", 2, 11.00},
		{"airport run", 28.4, 63.80},
		{"fractional km rounds to cents", 3.333, 13.67},
		{"negative distance clamps to base fare", -5, 7.00},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DefaultTariff.Price(tt.distanceKm)
			if got != tt.want {
				t.Fatalf("Price(%v) = %v, want %v", tt.distanceKm, got, tt.want)
			}
		})
	}
}

func TestTariffPriceCustomRates(t *testing.T) {
	tariff := Tariff{BaseFare: 10, PerKm: 1.5}

	if got := tariff.Price(4); got != 16.00 {
		t.Fatalf("Price(4) = %v, want 16", got)
	}
}

func TestRound2(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{1.004, 1.00},
		{1.006, 1.01},
		{28.399, 28.40},
		{0, 0},
	}

	for _, tt := range tests {
		if got := Round2(tt.in); got != tt.want {
			t.Errorf("Round2(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
