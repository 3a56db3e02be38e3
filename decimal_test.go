package folio

import (
	"math"
	"testing"
)

func TestDecimal_Exactness(t *testing.T) {
	tests := []struct {
		name string
		got  float64
		want float64
	}{
		{"add", Add(0.1, 0.2), 0.3},
		{"subtract", Subtract(0.3, 0.1), 0.2},
		{"multiply", Multiply(0.1, 0.2), 0.02},
		{"divide", Divide(10, 4), 2.5},
		{"sum of ten dimes", Sum(0.1, 0.1, 0.1, 0.1, 0.1, 0.1, 0.1, 0.1, 0.1, 0.1), 1},
		{"empty sum", Sum(), 0},
		{"percentage", Percentage(25, 200), 12.5},
		{"weighted average", WeightedAverage(100, 10, 120, 10), 110},
		{"weighted average from nothing", WeightedAverage(0, 0, 42, 3), 42},
		{"round half up", Round(10.125, 2), 10.13},
		{"round half away from zero", Round(-10.125, 2), -10.13},
		{"round to units", Round(2.5, 0), 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}
}

func TestDecimal_ZeroSafety(t *testing.T) {
	tests := []struct {
		name string
		got  float64
	}{
		{"divide by zero", Divide(1, 0)},
		{"percentage of zero", Percentage(1, 0)},
		{"weighted average of nothing", WeightedAverage(0, 0, 0, 0)},
		{"weighted average back to zero", WeightedAverage(100, 10, 100, -10)},
		{"NaN operand", Add(math.NaN(), 0)},
		{"infinite operand", Multiply(math.Inf(1), 2)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != 0 {
				t.Errorf("got %v, want 0", tt.got)
			}
		})
	}
}

func TestCompare(t *testing.T) {
	if got := Compare(Add(0.1, 0.2), 0.3); got != 0 {
		t.Errorf("Compare(0.1+0.2, 0.3) = %d, want 0", got)
	}
	if got := Min(2, 1); got != 1 {
		t.Errorf("Min(2, 1) = %v, want 1", got)
	}
}
