package models

import (
	"math"
	"testing"
)

func TestConversionsMetric(t *testing.T) {
	r := &Report{Temp: 0, FeelsLike: 21.5, Units: UnitsMetric}

	if got := r.TempCelsius(); got != 0 {
		t.Errorf("TempCelsius = %v, want 0", got)
	}
	if got := r.TempFahrenheit(); got != 32 {
		t.Errorf("TempFahrenheit = %v, want 32", got)
	}
	if got := r.FeelsLikeFahrenheit(); math.Abs(got-70.7) > 0.001 {
		t.Errorf("FeelsLikeFahrenheit = %v, want 70.7", got)
	}
	if got := r.WindUnit(); got != "m/s" {
		t.Errorf("WindUnit = %q, want m/s", got)
	}
}

func TestConversionsImperial(t *testing.T) {
	r := &Report{Temp: 70.7, FeelsLike: 32, Units: UnitsImperial}

	if got := r.TempCelsius(); math.Abs(got-21.5) > 0.001 {
		t.Errorf("TempCelsius = %v, want 21.5", got)
	}
	if got := r.TempFahrenheit(); got != 70.7 {
		t.Errorf("TempFahrenheit = %v, want 70.7", got)
	}
	if got := r.FeelsLikeCelsius(); got != 0 {
		t.Errorf("FeelsLikeCelsius = %v, want 0", got)
	}
	if got := r.WindUnit(); got != "mph" {
		t.Errorf("WindUnit = %q, want mph", got)
	}
}
