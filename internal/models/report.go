package models

import "time"

// Unit systems accepted by the provider's units query parameter.
const (
	UnitsMetric   = "metric"
	UnitsImperial = "imperial"
)

// Report holds everything one rendered weather summary needs. It is built
// from a single provider response and discarded when the process exits.
//
// Temp and FeelsLike are in the requested unit system; WindSpeed is m/s for
// metric and mph for imperial; Pressure is hPa; Humidity is a percentage.
// Sunrise and Sunset carry the city's local zone.
type Report struct {
	City        string
	Country     string
	Temp        float64
	FeelsLike   float64
	Humidity    int
	WindSpeed   float64
	Pressure    int
	Sunrise     time.Time
	Sunset      time.Time
	ConditionID int
	Description string
	Icon        string
	Units       string
}

func (r *Report) TempCelsius() float64 {
	return toCelsius(r.Temp, r.Units)
}

func (r *Report) TempFahrenheit() float64 {
	return toFahrenheit(r.Temp, r.Units)
}

func (r *Report) FeelsLikeCelsius() float64 {
	return toCelsius(r.FeelsLike, r.Units)
}

func (r *Report) FeelsLikeFahrenheit() float64 {
	return toFahrenheit(r.FeelsLike, r.Units)
}

// WindUnit is the label matching the unit system the provider used for
// wind speed.
func (r *Report) WindUnit() string {
	if r.Units == UnitsImperial {
		return "mph"
	}
	return "m/s"
}

func toCelsius(v float64, units string) float64 {
	if units == UnitsImperial {
		return (v - 32.0) * 5.0 / 9.0
	}
	return v
}

func toFahrenheit(v float64, units string) float64 {
	if units == UnitsImperial {
		return v
	}
	return v*9.0/5.0 + 32.0
}
