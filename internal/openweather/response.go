package openweather

import (
	"strings"
	"time"

	"github.com/IllyaMoore/Weather-CLI/internal/models"
)

// currentResponse is the subset of the provider's current-weather payload
// this tool displays. Pointer fields are the ones a report cannot be built
// without; their absence is a DecodeError, not a silent zero.
type currentResponse struct {
	Name     string `json:"name"`
	Timezone int    `json:"timezone"` // shift in seconds from UTC

	Main *struct {
		Temp      *float64 `json:"temp"`
		FeelsLike *float64 `json:"feels_like"`
		Humidity  *int     `json:"humidity"`
		Pressure  *int     `json:"pressure"`
	} `json:"main"`

	Weather []struct {
		ID          int    `json:"id"`
		Main        string `json:"main"`
		Description string `json:"description"`
		Icon        string `json:"icon"`
	} `json:"weather"`

	Wind *struct {
		Speed *float64 `json:"speed"`
	} `json:"wind"`

	Sys *struct {
		Country string `json:"country"`
		Sunrise *int64 `json:"sunrise"`
		Sunset  *int64 `json:"sunset"`
	} `json:"sys"`
}

func buildReport(resp *currentResponse, city, units string) (*models.Report, error) {
	var missing []string
	if resp.Main == nil || resp.Main.Temp == nil {
		missing = append(missing, "main.temp")
	}
	if resp.Main == nil || resp.Main.FeelsLike == nil {
		missing = append(missing, "main.feels_like")
	}
	if resp.Main == nil || resp.Main.Humidity == nil {
		missing = append(missing, "main.humidity")
	}
	if resp.Main == nil || resp.Main.Pressure == nil {
		missing = append(missing, "main.pressure")
	}
	if resp.Wind == nil || resp.Wind.Speed == nil {
		missing = append(missing, "wind.speed")
	}
	if resp.Sys == nil || resp.Sys.Sunrise == nil {
		missing = append(missing, "sys.sunrise")
	}
	if resp.Sys == nil || resp.Sys.Sunset == nil {
		missing = append(missing, "sys.sunset")
	}
	if len(missing) > 0 {
		return nil, &DecodeError{Reason: "missing " + strings.Join(missing, ", ")}
	}

	name := strings.TrimSpace(resp.Name)
	if name == "" {
		name = city
	}

	// The condition array can legitimately be empty; the report still counts
	// as populated with the placeholder description.
	desc := "Unknown"
	var id int
	var icon string
	if len(resp.Weather) > 0 {
		if resp.Weather[0].Description != "" {
			desc = resp.Weather[0].Description
		}
		id = resp.Weather[0].ID
		icon = resp.Weather[0].Icon
	}

	loc := time.FixedZone("", resp.Timezone)

	return &models.Report{
		City:        name,
		Country:     resp.Sys.Country,
		Temp:        *resp.Main.Temp,
		FeelsLike:   *resp.Main.FeelsLike,
		Humidity:    *resp.Main.Humidity,
		WindSpeed:   *resp.Wind.Speed,
		Pressure:    *resp.Main.Pressure,
		Sunrise:     time.Unix(*resp.Sys.Sunrise, 0).In(loc),
		Sunset:      time.Unix(*resp.Sys.Sunset, 0).In(loc),
		ConditionID: id,
		Description: desc,
		Icon:        icon,
		Units:       units,
	}, nil
}
