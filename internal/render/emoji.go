package render

import "strings"

const fallbackEmoji = "🌈"

// ConditionEmoji picks the glyph for a provider condition. The primary
// lookup follows the documented condition code groups
// (https://openweathermap.org/weather-conditions); codes outside the list
// fall back to keyword matching on the description, then to the rainbow.
func ConditionEmoji(id int, description string) string {
	switch {
	case id >= 200 && id < 300: // thunderstorm
		return "⛈️"
	case id >= 300 && id < 400: // drizzle
		return "🌧️"
	case id >= 500 && id < 600: // rain
		return "🌧️"
	case id >= 600 && id < 700: // snow
		return "❄️"
	case id >= 700 && id < 800: // atmosphere: mist, fog, haze, dust...
		return "🌫️"
	case id == 800:
		return "☀️"
	case id > 800 && id < 805: // clouds
		return "☁️"
	}
	return keywordEmoji(description)
}

// keywordEmoji matches on description substrings. Match order is part of the
// contract: "cloud" and "rain" win over "thunderstorm" in composite
// descriptions.
func keywordEmoji(description string) string {
	d := strings.ToLower(description)
	switch {
	case strings.Contains(d, "clear"):
		return "☀️"
	case strings.Contains(d, "cloud"):
		return "☁️"
	case strings.Contains(d, "rain"):
		return "🌧️"
	case strings.Contains(d, "thunderstorm"):
		return "⛈️"
	case strings.Contains(d, "snow"):
		return "❄️"
	case strings.Contains(d, "fog"):
		return "🌫️"
	}
	return fallbackEmoji
}
