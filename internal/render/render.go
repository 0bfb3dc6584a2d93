package render

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/IllyaMoore/Weather-CLI/internal/models"
)

var (
	green   = color.New(color.FgGreen)
	blue    = color.New(color.FgBlue)
	yellow  = color.New(color.FgYellow)
	cyan    = color.New(color.FgCyan)
	magenta = color.New(color.FgMagenta)
)

// Report writes the weather summary. Field order, labels and units never
// change; colors are cosmetic and follow color.NoColor.
func Report(w io.Writer, r *models.Report) {
	emoji := ConditionEmoji(r.ConditionID, r.Description)

	fmt.Fprintf(w, "%s Weather Report %s\n", green.Sprint("🌍"), green.Sprint("🌍"))
	if r.Country != "" {
		fmt.Fprintf(w, "%s %s, %s\n", emoji, blue.Sprint(r.City), blue.Sprint(r.Country))
	} else {
		fmt.Fprintf(w, "%s %s\n", emoji, blue.Sprint(r.City))
	}

	fmt.Fprintf(w, "\n%s Weather Conditions:\n", yellow.Sprint("📊"))
	fmt.Fprintf(w, "   %s: %s\n", green.Sprint("Status"), yellow.Sprint(r.Description))
	fmt.Fprintf(w, "   %s: %.1f°C / %.1f°F\n", green.Sprint("Temperature"), r.TempCelsius(), r.TempFahrenheit())
	fmt.Fprintf(w, "   %s: %.1f°C / %.1f°F\n", green.Sprint("Feels like"), r.FeelsLikeCelsius(), r.FeelsLikeFahrenheit())

	fmt.Fprintf(w, "\n%s Additional Details:\n", cyan.Sprint("🌬️"))
	fmt.Fprintf(w, "   %s: %d%%\n", green.Sprint("Humidity"), r.Humidity)
	fmt.Fprintf(w, "   %s: %.1f %s\n", green.Sprint("Wind speed"), r.WindSpeed, r.WindUnit())
	fmt.Fprintf(w, "   %s: %d hPa\n", green.Sprint("Pressure"), r.Pressure)

	fmt.Fprintf(w, "\n%s Celestial Events:\n", magenta.Sprint("🌅"))
	fmt.Fprintf(w, "   %s: %s\n", green.Sprint("Sunrise"), r.Sunrise.Format("15:04"))
	fmt.Fprintf(w, "   %s: %s\n", green.Sprint("Sunset"), r.Sunset.Format("15:04"))
}
