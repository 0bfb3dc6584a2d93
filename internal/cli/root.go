package cli

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/IllyaMoore/Weather-CLI/internal/config"
	"github.com/IllyaMoore/Weather-CLI/internal/models"
	"github.com/IllyaMoore/Weather-CLI/internal/openweather"
	"github.com/IllyaMoore/Weather-CLI/internal/render"
)

// Provider fetches one current-weather report. openweather.Client is the
// production implementation; tests substitute counting fakes.
type Provider interface {
	Current(ctx context.Context, city string) (*models.Report, error)
}

// App owns the pipeline wiring: the output stream and how the provider is
// constructed once the credential is known.
type App struct {
	Out         io.Writer
	NewProvider func(apiKey, units string) Provider
}

func NewApp() *App {
	return &App{
		Out: os.Stdout,
		NewProvider: func(apiKey, units string) Provider {
			return openweather.NewClient(apiKey, units)
		},
	}
}

// NewRootCommand builds `weather [city]`. The run resolves the city and
// credential, fetches once, and renders the report.
func (a *App) NewRootCommand(version string) *cobra.Command {
	var (
		units   string
		verbose bool
		noColor bool
	)

	cmd := &cobra.Command{
		Use:   "weather [city]",
		Short: "Current weather for a city, in your terminal",
		Long: `Fetch current conditions for a city from OpenWeatherMap and print a
colorized, emoji-annotated summary.

The OPENWEATHERMAP_API_KEY environment variable (or a .env file in the
working directory) must hold a valid API key. Without a city argument the
report defaults to ` + config.DefaultCity + `.`,
		Example: `  weather
  weather London
  weather "New York" --units imperial`,
		Args:          cobra.MaximumNArgs(1),
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !verbose {
				log.SetOutput(io.Discard)
			}
			if noColor {
				color.NoColor = true
			}
			if units != models.UnitsMetric && units != models.UnitsImperial {
				return fmt.Errorf("invalid --units %q: want %q or %q", units, models.UnitsMetric, models.UnitsImperial)
			}

			city := config.DefaultCity
			if len(args) == 1 {
				city = args[0]
			}

			cfg, err := config.Load()
			if err != nil {
				return err
			}

			report, err := a.NewProvider(cfg.APIKey, units).Current(cmd.Context(), city)
			if err != nil {
				return err
			}

			render.Report(a.Out, report)
			return nil
		},
	}

	cmd.Flags().StringVar(&units, "units", models.UnitsMetric, "unit system for the provider request (metric or imperial)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log request and response diagnostics to stderr")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "disable colored output")

	return cmd
}
