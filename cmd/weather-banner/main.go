// weather-banner renders radial weather charts from NOAA GSOD data.
//
// Main CLI entrypoint using cobra command framework.
package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"sort"
	"strconv"
	"time"

	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"

	"github.com/kellegous/weather-banner/internal/calendar"
	"github.com/kellegous/weather-banner/internal/config"
	"github.com/kellegous/weather-banner/internal/datasource"
	"github.com/kellegous/weather-banner/internal/gsod"
	"github.com/kellegous/weather-banner/internal/render"
)

// Build-time variables (set via -ldflags).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// Global config and logger
var (
	cfg *config.Config
	log *slog.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "weather-banner",
	Short: "Radial weather charts from NOAA GSOD daily summaries",
	Long: `weather-banner renders one station-year of NOAA Global Summary of the
Day data as a banner of three radial charts: the daily temperature
envelope, the wind envelope, and precipitation. Yearly archives are
downloaded from NCEI on first use and cached on disk.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		configFile, _ := cmd.Flags().GetString("config")
		if configFile != "" {
			cfg, err = config.LoadFromFile(configFile)
		} else {
			cfg, err = config.Load()
		}
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		level := cfg.Logging.Level
		if override, _ := cmd.Flags().GetString("log-level"); override != "" {
			level = override
		}
		log = slog.New(tint.NewHandler(os.Stderr, &tint.Options{
			Level:      logLevel(level),
			TimeFormat: time.Kitchen,
		}))
		slog.SetDefault(log)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "config file path (default: ./config.yaml)")
	rootCmd.PersistentFlags().String("log-level", "", "log level override (debug, info, warn, error)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(stationsCmd)
	rootCmd.AddCommand(yearsCmd)
	rootCmd.AddCommand(fetchCmd)
}

func logLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func newStore() (*datasource.Store, error) {
	return datasource.NewStore(cfg.DataDir, cfg.NOAA.BaseURL, log)
}

// defaultYear is the most recent year with a complete archive.
func defaultYear() int {
	return time.Now().Year() - 1
}

// --- Version Command ---

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("weather-banner %s\n", version)
		fmt.Printf("  commit:  %s\n", commit)
		fmt.Printf("  built:   %s\n", date)
	},
}

// --- Render Command ---

var renderCmd = &cobra.Command{
	Use:   "render [station-id]",
	Short: "Render a station-year banner to PNG",
	Long: `Render the three radial charts for one station and year.

Examples:
  weather-banner render 72793024233
  weather-banner render 72793024233 --year 2019 --out seatac-2019.png
  weather-banner render 72793024233 --downsample 1 --smooth=false --debug`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		stationID := args[0]
		year, _ := cmd.Flags().GetInt("year")
		out, _ := cmd.Flags().GetString("out")
		if out == "" {
			out = fmt.Sprintf("%s-%d.png", stationID, year)
		}

		opts := render.Options{
			Width:      cfg.Render.Width,
			Height:     cfg.Render.Height,
			Downsample: cfg.Render.Downsample,
			Smooth:     cfg.Render.Smooth,
			Debug:      cfg.Render.Debug,
		}
		if cmd.Flags().Changed("width") {
			opts.Width, _ = cmd.Flags().GetInt("width")
		}
		if cmd.Flags().Changed("height") {
			opts.Height, _ = cmd.Flags().GetInt("height")
		}
		if cmd.Flags().Changed("downsample") {
			opts.Downsample, _ = cmd.Flags().GetInt("downsample")
		}
		if cmd.Flags().Changed("smooth") {
			opts.Smooth, _ = cmd.Flags().GetBool("smooth")
		}
		if cmd.Flags().Changed("debug") {
			opts.Debug, _ = cmd.Flags().GetBool("debug")
		}

		store, err := newStore()
		if err != nil {
			return err
		}
		archive, err := store.OpenYear(cmd.Context(), year)
		if err != nil {
			return err
		}
		defer archive.Close()

		station, err := gsod.FindStation(archive, stationID)
		if err != nil {
			return err
		}
		log.Info("rendering station",
			"station", station.ID,
			"name", station.Name,
			"year", year,
			"reports", len(station.Reports))

		f, err := os.Create(out)
		if err != nil {
			return err
		}
		if err := render.WriteBanner(f, station, calendar.YearOf(year), opts); err != nil {
			f.Close()
			os.Remove(out)
			return err
		}
		if err := f.Close(); err != nil {
			return err
		}

		fmt.Printf("🖼  wrote %s\n", out)
		return nil
	},
}

func init() {
	renderCmd.Flags().Int("year", defaultYear(), "year to render")
	renderCmd.Flags().String("out", "", "output path (default: <station>-<year>.png)")
	renderCmd.Flags().Int("width", 0, "banner width in pixels")
	renderCmd.Flags().Int("height", 0, "banner height in pixels")
	renderCmd.Flags().Int("downsample", 0, "days aggregated per drawn sample")
	renderCmd.Flags().Bool("smooth", true, "draw curved segments instead of chords")
	renderCmd.Flags().Bool("debug", false, "overlay annulus bounds and extremum markers")
}

// --- List Stations Command ---

// stationLine is one line of list-stations output.
type stationLine struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Lat        float64 `json:"lat"`
	Lng        float64 `json:"lng"`
	Reports    int     `json:"reports"`
	DistanceKm float64 `json:"distance_km,omitempty"`
}

var stationsCmd = &cobra.Command{
	Use:   "list-stations",
	Short: "List stations in a year's archive as JSON lines",
	Long: `List the stations present in a year's archive, one JSON object per
line, optionally filtered to those within a radius of a location.

Examples:
  weather-banner list-stations --year 2023
  weather-banner list-stations --near '47°26′56″N 122°18′34″W' --radius 50`,
	RunE: func(cmd *cobra.Command, args []string) error {
		year, _ := cmd.Flags().GetInt("year")
		near, _ := cmd.Flags().GetString("near")
		radius, _ := cmd.Flags().GetFloat64("radius")

		var origin *gsod.Location
		if near != "" {
			loc, err := gsod.ParseLocation(near)
			if err != nil {
				return err
			}
			origin = &loc
		}

		store, err := newStore()
		if err != nil {
			return err
		}
		archive, err := store.OpenYear(cmd.Context(), year)
		if err != nil {
			return err
		}
		defer archive.Close()

		enc := json.NewEncoder(os.Stdout)
		return gsod.EachStation(archive, func(s *gsod.Station) error {
			line := stationLine{
				ID:      s.ID,
				Name:    s.Name,
				Lat:     s.Location.Lat,
				Lng:     s.Location.Lng,
				Reports: len(s.Reports),
			}
			if origin != nil {
				d := origin.DistanceKm(s.Location)
				if d > radius {
					return nil
				}
				line.DistanceKm = d
			}
			return enc.Encode(line)
		})
	},
}

func init() {
	stationsCmd.Flags().Int("year", defaultYear(), "archive year to scan")
	stationsCmd.Flags().String("near", "", "origin in DMS form, e.g. 47°26′56″N 122°18′34″W")
	stationsCmd.Flags().Float64("radius", 100, "radius in km around --near")
}

// --- Years Command ---

var yearsCmd = &cobra.Command{
	Use:   "years",
	Short: "List the years NCEI has published",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := newStore()
		if err != nil {
			return err
		}
		years, err := store.AvailableYears(cmd.Context())
		if err != nil {
			return err
		}
		for _, y := range years {
			fmt.Println(y)
		}
		return nil
	},
}

// --- Fetch Command ---

var fetchCmd = &cobra.Command{
	Use:   "fetch [year...]",
	Short: "Download yearly archives into the cache",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		years := make([]int, 0, len(args))
		for _, arg := range args {
			y, err := strconv.Atoi(arg)
			if err != nil {
				return fmt.Errorf("invalid year %q", arg)
			}
			years = append(years, y)
		}
		sort.Ints(years)

		store, err := newStore()
		if err != nil {
			return err
		}
		if err := store.FetchYears(cmd.Context(), years); err != nil {
			return err
		}
		fmt.Printf("✅ cached %d archive(s) in %s\n", len(years), cfg.DataDir)
		return nil
	},
}
