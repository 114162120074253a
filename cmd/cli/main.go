package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"

	"vessel-propsim/internal/analysis"
	"vessel-propsim/internal/config"
	"vessel-propsim/internal/model"
	"vessel-propsim/internal/report"
	"vessel-propsim/internal/simulator"
	"vessel-propsim/internal/store"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "simulate":
		cmdSimulate(os.Args[2:])
	case "compare":
		cmdCompare(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("usage:")
	fmt.Println("  cli simulate --config scenario.yaml --id 1")
	fmt.Println("  cli compare --config scenario.yaml [--out results/comparison.csv] [--save] [--sensitivity]")
	fmt.Println("")
	fmt.Println("notes:")
	fmt.Println("  - simulate runs one propulsion configuration against the scenario profile")
	fmt.Println("  - compare runs every configuration and reports fuel/CO2/cost vs the baseline")
}

func newLogger(verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		Level(level).With().Timestamp().Logger()
}

func cmdSimulate(args []string) {
	fs := flag.NewFlagSet("simulate", flag.ExitOnError)
	cfgPath := fs.String("config", "", "Path to YAML scenario")
	configID := fs.Int64("id", 0, "Configuration id to simulate (0 = first)")
	verbose := fs.Bool("v", false, "Debug logging")
	_ = fs.Parse(args)

	log := newLogger(*verbose)
	scenario := loadScenario(log, *cfgPath)

	st := openStore(log, scenario)
	defer st.Close()

	cfgs, profile := loadInputs(log, scenario, st)

	var cfg model.Config
	if *configID == 0 {
		cfg = cfgs[0]
	} else {
		found := false
		for _, c := range cfgs {
			if c.ID == *configID {
				cfg = c
				found = true
				break
			}
		}
		if !found {
			log.Fatal().Int64("id", *configID).Msg("configuration not found")
		}
	}

	sim := simulator.New()
	res, err := sim.Simulate(cfg, profile)
	if err != nil {
		log.Fatal().Err(err).Msg("simulation failed")
	}

	wr := report.New(os.Stdout)
	wr.PhaseBreakdown(res)
	fmt.Printf("\nAnnual fuel:  %10.0f tonnes\n", res.TotalFuelTonnes())
	fmt.Printf("Annual CO2:   %10.0f tonnes\n", res.TotalCO2Tonnes())
	fmt.Printf("Fuel cost:    $%10.0f\n", res.FuelCost)
	fmt.Printf("Capital cost: $%10.0f\n", res.AnnualCapitalCost)
	fmt.Printf("Total cost:   $%10.0f\n", res.TotalAnnualCost)
}

func cmdCompare(args []string) {
	fs := flag.NewFlagSet("compare", flag.ExitOnError)
	cfgPath := fs.String("config", "", "Path to YAML scenario")
	outPath := fs.String("out", "", "Output CSV path (overrides scenario output_csv)")
	save := fs.Bool("save", false, "Persist result rows to the database")
	sensitivity := fs.Bool("sensitivity", false, "Sweep fuel-price multipliers per configuration")
	verbose := fs.Bool("v", false, "Debug logging")
	_ = fs.Parse(args)

	log := newLogger(*verbose)
	scenario := loadScenario(log, *cfgPath)

	st := openStore(log, scenario)
	defer st.Close()

	cfgs, profile := loadInputs(log, scenario, st)

	sim := simulator.New()
	results, err := sim.Compare(cfgs, profile)
	if err != nil {
		log.Fatal().Err(err).Msg("comparison failed")
	}
	if err := simulator.RelativePerformance(results, scenario.BaselineIndex); err != nil {
		log.Fatal().Err(err).Msg("relative performance failed")
	}

	wr := report.New(os.Stdout)
	wr.SummaryTable(results)
	if err := wr.ValueProposition(results, scenario.BaselineIndex, scenario.LifecycleYears); err != nil {
		log.Fatal().Err(err).Msg("report failed")
	}
	wr.Rankings(results)

	if *sensitivity {
		multipliers := []float64{0.5, 0.75, 1.0, 1.25, 1.5}
		for _, cfg := range cfgs {
			sens, err := analysis.FuelPriceSensitivity(sim, cfg, profile, multipliers)
			if err != nil {
				log.Fatal().Err(err).Str("configuration", cfg.Name).Msg("sensitivity sweep failed")
			}
			fmt.Println()
			wr.SensitivityTable(sens)
		}
	}

	if *save {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		for _, r := range results {
			if _, err := st.SaveResult(ctx, r); err != nil {
				log.Fatal().Err(err).Str("configuration", r.Configuration).Msg("save result")
			}
		}
		log.Info().Int("results", len(results)).Msg("results saved")
	}

	csvPath := scenario.OutputCSV
	if *outPath != "" {
		csvPath = *outPath
	}
	if csvPath != "" {
		if err := os.MkdirAll(filepath.Dir(csvPath), 0o755); err != nil {
			log.Fatal().Err(err).Msg("create output directory")
		}
		if err := simulator.WriteResultsCSV(csvPath, results); err != nil {
			log.Fatal().Err(err).Msg("write CSV")
		}
		fmt.Printf("Wrote %d rows to %s\n", len(results), csvPath)
	}
}

func loadScenario(log zerolog.Logger, path string) *config.Config {
	if path == "" {
		log.Fatal().Msg("--config is required")
	}
	scenario, err := config.Load(path)
	if err != nil {
		log.Fatal().Err(err).Str("path", path).Msg("load scenario")
	}
	return scenario
}

func openStore(log zerolog.Logger, scenario *config.Config) *store.Store {
	st, err := store.Open(scenario.DatabasePath, log)
	if err != nil {
		log.Fatal().Err(err).Str("path", scenario.DatabasePath).Msg("open store")
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := st.Init(ctx); err != nil {
		log.Fatal().Err(err).Msg("init schema")
	}
	if err := st.Seed(ctx); err != nil {
		log.Fatal().Err(err).Msg("seed reference data")
	}
	return st
}

// loadInputs resolves configurations and the profile: inline scenario
// entries win, the database fills the rest.
func loadInputs(log zerolog.Logger, scenario *config.Config, st *store.Store) ([]model.Config, model.Profile) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var cfgs []model.Config
	if len(scenario.Configurations) > 0 {
		for _, e := range scenario.Configurations {
			cfgs = append(cfgs, e.ToModel())
		}
	} else {
		var err error
		cfgs, err = st.Configurations(ctx)
		if err != nil {
			log.Fatal().Err(err).Msg("load configurations")
		}
	}
	if len(cfgs) == 0 {
		log.Fatal().Msg("no configurations available")
	}

	var profile model.Profile
	if scenario.Profile != nil {
		profile = scenario.Profile.ToModel()
	} else {
		var err error
		profile, err = st.Profile(ctx, scenario.ProfileID)
		if err != nil {
			log.Fatal().Err(err).Int64("id", scenario.ProfileID).Msg("load profile")
		}
	}
	if profile.ExceedsCalendarYear() {
		log.Warn().Float64("hours", profile.TotalHours()).Msg("profile exceeds calendar-year hours")
	}

	return cfgs, profile
}
