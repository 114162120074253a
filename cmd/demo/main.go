package main

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"

	"vessel-propsim/internal/report"
	"vessel-propsim/internal/simulator"
	"vessel-propsim/internal/store"
)

// Runs the three reference propulsion configurations against the
// short-sea tanker profile and prints the comparison. No database or
// scenario file needed.
func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		With().Timestamp().Logger()

	cfgs := store.ReferenceConfigs()
	profile := store.ReferenceProfiles()[0]

	sim := simulator.New()
	results, err := sim.Compare(cfgs, profile)
	if err != nil {
		log.Fatal().Err(err).Msg("comparison failed")
	}
	if err := simulator.RelativePerformance(results, 0); err != nil {
		log.Fatal().Err(err).Msg("relative performance failed")
	}

	fmt.Printf("Profile: %s (%.0f operating hours)\n\n", profile.Name, profile.TotalHours())

	wr := report.New(os.Stdout)
	wr.SummaryTable(results)
	if err := wr.ValueProposition(results, 0, simulator.DefaultLifespanYears); err != nil {
		log.Fatal().Err(err).Msg("report failed")
	}
	for _, r := range results {
		fmt.Println()
		wr.PhaseBreakdown(r)
	}
}
