package commands

import (
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"rwh-sim/internal/ingest"
	"rwh-sim/internal/rainfall"
	"rwh-sim/internal/synth"
	"rwh-sim/internal/tank"
)

// runFlags are the knobs shared by the simulation commands. Unset flags fall
// back to the .env-backed configuration at resolve time, which is why the
// flag defaults here are sentinels rather than real values.
type runFlags struct {
	params string
	series string
	years  int
	seed   int64

	classrooms int
	roofArea   float64
	runoff     float64
	gutter     float64
	flush      float64

	students int
	demand   float64
	scenario string
}

func (f *runFlags) registerSource(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.params, "params", "", "calibrated parameter JSON (default: stationary profile)")
	cmd.Flags().StringVar(&f.series, "series", "", "pre-generated series CSV (skips generation)")
	cmd.Flags().IntVar(&f.years, "years", 0, "synthetic years to simulate (default from .env)")
	cmd.Flags().Int64Var(&f.seed, "seed", 0, "PRNG seed (default from .env)")
}

func (f *runFlags) registerCatchment(cmd *cobra.Command) {
	cmd.Flags().IntVar(&f.classrooms, "classrooms", 0, "number of classrooms (default from .env)")
	cmd.Flags().Float64Var(&f.roofArea, "roof-area", 0, "roof area per classroom in m2 (default from .env)")
	cmd.Flags().Float64Var(&f.runoff, "runoff", 0, "runoff coefficient (default from .env)")
	cmd.Flags().Float64Var(&f.gutter, "gutter", 0, "gutter efficiency (default from .env)")
	cmd.Flags().Float64Var(&f.flush, "first-flush", 0, "first flush loss in mm (default from .env)")
	cmd.Flags().IntVar(&f.students, "students", 0, "student count for demand scenarios (default from .env)")
	cmd.Flags().Float64Var(&f.demand, "demand", 0, "total daily demand in liters (overrides --scenario)")
	cmd.Flags().StringVar(&f.scenario, "scenario", "Baseline", "demand scenario: Low, Baseline, High")
}

// resolve overlays the configuration under any flag the user did not set.
func (f *runFlags) resolve(cmd *cobra.Command) {
	changed := cmd.Flags().Changed
	if !changed("years") {
		f.years = cfg.Years
	}
	if !changed("seed") {
		f.seed = cfg.Seed
	}
	if !changed("classrooms") {
		f.classrooms = cfg.Classrooms
	}
	if !changed("roof-area") {
		f.roofArea = cfg.RoofAreaPerClassroomM2
	}
	if !changed("runoff") {
		f.runoff = cfg.RunoffCoefficient
	}
	if !changed("gutter") {
		f.gutter = cfg.GutterEfficiency
	}
	if !changed("first-flush") {
		f.flush = cfg.FirstFlushMM
	}
	if !changed("students") {
		f.students = cfg.Students
	}
	if !changed("demand") && cfg.DailyDemandL > 0 {
		f.demand = cfg.DailyDemandL
	}
}

func (f *runFlags) inflowConfig() tank.InflowConfig {
	return tank.InflowConfig{
		Units: []tank.RoofUnit{
			{ClassroomCount: f.classrooms, RoofAreaPerClassroom: f.roofArea},
		},
		RunoffCoefficient: f.runoff,
		GutterEfficiency:  f.gutter,
		FirstFlushMM:      f.flush,
	}
}

// dailyDemand returns the explicit demand when given, otherwise the scenario
// level scaled by the student body.
func (f *runFlags) dailyDemand() float64 {
	if f.demand > 0 {
		return f.demand
	}
	for _, s := range tank.DefaultScenarios() {
		if strings.EqualFold(s.Name, f.scenario) {
			return s.TotalDemand(f.students)
		}
	}
	log.Warn().Str("scenario", f.scenario).Msg("Unknown demand scenario, using Baseline")
	return tank.DemandScenario{LitersPerStudent: tank.DemandBaselineLPD}.TotalDemand(f.students)
}

// loadParameters reads a calibrated set, or returns the stationary defaults
// when no file is given.
func loadParameters(path string) []rainfall.MonthlyParameters {
	if path == "" {
		log.Warn().Msg("No parameter file given, using the stationary default profile")
		return rainfall.DefaultParameters()
	}
	params, err := ingest.ReadParams(path)
	if err != nil {
		log.Fatal().Err(err).Str("path", path).Msg("Failed to load parameters")
	}
	return params
}

// resolveSeries yields the daily series for a simulation: a pre-generated
// file when given, a fresh generation run otherwise.
func (f *runFlags) resolveSeries() []rainfall.DataRow {
	if f.series != "" {
		rows, err := ingest.ReadSeries(f.series)
		if err != nil {
			log.Fatal().Err(err).Str("path", f.series).Msg("Failed to load series")
		}
		return rows
	}

	gen, err := synth.NewGenerator(loadParameters(f.params), f.seed)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize generator")
	}
	rows := gen.Run(f.years)
	log.Info().Int("years", f.years).Int64("seed", f.seed).Int("rows", len(rows)).Msg("Generated synthetic series")
	return rows
}
