package commands

import (
	"rwh-sim/internal/config"
	"rwh-sim/internal/logging"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	// Version, Commit, and BuildDate are set at build time via ldflags.
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"

	verbose bool
	cfg     *config.AppConfig
)

var rootCmd = &cobra.Command{
	Use:   "rwh-sim",
	Short: "RWH-SIM is a rainwater-harvesting feasibility simulator",
	Long: `A stochastic daily-rainfall simulator for rainwater-harvesting feasibility studies:
it calibrates a semi-Markov rainfall model from historical records, synthesizes
long daily series, and evaluates tank reliability against a demand schedule.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.Init(verbose)

		// Load configuration
		var err error
		cfg, err = config.Load()
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to load configuration")
		}

		log.Info().
			Str("version", Version).
			Str("commit", Commit).
			Str("buildDate", BuildDate).
			Str("station", cfg.Station).
			Msg("RWH-SIM starting")
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
}
