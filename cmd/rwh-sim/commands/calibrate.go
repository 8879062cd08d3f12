package commands

import (
	"path/filepath"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"rwh-sim/internal/calibration"
	"rwh-sim/internal/ingest"
)

var (
	calibrateHistory string
	calibrateOut     string
)

var calibrateCmd = &cobra.Command{
	Use:   "calibrate",
	Short: "Fit monthly rainfall parameters from a historical record",
	Run: func(cmd *cobra.Command, args []string) {
		records, err := ingest.ReadHistory(calibrateHistory)
		if err != nil {
			log.Fatal().Err(err).Str("path", calibrateHistory).Msg("Failed to load history")
		}

		params := calibration.Run(records)

		out := calibrateOut
		if out == "" {
			out = filepath.Join(cfg.OutDir, "params.json")
		}
		if err := ingest.WriteParams(out, params); err != nil {
			log.Fatal().Err(err).Str("path", out).Msg("Failed to write parameters")
		}
	},
}

func init() {
	calibrateCmd.Flags().StringVar(&calibrateHistory, "history", "", "historical rainfall CSV (date,rain_mm)")
	_ = calibrateCmd.MarkFlagRequired("history")
	calibrateCmd.Flags().StringVar(&calibrateOut, "out", "", "output parameter JSON (default <out dir>/params.json)")
	rootCmd.AddCommand(calibrateCmd)
}
