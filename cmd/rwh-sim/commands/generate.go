package commands

import (
	"path/filepath"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"rwh-sim/internal/ingest"
)

var (
	generateFlags runFlags
	generateOut   string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Synthesize a daily rainfall series from calibrated parameters",
	Run: func(cmd *cobra.Command, args []string) {
		generateFlags.resolve(cmd)

		rows := generateFlags.resolveSeries()

		out := generateOut
		if out == "" {
			out = filepath.Join(cfg.OutDir, "series.csv")
		}
		if err := ingest.WriteSeries(out, rows); err != nil {
			log.Fatal().Err(err).Str("path", out).Msg("Failed to write series")
		}
	},
}

func init() {
	generateFlags.registerSource(generateCmd)
	generateCmd.Flags().StringVar(&generateOut, "out", "", "output series CSV (default <out dir>/series.csv)")
	rootCmd.AddCommand(generateCmd)
}
