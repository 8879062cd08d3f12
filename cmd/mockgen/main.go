package main

import (
	"flag"
	"fmt"
	"os"
	"rwh-sim/cmd/mockgen/engine"
)

func main() {
	scenario := flag.String("scenario", "monsoon", "Scenario to generate: monsoon, arid, uniform")
	years := flag.Int("years", 10, "Number of historical years to fabricate")
	seed := flag.Int64("seed", 1, "Seed for the fabrication")
	out := flag.String("out", "./history.csv", "Output CSV path")
	flag.Parse()

	cfg := engine.GeneratorConfig{
		Scenario: *scenario,
		Years:    *years,
		Seed:     *seed,
	}

	fmt.Printf("Generating scenario '%s' (Years: %d, Seed: %d) to %s...\n", cfg.Scenario, cfg.Years, cfg.Seed, *out)

	records := engine.Generate(cfg)

	if err := engine.Save(*out, records); err != nil {
		fmt.Printf("Failed to save mock history: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Done.")
}
