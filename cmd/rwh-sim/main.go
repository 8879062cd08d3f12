package main

import (
	"fmt"
	"os"
	"rwh-sim/cmd/rwh-sim/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
