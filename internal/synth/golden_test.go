package synth

import (
	"bytes"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"rwh-sim/internal/rainfall"
)

var update = flag.Bool("update", false, "update golden files")

// One default-profile year under seed 42, pinned byte for byte. Any change
// to the stream, the samplers' draw order, or the calendar shows up here.
func TestGeneratorGolden(t *testing.T) {
	g, err := NewGenerator(rainfall.DefaultParameters(), 42)
	if err != nil {
		t.Fatalf("NewGenerator() error: %v", err)
	}
	rows := g.Run(1)

	var buf bytes.Buffer
	buf.WriteString("synthetic_year,day_of_year,month,day_in_month,rain_mm,wet\n")
	for _, r := range rows {
		wet := 0
		if r.Wet {
			wet = 1
		}
		fmt.Fprintf(&buf, "%d,%d,%d,%d,%.4f,%d\n",
			r.SyntheticYear, r.DayOfYear, r.Month, r.DayInMonth, r.RainMM, wet)
	}
	actual := buf.Bytes()

	goldenPath := filepath.Join("testdata", "default_profile_seed42.golden.csv")

	if *update {
		if err := os.MkdirAll(filepath.Dir(goldenPath), 0755); err != nil {
			t.Fatalf("Failed to create testdata dir: %v", err)
		}
		if err := os.WriteFile(goldenPath, actual, 0644); err != nil {
			t.Fatalf("Failed to write golden file: %v", err)
		}
		t.Logf("Golden file updated at %s", goldenPath)
		return
	}

	expected, err := os.ReadFile(goldenPath)
	if err != nil {
		if os.IsNotExist(err) {
			t.Fatalf("Golden file not found at %s. Run tests with -update flag to generate it.", goldenPath)
		}
		t.Fatalf("Failed to read golden file: %v", err)
	}

	if !bytes.Equal(expected, actual) {
		tmpPath := goldenPath + ".actual"
		_ = os.WriteFile(tmpPath, actual, 0644)
		t.Errorf("Generated series diverged from the golden file. Actual output written to %s", tmpPath)
	}
}
