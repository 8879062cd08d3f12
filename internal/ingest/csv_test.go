package ingest

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rwh-sim/internal/rainfall"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestReadHistory(t *testing.T) {
	path := writeFile(t, "history.csv", `date,rain_mm
2019-01-01,0.0
2019-01-02,12.4
2019-01-03,n/a
not-a-date,3.0
2019-01-05,-1.5
`)

	records, err := ReadHistory(path)
	require.NoError(t, err)
	require.Len(t, records, 4)

	assert.Equal(t, time.Date(2019, 1, 1, 0, 0, 0, 0, time.UTC), records[0].Date)
	assert.Equal(t, 12.4, records[1].RainMM)
	// Malformed rain coerces to 0; negative depth is treated the same way.
	assert.Equal(t, 0.0, records[2].RainMM)
	assert.Equal(t, 0.0, records[3].RainMM)
	// The bad-date row is gone entirely.
	assert.Equal(t, time.Date(2019, 1, 5, 0, 0, 0, 0, time.UTC), records[3].Date)
}

func TestReadHistoryEmptyAndHeaderOnly(t *testing.T) {
	records, err := ReadHistory(writeFile(t, "empty.csv", ""))
	require.NoError(t, err)
	assert.Empty(t, records)

	records, err = ReadHistory(writeFile(t, "header.csv", "date,rain_mm\n"))
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestReadHistoryMissingFile(t *testing.T) {
	_, err := ReadHistory(filepath.Join(t.TempDir(), "nope.csv"))
	assert.Error(t, err)
}

func TestHistoryRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.csv")
	want := []rainfall.HistoricalRecord{
		{Date: time.Date(2020, 6, 1, 0, 0, 0, 0, time.UTC), RainMM: 0},
		{Date: time.Date(2020, 6, 2, 0, 0, 0, 0, time.UTC), RainMM: 7.5},
	}
	require.NoError(t, WriteHistory(path, want))

	got, err := ReadHistory(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestSeriesRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "series.csv")
	want := []rainfall.DataRow{
		{SyntheticYear: 1, DayOfYear: 1, Month: 1, DayInMonth: 1, RainMM: 3.1415, Wet: true},
		{SyntheticYear: 1, DayOfYear: 2, Month: 1, DayInMonth: 2, RainMM: 0, Wet: false},
		{SyntheticYear: 2, DayOfYear: 365, Month: 12, DayInMonth: 31, RainMM: 0.1, Wet: true},
	}
	require.NoError(t, WriteSeries(path, want))

	got, err := ReadSeries(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestReadSeriesRejectsMalformedRow(t *testing.T) {
	path := writeFile(t, "series.csv", `synthetic_year,day_of_year,month,day_in_month,rain_mm,wet
1,1,1,1,not-a-number,0
`)
	_, err := ReadSeries(path)
	assert.Error(t, err)
}

func TestParamsRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "params.json")
	want := rainfall.DefaultParameters()
	want[5].GammaK = 1.25
	want[5].GammaTheta = 4.5

	require.NoError(t, WriteParams(path, want))
	got, err := ReadParams(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestReadParamsRejectsIncompleteSet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "params.json")
	require.NoError(t, WriteParams(path, rainfall.DefaultParameters()[:11]))

	_, err := ReadParams(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "incomplete calibration")
}
