// Package ingest is the file boundary of the simulator: historical rainfall
// CSVs coming in, synthetic series CSVs going out and back in, and the
// calibrated parameter JSON exchanged between CLI runs.
package ingest

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"rwh-sim/internal/rainfall"
)

var historyDateLayouts = []string{"2006-01-02", time.RFC3339}

// ReadHistory loads an ordered historical record from a date,rain_mm CSV.
// The header row is skipped. A rain field that does not parse coerces to 0;
// a date that does not parse drops the row, since a dateless day cannot be
// attributed to a month.
func ReadHistory(path string) ([]rainfall.HistoricalRecord, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open history: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read history: %w", err)
	}
	if len(rows) > 0 {
		rows = rows[1:] // header
	}

	records := make([]rainfall.HistoricalRecord, 0, len(rows))
	skipped := 0
	for i, row := range rows {
		if len(row) < 2 {
			skipped++
			log.Debug().Int("line", i+2).Msg("Skipping short history row")
			continue
		}
		date, ok := parseHistoryDate(row[0])
		if !ok {
			skipped++
			log.Debug().Int("line", i+2).Str("date", row[0]).Msg("Skipping history row with unparseable date")
			continue
		}
		rain, err := strconv.ParseFloat(strings.TrimSpace(row[1]), 64)
		if err != nil || rain < 0 {
			rain = 0
		}
		records = append(records, rainfall.HistoricalRecord{Date: date, RainMM: rain})
	}

	log.Info().Str("path", path).Int("records", len(records)).Int("skipped", skipped).Msg("Loaded historical record")
	return records, nil
}

func parseHistoryDate(field string) (time.Time, bool) {
	field = strings.TrimSpace(field)
	for _, layout := range historyDateLayouts {
		if d, err := time.Parse(layout, field); err == nil {
			return d, true
		}
	}
	return time.Time{}, false
}

// WriteHistory persists a historical record as a date,rain_mm CSV.
func WriteHistory(path string, records []rainfall.HistoricalRecord) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create history: %w", err)
	}
	defer file.Close()

	w := csv.NewWriter(file)
	if err := w.Write([]string{"date", "rain_mm"}); err != nil {
		return fmt.Errorf("failed to write history header: %w", err)
	}
	for _, r := range records {
		row := []string{
			r.Date.Format("2006-01-02"),
			strconv.FormatFloat(r.RainMM, 'f', 1, 64),
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("failed to write history row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to flush history: %w", err)
	}

	log.Info().Str("path", path).Int("records", len(records)).Msg("Wrote historical record")
	return nil
}

// WriteSeries persists a synthetic series with the column set of the
// original export: synthetic_year,day_of_year,month,day_in_month,rain_mm,wet.
func WriteSeries(path string, rows []rainfall.DataRow) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create series: %w", err)
	}
	defer file.Close()

	w := csv.NewWriter(file)
	if err := w.Write([]string{"synthetic_year", "day_of_year", "month", "day_in_month", "rain_mm", "wet"}); err != nil {
		return fmt.Errorf("failed to write series header: %w", err)
	}
	for _, r := range rows {
		wet := "0"
		if r.Wet {
			wet = "1"
		}
		row := []string{
			strconv.Itoa(r.SyntheticYear),
			strconv.Itoa(r.DayOfYear),
			strconv.Itoa(r.Month),
			strconv.Itoa(r.DayInMonth),
			strconv.FormatFloat(r.RainMM, 'f', 4, 64),
			wet,
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("failed to write series row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to flush series: %w", err)
	}

	log.Info().Str("path", path).Int("rows", len(rows)).Msg("Wrote synthetic series")
	return nil
}

// ReadSeries loads a synthetic series written by WriteSeries. Unlike the
// history reader it is strict: a malformed series file is an error, not a
// degraded input.
func ReadSeries(path string) ([]rainfall.DataRow, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open series: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	raw, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read series: %w", err)
	}
	if len(raw) > 0 {
		raw = raw[1:]
	}

	rows := make([]rainfall.DataRow, 0, len(raw))
	for i, row := range raw {
		if len(row) != 6 {
			return nil, fmt.Errorf("series line %d: got %d fields, want 6", i+2, len(row))
		}
		year, err := strconv.Atoi(row[0])
		if err != nil {
			return nil, fmt.Errorf("series line %d: %w", i+2, err)
		}
		doy, err := strconv.Atoi(row[1])
		if err != nil {
			return nil, fmt.Errorf("series line %d: %w", i+2, err)
		}
		month, err := strconv.Atoi(row[2])
		if err != nil {
			return nil, fmt.Errorf("series line %d: %w", i+2, err)
		}
		dim, err := strconv.Atoi(row[3])
		if err != nil {
			return nil, fmt.Errorf("series line %d: %w", i+2, err)
		}
		rain, err := strconv.ParseFloat(row[4], 64)
		if err != nil {
			return nil, fmt.Errorf("series line %d: %w", i+2, err)
		}
		wet, err := strconv.ParseBool(row[5])
		if err != nil {
			return nil, fmt.Errorf("series line %d: %w", i+2, err)
		}
		rows = append(rows, rainfall.DataRow{
			SyntheticYear: year,
			DayOfYear:     doy,
			Month:         month,
			DayInMonth:    dim,
			RainMM:        rain,
			Wet:           wet,
		})
	}

	log.Info().Str("path", path).Int("rows", len(rows)).Msg("Loaded synthetic series")
	return rows, nil
}

// WriteParams persists a calibrated parameter set as indented JSON.
func WriteParams(path string, params []rainfall.MonthlyParameters) error {
	data, err := json.MarshalIndent(params, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal parameters: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write parameters: %w", err)
	}
	log.Info().Str("path", path).Msg("Wrote calibrated parameters")
	return nil
}

// ReadParams loads a parameter set and enforces the generator's 12-month
// precondition at the boundary, so an incomplete file fails here with a
// clear error instead of inside a run.
func ReadParams(path string) ([]rainfall.MonthlyParameters, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read parameters: %w", err)
	}
	var params []rainfall.MonthlyParameters
	if err := json.Unmarshal(data, &params); err != nil {
		return nil, fmt.Errorf("failed to parse parameters: %w", err)
	}
	if err := rainfall.EnsureComplete(params); err != nil {
		return nil, err
	}
	return params, nil
}
