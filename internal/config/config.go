package config

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// AppConfig holds the complete application configuration: the default run
// profile (station, duration, seed), the catchment geometry, the demand
// model, and the scan bounds. Every field can be overridden per run by CLI
// flags; the .env/environment values only supply defaults.
type AppConfig struct {
	Station string
	Years   int
	Seed    int64

	Classrooms             int
	RoofAreaPerClassroomM2 float64
	RunoffCoefficient      float64
	GutterEfficiency       float64
	FirstFlushMM           float64

	Students     int
	DailyDemandL float64

	ScanMinL  float64
	ScanMaxL  float64
	ScanSteps int

	DataPath string
	LogDir   string
	OutDir   string
}

// Load loads the configuration from .env files and environment variables.
func Load() (*AppConfig, error) {
	// 1. Try to load from the executable's directory (highest priority for
	// installed binaries).
	exePath, err := os.Executable()
	exeDir := ""
	if err == nil {
		exeDir = filepath.Dir(exePath)
		envPath := filepath.Join(exeDir, ".env")
		if err := godotenv.Load(envPath); err == nil {
			log.Debug().Str("path", envPath).Msg("Loaded configuration from binary directory")
		}
	}

	// 2. Fallback to current working directory (useful for development/go run)
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found in working directory, relying on environment variables or binary-relative .env")
	}

	// 3. Resolve data paths
	dataPath := os.Getenv("DATA_PATH")
	if dataPath == "" {
		if exeDir != "" {
			dataPath = exeDir
		} else {
			dataPath = "."
		}
	}

	logDir := filepath.Join(dataPath, "logs")
	outDir := filepath.Join(dataPath, "out")

	if err := os.MkdirAll(logDir, 0755); err != nil {
		log.Warn().Err(err).Str("path", logDir).Msg("Failed to create log directory")
	}
	if err := os.MkdirAll(outDir, 0755); err != nil {
		log.Warn().Err(err).Str("path", outDir).Msg("Failed to create output directory")
	}

	cfg := &AppConfig{
		Station: getEnv("STATION_NAME", "Iloilo Roxas"),
		Years:   getEnvInt("SIMULATION_YEARS", 10),
		Seed:    int64(getEnvInt("SEED", 2025)),

		Classrooms:             getEnvInt("CLASSROOMS", 4),
		RoofAreaPerClassroomM2: getEnvFloat("ROOF_AREA_PER_CLASSROOM_M2", 63),
		RunoffCoefficient:      getEnvFloat("RUNOFF_COEFFICIENT", 0.90),
		GutterEfficiency:       getEnvFloat("GUTTER_EFFICIENCY", 0.95),
		FirstFlushMM:           getEnvFloat("FIRST_FLUSH_MM", 2.0),

		Students:     getEnvInt("STUDENTS", 40),
		DailyDemandL: getEnvFloat("DAILY_DEMAND_L", 0),

		ScanMinL:  getEnvFloat("SCAN_MIN_L", 500),
		ScanMaxL:  getEnvFloat("SCAN_MAX_L", 20000),
		ScanSteps: getEnvInt("SCAN_STEPS", 39),

		DataPath: dataPath,
		LogDir:   logDir,
		OutDir:   outDir,
	}

	return cfg, nil
}

// CatchmentAreaM2 is the total roof surface of the configured school.
func (c *AppConfig) CatchmentAreaM2() float64 {
	return float64(c.Classrooms) * c.RoofAreaPerClassroomM2
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if value, ok := os.LookupEnv(key); ok {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return fallback
}
