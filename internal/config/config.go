package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/streampulse/sportscast/internal/platform/logging"
)

// Config stores runtime configuration for one discovery pass.
type Config struct {
	AppEnv                  string
	ServiceName             string
	ServiceVersion          string
	StreamBaseURL           string
	ProbeTimeout            time.Duration
	ProbeCircuitEnabled     bool
	ProbeCircuitFailures    int
	ProbeCircuitOpenTimeout time.Duration
	ProbeCircuitHalfOpenMax int
	ScrapeTimeout           time.Duration
	MaxRowWorkers           int
	RunTimeout              time.Duration
	DisplayZone             *time.Location
	OutputFile              string
	SnapshotFile            string
	Leagues                 []LeagueConfig
	LogLevel                logging.Level
}

func Load() (Config, error) {
	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	probeTimeout, err := time.ParseDuration(getEnv("PROBE_TIMEOUT", "10s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PROBE_TIMEOUT: %w", err)
	}
	if probeTimeout <= 0 {
		return Config{}, fmt.Errorf("PROBE_TIMEOUT must be > 0")
	}

	probeCircuitEnabled, err := strconv.ParseBool(getEnv("PROBE_CIRCUIT_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PROBE_CIRCUIT_ENABLED: %w", err)
	}
	probeCircuitFailures, err := getEnvAsInt("PROBE_CIRCUIT_FAILURE_COUNT", 5)
	if err != nil {
		return Config{}, fmt.Errorf("parse PROBE_CIRCUIT_FAILURE_COUNT: %w", err)
	}
	if probeCircuitFailures < 1 {
		return Config{}, fmt.Errorf("PROBE_CIRCUIT_FAILURE_COUNT must be >= 1")
	}
	probeCircuitOpenTimeout, err := time.ParseDuration(getEnv("PROBE_CIRCUIT_OPEN_TIMEOUT", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PROBE_CIRCUIT_OPEN_TIMEOUT: %w", err)
	}
	if probeCircuitOpenTimeout <= 0 {
		return Config{}, fmt.Errorf("PROBE_CIRCUIT_OPEN_TIMEOUT must be > 0")
	}
	probeCircuitHalfOpenMax, err := getEnvAsInt("PROBE_CIRCUIT_HALF_OPEN_MAX_REQ", 2)
	if err != nil {
		return Config{}, fmt.Errorf("parse PROBE_CIRCUIT_HALF_OPEN_MAX_REQ: %w", err)
	}
	if probeCircuitHalfOpenMax < 1 {
		return Config{}, fmt.Errorf("PROBE_CIRCUIT_HALF_OPEN_MAX_REQ must be >= 1")
	}

	scrapeTimeout, err := time.ParseDuration(getEnv("SCRAPE_TIMEOUT", "20s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse SCRAPE_TIMEOUT: %w", err)
	}
	if scrapeTimeout <= 0 {
		return Config{}, fmt.Errorf("SCRAPE_TIMEOUT must be > 0")
	}

	maxRowWorkers, err := getEnvAsInt("MAX_ROW_WORKERS", 8)
	if err != nil {
		return Config{}, fmt.Errorf("parse MAX_ROW_WORKERS: %w", err)
	}
	if maxRowWorkers < 1 {
		return Config{}, fmt.Errorf("MAX_ROW_WORKERS must be >= 1")
	}

	runTimeout, err := time.ParseDuration(getEnv("RUN_TIMEOUT", "5m"))
	if err != nil {
		return Config{}, fmt.Errorf("parse RUN_TIMEOUT: %w", err)
	}
	if runTimeout <= 0 {
		return Config{}, fmt.Errorf("RUN_TIMEOUT must be > 0")
	}

	displayZoneName := strings.TrimSpace(getEnv("DISPLAY_TZ", "America/Los_Angeles"))
	displayZone, err := time.LoadLocation(displayZoneName)
	if err != nil {
		return Config{}, fmt.Errorf("load DISPLAY_TZ %q: %w", displayZoneName, err)
	}

	leagues, err := loadLeagues(splitCSV(getEnv("LEAGUES", "")))
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		AppEnv:                  appEnv,
		ServiceName:             getEnv("APP_SERVICE_NAME", "sportscast"),
		ServiceVersion:          getEnv("APP_SERVICE_VERSION", "dev"),
		StreamBaseURL:           strings.TrimSpace(getEnv("STREAM_BASE_URL", "https://gg.poocloud.in")),
		ProbeTimeout:            probeTimeout,
		ProbeCircuitEnabled:     probeCircuitEnabled,
		ProbeCircuitFailures:    probeCircuitFailures,
		ProbeCircuitOpenTimeout: probeCircuitOpenTimeout,
		ProbeCircuitHalfOpenMax: probeCircuitHalfOpenMax,
		ScrapeTimeout:           scrapeTimeout,
		MaxRowWorkers:           maxRowWorkers,
		RunTimeout:              runTimeout,
		DisplayZone:             displayZone,
		OutputFile:              strings.TrimSpace(getEnv("OUTPUT_FILE", "SportsWebcastPT.m3u8")),
		SnapshotFile:            strings.TrimSpace(getEnv("SNAPSHOT_FILE", "")),
		Leagues:                 leagues,
		LogLevel:                parseLogLevel(getEnv("APP_LOG_LEVEL", "info")),
	}
	if cfg.StreamBaseURL == "" {
		return Config{}, fmt.Errorf("STREAM_BASE_URL cannot be empty")
	}
	if cfg.OutputFile == "" {
		return Config{}, fmt.Errorf("OUTPUT_FILE cannot be empty")
	}

	return cfg, nil
}

func parseLogLevel(v string) logging.Level {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "debug":
		return logging.LevelDebug
	case "warn", "warning":
		return logging.LevelWarn
	case "error":
		return logging.LevelError
	default:
		return logging.LevelInfo
	}
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}

func getEnvAsInt(key string, fallback int) (int, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	out, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}

	return out, nil
}

func splitCSV(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		item := strings.TrimSpace(part)
		if item == "" {
			continue
		}
		out = append(out, item)
	}

	return out
}

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

func parseAppEnv(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case EnvDev, EnvStage, EnvProd:
		return value, nil
	default:
		return "", fmt.Errorf("invalid APP_ENV %q: valid values are %s, %s, %s", v, EnvDev, EnvStage, EnvProd)
	}
}
