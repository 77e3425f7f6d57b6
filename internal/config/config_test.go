package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.AppEnv != EnvDev {
		t.Fatalf("expected dev env, got=%s", cfg.AppEnv)
	}
	if cfg.StreamBaseURL != "https://gg.poocloud.in" {
		t.Fatalf("unexpected stream base url: %s", cfg.StreamBaseURL)
	}
	if cfg.ProbeTimeout != 10*time.Second {
		t.Fatalf("unexpected probe timeout: %v", cfg.ProbeTimeout)
	}
	if cfg.ScrapeTimeout != 20*time.Second {
		t.Fatalf("unexpected scrape timeout: %v", cfg.ScrapeTimeout)
	}
	if cfg.MaxRowWorkers != 8 {
		t.Fatalf("unexpected worker count: %d", cfg.MaxRowWorkers)
	}
	if cfg.OutputFile != "SportsWebcastPT.m3u8" {
		t.Fatalf("unexpected output file: %s", cfg.OutputFile)
	}
	if cfg.DisplayZone.String() != "America/Los_Angeles" {
		t.Fatalf("unexpected display zone: %v", cfg.DisplayZone)
	}
	if len(cfg.Leagues) != 4 {
		t.Fatalf("expected four leagues, got=%d", len(cfg.Leagues))
	}
}

func TestLoad_LeagueFilter(t *testing.T) {
	t.Setenv("LEAGUES", "nfl, NBA")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cfg.Leagues) != 2 {
		t.Fatalf("expected two leagues, got=%d", len(cfg.Leagues))
	}
	if cfg.Leagues[0].ID != "nfl" || cfg.Leagues[1].ID != "nba" {
		t.Fatalf("unexpected leagues: %+v", cfg.Leagues)
	}
}

func TestLoad_UnknownLeague(t *testing.T) {
	t.Setenv("LEAGUES", "cricket")

	if _, err := Load(); err == nil {
		t.Fatalf("expected an error for unknown league")
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("STREAM_BASE_URL", "https://mirror.test")
	t.Setenv("MAX_ROW_WORKERS", "3")
	t.Setenv("OUTPUT_FILE", "out.m3u8")
	t.Setenv("DISPLAY_TZ", "America/Denver")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.StreamBaseURL != "https://mirror.test" {
		t.Fatalf("unexpected stream base url: %s", cfg.StreamBaseURL)
	}
	if cfg.MaxRowWorkers != 3 {
		t.Fatalf("unexpected worker count: %d", cfg.MaxRowWorkers)
	}
	if cfg.OutputFile != "out.m3u8" {
		t.Fatalf("unexpected output file: %s", cfg.OutputFile)
	}
	if cfg.DisplayZone.String() != "America/Denver" {
		t.Fatalf("unexpected display zone: %v", cfg.DisplayZone)
	}
}

func TestLoad_InvalidValues(t *testing.T) {
	cases := map[string]string{
		"APP_ENV":         "production!",
		"PROBE_TIMEOUT":   "soon",
		"MAX_ROW_WORKERS": "0",
		"DISPLAY_TZ":      "Mars/Olympus",
	}
	for key, value := range cases {
		t.Run(key, func(t *testing.T) {
			t.Setenv(key, value)
			if _, err := Load(); err == nil {
				t.Fatalf("expected an error for %s=%s", key, value)
			}
		})
	}
}

func TestDefaultLeaguesValidate(t *testing.T) {
	leagues, err := loadLeagues(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, league := range leagues {
		if league.Mode != "full_name" && league.Mode != "nickname" {
			t.Fatalf("league %s: bad mode %q", league.ID, league.Mode)
		}
		if _, err := time.LoadLocation(league.SiteZone); err != nil {
			t.Fatalf("league %s: bad zone: %v", league.ID, err)
		}
	}
}
