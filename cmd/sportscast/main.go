package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/streampulse/sportscast/external/probe"
	"github.com/streampulse/sportscast/external/webcast"
	"github.com/streampulse/sportscast/internal/config"
	"github.com/streampulse/sportscast/internal/domain/schedule"
	"github.com/streampulse/sportscast/internal/domain/team"
	"github.com/streampulse/sportscast/internal/platform/logging"
	"github.com/streampulse/sportscast/internal/platform/resilience"
	"github.com/streampulse/sportscast/internal/playlist"
	"github.com/streampulse/sportscast/internal/usecase"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger := logging.NewJSON(cfg.LogLevel).With(
		"service", cfg.ServiceName,
		"version", cfg.ServiceVersion,
	)
	defer logger.Sync()

	if err := run(cfg, logger); err != nil {
		logger.Error("discovery pass failed", "error", err)
		os.Exit(1)
	}
}

func run(cfg config.Config, logger *logging.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, cfg.RunTimeout)
	defer cancel()

	registry := team.DefaultRegistry()
	leagues, err := buildLeagues(cfg, registry)
	if err != nil {
		return err
	}

	prober := probe.NewClient(probe.Config{
		HTTPClient: &http.Client{Timeout: cfg.ProbeTimeout},
		BaseURL:    cfg.StreamBaseURL,
		Timeout:    cfg.ProbeTimeout,
		Logger:     logger.With("component", "probe"),
		Breaker: resilience.CircuitBreakerConfig{
			Enabled:          cfg.ProbeCircuitEnabled,
			FailureThreshold: cfg.ProbeCircuitFailures,
			OpenTimeout:      cfg.ProbeCircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.ProbeCircuitHalfOpenMax,
		},
	})
	scraper := webcast.NewClient(webcast.Config{
		Timeout: cfg.ScrapeTimeout,
		Logger:  logger.With("component", "webcast"),
	})

	discovery := usecase.NewDiscovery(usecase.DiscoveryConfig{
		Scraper:     scraper,
		Resolver:    usecase.NewResolver(registry, prober),
		Prober:      prober,
		DisplayZone: cfg.DisplayZone,
		RowWorkers:  cfg.MaxRowWorkers,
		Logger:      logger.With("component", "discovery"),
	})

	start := time.Now()
	events := discovery.RunAll(ctx, leagues)
	logger.InfoContext(ctx, "discovery pass finished",
		"leagues", len(leagues),
		"events", len(events),
		"elapsed", time.Since(start),
	)

	if err := playlist.Write(events, cfg.OutputFile); err != nil {
		return err
	}
	if cfg.SnapshotFile != "" {
		if err := playlist.WriteSnapshot(events, cfg.SnapshotFile); err != nil {
			return err
		}
	}

	if len(events) == 0 {
		logger.WarnContext(ctx, "no live events found, playlist left untouched", "path", cfg.OutputFile)
	} else {
		logger.InfoContext(ctx, "playlist written", "path", cfg.OutputFile, "entries", len(events))
	}
	return nil
}

func buildLeagues(cfg config.Config, registry *team.Registry) ([]schedule.League, error) {
	leagues := make([]schedule.League, 0, len(cfg.Leagues))
	for _, lc := range cfg.Leagues {
		zone, err := time.LoadLocation(lc.SiteZone)
		if err != nil {
			return nil, fmt.Errorf("league %s: load zone %q: %w", lc.ID, lc.SiteZone, err)
		}

		var allowed map[string]struct{}
		if lc.Allowlist != "" {
			allowed = registry.FullSlugSet(lc.Allowlist)
			if allowed == nil {
				return nil, fmt.Errorf("league %s: no slug set for allowlist %q", lc.ID, lc.Allowlist)
			}
		}

		leagues = append(leagues, schedule.League{
			ID:           lc.ID,
			BaseURL:      lc.BaseURL,
			Group:        lc.Group,
			TvgID:        lc.TvgID,
			DefaultLogo:  lc.DefaultLogo,
			Mode:         schedule.Mode(lc.Mode),
			Allowed:      allowed,
			SiteZone:     zone,
			ChannelSlugs: lc.ChannelSlugs,
		})
	}
	return leagues, nil
}
