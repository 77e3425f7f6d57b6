package usecase

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/sourcegraph/conc/iter"

	"github.com/streampulse/sportscast/internal/domain/schedule"
	"github.com/streampulse/sportscast/internal/domain/stream"
	"github.com/streampulse/sportscast/internal/platform/logging"
)

// Scraper is the upstream collaborator: it fetches one league's
// schedule page and hands back raw row text.
type Scraper interface {
	FetchRows(ctx context.Context, league schedule.League) ([]schedule.RawRow, error)
}

// StreamProber extends liveness checks with the address and header
// bundle of the probed provider.
type StreamProber interface {
	Prober
	StreamURL(slug string) string
	Headers() stream.Headers
}

// Discovery runs one best-effort pass over all configured leagues and
// produces the final de-duplicated, ordered channel list.
type Discovery struct {
	scraper     Scraper
	resolver    *Resolver
	prober      StreamProber
	displayZone *time.Location
	rowWorkers  int
	logger      *logging.Logger
	now         func() time.Time
}

type DiscoveryConfig struct {
	Scraper     Scraper
	Resolver    *Resolver
	Prober      StreamProber
	DisplayZone *time.Location
	RowWorkers  int
	Logger      *logging.Logger
}

func NewDiscovery(cfg DiscoveryConfig) *Discovery {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.NewNop()
	}
	workers := cfg.RowWorkers
	if workers < 1 {
		workers = 8
	}
	zone := cfg.DisplayZone
	if zone == nil {
		zone = time.UTC
	}

	return &Discovery{
		scraper:     cfg.Scraper,
		resolver:    cfg.Resolver,
		prober:      cfg.Prober,
		displayZone: zone,
		rowWorkers:  workers,
		logger:      logger,
		now:         time.Now,
	}
}

// RunAll discovers every league concurrently and merges the results.
// A league that fails outright contributes nothing; its siblings are
// unaffected. Merge order is the configured league order, so the
// first-seen dedup rule is deterministic.
func (d *Discovery) RunAll(ctx context.Context, leagues []schedule.League) []stream.Event {
	perLeague := iter.Map(leagues, func(league *schedule.League) []stream.Event {
		return d.RunLeague(ctx, *league)
	})

	merged := make([]stream.Event, 0, 16)
	seen := make(map[string]struct{}, 16)
	for _, events := range perLeague {
		for _, ev := range events {
			if _, dup := seen[ev.Key]; dup {
				continue
			}
			seen[ev.Key] = struct{}{}
			merged = append(merged, ev)
		}
	}

	sort.Slice(merged, func(i, j int) bool { return merged[i].Key < merged[j].Key })
	return merged
}

// RunLeague scrapes one league and resolves its rows on a bounded
// worker pool. Rows that cannot be resolved are dropped silently; a
// fatal scrape failure yields an empty result.
func (d *Discovery) RunLeague(ctx context.Context, league schedule.League) []stream.Event {
	rows, err := d.scraper.FetchRows(ctx, league)
	if err != nil {
		d.logger.WarnContext(ctx, "league scrape failed", "league", league.ID, "error", err)
		return nil
	}

	results := make([]*stream.Event, len(rows))
	if len(rows) > 0 {
		workers := d.rowWorkers
		if workers > len(rows) {
			workers = len(rows)
		}
		runner, err := ants.NewPool(workers)
		if err != nil {
			d.logger.WarnContext(ctx, "create row worker pool failed", "league", league.ID, "error", err)
			return nil
		}
		defer runner.Release()

		var wg sync.WaitGroup
		for i, row := range rows {
			i, row := i, row
			wg.Add(1)
			if err := runner.Submit(func() {
				defer wg.Done()
				results[i] = d.assemble(ctx, league, row)
			}); err != nil {
				wg.Done()
				d.logger.WarnContext(ctx, "submit row task failed", "league", league.ID, "error", err)
			}
		}
		wg.Wait()
	}

	// Merge after the barrier only; tasks never touch shared state.
	events := make([]stream.Event, 0, len(rows))
	for _, ev := range results {
		if ev != nil {
			events = append(events, *ev)
		}
	}

	events = append(events, d.channelEvents(ctx, league)...)
	d.logger.InfoContext(ctx, "league discovered", "league", league.ID, "rows", len(rows), "events", len(events))
	return events
}

// assemble turns one raw row into a finished event, or nil when no
// candidate slug verifies. Kickoff resolution and slug resolution are
// independent; a missing kickoff only degrades the display name.
func (d *Discovery) assemble(ctx context.Context, league schedule.League, row schedule.RawRow) *stream.Event {
	slug, ok := d.resolver.Resolve(ctx, ResolveInput{
		HomeText:   row.HomeText,
		AwayText:   row.AwayText,
		PageKey:    row.TeamKey,
		BackupSlug: row.BackupSlug,
		Allowed:    league.Allowed,
		Mode:       league.Mode,
	})
	if !ok {
		return nil
	}

	name := schedule.NormalizeMatchName(row.AwayText + " @ " + row.HomeText)
	kickoff, hasKickoff := schedule.ResolveKickoff(row.DateText, row.TimeText, league.SiteZone, d.displayZone, d.now().In(d.displayZone))
	headers := d.prober.Headers()

	logo := row.LogoURL
	if logo == "" {
		logo = league.DefaultLogo
	}

	return &stream.Event{
		Key:     name,
		Name:    schedule.FormatMatchTitle(name, kickoff, hasKickoff),
		URL:     d.prober.StreamURL(slug),
		TvgID:   league.TvgID,
		TvgLogo: logo,
		Group:   league.Group + " - Live Games",
		SiteRef: league.BaseURL,
		Headers: &headers,
	}
}

// channelEvents probes the league's optional round-the-clock channel
// slugs directly; these carry no kickoff and use directory metadata
// when the slug is a known channel.
func (d *Discovery) channelEvents(ctx context.Context, league schedule.League) []stream.Event {
	events := make([]stream.Event, 0, len(league.ChannelSlugs))
	for _, slug := range league.ChannelSlugs {
		if !d.prober.Verify(ctx, slug) {
			continue
		}

		name := slug
		tvgID := league.TvgID
		logo := league.DefaultLogo
		if info, ok := stream.LookupChannel(slug); ok {
			name = info.Name
			tvgID = info.TvgID
			logo = info.Logo
		}

		headers := d.prober.Headers()
		events = append(events, stream.Event{
			Key:     name,
			Name:    name,
			URL:     d.prober.StreamURL(slug),
			TvgID:   tvgID,
			TvgLogo: logo,
			Group:   league.Group + " - 24/7 Channels",
			SiteRef: league.BaseURL,
			Headers: &headers,
		})
	}
	return events
}
