package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// LeagueConfig declares one schedule site to scrape. Mode selects the
// candidate strategy: full_name sites list "City Name" teams while
// nickname sites list bare nicknames. Allowlist, when set, restricts
// accepted slugs to a league's known roster.
type LeagueConfig struct {
	ID           string   `validate:"required,lowercase"`
	BaseURL      string   `validate:"required,url"`
	Group        string   `validate:"required"`
	TvgID        string   `validate:"required"`
	DefaultLogo  string   `validate:"required,url"`
	Mode         string   `validate:"required,oneof=full_name nickname"`
	Allowlist    string   `validate:"omitempty,oneof=nfl nhl"`
	SiteZone     string   `validate:"required"`
	ChannelSlugs []string `validate:"dive,required"`
}

func defaultLeagues() []LeagueConfig {
	return []LeagueConfig{
		{
			ID:          "nfl",
			BaseURL:     "https://nflwebcast.top/",
			Group:       "NFLWebcast",
			TvgID:       "NFL.Football.Dummy.us",
			DefaultLogo: "http://drewlive24.duckdns.org:9000/Logos/Football.png",
			Mode:        "full_name",
			Allowlist:   "nfl",
			SiteZone:    "America/New_York",
		},
		{
			ID:          "nhl",
			BaseURL:     "https://nhlstreams.org/nhlstreams-2/",
			Group:       "NHLWebcast",
			TvgID:       "NHL.Hockey.Dummy.us",
			DefaultLogo: "http://drewlive24.duckdns.org:9000/Logos/Hockey.png",
			Mode:        "full_name",
			Allowlist:   "nhl",
			SiteZone:    "America/New_York",
		},
		{
			ID:          "mlb",
			BaseURL:     "https://mlbstreams.live/",
			Group:       "MLBWebcast",
			TvgID:       "MLB.Baseball.Dummy.us",
			DefaultLogo: "http://drewlive24.duckdns.org:9000/Logos/MLB.png",
			Mode:        "nickname",
			SiteZone:    "America/New_York",
		},
		{
			ID:          "nba",
			BaseURL:     "https://nbawebcast.top/",
			Group:       "NBAWebcast",
			TvgID:       "NBA.Basketball.Dummy.us",
			DefaultLogo: "http://drewlive24.duckdns.org:9000/Logos/Basketball.png",
			Mode:        "nickname",
			SiteZone:    "America/New_York",
		},
	}
}

// loadLeagues returns the built-in league set, narrowed to ids when a
// LEAGUES filter is given. Every returned entry has passed validation.
func loadLeagues(ids []string) ([]LeagueConfig, error) {
	leagues := defaultLeagues()

	if len(ids) > 0 {
		wanted := make(map[string]struct{}, len(ids))
		for _, id := range ids {
			wanted[strings.ToLower(id)] = struct{}{}
		}

		filtered := leagues[:0]
		for _, league := range leagues {
			if _, ok := wanted[league.ID]; ok {
				filtered = append(filtered, league)
				delete(wanted, league.ID)
			}
		}
		if len(wanted) > 0 {
			for id := range wanted {
				return nil, fmt.Errorf("unknown league %q in LEAGUES", id)
			}
		}
		leagues = filtered
	}
	if len(leagues) == 0 {
		return nil, fmt.Errorf("LEAGUES selects no leagues")
	}

	validate := validator.New()
	for _, league := range leagues {
		if err := validate.Struct(league); err != nil {
			return nil, fmt.Errorf("invalid league %q: %w", league.ID, err)
		}
	}

	return leagues, nil
}
