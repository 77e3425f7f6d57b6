package schedule

import "time"

// Mode selects how team text is matched against the slug registry.
type Mode string

const (
	// ModeFullName matches complete team names against the full-name
	// tables before falling back to trailing nicknames.
	ModeFullName Mode = "full_name"
	// ModeNicknameOnly matches trailing nickname tokens only and expands
	// recognized nicknames to league-prefixed composite slugs.
	ModeNicknameOnly Mode = "nickname"
)

// RawRow is one schedule-table row as extracted by the scraper. All
// fields are free text straight off the page; nothing is normalized.
type RawRow struct {
	AwayText   string
	HomeText   string
	DateText   string
	TimeText   string
	TeamKey    string
	BackupSlug string
	LogoURL    string
}

// League describes one schedule source and how its rows resolve.
type League struct {
	ID           string
	BaseURL      string
	Group        string
	TvgID        string
	DefaultLogo  string
	Mode         Mode
	Allowed      map[string]struct{}
	SiteZone     *time.Location
	ChannelSlugs []string
}
