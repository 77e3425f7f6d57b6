package stream

// Headers is the HTTP header bundle a player must present when pulling
// a stream. Only one provider requires a custom bundle; everything else
// falls back to the site reference defaults at serialization time.
type Headers struct {
	Origin    string `json:"origin"`
	Referrer  string `json:"referrer"`
	UserAgent string `json:"user_agent"`
}

// Event is one playable entry in the final channel list. Immutable
// once assembled; duplicates are resolved by Key with first-seen wins.
type Event struct {
	Key     string   `json:"key"`
	Name    string   `json:"name"`
	URL     string   `json:"url"`
	TvgID   string   `json:"tvg_id"`
	TvgLogo string   `json:"tvg_logo"`
	Group   string   `json:"group"`
	SiteRef string   `json:"ref"`
	Headers *Headers `json:"custom_headers,omitempty"`
}

// ChannelInfo is display metadata for a known 24/7 channel slug.
type ChannelInfo struct {
	Name  string
	TvgID string
	Logo  string
}

var channelDirectory = map[string]ChannelInfo{
	"nflnetwork": {
		Name:  "NFL Network",
		TvgID: "NFL.Network.HD.us2",
		Logo:  "https://github.com/tv-logo/tv-logos/blob/main/countries/united-states/nfl-network-hz-us.png?raw=true",
	},
	"nflredzone": {
		Name:  "NFL RedZone",
		TvgID: "NFL.RedZone.HD.us2",
		Logo:  "https://github.com/tv-logo/tv-logos/blob/main/countries/united-states/nfl-red-zone-hz-us.png?raw=true",
	},
	"espnusa": {
		Name:  "ESPN",
		TvgID: "ESPN.HD.us2",
		Logo:  "https://github.com/tv-logo/tv-logos/blob/main/countries/united-states/espn-us.png?raw=true",
	},
}

// LookupChannel resolves display metadata for a channel slug.
func LookupChannel(slug string) (ChannelInfo, bool) {
	info, ok := channelDirectory[slug]
	return info, ok
}
