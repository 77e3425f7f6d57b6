package team

import (
	"strings"

	"github.com/streampulse/sportscast/internal/domain/schedule"
)

// Registry holds the immutable name lookup tables and produces ordered
// slug candidate lists. Build one at startup and share it; it is
// read-only after construction.
type Registry struct {
	// Ordered: shared nicknames ("jets", "panthers") must yield every
	// league's slug, football first, so lookups walk tables in order.
	fullTables      []map[string]string
	nickTables      []map[string]string
	twoWordNicks    map[string]string
	aliases         []aliasRule
	compositeCodes  map[string]string
	compositePrefix string

	fullSlugSets map[string]map[string]struct{}
}

func DefaultRegistry() *Registry {
	return &Registry{
		fullTables:      []map[string]string{nflFullNames, nhlFullNames},
		nickTables:      []map[string]string{nflNicknames, nhlNicknames},
		twoWordNicks:    twoWordNicknames,
		aliases:         nicknameAliases,
		compositeCodes:  nbaNicknameCodes,
		compositePrefix: "nba",
		fullSlugSets: map[string]map[string]struct{}{
			"nfl": slugSet(nflFullNames),
			"nhl": slugSet(nhlFullNames),
		},
	}
}

// FullSlugSet returns the allow-list of canonical slugs for a league
// with a fixed known roster, or nil when the league has none.
func (r *Registry) FullSlugSet(league string) map[string]struct{} {
	return r.fullSlugSets[strings.ToLower(strings.TrimSpace(league))]
}

// Candidates produces the ordered, de-duplicated slug guesses for one
// team text. Order is preference order; the raw slugified input is
// always present as the last resort. Deterministic for equal input.
func (r *Registry) Candidates(text string, mode schedule.Mode) []string {
	if mode == schedule.ModeNicknameOnly {
		return r.expandComposites(r.nicknameCandidates(text))
	}
	return r.generalCandidates(text)
}

// CandidateSet is Candidates as a membership set, used for the
// backup-slug consistency check against the home side.
func (r *Registry) CandidateSet(text string, mode schedule.Mode) map[string]struct{} {
	set := make(map[string]struct{})
	for _, c := range r.Candidates(text, mode) {
		set[c] = struct{}{}
	}
	return set
}

// ExpandPageKey turns a page-supplied team key into probe candidates.
// Under nickname-only mode a bare key is expanded to its composite
// form; a key already carrying the composite prefix passes through.
func (r *Registry) ExpandPageKey(key string, mode schedule.Mode) []string {
	slug := Slugify(key)
	if slug == "" {
		return nil
	}
	if mode == schedule.ModeNicknameOnly && !strings.HasPrefix(slug, r.compositePrefix+"_") {
		return r.expandComposites([]string{slug})
	}
	return []string{slug}
}

func (r *Registry) generalCandidates(text string) []string {
	base := strings.Join(strings.Fields(strings.ToLower(text)), " ")
	out := make([]string, 0, 4)

	for _, table := range r.fullTables {
		if m, ok := table[base]; ok {
			out = appendUnique(out, m)
		}
	}

	parts := strings.Fields(base)
	last := ""
	twoLast := ""
	if len(parts) >= 1 {
		last = Slugify(parts[len(parts)-1])
	}
	if len(parts) >= 2 {
		twoLast = Slugify(strings.Join(parts[len(parts)-2:], " "))
	}
	// Two-token join before the bare last token: some nicknames are
	// two words ("maple leafs", "golden knights").
	for _, table := range r.nickTables {
		for _, key := range []string{twoLast, last} {
			if key == "" {
				continue
			}
			if m, ok := table[key]; ok {
				out = appendUnique(out, m)
			}
		}
	}

	if joined := Slugify(base); joined != "" {
		out = appendUnique(out, joined)
	}
	return out
}

func (r *Registry) nicknameCandidates(text string) []string {
	base := strings.Join(strings.Fields(strings.ToLower(text)), " ")
	if base == "" {
		return nil
	}
	parts := strings.Fields(base)

	out := make([]string, 0, 3)
	if len(parts) >= 2 {
		if nick, ok := r.twoWordNicks[strings.Join(parts[len(parts)-2:], " ")]; ok {
			out = append(out, Slugify(nick))
		}
	}
	out = appendUnique(out, Slugify(parts[len(parts)-1]))

	for _, rule := range r.aliases {
		if strings.Contains(base, rule.spelling) {
			out = appendUnique(out, Slugify(rule.nickname))
		}
	}

	return out
}

// expandComposites puts the league-prefixed composite slug ahead of
// each recognized bare nickname; the endpoint prefers the composite.
func (r *Registry) expandComposites(nicks []string) []string {
	out := make([]string, 0, len(nicks)*2)
	for _, nick := range nicks {
		if code, ok := r.compositeCodes[nick]; ok {
			out = appendUnique(out, r.compositePrefix+"_"+code)
		}
		out = appendUnique(out, nick)
	}
	return out
}

func appendUnique(list []string, item string) []string {
	if item == "" {
		return list
	}
	for _, existing := range list {
		if existing == item {
			return list
		}
	}
	return append(list, item)
}

func slugSet(table map[string]string) map[string]struct{} {
	set := make(map[string]struct{}, len(table))
	for _, slug := range table {
		set[slug] = struct{}{}
	}
	return set
}
