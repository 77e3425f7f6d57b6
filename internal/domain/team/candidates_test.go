package team

import (
	"reflect"
	"testing"

	"github.com/streampulse/sportscast/internal/domain/schedule"
)

func TestSlugify(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want string
	}{
		{"Dallas Cowboys", "dallascowboys"},
		{"St. Louis Blues!", "stlouisblues"},
		{"nba_lakers", "nbalakers"},
		{"Red-Sox", "redsox"},
		{"76ers", "76ers"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := Slugify(tc.in); got != tc.want {
			t.Fatalf("%q: expected %q, got=%q", tc.in, tc.want, got)
		}
	}
}

func TestCandidates_FullName(t *testing.T) {
	t.Parallel()

	r := DefaultRegistry()

	got := r.Candidates("Dallas Cowboys", schedule.ModeFullName)
	if !reflect.DeepEqual(got, []string{"dallascowboys"}) {
		t.Fatalf("unexpected candidates: %v", got)
	}

	got = r.Candidates("Toronto Maple Leafs", schedule.ModeFullName)
	if !reflect.DeepEqual(got, []string{"torontomapleleafs"}) {
		t.Fatalf("unexpected candidates: %v", got)
	}

	// Unknown teams still produce the raw slug as a last resort.
	got = r.Candidates("Springfield Isotopes", schedule.ModeFullName)
	if !reflect.DeepEqual(got, []string{"springfieldisotopes"}) {
		t.Fatalf("unexpected candidates: %v", got)
	}
}

func TestCandidates_SharedNicknameYieldsBothLeagues(t *testing.T) {
	t.Parallel()

	r := DefaultRegistry()

	// "Jets" is both a football and a hockey nickname; football wins
	// the tiebreak but both slugs must appear.
	got := r.Candidates("Jets", schedule.ModeFullName)
	want := []string{"newyorkjets", "winnipegjets", "jets"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got=%v", want, got)
	}
}

func TestCandidates_NicknameOnly(t *testing.T) {
	t.Parallel()

	r := DefaultRegistry()

	got := r.Candidates("Lakers", schedule.ModeNicknameOnly)
	want := []string{"nba_losangeleslakers", "lakers"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got=%v", want, got)
	}

	// Two-word nicknames resolve as a phrase before the bare last word.
	got = r.Candidates("Portland Trail Blazers", schedule.ModeNicknameOnly)
	want = []string{"nba_portlandtrailblazers", "trailblazers", "blazers"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got=%v", want, got)
	}

	// Alternate spellings map onto the canonical nickname.
	got = r.Candidates("Philadelphia 76ers", schedule.ModeNicknameOnly)
	want = []string{"76ers", "nba_philadelphiasixers", "sixers"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got=%v", want, got)
	}

	// Non-basketball nicknames pass through without a composite form.
	got = r.Candidates("Boston Red Sox", schedule.ModeNicknameOnly)
	want = []string{"redsox", "sox"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got=%v", want, got)
	}
}

func TestCandidates_Deterministic(t *testing.T) {
	t.Parallel()

	r := DefaultRegistry()
	first := r.Candidates("Philadelphia 76ers", schedule.ModeNicknameOnly)
	for i := 0; i < 50; i++ {
		if got := r.Candidates("Philadelphia 76ers", schedule.ModeNicknameOnly); !reflect.DeepEqual(got, first) {
			t.Fatalf("iteration %d: %v vs %v", i, got, first)
		}
	}
}

func TestExpandPageKey(t *testing.T) {
	t.Parallel()

	r := DefaultRegistry()

	got := r.ExpandPageKey("lakers", schedule.ModeNicknameOnly)
	want := []string{"nba_losangeleslakers", "lakers"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got=%v", want, got)
	}

	got = r.ExpandPageKey("dallascowboys", schedule.ModeFullName)
	if !reflect.DeepEqual(got, []string{"dallascowboys"}) {
		t.Fatalf("unexpected expansion: %v", got)
	}

	if got := r.ExpandPageKey("  ", schedule.ModeFullName); got != nil {
		t.Fatalf("expected nil for blank key, got=%v", got)
	}
}

func TestCandidateSet(t *testing.T) {
	t.Parallel()

	r := DefaultRegistry()
	set := r.CandidateSet("Philadelphia Eagles", schedule.ModeFullName)
	if _, ok := set["philadelphiaeagles"]; !ok {
		t.Fatalf("expected philadelphiaeagles in set, got=%v", set)
	}
}

func TestFullSlugSet(t *testing.T) {
	t.Parallel()

	r := DefaultRegistry()

	nfl := r.FullSlugSet("nfl")
	if len(nfl) != 32 {
		t.Fatalf("expected 32 football slugs, got=%d", len(nfl))
	}
	if _, ok := nfl["dallascowboys"]; !ok {
		t.Fatalf("expected dallascowboys in football set")
	}

	nhl := r.FullSlugSet("NHL")
	if len(nhl) != 32 {
		t.Fatalf("expected 32 hockey slugs, got=%d", len(nhl))
	}

	if r.FullSlugSet("mlb") != nil {
		t.Fatalf("expected nil set for leagues without a roster")
	}
}
