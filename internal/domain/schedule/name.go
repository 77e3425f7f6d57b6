package schedule

import (
	"regexp"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Date text from the schedule page occasionally bleeds into the home
// team cell; anything from a month word onward is display noise.
var trailingDateRe = regexp.MustCompile(`(?i)(\b` + monthPattern + `\b.*)$`)

// NormalizeMatchName cleans free-text event names into a canonical
// display string. Idempotent: normalizing twice returns the same value.
func NormalizeMatchName(raw string) string {
	cleaned := strings.Join(strings.Fields(raw), " ")
	caser := cases.Title(language.English)

	if away, home, found := strings.Cut(cleaned, "@"); found {
		away = caser.String(strings.TrimSpace(away))
		home = strings.TrimSpace(trailingDateRe.ReplaceAllString(strings.TrimSpace(home), ""))
		home = caser.String(home)
		return away + " @ " + home
	}

	return caser.String(cleaned)
}

// FormatMatchTitle appends the kickoff stamp to a normalized name, e.g.
// "Dallas Cowboys @ Philadelphia Eagles • Jan 5 at 5:20 PM PST". When
// no kickoff was resolved the bare name is returned.
func FormatMatchTitle(name string, kickoff time.Time, ok bool) string {
	if !ok {
		return name
	}
	return name + " • " + kickoff.Format("Jan 2") + " at " + kickoff.Format("3:04 PM MST")
}
