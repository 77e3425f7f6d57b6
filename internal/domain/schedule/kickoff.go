package schedule

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

const monthPattern = `(?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Sept|Oct|Nov|Dec)[a-z]*\.?`

var (
	dateRe  = regexp.MustCompile(`(?i)\b(` + monthPattern + `)\s+(\d{1,2})(?:,\s*(\d{4}))?`)
	clockRe = regexp.MustCompile(`(?i)(\d{1,2}):(\d{2})\s*(AM|PM)`)
	// ET/CT/MT/PT plus their standard/daylight variants.
	zoneAbbrRe = regexp.MustCompile(`(?i)\b([ECMP][SD]?T)\b`)
)

// How far around the clock match a timezone abbreviation is trusted to
// belong to that time rather than to some other row.
const (
	zoneWindowBefore = 16
	zoneWindowAfter  = 32
)

var zoneNameByAbbr = map[string]string{
	"ET": "America/New_York", "EST": "America/New_York", "EDT": "America/New_York",
	"CT": "America/Chicago", "CST": "America/Chicago", "CDT": "America/Chicago",
	"MT": "America/Denver", "MST": "America/Denver", "MDT": "America/Denver",
	"PT": "America/Los_Angeles", "PST": "America/Los_Angeles", "PDT": "America/Los_Angeles",
}

var monthNames = []string{
	"january", "february", "march", "april", "may", "june",
	"july", "august", "september", "october", "november", "december",
}

func monthNumber(token string) (time.Month, bool) {
	token = strings.ToLower(strings.TrimSuffix(strings.TrimSpace(token), "."))
	if token == "" {
		return 0, false
	}
	for i, name := range monthNames {
		// Full names, abbreviations, and loose forms like "Sept" all
		// share their first three letters with exactly one month.
		if strings.HasPrefix(name, token) || strings.HasPrefix(token, name[:3]) {
			return time.Month(i + 1), true
		}
	}
	return 0, false
}

// guessYear picks whichever of {year-1, year, year+1} keeps the parsed
// month/day within 180 days of the reference date. Ties keep the
// reference year, matching schedule pages that span a year boundary.
func guessYear(month time.Month, day int, today time.Time) int {
	ref := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	cand := time.Date(today.Year(), month, day, 0, 0, 0, 0, time.UTC)
	delta := int(cand.Sub(ref).Hours() / 24)
	switch {
	case delta < -180:
		return today.Year() + 1
	case delta > 180:
		return today.Year() - 1
	default:
		return today.Year()
	}
}

// ParseDateTitle extracts a calendar date from free text. A missing or
// malformed date is a miss, never an error.
func ParseDateTitle(text string, today time.Time) (time.Time, bool) {
	text = strings.Join(strings.Fields(text), " ")
	m := dateRe.FindStringSubmatch(text)
	if m == nil {
		return time.Time{}, false
	}

	month, ok := monthNumber(m[1])
	if !ok {
		return time.Time{}, false
	}
	day, err := strconv.Atoi(m[2])
	if err != nil {
		return time.Time{}, false
	}

	year := 0
	if m[3] != "" {
		year, err = strconv.Atoi(m[3])
		if err != nil {
			return time.Time{}, false
		}
	} else {
		year = guessYear(month, day, today)
	}

	d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	if d.Month() != month || d.Day() != day {
		// time.Date normalizes out-of-range days; treat rollover as a miss.
		return time.Time{}, false
	}
	return d, true
}

// HasClock reports whether text contains an H:MM AM/PM time.
func HasClock(text string) bool {
	return clockRe.MatchString(text)
}

// ParseClock extracts a 24-hour clock time and the timezone nearest to
// it. When no abbreviation sits inside the window around the match the
// fallback zone applies.
func ParseClock(text string, fallback *time.Location) (hour, minute int, loc *time.Location, ok bool) {
	idx := clockRe.FindStringSubmatchIndex(text)
	if idx == nil {
		return 0, 0, fallback, false
	}

	hour, err := strconv.Atoi(text[idx[2]:idx[3]])
	if err != nil || hour < 1 || hour > 12 {
		return 0, 0, fallback, false
	}
	minute, err = strconv.Atoi(text[idx[4]:idx[5]])
	if err != nil || minute > 59 {
		return 0, 0, fallback, false
	}

	meridiem := strings.ToUpper(text[idx[6]:idx[7]])
	if meridiem == "PM" && hour != 12 {
		hour += 12
	}
	if meridiem == "AM" && hour == 12 {
		hour = 0
	}

	start := idx[0]
	lo := start - zoneWindowBefore
	if lo < 0 {
		lo = 0
	}
	hi := start + zoneWindowAfter
	if hi > len(text) {
		hi = len(text)
	}

	loc = fallback
	if zm := zoneAbbrRe.FindStringSubmatch(text[lo:hi]); zm != nil {
		if name, known := zoneNameByAbbr[strings.ToUpper(zm[1])]; known {
			if zone, err := time.LoadLocation(name); err == nil {
				loc = zone
			}
		}
	}

	return hour, minute, loc, true
}

// ResolveKickoff combines the row's date and time text into an absolute
// instant in the display zone. The time text is checked for an inline
// date first; the running date-title context is the fallback. Both a
// date and a clock time are required, otherwise the kickoff is absent.
func ResolveKickoff(dateText, timeText string, siteZone, displayZone *time.Location, today time.Time) (time.Time, bool) {
	day, ok := ParseDateTitle(timeText, today)
	if !ok {
		day, ok = ParseDateTitle(dateText, today)
	}
	if !ok {
		return time.Time{}, false
	}

	hour, minute, loc, ok := ParseClock(timeText, siteZone)
	if !ok {
		return time.Time{}, false
	}

	at := time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, loc)
	return at.In(displayZone), true
}
