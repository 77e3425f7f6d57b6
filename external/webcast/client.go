package webcast

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/cockroachdb/errors"

	"github.com/streampulse/sportscast/internal/domain/schedule"
	"github.com/streampulse/sportscast/internal/domain/team"
	"github.com/streampulse/sportscast/internal/platform/logging"
	"github.com/streampulse/sportscast/internal/usecase"
)

const (
	defaultTimeout = 20 * time.Second
	maxBodySize    = 6 << 20

	scrapeUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64; rv:109.0) Gecko/20100101 Firefox/115.0"
)

var (
	backupClassRe = regexp.MustCompile(`(?i)backup`)
	backupHrefRe  = regexp.MustCompile(`(?i)poocloud\.in/([^/]+)/tracks-[^/]+/mono\.ts\.m3u8`)
)

// timeCellSelectors is tried in order; the first cell whose text
// carries a clock wins. Sites disagree on the column name.
var timeCellSelectors = []string{
	"td.timestatus span",
	"td.timestatus",
	"td.timeanddate",
	"td.time",
	"td.timing",
	"td.status",
	"td.match_time",
}

type Config struct {
	HTTPClient *http.Client
	Timeout    time.Duration
	Logger     *logging.Logger
}

// Client fetches a league's schedule page and extracts its raw rows.
// It does no slug or time resolution; that belongs to the caller.
type Client struct {
	httpClient *http.Client
	logger     *logging.Logger
	now        func() time.Time
}

func NewClient(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: timeout}
	}
	logger := cfg.Logger
	if logger == nil {
		logger = logging.NewNop()
	}

	return &Client{
		httpClient: httpClient,
		logger:     logger,
		now:        time.Now,
	}
}

// FetchRows downloads the league's schedule page and parses it.
func (c *Client) FetchRows(ctx context.Context, league schedule.League) ([]schedule.RawRow, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, league.BaseURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build schedule request: %w", err)
	}
	req.Header.Set("User-Agent", scrapeUserAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Mark(fmt.Errorf("fetch %s: %w", league.BaseURL, err), usecase.ErrDependencyUnavailable)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Mark(fmt.Errorf("fetch %s: status %d", league.BaseURL, resp.StatusCode), usecase.ErrDependencyUnavailable)
	}

	doc, err := goquery.NewDocumentFromReader(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", league.BaseURL, err)
	}

	return c.ParseRows(doc, league), nil
}

// ParseRows walks the document's table rows, carrying the most recent
// date header as context for the game rows below it. A page without a
// schedule table yields no rows.
func (c *Client) ParseRows(doc *goquery.Document, league schedule.League) []schedule.RawRow {
	if !hasScheduleTable(doc) {
		c.logger.Debug("no schedule table", "league", league.ID)
		return nil
	}

	today := c.now()
	var rows []schedule.RawRow
	var currentDate string

	doc.Find("tr").Each(func(_ int, tr *goquery.Selection) {
		classes := strings.ToLower(tr.AttrOr("class", ""))
		if strings.Contains(classes, "date") || strings.Contains(classes, "title") || strings.Contains(classes, "header") {
			text := cellText(tr)
			if _, ok := schedule.ParseDateTitle(text, today); ok {
				currentDate = text
			}
			return
		}

		tds := tr.Find("td")
		if tds.Length() == 0 {
			return
		}

		away, home, ok := teamTexts(tds)
		if !ok {
			return
		}

		rows = append(rows, schedule.RawRow{
			AwayText:   away,
			HomeText:   home,
			DateText:   currentDate,
			TimeText:   timeText(tr),
			TeamKey:    tr.Find("button.watch_btn").AttrOr("data-team", ""),
			BackupSlug: backupSlug(tr),
			LogoURL:    logoURL(tds),
		})
	})

	return rows
}

func hasScheduleTable(doc *goquery.Document) bool {
	found := false
	doc.Find("table").EachWithBreak(func(_ int, t *goquery.Selection) bool {
		if strings.Contains(strings.ToLower(t.AttrOr("class", "")), "schedule_container") {
			found = true
			return false
		}
		return true
	})
	return found
}

// teamTexts prefers the dedicated teamvs cells and falls back to the
// first two non-empty cells of the row.
func teamTexts(tds *goquery.Selection) (away, home string, ok bool) {
	var teamCells []string
	tds.Each(func(_ int, td *goquery.Selection) {
		if strings.Contains(strings.ToLower(td.AttrOr("class", "")), "teamvs") {
			teamCells = append(teamCells, cellText(td))
		}
	})
	if len(teamCells) >= 2 {
		return teamCells[0], teamCells[1], true
	}

	var texts []string
	tds.Each(func(_ int, td *goquery.Selection) {
		if text := cellText(td); text != "" {
			texts = append(texts, text)
		}
	})
	if len(texts) < 2 {
		return "", "", false
	}
	return texts[0], texts[1], true
}

// logoURL reads the image of the row's last teamlogo cell. A final
// cell without an image yields "" even when an earlier cell has one.
func logoURL(tds *goquery.Selection) string {
	var logoCell *goquery.Selection
	tds.Each(func(_ int, td *goquery.Selection) {
		if strings.Contains(strings.ToLower(td.AttrOr("class", "")), "teamlogo") {
			logoCell = td
		}
	})
	if logoCell == nil {
		return ""
	}
	return logoCell.Find("img").First().AttrOr("src", "")
}

// backupSlug finds the row's backup link or button and extracts the
// slug either from its stream href or from its data-team attribute.
func backupSlug(tr *goquery.Selection) string {
	var el *goquery.Selection
	tr.Find("a, button").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if backupClassRe.MatchString(s.AttrOr("class", "")) || backupClassRe.MatchString(s.Text()) {
			el = s
			return false
		}
		return true
	})
	if el == nil {
		return ""
	}

	if m := backupHrefRe.FindStringSubmatch(el.AttrOr("href", "")); m != nil {
		return team.Slugify(m[1])
	}
	if dt := el.AttrOr("data-team", ""); dt != "" {
		return team.Slugify(dt)
	}
	return ""
}

// timeText returns the first candidate cell that actually contains a
// clock, else the whole row's text so inline times still resolve.
func timeText(tr *goquery.Selection) string {
	for _, sel := range timeCellSelectors {
		cell := tr.Find(sel).First()
		if cell.Length() == 0 {
			continue
		}
		if text := cellText(cell); schedule.HasClock(text) {
			return text
		}
	}
	return cellText(tr)
}

func cellText(s *goquery.Selection) string {
	return strings.Join(strings.Fields(s.Text()), " ")
}
