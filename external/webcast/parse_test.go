package webcast

import (
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/streampulse/sportscast/internal/domain/schedule"
)

const scheduleFixture = `
<html><body>
<table class="schedule_container main">
  <tr class="date_title"><td>Sunday, January 5</td></tr>
  <tr>
    <td class="teamlogo"><img src="https://logos.test/cowboys.png"></td>
    <td class="teamvs">Dallas Cowboys</td>
    <td class="teamvs">Philadelphia Eagles</td>
    <td class="teamlogo"><img src="https://logos.test/eagles.png"></td>
    <td class="timestatus"><span>8:20 PM ET</span></td>
    <td><button class="watch_btn" data-team="philadelphiaeagles">Watch</button>
        <a class="backup_link" href="https://gg.poocloud.in/philadelphia_eagles/tracks-v1a1/mono.ts.m3u8">Backup</a></td>
  </tr>
  <tr class="date_title"><td>Upcoming Games</td></tr>
  <tr>
    <td>Buffalo Bills</td>
    <td>Miami Dolphins</td>
    <td class="time">1:00 PM</td>
  </tr>
  <tr><td></td></tr>
</table>
</body></html>`

func parseFixture(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		t.Fatalf("parse fixture: %v", err)
	}
	return doc
}

func testClient() *Client {
	c := NewClient(Config{})
	c.now = func() time.Time {
		return time.Date(2025, time.January, 3, 0, 0, 0, 0, time.UTC)
	}
	return c
}

func TestParseRows(t *testing.T) {
	t.Parallel()

	rows := testClient().ParseRows(parseFixture(t, scheduleFixture), schedule.League{ID: "nfl"})
	if len(rows) != 2 {
		t.Fatalf("expected two rows, got=%d", len(rows))
	}

	first := rows[0]
	if first.AwayText != "Dallas Cowboys" || first.HomeText != "Philadelphia Eagles" {
		t.Fatalf("unexpected teams: %q vs %q", first.AwayText, first.HomeText)
	}
	if first.DateText != "Sunday, January 5" {
		t.Fatalf("unexpected date context: %q", first.DateText)
	}
	if first.TimeText != "8:20 PM ET" {
		t.Fatalf("unexpected time text: %q", first.TimeText)
	}
	if first.TeamKey != "philadelphiaeagles" {
		t.Fatalf("unexpected team key: %q", first.TeamKey)
	}
	if first.BackupSlug != "philadelphiaeagles" {
		t.Fatalf("unexpected backup slug: %q", first.BackupSlug)
	}
	if first.LogoURL != "https://logos.test/eagles.png" {
		t.Fatalf("unexpected logo: %q", first.LogoURL)
	}

	// Second row has no teamvs cells; the first two non-empty cells
	// stand in, and the unparsable "Upcoming Games" header must not
	// clobber the date context.
	second := rows[1]
	if second.AwayText != "Buffalo Bills" || second.HomeText != "Miami Dolphins" {
		t.Fatalf("unexpected teams: %q vs %q", second.AwayText, second.HomeText)
	}
	if second.DateText != "Sunday, January 5" {
		t.Fatalf("unexpected date context: %q", second.DateText)
	}
	if second.TimeText != "1:00 PM" {
		t.Fatalf("unexpected time text: %q", second.TimeText)
	}
	if second.BackupSlug != "" || second.TeamKey != "" {
		t.Fatalf("unexpected key/backup: %q %q", second.TeamKey, second.BackupSlug)
	}
}

func TestParseRows_NoScheduleTable(t *testing.T) {
	t.Parallel()

	doc := parseFixture(t, `<html><body><table class="stats"><tr><td>x</td></tr></table></body></html>`)
	if rows := testClient().ParseRows(doc, schedule.League{ID: "nfl"}); rows != nil {
		t.Fatalf("expected nil, got=%v", rows)
	}
}

func TestParseRows_BackupFromDataTeam(t *testing.T) {
	t.Parallel()

	doc := parseFixture(t, `
<table class="schedule_container">
  <tr>
    <td class="teamvs">Lakers</td>
    <td class="teamvs">Celtics</td>
    <td><button class="extra">Backup</button></td>
  </tr>
</table>`)
	// No stream href on the backup element: fall back to data-team.
	doc2 := parseFixture(t, `
<table class="schedule_container">
  <tr>
    <td class="teamvs">Lakers</td>
    <td class="teamvs">Celtics</td>
    <td><button class="backup_btn" data-team="Boston_Celtics">Alt</button></td>
  </tr>
</table>`)

	rows := testClient().ParseRows(doc, schedule.League{ID: "nba"})
	if len(rows) != 1 || rows[0].BackupSlug != "" {
		t.Fatalf("expected no backup slug, got=%v", rows)
	}

	rows = testClient().ParseRows(doc2, schedule.League{ID: "nba"})
	if len(rows) != 1 || rows[0].BackupSlug != "bostonceltics" {
		t.Fatalf("expected data-team backup, got=%v", rows)
	}
}

func TestParseRows_LogoFromLastCell(t *testing.T) {
	t.Parallel()

	// The last teamlogo cell wins; when it carries no image the row
	// gets no logo, even though an earlier cell has one.
	doc := parseFixture(t, `
<table class="schedule_container">
  <tr>
    <td class="teamlogo"><img src="https://logos.test/kraken.png"></td>
    <td class="teamvs">Seattle Kraken</td>
    <td class="teamvs">Vancouver Canucks</td>
    <td class="teamlogo"></td>
  </tr>
</table>`)

	rows := testClient().ParseRows(doc, schedule.League{ID: "nhl"})
	if len(rows) != 1 {
		t.Fatalf("expected one row, got=%d", len(rows))
	}
	if rows[0].LogoURL != "" {
		t.Fatalf("expected empty logo, got=%q", rows[0].LogoURL)
	}
}

func TestParseRows_TimeTextFallsBackToRow(t *testing.T) {
	t.Parallel()

	doc := parseFixture(t, `
<table class="schedule_container">
  <tr>
    <td class="teamvs">Yankees</td>
    <td class="teamvs">Red Sox</td>
    <td>Jan 4 7:05 PM</td>
  </tr>
</table>`)

	rows := testClient().ParseRows(doc, schedule.League{ID: "mlb"})
	if len(rows) != 1 {
		t.Fatalf("expected one row, got=%d", len(rows))
	}
	if rows[0].TimeText != "Yankees Red Sox Jan 4 7:05 PM" {
		t.Fatalf("unexpected row text: %q", rows[0].TimeText)
	}
}
