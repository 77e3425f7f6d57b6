package playlist

import (
	"bytes"
	"fmt"
	"os"

	"github.com/bytedance/sonic"

	"github.com/streampulse/sportscast/internal/domain/stream"
)

const fallbackUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64; rv:109.0) Gecko/20100101 Firefox/115.0"

// Render serializes events into extended M3U. An empty input renders
// to nil, which Write treats as "leave the old file alone".
func Render(events []stream.Event) []byte {
	if len(events) == 0 {
		return nil
	}

	var buf bytes.Buffer
	buf.WriteString("#EXTM3U\n")
	for _, ev := range events {
		fmt.Fprintf(&buf, "#EXTINF:-1 tvg-id=%q tvg-name=%q tvg-logo=%q group-title=%q,%s\n",
			ev.TvgID, ev.Name, ev.TvgLogo, ev.Group, ev.Name)
		if h := ev.Headers; h != nil {
			fmt.Fprintf(&buf, "#EXTVLCOPT:http-origin=%s\n", h.Origin)
			fmt.Fprintf(&buf, "#EXTVLCOPT:http-referrer=%s\n", h.Referrer)
			fmt.Fprintf(&buf, "#EXTVLCOPT:http-user-agent=%s\n", h.UserAgent)
		} else {
			fmt.Fprintf(&buf, "#EXTVLCOPT:http-origin=%s\n", ev.SiteRef)
			fmt.Fprintf(&buf, "#EXTVLCOPT:http-referrer=%s\n", ev.SiteRef)
			fmt.Fprintf(&buf, "#EXTVLCOPT:http-user-agent=%s\n", fallbackUserAgent)
		}
		buf.WriteString(ev.URL + "\n")
	}
	return buf.Bytes()
}

// Write renders events to path. Nothing is written when there are no
// events, so a bad pass never clobbers the previous playlist.
func Write(events []stream.Event, path string) error {
	data := Render(events)
	if data == nil {
		return nil
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write playlist %s: %w", path, err)
	}
	return nil
}

// WriteSnapshot dumps the raw events as indented JSON alongside the
// playlist, for diffing between passes.
func WriteSnapshot(events []stream.Event, path string) error {
	if len(events) == 0 {
		return nil
	}
	data, err := sonic.ConfigDefault.MarshalIndent(events, "", "  ")
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write snapshot %s: %w", path, err)
	}
	return nil
}
