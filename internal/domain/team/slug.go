package team

import (
	"strings"

	goslug "github.com/gosimple/slug"
)

// Slugify reduces arbitrary team text to the bare alphanumeric key
// format the stream endpoint is addressed by. Transliteration handles
// accented names ("Montréal Canadiens" -> "montrealcanadiens").
func Slugify(s string) string {
	out := goslug.Make(s)
	out = strings.ReplaceAll(out, "-", "")
	out = strings.ReplaceAll(out, "_", "")
	return out
}
