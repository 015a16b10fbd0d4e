package yt

import (
	"fmt"
	"strings"
	"time"
)

const maxArtistFromTitle = 50

// FormatDuration renders a duration as minutes:seconds, e.g. 65s -> "1:05".
// Unknown or zero durations render as "0:00".
func FormatDuration(d time.Duration) string {
	total := int(d.Seconds())
	if total <= 0 {
		return "0:00"
	}
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}

// SplitArtistTitle applies the "Artist - Title" upload convention: split on
// the first " - " and treat the left side as the artist when it is short
// enough to plausibly be a name. Titles using " - " as ordinary punctuation
// ("Song - Radio Edit") are accepted false positives.
func SplitArtistTitle(title string) (artist, clean string, ok bool) {
	before, after, found := strings.Cut(title, " - ")
	if !found {
		return "", title, false
	}
	artist = strings.TrimSpace(before)
	clean = strings.TrimSpace(after)
	if len(artist) >= maxArtistFromTitle {
		return "", title, false
	}
	return artist, clean, true
}

// Truncate caps s at max characters to fit the storage column widths.
func Truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
