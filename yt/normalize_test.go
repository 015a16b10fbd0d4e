package yt

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatDuration_Zero(t *testing.T) {
	assert.Equal(t, "0:00", FormatDuration(0))
}

func TestFormatDuration_PadsSeconds(t *testing.T) {
	assert.Equal(t, "1:05", FormatDuration(65*time.Second))
}

func TestFormatDuration_WholeMinutes(t *testing.T) {
	assert.Equal(t, "10:00", FormatDuration(600*time.Second))
}

func TestFormatDuration_Negative(t *testing.T) {
	assert.Equal(t, "0:00", FormatDuration(-3*time.Second))
}

func TestSplitArtistTitle_Basic(t *testing.T) {
	artist, title, ok := SplitArtistTitle("Artist Name - Song Title")

	assert.True(t, ok)
	assert.Equal(t, "Artist Name", artist)
	assert.Equal(t, "Song Title", title)
}

func TestSplitArtistTitle_NoSeparator(t *testing.T) {
	_, title, ok := SplitArtistTitle("Just A Song")

	assert.False(t, ok)
	assert.Equal(t, "Just A Song", title)
}

func TestSplitArtistTitle_FirstSeparatorWins(t *testing.T) {
	artist, title, ok := SplitArtistTitle("Artist - Song - Radio Edit")

	assert.True(t, ok)
	assert.Equal(t, "Artist", artist)
	assert.Equal(t, "Song - Radio Edit", title)
}

func TestSplitArtistTitle_LongLeftSideRejected(t *testing.T) {
	left := strings.Repeat("x", 50)
	_, title, ok := SplitArtistTitle(left + " - Song")

	assert.False(t, ok)
	assert.Equal(t, left+" - Song", title)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", Truncate("abc", 5))
	assert.Equal(t, "abcde", Truncate("abcdefgh", 5))
}
