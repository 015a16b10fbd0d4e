package yt

import (
	"context"
	"net/http"
	"time"

	"github.com/kkdai/youtube/v2"
	"github.com/spf13/viper"
)

// ResolvedAudio is everything extracted from a single YouTube video: a
// playable audio stream URL plus normalized descriptive metadata.
type ResolvedAudio struct {
	Title     string
	Artist    string
	AudioURL  string
	Thumbnail string
	Duration  string
	VideoID   string
	URL       string
}

// Resolver turns YouTube URLs into playable audio URLs and metadata.
// Each Resolve call is a single attempt bounded by the configured timeout.
type Resolver struct {
	client youtube.Client
}

func NewResolver() *Resolver {
	timeout := viper.GetInt("youtube.timeout")
	if timeout <= 0 {
		timeout = 10
	}
	return &Resolver{
		client: youtube.Client{
			HTTPClient: &http.Client{Timeout: time.Duration(timeout) * time.Second},
		},
	}
}

// Resolve extracts the video ID from rawURL, fetches the video's metadata
// and picks the best available audio stream. Failures come back as
// *ExtractionError tagged with the failure kind.
func (r *Resolver) Resolve(ctx context.Context, rawURL string) (*ResolvedAudio, error) {
	videoID, err := ExtractVideoID(rawURL)
	if err != nil {
		return nil, err
	}

	video, err := r.client.GetVideoContext(ctx, videoID)
	if err != nil {
		return nil, &ExtractionError{Kind: classify(err), URL: rawURL, err: err}
	}

	audioURL, err := r.pickAudioURL(ctx, rawURL, video)
	if err != nil {
		return nil, err
	}

	title := video.Title
	if title == "" {
		title = "Unknown Title"
	}
	artist := video.Author
	if artist == "" {
		artist = "Unknown Artist"
	}
	if fromTitle, clean, ok := SplitArtistTitle(title); ok {
		artist = fromTitle
		title = clean
	}

	return &ResolvedAudio{
		Title:     Truncate(title, 200),
		Artist:    Truncate(artist, 100),
		AudioURL:  audioURL,
		Thumbnail: bestThumbnail(video),
		Duration:  FormatDuration(video.Duration),
		VideoID:   videoID,
		URL:       rawURL,
	}, nil
}

// pickAudioURL prefers audio-only formats and falls back to any format that
// carries audio channels. The first format yielding a usable URL wins.
func (r *Resolver) pickAudioURL(ctx context.Context, rawURL string, video *youtube.Video) (string, error) {
	formats := video.Formats.Type("audio")
	if len(formats) == 0 {
		formats = video.Formats.WithAudioChannels()
	}

	for i := range formats {
		streamURL, err := r.client.GetStreamURLContext(ctx, video, &formats[i])
		if err == nil && streamURL != "" {
			return streamURL, nil
		}
	}

	return "", &ExtractionError{Kind: KindNoAudioStream, URL: rawURL}
}

func bestThumbnail(video *youtube.Video) string {
	var url string
	var width uint
	for _, t := range video.Thumbnails {
		if t.URL != "" && t.Width >= width {
			url = t.URL
			width = t.Width
		}
	}
	return url
}
