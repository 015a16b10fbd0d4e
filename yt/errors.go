package yt

import (
	"context"
	"errors"
	"fmt"
	"net"

	"github.com/kkdai/youtube/v2"
)

// ErrorKind tags an ExtractionError so callers can decide whether a retry
// could ever help without parsing message strings.
type ErrorKind int

const (
	KindInvalidURL ErrorKind = iota
	KindNoAudioStream
	KindUnavailable
	KindNetwork
	KindProcessing
)

func (k ErrorKind) String() string {
	switch k {
	case KindInvalidURL:
		return "invalid YouTube URL"
	case KindNoAudioStream:
		return "no audio stream found"
	case KindUnavailable:
		return "video unavailable"
	case KindNetwork:
		return "network failure"
	default:
		return "processing failed"
	}
}

// ExtractionError reports a failed metadata or audio URL extraction.
type ExtractionError struct {
	Kind ErrorKind
	URL  string
	err  error
}

func (e *ExtractionError) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s (%s): %v", e.Kind, e.URL, e.err)
	}
	return fmt.Sprintf("%s (%s)", e.Kind, e.URL)
}

func (e *ExtractionError) Unwrap() error { return e.err }

// Public returns a client-safe description that names the URL but never
// leaks raw upstream error text.
func (e *ExtractionError) Public() string {
	return fmt.Sprintf("could not process %s: %s", e.URL, e.Kind)
}

func classify(err error) ErrorKind {
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || errors.As(err, &netErr) {
		return KindNetwork
	}
	if errors.Is(err, youtube.ErrNotPlayableInEmbed) ||
		errors.Is(err, youtube.ErrLoginRequired) ||
		errors.Is(err, youtube.ErrVideoPrivate) {
		return KindUnavailable
	}
	var playability *youtube.ErrPlayabiltyStatus
	if errors.As(err, &playability) {
		return KindUnavailable
	}
	return KindProcessing
}
