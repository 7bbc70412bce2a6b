package youtube

import (
	"errors"
	"fmt"
)

// Sentinel error kinds. Callers classify failures with errors.Is; the
// concrete errors embed the video ID in their message.
var (
	ErrInvalidInput        = errors.New("invalid video URL or ID")
	ErrTranscriptsDisabled = errors.New("transcripts disabled")
	ErrNoTranscriptFound   = errors.New("no transcript found")
	ErrVideoUnavailable    = errors.New("video unavailable")
	ErrRequestFailed       = errors.New("youtube request failed")
)

// VideoError ties one of the sentinel kinds to the video it occurred on.
type VideoError struct {
	Kind    error
	VideoID string
	Detail  string
}

func (e *VideoError) Error() string {
	switch e.Kind {
	case ErrTranscriptsDisabled:
		return fmt.Sprintf("transcripts are disabled for video: %s", e.VideoID)
	case ErrNoTranscriptFound:
		return fmt.Sprintf("no transcript found for video: %s", e.VideoID)
	case ErrVideoUnavailable:
		return fmt.Sprintf("video is unavailable: %s", e.VideoID)
	case ErrRequestFailed:
		if e.Detail != "" {
			return fmt.Sprintf("youtube request failed for video %s: %s", e.VideoID, e.Detail)
		}
		return fmt.Sprintf("youtube request failed for video: %s", e.VideoID)
	}
	if e.Detail != "" {
		return fmt.Sprintf("%s: %s: %s", e.Kind.Error(), e.VideoID, e.Detail)
	}
	return fmt.Sprintf("%s: %s", e.Kind.Error(), e.VideoID)
}

func (e *VideoError) Unwrap() error {
	return e.Kind
}

func errDisabled(videoID string) error {
	return &VideoError{Kind: ErrTranscriptsDisabled, VideoID: videoID}
}

func errNotFound(videoID string) error {
	return &VideoError{Kind: ErrNoTranscriptFound, VideoID: videoID}
}

func errUnavailable(videoID string) error {
	return &VideoError{Kind: ErrVideoUnavailable, VideoID: videoID}
}

func errRequestFailed(videoID string, cause error) error {
	detail := ""
	if cause != nil {
		detail = cause.Error()
	}
	return &VideoError{Kind: ErrRequestFailed, VideoID: videoID, Detail: detail}
}
