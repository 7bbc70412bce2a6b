package model

import (
	"fmt"
	"strings"
)

// TranscriptEntry is a single timestamped caption segment.
type TranscriptEntry struct {
	Text     string  `json:"text"`
	Start    float64 `json:"start"`
	Duration float64 `json:"duration"`
}

// Timestamp returns the entry's start offset formatted for display.
func (e TranscriptEntry) Timestamp() string {
	return FormatTimestamp(e.Start)
}

// FormatTimestamp renders a start offset in seconds as MM:SS, or HH:MM:SS
// when the offset is an hour or more. Fractional seconds are truncated.
func FormatTimestamp(start float64) string {
	total := int(start)
	hours := total / 3600
	minutes := (total % 3600) / 60
	seconds := total % 60
	if hours > 0 {
		return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
	}
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}

// VideoTranscript is the complete extraction result for one video.
// It is constructed once per extraction and never mutated afterwards.
type VideoTranscript struct {
	VideoID     string            `json:"video_id"`
	VideoTitle  string            `json:"video_title"`
	VideoURL    string            `json:"video_url"`
	ChannelName string            `json:"channel_name,omitempty"`
	Language    string            `json:"language"`
	IsGenerated bool              `json:"is_generated"`
	Transcript  []TranscriptEntry `json:"transcript"`
}

// FullText returns the complete transcript as plain text, entries joined
// with single spaces.
func (v *VideoTranscript) FullText() string {
	parts := make([]string, len(v.Transcript))
	for i, e := range v.Transcript {
		parts[i] = e.Text
	}
	return strings.Join(parts, " ")
}

// TimestampedText returns the transcript as "[MM:SS] text" lines.
func (v *VideoTranscript) TimestampedText() string {
	var b strings.Builder
	for i, e := range v.Transcript {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString("[")
		b.WriteString(e.Timestamp())
		b.WriteString("] ")
		b.WriteString(e.Text)
	}
	return b.String()
}

// URLWithTimestamp returns a deep link into the video at the given offset,
// e.g. https://www.youtube.com/watch?v=ID&t=42s.
func (v *VideoTranscript) URLWithTimestamp(start float64) string {
	return fmt.Sprintf("%s&t=%ds", v.VideoURL, int(start))
}
