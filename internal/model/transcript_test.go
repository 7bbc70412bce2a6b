package model

import (
	"regexp"
	"testing"
)

func TestFormatTimestamp(t *testing.T) {
	tests := []struct {
		name  string
		start float64
		want  string
	}{
		{"zero", 0, "00:00"},
		{"seconds only", 5, "00:05"},
		{"minute and seconds", 65, "01:05"},
		{"fraction truncated", 59.9, "00:59"},
		{"last second before hour", 3599, "59:59"},
		{"exactly one hour", 3600, "01:00:00"},
		{"hour minute second", 3661, "01:01:01"},
		{"double digit hours", 36125, "10:02:05"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatTimestamp(tt.start); got != tt.want {
				t.Errorf("FormatTimestamp(%v) = %q, want %q", tt.start, got, tt.want)
			}
		})
	}
}

func TestFormatTimestamp_Shape(t *testing.T) {
	// The rendered string always matches ^(\d{2}:)?\d{2}:\d{2}$ and the
	// hour segment only appears from 3600s on.
	shape := regexp.MustCompile(`^(\d{2}:)?\d{2}:\d{2}$`)
	for _, start := range []float64{0, 1, 59.5, 60, 3599.99, 3600, 86399} {
		got := FormatTimestamp(start)
		if !shape.MatchString(got) {
			t.Errorf("FormatTimestamp(%v) = %q, bad shape", start, got)
		}
		hasHours := len(got) > 5
		if hasHours != (start >= 3600) {
			t.Errorf("FormatTimestamp(%v) = %q, hour segment mismatch", start, got)
		}
	}
}

func testTranscript() *VideoTranscript {
	return &VideoTranscript{
		VideoID:     "dQw4w9WgXcQ",
		VideoTitle:  "Test Video",
		VideoURL:    "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
		ChannelName: "Test Channel",
		Language:    "en",
		Transcript: []TranscriptEntry{
			{Text: "never gonna", Start: 0, Duration: 2},
			{Text: "give you up", Start: 2.5, Duration: 2},
			{Text: "never gonna let you down", Start: 65.2, Duration: 3},
		},
	}
}

func TestFullText(t *testing.T) {
	got := testTranscript().FullText()
	want := "never gonna give you up never gonna let you down"
	if got != want {
		t.Errorf("FullText = %q, want %q", got, want)
	}
}

func TestTimestampedText(t *testing.T) {
	got := testTranscript().TimestampedText()
	want := "[00:00] never gonna\n[00:02] give you up\n[01:05] never gonna let you down"
	if got != want {
		t.Errorf("TimestampedText = %q, want %q", got, want)
	}
}

func TestURLWithTimestamp(t *testing.T) {
	v := testTranscript()
	// Fractional offsets are floored into the &t= parameter.
	got := v.URLWithTimestamp(65.9)
	want := "https://www.youtube.com/watch?v=dQw4w9WgXcQ&t=65s"
	if got != want {
		t.Errorf("URLWithTimestamp = %q, want %q", got, want)
	}
}

func TestFullText_Empty(t *testing.T) {
	v := &VideoTranscript{}
	if got := v.FullText(); got != "" {
		t.Errorf("FullText on empty transcript = %q, want empty", got)
	}
	if got := v.TimestampedText(); got != "" {
		t.Errorf("TimestampedText on empty transcript = %q, want empty", got)
	}
}
