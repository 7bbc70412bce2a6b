package youtube

import (
	"fmt"
	"regexp"
	"strings"
)

// videoIDPatterns are tried in priority order; the first match wins.
// YouTube video IDs are exactly 11 URL-safe characters.
var videoIDPatterns = []*regexp.Regexp{
	regexp.MustCompile(`youtube\.com/watch\?v=([A-Za-z0-9_-]{11})`),
	regexp.MustCompile(`youtu\.be/([A-Za-z0-9_-]{11})`),
	regexp.MustCompile(`youtube\.com/embed/([A-Za-z0-9_-]{11})`),
	regexp.MustCompile(`youtube\.com/v/([A-Za-z0-9_-]{11})`),
	regexp.MustCompile(`youtube\.com/.*[?&]v=([A-Za-z0-9_-]{11})`),
}

var bareVideoIDRe = regexp.MustCompile(`^[A-Za-z0-9_-]{11}$`)

// ResolveVideoID extracts the canonical 11-character video ID from a watch,
// short, embed, or legacy /v/ URL, or passes a bare ID through unchanged.
// Purely textual, no network access.
func ResolveVideoID(input string) (string, error) {
	input = strings.TrimSpace(input)
	for _, re := range videoIDPatterns {
		if m := re.FindStringSubmatch(input); m != nil {
			return m[1], nil
		}
	}
	if bareVideoIDRe.MatchString(input) {
		return input, nil
	}
	return "", fmt.Errorf("%w: could not extract video ID from %q", ErrInvalidInput, input)
}

// WatchURL returns the canonical watch URL for a video ID.
func WatchURL(videoID string) string {
	return "https://www.youtube.com/watch?v=" + videoID
}
