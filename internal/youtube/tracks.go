package youtube

// Track is one fetchable transcript handle from the caption track listing.
type Track struct {
	BaseURL      string
	LanguageCode string
	Name         string
	Generated    bool
}

// TrackList is the set of transcript handles available for one video,
// in the order the platform returned them.
type TrackList struct {
	VideoID string
	Tracks  []Track
}

// Find returns the first track whose language code exactly matches one of
// the given codes, scanning codes in preference order.
func (l *TrackList) Find(codes ...string) (Track, bool) {
	for _, code := range codes {
		for _, t := range l.Tracks {
			if t.LanguageCode == code {
				return t, true
			}
		}
	}
	return Track{}, false
}

// FindGenerated is like Find but only considers auto-generated tracks.
func (l *TrackList) FindGenerated(codes ...string) (Track, bool) {
	for _, code := range codes {
		for _, t := range l.Tracks {
			if t.Generated && t.LanguageCode == code {
				return t, true
			}
		}
	}
	return Track{}, false
}

// First returns the first listed track, if any.
func (l *TrackList) First() (Track, bool) {
	if len(l.Tracks) == 0 {
		return Track{}, false
	}
	return l.Tracks[0], true
}
