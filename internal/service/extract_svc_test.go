package service

import (
	"context"
	"errors"
	"testing"

	"github.com/SsandrockK/youtube-transcript-extractor/internal/youtube"
)

const testVideoID = "dQw4w9WgXcQ"

// fakeSource scripts the transcript-hosting side of an extraction.
type fakeSource struct {
	list      *youtube.TrackList
	listErr   error
	byLang    map[string][]youtube.Snippet
	fetchErr  error
	direct    []youtube.Snippet
	directErr error

	directCalled bool
}

func (f *fakeSource) ListTranscripts(ctx context.Context, videoID string) (*youtube.TrackList, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.list, nil
}

func (f *fakeSource) FetchTrack(ctx context.Context, videoID string, track youtube.Track) ([]youtube.Snippet, error) {
	if f.fetchErr != nil {
		return nil, f.fetchErr
	}
	return f.byLang[track.LanguageCode], nil
}

func (f *fakeSource) FetchDefault(ctx context.Context, videoID string) ([]youtube.Snippet, error) {
	f.directCalled = true
	if f.directErr != nil {
		return nil, f.directErr
	}
	return f.direct, nil
}

// fakeMetadata returns fixed metadata; degraded=true mimics an upstream
// metadata failure (placeholder title, no channel).
type fakeMetadata struct {
	degraded bool
}

func (f *fakeMetadata) FetchMetadata(ctx context.Context, videoID string) youtube.Metadata {
	if f.degraded {
		return youtube.Metadata{Title: "Video " + videoID, URL: youtube.WatchURL(videoID)}
	}
	return youtube.Metadata{Title: "Test Video", Channel: "Test Channel", URL: youtube.WatchURL(videoID)}
}

func newTestService(src *fakeSource, meta *fakeMetadata) *ExtractService {
	return &ExtractService{transcripts: src, metadata: meta}
}

func snippets(text string) []youtube.Snippet {
	return []youtube.Snippet{{Text: text, Start: 0, Duration: 2}}
}

func tracks(ts ...youtube.Track) *youtube.TrackList {
	return &youtube.TrackList{VideoID: testVideoID, Tracks: ts}
}

func TestExtract_PreferredLanguageFound(t *testing.T) {
	src := &fakeSource{
		list: tracks(
			youtube.Track{LanguageCode: "en", Generated: true},
			youtube.Track{LanguageCode: "es"},
		),
		byLang: map[string][]youtube.Snippet{"es": snippets("hola")},
	}
	svc := newTestService(src, &fakeMetadata{})

	v, err := svc.Extract(context.Background(), testVideoID, Options{Languages: []string{"es"}})
	if err != nil {
		t.Fatalf("Extract error: %v", err)
	}
	if v.Language != "es" || v.IsGenerated {
		t.Errorf("language=%q generated=%v, want manual es", v.Language, v.IsGenerated)
	}
	if v.Transcript[0].Text != "hola" {
		t.Errorf("text = %q", v.Transcript[0].Text)
	}
}

func TestExtract_FirstPreferredLanguageWins(t *testing.T) {
	src := &fakeSource{
		list: tracks(
			youtube.Track{LanguageCode: "en"},
			youtube.Track{LanguageCode: "es"},
		),
		byLang: map[string][]youtube.Snippet{
			"en": snippets("hello"),
			"es": snippets("hola"),
		},
	}
	svc := newTestService(src, &fakeMetadata{})

	v, err := svc.Extract(context.Background(), testVideoID, Options{Languages: []string{"es", "en"}})
	if err != nil {
		t.Fatalf("Extract error: %v", err)
	}
	if v.Language != "es" {
		t.Errorf("language = %q, want es (preference order decides, not listing order)", v.Language)
	}
}

func TestExtract_FallsBackToGeneratedEnglish(t *testing.T) {
	src := &fakeSource{
		list: tracks(
			youtube.Track{LanguageCode: "fr"},
			youtube.Track{LanguageCode: "en", Generated: true},
		),
		byLang: map[string][]youtube.Snippet{"en": snippets("auto caption")},
	}
	svc := newTestService(src, &fakeMetadata{})

	v, err := svc.Extract(context.Background(), testVideoID, Options{Languages: []string{"de"}})
	if err != nil {
		t.Fatalf("Extract error: %v", err)
	}
	if v.Language != "en" || !v.IsGenerated {
		t.Errorf("language=%q generated=%v, want generated en fallback", v.Language, v.IsGenerated)
	}
}

func TestExtract_NoPreferredNoGeneratedFallback(t *testing.T) {
	src := &fakeSource{
		list: tracks(youtube.Track{LanguageCode: "fr"}),
	}
	svc := newTestService(src, &fakeMetadata{})

	_, err := svc.Extract(context.Background(), testVideoID, Options{Languages: []string{"de"}})
	if !errors.Is(err, youtube.ErrNoTranscriptFound) {
		t.Errorf("error = %v, want ErrNoTranscriptFound", err)
	}
}

func TestExtract_EmptyLanguagesUsesFirstListed(t *testing.T) {
	src := &fakeSource{
		list: tracks(
			youtube.Track{LanguageCode: "de", Generated: true},
			youtube.Track{LanguageCode: "en"},
		),
		byLang: map[string][]youtube.Snippet{"de": snippets("hallo")},
	}
	svc := newTestService(src, &fakeMetadata{})

	v, err := svc.Extract(context.Background(), testVideoID, Options{})
	if err != nil {
		t.Fatalf("Extract error: %v", err)
	}
	if v.Language != "de" || !v.IsGenerated {
		t.Errorf("language=%q generated=%v, want first listed track", v.Language, v.IsGenerated)
	}
}

func TestExtract_EmptyListingIsNotFound(t *testing.T) {
	src := &fakeSource{list: tracks()}
	svc := newTestService(src, &fakeMetadata{})

	_, err := svc.Extract(context.Background(), testVideoID, Options{})
	if !errors.Is(err, youtube.ErrNoTranscriptFound) {
		t.Errorf("error = %v, want ErrNoTranscriptFound", err)
	}
	if src.directCalled {
		t.Error("direct fetch must not run when the listing succeeded with zero tracks")
	}
}

func TestExtract_ListingFailureFallsBackToDirectFetch(t *testing.T) {
	src := &fakeSource{
		listErr: &youtube.VideoError{Kind: youtube.ErrRequestFailed, VideoID: testVideoID},
		direct:  snippets("direct fetch"),
	}
	svc := newTestService(src, &fakeMetadata{})

	v, err := svc.Extract(context.Background(), testVideoID, Options{Languages: []string{"en"}})
	if err != nil {
		t.Fatalf("Extract error: %v", err)
	}
	// The listing that carries language and generated-status is gone on
	// this path, so both are reported as unknown/true.
	if v.Language != "unknown" {
		t.Errorf("language = %q, want unknown", v.Language)
	}
	if !v.IsGenerated {
		t.Error("generated flag should be true on the direct-fetch path")
	}
	if !src.directCalled {
		t.Error("direct fetch was not attempted")
	}
}

func TestExtract_ListingErrorSurfacesWhenDirectFetchFails(t *testing.T) {
	src := &fakeSource{
		listErr:   &youtube.VideoError{Kind: youtube.ErrTranscriptsDisabled, VideoID: testVideoID},
		directErr: &youtube.VideoError{Kind: youtube.ErrRequestFailed, VideoID: testVideoID},
	}
	svc := newTestService(src, &fakeMetadata{})

	_, err := svc.Extract(context.Background(), testVideoID, Options{Languages: []string{"en"}})
	if !errors.Is(err, youtube.ErrTranscriptsDisabled) {
		t.Errorf("error = %v, want the listing's ErrTranscriptsDisabled", err)
	}
}

func TestExtract_FetchErrorIsTerminal(t *testing.T) {
	src := &fakeSource{
		list:     tracks(youtube.Track{LanguageCode: "en"}),
		fetchErr: &youtube.VideoError{Kind: youtube.ErrRequestFailed, VideoID: testVideoID},
	}
	svc := newTestService(src, &fakeMetadata{})

	_, err := svc.Extract(context.Background(), testVideoID, Options{Languages: []string{"en"}})
	if !errors.Is(err, youtube.ErrRequestFailed) {
		t.Errorf("error = %v, want ErrRequestFailed", err)
	}
}

func TestExtract_InvalidInput(t *testing.T) {
	src := &fakeSource{}
	svc := newTestService(src, &fakeMetadata{})

	_, err := svc.Extract(context.Background(), "not a video", Options{})
	if !errors.Is(err, youtube.ErrInvalidInput) {
		t.Errorf("error = %v, want ErrInvalidInput", err)
	}
	if src.directCalled {
		t.Error("no upstream call should happen for unresolvable input")
	}
}

func TestExtract_MetadataFailureIsNonFatal(t *testing.T) {
	// Metadata and transcript failure paths are independent: a degraded
	// metadata lookup still yields a successful extraction with
	// placeholder metadata.
	src := &fakeSource{
		list:   tracks(youtube.Track{LanguageCode: "en"}),
		byLang: map[string][]youtube.Snippet{"en": snippets("hello")},
	}
	svc := newTestService(src, &fakeMetadata{degraded: true})

	v, err := svc.Extract(context.Background(), testVideoID, Options{Languages: []string{"en"}})
	if err != nil {
		t.Fatalf("Extract error: %v", err)
	}
	if v.VideoTitle != "Video "+testVideoID {
		t.Errorf("title = %q, want placeholder", v.VideoTitle)
	}
	if v.ChannelName != "" {
		t.Errorf("channel = %q, want empty", v.ChannelName)
	}
	if v.VideoURL != youtube.WatchURL(testVideoID) {
		t.Errorf("url = %q, want locally constructed watch URL", v.VideoURL)
	}
}

func TestExtract_TranscriptFailureWithHealthyMetadata(t *testing.T) {
	src := &fakeSource{list: tracks()}
	svc := newTestService(src, &fakeMetadata{})

	_, err := svc.Extract(context.Background(), testVideoID, Options{})
	if !errors.Is(err, youtube.ErrNoTranscriptFound) {
		t.Errorf("error = %v, want ErrNoTranscriptFound despite healthy metadata", err)
	}
}

func TestExtract_EmptySnippetsIsNotFound(t *testing.T) {
	src := &fakeSource{
		list:   tracks(youtube.Track{LanguageCode: "en"}),
		byLang: map[string][]youtube.Snippet{},
	}
	svc := newTestService(src, &fakeMetadata{})

	_, err := svc.Extract(context.Background(), testVideoID, Options{Languages: []string{"en"}})
	if !errors.Is(err, youtube.ErrNoTranscriptFound) {
		t.Errorf("error = %v, want ErrNoTranscriptFound for an empty transcript", err)
	}
}

func TestNormalizeSnippets(t *testing.T) {
	raw := []youtube.Snippet{
		{Text: "hello\nworld  ", Start: 0, Duration: 1},
		{Text: "  already clean", Start: 1, Duration: 1},
	}

	entries := normalizeSnippets(raw, false)
	if entries[0].Text != "hello world" {
		t.Errorf("cleaned text = %q, want %q", entries[0].Text, "hello world")
	}
	if entries[1].Text != "already clean" {
		t.Errorf("cleaned text = %q, want %q", entries[1].Text, "already clean")
	}

	preserved := normalizeSnippets(raw, true)
	if preserved[0].Text != "hello\nworld  " {
		t.Errorf("preserved text = %q, want raw text untouched", preserved[0].Text)
	}
}

func TestNormalizeSnippets_OneToOne(t *testing.T) {
	raw := []youtube.Snippet{
		{Text: "a", Start: 0, Duration: 1},
		{Text: "", Start: 1, Duration: 1},
		{Text: "c", Start: 2, Duration: 1},
	}
	entries := normalizeSnippets(raw, false)
	if len(entries) != len(raw) {
		t.Fatalf("got %d entries, want %d (no dropping or merging)", len(entries), len(raw))
	}
	for i := range raw {
		if entries[i].Start != raw[i].Start || entries[i].Duration != raw[i].Duration {
			t.Errorf("entry %d timing changed: %+v", i, entries[i])
		}
	}
}
