package service

import (
	"context"
	"strings"

	"github.com/SsandrockK/youtube-transcript-extractor/internal/model"
	"github.com/SsandrockK/youtube-transcript-extractor/internal/youtube"
)

// fallbackLanguage is tried as an auto-generated track when none of the
// preferred languages are available.
const fallbackLanguage = "en"

// TranscriptSource lists and fetches transcripts for a video.
// Implemented by *youtube.Client.
type TranscriptSource interface {
	ListTranscripts(ctx context.Context, videoID string) (*youtube.TrackList, error)
	FetchTrack(ctx context.Context, videoID string, track youtube.Track) ([]youtube.Snippet, error)
	FetchDefault(ctx context.Context, videoID string) ([]youtube.Snippet, error)
}

// MetadataSource resolves video title and channel. Never fails; degraded
// lookups return placeholder metadata.
type MetadataSource interface {
	FetchMetadata(ctx context.Context, videoID string) youtube.Metadata
}

// ExtractService orchestrates one extraction: resolve the ID, fetch
// metadata and transcript, normalize, assemble. Stateless; each call is
// independent and idempotent with respect to upstream data.
type ExtractService struct {
	transcripts TranscriptSource
	metadata    MetadataSource
}

func NewExtractService(yt *youtube.Client) *ExtractService {
	return &ExtractService{transcripts: yt, metadata: yt}
}

// Options controls one extraction.
type Options struct {
	// Languages is the preference-ordered list of language codes. Empty
	// means "whatever track the platform lists first".
	Languages []string
	// PreserveFormatting keeps raw caption text verbatim. The default
	// (false) replaces newlines with spaces and trims, which suits RAG
	// indexing better.
	PreserveFormatting bool
}

// Extract resolves the input to a video ID and produces the full
// transcript result. Metadata failures degrade to placeholders; transcript
// failures surface as youtube.VideoError values.
func (s *ExtractService) Extract(ctx context.Context, input string, opts Options) (*model.VideoTranscript, error) {
	videoID, err := youtube.ResolveVideoID(input)
	if err != nil {
		return nil, err
	}

	meta := s.metadata.FetchMetadata(ctx, videoID)

	res, err := s.fetchTranscript(ctx, videoID, opts.Languages)
	if err != nil {
		return nil, err
	}

	entries := normalizeSnippets(res.snippets, opts.PreserveFormatting)
	if len(entries) == 0 {
		// Zero entries is treated as not-found, never as a valid
		// empty result.
		return nil, &youtube.VideoError{Kind: youtube.ErrNoTranscriptFound, VideoID: videoID}
	}

	return &model.VideoTranscript{
		VideoID:     videoID,
		VideoTitle:  meta.Title,
		VideoURL:    meta.URL,
		ChannelName: meta.Channel,
		Language:    res.language,
		IsGenerated: res.generated,
		Transcript:  entries,
	}, nil
}

// fetched is the outcome of one successful transcript attempt.
type fetched struct {
	snippets  []youtube.Snippet
	language  string
	generated bool
}

// attempt tries one strategy. ok=false defers to the next attempt; a
// non-nil error is terminal.
type attempt func() (fetched, bool, error)

// fetchTranscript runs the language-selection cascade as an ordered list
// of attempts, first success wins:
//
//  1. preferred languages, in order, against the track listing
//  2. auto-generated fallback-language track
//  3. (no preference) first listed track, upstream order
//  4. (listing failed) direct fetch with no negotiation; language is
//     reported as "unknown" and the generated flag as true, since the
//     listing that carries both is unavailable on this path
func (s *ExtractService) fetchTranscript(ctx context.Context, videoID string, languages []string) (fetched, error) {
	list, listErr := s.transcripts.ListTranscripts(ctx, videoID)

	var attempts []attempt
	switch {
	case listErr != nil:
		attempts = append(attempts, func() (fetched, bool, error) {
			snippets, err := s.transcripts.FetchDefault(ctx, videoID)
			if err != nil {
				// The listing error is the more precise diagnosis
				// (disabled vs. unavailable vs. transient).
				return fetched{}, false, listErr
			}
			return fetched{snippets: snippets, language: "unknown", generated: true}, true, nil
		})
	case len(languages) > 0:
		attempts = append(attempts,
			func() (fetched, bool, error) {
				for _, lang := range languages {
					track, found := list.Find(lang)
					if !found {
						continue
					}
					snippets, err := s.transcripts.FetchTrack(ctx, videoID, track)
					if err != nil {
						return fetched{}, false, err
					}
					return fetched{snippets: snippets, language: lang, generated: track.Generated}, true, nil
				}
				return fetched{}, false, nil
			},
			func() (fetched, bool, error) {
				track, found := list.FindGenerated(fallbackLanguage)
				if !found {
					return fetched{}, false, nil
				}
				snippets, err := s.transcripts.FetchTrack(ctx, videoID, track)
				if err != nil {
					return fetched{}, false, err
				}
				return fetched{snippets: snippets, language: track.LanguageCode, generated: track.Generated}, true, nil
			},
		)
	default:
		attempts = append(attempts, func() (fetched, bool, error) {
			track, found := list.First()
			if !found {
				return fetched{}, false, nil
			}
			snippets, err := s.transcripts.FetchTrack(ctx, videoID, track)
			if err != nil {
				return fetched{}, false, err
			}
			return fetched{snippets: snippets, language: track.LanguageCode, generated: track.Generated}, true, nil
		})
	}

	for _, try := range attempts {
		res, ok, err := try()
		if err != nil {
			return fetched{}, err
		}
		if ok {
			return res, nil
		}
	}
	return fetched{}, &youtube.VideoError{Kind: youtube.ErrNoTranscriptFound, VideoID: videoID}
}

// normalizeSnippets converts raw snippets into canonical entries. One
// snippet maps to exactly one entry; nothing is dropped, merged, or
// reordered.
func normalizeSnippets(snippets []youtube.Snippet, preserveFormatting bool) []model.TranscriptEntry {
	entries := make([]model.TranscriptEntry, 0, len(snippets))
	for _, sn := range snippets {
		text := sn.Text
		if !preserveFormatting {
			text = strings.TrimSpace(strings.ReplaceAll(text, "\n", " "))
		}
		entries = append(entries, model.TranscriptEntry{
			Text:     text,
			Start:    sn.Start,
			Duration: sn.Duration,
		})
	}
	return entries
}
