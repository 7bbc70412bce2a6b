package model

import (
	"iter"
	"strings"
)

// DefaultChunkSeconds is the target span of a retrieval chunk.
const DefaultChunkSeconds = 30

// Chunk groups consecutive transcript entries spanning roughly a target
// duration. Chunks are derived views: they are recomputed on demand and
// never stored on the VideoTranscript.
type Chunk struct {
	VideoID          string            `json:"video_id"`
	VideoTitle       string            `json:"video_title"`
	VideoURL         string            `json:"video_url"`
	StartTime        float64           `json:"start_time"`
	Timestamp        string            `json:"timestamp"`
	Text             string            `json:"text"`
	URLWithTimestamp string            `json:"url_with_timestamp"`
	Entries          []TranscriptEntry `json:"-"`
}

// Chunks returns a lazy, restartable sequence of chunks. A chunk stays open
// while entry.Start - chunkStart < targetSeconds; the entry that crosses the
// threshold is included before the chunk closes. The trailing partial chunk
// is emitted even when it is under the target duration. Concatenating all
// chunks' entries in order reproduces the transcript exactly.
func (v *VideoTranscript) Chunks(targetSeconds float64) iter.Seq[Chunk] {
	if targetSeconds <= 0 {
		targetSeconds = DefaultChunkSeconds
	}
	return func(yield func(Chunk) bool) {
		var open []TranscriptEntry
		var chunkStart float64
		for _, e := range v.Transcript {
			if len(open) == 0 {
				chunkStart = e.Start
			}
			open = append(open, e)
			if e.Start-chunkStart >= targetSeconds {
				if !yield(v.newChunk(chunkStart, open)) {
					return
				}
				open = nil
			}
		}
		if len(open) > 0 {
			yield(v.newChunk(chunkStart, open))
		}
	}
}

// AllChunks collects the chunk sequence into a slice.
func (v *VideoTranscript) AllChunks(targetSeconds float64) []Chunk {
	var chunks []Chunk
	for c := range v.Chunks(targetSeconds) {
		chunks = append(chunks, c)
	}
	return chunks
}

func (v *VideoTranscript) newChunk(start float64, entries []TranscriptEntry) Chunk {
	parts := make([]string, len(entries))
	for i, e := range entries {
		parts[i] = e.Text
	}
	return Chunk{
		VideoID:          v.VideoID,
		VideoTitle:       v.VideoTitle,
		VideoURL:         v.VideoURL,
		StartTime:        start,
		Timestamp:        entries[0].Timestamp(),
		Text:             strings.Join(parts, " "),
		URLWithTimestamp: v.URLWithTimestamp(start),
		Entries:          entries,
	}
}
