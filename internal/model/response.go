package model

// EntryResponse is one transcript entry as rendered in the API response,
// with a display timestamp and a deep link back into the video.
type EntryResponse struct {
	Timestamp        string  `json:"timestamp"`
	StartSeconds     float64 `json:"start_seconds"`
	Duration         float64 `json:"duration"`
	Text             string  `json:"text"`
	URLWithTimestamp string  `json:"url_with_timestamp"`
}

// ExtractResponse is the API response for a successful extraction.
// FullJSON carries the canonical VideoTranscript serialization so callers
// can persist the raw result as-is.
type ExtractResponse struct {
	Success      bool             `json:"success"`
	VideoID      string           `json:"video_id"`
	VideoTitle   string           `json:"video_title"`
	VideoURL     string           `json:"video_url"`
	ChannelName  string           `json:"channel_name,omitempty"`
	Language     string           `json:"language"`
	IsGenerated  bool             `json:"is_generated"`
	TotalEntries int              `json:"total_entries"`
	Transcript   []EntryResponse  `json:"transcript"`
	Chunks       []Chunk          `json:"chunks,omitempty"`
	FullJSON     *VideoTranscript `json:"full_json"`
}

// NewExtractResponse flattens a VideoTranscript into the API response shape.
// chunkSeconds > 0 additionally includes time-bucketed chunks.
func NewExtractResponse(v *VideoTranscript, chunkSeconds float64) ExtractResponse {
	entries := make([]EntryResponse, len(v.Transcript))
	for i, e := range v.Transcript {
		entries[i] = EntryResponse{
			Timestamp:        e.Timestamp(),
			StartSeconds:     e.Start,
			Duration:         e.Duration,
			Text:             e.Text,
			URLWithTimestamp: v.URLWithTimestamp(e.Start),
		}
	}

	resp := ExtractResponse{
		Success:      true,
		VideoID:      v.VideoID,
		VideoTitle:   v.VideoTitle,
		VideoURL:     v.VideoURL,
		ChannelName:  v.ChannelName,
		Language:     v.Language,
		IsGenerated:  v.IsGenerated,
		TotalEntries: len(v.Transcript),
		Transcript:   entries,
		FullJSON:     v,
	}
	if chunkSeconds > 0 {
		resp.Chunks = v.AllChunks(chunkSeconds)
	}
	return resp
}
