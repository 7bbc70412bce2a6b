package youtube

import (
	"context"
	"encoding/json"
	"encoding/xml"
	"html"
	"strings"
)

// Snippet is one raw timed text segment as returned by the timedtext
// endpoint. Text is untouched wire text; cleaning happens during
// normalization, not here.
type Snippet struct {
	Text     string
	Start    float64
	Duration float64
}

// FetchTrack downloads and decodes the transcript behind a track handle.
// The endpoint serves two wire shapes depending on the track URL: legacy
// XML elements and json3 event maps. Both decode into the same snippets.
func (c *Client) FetchTrack(ctx context.Context, videoID string, track Track) ([]Snippet, error) {
	body, err := c.get(ctx, "timedtext", track.BaseURL)
	if err != nil {
		return nil, errRequestFailed(videoID, err)
	}
	return decodeSnippets(body)
}

// FetchDefault is the last-resort path used when the track listing itself
// fails: a direct timedtext fetch with no language negotiation. The caller
// cannot learn the track's language or generated flag on this path.
func (c *Client) FetchDefault(ctx context.Context, videoID string) ([]Snippet, error) {
	body, err := c.get(ctx, "timedtext", c.watchBase+"/api/timedtext?fmt=json3&lang=en&v="+videoID)
	if err != nil {
		return nil, errRequestFailed(videoID, err)
	}
	snippets, err := decodeSnippets(body)
	if err != nil {
		return nil, err
	}
	if len(snippets) == 0 {
		return nil, errNotFound(videoID)
	}
	return snippets, nil
}

func decodeSnippets(body []byte) ([]Snippet, error) {
	trimmed := strings.TrimSpace(string(body))
	switch {
	case trimmed == "":
		// The endpoint answers 200 with an empty body when the
		// requested track does not exist.
		return nil, nil
	case strings.HasPrefix(trimmed, "{"):
		return snippetsFromJSON(body)
	default:
		return snippetsFromXML(body)
	}
}

// timedTextXML mirrors the legacy transcript document:
// <transcript><text start="1.3" dur="2.0">hello</text></transcript>
type timedTextXML struct {
	XMLName xml.Name `xml:"transcript"`
	Texts   []struct {
		Start float64 `xml:"start,attr"`
		Dur   float64 `xml:"dur,attr"`
		Body  string  `xml:",chardata"`
	} `xml:"text"`
}

func snippetsFromXML(body []byte) ([]Snippet, error) {
	var doc timedTextXML
	if err := xml.Unmarshal(body, &doc); err != nil {
		return nil, err
	}
	snippets := make([]Snippet, 0, len(doc.Texts))
	for _, t := range doc.Texts {
		// The wire text is double-escaped: the XML decoder leaves
		// entities like &#39; behind.
		snippets = append(snippets, Snippet{
			Text:     html.UnescapeString(t.Body),
			Start:    t.Start,
			Duration: t.Dur,
		})
	}
	return snippets, nil
}

// snippetsFromJSON decodes the json3 shape. Events arrive as loose
// key-value maps, so each one goes through a single field-lookup decoder
// rather than a rigid struct.
func snippetsFromJSON(body []byte) ([]Snippet, error) {
	var doc map[string]any
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, err
	}
	events, _ := doc["events"].([]any)
	var snippets []Snippet
	for _, ev := range events {
		record, ok := ev.(map[string]any)
		if !ok {
			continue
		}
		if sn, ok := snippetFromRecord(record); ok {
			snippets = append(snippets, sn)
		}
	}
	return snippets, nil
}

// snippetFromRecord reads text/start/duration out of one loose event map.
// Events without text segments (style headers, window definitions) are
// skipped; everything else maps to exactly one snippet.
func snippetFromRecord(record map[string]any) (Snippet, bool) {
	segs, ok := record["segs"].([]any)
	if !ok || len(segs) == 0 {
		return Snippet{}, false
	}

	var b strings.Builder
	for _, seg := range segs {
		m, ok := seg.(map[string]any)
		if !ok {
			continue
		}
		if utf8, ok := m["utf8"].(string); ok {
			b.WriteString(utf8)
		}
	}
	if b.Len() == 0 {
		return Snippet{}, false
	}

	startMs, _ := record["tStartMs"].(float64)
	durMs, _ := record["dDurationMs"].(float64)
	return Snippet{
		Text:     b.String(),
		Start:    startMs / 1000,
		Duration: durMs / 1000,
	}, true
}
