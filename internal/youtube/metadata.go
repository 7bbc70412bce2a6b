package youtube

import (
	"context"
	"encoding/json"
	"log"
	"net/url"
)

// Metadata is the loosely-typed record the oEmbed endpoint returns.
// Channel may be empty when the platform omits it.
type Metadata struct {
	Title   string `json:"title"`
	Channel string `json:"channel_name,omitempty"`
	URL     string `json:"url"`
}

// FetchMetadata looks up title and channel via the oEmbed endpoint. It
// never fails: any upstream error degrades to placeholder metadata with a
// locally constructed watch URL, so a dead metadata service cannot sink an
// extraction.
func (c *Client) FetchMetadata(ctx context.Context, videoID string) Metadata {
	watchURL := WatchURL(videoID)

	body, err := c.get(ctx, "oembed", c.oembedBase+"/oembed?format=json&url="+url.QueryEscape(watchURL))
	if err != nil {
		log.Printf("metadata: lookup failed for %s, using placeholder: %v", videoID, err)
		return Metadata{Title: "Video " + videoID, URL: watchURL}
	}

	var info struct {
		Title      string `json:"title"`
		AuthorName string `json:"author_name"`
	}
	if err := json.Unmarshal(body, &info); err != nil {
		log.Printf("metadata: bad oembed response for %s, using placeholder: %v", videoID, err)
		return Metadata{Title: "Video " + videoID, URL: watchURL}
	}

	title := info.Title
	if title == "" {
		title = "Unknown Title"
	}
	return Metadata{Title: title, Channel: info.AuthorName, URL: watchURL}
}
