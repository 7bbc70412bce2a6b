package youtube

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/127.0.0.0 Safari/537.36"
	defaultTimeout   = 15 * time.Second

	defaultWatchBase  = "https://www.youtube.com"
	defaultOEmbedBase = "https://www.youtube.com"
)

// Client talks to the platform services the extractor delegates to: the
// watch page (caption track listing), the timedtext endpoints (transcript
// content), and the oEmbed endpoint (metadata). One extraction performs
// sequential blocking round trips with no internal parallelism; timeout
// enforcement lives here, not in the orchestration layer.
type Client struct {
	http      *http.Client
	userAgent string

	watchBase  string
	oembedBase string

	// OnUpstream, when set, observes each upstream round trip.
	// Wired to Prometheus histograms by the server entry point.
	OnUpstream func(endpoint string, d time.Duration)
}

// NewClient creates a Client with the given upstream timeout.
// A zero timeout falls back to the default.
func NewClient(timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		http:       &http.Client{Timeout: timeout},
		userAgent:  defaultUserAgent,
		watchBase:  defaultWatchBase,
		oembedBase: defaultOEmbedBase,
	}
}

// get performs one upstream round trip and returns the response body.
func (c *Client) get(ctx context.Context, endpoint, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept-Language", "en-US")

	start := time.Now()
	resp, err := c.http.Do(req)
	if c.OnUpstream != nil {
		c.OnUpstream(endpoint, time.Since(start))
	}
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}

// captionsJSON mirrors the "captions" object embedded in the watch page's
// player response.
type captionsJSON struct {
	PlayerCaptionsTracklistRenderer struct {
		CaptionTracks []struct {
			BaseURL      string `json:"baseUrl"`
			LanguageCode string `json:"languageCode"`
			Kind         string `json:"kind"`
			Name         struct {
				SimpleText string `json:"simpleText"`
				Runs       []struct {
					Text string `json:"text"`
				} `json:"runs"`
			} `json:"name"`
		} `json:"captionTracks"`
	} `json:"playerCaptionsTracklistRenderer"`
}

// ListTranscripts fetches the watch page and extracts the caption track
// listing. The listing order is upstream's; it is not re-sorted.
func (c *Client) ListTranscripts(ctx context.Context, videoID string) (*TrackList, error) {
	body, err := c.get(ctx, "watch", c.watchBase+"/watch?v="+videoID)
	if err != nil {
		return nil, errRequestFailed(videoID, err)
	}

	page := string(body)
	_, captionsPart, found := strings.Cut(page, `"captions":`)
	if !found {
		switch {
		case strings.Contains(page, `class="g-recaptcha"`):
			return nil, errRequestFailed(videoID, fmt.Errorf("too many requests, captcha required"))
		case !strings.Contains(page, `"playabilityStatus":`):
			return nil, errUnavailable(videoID)
		default:
			return nil, errDisabled(videoID)
		}
	}

	end := strings.Index(captionsPart, `,"videoDetails`)
	if end < 0 {
		return nil, errDisabled(videoID)
	}

	var captions captionsJSON
	if err := json.Unmarshal([]byte(captionsPart[:end]), &captions); err != nil {
		return nil, errDisabled(videoID)
	}

	list := &TrackList{VideoID: videoID}
	for _, ct := range captions.PlayerCaptionsTracklistRenderer.CaptionTracks {
		name := ct.Name.SimpleText
		if name == "" && len(ct.Name.Runs) > 0 {
			name = ct.Name.Runs[0].Text
		}
		list.Tracks = append(list.Tracks, Track{
			BaseURL:      ct.BaseURL,
			LanguageCode: ct.LanguageCode,
			Name:         name,
			Generated:    ct.Kind == "asr",
		})
	}
	return list, nil
}
