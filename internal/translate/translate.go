// Package translate provides the machine-translation collaborator boundary:
// a small interface the chat core depends on, plus an HTTP client for a
// Google-style translate endpoint. The engine itself is a black box: the
// core only ever sees "translated text or the original on failure", so any
// implementation error stays inside this package's callers' degraded path.
package translate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Translator converts text into the target language. Source language is
// auto-detected by the engine. Implementations must be safe for concurrent
// use.
type Translator interface {
	Translate(ctx context.Context, text, targetLang string) (string, error)
}

// Client calls a Google-translate-compatible endpoint
// (translate_a/single with client=gtx), which answers with a nested JSON
// array whose first element carries the translated segments.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient returns a Client against baseURL with a bounded request timeout.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// Translate performs the remote call. It returns an error for any transport,
// status, or decoding problem; callers are expected to fall back to the
// original text.
func (c *Client) Translate(ctx context.Context, text, targetLang string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return text, nil
	}
	if targetLang == "" {
		return "", errors.New("target language is required")
	}

	q := url.Values{}
	q.Set("client", "gtx")
	q.Set("sl", "auto")
	q.Set("tl", targetLang)
	q.Set("dt", "t")
	q.Set("q", text)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return "", err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, io.LimitReader(resp.Body, 4<<10))
		return "", fmt.Errorf("translate endpoint returned %s", resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", err
	}
	return decodeSegments(body)
}

// decodeSegments extracts the translated text from the endpoint's nested
// array response: [[["Hello","Hola",...],["!","!",...]], ...].
func decodeSegments(body []byte) (string, error) {
	var payload []json.RawMessage
	if err := json.Unmarshal(body, &payload); err != nil {
		return "", err
	}
	if len(payload) == 0 {
		return "", errors.New("empty translate response")
	}

	var segments [][]json.RawMessage
	if err := json.Unmarshal(payload[0], &segments); err != nil {
		return "", err
	}

	var b strings.Builder
	for _, seg := range segments {
		if len(seg) == 0 {
			continue
		}
		var piece string
		if err := json.Unmarshal(seg[0], &piece); err != nil {
			continue
		}
		b.WriteString(piece)
	}
	if b.Len() == 0 {
		return "", errors.New("no translated segments in response")
	}
	return b.String(), nil
}
