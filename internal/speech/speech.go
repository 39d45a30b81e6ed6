// Package speech provides the text-to-speech collaborator boundary: the
// Synthesizer interface consumed by the chat core and an HTTP client for a
// gTTS-style endpoint that answers with raw MP3 bytes.
package speech

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Synthesizer renders text as speech audio in the given language.
// Implementations must be safe for concurrent use.
type Synthesizer interface {
	Synthesize(ctx context.Context, text, lang string) ([]byte, error)
}

// maxAudioBytes caps a single synthesized artifact (chat lines are short;
// anything bigger indicates a misbehaving endpoint).
const maxAudioBytes = 5 << 20

// Client calls a translate_tts-compatible endpoint that returns audio/mpeg
// for (text, language) query parameters.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient returns a Client against baseURL with a bounded request timeout.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// Synthesize performs the remote call and returns the audio bytes. Any
// transport or status problem is returned as an error; callers degrade to
// "no audio".
func (c *Client) Synthesize(ctx context.Context, text, lang string) ([]byte, error) {
	if strings.TrimSpace(text) == "" {
		return nil, errors.New("text is empty")
	}
	if lang == "" {
		return nil, errors.New("language is required")
	}

	q := url.Values{}
	q.Set("ie", "UTF-8")
	q.Set("client", "tw-ob")
	q.Set("tl", lang)
	q.Set("q", text)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, io.LimitReader(resp.Body, 4<<10))
		return nil, fmt.Errorf("tts endpoint returned %s", resp.Status)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxAudioBytes))
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, errors.New("tts endpoint returned no audio")
	}
	return data, nil
}
