package audio

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

// DefaultTimeout bounds a single conversation audio download.
const DefaultTimeout = 30 * time.Second

// maxAudioBytes caps a single download; recorded conversations are a few
// megabytes at most.
const maxAudioBytes = 64 << 20

// Client fetches recorded conversation audio from the platform's audio
// service. It implements replay.AudioFetcher.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a client for the audio service at baseURL.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: DefaultTimeout},
	}
}

// NewClientFromEnv builds a client from the REPLAYZ_AUDIO_URL environment
// variable. Returns an error when unset; the replay player then runs without
// audio.
func NewClientFromEnv() (*Client, error) {
	base := os.Getenv("REPLAYZ_AUDIO_URL")
	if base == "" {
		return nil, fmt.Errorf("REPLAYZ_AUDIO_URL not set")
	}
	return NewClient(base), nil
}

// FetchConversationAudio downloads the audio bytes for one conversation.
// Non-2xx responses are returned as errors; the caller degrades to silent
// replay.
func (c *Client) FetchConversationAudio(ctx context.Context, conversationID string) ([]byte, error) {
	url := fmt.Sprintf("%s/conversation-audio/%s", c.baseURL, conversationID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build audio request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch conversation audio: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("audio service returned status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxAudioBytes))
	if err != nil {
		return nil, fmt.Errorf("read audio body: %w", err)
	}
	return data, nil
}
