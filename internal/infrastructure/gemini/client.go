// Package gemini is the outbound adapter for the hosted text-generation
// endpoint (Google generative language API).
package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"

	"github.com/richchoi/hotel-system/internal/core/service"
)

const defaultBase = "https://generativelanguage.googleapis.com/v1beta"

// Client calls the generateContent endpoint. One attempt per message, no
// retry: the concierge degrades to a fixed apology on any failure.
type Client struct {
	base  string
	model string
	key   string
	hc    *http.Client
	rl    *rate.Limiter
}

// New builds a Client. An empty key is allowed — every call then fails with
// service.ErrNoCredential so the concierge can answer with its offline
// apology instead of erroring at startup. timeout bounds the whole request;
// rps caps outbound calls client-side.
func New(model, key string, timeout time.Duration, rps int) *Client {
	if model == "" {
		model = "gemini-3-flash-preview"
	}
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	if rps <= 0 {
		rps = 2
	}
	return &Client{
		base:  defaultBase,
		model: model,
		key:   key,
		hc:    &http.Client{Timeout: timeout},
		rl:    rate.NewLimiter(rate.Limit(rps), rps),
	}
}

// WithBaseURL overrides the endpoint base, used by tests.
func (c *Client) WithBaseURL(base string) *Client {
	c.base = base
	return c
}

type generateRequest struct {
	SystemInstruction *content  `json:"system_instruction,omitempty"`
	Contents          []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

// GenerateContent sends the guest message under the given system prompt and
// returns the first candidate's text.
func (c *Client) GenerateContent(ctx context.Context, systemPrompt, message string) (string, error) {
	if c.key == "" {
		return "", service.ErrNoCredential
	}
	if err := c.rl.Wait(ctx); err != nil {
		return "", err
	}

	body, err := json.Marshal(generateRequest{
		SystemInstruction: &content{Parts: []part{{Text: systemPrompt}}},
		Contents:          []content{{Parts: []part{{Text: message}}}},
	})
	if err != nil {
		return "", err
	}

	endpoint := fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.base, c.model, url.QueryEscape(c.key))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "richchoi-hotel/1.0")

	resp, err := c.hc.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		return "", err
	}
	defer func() {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 1<<20))
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("gemini: unexpected status %d", resp.StatusCode)
	}

	var out generateResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, 4<<20)).Decode(&out); err != nil {
		return "", fmt.Errorf("gemini: decode response: %w", err)
	}
	if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 {
		return "", nil
	}
	return out.Candidates[0].Content.Parts[0].Text, nil
}
