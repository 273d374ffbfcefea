// Package webhook provides the remote answer service adapter.
//
// The service is a single HTTP endpoint that accepts {"question": "..."}
// and replies with {"answer": "..."}. Some workflow engines double-encode
// the reply as a JSON string, and some return plain text; both are accepted.
package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/custodia-labs/faqdesk/internal/core/domain"
	"github.com/custodia-labs/faqdesk/internal/core/ports/driven"
)

// Ensure Client implements the interface.
var _ driven.Answerer = (*Client)(nil)

// DefaultTimeout bounds a single request when Config.Timeout is zero.
const DefaultTimeout = 60 * time.Second

// maxResponseBytes caps how much of a reply is read.
const maxResponseBytes = 1 << 20

// Config holds configuration for the webhook client.
type Config struct {
	// URL is the webhook endpoint (required).
	URL string

	// Token is sent as a bearer token when set.
	Token string

	// Timeout is the request timeout (default: 60s).
	Timeout time.Duration
}

// Client posts questions to the remote answer service.
type Client struct {
	client *http.Client
	url    string
	token  string
}

// questionRequest is the request body.
type questionRequest struct {
	Question string `json:"question"`
}

// answerResponse is the expected reply body.
type answerResponse struct {
	Answer string `json:"answer"`
}

// NewClient creates a webhook client.
// Returns domain.ErrRemoteNotConfigured if the URL is empty.
func NewClient(cfg Config) (*Client, error) {
	if strings.TrimSpace(cfg.URL) == "" {
		return nil, domain.ErrRemoteNotConfigured
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}

	return &Client{
		client: &http.Client{
			Timeout: cfg.Timeout,
		},
		url:   strings.TrimSpace(cfg.URL),
		token: cfg.Token,
	}, nil
}

// Answer sends question and returns the trimmed answer text.
func (c *Client) Answer(ctx context.Context, question string) (string, error) {
	jsonBody, err := json.Marshal(questionRequest{Question: question})
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(jsonBody))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return "", &domain.TransportError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return "", &domain.TransportError{Err: fmt.Errorf("read response: %w", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &domain.TransportError{
			Status:     resp.StatusCode,
			StatusText: http.StatusText(resp.StatusCode),
			Body:       string(body),
		}
	}

	return DecodeAnswer(body), nil
}

// DecodeAnswer extracts the answer text from a reply body.
//
//   - an object: its "answer" field, or "" when absent
//   - a JSON string: that string decoded again as an object if it is JSON,
//     otherwise the string itself
//   - anything else that is not JSON: the raw body
//
// The result is always trimmed.
func DecodeAnswer(body []byte) string {
	var raw any
	if err := json.Unmarshal(body, &raw); err != nil {
		return strings.TrimSpace(string(body))
	}

	switch v := raw.(type) {
	case string:
		if !json.Valid([]byte(v)) {
			return strings.TrimSpace(v)
		}
		return answerField([]byte(v))
	case map[string]any:
		return answerField(body)
	default:
		return ""
	}
}

func answerField(data []byte) string {
	var resp answerResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return ""
	}
	return strings.TrimSpace(resp.Answer)
}
