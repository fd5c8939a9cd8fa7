// Package qa provides the HTTP client for the remote question-answering
// service.
package qa

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/docchat-labs/docchat-cli/internal/core/domain"
	"github.com/docchat-labs/docchat-cli/internal/core/ports/driven"
	"github.com/docchat-labs/docchat-cli/internal/logger"
)

// Ensure Client implements the interface.
var _ driven.QueryClient = (*Client)(nil)

// Default configuration values.
const (
	DefaultBaseURL = "http://localhost:8000"
	DefaultTimeout = 120 * time.Second
)

// genericErrorDetail is surfaced when a failure response carries no detail.
const genericErrorDetail = "the question-answering service returned an error"

// Config holds configuration for the QA client.
type Config struct {
	// BaseURL is the service base URL (default: http://localhost:8000).
	BaseURL string

	// Timeout is the request timeout (default: 120s).
	Timeout time.Duration
}

// Client performs one POST {base}/ask call per question. Stateless:
// no retry, no queueing, no cancellation beyond the passed context.
type Client struct {
	client  *http.Client
	baseURL string
}

// askRequest is the /ask request body. Documents are sent whole, not by
// reference.
type askRequest struct {
	Documents []domain.Document `json:"documents"`
	Question  string            `json:"question"`
}

// askResponse is the /ask success body.
type askResponse struct {
	Answer  string   `json:"answer"`
	Sources []string `json:"sources"`
}

// errorResponse is the /ask failure body.
type errorResponse struct {
	Detail string `json:"detail"`
}

// NewClient creates a QA client.
func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}

	return &Client{
		client: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
	}
}

// Ask submits the question with the full selected documents.
func (c *Client) Ask(
	ctx context.Context, apiKey string, documents []domain.Document, question string,
) (*domain.Answer, error) {
	body, err := json.Marshal(askRequest{
		Documents: documents,
		Question:  question,
	})
	if err != nil {
		return nil, fmt.Errorf("encoding request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/ask", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-API-Key", apiKey)

	logger.Debug("POST %s/ask (%d documents)", c.baseURL, len(documents))

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, &domain.RemoteError{Detail: fmt.Sprintf("request failed: %v", err)}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &domain.RemoteError{StatusCode: resp.StatusCode, Detail: fmt.Sprintf("reading response: %v", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, remoteError(resp.StatusCode, data)
	}

	var parsed askResponse
	if err := json.Unmarshal(data, &parsed); err != nil {
		return nil, &domain.RemoteError{StatusCode: resp.StatusCode, Detail: fmt.Sprintf("decoding response: %v", err)}
	}

	return &domain.Answer{
		Text:    parsed.Answer,
		Sources: parsed.Sources,
	}, nil
}

// remoteError maps a non-2xx body to a RemoteError, surfacing the
// service's detail string verbatim when present.
func remoteError(status int, body []byte) *domain.RemoteError {
	var parsed errorResponse
	if err := json.Unmarshal(body, &parsed); err == nil && parsed.Detail != "" {
		return &domain.RemoteError{StatusCode: status, Detail: parsed.Detail}
	}
	return &domain.RemoteError{StatusCode: status, Detail: genericErrorDetail}
}
