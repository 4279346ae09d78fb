// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/jeranaias/sentinel-tui/internal/model"
)

// =============================================================================
// ERROR TYPES
// =============================================================================

// ClientError represents an error from the gateway client.
type ClientError struct {
	Type    ErrorType
	Message string
	Cause   error
}

func (e *ClientError) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *ClientError) Unwrap() error {
	return e.Cause
}

// ErrorType categorizes client errors for handling.
type ErrorType int

const (
	ErrTypeUnknown ErrorType = iota

	// ErrTypeUnreachable: the request could not be sent or no response arrived.
	ErrTypeUnreachable

	// ErrTypeBadResponse: the orchestrator answered with a non-2xx status.
	ErrTypeBadResponse

	// ErrTypeMalformed: the response body does not match the expected shape.
	ErrTypeMalformed

	// ErrTypeTimeout: the request deadline elapsed.
	ErrTypeTimeout
)

// Sentinel errors for easy checking.
var (
	ErrUnreachable = &ClientError{Type: ErrTypeUnreachable, Message: "security orchestrator is not reachable"}
	ErrTimeout     = &ClientError{Type: ErrTypeTimeout, Message: "request timed out"}
)

// IsUnreachable checks if an error indicates the orchestrator could not be reached.
func IsUnreachable(err error) bool {
	var clientErr *ClientError
	if errors.As(err, &clientErr) {
		return clientErr.Type == ErrTypeUnreachable
	}
	return errors.Is(err, ErrUnreachable)
}

// IsBadResponse checks if an error is a non-2xx status error.
func IsBadResponse(err error) bool {
	var clientErr *ClientError
	if errors.As(err, &clientErr) {
		return clientErr.Type == ErrTypeBadResponse
	}
	return false
}

// IsMalformed checks if an error indicates a shape-invalid response body.
func IsMalformed(err error) bool {
	var clientErr *ClientError
	if errors.As(err, &clientErr) {
		return clientErr.Type == ErrTypeMalformed
	}
	return false
}

// IsTimeout checks if an error is a timeout error.
func IsTimeout(err error) bool {
	var clientErr *ClientError
	if errors.As(err, &clientErr) {
		return clientErr.Type == ErrTypeTimeout
	}
	return errors.Is(err, ErrTimeout)
}

// =============================================================================
// CLIENT CONFIGURATION
// =============================================================================

// ClientConfig holds configuration options for the gateway client.
type ClientConfig struct {
	// BaseURL is the orchestrator API base URL (default: http://localhost:9000).
	// Both /chat and /logs are resolved against this origin.
	BaseURL string

	// Timeout for requests (default: 30s). Chat requests traverse the shield,
	// the scrubber, and the model, so this is deliberately generous.
	Timeout time.Duration

	// DefaultModel is the model identifier sent when none is specified.
	DefaultModel string
}

// DefaultConfig returns the default client configuration.
func DefaultConfig() *ClientConfig {
	return &ClientConfig{
		BaseURL:      "http://localhost:9000",
		Timeout:      30 * time.Second,
		DefaultModel: "gemini-2.5-flash",
	}
}

// =============================================================================
// CLIENT
// =============================================================================

// Client handles communication with the Sentinel orchestrator API.
//
// The Client is safe for concurrent use.
//
// Example:
//
//	client := gateway.NewClient()
//	resp, err := client.Chat(ctx, gateway.ChatRequest{Prompt: "what is python"})
type Client struct {
	config     *ClientConfig
	httpClient *http.Client
}

// NewClient creates a new gateway client with default configuration.
func NewClient() *Client {
	return NewClientWithConfig(DefaultConfig())
}

// NewClientWithConfig creates a new gateway client with custom configuration.
func NewClientWithConfig(config *ClientConfig) *Client {
	if config == nil {
		config = DefaultConfig()
	}

	// Fill in defaults for any zero values
	if config.BaseURL == "" {
		config.BaseURL = "http://localhost:9000"
	}
	if config.Timeout == 0 {
		config.Timeout = 30 * time.Second
	}
	if config.DefaultModel == "" {
		config.DefaultModel = "gemini-2.5-flash"
	}

	return &Client{
		config: config,
		httpClient: &http.Client{
			Timeout: config.Timeout,
		},
	}
}

// GetConfig returns the client configuration.
func (c *Client) GetConfig() *ClientConfig {
	return c.config
}

// SetModel updates the default model identifier.
func (c *Client) SetModel(model string) {
	c.config.DefaultModel = model
}

// DefaultModel returns the current default model identifier.
func (c *Client) DefaultModel() string {
	return c.config.DefaultModel
}

// =============================================================================
// HEALTH CHECK
// =============================================================================

// CheckRunning verifies that the orchestrator is reachable.
// Any HTTP response counts as reachable; only transport failures do not.
func (c *Client) CheckRunning(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.config.BaseURL+"/health", nil)
	if err != nil {
		return &ClientError{Type: ErrTypeUnreachable, Message: "failed to create request", Cause: err}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return ErrTimeout
		}
		return ErrUnreachable
	}
	drainAndClose(resp.Body)

	return nil
}

// =============================================================================
// CHAT
// =============================================================================

// Chat submits a prompt to POST /chat and returns the orchestrator's reply.
//
// A non-2xx status is a failure regardless of body content. A 2xx body that
// cannot be parsed into the expected shape yields an ErrTypeMalformed error.
func (c *Client) Chat(ctx context.Context, request ChatRequest) (*ChatResponse, error) {
	if request.Model == "" {
		request.Model = c.config.DefaultModel
	}

	body, err := json.Marshal(request)
	if err != nil {
		return nil, &ClientError{Type: ErrTypeMalformed, Message: "failed to marshal request", Cause: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.config.BaseURL+"/chat", bytes.NewReader(body))
	if err != nil {
		return nil, &ClientError{Type: ErrTypeUnreachable, Message: "failed to create request", Cause: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, ErrTimeout
		}
		return nil, ErrUnreachable
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Surface the backend's message when it sent one
		var envelope errorEnvelope
		if err := json.NewDecoder(resp.Body).Decode(&envelope); err == nil && envelope.message() != "" {
			return nil, &ClientError{
				Type:    ErrTypeBadResponse,
				Message: envelope.message(),
			}
		}
		return nil, &ClientError{
			Type:    ErrTypeBadResponse,
			Message: "chat request failed: " + resp.Status,
		}
	}

	var wire chatResponseWire
	if err := json.NewDecoder(resp.Body).Decode(&wire); err != nil {
		return nil, &ClientError{Type: ErrTypeMalformed, Message: "failed to decode chat response", Cause: err}
	}

	// A body carrying neither a verdict nor an output is not a chat response.
	if wire.Blocked == nil && wire.Output == nil {
		return nil, &ClientError{Type: ErrTypeMalformed, Message: "chat response missing blocked/output fields"}
	}

	result := &ChatResponse{Meta: wire.Meta}
	if wire.Blocked != nil {
		result.Blocked = *wire.Blocked
	}
	if wire.Output != nil {
		result.Output = *wire.Output
	}

	return result, nil
}

// =============================================================================
// LOGS
// =============================================================================

// Logs fetches the audit trail from GET /logs.
//
// The endpoint's degenerate failure mode is an object envelope (such as
// {"detail": "unauthorized"}) in place of the array. That case degrades to
// (nil, message, nil): no rows, a visible message, and no error - the caller
// renders the message inline rather than crashing.
func (c *Client) Logs(ctx context.Context) ([]model.LogEntry, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.config.BaseURL+"/logs", nil)
	if err != nil {
		return nil, "", &ClientError{Type: ErrTypeUnreachable, Message: "failed to create request", Cause: err}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, "", ErrTimeout
		}
		return nil, "", ErrUnreachable
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, "", &ClientError{
			Type:    ErrTypeBadResponse,
			Message: "logs request failed: " + resp.Status,
		}
	}

	var raw json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, "", &ClientError{Type: ErrTypeMalformed, Message: "failed to decode logs response", Cause: err}
	}

	if !isJSONArray(raw) {
		var envelope errorEnvelope
		if err := json.Unmarshal(raw, &envelope); err != nil || envelope.message() == "" {
			return nil, "unexpected logs payload", nil
		}
		return nil, envelope.message(), nil
	}

	var entries []model.LogEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, "", &ClientError{Type: ErrTypeMalformed, Message: "failed to decode log entries", Cause: err}
	}

	return entries, "", nil
}

// =============================================================================
// HELPERS
// =============================================================================

// isJSONArray reports whether the raw value is a JSON array.
func isJSONArray(raw json.RawMessage) bool {
	for _, b := range raw {
		switch b {
		case ' ', '\t', '\n', '\r':
			continue
		default:
			return b == '['
		}
	}
	return false
}

// drainAndClose discards and closes a response body so the connection
// can be reused.
func drainAndClose(r io.ReadCloser) {
	io.Copy(io.Discard, r)
	r.Close()
}
