// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package session

import (
	"context"
	"strings"
	"sync"

	"github.com/jeranaias/sentinel-tui/internal/gateway"
	"github.com/jeranaias/sentinel-tui/internal/model"
	"github.com/jeranaias/sentinel-tui/internal/verdict"
)

// =============================================================================
// GATE
// =============================================================================

// Gate is the authentication view the controller consults before accepting
// a submission. Satisfied by identity.Store.
type Gate interface {
	IsAuthenticated() bool
}

// =============================================================================
// CONTROLLER
// =============================================================================

// Controller manages a chat transcript with single-flight submissions.
//
// All methods are safe for concurrent use. The transcript returned by
// Messages is a snapshot; the controller never hands out its internal slice.
type Controller struct {
	mu sync.Mutex

	// Transcript, oldest first. Grows by exactly two per settled exchange.
	messages []*model.Message

	// Single-flight state. seq increments on every accepted submission;
	// a settle or fail carrying a stale sequence is dropped.
	busy bool
	seq  uint64

	// Gateway used by the blocking Submit path.
	client *gateway.Client

	// Optional authentication gate. When set, submissions from an
	// unauthenticated user are rejected before touching the transcript.
	gate Gate
}

// NewController creates a controller backed by the given gateway client.
// The client may be nil when only the Begin/Settle/Fail lifecycle is used.
func NewController(client *gateway.Client) *Controller {
	return &Controller{
		client: client,
	}
}

// SetGate installs the authentication gate. A nil gate means ungated.
func (c *Controller) SetGate(gate Gate) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gate = gate
}

// =============================================================================
// TRANSCRIPT ACCESS
// =============================================================================

// Messages returns a snapshot of the transcript, oldest first.
func (c *Controller) Messages() []*model.Message {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]*model.Message, len(c.messages))
	copy(out, c.messages)
	return out
}

// Len returns the number of messages in the transcript.
func (c *Controller) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.messages)
}

// Busy reports whether a submission is currently in flight.
func (c *Controller) Busy() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.busy
}

// Clear empties the transcript. An in-flight submission keeps its sequence
// and will still settle; only the history is discarded.
func (c *Controller) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.messages = nil
}

// AddSystemNotice appends a system message outside the submission lifecycle.
// Used for notices like login banners; never counts toward an exchange.
func (c *Controller) AddSystemNotice(text string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.messages = append(c.messages, model.NewSystemMessage(text))
}

// =============================================================================
// SINGLE-FLIGHT LIFECYCLE
// =============================================================================

// Begin accepts a prompt for submission.
//
// Returns (seq, true) when accepted: the user message is already appended
// to the transcript and the controller is now busy. Returns (0, false) when
// the prompt is empty/whitespace or another submission is in flight; in
// that case nothing changed.
//
// The caller must eventually call Settle or Fail with the returned sequence.
func (c *Controller) Begin(text string) (uint64, bool) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return 0, false
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.gate != nil && !c.gate.IsAuthenticated() {
		return 0, false
	}
	if c.busy {
		return 0, false
	}

	c.busy = true
	c.seq++
	c.messages = append(c.messages, model.NewUserMessage(trimmed))
	return c.seq, true
}

// Settle completes the in-flight submission with a gateway reply.
//
// The reply is interpreted into a transcript message. A stale sequence
// (from a submission that was superseded) is dropped without touching
// the transcript.
func (c *Controller) Settle(seq uint64, resp *gateway.ChatResponse) bool {
	return c.finish(seq, verdict.Interpret(resp))
}

// Fail completes the in-flight submission with a gateway error.
// The transcript still gains its second message, a connection-error notice.
func (c *Controller) Fail(seq uint64, err error) bool {
	return c.finish(seq, verdict.InterpretError(err))
}

func (c *Controller) finish(seq uint64, msg *model.Message) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if seq != c.seq {
		// Late arrival from a superseded submission.
		return false
	}
	if !c.busy {
		return false
	}

	c.busy = false
	c.messages = append(c.messages, msg)
	return true
}

// =============================================================================
// BLOCKING SUBMISSION
// =============================================================================

// Submit runs the full submission lifecycle synchronously: accept the
// prompt, call the gateway, settle with the reply or failure.
//
// Returns the reply message, or nil when the prompt was rejected (empty
// or busy). Gateway failures do not surface as errors here; they settle
// into a connection-error message like any other exchange.
func (c *Controller) Submit(ctx context.Context, text string) *model.Message {
	seq, ok := c.Begin(text)
	if !ok {
		return nil
	}

	resp, err := c.client.Chat(ctx, gateway.ChatRequest{Prompt: strings.TrimSpace(text)})
	if err != nil {
		c.Fail(seq, err)
	} else {
		c.Settle(seq, resp)
	}

	msgs := c.Messages()
	return msgs[len(msgs)-1]
}
