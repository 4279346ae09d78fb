// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package auditlog implements the audit trail view logic: loading entries
// from the gateway, filtering them, and tracking single-row expansion.
//
// Filtering is pure and order-preserving: the source collection loaded from
// the gateway is never mutated, and applying filters always starts from the
// full source.
package auditlog

import (
	"context"
	"strings"
	"sync"

	"github.com/jeranaias/sentinel-tui/internal/gateway"
	"github.com/jeranaias/sentinel-tui/internal/model"
)

// =============================================================================
// CATEGORY TABLE
// =============================================================================

// Category is a coarse event classification selectable in the filter bar.
type Category string

const (
	CategoryAll       Category = "all"
	CategoryInjection Category = "injection"
	CategoryPII       Category = "pii"
	CategoryMalicious Category = "malicious"
)

// categoryKeywords maps each category to the phrase matched (case-insensitively)
// against the event name. The table is client-side; the backend does not
// classify events.
var categoryKeywords = map[Category]string{
	CategoryInjection: "prompt injection",
	CategoryPII:       "pii redaction",
	CategoryMalicious: "malicious payload",
}

// Categories returns the selectable categories in display order.
func Categories() []Category {
	return []Category{CategoryAll, CategoryInjection, CategoryPII, CategoryMalicious}
}

// DisplayName returns the human-readable label for the category.
func (c Category) DisplayName() string {
	switch c {
	case CategoryAll:
		return "All Categories"
	case CategoryInjection:
		return "Prompt Injection"
	case CategoryPII:
		return "PII Redaction"
	case CategoryMalicious:
		return "Malicious Payload"
	default:
		return string(c)
	}
}

// =============================================================================
// EXPANSION
// =============================================================================

// Expansion tracks which row, if any, is expanded. At most one row is ever
// expanded; the zero value is collapsed.
type Expansion struct {
	id string
}

// Collapsed returns the no-row-expanded state.
func Collapsed() Expansion {
	return Expansion{}
}

// Expanded returns the state with the given row expanded.
func Expanded(id string) Expansion {
	return Expansion{id: id}
}

// IsCollapsed reports whether no row is expanded.
func (e Expansion) IsCollapsed() bool {
	return e.id == ""
}

// IsExpanded reports whether the given row is the expanded one.
func (e Expansion) IsExpanded(id string) bool {
	return e.id != "" && e.id == id
}

// ExpandedID returns the expanded row's ID and whether one is expanded.
func (e Expansion) ExpandedID() (string, bool) {
	return e.id, e.id != ""
}

// =============================================================================
// FILTER
// =============================================================================

// Filter holds the three predicates applied to the audit trail. Zero values
// mean "no constraint" (SeverityAll / CategoryAll are explicit alls).
type Filter struct {
	// Text is matched case-insensitively as a substring of the event name,
	// the user name, or the original prompt.
	Text string

	// Severity narrows to one severity. "all" or empty matches everything.
	Severity string

	// Category maps through the keyword table against the event name.
	Category Category
}

// SeverityAll is the severity filter value that matches every entry.
const SeverityAll = "all"

// Matches reports whether the entry satisfies every predicate.
func (f Filter) Matches(entry *model.LogEntry) bool {
	if text := strings.TrimSpace(f.Text); text != "" {
		needle := strings.ToLower(text)
		if !strings.Contains(strings.ToLower(entry.Event), needle) &&
			!strings.Contains(strings.ToLower(entry.UserName), needle) &&
			!strings.Contains(strings.ToLower(entry.OriginalPrompt), needle) {
			return false
		}
	}

	if f.Severity != "" && f.Severity != SeverityAll {
		if !strings.EqualFold(string(entry.Severity), f.Severity) {
			return false
		}
	}

	if f.Category != "" && f.Category != CategoryAll {
		keyword, known := categoryKeywords[f.Category]
		if !known {
			return false
		}
		if !strings.Contains(strings.ToLower(entry.Event), keyword) {
			return false
		}
	}

	return true
}

// =============================================================================
// ENGINE
// =============================================================================

// LogFetcher is the slice of the gateway client the engine needs.
type LogFetcher interface {
	Logs(ctx context.Context) ([]model.LogEntry, string, error)
}

// Engine owns the audit view state: the loaded source entries, the active
// filter, and the expansion. Safe for concurrent use.
type Engine struct {
	mu sync.Mutex

	fetcher LogFetcher

	source    []model.LogEntry
	filter    Filter
	expansion Expansion

	// notice is the backend's message when /logs returned an envelope
	// instead of an array (e.g. "unauthorized").
	notice string
	loaded bool
}

// NewEngine creates an engine backed by the given fetcher.
func NewEngine(fetcher LogFetcher) *Engine {
	return &Engine{
		fetcher: fetcher,
		filter:  Filter{Severity: SeverityAll, Category: CategoryAll},
	}
}

// Load fetches the audit trail from the gateway, replacing the source.
//
// A non-array payload leaves the source empty and records the backend's
// message as the notice. Loading resets the expansion; the previously
// expanded row may no longer exist.
func (e *Engine) Load(ctx context.Context) error {
	entries, notice, err := e.fetcher.Logs(ctx)

	e.mu.Lock()
	defer e.mu.Unlock()

	e.expansion = Collapsed()
	if err != nil {
		e.source = nil
		e.notice = ""
		e.loaded = false
		return err
	}

	e.source = entries
	e.notice = notice
	e.loaded = true
	return nil
}

// Loaded reports whether a Load has succeeded since construction.
func (e *Engine) Loaded() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.loaded
}

// Notice returns the backend's envelope message from the last Load, or "".
func (e *Engine) Notice() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.notice
}

// Total returns the number of source entries before filtering.
func (e *Engine) Total() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.source)
}

// =============================================================================
// FILTERING
// =============================================================================

// SetFilter replaces the active filter. Changing the filter collapses the
// expansion when the expanded row no longer passes.
func (e *Engine) SetFilter(f Filter) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.filter = f

	if id, ok := e.expansion.ExpandedID(); ok {
		if entry := e.findLocked(id); entry == nil || !f.Matches(entry) {
			e.expansion = Collapsed()
		}
	}
}

// GetFilter returns the active filter.
func (e *Engine) GetFilter() Filter {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.filter
}

// Visible returns the entries passing the active filter, in source order.
// The returned slice is freshly allocated on every call.
func (e *Engine) Visible() []model.LogEntry {
	e.mu.Lock()
	defer e.mu.Unlock()

	out := make([]model.LogEntry, 0, len(e.source))
	for i := range e.source {
		if e.filter.Matches(&e.source[i]) {
			out = append(out, e.source[i])
		}
	}
	return out
}

// =============================================================================
// EXPANSION CONTROL
// =============================================================================

// ToggleExpand flips the expansion for the given row: collapse when it is
// already expanded, otherwise switch the expansion to it. An ID not present
// in the visible set is a no-op.
func (e *Engine) ToggleExpand(id string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.expansion.IsExpanded(id) {
		e.expansion = Collapsed()
		return
	}

	entry := e.findLocked(id)
	if entry == nil || !e.filter.Matches(entry) {
		return
	}
	e.expansion = Expanded(id)
}

// Expansion returns the current expansion state.
func (e *Engine) Expansion() Expansion {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.expansion
}

// findLocked returns the source entry with the given ID, or nil.
// Caller must hold e.mu.
func (e *Engine) findLocked(id string) *model.LogEntry {
	for i := range e.source {
		if e.source[i].ID == id {
			return &e.source[i]
		}
	}
	return nil
}

// Compile-time check that the gateway client satisfies LogFetcher.
var _ LogFetcher = (*gateway.Client)(nil)
