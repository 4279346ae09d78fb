// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package login

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/sentinel-tui/internal/identity"
	"github.com/jeranaias/sentinel-tui/internal/ui/styles"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	store := identity.NewStore(filepath.Join(t.TempDir(), "user.json"))
	m := New(styles.NewTheme(), store)
	m.SetSize(100, 30)
	return m
}

func typeString(m Model, s string) Model {
	for _, r := range s {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func TestLoginSuccess(t *testing.T) {
	m := newTestModel(t)

	m = typeString(m, "admin@sentinel.ai")
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = typeString(m, "admin123")

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("successful login should emit a command")
	}

	msg := cmd()
	success, ok := msg.(SuccessMsg)
	if !ok {
		t.Fatalf("msg = %T, want SuccessMsg", msg)
	}
	if success.User == nil || success.User.Email != "admin@sentinel.ai" {
		t.Errorf("unexpected user: %+v", success.User)
	}
	if !success.User.IsAdmin() {
		t.Error("admin demo account should have the admin role")
	}
}

func TestLoginWrongPassword(t *testing.T) {
	m := newTestModel(t)

	m = typeString(m, "admin@sentinel.ai")
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = typeString(m, "wrong")
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	if cmd != nil {
		t.Error("failed login should not emit a command")
	}
	if !strings.Contains(m.View(), "Invalid email or password") {
		t.Error("view should show the credential error")
	}
	if m.password.Value() != "" {
		t.Error("password field should be cleared after a failed attempt")
	}
}

func TestLoginEmptyFields(t *testing.T) {
	m := newTestModel(t)

	// Jump straight to the password field and submit nothing
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	if cmd != nil {
		t.Error("empty submission should not emit a command")
	}
	if !strings.Contains(m.View(), "required") {
		t.Error("view should prompt for the missing fields")
	}
}

func TestEnterOnEmailMovesFocus(t *testing.T) {
	m := newTestModel(t)

	m = typeString(m, "admin@sentinel.ai")
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	if m.focus != fieldPassword {
		t.Error("Enter on the email field should move focus to the password field")
	}
}

func TestViewShowsDemoHint(t *testing.T) {
	m := newTestModel(t)
	view := m.View()

	for _, want := range []string{"SENTINEL", "admin@sentinel.ai", "employee@sentinel.ai"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}
