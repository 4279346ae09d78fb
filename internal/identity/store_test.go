// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package identity

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "user.json")
	return NewStore(path), path
}

// =============================================================================
// LOGIN TESTS
// =============================================================================

func TestLoginSuccess(t *testing.T) {
	store, _ := newTestStore(t)

	user, err := store.Login("admin@sentinel.ai", "admin123")
	require.NoError(t, err)
	require.NotNil(t, user)

	assert.Equal(t, "Admin User", user.Name)
	assert.Equal(t, RoleAdmin, user.Role)
	assert.True(t, store.IsAuthenticated())
	assert.Equal(t, RoleAdmin, store.Role())
}

func TestLoginEmailCaseInsensitive(t *testing.T) {
	store, _ := newTestStore(t)

	_, err := store.Login("  Admin@Sentinel.AI ", "admin123")
	assert.NoError(t, err)
}

func TestLoginWrongPassword(t *testing.T) {
	store, _ := newTestStore(t)

	user, err := store.Login("admin@sentinel.ai", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Nil(t, user)
	assert.False(t, store.IsAuthenticated())
}

func TestLoginUnknownEmail(t *testing.T) {
	store, _ := newTestStore(t)

	_, err := store.Login("nobody@sentinel.ai", "admin123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginEmployee(t *testing.T) {
	store, _ := newTestStore(t)

	user, err := store.Login("employee@sentinel.ai", "employee123")
	require.NoError(t, err)
	assert.Equal(t, RoleEmployee, user.Role)
	assert.False(t, user.IsAdmin())
}

// =============================================================================
// PERSISTENCE TESTS
// =============================================================================

func TestSessionPersistsAcrossStores(t *testing.T) {
	store, path := newTestStore(t)

	_, err := store.Login("admin@sentinel.ai", "admin123")
	require.NoError(t, err)

	// File exists with owner-only permissions
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	// A fresh store picks the session back up
	reopened := NewStore(path)
	require.True(t, reopened.IsAuthenticated())
	assert.Equal(t, "admin@sentinel.ai", reopened.Current().Email)
}

func TestLogoutClearsSession(t *testing.T) {
	store, path := newTestStore(t)

	_, err := store.Login("admin@sentinel.ai", "admin123")
	require.NoError(t, err)

	require.NoError(t, store.Logout())
	assert.False(t, store.IsAuthenticated())
	assert.Nil(t, store.Current())

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))

	// A fresh store sees no session
	assert.False(t, NewStore(path).IsAuthenticated())
}

func TestLogoutWhenNotLoggedIn(t *testing.T) {
	store, _ := newTestStore(t)
	assert.NoError(t, store.Logout())
}

func TestCorruptSessionFileMeansLoggedOut(t *testing.T) {
	path := filepath.Join(t.TempDir(), "user.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0600))

	store := NewStore(path)
	assert.False(t, store.IsAuthenticated())
}

func TestCurrentReturnsCopy(t *testing.T) {
	store, _ := newTestStore(t)
	_, err := store.Login("admin@sentinel.ai", "admin123")
	require.NoError(t, err)

	first := store.Current()
	first.Name = "mutated"
	assert.Equal(t, "Admin User", store.Current().Name)
}

// =============================================================================
// ROLE TESTS
// =============================================================================

func TestRoleWhenLoggedOut(t *testing.T) {
	store, _ := newTestStore(t)
	assert.Equal(t, Role(""), store.Role())
}
