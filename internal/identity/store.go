// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package identity manages the authenticated user: the demo account
// directory, credential verification, and the persisted session context.
//
// The current user is persisted to ~/.sentinel/user.json so that CLI
// invocations and TUI sessions share one login. Passwords are never stored;
// the demo directory holds PBKDF2-SHA256 digests only.
package identity

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"golang.org/x/crypto/pbkdf2"

	"github.com/jeranaias/sentinel-tui/internal/util"
)

// =============================================================================
// ERRORS
// =============================================================================

var (
	// ErrInvalidCredentials is returned for a bad email/password pair.
	// The message never reveals which of the two was wrong.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrNotAuthenticated is returned by operations requiring a login.
	ErrNotAuthenticated = errors.New("not logged in")
)

// =============================================================================
// USER TYPES
// =============================================================================

// Role determines which surfaces a user may access.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleEmployee Role = "employee"
)

// String returns the string representation of the role.
func (r Role) String() string {
	return string(r)
}

// User is the session-context object persisted across invocations.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  Role   `json:"role"`
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

// =============================================================================
// DEMO DIRECTORY
// =============================================================================

const (
	kdfIterations = 100_000
	kdfKeyLen     = 32
)

// account is one entry of the built-in demo directory.
type account struct {
	user   User
	salt   []byte
	digest []byte
}

// demoDirectory returns the built-in accounts. Digests are derived at
// startup so no password material lives in the binary as plaintext
// alongside its salt pairing.
func demoDirectory() map[string]account {
	enroll := func(user User, password string) account {
		salt := []byte("sentinel/" + user.Email)
		return account{
			user:   user,
			salt:   salt,
			digest: deriveKey(password, salt),
		}
	}

	return map[string]account{
		"admin@sentinel.ai": enroll(User{
			ID:    "1",
			Email: "admin@sentinel.ai",
			Name:  "Admin User",
			Role:  RoleAdmin,
		}, "admin123"),
		"employee@sentinel.ai": enroll(User{
			ID:    "2",
			Email: "employee@sentinel.ai",
			Name:  "John Employee",
			Role:  RoleEmployee,
		}, "employee123"),
	}
}

// deriveKey runs the PBKDF2-SHA256 derivation used for password digests.
func deriveKey(password string, salt []byte) []byte {
	return pbkdf2.Key([]byte(password), salt, kdfIterations, kdfKeyLen, sha256.New)
}

// =============================================================================
// STORE
// =============================================================================

// Gate is the read-only authentication view handed to other components.
type Gate interface {
	IsAuthenticated() bool
	Role() Role
}

// Store holds the current user and persists it across invocations.
// Safe for concurrent use.
type Store struct {
	mu sync.Mutex

	path     string
	current  *User
	accounts map[string]account
}

// NewStore creates a store persisting to the given file path, loading any
// previously saved session. A missing or unreadable file simply means
// logged out.
func NewStore(path string) *Store {
	s := &Store{
		path:     path,
		accounts: demoDirectory(),
	}
	s.load()
	return s
}

// DefaultPath returns the standard session file location,
// ~/.sentinel/user.json.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".sentinel", "user.json")
	}
	return filepath.Join(home, ".sentinel", "user.json")
}

// load reads the persisted session, if any.
func (s *Store) load() {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return
	}
	var user User
	if err := json.Unmarshal(data, &user); err != nil {
		return
	}
	if user.Email == "" {
		return
	}
	s.current = &user
}

// =============================================================================
// AUTHENTICATION
// =============================================================================

// Login verifies the credentials against the directory and persists the
// session on success. Email matching is case-insensitive.
func (s *Store) Login(email, password string) (*User, error) {
	key := strings.ToLower(strings.TrimSpace(email))

	s.mu.Lock()
	defer s.mu.Unlock()

	acct, ok := s.accounts[key]
	if !ok {
		// Burn a derivation anyway so lookup misses are not faster
		// than digest mismatches.
		deriveKey(password, []byte("sentinel/"))
		return nil, ErrInvalidCredentials
	}

	candidate := deriveKey(password, acct.salt)
	if subtle.ConstantTimeCompare(candidate, acct.digest) != 1 {
		return nil, ErrInvalidCredentials
	}

	user := acct.user
	s.current = &user
	if err := s.persistLocked(); err != nil {
		return nil, err
	}
	return &user, nil
}

// Logout clears the session and removes the persisted file.
func (s *Store) Logout() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = nil
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// Current returns the logged-in user, or nil.
func (s *Store) Current() *User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return nil
	}
	user := *s.current
	return &user
}

// IsAuthenticated reports whether a user is logged in.
func (s *Store) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current != nil
}

// Role returns the logged-in user's role, or "" when logged out.
func (s *Store) Role() Role {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return ""
	}
	return s.current.Role
}

// persistLocked writes the session file with owner-only permissions.
// Caller must hold s.mu.
func (s *Store) persistLocked() error {
	data, err := json.MarshalIndent(s.current, "", "  ")
	if err != nil {
		return err
	}
	return util.AtomicWriteFile(s.path, data, 0600)
}

// Compile-time check that Store satisfies Gate.
var _ Gate = (*Store)(nil)
