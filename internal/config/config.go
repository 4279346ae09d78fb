// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides unified configuration loading and management for
// the Sentinel client.
//
// Supports both TOML and JSON configuration formats, with sensible defaults,
// environment variable overrides, and validation.
//
// Configuration file locations (in order of precedence):
//   - ~/.sentinel/config.toml
//   - ~/.sentinel/config.json
//   - Built-in defaults
package config

import (
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"

	"github.com/jeranaias/sentinel-tui/internal/util"
)

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config represents the complete Sentinel client configuration.
type Config struct {
	// General settings
	Version string `toml:"version" json:"version"`

	// Gateway (orchestrator) configuration
	Gateway GatewayConfig `toml:"gateway" json:"gateway"`

	// UI configuration
	UI UIConfig `toml:"ui" json:"ui"`
}

// GatewayConfig contains the orchestrator connection settings.
type GatewayConfig struct {
	// APIBaseURL is the orchestrator origin. Both /chat and /logs resolve
	// against it.
	APIBaseURL string `toml:"api_base_url" json:"api_base_url"`
	// TimeoutSecs is the per-request timeout in seconds.
	TimeoutSecs int `toml:"timeout_secs" json:"timeout_secs"`
	// DefaultModel is the model identifier sent with chat requests.
	DefaultModel string `toml:"default_model" json:"default_model"`
}

// UIConfig contains UI-related configuration.
type UIConfig struct {
	// Theme is the color theme: "dark", "light", or "auto"
	Theme string `toml:"theme" json:"theme"`
	// MarkdownRendering enables glamour rendering of replies in the CLI
	MarkdownRendering bool `toml:"markdown_rendering" json:"markdown_rendering"`
	// ShowSecurityScores shows the shield score next to each reply
	ShowSecurityScores bool `toml:"show_security_scores" json:"show_security_scores"`
}

// =============================================================================
// DEFAULTS
// =============================================================================

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Version: "1.0",
		Gateway: GatewayConfig{
			APIBaseURL:   "http://localhost:9000",
			TimeoutSecs:  30,
			DefaultModel: "gemini-2.5-flash",
		},
		UI: UIConfig{
			Theme:              "dark",
			MarkdownRendering:  true,
			ShowSecurityScores: true,
		},
	}
}

// =============================================================================
// PATHS
// =============================================================================

// ConfigDir returns the configuration directory (~/.sentinel).
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}
	return filepath.Join(home, ".sentinel"), nil
}

// ConfigPathTOML returns the path to the TOML config file.
func ConfigPathTOML() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// ConfigPathJSON returns the path to the JSON config file.
func ConfigPathJSON() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// EnsureConfigDir ensures the config directory exists.
func EnsureConfigDir() error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}
	return os.MkdirAll(dir, 0700)
}

// ensureSecurePermissions checks and fixes permissions on config files.
// Config files should be 0600 (owner read/write only).
func ensureSecurePermissions(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}

	if mode := info.Mode().Perm(); mode != 0600 {
		if err := os.Chmod(path, 0600); err != nil {
			return fmt.Errorf("failed to fix insecure permissions (was %o): %w", mode, err)
		}
	}

	return nil
}

// =============================================================================
// LOAD FUNCTIONS
// =============================================================================

// Load loads configuration from the config file(s).
// Tries TOML first, then JSON, and falls back to defaults.
// Environment overrides are applied last.
func Load() (*Config, error) {
	cfg := Default()
	var loadErr error

	// Try TOML first
	if tomlPath, err := ConfigPathTOML(); err == nil {
		if _, statErr := os.Stat(tomlPath); statErr == nil {
			if err := LoadTOML(cfg, tomlPath); err != nil {
				loadErr = fmt.Errorf("failed to load TOML config: %w", err)
			} else {
				return finishLoad(cfg)
			}
		}
	}

	// Try JSON as fallback
	if jsonPath, err := ConfigPathJSON(); err == nil {
		if _, statErr := os.Stat(jsonPath); statErr == nil {
			if err := LoadJSON(cfg, jsonPath); err != nil {
				loadErr = fmt.Errorf("failed to load JSON config: %w", err)
			} else {
				return finishLoad(cfg)
			}
		}
	}

	cfg, err := finishLoad(cfg)
	if err != nil {
		return nil, err
	}
	return cfg, loadErr
}

// finishLoad applies env overrides and validation to a loaded config.
func finishLoad(cfg *Config) (*Config, error) {
	cfg.ApplyEnvOverrides()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// LoadTOML loads configuration from a TOML file.
// Checks and fixes file permissions on load.
func LoadTOML(cfg *Config, path string) error {
	if err := ensureSecurePermissions(path); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not ensure secure permissions on %s: %v\n", path, err)
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return fmt.Errorf("failed to decode TOML file: %w", err)
	}
	return fillDefaults(cfg)
}

// LoadJSON loads configuration from a JSON file.
// Checks and fixes file permissions on load.
func LoadJSON(cfg *Config, path string) error {
	if err := ensureSecurePermissions(path); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not ensure secure permissions on %s: %v\n", path, err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read JSON file: %w", err)
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to decode JSON file: %w", err)
	}
	return fillDefaults(cfg)
}

// LoadFromPath loads configuration from a specific file path with full
// validation. The format is chosen by extension; TOML is the default.
func LoadFromPath(path string) (*Config, error) {
	cfg := &Config{}

	if strings.HasSuffix(path, ".json") {
		if err := LoadJSON(cfg, path); err != nil {
			return nil, fmt.Errorf("failed to load JSON config from %s: %w", path, err)
		}
	} else {
		if err := LoadTOML(cfg, path); err != nil {
			return nil, fmt.Errorf("failed to load TOML config from %s: %w", path, err)
		}
	}

	return finishLoad(cfg)
}

// fillDefaults fills in any missing values with defaults.
func fillDefaults(cfg *Config) error {
	defaults := Default()

	if cfg.Version == "" {
		cfg.Version = defaults.Version
	}

	if cfg.Gateway.APIBaseURL == "" {
		cfg.Gateway.APIBaseURL = defaults.Gateway.APIBaseURL
	}
	if cfg.Gateway.TimeoutSecs == 0 {
		cfg.Gateway.TimeoutSecs = defaults.Gateway.TimeoutSecs
	}
	if cfg.Gateway.DefaultModel == "" {
		cfg.Gateway.DefaultModel = defaults.Gateway.DefaultModel
	}

	if cfg.UI.Theme == "" {
		cfg.UI.Theme = defaults.UI.Theme
	}

	return nil
}

// =============================================================================
// SAVE FUNCTIONS
// =============================================================================

// Save saves the configuration to the default TOML file.
func Save(cfg *Config) error {
	path, err := ConfigPathTOML()
	if err != nil {
		return err
	}
	return SaveTOML(cfg, path)
}

// SaveTOML saves the configuration to a TOML file with 0600 permissions.
func SaveTOML(cfg *Config, path string) error {
	if err := EnsureConfigDir(); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer file.Close()

	// Ensure permissions are correct even if the file already existed
	if err := os.Chmod(path, 0600); err != nil {
		return fmt.Errorf("failed to set config file permissions: %w", err)
	}

	fmt.Fprintln(file, "# sentinel configuration file")
	fmt.Fprintln(file, "# Generated by sentinel - edit with care")
	fmt.Fprintln(file, "")

	encoder := toml.NewEncoder(file)
	if err := encoder.Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	return nil
}

// SaveJSON saves the configuration to a JSON file with 0600 permissions.
// Uses an atomic write so a crash cannot leave a torn file.
func SaveJSON(cfg *Config, path string) error {
	if err := EnsureConfigDir(); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	if err := util.AtomicWriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// =============================================================================
// VALIDATION
// =============================================================================

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateErrors is a collection of validation errors.
type ValidateErrors []ValidationError

func (e ValidateErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}
	var msgs []string
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "; ")
}

// Validate validates the configuration and returns any errors.
func (c *Config) Validate() error {
	var errs ValidateErrors

	if c.Gateway.APIBaseURL != "" {
		parsed, err := url.Parse(c.Gateway.APIBaseURL)
		if err != nil || parsed.Scheme == "" || parsed.Host == "" {
			errs = append(errs, ValidationError{
				Field:   "gateway.api_base_url",
				Message: fmt.Sprintf("invalid URL '%s'", c.Gateway.APIBaseURL),
			})
		}
	}

	if c.Gateway.TimeoutSecs < 0 {
		errs = append(errs, ValidationError{
			Field:   "gateway.timeout_secs",
			Message: fmt.Sprintf("cannot be negative, got %d", c.Gateway.TimeoutSecs),
		})
	}

	validThemes := map[string]bool{"dark": true, "light": true, "auto": true}
	if c.UI.Theme != "" && !validThemes[strings.ToLower(c.UI.Theme)] {
		errs = append(errs, ValidationError{
			Field:   "ui.theme",
			Message: fmt.Sprintf("invalid theme '%s', must be one of: dark, light, auto", c.UI.Theme),
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// =============================================================================
// ENVIRONMENT OVERRIDES
// =============================================================================

// ApplyEnvOverrides applies environment variable overrides to the config.
// Environment variables take precedence over file values.
func (c *Config) ApplyEnvOverrides() {
	if apiURL := os.Getenv("SENTINEL_API_URL"); apiURL != "" {
		c.Gateway.APIBaseURL = apiURL
	}
	if model := os.Getenv("SENTINEL_MODEL"); model != "" {
		c.Gateway.DefaultModel = model
	}
	if theme := os.Getenv("SENTINEL_THEME"); theme != "" {
		c.UI.Theme = theme
	}
	if timeout := os.Getenv("SENTINEL_TIMEOUT_SECS"); timeout != "" {
		if secs, err := strconv.Atoi(timeout); err == nil && secs > 0 {
			c.Gateway.TimeoutSecs = secs
		}
	}
}

// =============================================================================
// KEY ACCESS (config get/set)
// =============================================================================

// Get returns a configuration value by dotted key.
func (c *Config) Get(key string) (string, error) {
	switch strings.ToLower(key) {
	case "version":
		return c.Version, nil
	case "gateway.api_base_url":
		return c.Gateway.APIBaseURL, nil
	case "gateway.timeout_secs":
		return strconv.Itoa(c.Gateway.TimeoutSecs), nil
	case "gateway.default_model":
		return c.Gateway.DefaultModel, nil
	case "ui.theme":
		return c.UI.Theme, nil
	case "ui.markdown_rendering":
		return strconv.FormatBool(c.UI.MarkdownRendering), nil
	case "ui.show_security_scores":
		return strconv.FormatBool(c.UI.ShowSecurityScores), nil
	default:
		return "", fmt.Errorf("unknown config key: %s", key)
	}
}

// Set updates a configuration value by dotted key. The change is not
// persisted; call Save afterwards.
func (c *Config) Set(key, value string) error {
	switch strings.ToLower(key) {
	case "gateway.api_base_url":
		c.Gateway.APIBaseURL = value
	case "gateway.timeout_secs":
		secs, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("timeout_secs must be an integer: %w", err)
		}
		c.Gateway.TimeoutSecs = secs
	case "gateway.default_model":
		c.Gateway.DefaultModel = value
	case "ui.theme":
		c.UI.Theme = value
	case "ui.markdown_rendering":
		enabled, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("markdown_rendering must be a boolean: %w", err)
		}
		c.UI.MarkdownRendering = enabled
	case "ui.show_security_scores":
		enabled, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("show_security_scores must be a boolean: %w", err)
		}
		c.UI.ShowSecurityScores = enabled
	default:
		return fmt.Errorf("unknown config key: %s", key)
	}
	return c.Validate()
}

// GetAllKeys returns the settable configuration keys in display order.
func GetAllKeys() []string {
	return []string{
		"gateway.api_base_url",
		"gateway.timeout_secs",
		"gateway.default_model",
		"ui.theme",
		"ui.markdown_rendering",
		"ui.show_security_scores",
	}
}

// =============================================================================
// SINGLETON PATTERN (THREAD-SAFE)
// =============================================================================

var (
	globalConfig     *Config
	globalConfigOnce sync.Once
	globalConfigMu   sync.RWMutex
)

// Global returns the global configuration instance.
// Loads configuration on first access. Thread-safe.
func Global() *Config {
	globalConfigOnce.Do(func() {
		cfg, err := Load()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v (using defaults)\n", err)
			cfg = Default()
			cfg.ApplyEnvOverrides()
		}
		globalConfig = cfg
	})

	globalConfigMu.RLock()
	defer globalConfigMu.RUnlock()
	return globalConfig
}

// ReloadGlobal reloads the global configuration from disk. Thread-safe.
func ReloadGlobal() error {
	cfg, err := Load()
	if err != nil {
		return err
	}
	globalConfigMu.Lock()
	defer globalConfigMu.Unlock()
	globalConfig = cfg
	return nil
}

// SetGlobal sets the global configuration instance. Thread-safe.
func SetGlobal(cfg *Config) {
	globalConfigMu.Lock()
	defer globalConfigMu.Unlock()
	globalConfig = cfg
}

// ResetGlobalForTesting resets the global config state for testing.
func ResetGlobalForTesting() {
	globalConfigMu.Lock()
	defer globalConfigMu.Unlock()
	globalConfig = nil
	globalConfigOnce = sync.Once{}
}
