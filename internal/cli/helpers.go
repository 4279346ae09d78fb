// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// helpers.go - Shared setup for the CLI command handlers.

package cli

import (
	"fmt"
	"time"

	"github.com/jeranaias/sentinel-tui/internal/config"
	"github.com/jeranaias/sentinel-tui/internal/gateway"
	"github.com/jeranaias/sentinel-tui/internal/identity"
)

// buildClient creates a gateway client from the loaded configuration,
// applying any global flag overrides.
func buildClient(args Args) *gateway.Client {
	cfg := config.Global()

	clientCfg := &gateway.ClientConfig{
		BaseURL:      cfg.Gateway.APIBaseURL,
		Timeout:      time.Duration(cfg.Gateway.TimeoutSecs) * time.Second,
		DefaultModel: cfg.Gateway.DefaultModel,
	}
	if args.Gateway != "" {
		clientCfg.BaseURL = args.Gateway
	}
	if args.Model != "" {
		clientCfg.DefaultModel = args.Model
	}

	return gateway.NewClientWithConfig(clientCfg)
}

// openStore opens the identity store at its default location.
func openStore() *identity.Store {
	return identity.NewStore(identity.DefaultPath())
}

// requireLogin returns the current user, or ErrNotAuthenticated when
// nobody is signed in.
func requireLogin(store *identity.Store) (*identity.User, error) {
	user := store.Current()
	if user == nil {
		return nil, fmt.Errorf("%w: run 'sentinel login' first", identity.ErrNotAuthenticated)
	}
	return user, nil
}

// printKV prints an aligned label/value pair.
func printKV(label, value string) {
	fmt.Printf("  %s %s\n", labelStyle.Render(label), valueStyle.Render(value))
}
