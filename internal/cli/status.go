// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// status.go - Gateway status command handler.
//
// Command: status
// Short:   Check gateway connectivity and show connection settings
// Aliases: s
//
// Examples:
//   sentinel status
//   sentinel status --json

package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/jeranaias/sentinel-tui/internal/ui/styles"
)

// HandleStatus handles the "status" command.
func HandleStatus(args Args) error {
	client := buildClient(args)
	clientCfg := client.GetConfig()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	start := time.Now()
	healthErr := client.CheckRunning(ctx)
	latency := time.Since(start)

	store := openStore()
	user := store.Current()

	if args.JSON {
		out := map[string]any{
			"gateway":    clientCfg.BaseURL,
			"model":      clientCfg.DefaultModel,
			"timeout":    clientCfg.Timeout.String(),
			"reachable":  healthErr == nil,
			"latency_ms": latency.Milliseconds(),
		}
		if healthErr != nil {
			out["error"] = healthErr.Error()
		}
		if user != nil {
			out["operator"] = user.Email
			out["role"] = string(user.Role)
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	fmt.Println()
	printKV("Gateway", clientCfg.BaseURL)
	printKV("Model", clientCfg.DefaultModel)
	printKV("Timeout", clientCfg.Timeout.String())

	if healthErr == nil {
		printKV("Health", okStyle.Render(fmt.Sprintf("%s reachable (%d ms)",
			styles.StatusIndicators.Success, latency.Milliseconds())))
	} else {
		printKV("Health", errorLabelStyle.Render(styles.StatusIndicators.Error+" unreachable"))
		if args.Verbose {
			printKV("", mutedStyle.Render(healthErr.Error()))
		}
	}

	if user != nil {
		printKV("Operator", fmt.Sprintf("%s (%s)", user.Email, roleLabel(user.Role)))
	} else {
		printKV("Operator", mutedStyle.Render("not signed in"))
	}
	fmt.Println()

	// Connectivity problems should fail the command for scripting.
	if healthErr != nil {
		return healthErr
	}
	return nil
}
