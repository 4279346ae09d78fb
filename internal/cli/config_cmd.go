// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// config_cmd.go - Configuration command handler.
//
// Command: config
// Short:   Get and set configuration values
// Aliases: cfg
//
// Subcommands:
//   list              Show all keys and their current values
//   get <key>         Show one value
//   set <key> <value> Change a value and save
//   path              Show the config file location
//
// Examples:
//   sentinel config list
//   sentinel config get gateway.api_base_url
//   sentinel config set gateway.timeout_secs 60
//   sentinel config set ui.markdown_rendering off

package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jeranaias/sentinel-tui/internal/config"
	"github.com/jeranaias/sentinel-tui/internal/ui/styles"
)

// HandleConfig handles the "config" command.
func HandleConfig(args Args) error {
	parser := NewArgParser(args.Rest)

	switch parser.Subcommand() {
	case "", "list":
		return handleConfigList(args)
	case "get":
		return handleConfigGet(parser)
	case "set":
		return handleConfigSet(parser)
	case "path":
		return handleConfigPath()
	default:
		return ErrUsage("config",
			fmt.Sprintf("unknown subcommand %q", parser.Subcommand()),
			"sentinel config list")
	}
}

// handleConfigList prints every key with its current value.
func handleConfigList(args Args) error {
	cfg := config.Global()

	if args.JSON {
		out := make(map[string]string)
		for _, key := range config.GetAllKeys() {
			if value, err := cfg.Get(key); err == nil {
				out[key] = value
			}
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	for _, key := range config.GetAllKeys() {
		value, err := cfg.Get(key)
		if err != nil {
			continue
		}
		fmt.Printf("  %-28s %s\n", key, valueStyle.Render(value))
	}
	return nil
}

// handleConfigGet prints one value.
func handleConfigGet(parser *ArgParser) error {
	key := parser.Positional(1)
	if key == "" {
		return ErrUsage("config get", "a key is required", "sentinel config get gateway.api_base_url")
	}

	value, err := config.Global().Get(key)
	if err != nil {
		return NewCommandError("config", fmt.Sprintf("unknown key %q", key), err)
	}

	fmt.Println(value)
	return nil
}

// handleConfigSet changes a value and persists the config.
func handleConfigSet(parser *ArgParser) error {
	key := parser.Positional(1)
	value := parser.Positional(2)
	if key == "" || value == "" {
		return ErrUsage("config set", "a key and a value are required",
			"sentinel config set gateway.timeout_secs 60")
	}

	cfg := config.Global()
	if err := cfg.Set(key, value); err != nil {
		return NewCommandError("config", fmt.Sprintf("could not set %q", key), err)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := config.Save(cfg); err != nil {
		return NewCommandError("config", "could not save the configuration", err)
	}

	fmt.Println(styles.RenderSuccess(fmt.Sprintf("%s = %s", key, value)))
	return nil
}

// handleConfigPath prints the active config file location.
func handleConfigPath() error {
	path, err := config.ConfigPathTOML()
	if err != nil {
		return NewCommandError("config", "could not resolve the config directory", err)
	}
	fmt.Println(path)
	return nil
}
