// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// args.go - Shared argument parsing for the Sentinel CLI commands.

package cli

import (
	"fmt"
	"strconv"
	"strings"
)

// =============================================================================
// ARG PARSER
// =============================================================================

// ArgParser parses a command's remaining arguments in a uniform way:
//
//	--flag value     Long flag with space-separated value
//	--flag=value     Long flag with equals sign
//	-f value         Short flag with space-separated value
//	--flag           Boolean flag (no value)
//
// The first bare argument is the subcommand; the rest are positional.
type ArgParser struct {
	subcommand string
	flags      map[string]string
	boolFlags  map[string]bool
	positional []string
}

// NewArgParser parses raw arguments into flags and positionals.
//
// Example:
//
//	p := NewArgParser([]string{"set", "gateway.timeout_secs", "60", "--json"})
//	p.Subcommand()     // "set"
//	p.Positional(1)    // "gateway.timeout_secs"
//	p.BoolFlag("json") // true
func NewArgParser(raw []string) *ArgParser {
	p := &ArgParser{
		flags:     make(map[string]string),
		boolFlags: make(map[string]bool),
	}

	i := 0
	for i < len(raw) {
		arg := raw[i]

		if !strings.HasPrefix(arg, "-") {
			p.positional = append(p.positional, arg)
			i++
			continue
		}

		// --flag=value form
		if name, value, ok := strings.Cut(arg, "="); ok {
			name = strings.TrimLeft(name, "-")
			if value == "true" || value == "false" {
				p.boolFlags[name] = value == "true"
			} else {
				p.flags[name] = value
			}
			i++
			continue
		}

		name := strings.TrimLeft(arg, "-")
		if i+1 < len(raw) && !strings.HasPrefix(raw[i+1], "-") {
			p.flags[name] = raw[i+1]
			i += 2
		} else {
			p.boolFlags[name] = true
			i++
		}
	}

	if len(p.positional) > 0 {
		p.subcommand = p.positional[0]
	}
	return p
}

// Subcommand returns the first positional argument, or "".
func (p *ArgParser) Subcommand() string {
	return p.subcommand
}

// Flag returns a string flag's value, or "" when absent.
func (p *ArgParser) Flag(name string) string {
	return p.flags[strings.TrimLeft(name, "-")]
}

// FlagOrDefault returns the flag value or the default when absent.
func (p *ArgParser) FlagOrDefault(name, def string) string {
	if v := p.Flag(name); v != "" {
		return v
	}
	return def
}

// FlagIntOrDefault returns the flag value as an int, or the default when
// the flag is absent or not a valid integer.
func (p *ArgParser) FlagIntOrDefault(name string, def int) int {
	v := p.Flag(name)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

// BoolFlag reports whether a boolean flag is set.
func (p *ArgParser) BoolFlag(name string) bool {
	return p.boolFlags[strings.TrimLeft(name, "-")]
}

// HasFlag reports whether the flag was provided in either form.
func (p *ArgParser) HasFlag(name string) bool {
	name = strings.TrimLeft(name, "-")
	_, s := p.flags[name]
	_, b := p.boolFlags[name]
	return s || b
}

// Positional returns the positional argument at index, or "". Index 0 is
// the subcommand.
func (p *ArgParser) Positional(index int) string {
	if index < 0 || index >= len(p.positional) {
		return ""
	}
	return p.positional[index]
}

// PositionalFrom returns all positional arguments starting at index.
func (p *ArgParser) PositionalFrom(index int) []string {
	if index < 0 || index >= len(p.positional) {
		return nil
	}
	return p.positional[index:]
}

// PositionalCount returns the number of positional arguments.
func (p *ArgParser) PositionalCount() int {
	return len(p.positional)
}

// =============================================================================
// VALUE PARSING HELPERS
// =============================================================================

// ParseBoolString parses a boolean from common spellings:
// true/false, yes/no, y/n, 1/0, on/off (case-insensitive).
func ParseBoolString(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "yes", "y", "1", "on":
		return true, nil
	case "false", "no", "n", "0", "off":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean value: %s", s)
	}
}
