// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// cli.go - Command-line entry parsing for the Sentinel client.
//
// Command: sentinel [command] [flags]
//
// Commands:
//   (none)    Launch the full-screen console
//   ask       Send a single prompt through the gateway
//   chat      Interactive chat in the terminal (no TUI)
//   logs      Print the audit trail (admin only)
//   login     Sign in to the local identity store
//   logout    Sign out
//   whoami    Show the current operator
//   status    Check gateway connectivity
//   config    Get and set configuration values
//   version   Show version information
//   help      Show usage

package cli

import (
	"fmt"
	"os"
)

// =============================================================================
// VERSION INFO
// =============================================================================

// Build metadata, set from main at startup.
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// =============================================================================
// COMMANDS
// =============================================================================

// Command identifies which top-level command was requested.
type Command int

const (
	CmdTUI Command = iota
	CmdAsk
	CmdChat
	CmdLogs
	CmdLogin
	CmdLogout
	CmdWhoami
	CmdStatus
	CmdConfig
	CmdVersion
	CmdHelp
	CmdUnknown
)

// Args holds the parsed command line.
type Args struct {
	Command Command

	// Rest is everything after the command name, for the per-command
	// ArgParser.
	Rest []string

	// Global flags
	JSON    bool   // --json: machine-readable output
	Verbose bool   // -v, --verbose
	Quiet   bool   // -q, --quiet
	Gateway string // --gateway URL: override the configured orchestrator
	Model   string // -m, --model: override the configured model

	// Unknown holds the unrecognized command word for error reporting.
	Unknown string
}

// =============================================================================
// USAGE
// =============================================================================

const usageText = `sentinel %s - AI security gateway console

USAGE:
  sentinel [command] [flags]

COMMANDS:
  (none)           Launch the full-screen console
  ask <prompt>     Send a single prompt through the gateway
  chat             Interactive chat in the terminal
  logs             Print the audit trail (admin only)
  login [email]    Sign in
  logout           Sign out
  whoami           Show the current operator
  status           Check gateway connectivity
  config           Get and set configuration values
  version          Show version information
  help             Show this help

GLOBAL FLAGS:
  --gateway URL    Override the configured orchestrator URL
  -m, --model M    Override the configured model
  --json           Machine-readable output
  -v, --verbose    Verbose output
  -q, --quiet      Minimal output

EXAMPLES:
  sentinel                          Launch the console
  sentinel ask "what is python"     One-shot prompt
  sentinel logs --severity high     High-severity audit events
  sentinel config set gateway.timeout_secs 60
`

// PrintUsage writes the usage text to stdout.
func PrintUsage() {
	fmt.Printf(usageText, Version)
}

// =============================================================================
// PARSING
// =============================================================================

// Parse reads os.Args and returns the parsed command line.
func Parse() Args {
	return ParseArgs(os.Args[1:])
}

// ParseArgs parses the given arguments. Split out for testing.
func ParseArgs(raw []string) Args {
	args := Args{Command: CmdTUI}

	rest := parseGlobalFlags(raw, &args)
	if len(rest) == 0 {
		return args
	}

	switch rest[0] {
	case "ask":
		args.Command = CmdAsk
	case "chat":
		args.Command = CmdChat
	case "logs", "audit":
		args.Command = CmdLogs
	case "login":
		args.Command = CmdLogin
	case "logout":
		args.Command = CmdLogout
	case "whoami":
		args.Command = CmdWhoami
	case "status", "s":
		args.Command = CmdStatus
	case "config", "cfg":
		args.Command = CmdConfig
	case "version", "-V", "--version":
		args.Command = CmdVersion
	case "help", "-h", "--help":
		args.Command = CmdHelp
	default:
		args.Command = CmdUnknown
		args.Unknown = rest[0]
	}

	args.Rest = rest[1:]
	return args
}

// parseGlobalFlags strips the global flags out of raw and returns what is
// left for the per-command parser.
func parseGlobalFlags(raw []string, args *Args) []string {
	var rest []string

	i := 0
	for i < len(raw) {
		switch raw[i] {
		case "--json":
			args.JSON = true
		case "-v", "--verbose":
			args.Verbose = true
		case "-q", "--quiet":
			args.Quiet = true
		case "--gateway":
			if i+1 < len(raw) {
				args.Gateway = raw[i+1]
				i++
			}
		case "-m", "--model":
			if i+1 < len(raw) {
				args.Model = raw[i+1]
				i++
			}
		default:
			rest = append(rest, raw[i])
		}
		i++
	}

	return rest
}
