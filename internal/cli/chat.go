// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// chat.go - Interactive terminal chat (no TUI).
//
// Command: chat
// Short:   Chat with the gateway in a plain terminal REPL
//
// Examples:
//   sentinel chat
//   sentinel chat -m gemini-2.5-pro
//
// REPL commands:
//   /clear    Clear the transcript
//   /help     Show REPL help
//   /quit     Exit (also Ctrl+D)
//
// Input history persists in ~/.sentinel/chat_history.

package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"

	"github.com/jeranaias/sentinel-tui/internal/config"
	"github.com/jeranaias/sentinel-tui/internal/session"
)

// historyFileName is the REPL history file inside the config directory.
const historyFileName = "chat_history"

// HandleChat handles the "chat" command.
func HandleChat(args Args) error {
	if !IsStdinTTY() {
		return NewCommandError("chat", "interactive chat requires a terminal", nil)
	}

	store := openStore()
	user, err := requireLogin(store)
	if err != nil {
		return err
	}

	client := buildClient(args)
	controller := session.NewController(client)
	controller.SetGate(store)

	line := liner.NewLiner()
	line.SetCtrlCAborts(true)
	defer line.Close()

	historyPath := loadHistory(line)
	defer saveHistory(line, historyPath)

	cfg := config.Global()
	if !args.Quiet {
		fmt.Printf("Connected as %s (%s). Prompts are screened by the gateway at %s.\n",
			user.Name, user.Role, client.GetConfig().BaseURL)
		fmt.Println(mutedStyle.Render("Type /help for commands, /quit to exit."))
		fmt.Println()
	}

	for {
		input, err := line.Prompt("> ")
		if err != nil {
			// Ctrl+C aborts the current line, Ctrl+D ends the session.
			if err == liner.ErrPromptAborted {
				continue
			}
			if err == io.EOF {
				fmt.Println()
				return nil
			}
			return NewCommandError("chat", "input error", err)
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		line.AppendHistory(input)

		if strings.HasPrefix(input, "/") {
			if quit := handleReplCommand(input, controller); quit {
				return nil
			}
			continue
		}

		reply := controller.Submit(context.Background(), input)
		if reply == nil {
			continue
		}

		fmt.Println()
		displayReply(reply.Content, cfg.UI.MarkdownRendering)
		if verdict := formatVerdictLine(reply, cfg.UI.ShowSecurityScores); verdict != "" {
			fmt.Println(verdict)
		}
		fmt.Println()
	}
}

// handleReplCommand processes a slash command. Returns true to exit.
func handleReplCommand(input string, controller *session.Controller) bool {
	switch input {
	case "/quit", "/exit", "/q":
		return true

	case "/clear":
		controller.Clear()
		fmt.Println(mutedStyle.Render("Transcript cleared."))

	case "/help":
		fmt.Println("  /clear    Clear the transcript")
		fmt.Println("  /help     Show this help")
		fmt.Println("  /quit     Exit")

	default:
		fmt.Println(mutedStyle.Render("Unknown command. Type /help for commands."))
	}
	return false
}

// loadHistory reads the history file into the liner. Returns the path for
// saveHistory; errors are ignored, history is best-effort.
func loadHistory(line *liner.State) string {
	dir, err := config.ConfigDir()
	if err != nil {
		return ""
	}
	path := filepath.Join(dir, historyFileName)
	if f, err := os.Open(path); err == nil {
		line.ReadHistory(f)
		f.Close()
	}
	return path
}

// saveHistory writes the liner history back out.
func saveHistory(line *liner.State, path string) {
	if path == "" {
		return
	}
	if err := config.EnsureConfigDir(); err != nil {
		return
	}
	if f, err := os.Create(path); err == nil {
		line.WriteHistory(f)
		f.Close()
	}
}
