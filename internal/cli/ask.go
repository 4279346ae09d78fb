// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// ask.go - Single prompt command handler.
//
// Command: ask [prompt]
// Short:   Send one prompt through the gateway and print the reply
//
// Examples:
//   sentinel ask "What is the capital of France?"
//   sentinel ask --json "List the running processes"
//   sentinel ask -m gemini-2.5-pro "Explain this error"
//
// The prompt traverses the gateway's shield and scrubber; the reply is
// printed with its verdict trailer. Blocked prompts still exit 0: the
// gateway answered, the answer is the block.

package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/jeranaias/sentinel-tui/internal/config"
	"github.com/jeranaias/sentinel-tui/internal/model"
	"github.com/jeranaias/sentinel-tui/internal/session"
)

// HandleAsk handles the "ask" command.
func HandleAsk(args Args) error {
	parser := NewArgParser(args.Rest)

	prompt := strings.Join(parser.PositionalFrom(0), " ")
	if strings.TrimSpace(prompt) == "" {
		return ErrUsage("ask", "a prompt is required", `sentinel ask "what is python"`)
	}

	store := openStore()
	if _, err := requireLogin(store); err != nil {
		return err
	}

	client := buildClient(args)
	controller := session.NewController(client)
	controller.SetGate(store)

	reply := controller.Submit(context.Background(), prompt)
	if reply == nil {
		return NewCommandError("ask", "prompt was not accepted", nil)
	}

	if args.JSON {
		return printReplyJSON(reply)
	}

	cfg := config.Global()
	displayReply(reply.Content, cfg.UI.MarkdownRendering)

	if line := formatVerdictLine(reply, cfg.UI.ShowSecurityScores); line != "" && !args.Quiet {
		fmt.Println(line)
	}

	return nil
}

// printReplyJSON emits the reply as a structured object.
func printReplyJSON(reply *model.Message) error {
	out := map[string]any{
		"role":    string(reply.Role),
		"content": reply.Content,
	}
	if info := reply.SecurityInfo; info != nil {
		out["verdict"] = string(info.Verdict)
		out["score"] = info.Score
		out["redacted_entities"] = info.RedactedEntities
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
