// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// version.go - Version command handler.
//
// Command: version
// Short:   Show version and build information
//
// Examples:
//   sentinel version
//   sentinel version --json

package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"
)

// HandleVersion handles the "version" command.
func HandleVersion(args Args) error {
	if args.JSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(map[string]string{
			"version":    Version,
			"git_commit": GitCommit,
			"build_date": BuildDate,
			"go_version": runtime.Version(),
			"platform":   runtime.GOOS + "/" + runtime.GOARCH,
		})
	}

	fmt.Printf("sentinel %s\n", Version)
	if args.Verbose {
		printKV("Commit", GitCommit)
		printKV("Built", BuildDate)
		printKV("Go", runtime.Version())
		printKV("Platform", runtime.GOOS+"/"+runtime.GOARCH)
	}
	return nil
}
