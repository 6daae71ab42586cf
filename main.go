// Theron RSQ Bot - terminal chat client.
// Calm, professional chatbot for healthcare-related and general messages.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/theronhq/theron/internal/cli"
	"github.com/theronhq/theron/internal/config"
)

// Version information (set at build time)
var (
	Version   = "1.0.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func main() {
	// Make OPENAI_API_KEY from a local .env visible; absence is fine, the
	// variable may already be in the environment.
	_ = godotenv.Load()

	cfg, err := config.Load(config.DefaultPath)
	if err != nil {
		cli.PrintStartupError(err)
		os.Exit(cli.ExitCodeFor(err))
	}

	if err := cli.HandleChat(cfg); err != nil {
		cli.PrintStartupError(err)
		os.Exit(cli.ExitCodeFor(err))
	}
}
