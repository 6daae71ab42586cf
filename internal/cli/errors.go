// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// errors.go - Exit codes and startup error display.

package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/theronhq/theron/internal/config"
	"github.com/theronhq/theron/internal/openai"
)

// =============================================================================
// EXIT CODES
// =============================================================================

const (
	// ExitSuccess indicates successful execution
	ExitSuccess = 0
	// ExitGeneralError indicates a general/unknown error
	ExitGeneralError = 1
	// ExitConfigError indicates configuration file or settings error
	ExitConfigError = 3
	// ExitAuthError indicates authentication or authorization failure
	ExitAuthError = 4
)

// ExitCodeFor maps a startup or session error to a process exit code.
func ExitCodeFor(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, config.ErrNotFound), errors.Is(err, config.ErrMalformed):
		return ExitConfigError
	case errors.Is(err, openai.ErrNotConfigured), errors.Is(err, openai.ErrAuthFailed):
		return ExitAuthError
	default:
		return ExitGeneralError
	}
}

// PrintStartupError writes a styled diagnostic for an error that prevents
// the session from starting. Credentials never appear in this output.
func PrintStartupError(err error) {
	fmt.Fprintf(os.Stderr, "%s %v\n", errorStyle.Render("[Error]"), err)

	switch {
	case errors.Is(err, config.ErrNotFound):
		fmt.Fprintf(os.Stderr, "%s\n",
			infoStyle.Render("Create a config.json in the working directory. See README.md."))
	case errors.Is(err, openai.ErrNotConfigured):
		fmt.Fprintf(os.Stderr, "%s\n",
			infoStyle.Render("Set OPENAI_API_KEY in the environment or in a .env file."))
	}
}
