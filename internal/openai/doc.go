// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package openai wraps the OpenAI chat completions API for the bot.
//
// The client performs exactly one blocking request/response exchange per
// call: no streaming, no tool use, no retries. The API key is resolved from
// the OPENAI_API_KEY environment variable; an empty key fails with
// ErrNotConfigured before any network attempt. Service-side failures are
// mapped to sentinel errors so the conversation loop can report them
// distinctly without ever seeing the credential.
package openai
