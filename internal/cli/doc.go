// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli implements the interactive terminal conversation loop.
//
// The loop is deliberately single-threaded and blocking: one line of input,
// one completion call, one reply, one transcript entry. Typing "exit" or
// "quit" (case-insensitive), Ctrl+C, or Ctrl+D ends the session. A failed
// completion call rolls the conversation back to its pre-turn state so the
// unanswered user message never pollutes later context.
package cli
