// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package history appends conversation transcript entries to a markdown
// file.
//
// The log is write-only from this program's point of view: entries are
// appended and never read back, parsed, or truncated. Each entry is a
// delimiter line, a bold timestamp, and the entry body. The credential and
// any request internals never reach this file; only what the user typed and
// what the bot replied.
package history
