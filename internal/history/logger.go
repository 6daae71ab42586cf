// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package history

import (
	"fmt"
	"os"
	"time"
)

// DefaultPath is where the transcript is written, relative to the working
// directory the bot is started from.
const DefaultPath = "conversation_history.md"

// timestampFormat renders timestamps as "2025-01-02 15:04:05".
const timestampFormat = "2006-01-02 15:04:05"

// Logger appends timestamped entries to an append-only markdown file.
type Logger struct {
	path string
	now  func() time.Time
}

// NewLogger creates a logger writing to the given path. The file is created
// on first append.
func NewLogger(path string) *Logger {
	return &Logger{path: path, now: time.Now}
}

// Path returns the log file location.
func (l *Logger) Path() string {
	return l.path
}

// Append writes one timestamped entry. The file is opened in append mode so
// prior content is never altered or truncated; a failed write is reported to
// the caller, never silently discarded.
func (l *Logger) Append(entry string) error {
	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return fmt.Errorf("opening history log %s: %w", l.path, err)
	}
	defer f.Close()

	ts := l.now().Format(timestampFormat)
	if _, err := fmt.Fprintf(f, "---\n**%s**\n\n%s\n\n", ts, entry); err != nil {
		return fmt.Errorf("writing history log %s: %w", l.path, err)
	}
	return nil
}

// AppendTurn logs one completed exchange: the user input and the bot reply
// under a single timestamp.
func (l *Logger) AppendTurn(userInput, botReply string) error {
	return l.Append(fmt.Sprintf("User: %s\n\nBot: %s", userInput, botReply))
}
