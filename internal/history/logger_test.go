// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package history

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// fixedLogger returns a logger with a deterministic clock.
func fixedLogger(t *testing.T, ts time.Time) *Logger {
	t.Helper()
	l := NewLogger(filepath.Join(t.TempDir(), "conversation_history.md"))
	l.now = func() time.Time { return ts }
	return l
}

func readLog(t *testing.T, l *Logger) string {
	t.Helper()
	data, err := os.ReadFile(l.Path())
	if err != nil {
		t.Fatalf("reading log: %v", err)
	}
	return string(data)
}

func TestAppendTurn_EntryFormat(t *testing.T) {
	ts := time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)
	l := fixedLogger(t, ts)

	if err := l.AppendTurn("Hello", "Hi there."); err != nil {
		t.Fatalf("AppendTurn() error = %v", err)
	}

	want := "---\n**2025-03-14 09:26:53**\n\nUser: Hello\n\nBot: Hi there.\n\n"
	if got := readLog(t, l); got != want {
		t.Errorf("log content = %q, want %q", got, want)
	}
}

func TestAppend_CreatesFileWithOwnerOnlyPerms(t *testing.T) {
	l := fixedLogger(t, time.Now())

	if err := l.Append("first entry"); err != nil {
		t.Fatalf("Append() error = %v", err)
	}

	info, err := os.Stat(l.Path())
	if err != nil {
		t.Fatalf("stat log: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0600 {
		t.Errorf("log perms = %o, want 0600", perm)
	}
}

func TestAppend_NeverTruncatesPriorContent(t *testing.T) {
	l := fixedLogger(t, time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC))

	entries := []string{"User: one\n\nBot: 1", "User: two\n\nBot: 2", "User: three\n\nBot: 3"}
	for _, e := range entries {
		if err := l.Append(e); err != nil {
			t.Fatalf("Append(%q) error = %v", e, err)
		}
	}

	got := readLog(t, l)
	for _, e := range entries {
		if !strings.Contains(got, e) {
			t.Errorf("log missing entry %q", e)
		}
	}
	if n := strings.Count(got, "---\n"); n != len(entries) {
		t.Errorf("log has %d delimiters, want %d", n, len(entries))
	}
	// Entries must appear in append order.
	if strings.Index(got, "Bot: 1") > strings.Index(got, "Bot: 3") {
		t.Error("entries out of append order")
	}
}

func TestAppend_PreservesExistingFile(t *testing.T) {
	l := fixedLogger(t, time.Now())
	prior := "# manually written preamble\n"
	if err := os.WriteFile(l.Path(), []byte(prior), 0600); err != nil {
		t.Fatalf("seeding log: %v", err)
	}

	if err := l.Append("User: hi\n\nBot: hello"); err != nil {
		t.Fatalf("Append() error = %v", err)
	}

	got := readLog(t, l)
	if !strings.HasPrefix(got, prior) {
		t.Errorf("prior content altered; log starts with %q", got[:min(len(got), 40)])
	}
}

func TestAppend_UnwritablePathReportsError(t *testing.T) {
	dir := t.TempDir()
	l := NewLogger(dir) // a directory cannot be opened for appending

	if err := l.Append("entry"); err == nil {
		t.Fatal("Append() error = nil, want open failure")
	}
}
