// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// render.go - Markdown rendering for bot replies.

package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/glamour"
)

// markdownRenderer is the global glamour renderer for markdown output.
var markdownRenderer *glamour.TermRenderer

func init() {
	var err error
	markdownRenderer, err = glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		// Fallback to plain text if renderer initialization fails
		markdownRenderer = nil
	}
}

// renderMarkdown renders markdown content for terminal display.
// Returns the original content if rendering fails or renderer is unavailable.
func renderMarkdown(content string) string {
	if markdownRenderer == nil {
		return content
	}

	rendered, err := markdownRenderer.Render(content)
	if err != nil {
		return content
	}
	return rendered
}

// displayReply writes a bot reply, rendering markdown only when the output
// is a TTY so piped output stays byte-clean.
func displayReply(w io.Writer, markdown bool, reply string) {
	if markdown {
		fmt.Fprint(w, renderMarkdown(reply))
		return
	}
	fmt.Fprintf(w, "%s\n", reply)
}
