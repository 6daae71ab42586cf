// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// chat.go - Interactive conversation loop for the Theron RSQ Bot.
//
// Runs the blocking REPL: read one line, call the completion service once,
// print and log the reply, repeat. There are no flags, subcommands, or slash
// commands; the only controls are "exit"/"quit", Ctrl+C, and Ctrl+D.

package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/peterh/liner"

	"github.com/theronhq/theron/internal/config"
	"github.com/theronhq/theron/internal/history"
	"github.com/theronhq/theron/internal/model"
	"github.com/theronhq/theron/internal/openai"
	"github.com/theronhq/theron/internal/ui/styles"
)

// =============================================================================
// STYLES
// =============================================================================

var (
	// Prompt style
	promptStyle = lipgloss.NewStyle().
			Foreground(styles.Cyan).
			Bold(true)

	// Welcome banner style
	welcomeStyle = lipgloss.NewStyle().
			Foreground(styles.Purple).
			Bold(true)

	// Info style
	infoStyle = lipgloss.NewStyle().
			Foreground(styles.TextSecondary)

	// Bot name style for reply headers
	botStyle = lipgloss.NewStyle().
			Foreground(styles.Purple).
			Bold(true)

	// Configured-value style
	valueStyle = lipgloss.NewStyle().
			Foreground(styles.Emerald)

	// Warning style
	warningStyle = lipgloss.NewStyle().
			Foreground(styles.Amber)

	// Error style
	errorStyle = lipgloss.NewStyle().
			Foreground(styles.Rose)

	// Disclaimer style
	disclaimerStyle = lipgloss.NewStyle().
			Foreground(styles.TextMuted)

	// Session summary header
	summaryHeaderStyle = lipgloss.NewStyle().
				Foreground(styles.Cyan).
				Bold(true)
)

// disclaimer is printed in the welcome banner on every session start.
const disclaimer = "This bot provides informational responses and is not a substitute for professional medical advice."

// =============================================================================
// INPUT HISTORY
// =============================================================================

// ChatCLI provides input history and line editing for the conversation loop.
// Supports arrow keys for history navigation.
type ChatCLI struct {
	line        *liner.State
	historyFile string
}

// NewChatCLI creates a new ChatCLI with input history support.
func NewChatCLI() *ChatCLI {
	line := liner.NewLiner()
	line.SetCtrlCAborts(true)

	// Input history lives in the per-user config directory
	configDir, err := config.ConfigDir()
	if err != nil {
		// Fallback to temp directory if config dir unavailable
		configDir = os.TempDir()
	}
	historyFile := filepath.Join(configDir, "input_history")

	cli := &ChatCLI{
		line:        line,
		historyFile: historyFile,
	}

	cli.LoadHistory()

	return cli
}

// LoadHistory loads input-line history from file.
func (c *ChatCLI) LoadHistory() {
	if f, err := os.Open(c.historyFile); err == nil {
		c.line.ReadHistory(f)
		f.Close()
	}
}

// ReadInput reads a line of input with the given prompt.
func (c *ChatCLI) ReadInput(prompt string) (string, error) {
	input, err := c.line.Prompt(prompt)
	if err != nil {
		return "", err
	}

	// Add non-empty input to history
	if strings.TrimSpace(input) != "" {
		c.line.AppendHistory(input)
	}

	return input, nil
}

// SaveHistory persists input-line history with owner-only permissions.
func (c *ChatCLI) SaveHistory() {
	if err := config.EnsureConfigDir(); err != nil {
		return
	}

	f, err := os.OpenFile(c.historyFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return
	}
	defer f.Close()

	c.line.WriteHistory(f)
}

// Close saves history and closes the liner.
func (c *ChatCLI) Close() {
	c.SaveHistory()
	c.line.Close()
}

// =============================================================================
// SESSION STATE
// =============================================================================

// completionClient is the slice of the completion API the loop needs.
type completionClient interface {
	Complete(ctx context.Context, req openai.CompletionRequest) (string, error)
}

// ChatSession holds the state for one interactive conversation.
type ChatSession struct {
	// Conversation history; element 0 is always the system message
	Conversation *model.Conversation

	// Configuration
	Config *config.Config

	// Completion client
	Client completionClient

	// Transcript logger
	Logger *history.Logger

	// Tracking
	StartTime time.Time

	// Output
	Out      io.Writer
	Errout   io.Writer
	Markdown bool

	// Credential presence, for the welcome banner only
	configured bool
}

// NewChatSession creates a session from the loaded configuration.
func NewChatSession(cfg *config.Config) *ChatSession {
	client := openai.NewClient()

	return &ChatSession{
		Conversation: model.NewConversation(cfg.SystemPrompt),
		Config:       cfg,
		Client:       client,
		Logger:       history.NewLogger(history.DefaultPath),
		StartTime:    time.Now(),
		Out:          os.Stdout,
		Errout:       os.Stderr,
		Markdown:     IsStdoutTTY(),
		configured:   client.IsConfigured(),
	}
}

// =============================================================================
// CHAT HANDLER
// =============================================================================

// HandleChat runs the interactive conversation loop until the user ends it.
func HandleChat(cfg *config.Config) error {
	// Honor NO_COLOR and non-TTY output before any styled text is rendered.
	lipgloss.SetColorProfile(GetColorProfile())

	session := NewChatSession(cfg)

	printWelcome(session)

	// Ensure input history is saved on exit
	input := NewChatCLI()
	defer input.Close()

	for {
		raw, err := input.ReadInput(promptStyle.Render("You: "))
		if err != nil {
			// Ctrl+C (ErrPromptAborted), Ctrl+D (io.EOF), or a closed
			// input stream all end the session the same way.
			fmt.Fprintln(session.Out, "\nExiting.")
			printExitSummary(session)
			return nil
		}

		line, action := classifyInput(raw)
		switch action {
		case actionSkip:
			// Empty input is a no-op turn: no state change, no log entry
			continue
		case actionExit:
			fmt.Fprintln(session.Out, "Goodbye.")
			printExitSummary(session)
			return nil
		}

		if err := session.processTurn(context.Background(), line); err != nil {
			fmt.Fprintf(session.Errout, "%s %v\n", errorStyle.Render("[Error]"), err)
		}
	}
}

// inputAction classifies what one line of input asks the loop to do.
type inputAction int

const (
	actionSend inputAction = iota
	actionSkip
	actionExit
)

// classifyInput trims one raw input line and decides whether it is a
// message to send, a no-op, or a session-ending command. Only actionSend
// may mutate conversation state.
func classifyInput(raw string) (string, inputAction) {
	line := strings.TrimSpace(raw)
	if line == "" {
		return "", actionSkip
	}
	if strings.EqualFold(line, "exit") || strings.EqualFold(line, "quit") {
		return "", actionExit
	}
	return line, actionSend
}

// =============================================================================
// TURN PROCESSING
// =============================================================================

// processTurn runs one conversation turn.
//
// On success the conversation grows by exactly two messages and one
// transcript entry is appended. On failure the just-added user message is
// removed so the conversation is message-for-message identical to its state
// before the turn began, and nothing is logged.
func (s *ChatSession) processTurn(ctx context.Context, input string) error {
	s.Conversation.AddUserMessage(input)

	reply, err := s.Client.Complete(ctx, openai.CompletionRequest{
		Model:       s.Config.ModelOrDefault(),
		Temperature: s.Config.TemperatureOrDefault(),
		MaxTokens:   s.Config.MaxTokensOrDefault(),
		Messages:    s.Conversation.History(),
	})
	if err != nil {
		// Roll back the unanswered user message so it is not resent as
		// context on the next turn.
		s.Conversation.RemoveLast()
		return fmt.Errorf("API call failed: %w", err)
	}

	s.Conversation.AddAssistantMessage(reply)

	fmt.Fprintf(s.Out, "\n%s\n\n", botStyle.Render(model.RoleAssistant.DisplayName()+":"))
	displayReply(s.Out, s.Markdown, reply)
	fmt.Fprintln(s.Out)

	// A failed transcript write does not undo the turn, but it must not
	// pass silently either.
	if err := s.Logger.AppendTurn(input, reply); err != nil {
		fmt.Fprintf(s.Errout, "%s turn not logged: %v\n", warningStyle.Render("[Warning]"), err)
	}

	return nil
}

// =============================================================================
// DISPLAY FUNCTIONS
// =============================================================================

// printWelcome prints the welcome banner.
func printWelcome(session *ChatSession) {
	fmt.Fprintln(session.Out)
	fmt.Fprintln(session.Out, welcomeStyle.Render("Theron RSQ Bot — calm & professional"))
	fmt.Fprintln(session.Out, infoStyle.Render(strings.Repeat("─", 40)))
	fmt.Fprintf(session.Out, "%s %s\n",
		infoStyle.Render("Model:"),
		valueStyle.Render(session.Config.ModelOrDefault()))

	if session.configured {
		fmt.Fprintf(session.Out, "%s %s\n",
			infoStyle.Render("Credential:"),
			valueStyle.Render("Configured"))
	} else {
		fmt.Fprintf(session.Out, "%s %s\n",
			infoStyle.Render("Credential:"),
			warningStyle.Render("OPENAI_API_KEY not set"))
	}

	fmt.Fprintf(session.Out, "%s %s\n",
		infoStyle.Render("Transcript:"),
		valueStyle.Render(session.Logger.Path()))

	fmt.Fprintln(session.Out)
	fmt.Fprintln(session.Out, disclaimerStyle.Render("Disclaimer: "+disclaimer))
	fmt.Fprintln(session.Out, infoStyle.Render("Type your message and press Enter. 'exit' or 'quit' ends the session."))
	fmt.Fprintln(session.Out)
}

// printExitSummary prints the session summary on exit.
func printExitSummary(session *ChatSession) {
	turns := session.Conversation.Turns()
	if turns == 0 {
		return
	}

	elapsed := time.Since(session.StartTime).Round(time.Second)

	fmt.Fprintln(session.Out)
	fmt.Fprintln(session.Out, summaryHeaderStyle.Render("Session Summary"))
	fmt.Fprintln(session.Out, infoStyle.Render(strings.Repeat("─", 15)))
	fmt.Fprintf(session.Out, "  %s %d\n", infoStyle.Render("Turns:"), turns)
	fmt.Fprintf(session.Out, "  %s %s\n", infoStyle.Render("Duration:"), elapsed.String())
	fmt.Fprintf(session.Out, "  %s %s\n", infoStyle.Render("Transcript:"), session.Logger.Path())
	fmt.Fprintln(session.Out)
}
