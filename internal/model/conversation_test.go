// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import (
	"fmt"
	"testing"
)

// =============================================================================
// CONVERSATION SHAPE TESTS
// =============================================================================

func TestConversation_SeededWithSystemMessage(t *testing.T) {
	conv := NewConversation("Be concise.")

	if conv.Len() != 1 {
		t.Fatalf("new conversation Len() = %d, want 1", conv.Len())
	}
	if conv.SystemMessage().Role != RoleSystem {
		t.Errorf("first message role = %q, want %q", conv.SystemMessage().Role, RoleSystem)
	}
	if conv.SystemMessage().Content != "Be concise." {
		t.Errorf("system content = %q, want %q", conv.SystemMessage().Content, "Be concise.")
	}
}

func TestConversation_EmptyPromptStillSeeds(t *testing.T) {
	conv := NewConversation("")

	if conv.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", conv.Len())
	}
	if conv.SystemMessage().Role != RoleSystem {
		t.Errorf("first message role = %q, want %q", conv.SystemMessage().Role, RoleSystem)
	}
}

func TestConversation_GrowsByTwoPerTurn(t *testing.T) {
	conv := NewConversation("system")

	for k := 1; k <= 5; k++ {
		conv.AddUserMessage(fmt.Sprintf("question %d", k))
		conv.AddAssistantMessage(fmt.Sprintf("answer %d", k))

		if got, want := conv.Len(), 1+2*k; got != want {
			t.Fatalf("after %d turns Len() = %d, want %d", k, got, want)
		}
		if conv.Turns() != k {
			t.Errorf("Turns() = %d, want %d", conv.Turns(), k)
		}
		if conv.History()[0].Role != RoleSystem {
			t.Errorf("element 0 role = %q, want %q after %d turns", conv.History()[0].Role, RoleSystem, k)
		}
	}
}

func TestConversation_MessageOrder(t *testing.T) {
	conv := NewConversation("sys")
	conv.AddUserMessage("Hello")
	conv.AddAssistantMessage("Hi there.")

	history := conv.History()
	wantRoles := []Role{RoleSystem, RoleUser, RoleAssistant}
	wantContent := []string{"sys", "Hello", "Hi there."}

	for i, msg := range history {
		if msg.Role != wantRoles[i] {
			t.Errorf("history[%d].Role = %q, want %q", i, msg.Role, wantRoles[i])
		}
		if msg.Content != wantContent[i] {
			t.Errorf("history[%d].Content = %q, want %q", i, msg.Content, wantContent[i])
		}
	}
}

// =============================================================================
// ROLLBACK TESTS
// =============================================================================

func TestConversation_RemoveLastRestoresPriorState(t *testing.T) {
	conv := NewConversation("Be concise.")
	conv.AddUserMessage("Hello")
	conv.AddAssistantMessage("Hi there.")

	before := conv.History()

	// Failed turn: user message added, then rolled back.
	conv.AddUserMessage("What about X?")
	removed, ok := conv.RemoveLast()
	if !ok {
		t.Fatal("RemoveLast() returned ok = false")
	}
	if removed.Role != RoleUser || removed.Content != "What about X?" {
		t.Errorf("removed message = {%q, %q}, want the provisional user message", removed.Role, removed.Content)
	}

	after := conv.History()
	if len(after) != len(before) {
		t.Fatalf("Len after rollback = %d, want %d", len(after), len(before))
	}
	for i := range before {
		if after[i].Role != before[i].Role || after[i].Content != before[i].Content {
			t.Errorf("history[%d] = {%q, %q}, want {%q, %q}",
				i, after[i].Role, after[i].Content, before[i].Role, before[i].Content)
		}
	}
}

func TestConversation_RemoveLastNeverRemovesSystemMessage(t *testing.T) {
	conv := NewConversation("sys")

	if _, ok := conv.RemoveLast(); ok {
		t.Error("RemoveLast() on a seeded-only conversation should refuse")
	}
	if conv.Len() != 1 {
		t.Errorf("Len() = %d, want 1", conv.Len())
	}
	if conv.SystemMessage().Content != "sys" {
		t.Errorf("system message content = %q, want %q", conv.SystemMessage().Content, "sys")
	}
}

func TestConversation_HistoryIsACopy(t *testing.T) {
	conv := NewConversation("sys")
	conv.AddUserMessage("Hello")

	history := conv.History()
	history[0] = NewUserMessage("tampered")

	if conv.SystemMessage().Content != "sys" {
		t.Error("mutating History() result leaked into the conversation")
	}
}

// =============================================================================
// MESSAGE TESTS
// =============================================================================

func TestMessage_Preview(t *testing.T) {
	tests := []struct {
		name    string
		content string
		maxLen  int
		want    string
	}{
		{"short content unchanged", "hello", 10, "hello"},
		{"long content truncated", "hello world, this is long", 10, "hello w..."},
		{"unicode safe", "héllo wörld, this is long", 10, "héllo w..."},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := NewUserMessage(tc.content).Preview(tc.maxLen)
			if got != tc.want {
				t.Errorf("Preview(%d) = %q, want %q", tc.maxLen, got, tc.want)
			}
		})
	}
}

func TestRole_DisplayName(t *testing.T) {
	tests := []struct {
		role Role
		want string
	}{
		{RoleUser, "You"},
		{RoleAssistant, "Theron RSQ Bot"},
		{RoleSystem, "System"},
		{Role("other"), "other"},
	}

	for _, tc := range tests {
		if got := tc.role.DisplayName(); got != tc.want {
			t.Errorf("%q.DisplayName() = %q, want %q", tc.role, got, tc.want)
		}
	}
}
