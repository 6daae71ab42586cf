// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

// =============================================================================
// CONVERSATION TYPE
// =============================================================================

// Conversation holds the ordered message sequence for a chat session.
//
// The first element is always the single system message created at
// construction; it is never removed or duplicated. Every successful turn
// appends exactly two messages (user, then assistant); a failed turn
// appends none, because the provisional user message is removed again
// with RemoveLast. History is unbounded: there is no cap and no pruning.
type Conversation struct {
	messages []Message
}

// NewConversation creates a conversation seeded with a single system
// message carrying the given prompt. An empty prompt still produces the
// system message so the sequence shape is invariant.
func NewConversation(systemPrompt string) *Conversation {
	return &Conversation{
		messages: []Message{NewSystemMessage(systemPrompt)},
	}
}

// =============================================================================
// MESSAGE MANAGEMENT
// =============================================================================

// AddUserMessage creates and appends a user message.
func (c *Conversation) AddUserMessage(content string) Message {
	msg := NewUserMessage(content)
	c.messages = append(c.messages, msg)
	return msg
}

// AddAssistantMessage creates and appends an assistant message.
func (c *Conversation) AddAssistantMessage(content string) Message {
	msg := NewAssistantMessage(content)
	c.messages = append(c.messages, msg)
	return msg
}

// RemoveLast removes the most recently appended message and returns it.
// It refuses to remove the system message, so an empty-but-seeded
// conversation is left untouched. This is the rollback path for a turn
// whose completion call failed: afterwards the conversation is identical
// to its state before the turn began.
func (c *Conversation) RemoveLast() (Message, bool) {
	if len(c.messages) <= 1 {
		return Message{}, false
	}
	last := c.messages[len(c.messages)-1]
	c.messages = c.messages[:len(c.messages)-1]
	return last, true
}

// LastMessage returns the most recent message.
func (c *Conversation) LastMessage() Message {
	return c.messages[len(c.messages)-1]
}

// SystemMessage returns the seed system message.
func (c *Conversation) SystemMessage() Message {
	return c.messages[0]
}

// Len returns the number of messages, including the system message.
func (c *Conversation) Len() int {
	return len(c.messages)
}

// Turns returns the number of completed turns (user/assistant pairs).
func (c *Conversation) Turns() int {
	return (len(c.messages) - 1) / 2
}

// History returns a copy of the message sequence in insertion order.
// The copy keeps callers from mutating the conversation out from under
// the loop that owns it.
func (c *Conversation) History() []Message {
	return append([]Message(nil), c.messages...)
}
