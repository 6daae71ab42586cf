// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for conversations and messages.
//
// This package defines the core domain types used throughout the application
// for representing a chat session and its messages.
//
// # Key Types
//
//   - Conversation: the ordered message sequence sent to the completion
//     service on every turn, seeded with a single system message
//   - Message: a single role-tagged message with content and timestamp
//   - Role: message role enumeration (system, user, assistant)
//
// # Usage
//
// Create a conversation and record a turn:
//
//	conv := model.NewConversation("Be concise.")
//	conv.AddUserMessage("Hello")
//	conv.AddAssistantMessage("Hi there.")
//
// Roll back a turn whose completion call failed:
//
//	conv.AddUserMessage("What about X?")
//	// ... call fails ...
//	conv.RemoveLast()
package model
