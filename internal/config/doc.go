// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config loads the bot configuration from a JSON file.
//
// The configuration is a small, flat record read once at process start and
// never mutated afterwards. Recognized keys:
//
//	system_prompt  string   persona text for the system message ("" if absent)
//	model          string   completion model identifier
//	temperature    number   sampling temperature
//	max_tokens     integer  maximum reply token budget (must be positive)
//
// Unknown keys are ignored. Load substitutes no defaults: absent optional
// keys stay unset, and the documented defaults are applied by the
// *OrDefault accessors when the conversation loop reads individual fields.
package config
