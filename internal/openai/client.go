// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package openai

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"

	openaiapi "github.com/sashabaranov/go-openai"

	"github.com/theronhq/theron/internal/model"
)

// APIKeyEnvVar is the environment variable the credential is resolved from.
// The key is never logged, never written to the transcript, and never
// included in error text.
const APIKeyEnvVar = "OPENAI_API_KEY"

// Error variables for common completion-service errors.
var (
	// ErrNotConfigured indicates the API key is not set in the environment.
	ErrNotConfigured = errors.New("OPENAI_API_KEY environment variable not set")

	// ErrAuthFailed indicates authentication failed (invalid or expired API key).
	ErrAuthFailed = errors.New("authentication failed")

	// ErrRateLimited indicates too many requests were made.
	ErrRateLimited = errors.New("rate limited")

	// ErrModelNotFound indicates the requested model does not exist.
	ErrModelNotFound = errors.New("model not found")

	// ErrEmptyResponse indicates the service returned no choices.
	ErrEmptyResponse = errors.New("completion service returned empty response")
)

// CompletionRequest carries everything a single completion call needs.
type CompletionRequest struct {
	Model       string
	Temperature float64
	MaxTokens   int
	Messages    []model.Message
}

// Client is a client for the OpenAI chat completions endpoint.
//
// The credential lives only inside the wrapped go-openai client; it is
// never stored or exposed here.
type Client struct {
	api *openaiapi.Client
}

// NewClient creates a client with the API key resolved from the process
// environment. The client is still created when the key is missing;
// Complete then fails with ErrNotConfigured before any network attempt.
func NewClient() *Client {
	return NewClientWithKey(os.Getenv(APIKeyEnvVar))
}

// NewClientWithKey creates a client with an explicit API key. Used by
// callers that resolve the credential themselves.
func NewClientWithKey(apiKey string) *Client {
	c := &Client{}
	if apiKey = strings.TrimSpace(apiKey); apiKey != "" {
		c.api = openaiapi.NewClient(apiKey)
	}
	return c
}

// NewClientWithConfig creates a client from a full go-openai configuration.
// Tests use this to point the client at a local HTTP server.
func NewClientWithConfig(cfg openaiapi.ClientConfig) *Client {
	return &Client{api: openaiapi.NewClientWithConfig(cfg)}
}

// IsConfigured returns true if a credential was available at construction.
func (c *Client) IsConfigured() bool {
	return c.api != nil
}

// Complete performs one synchronous chat completion request and returns the
// reply text with leading/trailing whitespace trimmed.
//
// The full message sequence is sent as-is; the caller owns ordering. Any
// transport or service-side failure is surfaced as a distinguishable error,
// never swallowed. There is no retry and no streaming.
func (c *Client) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	if !c.IsConfigured() {
		return "", ErrNotConfigured
	}

	apiReq := openaiapi.ChatCompletionRequest{
		Model:       req.Model,
		Temperature: float32(req.Temperature),
		MaxTokens:   req.MaxTokens,
		Stream:      false,
		Messages:    toAPIMessages(req.Messages),
	}

	resp, err := c.api.CreateChatCompletion(ctx, apiReq)
	if err != nil {
		return "", mapAPIError(err)
	}

	if len(resp.Choices) == 0 {
		return "", ErrEmptyResponse
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

// toAPIMessages converts domain messages to the wire format.
func toAPIMessages(msgs []model.Message) []openaiapi.ChatCompletionMessage {
	res := make([]openaiapi.ChatCompletionMessage, 0, len(msgs))
	for _, m := range msgs {
		res = append(res, openaiapi.ChatCompletionMessage{
			Role:    m.Role.String(),
			Content: m.Content,
		})
	}
	return res
}

// mapAPIError converts go-openai errors to the package's sentinel errors
// where a distinct category exists, keeping the service's message for the
// diagnostic the loop prints.
func mapAPIError(err error) error {
	var apiErr *openaiapi.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.HTTPStatusCode {
		case http.StatusUnauthorized:
			return fmt.Errorf("%w: %s", ErrAuthFailed, apiErr.Message)
		case http.StatusNotFound:
			return fmt.Errorf("%w: %s", ErrModelNotFound, apiErr.Message)
		case http.StatusTooManyRequests:
			return fmt.Errorf("%w: %s", ErrRateLimited, apiErr.Message)
		}
		return fmt.Errorf("completion service error (HTTP %d): %s", apiErr.HTTPStatusCode, apiErr.Message)
	}
	return fmt.Errorf("completion request failed: %w", err)
}
