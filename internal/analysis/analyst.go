// Copyright (c) 2025 Northbound System
// Author: Nicholas Skitch
package analysis

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/tenderlens/internal/logger"
)

// Client is the minimal interface needed to call a chat model. It mirrors
// CreateChatCompletion so any OpenAI-compatible backend can be adapted and
// tests can fake the remote service.
type Client interface {
	CreateChatCompletion(ctx context.Context, request openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// Failure classes surfaced to the caller
var (
	ErrRateLimited         = errors.New("rate limit exceeded")
	ErrInsufficientBalance = errors.New("insufficient account balance")
	ErrEmptyResponse       = errors.New("model returned an empty response")
)

// Analyst sends extracted document text to the chat model with the fixed
// analysis prompt. Rate-limited attempts are retried with a fixed blocking
// wait; all other failures propagate immediately.
type Analyst struct {
	client     Client
	model      string
	maxRetries int
	retryDelay time.Duration

	// sleep is swapped out in tests to avoid real waits
	sleep func(time.Duration)
}

// NewAnalyst creates an analyst. maxRetries is the total number of attempts.
func NewAnalyst(client Client, model string, maxRetries int, retryDelay time.Duration) *Analyst {
	if maxRetries < 1 {
		maxRetries = 1
	}
	return &Analyst{
		client:     client,
		model:      model,
		maxRetries: maxRetries,
		retryDelay: retryDelay,
		sleep:      time.Sleep,
	}
}

// Analyze returns the model's response for the given document text.
// Attempts are strictly sequential; the wait between rate-limited attempts
// blocks the whole flow.
func (a *Analyst) Analyze(ctx context.Context, documentText string) (string, error) {
	req := openai.ChatCompletionRequest{
		Model: a.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: BuildPrompt(documentText)},
		},
	}

	var lastErr error
	for attempt := 1; attempt <= a.maxRetries; attempt++ {
		resp, err := a.client.CreateChatCompletion(ctx, req)
		if err == nil {
			if len(resp.Choices) == 0 {
				return "", ErrEmptyResponse
			}
			answer := strings.TrimSpace(resp.Choices[0].Message.Content)
			if answer == "" {
				return "", ErrEmptyResponse
			}
			return answer, nil
		}

		if isRateLimit(err) {
			lastErr = fmt.Errorf("%w: %v", ErrRateLimited, err)
			logger.Warnf("Rate limit hit on attempt %d/%d: %v", attempt, a.maxRetries, err)
			if attempt < a.maxRetries {
				logger.Printf("Waiting %s before retrying...", a.retryDelay)
				a.sleep(a.retryDelay)
			}
			continue
		}

		if isInsufficientBalance(err) {
			return "", fmt.Errorf("%w: %v", ErrInsufficientBalance, err)
		}

		return "", fmt.Errorf("chat completion failed: %w", err)
	}

	logger.Errorf("Rate limit retries exhausted after %d attempts", a.maxRetries)
	return "", lastErr
}

// isRateLimit reports whether the error is the transient throttling class
func isRateLimit(err error) bool {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return apiErr.HTTPStatusCode == http.StatusTooManyRequests
	}
	return false
}

// isInsufficientBalance reports whether the account lacks credit. DeepSeek
// returns HTTP 402; some gateways only carry "Insufficient Balance" in the
// error text, so the message is checked as a fallback.
func isInsufficientBalance(err error) bool {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		if apiErr.HTTPStatusCode == http.StatusPaymentRequired {
			return true
		}
	}
	msg := err.Error()
	return strings.Contains(msg, "Insufficient Balance") || strings.Contains(msg, "402")
}
