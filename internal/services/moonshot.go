package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

const (
	// generateTimeout bounds the single optimize/translate completion call.
	generateTimeout = 60 * time.Second
	// probeTimeout bounds the read-only credential verification call.
	probeTimeout = 10 * time.Second

	defaultTemperature = 0.3
)

type MoonshotService interface {
	GenerateText(ctx context.Context, prompt string, maxTokens int) (string, error)
	GenerateTextWithRetry(ctx context.Context, prompt string, maxTokens, maxAttempts int) (string, error)
	VerifyCredential(ctx context.Context) error
}

type moonshotService struct {
	client  *openai.Client
	model   string
	hasKey  bool
	timeout time.Duration
}

// NewMoonshotService builds a client for the configured chat-completions
// endpoint. The endpoint may be given in full; the /chat/completions suffix
// is stripped to obtain the API base URL.
func NewMoonshotService(apiKey, endpoint, model string) MoonshotService {
	cfg := openai.DefaultConfig(apiKey)
	cfg.BaseURL = baseURL(endpoint)

	return &moonshotService{
		client:  openai.NewClientWithConfig(cfg),
		model:   model,
		hasKey:  apiKey != "",
		timeout: generateTimeout,
	}
}

func baseURL(endpoint string) string {
	endpoint = strings.TrimSuffix(endpoint, "/")
	return strings.TrimSuffix(endpoint, "/chat/completions")
}

// GenerateText sends one synchronous completion request and returns the first
// choice's message content exactly as received.
func (m *moonshotService) GenerateText(ctx context.Context, prompt string, maxTokens int) (string, error) {
	if !m.hasKey {
		return "", ErrNoAPIKey
	}

	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()

	resp, err := m.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: m.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: defaultTemperature,
		MaxTokens:   maxTokens,
	})
	if err != nil {
		return "", mapUpstreamError(err)
	}

	if len(resp.Choices) == 0 {
		return "", ErrMalformedResponse
	}

	return resp.Choices[0].Message.Content, nil
}

// GenerateTextWithRetry retries transient generation failures up to
// maxAttempts. Configuration errors are never retried.
func (m *moonshotService) GenerateTextWithRetry(ctx context.Context, prompt string, maxTokens, maxAttempts int) (string, error) {
	if maxAttempts < 1 {
		maxAttempts = 1
	}

	var lastErr error

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		result, err := m.GenerateText(ctx, prompt, maxTokens)
		if err == nil {
			return result, nil
		}
		if errors.Is(err, ErrNoAPIKey) {
			return "", err
		}

		lastErr = err

		select {
		case <-ctx.Done():
			return "", fmt.Errorf("context cancelled: %w", ctx.Err())
		default:
		}

		if attempt < maxAttempts {
			log.Printf("⚠️ Attempt %d failed: %v. Retrying...\n", attempt, err)
		}
	}

	return "", lastErr
}

// VerifyCredential probes the API with a model listing. It is read-only and
// never mutates client or process configuration.
func (m *moonshotService) VerifyCredential(ctx context.Context) error {
	if !m.hasKey {
		return ErrNoAPIKey
	}

	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	if _, err := m.client.ListModels(ctx); err != nil {
		return mapUpstreamError(err)
	}

	return nil
}

func mapUpstreamError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return ErrUpstreamTimeout
	}

	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return &UpstreamError{Status: apiErr.HTTPStatusCode, Body: previewBody(apiErr.Message)}
	}

	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return &UpstreamError{Status: reqErr.HTTPStatusCode, Body: previewBody(reqErr.Error())}
	}

	return fmt.Errorf("generative API call failed: %w", err)
}
