// Package llm is the single gateway to the language model. Every model
// interaction — word validation, definition generation, classification,
// relation mining and quiz generation — goes through here, so prompt
// construction and response validation live in one place.
package llm

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/heartmarshall/cerego-backend/internal/config"
	"github.com/heartmarshall/cerego-backend/internal/domain"
)

// Gateway talks to Claude and decodes its structured JSON answers.
type Gateway struct {
	client    anthropic.Client
	model     anthropic.Model
	maxTokens int64
	log       *slog.Logger
}

// New builds a Gateway from the LLM section of the config.
func New(cfg config.LLMConfig, log *slog.Logger) *Gateway {
	client := anthropic.NewClient(
		option.WithAPIKey(cfg.APIKey),
		option.WithRequestTimeout(cfg.RequestTimeout),
		option.WithMaxRetries(0), // retries are handled by the caller
	)
	return &Gateway{
		client:    client,
		model:     anthropic.Model(cfg.Model),
		maxTokens: int64(cfg.MaxTokens),
		log:       log.With(slog.String("component", "llm")),
	}
}

// complete sends one prompt and returns the JSON object extracted from
// the reply. Transport and API errors come back unwrapped so the caller
// can classify them for retry; malformed replies come back wrapped in
// domain.ErrSchemaViolation, which must never be retried.
func (g *Gateway) complete(ctx context.Context, system, user string) (string, error) {
	msg, err := g.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     g.model,
		MaxTokens: g.maxTokens,
		System: []anthropic.TextBlockParam{
			{Text: system},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(user)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("llm api call: %w", err)
	}

	if len(msg.Content) == 0 {
		return "", fmt.Errorf("empty llm response: %w", domain.ErrSchemaViolation)
	}

	jsonStr, err := extractJSON(msg.Content[0].Text)
	if err != nil {
		return "", fmt.Errorf("%v: %w", err, domain.ErrSchemaViolation)
	}

	return jsonStr, nil
}

// extractJSON finds the first complete JSON object in a string. Models
// sometimes wrap the object in prose or markdown fences despite being
// told not to.
func extractJSON(s string) (string, error) {
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start == -1 || end == -1 || end <= start {
		return "", fmt.Errorf("no JSON object found in response")
	}
	return s[start : end+1], nil
}
