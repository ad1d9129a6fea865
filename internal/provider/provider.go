// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package provider implements the chat-completion backends that turn a
// prompt into rule text. Backends share the TextCompleter interface so the
// conversion pipeline stays independent of the API in use.
package provider

import (
	"context"
	"fmt"

	"github.com/pdiddy/rulegen/pkg/types"
)

// Request is a single chat-completion exchange: a system message framing
// the task and a user prompt carrying the content to transform.
type Request struct {
	System string
	Prompt string
}

// TextCompleter produces a completion for a request. Implementations wrap
// a specific chat-completion API.
type TextCompleter interface {
	// Complete sends the request and returns the raw completion text.
	Complete(ctx context.Context, req Request) (string, error)
}

// DefaultModel returns the model used when none is configured for p.
func DefaultModel(p types.Provider) string {
	if p == types.ProviderAnthropic {
		return defaultAnthropicModel
	}
	return defaultOpenAIModel
}

// CredentialEnvVar returns the environment variable consulted for the API
// key of p.
func CredentialEnvVar(p types.Provider) string {
	if p == types.ProviderAnthropic {
		return "ANTHROPIC_API_KEY"
	}
	return "OPENAI_API_KEY"
}

// New builds the TextCompleter selected by cfg.Provider. An empty provider
// selects OpenAI; an empty model selects the provider default.
func New(cfg types.ProviderConfig) (TextCompleter, error) {
	if cfg.Model == "" {
		cfg.Model = DefaultModel(cfg.Provider)
	}
	switch cfg.Provider {
	case "", types.ProviderOpenAI:
		return newOpenAI(cfg)
	case types.ProviderAnthropic:
		return &Anthropic{
			APIKey:      cfg.APIKey,
			Model:       cfg.Model,
			Temperature: cfg.Temperature,
		}, nil
	default:
		return nil, fmt.Errorf("unknown provider %q (expected %q or %q)",
			cfg.Provider, types.ProviderOpenAI, types.ProviderAnthropic)
	}
}
