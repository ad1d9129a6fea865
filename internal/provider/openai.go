// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package provider

import (
	"context"
	"fmt"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"

	"github.com/pdiddy/rulegen/pkg/types"
)

// defaultOpenAIModel is used when no model is configured for the openai
// provider.
const defaultOpenAIModel = "gpt-4.1-mini-2025-04-14"

// OpenAI calls the OpenAI chat-completion API through langchaingo.
type OpenAI struct {
	llm         *openai.LLM
	temperature float64
}

func newOpenAI(cfg types.ProviderConfig) (*OpenAI, error) {
	llm, err := openai.New(
		openai.WithToken(cfg.APIKey),
		openai.WithModel(cfg.Model),
	)
	if err != nil {
		return nil, fmt.Errorf("initializing openai client: %w", err)
	}
	return &OpenAI{llm: llm, temperature: cfg.Temperature}, nil
}

// Complete sends the system and user messages in one turn and returns the
// first choice.
func (o *OpenAI) Complete(ctx context.Context, req Request) (string, error) {
	messages := []llms.MessageContent{
		llms.TextParts(llms.ChatMessageTypeSystem, req.System),
		llms.TextParts(llms.ChatMessageTypeHuman, req.Prompt),
	}

	resp, err := o.llm.GenerateContent(ctx, messages, llms.WithTemperature(o.temperature))
	if err != nil {
		return "", fmt.Errorf("openai completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai API returned no choices")
	}
	return resp.Choices[0].Content, nil
}
