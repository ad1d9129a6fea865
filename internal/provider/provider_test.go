// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package provider

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/rulegen/pkg/types"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name   string
		cfg    types.ProviderConfig
		want   interface{}
		errMsg string
	}{
		{
			name: "empty provider selects openai",
			cfg:  types.ProviderConfig{APIKey: "test-key"},
			want: &OpenAI{},
		},
		{
			name: "explicit openai",
			cfg:  types.ProviderConfig{Provider: types.ProviderOpenAI, APIKey: "test-key"},
			want: &OpenAI{},
		},
		{
			name: "anthropic",
			cfg:  types.ProviderConfig{Provider: types.ProviderAnthropic, APIKey: "test-key"},
			want: &Anthropic{},
		},
		{
			name:   "unknown provider",
			cfg:    types.ProviderConfig{Provider: "gemini", APIKey: "test-key"},
			errMsg: "unknown provider",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := New(tt.cfg)
			if tt.errMsg != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				return
			}
			require.NoError(t, err)
			assert.IsType(t, tt.want, got)
		})
	}
}

func TestNew_FillsDefaultModel(t *testing.T) {
	got, err := New(types.ProviderConfig{
		Provider:    types.ProviderAnthropic,
		APIKey:      "test-key",
		Temperature: 0.3,
	})
	require.NoError(t, err)

	backend, ok := got.(*Anthropic)
	require.True(t, ok)
	assert.Equal(t, defaultAnthropicModel, backend.Model)
	assert.InDelta(t, 0.3, backend.Temperature, 1e-9)
}

func TestNew_KeepsConfiguredModel(t *testing.T) {
	got, err := New(types.ProviderConfig{
		Provider: types.ProviderAnthropic,
		Model:    "claude-haiku-4-5",
		APIKey:   "test-key",
	})
	require.NoError(t, err)

	backend, ok := got.(*Anthropic)
	require.True(t, ok)
	assert.Equal(t, "claude-haiku-4-5", backend.Model)
}

func TestDefaultModel(t *testing.T) {
	assert.Equal(t, defaultOpenAIModel, DefaultModel(types.ProviderOpenAI))
	assert.Equal(t, defaultOpenAIModel, DefaultModel(""))
	assert.Equal(t, defaultAnthropicModel, DefaultModel(types.ProviderAnthropic))
}

func TestCredentialEnvVar(t *testing.T) {
	assert.Equal(t, "OPENAI_API_KEY", CredentialEnvVar(types.ProviderOpenAI))
	assert.Equal(t, "OPENAI_API_KEY", CredentialEnvVar(""))
	assert.Equal(t, "ANTHROPIC_API_KEY", CredentialEnvVar(types.ProviderAnthropic))
}
