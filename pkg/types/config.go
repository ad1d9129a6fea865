package types

import "time"

// Provider identifies the chat-completion API used for conversion.
type Provider string

const (
	ProviderOpenAI    Provider = "openai"
	ProviderAnthropic Provider = "anthropic"
)

// ProviderConfig holds settings for the chat-completion API call.
type ProviderConfig struct {
	// Provider selects the API backend: openai or anthropic.
	Provider Provider `json:"provider" yaml:"provider"`

	// Model is the model identifier (e.g. "gpt-4.1-mini-2025-04-14").
	// Empty selects the provider default.
	Model string `json:"model" yaml:"model"`

	// APIKey is the authentication key for the API.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`

	// Temperature is the sampling temperature for completions (default 0.3).
	Temperature float64 `json:"temperature" yaml:"temperature"`
}

// ConvertConfig holds settings shared by the conversion commands.
type ConvertConfig struct {
	// OutputDir is the directory for generated rule files (default ".cursor/rules").
	OutputDir string `json:"output_dir" yaml:"output_dir"`

	// RequestInterval is the minimum delay between API requests (default 0 = none).
	RequestInterval time.Duration `json:"request_interval" yaml:"request_interval"`
}

// BatchConfig holds settings for the batch command.
type BatchConfig struct {
	// ComponentsDir is the directory scanned for documents (default
	// "docs/handbook/components"). The scan is not recursive.
	ComponentsDir string `json:"components_dir" yaml:"components_dir"`

	// TestMode caps the run to the first TestCount documents.
	TestMode bool `json:"test_mode" yaml:"test_mode"`

	// TestCount is the number of documents converted in test mode (default 2).
	TestCount int `json:"test_count" yaml:"test_count"`

	// Progress enables the progress bar over the batch loop.
	Progress bool `json:"progress" yaml:"progress"`
}

// HistoryConfig holds settings for the run history ledger.
type HistoryConfig struct {
	// Path locates the SQLite ledger (default ".rulegen/history.db").
	// Empty disables recording.
	Path string `json:"path" yaml:"path"`

	// Disabled skips recording entirely.
	Disabled bool `json:"disabled" yaml:"disabled"`
}

// ToolConfig groups all command configurations.
type ToolConfig struct {
	Provider ProviderConfig `json:"provider" yaml:"provider"`
	Convert  ConvertConfig  `json:"convert" yaml:"convert"`
	Batch    BatchConfig    `json:"batch" yaml:"batch"`
	History  HistoryConfig  `json:"history" yaml:"history"`
}
