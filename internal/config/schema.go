package config

import (
	"fmt"
	"time"
)

// Dispatch modes. Chat keeps one conversation per document so the model
// can carry its section counter across chunks; batch issues a fresh
// single-turn request per chunk.
const (
	ModeChat  = "chat"
	ModeBatch = "batch"
)

// Config holds scribe configuration.
// Stored at: ./config.yaml or ~/.scribe/config.yaml
type Config struct {
	// APIKey for the model provider (supports ${ENV_VAR} syntax)
	APIKey string `mapstructure:"api_key" yaml:"api_key"`
	// Model name passed to the provider
	Model string `mapstructure:"model" yaml:"model"`
	// BaseURL overrides the provider endpoint (mainly for tests)
	BaseURL string `mapstructure:"base_url" yaml:"base_url"`
	// Mode selects the dispatch strategy: "chat" or "batch"
	Mode string `mapstructure:"mode" yaml:"mode"`
	// ChunkSize is the number of pages per model request
	ChunkSize int `mapstructure:"chunk_size" yaml:"chunk_size"`
	// WaitSeconds is the pause between chunk requests
	WaitSeconds int `mapstructure:"wait_seconds" yaml:"wait_seconds"`
	// UploadSettleSeconds is the pause after upload before the first
	// request, giving the provider time to index the document
	UploadSettleSeconds int `mapstructure:"upload_settle_seconds" yaml:"upload_settle_seconds"`
}

// DefaultConfig returns configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		APIKey:              "${OPENAI_API_KEY}",
		Model:               "gpt-4o",
		Mode:                ModeChat,
		ChunkSize:           50,
		WaitSeconds:         10,
		UploadSettleSeconds: 2,
	}
}

// Validate rejects configuration that would make the planner or the
// dispatch loop misbehave. These are startup errors, not runtime faults.
func (c *Config) Validate() error {
	if c.ChunkSize <= 0 {
		return fmt.Errorf("chunk_size must be positive, got %d", c.ChunkSize)
	}
	if c.WaitSeconds < 0 {
		return fmt.Errorf("wait_seconds must not be negative, got %d", c.WaitSeconds)
	}
	if c.Mode != ModeChat && c.Mode != ModeBatch {
		return fmt.Errorf("mode must be %q or %q, got %q", ModeChat, ModeBatch, c.Mode)
	}
	return nil
}

// ResolvedAPIKey expands ${ENV_VAR} references in the configured key.
func (c *Config) ResolvedAPIKey() string {
	return ResolveEnvVars(c.APIKey)
}

// Wait returns the inter-chunk pause as a duration.
func (c *Config) Wait() time.Duration {
	return time.Duration(c.WaitSeconds) * time.Second
}

// UploadSettle returns the post-upload pause as a duration.
func (c *Config) UploadSettle() time.Duration {
	return time.Duration(c.UploadSettleSeconds) * time.Second
}
