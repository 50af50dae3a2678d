// Package models contain needed models
package models

// CipherRequest represents the request for encrypting or decrypting text.
// Exactly one of Key or Shift must be set.
type CipherRequest struct {
	Key   string `json:"key"`
	Shift *int   `json:"shift"`
	Text  string `json:"text"`
}

// CipherResponse represents the response after encryption or decryption
type CipherResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Result  string `json:"result"`
	Mode    string `json:"mode,omitempty"`
}

// ValidateKeyRequest represents the request for checking a key
type ValidateKeyRequest struct {
	Key string `json:"key"`
}

// ValidateKeyResponse represents the response after key validation
type ValidateKeyResponse struct {
	Success       bool   `json:"success"`
	Message       string `json:"message,omitempty"`
	NormalizedKey string `json:"normalized_key,omitempty"`
	Shifts        []int  `json:"shifts,omitempty"`
}

// Cipher modes reported in responses and metrics
const (
	ModeMonoalphabetic = "monoalphabetic"
	ModePolyalphabetic = "polyalphabetic"
)

// Config is the top-level service configuration
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Log     LogConfig     `yaml:"log"`
	Metrics MetricsConfig `yaml:"metrics"`
}

type ServerConfig struct {
	Port           int      `yaml:"port"`
	AllowedOrigins []string `yaml:"allowed_origins"`

	// MaxBodyBytes: 0 selects the default, negative disables the limit.
	MaxBodyBytes int64 `yaml:"max_body_bytes"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type MetricsConfig struct {
	Enabled *bool  `yaml:"enabled"`
	Path    string `yaml:"path"`
}

// MetricsEnabled reports whether metrics are on; unset means enabled.
func (c *Config) MetricsEnabled() bool {
	return c.Metrics.Enabled == nil || *c.Metrics.Enabled
}
