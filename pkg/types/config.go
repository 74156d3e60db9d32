package types

import "time"

// HTTPConfig holds shared HTTP settings for components that make network
// requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "recyclo/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// ClassifierConfig holds settings for the image classifier adapter.
type ClassifierConfig struct {
	HTTPConfig `yaml:",inline"`

	// Endpoint is the inference service URL that accepts an image and
	// returns ranked material predictions.
	Endpoint string `json:"endpoint" yaml:"endpoint"`

	// APIKey is an optional bearer token for the inference service.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`

	// MaxImageBytes caps the accepted image size before the oracle is
	// called (default 8 MiB). Oversized uploads are rejected locally.
	MaxImageBytes int64 `json:"max_image_bytes" yaml:"max_image_bytes"`

	// MaxRetries bounds transport-level retries on 429/503 responses.
	MaxRetries int `json:"max_retries" yaml:"max_retries"`
}

// PolicyConfig holds settings for the consensus resolver.
type PolicyConfig struct {
	// MinConfidence is the abstention threshold: top predictions below it
	// yield an abstained verdict (default 0.70).
	MinConfidence float64 `json:"min_confidence" yaml:"min_confidence"`

	// RulesFile is an optional YAML file of locality guideline rules
	// merged over the built-in ruleset.
	RulesFile string `json:"rules_file,omitempty" yaml:"rules_file,omitempty"`
}

// ProgressConfig holds settings for the classification log store.
type ProgressConfig struct {
	// DBPath is the SQLite database file (default "recyclo.db").
	DBPath string `json:"db_path" yaml:"db_path"`

	// MaxLogs is the default cap on returned log rows (default 200,
	// hard ceiling 1000).
	MaxLogs int `json:"max_logs" yaml:"max_logs"`
}

// CharityConfig holds settings for the donation directory.
type CharityConfig struct {
	// DirectoryFile is an optional YAML file of charities merged over the
	// built-in directory.
	DirectoryFile string `json:"directory_file,omitempty" yaml:"directory_file,omitempty"`
}

// ServerConfig holds settings for the HTTP API.
type ServerConfig struct {
	// Addr is the listen address (default ":8080").
	Addr string `json:"addr" yaml:"addr"`

	// APIKey, when set, is required in the X-API-Key header of every
	// request outside /health.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`
}

// AppConfig groups all component configurations.
type AppConfig struct {
	Classifier ClassifierConfig `json:"classifier" yaml:"classifier"`
	Policy     PolicyConfig     `json:"policy" yaml:"policy"`
	Progress   ProgressConfig   `json:"progress" yaml:"progress"`
	Charity    CharityConfig    `json:"charity" yaml:"charity"`
	Server     ServerConfig     `json:"server" yaml:"server"`
}
