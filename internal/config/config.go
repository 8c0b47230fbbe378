package config

import (
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	defaultAPIURL         = "https://api.github.com/"
	defaultRequestTimeout = "30s"
)

// Config is the top-level configuration.
type Config struct {
	Keywords Mapping      `json:"keywords" yaml:"keywords"`
	Repos    Mapping      `json:"repos" yaml:"repos"`
	GitHub   GitHubConfig `json:"github" yaml:"github"`
}

// GitHubConfig holds settings for the GitHub REST API.
type GitHubConfig struct {
	APIURL            string `json:"api_url" yaml:"api_url"`
	RequestTimeoutRaw string `json:"request_timeout" yaml:"request_timeout"`
}

// RequestTimeout returns the parsed per-request timeout.
func (g GitHubConfig) RequestTimeout() (time.Duration, error) {
	if g.RequestTimeoutRaw == "" {
		return 30 * time.Second, nil
	}
	return time.ParseDuration(g.RequestTimeoutRaw)
}

// envVarPattern matches ${VAR} patterns.
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)\}`)

// expandEnvVars replaces ${VAR} placeholders with environment variable values.
// Returns an error if any referenced variable is not set.
func expandEnvVars(data []byte) ([]byte, error) {
	var missing []string

	result := envVarPattern.ReplaceAllFunc(data, func(match []byte) []byte {
		varName := envVarPattern.FindSubmatch(match)[1]
		val, ok := os.LookupEnv(string(varName))
		if !ok {
			missing = append(missing, string(varName))
			return match
		}
		return []byte(val)
	})

	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}
	return result, nil
}

// Format identifies the encoding of a config file.
type Format int

const (
	FormatJSON Format = iota
	FormatYAML
)

// formatForPath picks the decoder from the file extension. Anything that is
// not .yaml or .yml is read as JSON.
func formatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Load reads and parses a config file from the given path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	return Parse(data, formatForPath(path))
}

// Parse parses config from raw bytes, expanding env vars and validating.
func Parse(data []byte, format Format) (*Config, error) {
	expanded, err := expandEnvVars(data)
	if err != nil {
		return nil, err
	}

	var cfg Config
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(expanded, &cfg); err != nil {
			return nil, fmt.Errorf("parsing config YAML: %w", err)
		}
	default:
		if err := json.Unmarshal(expanded, &cfg); err != nil {
			return nil, fmt.Errorf("parsing config JSON: %w", err)
		}
	}

	applyDefaults(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.GitHub.APIURL == "" {
		cfg.GitHub.APIURL = defaultAPIURL
	}
	if !strings.HasSuffix(cfg.GitHub.APIURL, "/") {
		cfg.GitHub.APIURL += "/"
	}
	if cfg.GitHub.RequestTimeoutRaw == "" {
		cfg.GitHub.RequestTimeoutRaw = defaultRequestTimeout
	}
}

func validate(cfg *Config) error {
	u, err := url.Parse(cfg.GitHub.APIURL)
	if err != nil {
		return fmt.Errorf("invalid api_url %q: %w", cfg.GitHub.APIURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("api_url must be an http(s) URL, got %q", cfg.GitHub.APIURL)
	}

	d, err := time.ParseDuration(cfg.GitHub.RequestTimeoutRaw)
	if err != nil {
		return fmt.Errorf("invalid request_timeout %q: %w", cfg.GitHub.RequestTimeoutRaw, err)
	}
	if d <= 0 {
		return fmt.Errorf("request_timeout must be positive, got %s", d)
	}

	return nil
}
