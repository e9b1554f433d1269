package server

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"unicode"

	"github.com/BurntSushi/toml"
	"github.com/iwvelando/finlit/internal/config"
	"github.com/iwvelando/finlit/pkg/constants"
	"gopkg.in/yaml.v3"
)

// Config defines runtime parameters for the HTTP server.
type Config struct {
	Address       string               `yaml:"address"`
	MaxUploadSize string               `yaml:"maxUploadSize"`
	Logging       config.LoggingConfig `yaml:"logging"`

	// RulesConfig optionally names a finlit configuration whose countries and
	// classification rules the API uses instead of the built-in ones.
	RulesConfig string `yaml:"rulesConfig"`

	uploadSizeBytes int64
}

// LoadConfig loads the server configuration from YAML, or from TOML when the
// path ends in .toml. If the file does not exist, defaults are returned
// without error.
func LoadConfig(path string) (*Config, error) {
	cfg := &Config{
		Address:         constants.DefaultServerAddress,
		MaxUploadSize:   strconv.FormatInt(constants.DefaultMaxUploadSizeBytes, 10),
		uploadSizeBytes: constants.DefaultMaxUploadSizeBytes,
	}

	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read server config: %w", err)
	}

	if strings.EqualFold(filepath.Ext(path), ".toml") {
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse server config: %w", err)
		}
	} else if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse server config: %w", err)
	}

	if err := cfg.normalize(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// UploadSizeBytes returns the configured request body limit in bytes.
func (c *Config) UploadSizeBytes() int64 {
	return c.uploadSizeBytes
}

// RuleConfiguration returns the finlit configuration named by RulesConfig, or
// an empty configuration when none is set.
func (c *Config) RuleConfiguration() (*config.Configuration, error) {
	if strings.TrimSpace(c.RulesConfig) == "" {
		return &config.Configuration{}, nil
	}
	conf, err := config.LoadConfiguration(c.RulesConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to load rules config %s: %w", c.RulesConfig, err)
	}
	return conf, nil
}

func (c *Config) normalize() error {
	c.Address = strings.TrimSpace(c.Address)
	if c.Address == "" {
		c.Address = constants.DefaultServerAddress
	}

	size, err := ParseSize(c.MaxUploadSize)
	if err != nil {
		return err
	}
	if size <= 0 {
		size = constants.DefaultMaxUploadSizeBytes
	}
	c.uploadSizeBytes = size
	return nil
}

// ParseSize converts a human-friendly byte string (e.g., "256K", "10M") into
// bytes. An empty string yields the default limit.
func ParseSize(value string) (int64, error) {
	upper := strings.ToUpper(strings.TrimSpace(value))
	if upper == "" {
		return constants.DefaultMaxUploadSizeBytes, nil
	}

	idx := strings.LastIndexFunc(upper, unicode.IsDigit) + 1
	if idx == 0 {
		return 0, fmt.Errorf("invalid size: %s", value)
	}

	n, err := strconv.ParseInt(strings.TrimSpace(upper[:idx]), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid size value %q: %w", value, err)
	}

	var multiplier int64
	switch strings.TrimSpace(upper[idx:]) {
	case "", "B":
		multiplier = 1
	case "K", "KB":
		multiplier = 1 << 10
	case "M", "MB":
		multiplier = 1 << 20
	default:
		return 0, fmt.Errorf("unsupported size unit in %q", value)
	}

	if n > (1<<62)/multiplier {
		return 0, fmt.Errorf("size overflow for value %s", value)
	}
	return n * multiplier, nil
}
