package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/bububa/pseudogen/components/chunker"
	"github.com/bububa/pseudogen/components/prompt"
	"github.com/bububa/pseudogen/models"
)

// Config holds run defaults resolved from built-ins, an optional TOML file
// and PSEUDOGEN_* environment variables, in that order. Command-line flags
// override all of it.
type Config struct {
	// Model is the target model identifier
	Model string `koanf:"model" validate:"required"`
	// Level is the abstraction level, 0-3
	Level int `koanf:"level" validate:"min=0,max=3"`
	// MaxTokens is the per-chunk token budget
	MaxTokens int `koanf:"max_tokens" validate:"gt=0"`
	// LogLevel is a zerolog level name (debug, info, warn, error)
	LogLevel string `koanf:"log_level"`
	// ExtractHTML converts HTML payloads from URL inputs to markdown
	ExtractHTML bool `koanf:"extract_html"`
	// Output is the output file path; empty means stdout
	Output string `koanf:"output"`
}

// EnvPrefix namespaces the environment overrides, e.g. PSEUDOGEN_MAX_TOKENS.
const EnvPrefix = "PSEUDOGEN_"

var defaultPaths = []string{"./pseudogen.toml", "$HOME/.pseudogen.toml"}

// Load resolves the configuration. An explicit configPath must exist; the
// default locations are tried quietly when it is empty.
func Load(configPath string) (*Config, error) {
	k := koanf.New(".")

	k.Load(confmap.Provider(map[string]interface{}{
		"model":      models.Default(),
		"level":      int(prompt.DefaultLevel),
		"max_tokens": chunker.DefaultMaxTokens,
		"log_level":  "info",
	}, "."), nil)

	if configPath != "" {
		if err := k.Load(file.Provider(configPath), toml.Parser()); err != nil {
			return nil, fmt.Errorf("error loading config: %w", err)
		}
	} else {
		for _, path := range defaultPaths {
			path = os.ExpandEnv(path)
			if _, err := os.Stat(path); err == nil {
				if err := k.Load(file.Provider(path), toml.Parser()); err == nil {
					break
				}
			}
		}
	}

	k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil)

	var config Config
	if err := k.Unmarshal("", &config); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}
	return &config, nil
}

// Validate checks field constraints and model registration.
func Validate(config *Config) error {
	if err := validator.New().Struct(config); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if !models.Supported(config.Model) {
		return fmt.Errorf("unknown model %q, try --list-models", config.Model)
	}
	return nil
}
