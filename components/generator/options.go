package generator

import (
	"github.com/bububa/pseudogen/components/prompt"
)

// Options holds Generator configuration.
type Options struct {
	apiKey      string
	baseURL     string
	model       string
	level       prompt.Level
	temperature float32
	usage       *Usage
}

// Option is a function type for configuring generator Options.
// This follows the functional options pattern for clean and flexible configuration.
type Option func(*Options)

// WithAPIKey sets the API credential.
func WithAPIKey(apiKey string) Option {
	return func(o *Options) {
		o.apiKey = apiKey
	}
}

// WithBaseURL overrides the API base URL.
func WithBaseURL(baseURL string) Option {
	return func(o *Options) {
		o.baseURL = baseURL
	}
}

// WithModel sets the target model identifier.
func WithModel(model string) Option {
	return func(o *Options) {
		o.model = model
	}
}

// WithLevel sets the abstraction level for prompt selection.
func WithLevel(level prompt.Level) Option {
	return func(o *Options) {
		o.level = level
	}
}

// WithTemperature overrides the sampling temperature.
func WithTemperature(temperature float32) Option {
	return func(o *Options) {
		o.temperature = temperature
	}
}

// WithUsage attaches a usage accumulator that records per-request token
// consumption.
func WithUsage(usage *Usage) Option {
	return func(o *Options) {
		o.usage = usage
	}
}

// Model returns the configured model identifier.
func (o *Options) Model() string {
	return o.model
}

// Level returns the configured abstraction level.
func (o *Options) Level() prompt.Level {
	return o.level
}
