package pseudogen

import (
	"net/http"

	"github.com/rs/zerolog"

	"github.com/bububa/pseudogen/components/prompt"
)

// Options holds Pipeline configuration.
type Options struct {
	apiKey      string
	baseURL     string
	model       string
	level       prompt.Level
	maxTokens   int
	extractHTML bool
	httpClient  *http.Client
	logger      zerolog.Logger
	loggerSet   bool
}

// Option is a function type for configuring pipeline Options.
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

// WithLevel sets the abstraction level.
func WithLevel(level prompt.Level) Option {
	return func(o *Options) {
		o.level = level
	}
}

// WithMaxTokens sets the per-chunk token budget.
func WithMaxTokens(maxTokens int) Option {
	return func(o *Options) {
		o.maxTokens = maxTokens
	}
}

// WithExtractHTML enables HTML to markdown extraction for URL inputs.
func WithExtractHTML(extract bool) Option {
	return func(o *Options) {
		o.extractHTML = extract
	}
}

// WithHTTPClient overrides the HTTP client used for URL inputs.
func WithHTTPClient(client *http.Client) Option {
	return func(o *Options) {
		o.httpClient = client
	}
}

// WithLogger sets the logger owned by the pipeline. Without it the pipeline
// stays silent.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *Options) {
		o.logger = logger
		o.loggerSet = true
	}
}

func (o *Options) applyDefaults(opts []Option) {
	o.level = prompt.DefaultLevel
	for _, opt := range opts {
		opt(o)
	}
	if !o.loggerSet {
		o.logger = zerolog.Nop()
	}
}
