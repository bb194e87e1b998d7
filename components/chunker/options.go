package chunker

// Options holds Chunker configuration.
type Options struct {
	model     string
	maxTokens int
}

// Option is a function type for configuring chunker Options.
// This follows the functional options pattern for clean and flexible configuration.
type Option func(*Options)

// WithModel sets the model whose encoding is used for tokenization.
func WithModel(model string) Option {
	return func(o *Options) {
		o.model = model
	}
}

// WithMaxTokens sets the per-chunk token budget.
func WithMaxTokens(maxTokens int) Option {
	return func(o *Options) {
		o.maxTokens = maxTokens
	}
}

// Model returns the configured model identifier.
func (o *Options) Model() string {
	return o.model
}

// MaxTokens returns the configured per-chunk token budget.
func (o *Options) MaxTokens() int {
	return o.maxTokens
}
