package source

import "net/http"

// Options holds Resolver configuration.
type Options struct {
	client      *http.Client
	extractHTML bool
}

// Option is a function type for configuring resolver Options.
// This follows the functional options pattern for clean and flexible configuration.
type Option func(*Options)

// WithHTTPClient overrides the HTTP client used for URL inputs.
func WithHTTPClient(client *http.Client) Option {
	return func(o *Options) {
		o.client = client
	}
}

// WithExtractHTML enables converting HTML payloads to markdown before
// narration. Off by default; raw text is the contract.
func WithExtractHTML(extract bool) Option {
	return func(o *Options) {
		o.extractHTML = extract
	}
}
