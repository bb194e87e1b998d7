package models

// Model describes a chat model known to pseudogen.
type Model struct {
	// ID is the model identifier sent to the API
	ID string
	// Description is a human readable summary used for listing
	Description string
	// Encoding is the tiktoken encoding name used for token counting
	Encoding string
}

// registry holds every supported model in listing order.
// All entries are OpenAI chat models with a registered tiktoken encoding,
// which the chunker depends on.
var registry = []Model{
	{
		ID:          "gpt-3.5-turbo",
		Description: "fast, low cost, good enough for most code narration",
		Encoding:    "cl100k_base",
	},
	{
		ID:          "gpt-4",
		Description: "slower and pricier, better at long-range structure",
		Encoding:    "cl100k_base",
	},
	{
		ID:          "gpt-4-turbo",
		Description: "gpt-4 quality with a larger context window",
		Encoding:    "cl100k_base",
	},
	{
		ID:          "gpt-4o",
		Description: "current flagship, strongest reasoning over code",
		Encoding:    "o200k_base",
	},
	{
		ID:          "gpt-4o-mini",
		Description: "small flagship variant, cheap and quick",
		Encoding:    "o200k_base",
	},
}

// Default returns the model used when none is specified.
func Default() string {
	return registry[0].ID
}

// Get retrieves a registered model by identifier.
func Get(id string) (Model, bool) {
	for _, m := range registry {
		if m.ID == id {
			return m, true
		}
	}
	return Model{}, false
}

// Supported reports whether the model identifier is registered.
func Supported(id string) bool {
	_, ok := Get(id)
	return ok
}

// EncodingFor returns the tiktoken encoding name registered for the model.
func EncodingFor(id string) (string, bool) {
	m, ok := Get(id)
	if !ok {
		return "", false
	}
	return m.Encoding, true
}

// List returns all registered models in a stable order.
func List() []Model {
	ret := make([]Model, len(registry))
	copy(ret, registry)
	return ret
}
