package chunker

import (
	"errors"
	"fmt"

	"github.com/pkoukk/tiktoken-go"

	"github.com/bububa/pseudogen/models"
)

// ErrUnknownModelEncoding is returned when no token encoding is registered
// for the requested model identifier.
var ErrUnknownModelEncoding = errors.New("no token encoding registered for model")

// DefaultMaxTokens is the chunk budget used when none is configured.
const DefaultMaxTokens = 4096

// Chunker splits text into fixed-size token windows using the tiktoken
// encoding registered for a model.
type Chunker struct {
	Options
	tke *tiktoken.Tiktoken
}

// New returns a Chunker for the configured model and token budget.
// It fails with ErrUnknownModelEncoding if the model has no registered
// encoding.
func New(opts ...Option) (*Chunker, error) {
	ret := new(Chunker)
	for _, opt := range opts {
		opt(&ret.Options)
	}
	if ret.model == "" {
		ret.model = models.Default()
	}
	if ret.maxTokens == 0 {
		ret.maxTokens = DefaultMaxTokens
	}
	if ret.maxTokens < 0 {
		return nil, fmt.Errorf("token budget must be positive, got %d", ret.maxTokens)
	}
	name, ok := models.EncodingFor(ret.model)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownModelEncoding, ret.model)
	}
	tke, err := tiktoken.GetEncoding(name)
	if err != nil {
		return nil, fmt.Errorf("failed to get encoding: %w", err)
	}
	ret.tke = tke
	return ret, nil
}

// TokenCount returns the exact number of tokens in the text according to
// the model's encoding.
func (c *Chunker) TokenCount(text string) int {
	return len(c.tke.Encode(text, nil, nil))
}

// Split partitions text into chunks of at most the configured token budget.
// Text within budget is returned unchanged as a single chunk; no re-encode
// round trip happens on that path. Oversized text is cut into contiguous
// windows of exactly the budget (the final window may be shorter), each
// decoded independently and returned in original order.
//
// Windows are cut purely on token boundaries with no regard for line or
// statement structure, so a chunk may start or end mid-construct. Accepted
// approximation.
func (c *Chunker) Split(text string) []string {
	tokens := c.tke.Encode(text, nil, nil)
	if len(tokens) <= c.maxTokens {
		return []string{text}
	}
	chunks := make([]string, 0, (len(tokens)+c.maxTokens-1)/c.maxTokens)
	for start := 0; start < len(tokens); start += c.maxTokens {
		end := start + c.maxTokens
		if end > len(tokens) {
			end = len(tokens)
		}
		chunks = append(chunks, c.tke.Decode(tokens[start:end]))
	}
	return chunks
}
