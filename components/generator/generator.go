package generator

import (
	"context"
	"errors"
	"fmt"

	openai "github.com/sashabaranov/go-openai"

	"github.com/bububa/pseudogen/components/prompt"
	"github.com/bububa/pseudogen/models"
)

var (
	// ErrMissingCredential is returned when no API key is configured.
	// It is raised at construction, before any network call.
	ErrMissingCredential = errors.New("missing API key")
	// ErrUnsupportedModel is returned when the model is not in the registry.
	ErrUnsupportedModel = errors.New("unsupported model")
)

// DefaultTemperature favors deterministic, literal transformations over
// creative rewriting.
const DefaultTemperature float32 = 0.2

// GenerationError wraps a transport or SDK failure from the chat API.
// Callers treat it as fatal; nothing retries.
type GenerationError struct {
	Model string
	Err   error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("generation failed for model %s: %v", e.Model, e.Err)
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}

// Generator sends single code chunks to the chat API and returns the
// pseudocode completion.
type Generator struct {
	Options
	clt *openai.Client
}

// New returns a Generator for the configured model, abstraction level and
// credential. It fails with ErrMissingCredential before any request is built
// when the API key is empty, and with ErrUnsupportedModel when the model is
// not registered.
func New(opts ...Option) (*Generator, error) {
	ret := new(Generator)
	ret.temperature = DefaultTemperature
	for _, opt := range opts {
		opt(&ret.Options)
	}
	if ret.model == "" {
		ret.model = models.Default()
	}
	if ret.apiKey == "" {
		return nil, ErrMissingCredential
	}
	if !models.Supported(ret.model) {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedModel, ret.model)
	}
	cfg := openai.DefaultConfig(ret.apiKey)
	if ret.baseURL != "" {
		cfg.BaseURL = ret.baseURL
	}
	ret.clt = openai.NewClientWithConfig(cfg)
	return ret, nil
}

// Generate issues one synchronous chat request carrying the level's system
// instruction and the chunk substituted into its user instruction, and
// returns the completion text unmodified. Unrecognized levels fall back to
// the generic prompt pair silently.
func (g *Generator) Generate(ctx context.Context, chunk string) (string, error) {
	tpl := prompt.TemplateFor(g.level)
	req := openai.ChatCompletionRequest{
		Model:       g.model,
		Temperature: g.temperature,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: tpl.System,
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: tpl.Render(chunk),
			},
		},
	}
	res, err := g.clt.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", &GenerationError{Model: g.model, Err: err}
	}
	if len(res.Choices) == 0 {
		return "", &GenerationError{Model: g.model, Err: errors.New("empty completion")}
	}
	if g.usage != nil {
		g.usage.Record(res.Usage)
	}
	return res.Choices[0].Message.Content, nil
}
