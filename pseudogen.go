// Package pseudogen renders source code as natural-language pseudocode at a
// configurable abstraction level by dispatching token-bounded chunks to a
// chat completion API.
package pseudogen

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/xid"

	"github.com/bububa/pseudogen/components/chunker"
	"github.com/bububa/pseudogen/components/generator"
	"github.com/bububa/pseudogen/components/source"
)

// Separator joins chunk outputs within an input and input outputs with each
// other.
const Separator = "\n\n"

// Pipeline wires input resolution, chunking and generation into the
// sequential per-input loop. There is no concurrency, no retrying and no
// partial-failure recovery: the first failure anywhere aborts the run.
type Pipeline struct {
	Options
	resolver  *source.Resolver
	chunker   *chunker.Chunker
	generator *generator.Generator
	usage     *generator.Usage
}

// New builds a Pipeline from options. Construction validates the model and
// credential up front so a misconfigured run fails before any input is read.
func New(opts ...Option) (*Pipeline, error) {
	ret := new(Pipeline)
	ret.applyDefaults(opts)

	var err error
	ret.resolver = source.New(
		source.WithHTTPClient(ret.httpClient),
		source.WithExtractHTML(ret.extractHTML),
	)
	if ret.chunker, err = chunker.New(
		chunker.WithModel(ret.model),
		chunker.WithMaxTokens(ret.maxTokens),
	); err != nil {
		return nil, err
	}
	ret.usage = new(generator.Usage)
	if ret.generator, err = generator.New(
		generator.WithAPIKey(ret.apiKey),
		generator.WithBaseURL(ret.baseURL),
		generator.WithModel(ret.model),
		generator.WithLevel(ret.level),
		generator.WithUsage(ret.usage),
	); err != nil {
		return nil, err
	}
	return ret, nil
}

// Usage returns the accumulated token usage for the pipeline's requests.
func (p *Pipeline) Usage() *generator.Usage {
	return p.usage
}

// Run processes the inputs strictly in order and returns the joined output.
// Each input resolves to raw text, splits into token-bounded chunks when over
// budget, and yields one generation per chunk. Chunk outputs are joined with
// a blank line in chunk order; input outputs are joined the same way in input
// order.
func (p *Pipeline) Run(ctx context.Context, inputs []string) (string, error) {
	if len(inputs) == 0 {
		return "", fmt.Errorf("no inputs to process")
	}
	logger := p.logger.With().Str("run_id", xid.New().String()).Logger()
	started := time.Now()
	sections := make([]string, 0, len(inputs))
	for _, input := range inputs {
		text, err := p.resolver.Resolve(ctx, input)
		if err != nil {
			return "", err
		}
		total := p.chunker.TokenCount(text)
		chunks := []string{text}
		if total > p.chunker.MaxTokens() {
			chunks = p.chunker.Split(text)
		}
		logger.Debug().
			Str("input", input).
			Int("tokens", total).
			Int("chunks", len(chunks)).
			Msg("resolved input")
		outputs := make([]string, 0, len(chunks))
		for i, chunk := range chunks {
			out, err := p.generator.Generate(ctx, chunk)
			if err != nil {
				return "", err
			}
			logger.Debug().
				Str("input", input).
				Int("chunk", i).
				Msg("chunk generated")
			outputs = append(outputs, out)
		}
		sections = append(sections, strings.Join(outputs, Separator))
	}
	logger.Info().
		Int64("requests", p.usage.Requests()).
		Int64("input_tokens", p.usage.InputTokens()).
		Int64("output_tokens", p.usage.OutputTokens()).
		Dur("elapsed", time.Since(started)).
		Msg("run complete")
	return strings.Join(sections, Separator), nil
}
