package generator

import (
	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/atomic"
)

// Usage accumulates token consumption across requests for end-of-run
// reporting.
type Usage struct {
	requests     atomic.Int64
	inputTokens  atomic.Int64
	outputTokens atomic.Int64
}

// Record adds one request's reported usage to the accumulator.
func (u *Usage) Record(v openai.Usage) {
	u.requests.Inc()
	u.inputTokens.Add(int64(v.PromptTokens))
	u.outputTokens.Add(int64(v.CompletionTokens))
}

// Requests returns the number of recorded requests.
func (u *Usage) Requests() int64 {
	return u.requests.Load()
}

// InputTokens returns the accumulated prompt token count.
func (u *Usage) InputTokens() int64 {
	return u.inputTokens.Load()
}

// OutputTokens returns the accumulated completion token count.
func (u *Usage) OutputTokens() int64 {
	return u.outputTokens.Load()
}
