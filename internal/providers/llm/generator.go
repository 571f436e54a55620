// Package llm calls model providers and turns their replies into a
// validated GeneratedSpec.
package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"pagecraft/internal/domain"
	"pagecraft/internal/domain/specjson"
)

const (
	openAIProviderName = "openai"
	geminiProviderName = "gemini"
)

const systemPrompt = "You design landing pages. You only respond with a single valid JSON object."

// Generator produces a validated spec from a prompt. Invalid model output is
// reported as *specjson.ValidationError; transport and provider failures as
// *UpstreamError.
type Generator interface {
	Generate(ctx context.Context, prompt string) (*specjson.GeneratedSpec, error)
	Name() string
}

// Options selects and configures a provider.
type Options struct {
	Provider string
	OpenAI   OpenAIOptions
	Gemini   GeminiOptions
}

// NewGenerator builds the generator named by opts.Provider.
func NewGenerator(opts Options) (Generator, error) {
	switch strings.ToLower(strings.TrimSpace(opts.Provider)) {
	case "", openAIProviderName:
		gen, err := NewOpenAIGenerator(opts.OpenAI)
		if err != nil {
			return nil, err
		}
		return gen, nil
	case geminiProviderName:
		gen, err := NewGeminiGenerator(opts.Gemini)
		if err != nil {
			return nil, err
		}
		return gen, nil
	default:
		return nil, fmt.Errorf("llm: unsupported provider %q", opts.Provider)
	}
}

// UpstreamError is a failure of the provider call itself.
type UpstreamError struct {
	Provider string
	Status   int
	Reason   string
	Err      error
}

func (e *UpstreamError) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Provider, e.Reason)
	if e.Status != 0 {
		msg = fmt.Sprintf("%s (status %d)", msg, e.Status)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *UpstreamError) Unwrap() []error {
	if e.Err == nil {
		return []error{domain.ErrUpstreamGeneration}
	}
	return []error{domain.ErrUpstreamGeneration, e.Err}
}

// Retryable reports whether a later call could succeed: rate limits and
// provider side errors.
func (e *UpstreamError) Retryable() bool {
	return e.Status == 429 || e.Status >= 500
}

func upstreamError(provider, reason string, status int, err error) *UpstreamError {
	if errors.Is(err, context.DeadlineExceeded) {
		reason = "timeout"
	} else if errors.Is(err, context.Canceled) {
		reason = "canceled"
	}
	return &UpstreamError{Provider: provider, Status: status, Reason: reason, Err: err}
}

func decodeSpec(text string) (*specjson.GeneratedSpec, error) {
	return specjson.Decode([]byte(extractJSONFragment(text)))
}
