package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"

	"pagecraft/internal/domain/specjson"
)

type OpenAIOptions struct {
	APIKey       string
	Model        string
	BaseURL      string
	Organization string
	Temperature  float32
	HTTPClient   *http.Client
	OnWarning    func(reason, detail string)
}

type OpenAIGenerator struct {
	client      *openai.Client
	model       string
	temperature float32
}

const openAIDefaultTimeout = 90 * time.Second

const defaultOpenAIModel = openai.GPT4oMini

var openAIModelCanonical = map[string]string{
	openai.GPT4oMini: openai.GPT4oMini,
	openai.GPT4o:     openai.GPT4o,
	"gpt-4.1":        "gpt-4.1",
	"gpt-4.1-mini":   "gpt-4.1-mini",
}

var openAIModelAliases = map[string]string{
	"gpt4o-mini":             openai.GPT4oMini,
	"gpt4omini":              openai.GPT4oMini,
	"gpt-4o-mini-2024-07-18": openai.GPT4oMini,
	"gpt4o":                  openai.GPT4o,
	"gpt-4o-2024-08-06":      openai.GPT4o,
	"gpt4.1":                 "gpt-4.1",
	"gpt-41":                 "gpt-4.1",
	"gpt4.1-mini":            "gpt-4.1-mini",
	"gpt-41-mini":            "gpt-4.1-mini",
}

func NewOpenAIGenerator(opts OpenAIOptions) (*OpenAIGenerator, error) {
	apiKey := strings.TrimSpace(opts.APIKey)
	if apiKey == "" {
		return nil, errors.New("openai api key is required")
	}
	modelInput := strings.TrimSpace(opts.Model)
	model, reason := normalizeOpenAIModel(modelInput)
	if reason != "" && opts.OnWarning != nil {
		opts.OnWarning("model_"+reason, fmt.Sprintf("requested=%s resolved=%s", coalesce(modelInput, defaultOpenAIModel), model))
	}

	cfg := openai.DefaultConfig(apiKey)
	if base := strings.TrimRight(strings.TrimSpace(opts.BaseURL), "/"); base != "" {
		cfg.BaseURL = base
	}
	cfg.OrgID = strings.TrimSpace(opts.Organization)
	if opts.HTTPClient != nil {
		cfg.HTTPClient = opts.HTTPClient
	} else {
		cfg.HTTPClient = &http.Client{Timeout: openAIDefaultTimeout}
	}

	temperature := opts.Temperature
	if temperature == 0 {
		temperature = 0.7
	}
	return &OpenAIGenerator{
		client:      openai.NewClientWithConfig(cfg),
		model:       model,
		temperature: temperature,
	}, nil
}

func (o *OpenAIGenerator) Name() string { return openAIProviderName }

// Generate asks for a JSON object response and validates it.
func (o *OpenAIGenerator) Generate(ctx context.Context, prompt string) (*specjson.GeneratedSpec, error) {
	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       o.model,
		Temperature: o.temperature,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return nil, openAIError(err)
	}
	if len(resp.Choices) == 0 {
		return nil, upstreamError(openAIProviderName, "empty_choices", 0, nil)
	}
	text := strings.TrimSpace(resp.Choices[0].Message.Content)
	if text == "" {
		return nil, upstreamError(openAIProviderName, "empty_response", 0, nil)
	}
	return decodeSpec(text)
}

func openAIError(err error) *UpstreamError {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return upstreamError(openAIProviderName, fmt.Sprintf("http_%d", apiErr.HTTPStatusCode), apiErr.HTTPStatusCode, err)
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return upstreamError(openAIProviderName, fmt.Sprintf("http_%d", reqErr.HTTPStatusCode), reqErr.HTTPStatusCode, err)
	}
	return upstreamError(openAIProviderName, "http_request", 0, err)
}

func normalizeOpenAIModel(input string) (string, string) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return defaultOpenAIModel, ""
	}
	lower := strings.ToLower(trimmed)
	if canonical, ok := openAIModelCanonical[lower]; ok {
		return canonical, ""
	}
	key := strings.ReplaceAll(lower, " ", "-")
	key = strings.ReplaceAll(key, "_", "-")
	if canonical, ok := openAIModelCanonical[key]; ok {
		return canonical, "alias"
	}
	if alias, ok := openAIModelAliases[key]; ok {
		return alias, "alias"
	}
	return defaultOpenAIModel, "defaulted"
}
