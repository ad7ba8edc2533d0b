package ai

import (
	"context"
	"log/slog"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/shared"
)

const groqBaseURL = "https://api.groq.com/openai/v1"

// OpenAIProvider wraps the OpenAI chat-completion API. The same client
// also backs the Groq variant, which speaks the OpenAI-compatible protocol
// at its own base URL.
type OpenAIProvider struct {
	client openai.Client
	name   string
	opts   Options
	logger *slog.Logger
}

func NewOpenAIProvider(apiKey string, opts Options, logger *slog.Logger) (*OpenAIProvider, error) {
	if apiKey == "" {
		return nil, &ConfigurationError{Provider: ProviderOpenAI, Reason: "OPENAI_API_KEY is not set"}
	}
	if opts.Model == "" {
		opts.Model = "gpt-4o-mini"
	}
	return &OpenAIProvider{
		client: openai.NewClient(option.WithAPIKey(apiKey)),
		name:   ProviderOpenAI,
		opts:   opts,
		logger: logger,
	}, nil
}

func NewGroqProvider(apiKey string, opts Options, logger *slog.Logger) (*OpenAIProvider, error) {
	if apiKey == "" {
		return nil, &ConfigurationError{Provider: ProviderGroq, Reason: "GROQ_API_KEY is not set"}
	}
	if opts.Model == "" {
		opts.Model = "llama-3.3-70b-versatile"
	}
	return &OpenAIProvider{
		client: openai.NewClient(option.WithAPIKey(apiKey), option.WithBaseURL(groqBaseURL)),
		name:   ProviderGroq,
		opts:   opts,
		logger: logger,
	}, nil
}

func (p *OpenAIProvider) Name() string  { return p.name }
func (p *OpenAIProvider) Model() string { return p.opts.Model }

func (p *OpenAIProvider) GenerateResponse(ctx context.Context, prompt, systemPrompt string) (string, error) {
	return p.generate(ctx, prompt, systemPrompt, false)
}

func (p *OpenAIProvider) GenerateJSON(ctx context.Context, prompt, systemPrompt string) (string, error) {
	return p.generate(ctx, prompt, systemPrompt, true)
}

// GenerateResponseStream consumes the chat-completion SSE stream and hands
// each delta fragment to onChunk.
func (p *OpenAIProvider) GenerateResponseStream(ctx context.Context, prompt, systemPrompt string, onChunk func(chunk string) error) error {
	stream := p.client.Chat.Completions.NewStreaming(ctx, p.params(prompt, systemPrompt, false))
	defer stream.Close()

	for stream.Next() {
		chunk := stream.Current()
		if len(chunk.Choices) == 0 {
			continue
		}
		if delta := chunk.Choices[0].Delta.Content; delta != "" {
			if err := onChunk(delta); err != nil {
				return err
			}
		}
	}
	if err := stream.Err(); err != nil {
		return &ProviderError{Provider: p.name, Err: err}
	}
	return nil
}

func (p *OpenAIProvider) params(prompt, systemPrompt string, jsonMode bool) openai.ChatCompletionNewParams {
	messages := []openai.ChatCompletionMessageParamUnion{}
	if systemPrompt != "" {
		messages = append(messages, openai.SystemMessage(systemPrompt))
	}
	messages = append(messages, openai.UserMessage(prompt))

	params := openai.ChatCompletionNewParams{
		Model:       openai.ChatModel(p.opts.Model),
		Messages:    messages,
		Temperature: openai.Float(p.opts.Temperature),
		MaxTokens:   openai.Int(int64(p.opts.MaxTokens)),
	}
	if jsonMode {
		params.ResponseFormat = openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONObject: &shared.ResponseFormatJSONObjectParam{},
		}
	}
	return params
}

func (p *OpenAIProvider) generate(ctx context.Context, prompt, systemPrompt string, jsonMode bool) (string, error) {
	completion, err := p.client.Chat.Completions.New(ctx, p.params(prompt, systemPrompt, jsonMode))
	if err != nil {
		return "", &ProviderError{Provider: p.name, Err: err}
	}
	if len(completion.Choices) == 0 {
		return "", &ProviderError{Provider: p.name, Message: "no choices in completion response"}
	}
	return completion.Choices[0].Message.Content, nil
}

// CheckConnection attempts a trivial generation and reports success.
func (p *OpenAIProvider) CheckConnection(ctx context.Context) bool {
	_, err := p.GenerateResponse(ctx, "ping", "")
	if err != nil {
		p.logger.DebugContext(ctx, "Connectivity check failed", slog.String("provider", p.name), slog.Any("error", err))
		return false
	}
	return true
}
