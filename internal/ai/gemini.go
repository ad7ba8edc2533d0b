package ai

import (
	"context"
	"log/slog"

	"google.golang.org/genai"
)

// GeminiProvider wraps the Google genai SDK.
type GeminiProvider struct {
	client *genai.Client
	opts   Options
	logger *slog.Logger
}

func NewGeminiProvider(ctx context.Context, apiKey string, opts Options, logger *slog.Logger) (*GeminiProvider, error) {
	if apiKey == "" {
		return nil, &ConfigurationError{Provider: ProviderGemini, Reason: "GOOGLE_GEMINI_API_KEY is not set"}
	}
	if opts.Model == "" {
		opts.Model = "gemini-2.0-flash"
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, &ConfigurationError{Provider: ProviderGemini, Reason: err.Error()}
	}

	return &GeminiProvider{client: client, opts: opts, logger: logger}, nil
}

func (p *GeminiProvider) Name() string  { return ProviderGemini }
func (p *GeminiProvider) Model() string { return p.opts.Model }

func (p *GeminiProvider) GenerateResponse(ctx context.Context, prompt, systemPrompt string) (string, error) {
	return p.generate(ctx, prompt, systemPrompt, "")
}

func (p *GeminiProvider) GenerateJSON(ctx context.Context, prompt, systemPrompt string) (string, error) {
	return p.generate(ctx, prompt, systemPrompt, "application/json")
}

// GenerateResponseStream iterates the SDK's streaming sequence and hands
// each partial response's text to onChunk.
func (p *GeminiProvider) GenerateResponseStream(ctx context.Context, prompt, systemPrompt string, onChunk func(chunk string) error) error {
	for resp, err := range p.client.Models.GenerateContentStream(ctx, p.opts.Model, genai.Text(prompt), p.config(systemPrompt, "")) {
		if err != nil {
			return &ProviderError{Provider: ProviderGemini, Err: err}
		}
		if txt := resp.Text(); txt != "" {
			if err := onChunk(txt); err != nil {
				return err
			}
		}
	}
	return nil
}

func (p *GeminiProvider) config(systemPrompt, mimeType string) *genai.GenerateContentConfig {
	cfg := &genai.GenerateContentConfig{
		Temperature:     genai.Ptr[float32](float32(p.opts.Temperature)),
		MaxOutputTokens: int32(p.opts.MaxTokens),
	}
	if systemPrompt != "" {
		cfg.SystemInstruction = &genai.Content{Parts: []*genai.Part{{Text: systemPrompt}}}
	}
	if mimeType != "" {
		cfg.ResponseMIMEType = mimeType
	}
	return cfg
}

func (p *GeminiProvider) generate(ctx context.Context, prompt, systemPrompt, mimeType string) (string, error) {
	result, err := p.client.Models.GenerateContent(ctx, p.opts.Model, genai.Text(prompt), p.config(systemPrompt, mimeType))
	if err != nil {
		return "", &ProviderError{Provider: ProviderGemini, Err: err}
	}

	txt := result.Text()
	if txt == "" {
		return "", &ProviderError{Provider: ProviderGemini, Message: "empty response from model"}
	}
	return txt, nil
}

// CheckConnection attempts a trivial generation and reports success.
func (p *GeminiProvider) CheckConnection(ctx context.Context) bool {
	_, err := p.GenerateResponse(ctx, "ping", "")
	if err != nil {
		p.logger.DebugContext(ctx, "Gemini connectivity check failed", slog.Any("error", err))
		return false
	}
	return true
}
