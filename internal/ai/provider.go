package ai

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/karthikn/pondy-guide/config"
)

// Provider is the uniform text-generation capability. Exactly one
// implementation is selected at startup from configuration and held for the
// process lifetime.
type Provider interface {
	// GenerateResponse returns the model's text for a prompt. systemPrompt
	// may be empty.
	GenerateResponse(ctx context.Context, prompt, systemPrompt string) (string, error)
	// GenerateJSON is GenerateResponse with the provider's JSON-forcing
	// mode enabled where the vendor supports one.
	GenerateJSON(ctx context.Context, prompt, systemPrompt string) (string, error)
	// GenerateResponseStream delivers the model's text incrementally.
	// onChunk is called once per fragment, in order, from the calling
	// goroutine; a non-nil return from onChunk aborts the stream and is
	// returned unchanged.
	GenerateResponseStream(ctx context.Context, prompt, systemPrompt string, onChunk func(chunk string) error) error
	// CheckConnection reports whether the backend is reachable. It returns
	// false on failure, never an error.
	CheckConnection(ctx context.Context) bool
	// Name identifies the selected variant for logging and persistence.
	Name() string
	// Model returns the configured model name.
	Model() string
}

// ConfigurationError signals a missing credential or endpoint detected at
// provider construction.
type ConfigurationError struct {
	Provider string
	Reason   string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("ai provider %s misconfigured: %s", e.Provider, e.Reason)
}

// ProviderError carries a vendor failure: a network error or a non-success
// response. The vendor's message is kept for diagnostics; callers surface a
// generic message to end users.
type ProviderError struct {
	Provider string
	Status   int
	Message  string
	Err      error
}

func (e *ProviderError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s provider error: %s", e.Provider, e.Message)
	}
	return fmt.Sprintf("%s provider error: %v", e.Provider, e.Err)
}

func (e *ProviderError) Unwrap() error { return e.Err }

// Options are the generation knobs shared by every variant.
type Options struct {
	Model       string
	Temperature float64
	MaxTokens   int
}

const (
	ProviderOllama = "ollama"
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
	ProviderGroq   = "groq"
)

// New selects a provider variant from configuration. API keys come from the
// environment; a missing key is a ConfigurationError.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (Provider, error) {
	opts := Options{
		Model:       cfg.AI.Model,
		Temperature: cfg.AI.Temperature,
		MaxTokens:   cfg.AI.MaxTokens,
	}

	name := strings.ToLower(strings.TrimSpace(cfg.AI.Provider))
	switch name {
	case ProviderOllama, "":
		return NewOllamaProvider(cfg.AI.OllamaURL, opts, logger)
	case ProviderGemini:
		return NewGeminiProvider(ctx, os.Getenv("GOOGLE_GEMINI_API_KEY"), opts, logger)
	case ProviderOpenAI:
		return NewOpenAIProvider(os.Getenv("OPENAI_API_KEY"), opts, logger)
	case ProviderGroq:
		return NewGroqProvider(os.Getenv("GROQ_API_KEY"), opts, logger)
	default:
		return nil, &ConfigurationError{Provider: name, Reason: "unknown provider name"}
	}
}
