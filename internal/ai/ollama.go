package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

const defaultOllamaURL = "http://localhost:11434"

// OllamaProvider talks to a local inference server over its native HTTP
// API: POST /api/generate for text, GET /api/tags as a liveness probe.
type OllamaProvider struct {
	baseURL string
	opts    Options
	client  *http.Client
	logger  *slog.Logger
}

type ollamaGenerateRequest struct {
	Model   string         `json:"model"`
	Prompt  string         `json:"prompt"`
	System  string         `json:"system,omitempty"`
	Stream  bool           `json:"stream"`
	Format  string         `json:"format,omitempty"`
	Options map[string]any `json:"options,omitempty"`
}

type ollamaGenerateResponse struct {
	Response string `json:"response"`
	Done     bool   `json:"done"`
	Error    string `json:"error,omitempty"`
}

func NewOllamaProvider(baseURL string, opts Options, logger *slog.Logger) (*OllamaProvider, error) {
	if baseURL == "" {
		baseURL = defaultOllamaURL
	}
	if opts.Model == "" {
		return nil, &ConfigurationError{Provider: ProviderOllama, Reason: "model name is required"}
	}
	return &OllamaProvider{
		baseURL: strings.TrimRight(baseURL, "/"),
		opts:    opts,
		client:  &http.Client{Timeout: 120 * time.Second},
		logger:  logger,
	}, nil
}

func (p *OllamaProvider) Name() string  { return ProviderOllama }
func (p *OllamaProvider) Model() string { return p.opts.Model }

func (p *OllamaProvider) GenerateResponse(ctx context.Context, prompt, systemPrompt string) (string, error) {
	return p.generate(ctx, prompt, systemPrompt, "")
}

func (p *OllamaProvider) GenerateJSON(ctx context.Context, prompt, systemPrompt string) (string, error) {
	return p.generate(ctx, prompt, systemPrompt, "json")
}

// GenerateResponseStream runs the same generation with stream enabled. The
// server answers with one JSON object per line, each carrying a text
// fragment, until an object with done set closes the stream.
func (p *OllamaProvider) GenerateResponseStream(ctx context.Context, prompt, systemPrompt string, onChunk func(chunk string) error) error {
	resp, err := p.post(ctx, prompt, systemPrompt, "", true)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	dec := json.NewDecoder(resp.Body)
	for {
		var part ollamaGenerateResponse
		if err := dec.Decode(&part); err != nil {
			if err == io.EOF {
				return nil
			}
			return &ProviderError{Provider: ProviderOllama, Message: "malformed stream body", Err: err}
		}
		if part.Error != "" {
			return &ProviderError{Provider: ProviderOllama, Message: part.Error}
		}
		if part.Response != "" {
			if err := onChunk(part.Response); err != nil {
				return err
			}
		}
		if part.Done {
			return nil
		}
	}
}

func (p *OllamaProvider) generate(ctx context.Context, prompt, systemPrompt, format string) (string, error) {
	resp, err := p.post(ctx, prompt, systemPrompt, format, false)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	var result ollamaGenerateResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", &ProviderError{Provider: ProviderOllama, Message: "malformed response body", Err: err}
	}
	return result.Response, nil
}

// post issues /api/generate and returns the response with a success status.
// The caller owns the body.
func (p *OllamaProvider) post(ctx context.Context, prompt, systemPrompt, format string, stream bool) (*http.Response, error) {
	payload := ollamaGenerateRequest{
		Model:  p.opts.Model,
		Prompt: prompt,
		System: systemPrompt,
		Stream: stream,
		Format: format,
		Options: map[string]any{
			"temperature": p.opts.Temperature,
			"top_p":       0.9,
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal generate request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/api/generate", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build generate request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, &ProviderError{Provider: ProviderOllama, Err: err}
	}

	if resp.StatusCode >= 400 {
		data, _ := io.ReadAll(resp.Body)
		resp.Body.Close()
		msg := strings.TrimSpace(string(data))
		var errPayload ollamaGenerateResponse
		if json.Unmarshal(data, &errPayload) == nil && errPayload.Error != "" {
			msg = errPayload.Error
		}
		return nil, &ProviderError{Provider: ProviderOllama, Status: resp.StatusCode, Message: msg}
	}
	return resp, nil
}

// CheckConnection probes GET /api/tags rather than running a generation.
func (p *OllamaProvider) CheckConnection(ctx context.Context) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+"/api/tags", nil)
	if err != nil {
		return false
	}
	resp, err := p.client.Do(req)
	if err != nil {
		p.logger.DebugContext(ctx, "Ollama liveness probe failed", slog.Any("error", err))
		return false
	}
	defer resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}
