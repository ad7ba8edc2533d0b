package ai

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/karthikn/pondy-guide/config"
)

func TestNew_UnknownProvider(t *testing.T) {
	cfg := &config.Config{}
	cfg.AI.Provider = "watson"

	_, err := New(context.Background(), cfg, testLogger())
	require.Error(t, err)

	var cfgErr *ConfigurationError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "watson", cfgErr.Provider)
}

func TestNew_HostedProviderRequiresKey(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("GROQ_API_KEY", "")

	for _, name := range []string{ProviderOpenAI, ProviderGroq} {
		t.Run(name, func(t *testing.T) {
			cfg := &config.Config{}
			cfg.AI.Provider = name

			_, err := New(context.Background(), cfg, testLogger())
			var cfgErr *ConfigurationError
			require.ErrorAs(t, err, &cfgErr)
		})
	}
}

// CheckConnection reports failure instead of propagating it when the
// underlying generation call fails.
func TestOpenAIProvider_CheckConnectionFalseOnFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"message":"boom"}}`, http.StatusInternalServerError)
	}))
	defer srv.Close()

	p := &OpenAIProvider{
		client: openai.NewClient(option.WithAPIKey("test"), option.WithBaseURL(srv.URL), option.WithMaxRetries(0)),
		name:   ProviderOpenAI,
		opts:   Options{Model: "gpt-4o-mini", MaxTokens: 16},
		logger: testLogger(),
	}

	assert.False(t, p.CheckConnection(context.Background()))
}
