package chat

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/karthikn/pondy-guide/internal/ai"
	"github.com/karthikn/pondy-guide/internal/types"
)

// MockService is a mock implementation of Service
type MockService struct {
	mock.Mock
}

func (m *MockService) Answer(ctx context.Context, query string) (types.ChatResponse, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(types.ChatResponse), args.Error(1)
}

func (m *MockService) AnswerStream(ctx context.Context, query string, onChunk func(chunk string) error) (string, error) {
	args := m.Called(ctx, query, onChunk)
	return args.String(0), args.Error(1)
}

func streamRequest(body string) *http.Request {
	return httptest.NewRequest(http.MethodPost, "/api/v1/chat/stream", strings.NewReader(body))
}

func TestHandler_StreamMessage(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("streams delta events and a done event", func(t *testing.T) {
		service := new(MockService)
		handler := NewHandler(service, logger)
		service.On("AnswerStream", mock.Anything, "tell me about pondicherry", mock.Anything).
			Run(func(args mock.Arguments) {
				onChunk := args.Get(2).(func(string) error)
				onChunk("Pondicherry ")
				onChunk("is on the Coromandel coast.")
			}).
			Return("ai", nil).Once()

		rec := httptest.NewRecorder()
		handler.StreamMessage(rec, streamRequest(`{"message":"tell me about pondicherry"}`))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "text/event-stream", rec.Header().Get("Content-Type"))

		body := rec.Body.String()
		assert.Contains(t, body, "event: delta")
		assert.Contains(t, body, `"delta":"Pondicherry "`)
		assert.Contains(t, body, `"delta":"is on the Coromandel coast."`)
		assert.Contains(t, body, "event: done")
		assert.Contains(t, body, `"source":"ai"`)
		service.AssertExpectations(t)
	})

	t.Run("service failure becomes an error event", func(t *testing.T) {
		service := new(MockService)
		handler := NewHandler(service, logger)
		service.On("AnswerStream", mock.Anything, mock.Anything, mock.Anything).
			Return("ai", &ai.ProviderError{Provider: "ollama", Message: "boom"}).Once()

		rec := httptest.NewRecorder()
		handler.StreamMessage(rec, streamRequest(`{"message":"anything"}`))

		body := rec.Body.String()
		assert.Contains(t, body, "event: error")
		assert.NotContains(t, body, "boom")
		assert.NotContains(t, body, "event: done")
	})

	t.Run("empty message is rejected before streaming starts", func(t *testing.T) {
		service := new(MockService)
		handler := NewHandler(service, logger)

		rec := httptest.NewRecorder()
		handler.StreamMessage(rec, streamRequest(`{"message":"  "}`))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		service.AssertNotCalled(t, "AnswerStream", mock.Anything, mock.Anything, mock.Anything)
	})
}
