package chat

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"go.opentelemetry.io/otel"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"

	"github.com/karthikn/pondy-guide/internal/ai"
	"github.com/karthikn/pondy-guide/internal/api"
	"github.com/karthikn/pondy-guide/internal/types"
)

type Handler struct {
	chatService Service
	logger      *slog.Logger
}

func NewHandler(chatService Service, logger *slog.Logger) *Handler {
	return &Handler{
		chatService: chatService,
		logger:      logger,
	}
}

// SendMessage answers one traveler question.
func (h *Handler) SendMessage(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("SendMessage").Start(r.Context(), "SendMessage", trace.WithAttributes(
		semconv.HTTPRequestMethodKey.String(r.Method),
		semconv.HTTPRouteKey.String("/chat/message"),
	))
	defer span.End()

	l := h.logger.With(slog.String("handler", "SendMessage"))
	l.DebugContext(ctx, "Chat message handler invoked")

	var req types.ChatRequest
	if err := api.DecodeJSONBody(w, r, &req); err != nil {
		l.ErrorContext(ctx, "Failed to decode request body", slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusBadRequest, "Invalid request body")
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		api.ErrorResponse(w, r, http.StatusBadRequest, "message is required")
		return
	}

	resp, err := h.chatService.Answer(ctx, req.Message)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			l.ErrorContext(ctx, "Chat answer timed out", slog.Any("error", err))
			api.ErrorResponse(w, r, http.StatusGatewayTimeout, "The assistant timed out. Please try again.")
			return
		}
		var providerErr *ai.ProviderError
		if errors.As(err, &providerErr) {
			l.ErrorContext(ctx, "AI provider failed", slog.Any("error", err))
			api.ErrorResponse(w, r, http.StatusBadGateway, "The assistant is unavailable right now. Please try again.")
			return
		}
		l.ErrorContext(ctx, "Failed to answer chat message", slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to answer message")
		return
	}

	api.WriteJSONResponse(w, r, http.StatusOK, resp)
}

// StreamMessage answers one traveler question over SSE: delta events carry
// reply fragments, a final done event names the source.
func (h *Handler) StreamMessage(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("StreamMessage").Start(r.Context(), "StreamMessage", trace.WithAttributes(
		semconv.HTTPRequestMethodKey.String(r.Method),
		semconv.HTTPRouteKey.String("/chat/stream"),
	))
	defer span.End()

	l := h.logger.With(slog.String("handler", "StreamMessage"))

	var req types.ChatRequest
	if err := api.DecodeJSONBody(w, r, &req); err != nil {
		l.ErrorContext(ctx, "Failed to decode request body", slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusBadRequest, "Invalid request body")
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		api.ErrorResponse(w, r, http.StatusBadRequest, "message is required")
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")

	flusher, ok := w.(http.Flusher)
	if !ok {
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Streaming not supported")
		return
	}

	source, err := h.chatService.AnswerStream(ctx, req.Message, func(chunk string) error {
		writeSSEEvent(w, "delta", types.ChatStreamEvent{Delta: chunk})
		flusher.Flush()
		return ctx.Err()
	})
	if err != nil {
		l.ErrorContext(ctx, "Streaming answer failed", slog.Any("error", err))
		// Headers are already out, so the failure goes down the stream.
		writeSSEEvent(w, "error", types.ChatStreamEvent{Error: "The assistant is unavailable right now. Please try again."})
		flusher.Flush()
		return
	}

	writeSSEEvent(w, "done", types.ChatStreamEvent{Source: source})
	flusher.Flush()
}

func writeSSEEvent(w http.ResponseWriter, event string, payload types.ChatStreamEvent) {
	data, _ := json.Marshal(payload)
	fmt.Fprintf(w, "event: %s\n", event)
	fmt.Fprintf(w, "data: %s\n\n", data)
}
