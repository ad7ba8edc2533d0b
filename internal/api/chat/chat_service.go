package chat

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/karthikn/pondy-guide/app/observability/metrics"
	"github.com/karthikn/pondy-guide/internal/ai"
	"github.com/karthikn/pondy-guide/internal/types"
)

const chatSystemPrompt = "You are a friendly Puducherry travel assistant. Answer briefly and only about Puducherry: its places, history, food, culture and transport."

var _ Service = (*ServiceImpl)(nil)

// Service answers free-text traveler questions, preferring the local
// knowledge base and escalating to the AI provider only when it has no
// canned answer.
type Service interface {
	Answer(ctx context.Context, query string) (types.ChatResponse, error)
	// AnswerStream is Answer with incremental delivery: onChunk receives
	// the reply in fragments. The returned source is "knowledge" or "ai".
	AnswerStream(ctx context.Context, query string, onChunk func(chunk string) error) (string, error)
}

type ServiceImpl struct {
	logger     *slog.Logger
	provider   ai.Provider
	appMetrics *metrics.AppMetrics
}

func NewServiceImpl(provider ai.Provider, appMetrics *metrics.AppMetrics, logger *slog.Logger) *ServiceImpl {
	return &ServiceImpl{
		logger:     logger,
		provider:   provider,
		appMetrics: appMetrics,
	}
}

func (s *ServiceImpl) Answer(ctx context.Context, query string) (types.ChatResponse, error) {
	ctx, span := otel.Tracer("ChatService").Start(ctx, "Answer", trace.WithAttributes(
		attribute.Int("query.length", len(query)),
	))
	defer span.End()

	if reply := answerFromKnowledge(query); reply != noAnswer {
		s.appMetrics.ChatFallbackHitsTotal.Add(ctx, 1)
		span.SetAttributes(attribute.String("chat.source", "knowledge"))
		span.SetStatus(codes.Ok, "Answered from knowledge base")
		return types.ChatResponse{Reply: reply, Source: "knowledge"}, nil
	}

	s.appMetrics.ChatAIEscalationsTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("provider", s.provider.Name()),
	))
	span.SetAttributes(attribute.String("chat.source", "ai"))

	reply, err := s.provider.GenerateResponse(ctx, query, chatSystemPrompt)
	if err != nil {
		s.appMetrics.ProviderErrorsTotal.Add(ctx, 1, metric.WithAttributes(
			attribute.String("provider", s.provider.Name()),
		))
		s.logger.ErrorContext(ctx, "chat escalation failed",
			slog.String("provider", s.provider.Name()), slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Provider call failed")
		return types.ChatResponse{}, err
	}

	span.SetStatus(codes.Ok, "Answered by AI provider")
	return types.ChatResponse{Reply: reply, Source: "ai"}, nil
}

func (s *ServiceImpl) AnswerStream(ctx context.Context, query string, onChunk func(chunk string) error) (string, error) {
	ctx, span := otel.Tracer("ChatService").Start(ctx, "AnswerStream", trace.WithAttributes(
		attribute.Int("query.length", len(query)),
	))
	defer span.End()

	// A knowledge hit is delivered as a single fragment.
	if reply := answerFromKnowledge(query); reply != noAnswer {
		s.appMetrics.ChatFallbackHitsTotal.Add(ctx, 1)
		span.SetAttributes(attribute.String("chat.source", "knowledge"))
		span.SetStatus(codes.Ok, "Answered from knowledge base")
		return "knowledge", onChunk(reply)
	}

	s.appMetrics.ChatAIEscalationsTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("provider", s.provider.Name()),
	))
	span.SetAttributes(attribute.String("chat.source", "ai"))

	if err := s.provider.GenerateResponseStream(ctx, query, chatSystemPrompt, onChunk); err != nil {
		s.appMetrics.ProviderErrorsTotal.Add(ctx, 1, metric.WithAttributes(
			attribute.String("provider", s.provider.Name()),
		))
		s.logger.ErrorContext(ctx, "streaming chat escalation failed",
			slog.String("provider", s.provider.Name()), slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Provider stream failed")
		return "ai", err
	}

	span.SetStatus(codes.Ok, "Answered by AI provider")
	return "ai", nil
}
