package chatbot

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/artem13815/productbot/pkg/catalog"
	"github.com/artem13815/productbot/pkg/llm"
	"github.com/artem13815/productbot/pkg/logger"
	"github.com/artem13815/productbot/pkg/metrics"
)

// ErrGeneration wraps failures of the final answer call, the only stage whose
// failure reaches the caller.
var ErrGeneration = errors.New("answer generation failed")

// UseCase answers a free-text product question.
type UseCase interface {
	Process(ctx context.Context, message string) (string, error)
}

// Catalog is the part of the product catalog the pipeline reads from.
type Catalog interface {
	ListAll(ctx context.Context) (catalog.ProductList, error)
	Search(ctx context.Context, query string) ([]catalog.Product, error)
	ListByCategory(ctx context.Context, category string) ([]catalog.Product, error)
}

// Options bound each outbound call. Zero means no extra deadline.
type Options struct {
	CatalogTimeout time.Duration
	LLMTimeout     time.Duration
}

type service struct {
	catalog Catalog
	llm     llm.ChatModel
	log     *zap.Logger
	opts    Options
}

func NewService(c Catalog, model llm.ChatModel, log *zap.Logger, opts Options) UseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &service{
		catalog: c,
		llm:     model,
		log:     log,
		opts:    opts,
	}
}

// Process runs intent extraction, context retrieval and answer generation in
// sequence. Only a generation failure is returned.
func (s *service) Process(ctx context.Context, message string) (string, error) {
	start := time.Now()
	l := logger.FromContext(ctx, s.log)

	intent := s.extractIntent(ctx, message)
	productContext := s.retrieveContext(ctx, intent, message)

	answer, err := s.generateAnswer(ctx, message, productContext)
	if err != nil {
		metrics.ChatRequests.WithLabelValues("error").Inc()
		l.Error("answer generation failed", zap.Error(err), zap.Duration("elapsed", time.Since(start)))
		return "", fmt.Errorf("%w: %w", ErrGeneration, err)
	}

	metrics.ChatRequests.WithLabelValues("ok").Inc()
	l.Info("message processed",
		zap.String("intent", string(intent.Kind)),
		zap.Duration("elapsed", time.Since(start)))
	return answer, nil
}

func (s *service) generateAnswer(ctx context.Context, message, productContext string) (string, error) {
	defer metrics.ObserveStage("answer", time.Now())

	callCtx, cancel := withTimeout(ctx, s.opts.LLMTimeout)
	defer cancel()
	return s.llm.Ask(callCtx, answerSystemPrompt(productContext), message)
}

func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, d)
}
