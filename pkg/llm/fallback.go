package llm

import (
	"context"

	"go.uber.org/zap"
)

// FallbackChain tries each summarizer in order and degrades to the
// placeholder text when all of them fail. Summarize never returns an error,
// so the pipeline can always assemble a summary.
type FallbackChain struct {
	strategies []Summarizer
	logger     *zap.Logger
}

func NewFallbackChain(logger *zap.Logger, strategies ...Summarizer) *FallbackChain {
	return &FallbackChain{strategies: strategies, logger: logger}
}

func (f *FallbackChain) Summarize(ctx context.Context, req Request) (string, error) {
	for i, strategy := range f.strategies {
		summary, err := strategy.Summarize(ctx, req)
		if err == nil {
			return summary, nil
		}
		f.logger.Warn("⚠️ Summarization strategy failed, trying next",
			zap.Int("strategy", i),
			zap.Error(err))
		if ctx.Err() != nil {
			break
		}
	}
	return PlaceholderSummary, nil
}
