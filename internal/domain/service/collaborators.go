package service

import (
	"context"

	"Candl/internal/domain/models"
)

// SentimentAnalyzer classifies a batch of texts into a label distribution.
// Callers treat any error as a degraded state and substitute a zero summary.
type SentimentAnalyzer interface {
	Analyze(ctx context.Context, texts []string) (models.SentimentReport, error)
}

// RatioProvider computes fundamental ratios for a symbol. Fully delegated to
// an external analytics service.
type RatioProvider interface {
	Ratios(ctx context.Context, symbol string) (models.RatioReport, error)
}
