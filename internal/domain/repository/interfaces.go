package repository

import (
	"context"

	"Candl/internal/domain/models"
)

// MarketData reads quote, candle, and news data for one symbol from the
// provider. Implementations own credential injection and URL construction.
type MarketData interface {
	Quote(ctx context.Context, symbol string) (*models.Quote, error)
	Candles(ctx context.Context, symbol, resolution string, lookbackDays int) (*models.CandleSeries, error)
	CompanyNews(ctx context.Context, symbol string, windowDays int) ([]models.NewsItem, error)
}

// MarketStream delivers live trades for cache warming. Implementations own
// reconnection: the channels returned by Read stay open across transient
// failures and close only when the stream ends for good.
type MarketStream interface {
	Connect(ctx context.Context) error
	Subscribe(ctx context.Context) error
	Read(ctx context.Context) (<-chan *models.Trade, <-chan error)
	Close() error
	IsConnected() bool
}

type Metrics interface {
	RecordRequest(endpoint string)
	RecordError(kind string)
	RecordCacheHit(kind string)
	RecordCacheMiss(kind string)
	RecordSentimentFallback()
	RecordLatency(op string, seconds float64)
}
