package usecase

import (
	"context"
	"time"

	"Candl/internal/domain/models"
	drepo "Candl/internal/domain/repository"
	"Candl/pkg/cache"
	xhttp "Candl/pkg/http"
	"Candl/pkg/logger"
)

// Per-kind freshness windows. Quotes move constantly; candle history and the
// news window change slowly enough to hold for ten minutes.
const (
	quoteTTL   = 15 * time.Second
	candlesTTL = 600 * time.Second
	newsTTL    = 600 * time.Second

	candleResolution   = "D"
	candleLookbackDays = 400
	newsWindowDays     = 7
	newsCap            = 30
)

// MarketReader serves market data through the cache, falling back to the
// provider on a miss. A provider failure surfaces as an upstream error;
// callers decide whether that is fatal.
type MarketReader struct {
	source  drepo.MarketData
	store   cache.Store
	metrics drepo.Metrics
	log     *logger.Logger
}

func NewMarketReader(source drepo.MarketData, store cache.Store, metrics drepo.Metrics, log *logger.Logger) *MarketReader {
	return &MarketReader{source: source, store: store, metrics: metrics, log: log}
}

func (r *MarketReader) Quote(ctx context.Context, symbol string) (*models.Quote, error) {
	key := cache.GenerateKey("quote", symbol)
	var q models.Quote
	if err := r.store.Get(ctx, key, &q); err == nil {
		r.metrics.RecordCacheHit("quote")
		return &q, nil
	}
	r.metrics.RecordCacheMiss("quote")

	fresh, err := r.source.Quote(ctx, symbol)
	if err != nil {
		r.metrics.RecordError("upstream")
		return nil, xhttp.UpstreamErrorf("quote fetch failed for %s", symbol).WithError(err)
	}
	if err := r.store.Set(ctx, key, fresh, quoteTTL); err != nil {
		r.log.Warn("quote cache write failed", logger.String("symbol", symbol), logger.Error(err))
	}
	return fresh, nil
}

func (r *MarketReader) Candles(ctx context.Context, symbol string) (*models.CandleSeries, error) {
	key := cache.GenerateKeyWithParams("candles", symbol, candleResolution)
	var cs models.CandleSeries
	if err := r.store.Get(ctx, key, &cs); err == nil {
		r.metrics.RecordCacheHit("candles")
		return &cs, nil
	}
	r.metrics.RecordCacheMiss("candles")

	fresh, err := r.source.Candles(ctx, symbol, candleResolution, candleLookbackDays)
	if err != nil {
		r.metrics.RecordError("upstream")
		return nil, xhttp.UpstreamErrorf("candle fetch failed for %s", symbol).WithError(err)
	}
	if err := r.store.Set(ctx, key, fresh, candlesTTL); err != nil {
		r.log.Warn("candle cache write failed", logger.String("symbol", symbol), logger.Error(err))
	}
	return fresh, nil
}

func (r *MarketReader) News(ctx context.Context, symbol string) ([]models.NewsItem, error) {
	key := cache.GenerateKey("news", symbol)
	var items []models.NewsItem
	if err := r.store.Get(ctx, key, &items); err == nil {
		r.metrics.RecordCacheHit("news")
		return items, nil
	}
	r.metrics.RecordCacheMiss("news")

	fresh, err := r.source.CompanyNews(ctx, symbol, newsWindowDays)
	if err != nil {
		r.metrics.RecordError("upstream")
		return nil, xhttp.UpstreamErrorf("news fetch failed for %s", symbol).WithError(err)
	}
	if len(fresh) > newsCap {
		fresh = fresh[:newsCap]
	}
	if err := r.store.Set(ctx, key, fresh, newsTTL); err != nil {
		r.log.Warn("news cache write failed", logger.String("symbol", symbol), logger.Error(err))
	}
	return fresh, nil
}
