package di

import (
	"fmt"

	"Candl/internal/domain/repository"
	domsvc "Candl/internal/domain/service"
	"Candl/internal/handler/api"
	"Candl/internal/service/finnhub"
	"Candl/internal/service/ratios"
	"Candl/internal/service/sentiment"
	"Candl/internal/usecase"
	"Candl/pkg/cache"
	"Candl/pkg/config"
	xhttp "Candl/pkg/http"
	"Candl/pkg/logger"
	"Candl/pkg/metrics"
	"Candl/pkg/server"
)

// ProvideLogger creates the application logger.
func ProvideLogger(cfg *config.Config) (*logger.Logger, error) {
	return logger.New(&logger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: cfg.Logging.Output,
	})
}

// ProvideMetrics creates a Prometheus metrics recorder.
func ProvideMetrics() repository.Metrics {
	return metrics.New()
}

// ProvideCacheStore creates the cache backend selected in config.
func ProvideCacheStore(cfg *config.Config) (cache.Store, error) {
	switch cfg.Cache.Backend {
	case "memory":
		return cache.NewMemoryStore(
			cache.WithMemoryMaxSize(cfg.Cache.MaxSize),
			cache.WithMemoryCleanup(cfg.Cache.CleanupInterval),
		), nil
	case "redis":
		return cache.NewRedisStore(
			cache.WithRedisAddr(cfg.Cache.Redis.Addr),
			cache.WithRedisPassword(cfg.Cache.Redis.Password),
			cache.WithRedisDB(cfg.Cache.Redis.DB),
			cache.WithRedisPrefix(cfg.Cache.Redis.Prefix),
		)
	case "layered":
		rs, err := cache.NewRedisStore(
			cache.WithRedisAddr(cfg.Cache.Redis.Addr),
			cache.WithRedisPassword(cfg.Cache.Redis.Password),
			cache.WithRedisDB(cfg.Cache.Redis.DB),
			cache.WithRedisPrefix(cfg.Cache.Redis.Prefix),
		)
		if err != nil {
			return nil, err
		}
		return cache.NewLayeredStore(rs,
			cache.WithLayeredMemorySize(cfg.Cache.MaxSize),
		), nil
	default:
		return nil, fmt.Errorf("unknown cache backend: %s", cfg.Cache.Backend)
	}
}

// ProvideMarketData creates the Finnhub REST reader.
func ProvideMarketData(cfg *config.Config) repository.MarketData {
	return finnhub.NewREST(cfg.Finnhub.APIKey, cfg.Finnhub.BaseURL, cfg.Finnhub.Timeout)
}

// ProvideSentimentAnalyzer selects the in-process lexicon analyzer or the
// HTTP collaborator, per config.
func ProvideSentimentAnalyzer(cfg *config.Config) domsvc.SentimentAnalyzer {
	if cfg.Sentiment.Mode == "http" {
		return sentiment.NewHTTPClient(cfg.Sentiment.URL, cfg.Sentiment.Timeout)
	}
	return sentiment.NewLexicon()
}

// ProvideRatioProvider creates the fundamentals collaborator client.
func ProvideRatioProvider(cfg *config.Config) domsvc.RatioProvider {
	return ratios.NewClient(cfg.Ratios.URL, cfg.Ratios.Timeout)
}

// ProvideMarketReader creates the cached market-data reader.
func ProvideMarketReader(source repository.MarketData, store cache.Store, m repository.Metrics, log *logger.Logger) *usecase.MarketReader {
	return usecase.NewMarketReader(source, store, m, log)
}

// ProvideOutlookBuilder creates the consensus orchestrator.
func ProvideOutlookBuilder(reader *usecase.MarketReader, analyzer domsvc.SentimentAnalyzer, m repository.Metrics, log *logger.Logger) *usecase.OutlookBuilder {
	return usecase.NewOutlookBuilder(reader, analyzer, m, log)
}

// ProvideQuoteWarmer creates the optional live-quote warmer. Returns nil when
// the stream is disabled; the app skips starting it.
func ProvideQuoteWarmer(cfg *config.Config, store cache.Store, m repository.Metrics, log *logger.Logger) *usecase.QuoteWarmer {
	if !cfg.Finnhub.Stream.Enabled {
		return nil
	}
	stream := finnhub.NewStream(
		cfg.Finnhub.APIKey,
		cfg.Finnhub.WebSocketURL,
		cfg.Finnhub.Stream.Symbols,
		cfg.Finnhub.Stream.ReconnectDelay,
		cfg.Finnhub.Stream.PingInterval,
	)
	return usecase.NewQuoteWarmer(stream, store, m, log)
}

// ProvideHandler creates the HTTP handler for all API routes.
func ProvideHandler(log *logger.Logger, outlook *usecase.OutlookBuilder, analyzer domsvc.SentimentAnalyzer, rp domsvc.RatioProvider, m repository.Metrics) xhttp.Handler {
	return api.NewOutlookEchoHandler(log, outlook, analyzer, rp, m)
}

// ProvideApp creates the application server.
func ProvideApp(cfg *config.Config, handler xhttp.Handler, warmer *usecase.QuoteWarmer, store cache.Store, log *logger.Logger) *server.App {
	return server.New(cfg, handler, warmer, store, log)
}
