package usecase

import (
	"context"
	"time"

	"Candl/internal/domain/models"
	drepo "Candl/internal/domain/repository"
	domsvc "Candl/internal/domain/service"
	"Candl/internal/services/analysis"
	xhttp "Candl/pkg/http"
	"Candl/pkg/logger"
	"Candl/pkg/util"
)

const (
	sentimentBudget   = 10 * time.Second
	sentimentTextsCap = 25
	responseHeadlines = 5
)

// OutlookBuilder orchestrates one consensus request: market reads, the
// sentiment collaborator, and the pure analyzers. Market-data failures are
// fatal; a sentiment failure degrades to a zero summary so the request still
// completes.
type OutlookBuilder struct {
	reader    *MarketReader
	sentiment domsvc.SentimentAnalyzer
	metrics   drepo.Metrics
	log       *logger.Logger
}

func NewOutlookBuilder(reader *MarketReader, sentiment domsvc.SentimentAnalyzer, metrics drepo.Metrics, log *logger.Logger) *OutlookBuilder {
	return &OutlookBuilder{reader: reader, sentiment: sentiment, metrics: metrics, log: log}
}

func (b *OutlookBuilder) Build(ctx context.Context, symbol string, texts []string) (*models.Outlook, error) {
	symbol = util.NormalizeSymbol(symbol)
	if symbol == "" {
		return nil, xhttp.BadRequestError("symbol is required")
	}

	started := time.Now()
	defer func() {
		b.metrics.RecordLatency("outlook", time.Since(started).Seconds())
	}()

	quote, err := b.reader.Quote(ctx, symbol)
	if err != nil {
		return nil, err
	}
	candles, err := b.reader.Candles(ctx, symbol)
	if err != nil {
		return nil, err
	}
	news, err := b.reader.News(ctx, symbol)
	if err != nil {
		return nil, err
	}

	summary := b.analyzeSentiment(ctx, symbol, news, texts)

	var closes []float64
	if candles.HasData() {
		closes = candles.Closes
	}
	tech := analysis.Technical(closes)
	risk := analysis.Risk(quote)
	consensus := analysis.Consensus(symbol, summary, tech, risk)

	headlines := news
	if len(headlines) > responseHeadlines {
		headlines = headlines[:responseHeadlines]
	}
	return &models.Outlook{
		Quote:     quote,
		Technical: tech,
		Risk:      risk,
		Consensus: consensus,
		Headlines: headlines,
	}, nil
}

// analyzeSentiment prefers recent headlines over caller-provided texts and
// never fails the request: any analyzer error yields a zero summary.
func (b *OutlookBuilder) analyzeSentiment(ctx context.Context, symbol string, news []models.NewsItem, texts []string) models.SentimentSummary {
	input := models.Headlines(news, sentimentTextsCap)
	if len(input) == 0 {
		input = texts
	}
	if len(input) == 0 {
		return models.SentimentSummary{}
	}

	sctx, cancel := context.WithTimeout(ctx, sentimentBudget)
	defer cancel()

	report, err := b.sentiment.Analyze(sctx, input)
	if err != nil {
		b.metrics.RecordSentimentFallback()
		b.log.Warn("sentiment analysis degraded to zero summary",
			logger.String("symbol", symbol), logger.Error(err))
		return models.SentimentSummary{}
	}
	return report.Summary
}
