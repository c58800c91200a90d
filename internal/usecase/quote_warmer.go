package usecase

import (
	"context"

	"Candl/internal/domain/models"
	drepo "Candl/internal/domain/repository"
	"Candl/pkg/cache"
	"Candl/pkg/logger"
)

// QuoteWarmer consumes the live trade stream and refreshes cached quotes so
// hot symbols keep answering from cache between REST refreshes. Only quotes
// already cached are touched; the warmer never fabricates a quote from a
// single trade.
type QuoteWarmer struct {
	stream  drepo.MarketStream
	store   cache.Store
	metrics drepo.Metrics
	log     *logger.Logger
}

func NewQuoteWarmer(stream drepo.MarketStream, store cache.Store, metrics drepo.Metrics, log *logger.Logger) *QuoteWarmer {
	return &QuoteWarmer{stream: stream, store: store, metrics: metrics, log: log}
}

// IsConnected reports whether the underlying stream is connected.
func (w *QuoteWarmer) IsConnected() bool {
	return w.stream.IsConnected()
}

func (w *QuoteWarmer) Start(ctx context.Context) error {
	if err := w.stream.Connect(ctx); err != nil {
		return err
	}
	if err := w.stream.Subscribe(ctx); err != nil {
		return err
	}
	trCh, errCh := w.stream.Read(ctx)
	go w.consume(ctx, trCh, errCh)
	return nil
}

// consume drains the stream until the context ends or the stream closes its
// channels. Stream errors are transient (the stream reconnects on its own)
// and only get counted; a closed trade channel means the stream is done and
// the loop must exit rather than spin on it.
func (w *QuoteWarmer) consume(ctx context.Context, trCh <-chan *models.Trade, errCh <-chan error) {
	for {
		select {
		case <-ctx.Done():
			return
		case err, ok := <-errCh:
			if !ok {
				errCh = nil
				continue
			}
			w.metrics.RecordError("stream")
			w.log.Warn("stream read error", logger.Error(err))
		case t, ok := <-trCh:
			if !ok {
				return
			}
			if t == nil {
				continue
			}
			w.apply(ctx, t)
		}
	}
}

func (w *QuoteWarmer) apply(ctx context.Context, t *models.Trade) {
	key := cache.GenerateKey("quote", t.Symbol)
	var q models.Quote
	if err := w.store.Get(ctx, key, &q); err != nil {
		return
	}
	q.Current = t.Price
	if t.Price > q.High {
		q.High = t.Price
	}
	if q.Low == 0 || t.Price < q.Low {
		q.Low = t.Price
	}
	q.Timestamp = t.Timestamp
	if err := w.store.Set(ctx, key, &q, quoteTTL); err != nil {
		w.log.Warn("quote warm write failed", logger.String("symbol", t.Symbol), logger.Error(err))
	}
}

func (w *QuoteWarmer) Stop() error { return w.stream.Close() }
