package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"Candl/internal/domain/models"
	"Candl/internal/usecase"
	"Candl/pkg/cache"
	xlogger "Candl/pkg/logger"

	"github.com/labstack/echo/v4"
)

type stubMarketData struct {
	err error
}

func (s *stubMarketData) Quote(ctx context.Context, symbol string) (*models.Quote, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &models.Quote{Current: 101, PrevClose: 100, High: 102, Low: 100}, nil
}

func (s *stubMarketData) Candles(ctx context.Context, symbol, resolution string, lookbackDays int) (*models.CandleSeries, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &models.CandleSeries{Status: "ok", Closes: []float64{1, 2, 3}}, nil
}

func (s *stubMarketData) CompanyNews(ctx context.Context, symbol string, windowDays int) ([]models.NewsItem, error) {
	if s.err != nil {
		return nil, s.err
	}
	return []models.NewsItem{{Headline: "stocks rally on strong earnings"}}, nil
}

type stubSentiment struct{}

func (stubSentiment) Analyze(ctx context.Context, texts []string) (models.SentimentReport, error) {
	return models.SentimentReport{Summary: models.SentimentSummary{Neutral: len(texts)}}, nil
}

type stubRatios struct {
	err error
}

func (s *stubRatios) Ratios(ctx context.Context, symbol string) (models.RatioReport, error) {
	if s.err != nil {
		return models.RatioReport{}, s.err
	}
	return models.RatioReport{Symbol: symbol, Piotroski: 7}, nil
}

type noopMetrics struct{}

func (noopMetrics) RecordRequest(string)          {}
func (noopMetrics) RecordError(string)            {}
func (noopMetrics) RecordCacheHit(string)         {}
func (noopMetrics) RecordCacheMiss(string)        {}
func (noopMetrics) RecordSentimentFallback()      {}
func (noopMetrics) RecordLatency(string, float64) {}

func newTestHandler(t *testing.T, src *stubMarketData, rp *stubRatios) *echo.Echo {
	t.Helper()
	log, err := xlogger.New(&xlogger.Config{Level: "error", Format: "json", Output: "stderr"})
	if err != nil {
		t.Fatalf("logger: %v", err)
	}
	store := cache.NewMemoryStore()
	t.Cleanup(func() { _ = store.Close() })

	m := noopMetrics{}
	reader := usecase.NewMarketReader(src, store, m, log)
	builder := usecase.NewOutlookBuilder(reader, stubSentiment{}, m, log)
	h := NewOutlookEchoHandler(log, builder, stubSentiment{}, rp, m)

	e := echo.New()
	h.RegisterRoutes(e)
	return e
}

func doJSON(e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestConsensusEndToEnd(t *testing.T) {
	e := newTestHandler(t, &stubMarketData{}, &stubRatios{})

	rec := doJSON(e, http.MethodPost, "/api/consensus", `{"symbol": "  aapl "}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d: %s", rec.Code, rec.Body.String())
	}

	var out models.Outlook
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out.Consensus.Symbol != "AAPL" {
		t.Fatalf("symbol %q, want AAPL", out.Consensus.Symbol)
	}
	if out.Quote == nil || out.Quote.Current != 101 {
		t.Fatalf("unexpected quote %+v", out.Quote)
	}
	if out.Technical.Note != "Not enough data" {
		t.Fatalf("unexpected technical note %q", out.Technical.Note)
	}
	if len(out.Headlines) != 1 {
		t.Fatalf("expected 1 headline, got %d", len(out.Headlines))
	}
}

func TestConsensusMissingSymbol(t *testing.T) {
	e := newTestHandler(t, &stubMarketData{}, &stubRatios{})

	rec := doJSON(e, http.MethodPost, "/api/consensus", `{"texts": []}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status %d, want 400", rec.Code)
	}
	var body map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if _, ok := body["error"]; !ok {
		t.Fatalf("expected error field in %v", body)
	}
}

func TestConsensusUpstreamFailure(t *testing.T) {
	e := newTestHandler(t, &stubMarketData{err: errors.New("connection refused")}, &stubRatios{})

	rec := doJSON(e, http.MethodPost, "/api/consensus", `{"symbol": "AAPL"}`)
	if rec.Code != http.StatusBadGateway {
		t.Fatalf("status %d, want 502", rec.Code)
	}
}

func TestConsensusGetHint(t *testing.T) {
	e := newTestHandler(t, &stubMarketData{}, &stubRatios{})

	req := httptest.NewRequest(http.MethodGet, "/api/consensus", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d, want 200", rec.Code)
	}
	var body map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["ok"] != true {
		t.Fatalf("expected ok=true in %v", body)
	}
	if _, ok := body["hint"].(string); !ok {
		t.Fatalf("expected hint string in %v", body)
	}
}

func TestSentimentEndpoint(t *testing.T) {
	e := newTestHandler(t, &stubMarketData{}, &stubRatios{})

	rec := doJSON(e, http.MethodPost, "/api/sentiment", `{"texts": ["a", "b"]}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d: %s", rec.Code, rec.Body.String())
	}
	var report models.SentimentReport
	if err := json.Unmarshal(rec.Body.Bytes(), &report); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if report.Summary.Neutral != 2 {
		t.Fatalf("unexpected summary %+v", report.Summary)
	}
}

func TestRatiosEndpointDefaultsSymbol(t *testing.T) {
	e := newTestHandler(t, &stubMarketData{}, &stubRatios{})

	rec := doJSON(e, http.MethodPost, "/api/ratios", `{}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d: %s", rec.Code, rec.Body.String())
	}
	var report models.RatioReport
	if err := json.Unmarshal(rec.Body.Bytes(), &report); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if report.Symbol != "AAPL" {
		t.Fatalf("expected default symbol AAPL, got %q", report.Symbol)
	}
}

func TestRatiosCollaboratorFailure(t *testing.T) {
	e := newTestHandler(t, &stubMarketData{}, &stubRatios{err: errors.New("no ratios url configured")})

	rec := doJSON(e, http.MethodPost, "/api/ratios", `{"symbol": "AAPL"}`)
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status %d, want 500", rec.Code)
	}
}
