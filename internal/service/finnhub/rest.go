package finnhub

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"Candl/internal/domain/models"
	drepo "Candl/internal/domain/repository"
	xhttp "Candl/pkg/http"
	"Candl/pkg/util"
)

// RESTClient implements MarketData against the Finnhub REST API. Every call
// shares one fixed timeout budget and performs no retries; a non-success
// status fails the read.
type RESTClient struct {
	apiKey  string
	baseURL string
	client  *xhttp.Client

	now func() time.Time
}

// NewREST creates a Finnhub REST MarketData client.
func NewREST(apiKey, baseURL string, timeout time.Duration) drepo.MarketData {
	return &RESTClient{
		apiKey:  apiKey,
		baseURL: baseURL,
		client:  xhttp.NewClient(xhttp.WithTimeout(timeout)),
		now:     time.Now,
	}
}

func (c *RESTClient) get(ctx context.Context, path string, params map[string]string, dest interface{}) error {
	params["token"] = c.apiKey
	err := c.client.SendAndParse(ctx, &xhttp.RequestOptions{
		Method:      xhttp.MethodGet,
		URL:         c.baseURL + "/" + path,
		QueryParams: params,
	}, dest)
	if err != nil {
		return fmt.Errorf("finnhub %s: %w", path, err)
	}
	return nil
}

// Quote fetches the real-time quote snapshot.
func (c *RESTClient) Quote(ctx context.Context, symbol string) (*models.Quote, error) {
	var q models.Quote
	if err := c.get(ctx, "quote", map[string]string{"symbol": symbol}, &q); err != nil {
		return nil, err
	}
	return &q, nil
}

// Candles fetches the OHLC series over the lookback window.
func (c *RESTClient) Candles(ctx context.Context, symbol, resolution string, lookbackDays int) (*models.CandleSeries, error) {
	from, to := util.UnixRange(c.now(), lookbackDays)
	var cs models.CandleSeries
	err := c.get(ctx, "stock/candle", map[string]string{
		"symbol":     symbol,
		"resolution": resolution,
		"from":       strconv.FormatInt(from, 10),
		"to":         strconv.FormatInt(to, 10),
	}, &cs)
	if err != nil {
		return nil, err
	}
	return &cs, nil
}

// CompanyNews fetches recent company news within the date window.
func (c *RESTClient) CompanyNews(ctx context.Context, symbol string, windowDays int) ([]models.NewsItem, error) {
	from, to := util.DateRange(c.now(), windowDays)
	var items []models.NewsItem
	err := c.get(ctx, "company-news", map[string]string{
		"symbol": symbol,
		"from":   from,
		"to":     to,
	}, &items)
	if err != nil {
		return nil, err
	}
	return items, nil
}
