package ratios

import (
	"context"
	"fmt"
	"time"

	"Candl/internal/domain/models"
	domsvc "Candl/internal/domain/service"
	xhttp "Candl/pkg/http"
)

// Client delegates fundamental-ratio computation to the external analytics
// service. Pure pass-through; nothing here feeds the consensus pipeline.
type Client struct {
	url    string
	client *xhttp.Client
}

func NewClient(url string, timeout time.Duration) *Client {
	return &Client{
		url:    url,
		client: xhttp.NewClient(xhttp.WithTimeout(timeout)),
	}
}

// Ratios fetches pfcf/roic/piotroski for the symbol.
func (c *Client) Ratios(ctx context.Context, symbol string) (models.RatioReport, error) {
	var report models.RatioReport
	if c.url == "" {
		return report, fmt.Errorf("ratios service not configured")
	}
	err := c.client.SendAndParse(ctx, &xhttp.RequestOptions{
		Method:  xhttp.MethodPost,
		URL:     c.url,
		Headers: map[string]string{"Content-Type": "application/json"},
		Body:    models.RatiosRequest{Symbol: symbol},
	}, &report)
	if err != nil {
		return report, fmt.Errorf("post ratios: %w", err)
	}
	return report, nil
}

var _ domsvc.RatioProvider = (*Client)(nil)
