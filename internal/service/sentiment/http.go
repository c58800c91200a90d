package sentiment

import (
	"context"
	"fmt"
	"strings"
	"time"

	"Candl/internal/domain/models"
	domsvc "Candl/internal/domain/service"
	xhttp "Candl/pkg/http"
)

// HTTPClient calls an external sentiment classifier over HTTP. One attempt
// with a fixed budget; callers fall back to a zero summary on any error.
type HTTPClient struct {
	url    string
	client *xhttp.Client
}

func NewHTTPClient(url string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		url:    url,
		client: xhttp.NewClient(xhttp.WithTimeout(timeout)),
	}
}

type wireResult struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

type wireResponse struct {
	Results []wireResult             `json:"results"`
	Summary *models.SentimentSummary `json:"summary"`
}

// Analyze posts the texts to the classifier and normalizes its labels.
func (c *HTTPClient) Analyze(ctx context.Context, texts []string) (models.SentimentReport, error) {
	var report models.SentimentReport

	var wr wireResponse
	err := c.client.SendAndParse(ctx, &xhttp.RequestOptions{
		Method:  xhttp.MethodPost,
		URL:     c.url,
		Headers: map[string]string{"Content-Type": "application/json"},
		Body:    models.SentimentRequest{Texts: texts},
	}, &wr)
	if err != nil {
		return report, fmt.Errorf("post sentiment: %w", err)
	}
	if wr.Summary == nil {
		return report, fmt.Errorf("sentiment response missing summary")
	}

	report.Results = make([]models.SentimentResult, 0, len(wr.Results))
	for _, r := range wr.Results {
		report.Results = append(report.Results, models.SentimentResult{
			Label: NormalizeLabel(r.Label),
			Score: r.Score,
		})
	}
	report.Summary = *wr.Summary
	return report, nil
}

// NormalizeLabel maps a raw classifier label onto the three canonical labels.
func NormalizeLabel(raw string) string {
	upper := strings.ToUpper(raw)
	switch {
	case strings.Contains(upper, "POS"):
		return models.LabelPositive
	case strings.Contains(upper, "NEG"):
		return models.LabelNegative
	default:
		return models.LabelNeutral
	}
}

var _ domsvc.SentimentAnalyzer = (*HTTPClient)(nil)
