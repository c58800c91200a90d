package models

// Market data payloads as returned by the Finnhub REST API. Field tags mirror
// the provider's short keys so responses decode without translation; a field
// the provider omits decodes to its zero value.

// Quote is a real-time quote snapshot.
type Quote struct {
	Current       float64 `json:"c"`
	Change        float64 `json:"d"`
	ChangePercent float64 `json:"dp"`
	High          float64 `json:"h"`
	Low           float64 `json:"l"`
	Open          float64 `json:"o"`
	PrevClose     float64 `json:"pc"`
	Timestamp     int64   `json:"t"`
}

// CandleSeries holds OHLC arrays for one symbol/resolution, ascending by time.
// Status is "ok" when the provider returned data and "no_data" otherwise.
type CandleSeries struct {
	Closes     []float64 `json:"c"`
	Highs      []float64 `json:"h"`
	Lows       []float64 `json:"l"`
	Opens      []float64 `json:"o"`
	Timestamps []int64   `json:"t"`
	Volumes    []float64 `json:"v"`
	Status     string    `json:"s"`
}

// HasData reports whether the series carries usable closes.
func (cs *CandleSeries) HasData() bool {
	return cs != nil && cs.Status == "ok" && len(cs.Closes) > 0
}

// NewsItem is one company-news entry.
type NewsItem struct {
	Headline string `json:"headline"`
	Datetime int64  `json:"datetime"`
	Source   string `json:"source"`
	Summary  string `json:"summary"`
	URL      string `json:"url"`
}

// Headlines extracts non-empty headlines from a news list, capped to max.
func Headlines(news []NewsItem, max int) []string {
	out := make([]string, 0, min(len(news), max))
	for _, n := range news {
		if len(out) >= max {
			break
		}
		if n.Headline != "" {
			out = append(out, n.Headline)
		}
	}
	return out
}
