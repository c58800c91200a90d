package models

// Tone labels for the synthesized verdict.
const (
	ToneCautious         = "Cautious"
	ToneNeutral          = "Neutral"
	ToneSlightlyPositive = "Slightly Positive"
)

// Sentiment labels after normalization.
const (
	LabelPositive = "POSITIVE"
	LabelNeutral  = "NEUTRAL"
	LabelNegative = "NEGATIVE"
)

// SentimentSummary counts classified texts per label.
type SentimentSummary struct {
	Positive int `json:"positive"`
	Neutral  int `json:"neutral"`
	Negative int `json:"negative"`
}

// SentimentResult is the per-text classification.
type SentimentResult struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// SentimentReport is the full collaborator response.
type SentimentReport struct {
	Results []SentimentResult `json:"results"`
	Summary SentimentSummary  `json:"summary"`
}

// TechnicalSignal is the momentum/trend verdict derived from closes.
// RSI is nil when the series is too short to compute it.
type TechnicalSignal struct {
	Note string   `json:"note"`
	RSI  *float64 `json:"rsi"`
}

// RiskSignal is the intraday volatility verdict derived from a quote.
type RiskSignal struct {
	Note      string  `json:"note"`
	PctChange float64 `json:"pct_change"`
}

// ConsensusResult merges sentiment, technical, and risk into one verdict.
type ConsensusResult struct {
	Symbol     string   `json:"symbol"`
	Tone       string   `json:"tone"`
	Highlights []string `json:"highlights"`
}

// Outlook is the assembled per-request response.
type Outlook struct {
	Quote     *Quote          `json:"quote"`
	Technical TechnicalSignal `json:"technical"`
	Risk      RiskSignal      `json:"risk"`
	Consensus ConsensusResult `json:"consensus"`
	Headlines []NewsItem      `json:"headlines"`
}

// RatioReport is the pass-through response of the ratios collaborator.
type RatioReport struct {
	Symbol    string  `json:"symbol"`
	PFCF      float64 `json:"pfcf"`
	ROIC      float64 `json:"roic"`
	Piotroski int     `json:"piotroski"`
}
