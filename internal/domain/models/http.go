package models

// Requests for the HTTP endpoints. Defined in domain for consistency and reuse.

type OutlookRequest struct {
	Symbol string   `json:"symbol" validate:"required"`
	Texts  []string `json:"texts"`
}

type SentimentRequest struct {
	Texts []string `json:"texts" validate:"max=200,dive,max=2000"`
}

type RatiosRequest struct {
	Symbol string `json:"symbol" default:"AAPL" validate:"required,max=12"`
}
