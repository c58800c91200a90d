package analysis

import (
	"strings"

	"Candl/internal/domain/models"
)

const (
	rsiOversoldBias   = 35.0
	rsiOverboughtBias = 65.0
)

// Consensus merges the three signal sources into one scored verdict. Pure:
// the same inputs always yield the same output.
func Consensus(symbol string, sentiment models.SentimentSummary, tech models.TechnicalSignal, risk models.RiskSignal) models.ConsensusResult {
	score := sentiment.Positive - sentiment.Negative
	if tech.RSI != nil {
		if *tech.RSI < rsiOversoldBias {
			score++
		}
		if *tech.RSI > rsiOverboughtBias {
			score--
		}
	}
	if strings.Contains(risk.Note, FlagHighMove) {
		score--
	}

	tone := models.ToneNeutral
	switch {
	case score > 0:
		tone = models.ToneSlightlyPositive
	case score < 0:
		tone = models.ToneCautious
	}

	return models.ConsensusResult{
		Symbol:     symbol,
		Tone:       tone,
		Highlights: []string{tech.Note, risk.Note},
	}
}
