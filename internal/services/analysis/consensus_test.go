package analysis

import (
	"testing"

	"Candl/internal/domain/models"
)

func fptr(v float64) *float64 { return &v }

func TestConsensusSlightlyPositive(t *testing.T) {
	res := Consensus("AAPL",
		models.SentimentSummary{Positive: 3, Negative: 1},
		models.TechnicalSignal{Note: "RSI oversold", RSI: fptr(30)},
		models.RiskSignal{Note: "Normal"},
	)
	// (3-1) + 1 for rsi<35 = 3
	if res.Tone != models.ToneSlightlyPositive {
		t.Fatalf("expected Slightly Positive, got %q", res.Tone)
	}
	if res.Symbol != "AAPL" {
		t.Fatalf("unexpected symbol %q", res.Symbol)
	}
}

func TestConsensusNeutralOnZeroScore(t *testing.T) {
	res := Consensus("MSFT",
		models.SentimentSummary{},
		models.TechnicalSignal{Note: "Neutral", RSI: fptr(50)},
		models.RiskSignal{Note: "Normal"},
	)
	if res.Tone != models.ToneNeutral {
		t.Fatalf("expected Neutral, got %q", res.Tone)
	}
}

func TestConsensusCautious(t *testing.T) {
	res := Consensus("TSLA",
		models.SentimentSummary{Positive: 0, Negative: 1},
		models.TechnicalSignal{Note: "RSI overbought", RSI: fptr(80)},
		models.RiskSignal{Note: "High intraday move, Wide day range"},
	)
	// -1 sentiment, -1 rsi>65, -1 high move = -3
	if res.Tone != models.ToneCautious {
		t.Fatalf("expected Cautious, got %q", res.Tone)
	}
}

func TestConsensusNilRSIAddsNothing(t *testing.T) {
	res := Consensus("NVDA",
		models.SentimentSummary{Positive: 1, Negative: 1},
		models.TechnicalSignal{Note: "Not enough data"},
		models.RiskSignal{Note: "Normal"},
	)
	if res.Tone != models.ToneNeutral {
		t.Fatalf("expected Neutral with nil RSI, got %q", res.Tone)
	}
}

func TestConsensusHighlightsOrder(t *testing.T) {
	res := Consensus("AMD",
		models.SentimentSummary{},
		models.TechnicalSignal{Note: "tech note"},
		models.RiskSignal{Note: "risk note"},
	)
	if len(res.Highlights) != 2 || res.Highlights[0] != "tech note" || res.Highlights[1] != "risk note" {
		t.Fatalf("unexpected highlights %v", res.Highlights)
	}
}

func TestConsensusDeterministic(t *testing.T) {
	s := models.SentimentSummary{Positive: 2, Neutral: 1, Negative: 2}
	tech := models.TechnicalSignal{Note: "Neutral", RSI: fptr(40)}
	risk := models.RiskSignal{Note: "Normal", PctChange: 0.4}

	first := Consensus("AAPL", s, tech, risk)
	for i := 0; i < 5; i++ {
		if got := Consensus("AAPL", s, tech, risk); got.Tone != first.Tone {
			t.Fatalf("non-deterministic tone: %q vs %q", got.Tone, first.Tone)
		}
	}
}
