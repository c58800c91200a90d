package analysis

import (
	"math"
	"strings"

	"Candl/internal/domain/models"
)

// FlagHighMove is matched by the consensus scorer against the risk note.
const FlagHighMove = "High intraday move"

const (
	moveThresholdPct = 4.0
	rangeFraction    = 0.06
)

// Risk derives the intraday-volatility signal from a quote. When previous
// close is zero the divisor falls back to 1, reproducing the behavior
// consumers already depend on.
func Risk(q *models.Quote) models.RiskSignal {
	divisor := q.PrevClose
	if divisor == 0 {
		divisor = 1
	}
	pct := (q.Current - q.PrevClose) / divisor * 100

	var flags []string
	if math.Abs(pct) > moveThresholdPct {
		flags = append(flags, FlagHighMove)
	}
	if q.High-q.Low > q.Current*rangeFraction {
		flags = append(flags, "Wide day range")
	}

	note := "Normal"
	if len(flags) > 0 {
		note = strings.Join(flags, ", ")
	}
	return models.RiskSignal{Note: note, PctChange: pct}
}
