package analysis

import (
	"strings"

	"Candl/internal/domain/models"
)

const (
	rsiPeriod  = 14
	minCloses  = 20
	smaShort   = 20
	smaLong    = 50
	overbought = 70.0
	oversold   = 30.0
)

const notEnoughData = "Not enough data"

// Technical derives the momentum/trend signal from ordered closes. Fewer than
// 20 points is a valid terminal state, not an error: the signal says so and
// carries no RSI.
func Technical(closes []float64) models.TechnicalSignal {
	if len(closes) < minCloses {
		return models.TechnicalSignal{Note: notEnoughData}
	}

	rsi := computeRSI(closes, rsiPeriod)

	var flags []string
	if rsi != nil {
		if *rsi >= overbought {
			flags = append(flags, "RSI overbought")
		} else if *rsi <= oversold {
			flags = append(flags, "RSI oversold")
		}
	}

	sma20 := sma(closes, smaShort)
	if len(closes) >= smaLong {
		if sma20 > sma(closes, smaLong) {
			flags = append(flags, "bullish tilt")
		} else {
			flags = append(flags, "bearish tilt")
		}
	}

	note := "Neutral"
	if len(flags) > 0 {
		note = strings.Join(flags, ", ")
	}
	return models.TechnicalSignal{Note: note, RSI: rsi}
}

// computeRSI smooths the last `period` gains and losses with an EMA seeded by
// the first element of each window (k = 2/(period+1)). This deliberately
// differs from full-history Wilder smoothing; downstream thresholds are tuned
// to it.
func computeRSI(closes []float64, period int) *float64 {
	gains := make([]float64, 0, len(closes)-1)
	losses := make([]float64, 0, len(closes)-1)
	for i := 1; i < len(closes); i++ {
		delta := closes[i] - closes[i-1]
		if delta > 0 {
			gains = append(gains, delta)
			losses = append(losses, 0)
		} else {
			gains = append(gains, 0)
			losses = append(losses, -delta)
		}
	}
	if len(gains) < period {
		return nil
	}

	avgGain := ema(gains[len(gains)-period:], period)
	avgLoss := ema(losses[len(losses)-period:], period)

	var rsi float64
	if avgLoss == 0 {
		rsi = 100.0
	} else {
		rs := avgGain / avgLoss
		rsi = 100.0 - 100.0/(1.0+rs)
	}
	return &rsi
}

func ema(xs []float64, period int) float64 {
	k := 2.0 / float64(period+1)
	v := xs[0]
	for _, x := range xs[1:] {
		v = x*k + v*(1-k)
	}
	return v
}

func sma(closes []float64, period int) float64 {
	sum := 0.0
	for i := len(closes) - period; i < len(closes); i++ {
		sum += closes[i]
	}
	return sum / float64(period)
}
