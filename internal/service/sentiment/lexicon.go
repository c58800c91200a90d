package sentiment

import (
	"context"
	"regexp"
	"strings"

	"Candl/internal/domain/models"
	domsvc "Candl/internal/domain/service"
)

// Lexicon is the in-process SentimentAnalyzer. It replaces the loopback call
// the hosted deployment made to a sibling classifier endpoint: the two
// components ship together, so the network hop is collapsed into a direct call.
type Lexicon struct{}

func NewLexicon() *Lexicon { return &Lexicon{} }

var (
	urlPattern     = regexp.MustCompile(`https?://\S+|www\.\S+`)
	mentionPattern = regexp.MustCompile(`[@#]\S+`)

	positiveWords = map[string]struct{}{
		"beat": {}, "beats": {}, "gain": {}, "gains": {}, "growth": {},
		"jump": {}, "jumps": {}, "profit": {}, "rally": {}, "record": {},
		"rise": {}, "rises": {}, "soar": {}, "soars": {}, "strong": {},
		"surge": {}, "surges": {}, "up": {}, "upgrade": {}, "upgraded": {},
		"win": {}, "wins": {}, "outperform": {}, "bullish": {},
	}
	negativeWords = map[string]struct{}{
		"crash": {}, "cut": {}, "cuts": {}, "decline": {}, "declines": {},
		"down": {}, "downgrade": {}, "downgraded": {}, "drop": {}, "drops": {},
		"fall": {}, "falls": {}, "fear": {}, "lawsuit": {}, "loss": {},
		"losses": {}, "miss": {}, "misses": {}, "plunge": {}, "plunges": {},
		"recall": {}, "slump": {}, "weak": {}, "bearish": {}, "probe": {},
	}
)

const maxTextLen = 400

// Analyze classifies each text and tallies the label distribution. Empty
// input yields empty results and a zero summary.
func (l *Lexicon) Analyze(_ context.Context, texts []string) (models.SentimentReport, error) {
	report := models.SentimentReport{Results: []models.SentimentResult{}}

	for _, t := range texts {
		cleaned := clean(t)
		if cleaned == "" {
			continue
		}
		label, score := classify(cleaned)
		switch label {
		case models.LabelPositive:
			report.Summary.Positive++
		case models.LabelNegative:
			report.Summary.Negative++
		default:
			report.Summary.Neutral++
		}
		report.Results = append(report.Results, models.SentimentResult{Label: label, Score: score})
	}

	return report, nil
}

func clean(t string) string {
	t = urlPattern.ReplaceAllString(t, "")
	t = mentionPattern.ReplaceAllString(t, "")
	t = strings.TrimSpace(t)
	if len(t) > maxTextLen {
		t = t[:maxTextLen]
	}
	return t
}

func classify(text string) (string, float64) {
	var pos, neg int
	for _, word := range strings.Fields(strings.ToLower(text)) {
		word = strings.Trim(word, ".,!?;:'\"()")
		if _, ok := positiveWords[word]; ok {
			pos++
		}
		if _, ok := negativeWords[word]; ok {
			neg++
		}
	}

	total := pos + neg
	if total == 0 {
		return models.LabelNeutral, 0.5
	}
	if pos > neg {
		return models.LabelPositive, 0.5 + 0.5*float64(pos-neg)/float64(total)
	}
	if neg > pos {
		return models.LabelNegative, 0.5 + 0.5*float64(neg-pos)/float64(total)
	}
	return models.LabelNeutral, 0.5
}

var _ domsvc.SentimentAnalyzer = (*Lexicon)(nil)
