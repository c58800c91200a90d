package sentiment

import (
	"context"
	"strings"
	"testing"

	"Candl/internal/domain/models"
)

func TestAnalyzeEmptyInput(t *testing.T) {
	report, err := NewLexicon().Analyze(context.Background(), nil)
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	if len(report.Results) != 0 {
		t.Fatalf("expected empty results, got %d", len(report.Results))
	}
	if report.Summary != (models.SentimentSummary{}) {
		t.Fatalf("expected zero summary, got %+v", report.Summary)
	}
}

func TestAnalyzeClassifies(t *testing.T) {
	texts := []string{
		"Shares surge after record profit",
		"Stock plunges on weak guidance",
		"Company schedules annual meeting",
		"   ",
	}
	report, err := NewLexicon().Analyze(context.Background(), texts)
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	if len(report.Results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(report.Results))
	}
	if report.Summary.Positive != 1 || report.Summary.Negative != 1 || report.Summary.Neutral != 1 {
		t.Fatalf("unexpected summary %+v", report.Summary)
	}
	for _, r := range report.Results {
		if r.Score < 0 || r.Score > 1 {
			t.Fatalf("score out of range: %f", r.Score)
		}
	}
}

func TestAnalyzeStripsNoise(t *testing.T) {
	texts := []string{"http://example.com/story #earnings @analyst"}
	report, err := NewLexicon().Analyze(context.Background(), texts)
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	// nothing left after stripping URLs and tags
	if len(report.Results) != 0 {
		t.Fatalf("expected noise-only text to be dropped, got %+v", report.Results)
	}
}

func TestAnalyzeTruncatesLongText(t *testing.T) {
	long := "surge " + strings.Repeat("x", 1000)
	report, err := NewLexicon().Analyze(context.Background(), []string{long})
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	if report.Summary.Positive != 1 {
		t.Fatalf("expected positive despite truncation, got %+v", report.Summary)
	}
}

func TestNormalizeLabel(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"POSITIVE", models.LabelPositive},
		{"pos", models.LabelPositive},
		{"LABEL_POS", models.LabelPositive},
		{"NEGATIVE", models.LabelNegative},
		{"neg", models.LabelNegative},
		{"NEUTRAL", models.LabelNeutral},
		{"mixed", models.LabelNeutral},
		{"", models.LabelNeutral},
	}
	for _, tt := range tests {
		if got := NormalizeLabel(tt.raw); got != tt.want {
			t.Errorf("NormalizeLabel(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}
