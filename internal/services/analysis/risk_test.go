package analysis

import (
	"strings"
	"testing"

	"Candl/internal/domain/models"
)

func TestRiskBothFlags(t *testing.T) {
	sig := Risk(&models.Quote{Current: 110, PrevClose: 100, High: 115, Low: 95})
	if sig.PctChange != 10.0 {
		t.Fatalf("expected pct_change 10.0, got %f", sig.PctChange)
	}
	if !strings.Contains(sig.Note, "High intraday move") {
		t.Errorf("expected high-move flag in %q", sig.Note)
	}
	if !strings.Contains(sig.Note, "Wide day range") {
		t.Errorf("expected wide-range flag in %q", sig.Note)
	}
}

func TestRiskNormal(t *testing.T) {
	sig := Risk(&models.Quote{Current: 101, PrevClose: 100, High: 102, Low: 100})
	if sig.Note != "Normal" {
		t.Fatalf("expected Normal, got %q", sig.Note)
	}
	if sig.PctChange != 1.0 {
		t.Fatalf("expected pct_change 1.0, got %f", sig.PctChange)
	}
}

func TestRiskZeroPrevClose(t *testing.T) {
	// divisor falls back to 1, so pct_change becomes current*100
	sig := Risk(&models.Quote{Current: 2, PrevClose: 0, High: 2, Low: 2})
	if sig.PctChange != 200 {
		t.Fatalf("expected pct_change 200, got %f", sig.PctChange)
	}
	if !strings.Contains(sig.Note, "High intraday move") {
		t.Errorf("expected high-move flag in %q", sig.Note)
	}
}

func TestRiskNegativeMove(t *testing.T) {
	sig := Risk(&models.Quote{Current: 95, PrevClose: 100, High: 100, Low: 95})
	if sig.PctChange != -5.0 {
		t.Fatalf("expected pct_change -5.0, got %f", sig.PctChange)
	}
	if !strings.Contains(sig.Note, "High intraday move") {
		t.Errorf("expected high-move flag on -5%% move, got %q", sig.Note)
	}
}
