package display

import (
	"math"
	"testing"

	"github.com/ivolee/stockdash/internal/models"
)

func approx(t *testing.T, got, want float64, label string) {
	t.Helper()
	if math.Abs(got-want) > 0.01 {
		t.Errorf("%s = %.2f, want %.2f", label, got, want)
	}
}

func scoreOf(t *testing.T, record models.MetricsRecord, name string) float64 {
	t.Helper()
	for _, axis := range RadarScores(record) {
		if axis.Name == name {
			return axis.Score
		}
	}
	t.Fatalf("axis %s missing", name)
	return 0
}

func TestRadarAxesAlwaysPresent(t *testing.T) {
	scores := RadarScores(models.MetricsRecord{})
	if len(scores) != 5 {
		t.Fatalf("got %d axes, want 5", len(scores))
	}
	for _, axis := range scores {
		if axis.Score != 0 {
			t.Errorf("empty record: axis %s = %v, want 0", axis.Name, axis.Score)
		}
	}
}

func TestPEScoring(t *testing.T) {
	approx(t, scoreOf(t, models.MetricsRecord{models.IndTrailingPE: 20.0}, "PE Ratio"), 50, "PE 20")
	approx(t, scoreOf(t, models.MetricsRecord{models.IndTrailingPE: 5.0}, "PE Ratio"), 100, "PE 5 capped")
	approx(t, scoreOf(t, models.MetricsRecord{models.IndTrailingPE: -3.0}, "PE Ratio"), 0, "negative PE")
}

func TestInstitutionScoring(t *testing.T) {
	approx(t, scoreOf(t, models.MetricsRecord{models.IndInstitutionPct: 0.335}, "Institution %"), 100, "optimal band")
	approx(t, scoreOf(t, models.MetricsRecord{models.IndInstitutionPct: 0.165}, "Institution %"), 50, "half of ramp")
	approx(t, scoreOf(t, models.MetricsRecord{models.IndInstitutionPct: 0.95}, "Institution %"), 0, "saturated ownership")
}

func TestDividendYieldScoring(t *testing.T) {
	approx(t, scoreOf(t, models.MetricsRecord{models.IndDividendYield: 0.05}, "Dividend Yield"), 100, "5% yield")
	approx(t, scoreOf(t, models.MetricsRecord{models.IndDividendYield: 0.025}, "Dividend Yield"), 50, "2.5% yield")
	approx(t, scoreOf(t, models.MetricsRecord{models.IndDividendYield: 0.08}, "Dividend Yield"), 100, "above saturation")
}

func TestMarginScoring(t *testing.T) {
	approx(t, scoreOf(t, models.MetricsRecord{models.IndProfitMargin: 0.20}, "Profit Margin"), 100, "in optimal band")
	approx(t, scoreOf(t, models.MetricsRecord{models.IndProfitMargin: 0.075}, "Profit Margin"), 50, "ramp")
	approx(t, scoreOf(t, models.MetricsRecord{models.IndProfitMargin: 0.35}, "Profit Margin"), 80, "decline above band")
	approx(t, scoreOf(t, models.MetricsRecord{models.IndOperatingMargin: 0.25}, "Operating Margin"), 100, "band edge")
}
