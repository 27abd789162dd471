package display

import "github.com/ivolee/stockdash/internal/models"

// RadarScore is one valuation axis normalized to 0-100.
type RadarScore struct {
	Name  string  `json:"name"`
	Score float64 `json:"score"`
}

// RadarScores computes the five valuation axes for a record. Missing or
// non-positive inputs score zero rather than dropping the axis, so every
// record yields the same five bars.
func RadarScores(record models.MetricsRecord) []RadarScore {
	return []RadarScore{
		{Name: "Dividend Yield", Score: scoreDividendYield(record)},
		{Name: "Operating Margin", Score: scoreMargin(record, models.IndOperatingMargin)},
		{Name: "PE Ratio", Score: scorePE(record)},
		{Name: "Profit Margin", Score: scoreMargin(record, models.IndProfitMargin)},
		{Name: "Institution %", Score: scoreInstitution(record)},
	}
}

// scorePE: lower multiples are better, scored as the inverse ratio 10/PE
// capped at 100.
func scorePE(record models.MetricsRecord) float64 {
	pe, ok := record.Number(models.IndTrailingPE)
	if !ok || pe <= 0 {
		return 0
	}
	score := (10 / pe) * 100
	if score > 100 {
		score = 100
	}
	return score
}

// scoreInstitution: ownership around a third of the float is optimal.
// Below 33% the score ramps up linearly, 33-34% is 100, above 34% it
// declines toward zero at 95%.
func scoreInstitution(record models.MetricsRecord) float64 {
	val, ok := record.Number(models.IndInstitutionPct)
	if !ok {
		return 0
	}
	pct := asPercent(val)
	switch {
	case pct < 33:
		return (pct / 33) * 100
	case pct <= 34:
		return 100
	default:
		score := 100 - ((pct-34)/61)*100
		if score < 0 {
			score = 0
		}
		return score
	}
}

// scoreDividendYield: 5% and up is ideal, below that the score scales
// linearly from zero.
func scoreDividendYield(record models.MetricsRecord) float64 {
	val, ok := record.Number(models.IndDividendYield)
	if !ok || val < 0 {
		return 0
	}
	pct := asPercent(val)
	if pct >= 5 {
		return 100
	}
	return (pct / 5) * 100
}

// scoreMargin scores operating and profit margins: 15-25% is the optimal
// band, below it the score ramps linearly, above it the score decays.
func scoreMargin(record models.MetricsRecord, key string) float64 {
	val, ok := record.Number(key)
	if !ok || val <= 0 {
		return 0
	}
	pct := asPercent(val)
	switch {
	case pct <= 15:
		return (pct / 15) * 100
	case pct <= 25:
		return 100
	default:
		score := 100 - ((pct-25)/10)*20
		if score < 0 {
			score = 0
		}
		return score
	}
}

// asPercent treats values below 1 as fractions (0.42 -> 42) and larger
// values as already-scaled percentages, matching upstream field variance.
func asPercent(val float64) float64 {
	if val < 1 {
		return val * 100
	}
	return val
}
