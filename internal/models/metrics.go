package models

// Indicator keys of a MetricsRecord. The display names double as map keys
// so records serialize the way the dashboard presents them.
const (
	IndSymbol          = "Symbol"
	IndPrice           = "Price"
	IndSector          = "Sector"
	IndMarketCap       = "Market Cap"
	IndEnterpriseValue = "Enterprise Value"
	IndDividendYield   = "Dividend Yield"
	IndTrailingPE      = "Trailing PE"
	IndForwardPE       = "Forward PE"
	IndPriceToSales    = "Price/Sales"
	IndPriceToBook     = "Price/Book"
	IndEVRevenue       = "EV/Revenue"
	IndEVEarnings      = "EV/Earnings"
	IndProfitMargin    = "Profit Margin"
	IndOperatingMargin = "Operating Margin"
	IndRevenue         = "Revenue"
	IndGrossProfit     = "Gross Profit"
	IndDebt            = "Debt"
	IndDebtToEquity    = "Debt/Equity"
	IndInsiderPct      = "Insider %"
	IndInstitutionPct  = "Institution %"
	IndPayoutRatio     = "Payout Ratio"
)

// Indicators is the fixed, ordered indicator set. Every MetricsRecord
// carries every key in this list, nil where the upstream had no value.
var Indicators = []string{
	IndSymbol, IndPrice, IndSector, IndMarketCap, IndEnterpriseValue,
	IndDividendYield, IndTrailingPE, IndForwardPE, IndPriceToSales,
	IndPriceToBook, IndEVRevenue, IndEVEarnings, IndProfitMargin,
	IndOperatingMargin, IndRevenue, IndGrossProfit, IndDebt,
	IndDebtToEquity, IndInsiderPct, IndInstitutionPct, IndPayoutRatio,
}

// MetricsRecord maps each indicator to a number, a category string, or
// nil when the value was unavailable upstream. Records are built fresh per
// fetch and never mutated after construction.
type MetricsRecord map[string]any

// Number returns the indicator as a float64 when it holds a numeric value.
func (r MetricsRecord) Number(key string) (float64, bool) {
	switch v := r[key].(type) {
	case float64:
		return v, true
	case int64:
		return float64(v), true
	case int:
		return float64(v), true
	}
	return 0, false
}

// Category returns the indicator as a string, or fallback when it holds
// anything else.
func (r MetricsRecord) Category(key, fallback string) string {
	if s, ok := r[key].(string); ok && s != "" {
		return s
	}
	return fallback
}

// ResolvedSymbol is the outcome of regional symbol resolution. Canonical
// is either the upper-cased requested symbol or that symbol plus exactly
// one regional suffix; AutoResolved is true only in the latter case.
type ResolvedSymbol struct {
	Requested    string `json:"requested"`
	Canonical    string `json:"canonical"`
	AutoResolved bool   `json:"auto_resolved"`
}

// QueryResult is what the orchestrator hands to the presentation layer.
type QueryResult struct {
	Summary string          `json:"summary"`
	Records []MetricsRecord `json:"records"`
}
