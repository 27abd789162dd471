package dataflows

import (
	"context"
	"errors"
	"log"

	"github.com/ivolee/stockdash/internal/models"
)

// ErrDataUnavailable means a fetch produced no usable record for a symbol.
// Callers skip the symbol; they must not abort the batch.
var ErrDataUnavailable = errors.New("no usable data for symbol")

// MetricsFetcher retrieves the fixed indicator set for a symbol from the
// four upstream data groups.
type MetricsFetcher struct {
	provider FundamentalsProvider
	resolver *SymbolResolver
	debug    bool
}

// NewMetricsFetcher creates a fetcher over the given provider. The
// resolver runs first on every fetch so regional listings work without
// the caller knowing the exchange.
func NewMetricsFetcher(provider FundamentalsProvider, resolver *SymbolResolver, debug bool) *MetricsFetcher {
	return &MetricsFetcher{provider: provider, resolver: resolver, debug: debug}
}

// Fetch builds a MetricsRecord for symbol. Every indicator key is present
// in the result, nil where the upstream had no value. When no upstream
// group has any data at all the whole call reports ErrDataUnavailable
// instead of returning a hollow record.
func (mf *MetricsFetcher) Fetch(ctx context.Context, symbol string) (models.MetricsRecord, error) {
	resolved := mf.resolver.Resolve(ctx, symbol)
	if mf.debug {
		log.Printf("[Fetcher] using symbol %s (auto_resolved=%v)", resolved.Canonical, resolved.AutoResolved)
	}

	summary := mf.group(ctx, resolved.Canonical, mf.provider.SummaryDetail)
	profile := mf.group(ctx, resolved.Canonical, mf.provider.AssetProfile)
	financial := mf.group(ctx, resolved.Canonical, mf.provider.FinancialData)
	stats := mf.group(ctx, resolved.Canonical, mf.provider.KeyStats)

	if len(summary) == 0 && len(profile) == 0 && len(financial) == 0 && len(stats) == 0 {
		return nil, ErrDataUnavailable
	}

	record := models.MetricsRecord{
		models.IndSymbol:          resolved.Canonical,
		models.IndPrice:           financial.Value("currentPrice"),
		models.IndSector:          sectorOrNA(profile),
		models.IndMarketCap:       summary.Value("marketCap"),
		models.IndEnterpriseValue: stats.Value("enterpriseValue"),
		models.IndDividendYield:   summary.Value("dividendYield"),
		models.IndTrailingPE:      summary.Value("trailingPE"),
		models.IndForwardPE:       summary.Value("forwardPE"),
		models.IndPriceToSales:    summary.Value("priceToSalesTrailing12Months"),
		models.IndPriceToBook:     stats.Value("bookValue"),
		models.IndEVRevenue:       ratio(stats, "enterpriseValue", financial, "totalRevenue"),
		models.IndEVEarnings:      ratio(stats, "enterpriseValue", financial, "ebitda"),
		models.IndProfitMargin:    financial.Value("profitMargins"),
		models.IndOperatingMargin: financial.Value("operatingMargins"),
		models.IndRevenue:         financial.Value("totalRevenue"),
		models.IndGrossProfit:     financial.Value("grossProfits"),
		models.IndDebt:            financial.Value("totalDebt"),
		models.IndDebtToEquity:    financial.Value("debtToEquity"),
		models.IndInsiderPct:      stats.Value("heldPercentInsiders"),
		models.IndInstitutionPct:  stats.Value("heldPercentInstitutions"),
		models.IndPayoutRatio:     summary.Value("payoutRatio"),
	}

	return record, nil
}

// group fetches one upstream data group, degrading any failure or odd
// shape to an empty map so one bad group never fails the whole record.
func (mf *MetricsFetcher) group(ctx context.Context, symbol string, get func(context.Context, string) (FieldMap, error)) FieldMap {
	fields, err := get(ctx, symbol)
	if err != nil {
		if mf.debug {
			log.Printf("[Fetcher] group lookup failed for %s: %v", symbol, err)
		}
		return FieldMap{}
	}
	if fields == nil {
		return FieldMap{}
	}
	return fields
}

// ratio divides numerator by denominator, or yields nil when either side
// is missing or the denominator is zero.
func ratio(num FieldMap, numKey string, den FieldMap, denKey string) any {
	n, ok := num.Number(numKey)
	if !ok {
		return nil
	}
	d, ok := den.Number(denKey)
	if !ok || d == 0 {
		return nil
	}
	return n / d
}

func sectorOrNA(profile FieldMap) any {
	if sector, ok := profile.String("sector"); ok && sector != "" {
		return sector
	}
	return "N/A"
}
