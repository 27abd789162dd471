package dataflows

import (
	"context"
	"log"

	"github.com/ivolee/stockdash/internal/models"
)

// RegionalSuffixes is the fixed probe order for non-US listings. The order
// is a tie-break priority: resolution returns on the first suffix that
// validates, so reordering changes behavior.
var RegionalSuffixes = []string{
	".TO", // Toronto Stock Exchange (Canada)
	".V",  // TSX Venture Exchange (Canada)
	".NS", // NSE (India)
	".BO", // BSE (India)
	".L",  // London Stock Exchange (UK)
	".HK", // Hong Kong Stock Exchange
	".TW", // Taiwan Stock Exchange
	".ST", // Nasdaq Stockholm (Sweden)
	".AX", // Australian Securities Exchange
	".NZ", // New Zealand Stock Exchange
	".SG", // Singapore Exchange
	".KL", // Bursa Malaysia
}

// SymbolResolver determines the canonical tradable symbol for a candidate
// ticker string by probing the bare symbol and then each regional suffix.
type SymbolResolver struct {
	provider FundamentalsProvider
	debug    bool
}

// NewSymbolResolver creates a resolver backed by the given provider.
func NewSymbolResolver(provider FundamentalsProvider, debug bool) *SymbolResolver {
	return &SymbolResolver{provider: provider, debug: debug}
}

// Resolve returns the canonical symbol for requested. It never fails:
// when neither the bare symbol nor any suffixed variant validates, the
// normalized original comes back with AutoResolved false and the fetch
// downstream simply finds no data.
func (sr *SymbolResolver) Resolve(ctx context.Context, requested string) models.ResolvedSymbol {
	symbol := NormalizeSymbol(requested)

	if sr.probe(ctx, symbol) {
		return models.ResolvedSymbol{Requested: requested, Canonical: symbol, AutoResolved: false}
	}

	for _, suffix := range RegionalSuffixes {
		candidate := symbol + suffix
		if sr.probe(ctx, candidate) {
			if sr.debug {
				log.Printf("[Resolver] resolved %s via suffix %s", symbol, suffix)
			}
			return models.ResolvedSymbol{Requested: requested, Canonical: candidate, AutoResolved: true}
		}
	}

	if sr.debug {
		log.Printf("[Resolver] no regional variant for %s, keeping original", symbol)
	}
	return models.ResolvedSymbol{Requested: requested, Canonical: symbol, AutoResolved: false}
}

// probe checks whether the provider has live financial data for a
// candidate. A provider error counts as invalid so a transient fault on
// one suffix never aborts the scan over the remaining ones.
func (sr *SymbolResolver) probe(ctx context.Context, candidate string) bool {
	financial, err := sr.provider.FinancialData(ctx, candidate)
	if err != nil {
		if sr.debug {
			log.Printf("[Resolver] probe %s failed: %v", candidate, err)
		}
		return false
	}
	if len(financial) == 0 {
		return false
	}
	_, hasPrice := financial["currentPrice"]
	return hasPrice
}
