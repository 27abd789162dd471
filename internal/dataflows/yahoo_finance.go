package dataflows

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/piquette/finance-go/quote"
	"github.com/shopspring/decimal"

	"github.com/ivolee/stockdash/config"
)

// YahooQuoteClient fetches intraday quote snapshots from Yahoo Finance.
type YahooQuoteClient struct {
	cache *CacheManager
}

// NewYahooQuoteClient creates a new Yahoo quote client
func NewYahooQuoteClient(cfg *config.Config) *YahooQuoteClient {
	cacheDir := filepath.Join(cfg.DataCacheDir, "yahoo_quotes")
	cache := NewCacheManager(cacheDir, 5*time.Minute, cfg.CacheEnabled)

	return &YahooQuoteClient{
		cache: cache,
	}
}

// GetQuote gets the current quote for a symbol.
func (yq *YahooQuoteClient) GetQuote(symbol string) (*Quote, error) {
	if err := ValidateSymbol(symbol); err != nil {
		return nil, err
	}

	symbol = NormalizeSymbol(symbol)

	var cached Quote
	if yq.cache.Get("yahoo", "quote", symbol, &cached) {
		return &cached, nil
	}

	var result *Quote
	err := WithRetry(DefaultRetryConfig(), func() error {
		q, err := quote.Get(symbol)
		if err != nil {
			return fmt.Errorf("failed to get quote for %s: %w", symbol, err)
		}

		result = &Quote{
			Symbol:    symbol,
			Name:      q.ShortName,
			Exchange:  q.FullExchangeName,
			Currency:  q.CurrencyID,
			Price:     decimal.NewFromFloat(q.RegularMarketPrice),
			Open:      decimal.NewFromFloat(q.RegularMarketOpen),
			High:      decimal.NewFromFloat(q.RegularMarketDayHigh),
			Low:       decimal.NewFromFloat(q.RegularMarketDayLow),
			Volume:    int64(q.RegularMarketVolume),
			Timestamp: time.Now(),
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	yq.cache.Set("yahoo", "quote", symbol, result)

	return result, nil
}
