package dataflows

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/ivolee/stockdash/config"
)

// Yahoo quoteSummary module names, one per upstream data group.
const (
	moduleSummaryDetail = "summaryDetail"
	moduleAssetProfile  = "assetProfile"
	moduleFinancialData = "financialData"
	moduleKeyStats      = "defaultKeyStatistics"
)

// YahooFundamentalsClient fetches the quoteSummary data groups from the
// Yahoo Finance JSON API. It implements FundamentalsProvider.
type YahooFundamentalsClient struct {
	client *resty.Client
	cache  *CacheManager
}

// NewYahooFundamentalsClient creates a new fundamentals client
func NewYahooFundamentalsClient(cfg *config.Config) *YahooFundamentalsClient {
	cacheDir := filepath.Join(cfg.DataCacheDir, "yahoo_fundamentals")
	cache := NewCacheManager(cacheDir, 1*time.Hour, cfg.CacheEnabled)

	client := resty.New()
	client.SetBaseURL("https://query2.finance.yahoo.com/v10/finance")
	client.SetTimeout(20 * time.Second)
	client.SetHeader("User-Agent", "Mozilla/5.0 (compatible; StockDash/1.0)")

	return &YahooFundamentalsClient{
		client: client,
		cache:  cache,
	}
}

// SummaryDetail returns the summary/valuation group for a symbol.
func (yc *YahooFundamentalsClient) SummaryDetail(ctx context.Context, symbol string) (FieldMap, error) {
	return yc.getModule(ctx, symbol, moduleSummaryDetail)
}

// AssetProfile returns the company profile group for a symbol.
func (yc *YahooFundamentalsClient) AssetProfile(ctx context.Context, symbol string) (FieldMap, error) {
	return yc.getModule(ctx, symbol, moduleAssetProfile)
}

// FinancialData returns the live financials group for a symbol.
func (yc *YahooFundamentalsClient) FinancialData(ctx context.Context, symbol string) (FieldMap, error) {
	return yc.getModule(ctx, symbol, moduleFinancialData)
}

// KeyStats returns the key statistics group for a symbol.
func (yc *YahooFundamentalsClient) KeyStats(ctx context.Context, symbol string) (FieldMap, error) {
	return yc.getModule(ctx, symbol, moduleKeyStats)
}

// quoteSummaryResponse mirrors the quoteSummary JSON envelope.
type quoteSummaryResponse struct {
	QuoteSummary struct {
		Result []map[string]json.RawMessage `json:"result"`
		Error  *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"quoteSummary"`
}

func (yc *YahooFundamentalsClient) getModule(ctx context.Context, symbol, module string) (FieldMap, error) {
	if err := ValidateSymbol(symbol); err != nil {
		return nil, err
	}

	symbol = NormalizeSymbol(symbol)

	cacheKey := map[string]string{"symbol": symbol, "module": module}
	var cached FieldMap
	if yc.cache.Get("yahoo", module, cacheKey, &cached) {
		return cached, nil
	}

	var result FieldMap
	err := WithRetry(DefaultRetryConfig(), func() error {
		resp, err := yc.client.R().
			SetContext(ctx).
			SetQueryParam("modules", module).
			Get("/quoteSummary/" + symbol)

		if err != nil {
			return fmt.Errorf("failed to fetch %s for %s: %w", module, symbol, err)
		}

		// Yahoo answers 404 for unknown symbols; that is a terminal
		// empty result, not a retryable failure.
		if resp.StatusCode() == 404 {
			result = FieldMap{}
			return nil
		}

		if resp.StatusCode() != 200 {
			return fmt.Errorf("API error %d for %s/%s", resp.StatusCode(), symbol, module)
		}

		var envelope quoteSummaryResponse
		if err := json.Unmarshal(resp.Body(), &envelope); err != nil {
			return fmt.Errorf("failed to parse %s response: %w", module, err)
		}

		if envelope.QuoteSummary.Error != nil || len(envelope.QuoteSummary.Result) == 0 {
			result = FieldMap{}
			return nil
		}

		raw, ok := envelope.QuoteSummary.Result[0][module]
		if !ok {
			result = FieldMap{}
			return nil
		}

		var fields map[string]any
		if err := json.Unmarshal(raw, &fields); err != nil {
			result = FieldMap{}
			return nil
		}

		result = flattenRawFields(fields)
		return nil
	})

	if err != nil {
		return nil, err
	}

	yc.cache.Set("yahoo", module, cacheKey, result)

	return result, nil
}

// flattenRawFields unwraps Yahoo's {"raw": n, "fmt": "…"} value objects so
// callers see plain numbers next to plain strings.
func flattenRawFields(fields map[string]any) FieldMap {
	out := make(FieldMap, len(fields))
	for key, val := range fields {
		if obj, ok := val.(map[string]any); ok {
			if raw, ok := obj["raw"]; ok {
				out[key] = raw
				continue
			}
			// Formatted-only objects ({} placeholders) carry no value.
			continue
		}
		out[key] = val
	}
	return out
}
