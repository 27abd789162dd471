package dataflows

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// FieldMap is one upstream lookup group: a loose field mapping with no
// guarantee of presence or type for any key.
type FieldMap map[string]any

// Number returns the field as a float64 when it holds a numeric value.
func (f FieldMap) Number(key string) (float64, bool) {
	switch v := f[key].(type) {
	case float64:
		return v, true
	case int64:
		return float64(v), true
	case int:
		return float64(v), true
	}
	return 0, false
}

// String returns the field as a string when it holds one.
func (f FieldMap) String(key string) (string, bool) {
	s, ok := f[key].(string)
	return s, ok
}

// Value returns the raw field value, or nil when absent.
func (f FieldMap) Value(key string) any {
	return f[key]
}

// FundamentalsProvider exposes the four independent upstream data groups
// for a symbol. Each group may come back empty; implementations must not
// invent fields.
type FundamentalsProvider interface {
	SummaryDetail(ctx context.Context, symbol string) (FieldMap, error)
	AssetProfile(ctx context.Context, symbol string) (FieldMap, error)
	FinancialData(ctx context.Context, symbol string) (FieldMap, error)
	KeyStats(ctx context.Context, symbol string) (FieldMap, error)
}

// Quote is an intraday quote snapshot used by the quote command.
type Quote struct {
	Symbol    string          `json:"symbol"`
	Name      string          `json:"name"`
	Exchange  string          `json:"exchange"`
	Currency  string          `json:"currency"`
	Price     decimal.Decimal `json:"price"`
	Open      decimal.Decimal `json:"open"`
	High      decimal.Decimal `json:"high"`
	Low       decimal.Decimal `json:"low"`
	Volume    int64           `json:"volume"`
	Timestamp time.Time       `json:"timestamp"`
}

// Headline is a scraped news headline used for sentiment scoring.
type Headline struct {
	Title       string    `json:"title"`
	Source      string    `json:"source"`
	URL         string    `json:"url"`
	PublishedAt time.Time `json:"published_at"`
}
