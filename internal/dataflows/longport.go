package dataflows

import (
	"context"
	"errors"
	"time"

	lpconfig "github.com/longportapp/openapi-go/config"
	"github.com/longportapp/openapi-go/quote"

	"github.com/ivolee/stockdash/config"
)

// LongportClient is an optional real-time quote source, used ahead of
// Yahoo when API credentials are configured.
type LongportClient struct {
	quoteCtx *quote.QuoteContext
}

// NewLongportClient builds a client from configured credentials. Missing
// credentials are a normal condition, reported as an error so callers
// fall back to Yahoo.
func NewLongportClient(cfg *config.Config) (*LongportClient, error) {
	if cfg.LongportAppKey == "" || cfg.LongportAppSecret == "" || cfg.LongportAccessToken == "" {
		return nil, errors.New("longport API credentials not configured")
	}

	conf, err := lpconfig.New(lpconfig.WithConfigKey(cfg.LongportAppKey, cfg.LongportAppSecret, cfg.LongportAccessToken))
	if err != nil {
		return nil, err
	}

	quoteContext, err := quote.NewFromCfg(conf)
	if err != nil {
		return nil, err
	}

	return &LongportClient{
		quoteCtx: quoteContext,
	}, nil
}

// GetQuote gets a real-time quote for a single symbol.
func (lpc *LongportClient) GetQuote(ctx context.Context, symbol string) (*Quote, error) {
	if lpc.quoteCtx == nil {
		return nil, errors.New("quote context is nil")
	}

	quotes, err := lpc.quoteCtx.Quote(ctx, []string{symbol})
	if err != nil {
		return nil, err
	}
	if len(quotes) == 0 {
		return nil, errors.New("no quote returned")
	}

	q := quotes[0]
	return &Quote{
		Symbol:    q.Symbol,
		Exchange:  "Longport",
		Price:     *q.LastDone,
		Open:      *q.Open,
		High:      *q.High,
		Low:       *q.Low,
		Volume:    q.Volume,
		Timestamp: time.Unix(q.Timestamp, 0),
	}, nil
}

// Close releases the underlying quote context.
func (lpc *LongportClient) Close() {
	if lpc.quoteCtx != nil {
		lpc.quoteCtx.Close()
	}
}
