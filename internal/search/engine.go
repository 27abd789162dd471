// Package search provides a small in-memory full-text index over a
// curated catalog of well-known tickers, so users can look up a symbol
// by company name without hitting any remote service.
package search

import (
	"fmt"
	"strings"

	"github.com/blevesearch/bleve/v2"
)

// Stock is one catalog entry.
type Stock struct {
	Symbol   string `json:"symbol"`
	Name     string `json:"name"`
	Sector   string `json:"sector"`
	Exchange string `json:"exchange"`
}

// Engine indexes the catalog in memory at startup.
type Engine struct {
	index    bleve.Index
	bySymbol map[string]Stock
}

// NewEngine builds an in-memory index over stocks.
func NewEngine(stocks []Stock) (*Engine, error) {
	index, err := bleve.NewMemOnly(bleve.NewIndexMapping())
	if err != nil {
		return nil, fmt.Errorf("failed to create index: %w", err)
	}

	bySymbol := make(map[string]Stock, len(stocks))
	batch := index.NewBatch()
	for _, stock := range stocks {
		id := fmt.Sprintf("%s-%s", stock.Symbol, stock.Exchange)
		if err := batch.Index(id, stock); err != nil {
			return nil, fmt.Errorf("failed to add to batch: %w", err)
		}
		bySymbol[stock.Symbol] = stock
	}
	if err := index.Batch(batch); err != nil {
		return nil, fmt.Errorf("failed to execute batch: %w", err)
	}

	return &Engine{index: index, bySymbol: bySymbol}, nil
}

// Search returns up to limit catalog entries matching query, exact
// symbol matches first.
func (e *Engine) Search(query string, limit int) ([]Stock, error) {
	if limit <= 0 {
		limit = 10
	}

	var results []Stock
	seen := make(map[string]bool)

	// An exact symbol hit always leads.
	if stock, ok := e.bySymbol[strings.ToUpper(strings.TrimSpace(query))]; ok {
		results = append(results, stock)
		seen[stock.Symbol] = true
	}

	match := bleve.NewMatchQuery(query)
	match.SetFuzziness(1)
	request := bleve.NewSearchRequest(match)
	request.Size = limit
	request.Fields = []string{"symbol"}

	searchResult, err := e.index.Search(request)
	if err != nil {
		return nil, fmt.Errorf("search failed: %w", err)
	}

	for _, hit := range searchResult.Hits {
		symbol, _ := hit.Fields["symbol"].(string)
		if symbol == "" || seen[symbol] {
			continue
		}
		if stock, ok := e.bySymbol[symbol]; ok {
			results = append(results, stock)
			seen[symbol] = true
		}
		if len(results) >= limit {
			break
		}
	}

	return results, nil
}

// GetBySymbol returns the catalog entry for an exact symbol, if any.
func (e *Engine) GetBySymbol(symbol string) (Stock, bool) {
	stock, ok := e.bySymbol[strings.ToUpper(strings.TrimSpace(symbol))]
	return stock, ok
}

// Close releases the index.
func (e *Engine) Close() error {
	return e.index.Close()
}
