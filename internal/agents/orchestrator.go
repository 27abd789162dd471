package agents

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/ivolee/stockdash/internal/display"
	"github.com/ivolee/stockdash/internal/models"
)

// MaxSymbolsPerQuery bounds the cost and latency of one query. It is a
// hard cap, not a tunable.
const MaxSymbolsPerQuery = 5

// Fetcher retrieves a metrics record for one symbol. An error means the
// symbol has no usable data and must be skipped, never aborted on.
type Fetcher interface {
	Fetch(ctx context.Context, symbol string) (models.MetricsRecord, error)
}

// SentimentDescriber produces a one-line sentiment readout for a symbol.
// Optional; queries work without it.
type SentimentDescriber interface {
	Describe(ctx context.Context, symbol string) (string, error)
}

// Orchestrator sequences interpretation, sector expansion, resolution and
// fetching into a QueryResult for the presentation layer.
type Orchestrator struct {
	interpreter *Interpreter
	expander    *SectorExpander
	fetcher     Fetcher
	sentiment   SentimentDescriber
	debug       bool
}

// NewOrchestrator wires the pipeline. sentiment may be nil.
func NewOrchestrator(interpreter *Interpreter, expander *SectorExpander, fetcher Fetcher, sentiment SentimentDescriber, debug bool) *Orchestrator {
	return &Orchestrator{
		interpreter: interpreter,
		expander:    expander,
		fetcher:     fetcher,
		sentiment:   sentiment,
		debug:       debug,
	}
}

// Run executes one query end to end. It always returns a QueryResult with
// a human-readable summary; the only recoverable top-level failure is the
// completion service being unreachable during interpretation.
func (o *Orchestrator) Run(ctx context.Context, query string) models.QueryResult {
	intent, err := o.interpreter.Interpret(ctx, query)
	if err != nil {
		if o.debug {
			log.Printf("[Orchestrator] interpret failed: %v", err)
		}
		if errors.Is(err, ErrServiceUnavailable) {
			return models.QueryResult{
				Summary: "The analysis service is currently unreachable. Please check your API key and try again.",
				Records: []models.MetricsRecord{},
			}
		}
		return models.QueryResult{
			Summary: fmt.Sprintf("Could not interpret your query: %v", err),
			Records: []models.MetricsRecord{},
		}
	}

	if o.debug {
		log.Printf("[Orchestrator] intent: stocks=%v sectors=%v analysis=%s",
			intent.Stocks, intent.Sectors, intent.AnalysisType)
	}

	stocks := intent.Stocks
	if len(stocks) == 0 && len(intent.Sectors) > 0 {
		// Expander failures are swallowed: an empty expansion means "no
		// stocks determined", not an error.
		suggested, err := o.expander.Expand(ctx, intent.Sectors)
		if err != nil {
			if o.debug {
				log.Printf("[Orchestrator] sector expansion failed: %v", err)
			}
		} else {
			stocks = append(stocks, suggested...)
		}
	}

	if len(stocks) == 0 {
		return models.QueryResult{
			Summary: "Could not determine stocks from your query. Try asking about specific stocks (e.g., 'AAPL', 'MSFT') or sectors (e.g., 'AI stocks', 'tech companies').",
			Records: []models.MetricsRecord{},
		}
	}

	if len(stocks) > MaxSymbolsPerQuery {
		stocks = stocks[:MaxSymbolsPerQuery]
	}

	records := make([]models.MetricsRecord, 0, len(stocks))
	for _, symbol := range stocks {
		symbol = strings.TrimSpace(strings.ToUpper(symbol))
		if symbol == "" {
			continue
		}
		record, err := o.fetcher.Fetch(ctx, symbol)
		if err != nil {
			// One bad symbol must never abort the batch.
			if o.debug {
				log.Printf("[Orchestrator] skipping %s: %v", symbol, err)
			}
			continue
		}
		records = append(records, record)
	}

	if len(records) == 0 {
		return models.QueryResult{
			Summary: "Could not fetch stock data for your query. The symbols may be invalid or the data provider unreachable.",
			Records: []models.MetricsRecord{},
		}
	}

	return models.QueryResult{
		Summary: o.buildSummary(ctx, intent, records),
		Records: records,
	}
}

// buildSummary renders the markdown summary enumerating each record's
// headline fields.
func (o *Orchestrator) buildSummary(ctx context.Context, intent models.Intent, records []models.MetricsRecord) string {
	symbols := make([]string, 0, len(records))
	for _, record := range records {
		symbols = append(symbols, record.Category(models.IndSymbol, "N/A"))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Real-time stock data for %s:\n\n", strings.Join(symbols, ", "))

	for _, record := range records {
		symbol := record.Category(models.IndSymbol, "N/A")
		fmt.Fprintf(&b, "**%s** (%s)\n", symbol, record.Category(models.IndSector, "N/A"))
		fmt.Fprintf(&b, "- Price: %s\n", display.FormatCurrency(record[models.IndPrice]))
		fmt.Fprintf(&b, "- Market Cap: %s\n", display.FormatCurrency(record[models.IndMarketCap]))
		fmt.Fprintf(&b, "- Trailing PE: %s\n", display.FormatRatio(record[models.IndTrailingPE]))
		fmt.Fprintf(&b, "- Profit Margin: %s\n", display.FormatPercentage(record[models.IndProfitMargin]))
		fmt.Fprintf(&b, "- Debt/Equity: %s\n", display.FormatRatio(record[models.IndDebtToEquity]))

		if intent.AnalysisType == models.AnalysisSentiment && o.sentiment != nil {
			if line, err := o.sentiment.Describe(ctx, symbol); err == nil && line != "" {
				fmt.Fprintf(&b, "- Sentiment: %s\n", line)
			} else if err != nil && o.debug {
				log.Printf("[Orchestrator] sentiment for %s failed: %v", symbol, err)
			}
		}

		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n")
}
