// Package sentiment scores recent news headlines for a symbol with a
// small finance-oriented lexicon. It is intentionally coarse: the goal is
// a one-line mood readout, not a trading signal.
package sentiment

import (
	"context"
	"fmt"
	"strings"

	"github.com/ivolee/stockdash/internal/dataflows"
)

// HeadlineSource supplies recent headlines for a query string.
type HeadlineSource interface {
	Headlines(ctx context.Context, query string, maxResults int) ([]*dataflows.Headline, error)
}

// Analyzer aggregates headline polarity into a symbol-level readout.
type Analyzer struct {
	source       HeadlineSource
	maxHeadlines int
}

// NewAnalyzer creates an analyzer over the given headline source.
func NewAnalyzer(source HeadlineSource) *Analyzer {
	return &Analyzer{source: source, maxHeadlines: 10}
}

var positiveWords = map[string]bool{
	"gain": true, "gains": true, "surge": true, "surges": true, "rally": true,
	"rallies": true, "record": true, "beat": true, "beats": true, "strong": true,
	"growth": true, "profit": true, "profits": true, "upgrade": true, "upgraded": true,
	"soar": true, "soars": true, "bullish": true, "outperform": true, "up": true,
	"rise": true, "rises": true, "jump": true, "jumps": true, "high": true,
	"boost": true, "boosts": true, "win": true, "wins": true, "buy": true,
}

var negativeWords = map[string]bool{
	"loss": true, "losses": true, "drop": true, "drops": true, "fall": true,
	"falls": true, "plunge": true, "plunges": true, "weak": true, "miss": true,
	"misses": true, "downgrade": true, "downgraded": true, "crash": true,
	"bearish": true, "underperform": true, "down": true, "decline": true,
	"declines": true, "slump": true, "slumps": true, "low": true, "cut": true,
	"cuts": true, "lawsuit": true, "probe": true, "recall": true, "sell": true,
}

// Score returns a polarity in [-1, 1] for one piece of text: the signed
// share of sentiment-bearing words among all words.
func Score(text string) float64 {
	words := strings.Fields(strings.ToLower(text))
	if len(words) == 0 {
		return 0
	}

	var pos, neg int
	for _, word := range words {
		word = strings.Trim(word, ".,:;!?'\"()")
		if positiveWords[word] {
			pos++
		} else if negativeWords[word] {
			neg++
		}
	}

	return float64(pos-neg) / float64(len(words))
}

// Label maps an aggregate polarity to a coarse bucket.
func Label(score float64) string {
	switch {
	case score > 0.02:
		return "positive"
	case score < -0.02:
		return "negative"
	default:
		return "neutral"
	}
}

// Describe fetches recent headlines for symbol and aggregates their
// polarity into a one-line readout.
func (a *Analyzer) Describe(ctx context.Context, symbol string) (string, error) {
	headlines, err := a.source.Headlines(ctx, symbol+" stock", a.maxHeadlines)
	if err != nil {
		return "", err
	}
	if len(headlines) == 0 {
		return "", fmt.Errorf("no recent headlines for %s", symbol)
	}

	var total float64
	for _, h := range headlines {
		total += Score(h.Title)
	}
	avg := total / float64(len(headlines))

	return fmt.Sprintf("%s (%.2f) across %d headlines", Label(avg), avg, len(headlines)), nil
}
