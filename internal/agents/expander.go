package agents

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/cloudwego/eino/schema"
)

// SectorExpander asks the completion service for representative ticker
// symbols when the user named sectors but no explicit stocks.
type SectorExpander struct {
	completer Completer
	debug     bool
}

// NewSectorExpander creates an expander over the given completer.
func NewSectorExpander(completer Completer, debug bool) *SectorExpander {
	return &SectorExpander{completer: completer, debug: debug}
}

// Expand issues one completion request for up to 5 comma-separated
// symbols covering the given sectors. Tokens are trimmed and upper-cased
// but deliberately not validated: a garbage token just fails resolution
// downstream. Transport failures propagate as ErrServiceUnavailable.
func (se *SectorExpander) Expand(ctx context.Context, sectors []string) ([]string, error) {
	prompt := fmt.Sprintf(`What are the top 5 most relevant publicly traded stocks in these sectors: %s?
Return ONLY stock symbols separated by commas, like: NVDA,MSFT,GOOGL,AMZN,META`,
		strings.Join(sectors, ", "))

	reply, err := se.completer.Complete(ctx, []*schema.Message{
		schema.UserMessage(prompt),
	})
	if err != nil {
		return nil, err
	}

	var symbols []string
	for _, token := range strings.Split(reply, ",") {
		symbol := strings.ToUpper(strings.TrimSpace(token))
		if symbol == "" {
			continue
		}
		symbols = append(symbols, symbol)
	}

	if se.debug {
		log.Printf("[Expander] suggested symbols for %v: %v", sectors, symbols)
	}

	return symbols, nil
}
