package agents

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/cloudwego/eino/schema"

	"github.com/ivolee/stockdash/internal/models"
)

// Interpreter turns a free-form user query into a structured Intent with
// a single completion request.
type Interpreter struct {
	completer Completer
	debug     bool
}

// NewInterpreter creates an interpreter over the given completer.
func NewInterpreter(completer Completer, debug bool) *Interpreter {
	return &Interpreter{completer: completer, debug: debug}
}

const interpreterSystemPrompt = "You are a financial analyst. Extract stocks and analysis type from user queries. Always respond with valid JSON."

func interpreterPrompt(query string) string {
	return fmt.Sprintf(`You are a financial analyst. Parse this user query and determine:
1. What stocks or sectors the user is asking about
2. What type of analysis they want (metrics, comparison, sentiment, etc.)

User query: %q

Respond in JSON format:
{
    "stocks": ["SYMBOL1", "SYMBOL2"],
    "sectors": ["sector1", "sector2"],
    "analysis_type": "metrics|comparison|sentiment|analysis",
    "interpretation": "brief description of what user wants"
}

Be flexible - if they say "AI stocks", include relevant AI companies like NVDA, MSFT, GOOGL, etc.
If they say "compare tech stocks", extract multiple tech companies.`, query)
}

// Interpret sends the parse prompt and decodes the reply. A transport
// failure propagates as ErrServiceUnavailable; a malformed reply degrades
// to the deterministic empty intent. Returned symbols are not validated
// here; the resolver handles that downstream.
func (it *Interpreter) Interpret(ctx context.Context, query string) (models.Intent, error) {
	messages := []*schema.Message{
		schema.SystemMessage(interpreterSystemPrompt),
		schema.UserMessage(interpreterPrompt(query)),
	}

	reply, err := it.completer.Complete(ctx, messages)
	if err != nil {
		return models.Intent{}, err
	}

	if it.debug {
		log.Printf("[Interpreter] reply: %s", reply)
	}

	return parseIntent(reply, it.debug), nil
}

// intentPayload is the wire shape the model is asked to produce.
type intentPayload struct {
	Stocks         []string `json:"stocks"`
	Sectors        []string `json:"sectors"`
	AnalysisType   string   `json:"analysis_type"`
	Interpretation string   `json:"interpretation"`
}

// parseIntent extracts the first brace-delimited JSON object from the
// reply. Anything unparseable yields the empty intent; model output is
// unreliable and must never crash the pipeline.
func parseIntent(reply string, debug bool) models.Intent {
	fragment := extractJSONObject(reply)
	if fragment == "" {
		if debug {
			log.Printf("[Interpreter] no JSON object in reply, using fallback")
		}
		return models.EmptyIntent()
	}

	var payload intentPayload
	if err := json.Unmarshal([]byte(fragment), &payload); err != nil {
		if debug {
			log.Printf("[Interpreter] failed to parse JSON, using fallback: %v", err)
		}
		return models.EmptyIntent()
	}

	intent := models.Intent{
		Stocks:         payload.Stocks,
		Sectors:        payload.Sectors,
		AnalysisType:   models.AnalysisType(payload.AnalysisType),
		Interpretation: payload.Interpretation,
	}
	if intent.Stocks == nil {
		intent.Stocks = []string{}
	}
	if intent.Sectors == nil {
		intent.Sectors = []string{}
	}
	if !models.ValidAnalysisType(payload.AnalysisType) {
		intent.AnalysisType = models.AnalysisMetrics
	}
	if intent.Interpretation == "" {
		intent.Interpretation = "unknown"
	}
	return intent
}

// extractJSONObject cuts the first '{' through the last '}' out of text,
// tolerating prose around the object. Empty string when no braces pair.
func extractJSONObject(text string) string {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end == -1 || end < start {
		return ""
	}
	return text[start : end+1]
}
