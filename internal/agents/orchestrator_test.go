package agents

import (
	"context"
	"fmt"
	"reflect"
	"strings"
	"testing"

	"github.com/ivolee/stockdash/internal/models"
)

// fakeFetcher serves canned records and logs the symbols it was asked
// for, in order.
type fakeFetcher struct {
	records map[string]models.MetricsRecord
	calls   []string
}

func (ff *fakeFetcher) Fetch(ctx context.Context, symbol string) (models.MetricsRecord, error) {
	ff.calls = append(ff.calls, symbol)
	record, ok := ff.records[symbol]
	if !ok {
		return nil, fmt.Errorf("fetch %s: %w", symbol, errDataUnavailableTest)
	}
	return record, nil
}

var errDataUnavailableTest = fmt.Errorf("no usable data")

func record(symbol, sector string, price float64) models.MetricsRecord {
	r := models.MetricsRecord{}
	for _, key := range models.Indicators {
		r[key] = nil
	}
	r[models.IndSymbol] = symbol
	r[models.IndSector] = sector
	r[models.IndPrice] = price
	return r
}

func intentReply(stocks []string, sectors []string) string {
	quote := func(items []string) string {
		quoted := make([]string, len(items))
		for i, s := range items {
			quoted[i] = fmt.Sprintf("%q", s)
		}
		return strings.Join(quoted, ", ")
	}
	return fmt.Sprintf(`{"stocks": [%s], "sectors": [%s], "analysis_type": "metrics", "interpretation": "test"}`,
		quote(stocks), quote(sectors))
}

func newTestOrchestrator(interpreterReply string, expanderReply string, ff *fakeFetcher) *Orchestrator {
	it := NewInterpreter(&stubCompleter{reply: interpreterReply}, false)
	se := NewSectorExpander(&stubCompleter{reply: expanderReply}, false)
	return NewOrchestrator(it, se, ff, nil, false)
}

func TestRunCapsAtFiveSymbols(t *testing.T) {
	symbols := []string{"A", "B", "C", "D", "E", "F", "G"}
	ff := &fakeFetcher{records: map[string]models.MetricsRecord{}}
	for _, s := range symbols {
		ff.records[s] = record(s, "Test", 1)
	}
	o := newTestOrchestrator(intentReply(symbols, nil), "", ff)

	result := o.Run(context.Background(), "seven stocks")
	if len(result.Records) != 5 {
		t.Fatalf("expected 5 records, got %d", len(result.Records))
	}
	if !reflect.DeepEqual(ff.calls, []string{"A", "B", "C", "D", "E"}) {
		t.Errorf("fetched %v, want first five in order", ff.calls)
	}
}

func TestRunSkipsFailedSymbolPreservingOrder(t *testing.T) {
	symbols := []string{"S1", "S2", "S3", "S4", "S5"}
	ff := &fakeFetcher{records: map[string]models.MetricsRecord{}}
	for _, s := range symbols {
		if s == "S2" {
			continue // S2 has no data
		}
		ff.records[s] = record(s, "Test", 1)
	}
	o := newTestOrchestrator(intentReply(symbols, nil), "", ff)

	result := o.Run(context.Background(), "five stocks")
	got := make([]string, 0, len(result.Records))
	for _, r := range result.Records {
		got = append(got, r.Category(models.IndSymbol, ""))
	}
	want := []string{"S1", "S3", "S4", "S5"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("records = %v, want %v", got, want)
	}
}

func TestRunSingleStockScenario(t *testing.T) {
	ff := &fakeFetcher{records: map[string]models.MetricsRecord{
		"AAPL": record("AAPL", "Technology", 150),
	}}
	o := newTestOrchestrator(intentReply([]string{"AAPL"}, nil), "", ff)

	result := o.Run(context.Background(), "AAPL")
	if len(result.Records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(result.Records))
	}
	if !strings.Contains(result.Summary, "AAPL") || !strings.Contains(result.Summary, "Technology") {
		t.Errorf("summary missing headline fields: %q", result.Summary)
	}
}

func TestRunExpandsSectorsWhenNoStocks(t *testing.T) {
	ff := &fakeFetcher{records: map[string]models.MetricsRecord{
		"NVDA":  record("NVDA", "Technology", 1),
		"MSFT":  record("MSFT", "Technology", 1),
		"GOOGL": record("GOOGL", "Technology", 1),
	}}
	o := newTestOrchestrator(intentReply(nil, []string{"AI"}), "NVDA,MSFT,GOOGL", ff)

	result := o.Run(context.Background(), "AI stocks")
	if !reflect.DeepEqual(ff.calls, []string{"NVDA", "MSFT", "GOOGL"}) {
		t.Errorf("working list = %v, want expanded symbols in order", ff.calls)
	}
	if len(result.Records) != 3 {
		t.Errorf("expected 3 records, got %d", len(result.Records))
	}
}

func TestRunServiceUnavailableShortCircuits(t *testing.T) {
	it := NewInterpreter(&stubCompleter{err: ErrServiceUnavailable}, false)
	se := NewSectorExpander(&stubCompleter{reply: ""}, false)
	ff := &fakeFetcher{}
	o := NewOrchestrator(it, se, ff, nil, false)

	result := o.Run(context.Background(), "AAPL")
	if len(result.Records) != 0 {
		t.Errorf("expected no records, got %d", len(result.Records))
	}
	if !strings.Contains(result.Summary, "unreachable") {
		t.Errorf("summary should explain the outage: %q", result.Summary)
	}
	if len(ff.calls) != 0 {
		t.Error("no fetches should happen when interpretation fails")
	}
}

func TestRunEmptyIntentAsksForSpecifics(t *testing.T) {
	ff := &fakeFetcher{}
	o := newTestOrchestrator("not json at all", "", ff)

	result := o.Run(context.Background(), "what's up")
	if len(result.Records) != 0 {
		t.Errorf("expected no records, got %d", len(result.Records))
	}
	if !strings.Contains(result.Summary, "specific") {
		t.Errorf("summary should ask for specifics: %q", result.Summary)
	}
}

func TestRunExpanderFailureIsSwallowed(t *testing.T) {
	it := NewInterpreter(&stubCompleter{reply: intentReply(nil, []string{"tech"})}, false)
	se := NewSectorExpander(&stubCompleter{err: ErrServiceUnavailable}, false)
	ff := &fakeFetcher{}
	o := NewOrchestrator(it, se, ff, nil, false)

	result := o.Run(context.Background(), "tech stocks")
	if !strings.Contains(result.Summary, "specific") {
		t.Errorf("expander failure should degrade to no stocks: %q", result.Summary)
	}
}

func TestRunAllFetchesFailing(t *testing.T) {
	ff := &fakeFetcher{} // nothing fetchable
	o := newTestOrchestrator(intentReply([]string{"BAD1", "BAD2"}, nil), "", ff)

	result := o.Run(context.Background(), "bad symbols")
	if len(result.Records) != 0 {
		t.Errorf("expected no records, got %d", len(result.Records))
	}
	if !strings.Contains(result.Summary, "Could not fetch") {
		t.Errorf("summary should say no data was retrieved: %q", result.Summary)
	}
}

type stubSentiment struct{}

func (stubSentiment) Describe(ctx context.Context, symbol string) (string, error) {
	return "positive (0.62) across 5 headlines", nil
}

func TestRunSentimentLineAppended(t *testing.T) {
	reply := `{"stocks": ["AAPL"], "sectors": [], "analysis_type": "sentiment", "interpretation": "mood check"}`
	ff := &fakeFetcher{records: map[string]models.MetricsRecord{
		"AAPL": record("AAPL", "Technology", 150),
	}}
	it := NewInterpreter(&stubCompleter{reply: reply}, false)
	se := NewSectorExpander(&stubCompleter{reply: ""}, false)
	o := NewOrchestrator(it, se, ff, stubSentiment{}, false)

	result := o.Run(context.Background(), "how do people feel about AAPL")
	if !strings.Contains(result.Summary, "Sentiment: positive") {
		t.Errorf("summary missing sentiment line: %q", result.Summary)
	}
}
