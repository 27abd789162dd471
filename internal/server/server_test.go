package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/cloudwego/eino/schema"

	"github.com/ivolee/stockdash/internal/agents"
	"github.com/ivolee/stockdash/internal/models"
	"github.com/ivolee/stockdash/internal/search"
)

type stubCompleter struct {
	reply string
}

func (s stubCompleter) Complete(ctx context.Context, messages []*schema.Message) (string, error) {
	return s.reply, nil
}

type stubFetcher struct{}

func (stubFetcher) Fetch(ctx context.Context, symbol string) (models.MetricsRecord, error) {
	record := models.MetricsRecord{}
	for _, key := range models.Indicators {
		record[key] = nil
	}
	record[models.IndSymbol] = symbol
	record[models.IndSector] = "Technology"
	record[models.IndPrice] = 189.5
	record[models.IndTrailingPE] = 28.4
	return record, nil
}

type stubProvider struct {
	orchestrator *agents.Orchestrator
}

func (p stubProvider) Orchestrator() *agents.Orchestrator { return p.orchestrator }
func (p stubProvider) Fetcher() agents.Fetcher            { return stubFetcher{} }

func newTestServer(t *testing.T) *Server {
	t.Helper()
	completer := stubCompleter{reply: `{"stocks": ["AAPL"], "sectors": [], "analysis_type": "metrics", "interpretation": "Apple metrics"}`}
	orchestrator := agents.NewOrchestrator(
		agents.NewInterpreter(completer, false),
		agents.NewSectorExpander(completer, false),
		stubFetcher{},
		nil,
		false,
	)
	engine, err := search.NewEngine(search.DefaultCatalog())
	if err != nil {
		t.Fatalf("search engine: %v", err)
	}
	t.Cleanup(func() { engine.Close() })
	return New(stubProvider{orchestrator: orchestrator}, engine, 0)
}

func TestHealthz(t *testing.T) {
	srv := newTestServer(t)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestQueryEndpoint(t *testing.T) {
	srv := newTestServer(t)
	body := strings.NewReader(`{"query": "how is Apple doing"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/query", body)
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var result models.QueryResult
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(result.Records) != 1 {
		t.Fatalf("records = %d, want 1", len(result.Records))
	}
	if !strings.Contains(result.Summary, "AAPL") {
		t.Errorf("summary missing symbol: %q", result.Summary)
	}
}

func TestQueryEndpointRejectsEmptyBody(t *testing.T) {
	srv := newTestServer(t)
	req := httptest.NewRequest(http.MethodPost, "/api/query", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestSearchEndpoint(t *testing.T) {
	srv := newTestServer(t)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/search?q=Apple", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "AAPL") {
		t.Errorf("search results missing AAPL: %s", rec.Body.String())
	}
}

func TestChartEndpointRejectsBadSymbol(t *testing.T) {
	srv := newTestServer(t)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/chart/not-a-symbol!", nil))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}
