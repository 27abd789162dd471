package search

import "testing"

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	engine, err := NewEngine(DefaultCatalog())
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	t.Cleanup(func() { engine.Close() })
	return engine
}

func TestSearchByCompanyName(t *testing.T) {
	engine := newTestEngine(t)

	results, err := engine.Search("Tesla", 5)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(results) == 0 {
		t.Fatal("expected at least one hit for Tesla")
	}
	if results[0].Symbol != "TSLA" {
		t.Errorf("top hit = %s, want TSLA", results[0].Symbol)
	}
}

func TestSearchExactSymbolLeads(t *testing.T) {
	engine := newTestEngine(t)

	results, err := engine.Search("aapl", 5)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(results) == 0 || results[0].Symbol != "AAPL" {
		t.Fatalf("exact symbol should lead, got %v", results)
	}
}

func TestGetBySymbol(t *testing.T) {
	engine := newTestEngine(t)

	stock, ok := engine.GetBySymbol(" nvda ")
	if !ok || stock.Name != "NVIDIA Corporation" {
		t.Fatalf("GetBySymbol = %v, %v", stock, ok)
	}

	if _, ok := engine.GetBySymbol("ZZZZ"); ok {
		t.Error("unknown symbol should miss")
	}
}

func TestSearchHonorsLimit(t *testing.T) {
	engine := newTestEngine(t)

	results, err := engine.Search("Inc", 3)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(results) > 3 {
		t.Errorf("limit ignored: %d results", len(results))
	}
}
