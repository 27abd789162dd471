package dataflows

import (
	"context"
	"errors"
	"testing"
)

// fakeProvider serves canned field maps per symbol and records every
// financial-data probe it sees.
type fakeProvider struct {
	financial map[string]FieldMap
	summary   map[string]FieldMap
	profile   map[string]FieldMap
	stats     map[string]FieldMap
	errOn     map[string]error
	probes    []string
}

func (fp *fakeProvider) FinancialData(ctx context.Context, symbol string) (FieldMap, error) {
	fp.probes = append(fp.probes, symbol)
	if err, ok := fp.errOn[symbol]; ok {
		return nil, err
	}
	return fp.financial[symbol], nil
}

func (fp *fakeProvider) SummaryDetail(ctx context.Context, symbol string) (FieldMap, error) {
	return fp.summary[symbol], nil
}

func (fp *fakeProvider) AssetProfile(ctx context.Context, symbol string) (FieldMap, error) {
	return fp.profile[symbol], nil
}

func (fp *fakeProvider) KeyStats(ctx context.Context, symbol string) (FieldMap, error) {
	return fp.stats[symbol], nil
}

func TestResolveBareSymbol(t *testing.T) {
	fp := &fakeProvider{
		financial: map[string]FieldMap{
			"AAPL": {"currentPrice": 150.0},
		},
	}
	sr := NewSymbolResolver(fp, false)

	resolved := sr.Resolve(context.Background(), " aapl ")
	if resolved.Canonical != "AAPL" {
		t.Fatalf("expected canonical AAPL, got %s", resolved.Canonical)
	}
	if resolved.AutoResolved {
		t.Fatal("bare symbol must not be marked auto-resolved")
	}
	if len(fp.probes) != 1 {
		t.Fatalf("expected a single probe, got %v", fp.probes)
	}
}

func TestResolveRegionalSuffix(t *testing.T) {
	fp := &fakeProvider{
		financial: map[string]FieldMap{
			"RELIANCE.NS": {"currentPrice": 2900.0},
		},
	}
	sr := NewSymbolResolver(fp, false)

	resolved := sr.Resolve(context.Background(), "RELIANCE")
	if resolved.Canonical != "RELIANCE.NS" {
		t.Fatalf("expected RELIANCE.NS, got %s", resolved.Canonical)
	}
	if !resolved.AutoResolved {
		t.Fatal("suffixed resolution must be marked auto-resolved")
	}
}

func TestResolveSuffixOrderIsPriority(t *testing.T) {
	// Both .V and .NS validate; .V comes first in the fixed order.
	fp := &fakeProvider{
		financial: map[string]FieldMap{
			"ABC.V":  {"currentPrice": 1.0},
			"ABC.NS": {"currentPrice": 2.0},
		},
	}
	sr := NewSymbolResolver(fp, false)

	resolved := sr.Resolve(context.Background(), "ABC")
	if resolved.Canonical != "ABC.V" {
		t.Fatalf("expected first-matching suffix ABC.V, got %s", resolved.Canonical)
	}
}

func TestResolveFailsSoft(t *testing.T) {
	fp := &fakeProvider{financial: map[string]FieldMap{}}
	sr := NewSymbolResolver(fp, false)

	resolved := sr.Resolve(context.Background(), "nosuch")
	if resolved.Canonical != "NOSUCH" {
		t.Fatalf("expected original normalized symbol, got %s", resolved.Canonical)
	}
	if resolved.AutoResolved {
		t.Fatal("unresolved symbol must not be marked auto-resolved")
	}
	// Bare probe plus every suffix, in order.
	if len(fp.probes) != 1+len(RegionalSuffixes) {
		t.Fatalf("expected %d probes, got %d", 1+len(RegionalSuffixes), len(fp.probes))
	}
	for i, suffix := range RegionalSuffixes {
		if fp.probes[i+1] != "NOSUCH"+suffix {
			t.Fatalf("probe %d: expected NOSUCH%s, got %s", i+1, suffix, fp.probes[i+1])
		}
	}
}

func TestResolveSurvivesProviderErrors(t *testing.T) {
	// Every probe errors; resolution must still terminate cleanly.
	fp := &fakeProvider{errOn: map[string]error{}}
	fp.errOn["XYZ"] = errors.New("network down")
	for _, suffix := range RegionalSuffixes {
		fp.errOn["XYZ"+suffix] = errors.New("network down")
	}
	sr := NewSymbolResolver(fp, false)

	resolved := sr.Resolve(context.Background(), "XYZ")
	if resolved.Canonical != "XYZ" || resolved.AutoResolved {
		t.Fatalf("expected soft fallback to XYZ, got %+v", resolved)
	}
}

func TestResolveTransientFaultDoesNotAbortScan(t *testing.T) {
	// The first few suffixes error, a later one validates.
	fp := &fakeProvider{
		errOn: map[string]error{
			"DEF.TO": errors.New("timeout"),
			"DEF.V":  errors.New("timeout"),
		},
		financial: map[string]FieldMap{
			"DEF.NS": {"currentPrice": 10.0},
		},
	}
	sr := NewSymbolResolver(fp, false)

	resolved := sr.Resolve(context.Background(), "DEF")
	if resolved.Canonical != "DEF.NS" || !resolved.AutoResolved {
		t.Fatalf("expected DEF.NS after transient faults, got %+v", resolved)
	}
}

func TestProbeRejectsRecordWithoutPrice(t *testing.T) {
	// Non-empty record missing currentPrice does not validate.
	fp := &fakeProvider{
		financial: map[string]FieldMap{
			"GHI": {"totalRevenue": 1000.0},
		},
	}
	sr := NewSymbolResolver(fp, false)

	resolved := sr.Resolve(context.Background(), "GHI")
	if resolved.AutoResolved {
		t.Fatalf("expected no resolution, got %+v", resolved)
	}
	if len(fp.probes) != 1+len(RegionalSuffixes) {
		t.Fatalf("expected full suffix scan, got %d probes", len(fp.probes))
	}
}
