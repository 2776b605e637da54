package search

import (
	"testing"

	"github.com/tickerhub/tickerhub/internal/catalog"
	"github.com/tickerhub/tickerhub/internal/config"
	"github.com/tickerhub/tickerhub/pkg/models"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	svc, err := New(catalog.New(), config.SearchConfig{
		MaxResults:   20,
		SuggestLimit: 8,
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(func() { svc.Close() })
	return svc
}

func TestSearchStocksExactSymbol(t *testing.T) {
	svc := newTestService(t)

	results, err := svc.SearchStocks("AAPL", 10)
	if err != nil {
		t.Fatalf("SearchStocks: %v", err)
	}
	if len(results) == 0 {
		t.Fatal("no results for AAPL")
	}
	if results[0].Symbol != "AAPL" {
		t.Errorf("top result: got %q, want AAPL", results[0].Symbol)
	}
	// An exact symbol hit must outrank everything else.
	for _, r := range results[1:] {
		if r.Score < results[0].Score {
			t.Errorf("result %q ranked above exact match", r.Symbol)
		}
	}
}

func TestSearchStocksByName(t *testing.T) {
	svc := newTestService(t)

	results, err := svc.SearchStocks("apple", 10)
	if err != nil {
		t.Fatalf("SearchStocks: %v", err)
	}
	if len(results) == 0 {
		t.Fatal("no results for apple")
	}
	if results[0].Symbol != "AAPL" {
		t.Errorf("top result for %q: got %q, want AAPL", "apple", results[0].Symbol)
	}
}

func TestSearchStocksFuzzy(t *testing.T) {
	svc := newTestService(t)

	// One edit away from "apple".
	results, err := svc.SearchStocks("appl", 10)
	if err != nil {
		t.Fatalf("SearchStocks: %v", err)
	}
	found := false
	for _, r := range results {
		if r.Symbol == "AAPL" {
			found = true
		}
	}
	if !found {
		t.Error("fuzzy query appl should surface AAPL")
	}
}

func TestSearchEmptyQuery(t *testing.T) {
	svc := newTestService(t)

	for _, q := range []string{"", "   ", "\t"} {
		results, err := svc.SearchAll(q, 10)
		if err != nil {
			t.Fatalf("SearchAll(%q): %v", q, err)
		}
		if len(results) != 0 {
			t.Errorf("SearchAll(%q): got %d results, want 0", q, len(results))
		}
	}
}

func TestSearchCrypto(t *testing.T) {
	svc := newTestService(t)

	results, err := svc.SearchCrypto("bitcoin", 10)
	if err != nil {
		t.Fatalf("SearchCrypto: %v", err)
	}
	if len(results) == 0 {
		t.Fatal("no results for bitcoin")
	}
	if results[0].ID != "bitcoin" {
		t.Errorf("top result: got %q, want bitcoin", results[0].ID)
	}
	if results[0].Type != models.AssetCrypto {
		t.Errorf("type: got %q, want crypto", results[0].Type)
	}
}

func TestSearchAllMergesNamespaces(t *testing.T) {
	svc := newTestService(t)

	// LINK lives in both catalogs.
	results, err := svc.SearchAll("LINK", 20)
	if err != nil {
		t.Fatalf("SearchAll: %v", err)
	}
	var haveStock, haveCrypto bool
	for _, r := range results {
		if r.Symbol == "LINK" && r.Type == models.AssetStock {
			haveStock = true
		}
		if r.Symbol == "LINK" && r.Type == models.AssetCrypto {
			haveCrypto = true
		}
	}
	if !haveStock || !haveCrypto {
		t.Errorf("LINK search: stock=%v crypto=%v, want both", haveStock, haveCrypto)
	}
}

func TestSearchTypeDispatch(t *testing.T) {
	svc := newTestService(t)

	stocks, err := svc.Search("LINK", "stock", 20)
	if err != nil {
		t.Fatalf("Search(stock): %v", err)
	}
	for _, r := range stocks {
		if r.Type != models.AssetStock {
			t.Errorf("stock-only search returned %q", r.Type)
		}
	}

	cryptos, err := svc.Search("LINK", "crypto", 20)
	if err != nil {
		t.Fatalf("Search(crypto): %v", err)
	}
	for _, r := range cryptos {
		if r.Type != models.AssetCrypto {
			t.Errorf("crypto-only search returned %q", r.Type)
		}
	}
}

func TestSearchIdempotent(t *testing.T) {
	svc := newTestService(t)

	first, err := svc.SearchAll("tech", 10)
	if err != nil {
		t.Fatalf("SearchAll: %v", err)
	}
	second, err := svc.SearchAll("tech", 10)
	if err != nil {
		t.Fatalf("SearchAll: %v", err)
	}
	if len(first) != len(second) {
		t.Fatalf("result counts differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("result %d differs: %+v vs %+v", i, first[i], second[i])
		}
	}
}

func TestSearchLimit(t *testing.T) {
	svc := newTestService(t)

	results, err := svc.SearchStocks("a", 3)
	if err != nil {
		t.Fatalf("SearchStocks: %v", err)
	}
	if len(results) > 3 {
		t.Errorf("limit not applied: got %d results", len(results))
	}
}

func TestSuggestions(t *testing.T) {
	svc := newTestService(t)

	// Empty and whitespace queries yield no suggestions.
	for _, q := range []string{"", "   "} {
		empty, err := svc.Suggestions(q, 0)
		if err != nil {
			t.Fatalf("Suggestions(%q): %v", q, err)
		}
		if len(empty) != 0 {
			t.Errorf("Suggestions(%q): got %d results, want 0", q, len(empty))
		}
	}

	// Non-empty query runs a combined search capped at the default limit.
	suggested, err := svc.Suggestions("bit", 0)
	if err != nil {
		t.Fatalf("Suggestions: %v", err)
	}
	if len(suggested) == 0 || len(suggested) > 8 {
		t.Errorf("got %d suggestions, want 1..8", len(suggested))
	}

	// An explicit smaller limit is honored.
	capped, err := svc.Suggestions("a", 2)
	if err != nil {
		t.Fatalf("Suggestions: %v", err)
	}
	if len(capped) > 2 {
		t.Errorf("got %d suggestions, want at most 2", len(capped))
	}
}

func TestTopResult(t *testing.T) {
	svc := newTestService(t)

	top, ok, err := svc.TopResult("TSLA")
	if err != nil {
		t.Fatalf("TopResult: %v", err)
	}
	if !ok || top.Symbol != "TSLA" {
		t.Errorf("TopResult(TSLA): got %+v, ok=%v", top, ok)
	}

	_, ok, err = svc.TopResult("qqqqzzzz")
	if err != nil {
		t.Fatalf("TopResult: %v", err)
	}
	if ok {
		t.Error("nonsense query should produce no top result")
	}
}
