// Package models defines the shared data types for TickerHub:
// catalog records, search results, AI-derived search filters, quotes,
// and news articles.
package models

// AssetType discriminates the two catalog namespaces. Stock and crypto
// symbols may coincide (stock "LINK" vs crypto "LINK"); the type keeps
// them apart.
type AssetType string

const (
	AssetStock  AssetType = "stock"
	AssetCrypto AssetType = "crypto"
)

// StockSymbol is a single entry in the static stock catalog.
// Records are loaded once at startup and never mutated.
type StockSymbol struct {
	Symbol   string `json:"symbol"`
	Name     string `json:"name"`
	Sector   string `json:"sector"`
	Exchange string `json:"exchange,omitempty"`
}

// CryptoAsset is a single entry in the static crypto catalog.
// ID is the canonical slug (e.g. "bitcoin"); Symbol is the ticker ("BTC").
type CryptoAsset struct {
	ID       string `json:"id"`
	Symbol   string `json:"symbol"`
	Name     string `json:"name"`
	Category string `json:"category"`
}

// SearchResult is an ephemeral, type-tagged projection of a catalog
// record produced by a search. Score is a distance: lower is a better
// match; 0 means exact or curated.
type SearchResult struct {
	Type     AssetType `json:"type"`
	ID       string    `json:"id"`
	Symbol   string    `json:"symbol"`
	Name     string    `json:"name"`
	Category string    `json:"category"`
	Exchange string    `json:"exchange,omitempty"`
	Score    float64   `json:"score"`
}

// StockResult builds a SearchResult from a stock catalog record.
func StockResult(s StockSymbol, score float64) SearchResult {
	return SearchResult{
		Type:     AssetStock,
		ID:       s.Symbol,
		Symbol:   s.Symbol,
		Name:     s.Name,
		Category: s.Sector,
		Exchange: s.Exchange,
		Score:    score,
	}
}

// CryptoResult builds a SearchResult from a crypto catalog record.
func CryptoResult(c CryptoAsset, score float64) SearchResult {
	return SearchResult{
		Type:     AssetCrypto,
		ID:       c.ID,
		Symbol:   c.Symbol,
		Name:     c.Name,
		Category: c.Category,
		Score:    score,
	}
}

// ChangeDirection is the price-trend component of a parsed filter.
type ChangeDirection string

const (
	ChangeUp   ChangeDirection = "up"
	ChangeDown ChangeDirection = "down"
	ChangeAny  ChangeDirection = "any"
)

// FilterAction is what the user wants done with the filtered set.
type FilterAction string

const (
	ActionSearch  FilterAction = "search"
	ActionCompare FilterAction = "compare"
)

// PriceRange bounds an asset price filter. Zero values mean unbounded.
type PriceRange struct {
	Min float64 `json:"min,omitempty"`
	Max float64 `json:"max,omitempty"`
}

// SearchFilters is the structured form of a natural-language query,
// produced by the AI filter parser (or its keyword fallback). Held in
// session state until the query is cleared or a new search begins.
type SearchFilters struct {
	Type            string          `json:"type"` // "stock", "crypto", or "both"
	Sector          string          `json:"sector,omitempty"`
	PriceRange      *PriceRange     `json:"priceRange,omitempty"`
	ChangeDirection ChangeDirection `json:"changeDirection,omitempty"`
	Symbols         []string        `json:"symbols,omitempty"`
	Keywords        []string        `json:"keywords,omitempty"`
	Action          FilterAction    `json:"action,omitempty"`
}
