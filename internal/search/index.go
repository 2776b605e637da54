// Package search implements fuzzy asset search over the static
// catalogs. Two in-memory bleve indexes (stocks, cryptos) are built
// once at startup; queries combine exact, prefix, fuzzy and wildcard
// matches with per-field weights.
package search

import (
	"fmt"
	"strings"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/mapping"
	"github.com/blevesearch/bleve/v2/search/query"

	"github.com/tickerhub/tickerhub/internal/catalog"
)

// Field weights. Symbol matches dominate, names matter, sector and
// category are weak signals, the crypto slug weakest of all.
const (
	weightSymbol   = 2.0
	weightName     = 1.5
	weightSector   = 0.5
	weightCryptoID = 0.3
)

// Match-type boosts, multiplied by the field weight. Exact term hits
// rank above prefix hits, which rank above fuzzy and substring hits.
const (
	boostExact    = 10.0
	boostPrefix   = 5.0
	boostFuzzy    = 3.0
	boostWildcard = 2.0
)

// stockDoc and cryptoDoc are the indexed projections. The doc ID keys
// back into the catalog, so no fields need to be stored.
type stockDoc struct {
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
	Sector string `json:"sector"`
}

type cryptoDoc struct {
	ID     string `json:"id"`
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
	Sector string `json:"sector"` // category, indexed under the shared field name
}

// buildStockIndex indexes the stock catalog into a memory-only index.
// Doc ID is the ticker symbol.
func buildStockIndex(cat *catalog.Catalog) (bleve.Index, error) {
	index, err := bleve.NewMemOnly(buildIndexMapping())
	if err != nil {
		return nil, fmt.Errorf("creating stock index: %w", err)
	}

	batch := index.NewBatch()
	for _, s := range cat.Stocks() {
		doc := stockDoc{Symbol: s.Symbol, Name: s.Name, Sector: s.Sector}
		if err := batch.Index(s.Symbol, doc); err != nil {
			return nil, fmt.Errorf("indexing stock %s: %w", s.Symbol, err)
		}
	}
	if err := index.Batch(batch); err != nil {
		return nil, fmt.Errorf("executing stock batch: %w", err)
	}
	return index, nil
}

// buildCryptoIndex indexes the crypto catalog. Doc ID is the canonical
// asset ID ("bitcoin"), keeping the namespace apart from stock tickers.
func buildCryptoIndex(cat *catalog.Catalog) (bleve.Index, error) {
	index, err := bleve.NewMemOnly(buildIndexMapping())
	if err != nil {
		return nil, fmt.Errorf("creating crypto index: %w", err)
	}

	batch := index.NewBatch()
	for _, c := range cat.Cryptos() {
		doc := cryptoDoc{ID: c.ID, Symbol: c.Symbol, Name: c.Name, Sector: c.Category}
		if err := batch.Index(c.ID, doc); err != nil {
			return nil, fmt.Errorf("indexing crypto %s: %w", c.ID, err)
		}
	}
	if err := index.Batch(batch); err != nil {
		return nil, fmt.Errorf("executing crypto batch: %w", err)
	}
	return index, nil
}

func buildIndexMapping() mapping.IndexMapping {
	indexMapping := bleve.NewIndexMapping()

	docMapping := bleve.NewDocumentMapping()
	textField := bleve.NewTextFieldMapping()
	textField.Store = false
	textField.Index = true
	docMapping.AddFieldMappingsAt("symbol", textField)
	docMapping.AddFieldMappingsAt("name", textField)
	docMapping.AddFieldMappingsAt("sector", textField)
	docMapping.AddFieldMappingsAt("id", textField)

	indexMapping.AddDocumentMapping("_default", docMapping)
	return indexMapping
}

// fieldQueries builds the weighted match ladder for one field:
// exact term, prefix, fuzzy match (edit distance 1), and substring
// wildcard, each boosted by matchBoost * fieldWeight.
func fieldQueries(term, field string, weight float64) []query.Query {
	lowered := strings.ToLower(term)

	exact := bleve.NewTermQuery(lowered)
	exact.SetField(field)
	exact.SetBoost(boostExact * weight)

	prefix := bleve.NewPrefixQuery(lowered)
	prefix.SetField(field)
	prefix.SetBoost(boostPrefix * weight)

	fuzzy := bleve.NewMatchQuery(term)
	fuzzy.SetField(field)
	fuzzy.SetFuzziness(1)
	fuzzy.SetBoost(boostFuzzy * weight)

	wildcard := bleve.NewWildcardQuery("*" + lowered + "*")
	wildcard.SetField(field)
	wildcard.SetBoost(boostWildcard * weight)

	return []query.Query{exact, prefix, fuzzy, wildcard}
}

// buildStockQuery combines the ladders for every stock field into one
// disjunction.
func buildStockQuery(term string) query.Query {
	var qs []query.Query
	qs = append(qs, fieldQueries(term, "symbol", weightSymbol)...)
	qs = append(qs, fieldQueries(term, "name", weightName)...)
	qs = append(qs, fieldQueries(term, "sector", weightSector)...)
	return bleve.NewDisjunctionQuery(qs...)
}

// buildCryptoQuery is buildStockQuery plus the weak slug field.
func buildCryptoQuery(term string) query.Query {
	var qs []query.Query
	qs = append(qs, fieldQueries(term, "symbol", weightSymbol)...)
	qs = append(qs, fieldQueries(term, "name", weightName)...)
	qs = append(qs, fieldQueries(term, "sector", weightSector)...)
	qs = append(qs, fieldQueries(term, "id", weightCryptoID)...)
	return bleve.NewDisjunctionQuery(qs...)
}
