package search

import (
	"fmt"
	"sort"
	"strings"

	"github.com/blevesearch/bleve/v2"

	"github.com/tickerhub/tickerhub/internal/catalog"
	"github.com/tickerhub/tickerhub/internal/config"
	"github.com/tickerhub/tickerhub/pkg/models"
)

// Service answers fuzzy search queries against the catalog indexes.
// It is safe for concurrent use; the indexes are read-only after New.
type Service struct {
	cat         *catalog.Catalog
	stockIndex  bleve.Index
	cryptoIndex bleve.Index

	maxResults   int
	suggestLimit int
	scoreFloor   float64
}

// New builds the in-memory indexes and returns a ready service.
func New(cat *catalog.Catalog, cfg config.SearchConfig) (*Service, error) {
	stockIndex, err := buildStockIndex(cat)
	if err != nil {
		return nil, err
	}
	cryptoIndex, err := buildCryptoIndex(cat)
	if err != nil {
		return nil, err
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = 20
	}
	suggestLimit := cfg.SuggestLimit
	if suggestLimit <= 0 {
		suggestLimit = 8
	}

	return &Service{
		cat:          cat,
		stockIndex:   stockIndex,
		cryptoIndex:  cryptoIndex,
		maxResults:   maxResults,
		suggestLimit: suggestLimit,
		scoreFloor:   cfg.ScoreFloor,
	}, nil
}

// Close releases the underlying indexes.
func (s *Service) Close() error {
	if err := s.stockIndex.Close(); err != nil {
		return err
	}
	return s.cryptoIndex.Close()
}

// SearchStocks returns stock matches for query, best first. An empty
// or whitespace-only query yields no results.
func (s *Service) SearchStocks(query string, limit int) ([]models.SearchResult, error) {
	term := strings.TrimSpace(query)
	if term == "" {
		return []models.SearchResult{}, nil
	}
	results, err := s.runStockSearch(term)
	if err != nil {
		return nil, err
	}
	sortResults(results)
	return truncate(results, s.capLimit(limit)), nil
}

// SearchCrypto returns crypto matches for query, best first.
func (s *Service) SearchCrypto(query string, limit int) ([]models.SearchResult, error) {
	term := strings.TrimSpace(query)
	if term == "" {
		return []models.SearchResult{}, nil
	}
	results, err := s.runCryptoSearch(term)
	if err != nil {
		return nil, err
	}
	sortResults(results)
	return truncate(results, s.capLimit(limit)), nil
}

// SearchAll searches both catalogs and merges the results into a
// single ranking. Ties break on symbol, then stocks before cryptos.
func (s *Service) SearchAll(query string, limit int) ([]models.SearchResult, error) {
	term := strings.TrimSpace(query)
	if term == "" {
		return []models.SearchResult{}, nil
	}

	stocks, err := s.runStockSearch(term)
	if err != nil {
		return nil, err
	}
	cryptos, err := s.runCryptoSearch(term)
	if err != nil {
		return nil, err
	}

	merged := append(stocks, cryptos...)
	sortResults(merged)
	return truncate(merged, s.capLimit(limit)), nil
}

// Search dispatches on assetType: "stock", "crypto", or anything else
// (including "both" and "") searches both catalogs.
func (s *Service) Search(query, assetType string, limit int) ([]models.SearchResult, error) {
	switch strings.ToLower(strings.TrimSpace(assetType)) {
	case "stock", "stocks":
		return s.SearchStocks(query, limit)
	case "crypto", "cryptos":
		return s.SearchCrypto(query, limit)
	default:
		return s.SearchAll(query, limit)
	}
}

// Suggestions returns the typeahead list for a partial query: the top
// combined matches. A limit of zero or less uses the configured
// suggest limit. An empty query yields no suggestions; the empty-state
// display uses Catalog.PopularAssets instead.
func (s *Service) Suggestions(query string, limit int) ([]models.SearchResult, error) {
	term := strings.TrimSpace(query)
	if term == "" {
		return []models.SearchResult{}, nil
	}
	if limit <= 0 || limit > s.suggestLimit {
		limit = s.suggestLimit
	}
	return s.SearchAll(term, limit)
}

// TopResult returns the single best combined match, or false when the
// query matches nothing.
func (s *Service) TopResult(query string) (models.SearchResult, bool, error) {
	results, err := s.SearchAll(query, 1)
	if err != nil {
		return models.SearchResult{}, false, err
	}
	if len(results) == 0 {
		return models.SearchResult{}, false, nil
	}
	return results[0], true, nil
}

func (s *Service) capLimit(limit int) int {
	if limit <= 0 || limit > s.maxResults {
		return s.maxResults
	}
	return limit
}

func (s *Service) runStockSearch(term string) ([]models.SearchResult, error) {
	req := bleve.NewSearchRequest(buildStockQuery(term))
	req.Size = s.maxResults * 2

	res, err := s.stockIndex.Search(req)
	if err != nil {
		return nil, fmt.Errorf("stock search %q: %w", term, err)
	}

	results := make([]models.SearchResult, 0, len(res.Hits))
	for _, hit := range res.Hits {
		if hit.Score < s.scoreFloor {
			continue
		}
		stock, ok := s.cat.GetStockBySymbol(hit.ID)
		if !ok {
			continue
		}
		results = append(results, models.StockResult(stock, toDistance(hit.Score)))
	}
	return results, nil
}

func (s *Service) runCryptoSearch(term string) ([]models.SearchResult, error) {
	req := bleve.NewSearchRequest(buildCryptoQuery(term))
	req.Size = s.maxResults * 2

	res, err := s.cryptoIndex.Search(req)
	if err != nil {
		return nil, fmt.Errorf("crypto search %q: %w", term, err)
	}

	results := make([]models.SearchResult, 0, len(res.Hits))
	for _, hit := range res.Hits {
		if hit.Score < s.scoreFloor {
			continue
		}
		crypto, ok := s.cat.GetCryptoByID(hit.ID)
		if !ok {
			continue
		}
		results = append(results, models.CryptoResult(crypto, toDistance(hit.Score)))
	}
	return results, nil
}

// toDistance converts a bleve relevance score (higher is better) into
// the distance convention used throughout (lower is better, 0 exact).
func toDistance(score float64) float64 {
	return 1 / (1 + score)
}

// sortResults orders by distance ascending, then symbol, then stocks
// before cryptos, so equal-relevance output is stable across runs.
func sortResults(results []models.SearchResult) {
	sort.SliceStable(results, func(i, j int) bool {
		a, b := results[i], results[j]
		if a.Score != b.Score {
			return a.Score < b.Score
		}
		if a.Symbol != b.Symbol {
			return a.Symbol < b.Symbol
		}
		return a.Type == models.AssetStock && b.Type == models.AssetCrypto
	})
}

func truncate(results []models.SearchResult, limit int) []models.SearchResult {
	if limit > 0 && len(results) > limit {
		return results[:limit]
	}
	return results
}
