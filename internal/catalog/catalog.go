// Package catalog holds the static asset datasets: stock symbols and
// crypto assets. Both are loaded once at startup, from the built-in
// datasets or CSV overrides, and are immutable afterwards.
package catalog

import (
	"fmt"
	"strings"

	"github.com/tickerhub/tickerhub/internal/config"
	"github.com/tickerhub/tickerhub/pkg/models"
)

// Catalog is the immutable asset universe. Lookup maps are built at
// construction; all methods are safe for concurrent use.
type Catalog struct {
	stocks  []models.StockSymbol
	cryptos []models.CryptoAsset

	stockBySymbol  map[string]*models.StockSymbol
	cryptoByID     map[string]*models.CryptoAsset
	cryptoBySymbol map[string]*models.CryptoAsset
}

// New builds a catalog from the built-in datasets.
func New() *Catalog {
	return build(builtinStocks, builtinCryptos)
}

// NewFromConfig builds a catalog using CSV overrides from cfg where
// configured, falling back to the built-in datasets otherwise.
func NewFromConfig(cfg config.CatalogConfig) (*Catalog, error) {
	stocks := builtinStocks
	cryptos := builtinCryptos

	if cfg.StocksCSV != "" {
		loaded, err := LoadStocksCSV(cfg.StocksCSV)
		if err != nil {
			return nil, fmt.Errorf("loading stock catalog: %w", err)
		}
		stocks = loaded
	}
	if cfg.CryptoCSV != "" {
		loaded, err := LoadCryptosCSV(cfg.CryptoCSV)
		if err != nil {
			return nil, fmt.Errorf("loading crypto catalog: %w", err)
		}
		cryptos = loaded
	}

	return build(stocks, cryptos), nil
}

func build(stocks []models.StockSymbol, cryptos []models.CryptoAsset) *Catalog {
	c := &Catalog{
		stocks:         stocks,
		cryptos:        cryptos,
		stockBySymbol:  make(map[string]*models.StockSymbol, len(stocks)),
		cryptoByID:     make(map[string]*models.CryptoAsset, len(cryptos)),
		cryptoBySymbol: make(map[string]*models.CryptoAsset, len(cryptos)),
	}
	for i := range c.stocks {
		s := &c.stocks[i]
		c.stockBySymbol[strings.ToUpper(s.Symbol)] = s
	}
	for i := range c.cryptos {
		cr := &c.cryptos[i]
		c.cryptoByID[strings.ToLower(cr.ID)] = cr
		c.cryptoBySymbol[strings.ToUpper(cr.Symbol)] = cr
	}
	return c
}

// Stocks returns the full stock dataset. Callers must not mutate it.
func (c *Catalog) Stocks() []models.StockSymbol { return c.stocks }

// Cryptos returns the full crypto dataset. Callers must not mutate it.
func (c *Catalog) Cryptos() []models.CryptoAsset { return c.cryptos }

// GetStockBySymbol looks up a stock by ticker, case-insensitively.
func (c *Catalog) GetStockBySymbol(symbol string) (models.StockSymbol, bool) {
	s, ok := c.stockBySymbol[strings.ToUpper(strings.TrimSpace(symbol))]
	if !ok {
		return models.StockSymbol{}, false
	}
	return *s, true
}

// GetCryptoByID looks up a crypto asset by canonical ID ("bitcoin") or,
// failing that, by ticker symbol ("BTC").
func (c *Catalog) GetCryptoByID(id string) (models.CryptoAsset, bool) {
	key := strings.TrimSpace(id)
	if cr, ok := c.cryptoByID[strings.ToLower(key)]; ok {
		return *cr, true
	}
	if cr, ok := c.cryptoBySymbol[strings.ToUpper(key)]; ok {
		return *cr, true
	}
	return models.CryptoAsset{}, false
}

// PopularAssets returns the curated empty-state list: five stocks
// followed by five cryptos, all with score 0.
func (c *Catalog) PopularAssets() []models.SearchResult {
	results := make([]models.SearchResult, 0, len(popularStockSymbols)+len(popularCryptoIDs))
	for _, sym := range popularStockSymbols {
		if s, ok := c.GetStockBySymbol(sym); ok {
			results = append(results, models.StockResult(s, 0))
		}
	}
	for _, id := range popularCryptoIDs {
		if cr, ok := c.GetCryptoByID(id); ok {
			results = append(results, models.CryptoResult(cr, 0))
		}
	}
	return results
}
