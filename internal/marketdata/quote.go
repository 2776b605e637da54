package marketdata

import (
	"context"
	"errors"
	"fmt"
	"time"

	finance "github.com/piquette/finance-go"
	"github.com/piquette/finance-go/quote"
	"github.com/shopspring/decimal"

	"github.com/tickerhub/tickerhub/internal/infra"
	"github.com/tickerhub/tickerhub/pkg/models"
	"github.com/tickerhub/tickerhub/pkg/utils"
)

// ErrQuoteNotFound means the upstream has no quote for the symbol.
var ErrQuoteNotFound = errors.New("quote not found")

// quoteFetcher is the upstream call, swappable in tests.
type quoteFetcher func(symbol string) (*finance.Quote, error)

// Quotes serves equity quotes with a short-lived cache in front of
// Yahoo Finance.
type Quotes struct {
	fetch   quoteFetcher
	cache   *infra.Cache
	limiter *infra.RateLimiter
}

// NewQuotes creates a quote service backed by Yahoo Finance.
func NewQuotes() *Quotes {
	return &Quotes{
		fetch:   quote.Get,
		cache:   infra.NewCache(30 * time.Second),
		limiter: infra.NewRateLimiter(5, time.Second),
	}
}

// Get returns the current quote for a stock symbol.
func (q *Quotes) Get(ctx context.Context, symbol string) (*models.Quote, error) {
	normalized := utils.NormalizeSymbol(symbol)
	if normalized == "" {
		return nil, fmt.Errorf("%w: empty symbol", ErrQuoteNotFound)
	}

	if cached, ok := q.cache.Get("quote:" + normalized); ok {
		return cached.(*models.Quote), nil
	}

	if err := q.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	raw, err := q.fetch(normalized)
	if err != nil {
		return nil, fmt.Errorf("fetching quote %s: %w", normalized, err)
	}
	if raw == nil || raw.Symbol == "" {
		return nil, fmt.Errorf("%w: %s", ErrQuoteNotFound, normalized)
	}

	result := convertQuote(raw)
	q.cache.Set("quote:"+normalized, result)
	return result, nil
}

// convertQuote maps the upstream quote into our model. Change math
// runs through decimal so the derived fields round cleanly.
func convertQuote(raw *finance.Quote) *models.Quote {
	price := decimal.NewFromFloat(raw.RegularMarketPrice)
	prevClose := decimal.NewFromFloat(raw.RegularMarketPreviousClose)

	change := price.Sub(prevClose)
	changePct := decimal.Zero
	if !prevClose.IsZero() {
		changePct = change.Div(prevClose).Mul(decimal.NewFromInt(100))
	}

	return &models.Quote{
		Symbol:        raw.Symbol,
		Name:          raw.ShortName,
		Price:         price.InexactFloat64(),
		Change:        change.Round(4).InexactFloat64(),
		ChangePercent: changePct.Round(2).InexactFloat64(),
		High:          raw.RegularMarketDayHigh,
		Low:           raw.RegularMarketDayLow,
		Volume:        int64(raw.RegularMarketVolume),
		MarketState:   utils.MarketStatusAt(time.Now().In(utils.ET)),
		Currency:      raw.CurrencyID,
	}
}
