package marketdata

import (
	"context"
	"errors"
	"testing"
	"time"

	finance "github.com/piquette/finance-go"

	"github.com/tickerhub/tickerhub/internal/infra"
)

func newTestQuotes(fetch quoteFetcher) *Quotes {
	return &Quotes{
		fetch:   fetch,
		cache:   infra.NewCache(time.Minute),
		limiter: infra.NewRateLimiter(100, time.Second),
	}
}

func TestQuoteGet(t *testing.T) {
	calls := 0
	q := newTestQuotes(func(symbol string) (*finance.Quote, error) {
		calls++
		return &finance.Quote{
			Symbol:                     symbol,
			ShortName:                  "Apple Inc.",
			RegularMarketPrice:         230.50,
			RegularMarketPreviousClose: 225.00,
			RegularMarketDayHigh:       231.00,
			RegularMarketDayLow:        224.10,
			RegularMarketVolume:        1000000,
			CurrencyID:                 "USD",
		}, nil
	})
	ctx := context.Background()

	got, err := q.Get(ctx, "aapl")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Symbol != "AAPL" {
		t.Errorf("symbol: got %q", got.Symbol)
	}
	if got.Change != 5.5 {
		t.Errorf("change: got %v, want 5.5", got.Change)
	}
	if got.ChangePercent != 2.44 {
		t.Errorf("changePercent: got %v, want 2.44", got.ChangePercent)
	}
	if got.Currency != "USD" {
		t.Errorf("currency: got %q", got.Currency)
	}

	// Second call hits the cache.
	if _, err := q.Get(ctx, "AAPL"); err != nil {
		t.Fatalf("cached Get: %v", err)
	}
	if calls != 1 {
		t.Errorf("upstream called %d times, want 1", calls)
	}
}

func TestQuoteGetNotFound(t *testing.T) {
	q := newTestQuotes(func(symbol string) (*finance.Quote, error) {
		return nil, nil
	})
	if _, err := q.Get(context.Background(), "NOPE"); !errors.Is(err, ErrQuoteNotFound) {
		t.Errorf("got %v, want ErrQuoteNotFound", err)
	}

	if _, err := q.Get(context.Background(), "  "); !errors.Is(err, ErrQuoteNotFound) {
		t.Errorf("empty symbol: got %v, want ErrQuoteNotFound", err)
	}
}

func TestQuoteGetUpstreamError(t *testing.T) {
	upstream := errors.New("rate limited")
	q := newTestQuotes(func(symbol string) (*finance.Quote, error) {
		return nil, upstream
	})
	if _, err := q.Get(context.Background(), "TSLA"); !errors.Is(err, upstream) {
		t.Errorf("got %v, want wrapped upstream error", err)
	}
}

func TestConvertQuoteZeroPrevClose(t *testing.T) {
	got := convertQuote(&finance.Quote{
		Symbol:             "NEW",
		RegularMarketPrice: 10,
	})
	if got.ChangePercent != 0 {
		t.Errorf("changePercent with zero prev close: got %v", got.ChangePercent)
	}
}
