package models

import "time"

// Quote is a near-real-time equity quote from the market data layer.
type Quote struct {
	Symbol        string  `json:"symbol"`
	Name          string  `json:"name,omitempty"`
	Price         float64 `json:"price"`
	Change        float64 `json:"change"`
	ChangePercent float64 `json:"changePercent"`
	High          float64 `json:"high,omitempty"`
	Low           float64 `json:"low,omitempty"`
	Volume        int64   `json:"volume,omitempty"`
	MarketState   string  `json:"marketState,omitempty"`
	Currency      string  `json:"currency,omitempty"`
}

// NewsArticle is a single market-news headline.
type NewsArticle struct {
	Title       string    `json:"title"`
	URL         string    `json:"url"`
	Source      string    `json:"source"`
	Summary     string    `json:"summary,omitempty"`
	PublishedAt time.Time `json:"publishedAt"`
}
