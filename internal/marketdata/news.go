// Package marketdata supplies the live collaborators around the
// catalog: market news headlines and near-real-time quotes.
package marketdata

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/mmcdole/gofeed"
	"golang.org/x/sync/errgroup"

	"github.com/tickerhub/tickerhub/internal/infra"
	"github.com/tickerhub/tickerhub/pkg/models"
	"github.com/tickerhub/tickerhub/pkg/utils"
)

// ErrNoSources means every configured feed failed.
var ErrNoSources = errors.New("all news sources failed")

// NewsSource is one RSS feed configuration.
type NewsSource struct {
	Name   string
	RSSURL string
}

// DefaultNewsSources lists the market and crypto news feeds.
var DefaultNewsSources = []NewsSource{
	{
		Name:   "Yahoo Finance",
		RSSURL: "https://finance.yahoo.com/news/rssindex",
	},
	{
		Name:   "CoinDesk",
		RSSURL: "https://www.coindesk.com/arc/outboundfeeds/rss/",
	},
	{
		Name:   "MarketWatch",
		RSSURL: "https://feeds.content.dowjones.io/public/rss/mw_topstories",
	},
	{
		Name:   "Cointelegraph",
		RSSURL: "https://cointelegraph.com/rss",
	},
}

// News fetches and caches headlines from the configured RSS feeds.
type News struct {
	sources []NewsSource
	cache   *infra.Cache
	limiter *infra.RateLimiter
	parser  *gofeed.Parser
}

// NewNews creates a news fetcher with the default feeds.
func NewNews(cacheTTL time.Duration) *News {
	return NewNewsWithSources(DefaultNewsSources, cacheTTL)
}

// NewNewsWithSources creates a news fetcher with custom feeds.
func NewNewsWithSources(sources []NewsSource, cacheTTL time.Duration) *News {
	if cacheTTL <= 0 {
		cacheTTL = 10 * time.Minute
	}
	return &News{
		sources: sources,
		cache:   infra.NewCache(cacheTTL),
		limiter: infra.NewRateLimiter(4, time.Second),
		parser:  gofeed.NewParser(),
	}
}

// MarketNews returns recent headlines across all feeds, newest first.
// Feeds are fetched concurrently; individual feed failures are skipped
// unless every feed fails.
func (n *News) MarketNews(ctx context.Context, limit int) ([]models.NewsArticle, error) {
	cacheKey := fmt.Sprintf("news:market:%d", limit)
	if cached, ok := n.cache.Get(cacheKey); ok {
		return cached.([]models.NewsArticle), nil
	}

	var mu sync.Mutex
	var all []models.NewsArticle
	var failures int

	g, gctx := errgroup.WithContext(ctx)
	for _, src := range n.sources {
		src := src
		g.Go(func() error {
			articles, err := n.fetchRSS(gctx, src)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				failures++
				return nil // non-fatal, other feeds still count
			}
			all = append(all, articles...)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if failures == len(n.sources) {
		return nil, ErrNoSources
	}

	sortArticles(all)
	if limit > 0 && len(all) > limit {
		all = all[:limit]
	}

	n.cache.Set(cacheKey, all)
	return all, nil
}

// AssetNews returns headlines mentioning the given symbol or name.
func (n *News) AssetNews(ctx context.Context, symbol, name string, limit int) ([]models.NewsArticle, error) {
	normalized := utils.NormalizeSymbol(symbol)
	cacheKey := fmt.Sprintf("news:asset:%s:%d", normalized, limit)
	if cached, ok := n.cache.Get(cacheKey); ok {
		return cached.([]models.NewsArticle), nil
	}

	all, err := n.MarketNews(ctx, 0)
	if err != nil {
		return nil, err
	}

	keywords := []string{strings.ToLower(normalized)}
	if name != "" {
		keywords = append(keywords, strings.ToLower(name))
	}

	var filtered []models.NewsArticle
	for _, a := range all {
		content := strings.ToLower(a.Title + " " + a.Summary)
		for _, kw := range keywords {
			if strings.Contains(content, kw) {
				filtered = append(filtered, a)
				break
			}
		}
	}

	if limit > 0 && len(filtered) > limit {
		filtered = filtered[:limit]
	}

	n.cache.Set(cacheKey, filtered)
	return filtered, nil
}

func (n *News) fetchRSS(ctx context.Context, src NewsSource) ([]models.NewsArticle, error) {
	if err := n.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	feed, err := n.parser.ParseURLWithContext(src.RSSURL, ctx)
	if err != nil {
		return nil, fmt.Errorf("parse RSS %s: %w", src.Name, err)
	}

	articles := make([]models.NewsArticle, 0, len(feed.Items))
	for _, item := range feed.Items {
		a := models.NewsArticle{
			Title:   item.Title,
			URL:     item.Link,
			Source:  src.Name,
			Summary: cleanHTML(item.Description),
		}
		if item.PublishedParsed != nil {
			a.PublishedAt = *item.PublishedParsed
		}
		articles = append(articles, a)
	}
	return articles, nil
}

// cleanHTML strips HTML tags from a string using goquery.
func cleanHTML(s string) string {
	if s == "" {
		return ""
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader("<body>" + s + "</body>"))
	if err != nil {
		return s
	}
	return strings.TrimSpace(doc.Text())
}

func sortArticles(articles []models.NewsArticle) {
	sort.SliceStable(articles, func(i, j int) bool {
		return articles[i].PublishedAt.After(articles[j].PublishedAt)
	})
}
