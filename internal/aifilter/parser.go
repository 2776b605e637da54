// Package aifilter turns natural-language search queries into
// structured filters. The primary path is an OpenAI-compatible chat
// model; every failure mode falls back to a deterministic keyword
// heuristic so a search never errors out on the user.
package aifilter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/tickerhub/tickerhub/internal/config"
	"github.com/tickerhub/tickerhub/internal/infra"
	"github.com/tickerhub/tickerhub/pkg/models"
)

// Sentinel errors for the AI path. Callers normally never see them:
// Parse swallows them into the heuristic fallback. They surface only
// through ParseStrict.
var (
	ErrNotConfigured = errors.New("ai filter parser not configured")
	ErrQueryTooShort = errors.New("query below minimum length for ai parsing")
	ErrQuotaExceeded = errors.New("daily ai request quota exceeded")
	ErrBadResponse   = errors.New("model response is not valid filter json")
	ErrUnavailable   = errors.New("ai backend marked unavailable")
)

const (
	statusCacheKey = "ai.status"
	statusCacheTTL = 5 * time.Minute
)

const systemPrompt = `You convert a user's market search query into a JSON filter object.
Respond with ONLY a JSON object, no prose, matching this schema:
{
  "type": "stock" | "crypto" | "both",
  "sector": string (optional, e.g. "Technology"),
  "priceRange": {"min": number, "max": number} (optional),
  "changeDirection": "up" | "down" | "any" (optional),
  "symbols": [string] (optional, uppercase tickers),
  "keywords": [string] (optional),
  "action": "search" | "compare" (optional)
}
Omit fields you cannot infer. Default "type" to "both".`

// ChatClient is the slice of the OpenAI client the parser uses.
// Satisfied by *openai.Client; swappable in tests.
type ChatClient interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// ParseResult carries the filters plus provenance: whether they came
// from the response cache and whether a model produced them (false
// means the keyword heuristic did).
type ParseResult struct {
	Filters   models.SearchFilters `json:"filters"`
	FromCache bool                 `json:"fromCache"`
	AIParsed  bool                 `json:"aiParsed"`
}

// Status reports whether AI parsing is usable right now.
type Status struct {
	Configured        bool `json:"configured"`
	Available         bool `json:"available"`
	RequestsRemaining int  `json:"requestsRemaining"` // -1 means unlimited
}

// Parser is the natural-language filter parser. Safe for concurrent use.
type Parser struct {
	client ChatClient
	cfg    config.AIConfig

	cache       *infra.Cache // parsed responses, keyed by normalized query
	statusCache *infra.Cache
	quota       *infra.DailyCounter
}

// NewParser builds a parser from config. With no API key the parser
// still works; it just always takes the heuristic path.
func NewParser(cfg config.AIConfig) *Parser {
	var client ChatClient
	if cfg.APIKey != "" {
		clientCfg := openai.DefaultConfig(cfg.APIKey)
		if cfg.BaseURL != "" {
			clientCfg.BaseURL = cfg.BaseURL
		}
		client = openai.NewClientWithConfig(clientCfg)
	}
	return NewParserWithClient(cfg, client)
}

// NewParserWithClient builds a parser around an explicit chat client.
func NewParserWithClient(cfg config.AIConfig, client ChatClient) *Parser {
	cacheTTL := time.Duration(cfg.CacheTTLSec) * time.Second
	if cacheTTL <= 0 {
		cacheTTL = 10 * time.Minute
	}
	return &Parser{
		client:      client,
		cfg:         cfg,
		cache:       infra.NewCache(cacheTTL),
		statusCache: infra.NewCache(statusCacheTTL),
		quota:       infra.NewDailyCounter(cfg.DailyQuota),
	}
}

// Parse converts query into filters. The AI path is tried when the
// parser is configured, the query is long enough, and quota remains;
// any failure falls back to the keyword heuristic. Parse never fails.
func (p *Parser) Parse(ctx context.Context, query string) ParseResult {
	result, err := p.ParseStrict(ctx, query)
	if err == nil {
		return result
	}
	if !errors.Is(err, ErrNotConfigured) && !errors.Is(err, ErrQueryTooShort) && !errors.Is(err, ErrUnavailable) {
		log.Printf("ai filter parse failed, using heuristic: %v", err)
	}
	return ParseResult{Filters: heuristicParse(query)}
}

// ParseStrict is Parse without the fallback: it returns the sentinel
// error that would have triggered the heuristic.
func (p *Parser) ParseStrict(ctx context.Context, query string) (ParseResult, error) {
	trimmed := strings.TrimSpace(query)
	if p.client == nil {
		return ParseResult{}, ErrNotConfigured
	}
	if len(trimmed) < p.cfg.MinQueryLength {
		return ParseResult{}, ErrQueryTooShort
	}

	key := strings.ToLower(trimmed)
	if cached, ok := p.cache.Get(key); ok {
		return ParseResult{Filters: cached.(models.SearchFilters), FromCache: true, AIParsed: true}, nil
	}

	// Honor a pinned unavailable status: while the backend is marked
	// down, new queries skip the model without consuming quota.
	if st, ok := p.statusCache.Get(statusCacheKey); ok && !st.(Status).Available {
		return ParseResult{}, ErrUnavailable
	}

	if !p.quota.Take() {
		return ParseResult{}, ErrQuotaExceeded
	}

	filters, err := p.callModel(ctx, trimmed)
	if err != nil {
		p.markUnavailable()
		return ParseResult{}, err
	}

	p.cache.Set(key, filters)
	return ParseResult{Filters: filters, AIParsed: true}, nil
}

// MinQueryLength reports the minimum query length for the AI path.
func (p *Parser) MinQueryLength() int {
	if p.cfg.MinQueryLength > 0 {
		return p.cfg.MinQueryLength
	}
	return 10
}

// Status reports current availability. The result is cached for five
// minutes so status polling stays cheap.
func (p *Parser) Status() Status {
	if cached, ok := p.statusCache.Get(statusCacheKey); ok {
		return cached.(Status)
	}

	s := Status{
		Configured:        p.client != nil,
		RequestsRemaining: p.quota.Remaining(),
	}
	s.Available = s.Configured && s.RequestsRemaining != 0

	p.statusCache.Set(statusCacheKey, s)
	return s
}

// markUnavailable pins an unavailable status for the cache window after
// a model call fails.
func (p *Parser) markUnavailable() {
	p.statusCache.Set(statusCacheKey, Status{
		Configured:        p.client != nil,
		Available:         false,
		RequestsRemaining: p.quota.Remaining(),
	})
}

func (p *Parser) callModel(ctx context.Context, query string) (models.SearchFilters, error) {
	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       p.cfg.Model,
		Temperature: float32(p.cfg.Temperature),
		MaxTokens:   p.cfg.MaxTokens,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: query},
		},
	})
	if err != nil {
		return models.SearchFilters{}, fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return models.SearchFilters{}, ErrBadResponse
	}

	filters, err := extractFilters(resp.Choices[0].Message.Content)
	if err != nil {
		return models.SearchFilters{}, err
	}
	return normalizeFilters(filters), nil
}

// extractFilters pulls the JSON object out of the model output, which
// may be wrapped in prose or a markdown fence.
func extractFilters(content string) (models.SearchFilters, error) {
	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start < 0 || end <= start {
		return models.SearchFilters{}, fmt.Errorf("%w: no json object in %q", ErrBadResponse, truncateForLog(content))
	}

	var filters models.SearchFilters
	if err := json.Unmarshal([]byte(content[start:end+1]), &filters); err != nil {
		return models.SearchFilters{}, fmt.Errorf("%w: %v", ErrBadResponse, err)
	}
	return filters, nil
}

// normalizeFilters enforces the filter invariants regardless of what
// the model produced.
func normalizeFilters(f models.SearchFilters) models.SearchFilters {
	switch strings.ToLower(f.Type) {
	case "stock", "stocks":
		f.Type = "stock"
	case "crypto", "cryptos":
		f.Type = "crypto"
	default:
		f.Type = "both"
	}

	switch f.ChangeDirection {
	case models.ChangeUp, models.ChangeDown, models.ChangeAny:
	default:
		f.ChangeDirection = ""
	}

	switch f.Action {
	case models.ActionSearch, models.ActionCompare:
	default:
		f.Action = models.ActionSearch
	}

	for i, sym := range f.Symbols {
		f.Symbols[i] = strings.ToUpper(strings.TrimSpace(sym))
	}

	if f.PriceRange != nil && f.PriceRange.Min == 0 && f.PriceRange.Max == 0 {
		f.PriceRange = nil
	}

	return f
}

func truncateForLog(s string) string {
	if len(s) > 120 {
		return s[:120] + "..."
	}
	return s
}
