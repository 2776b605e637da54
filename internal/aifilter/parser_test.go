package aifilter

import (
	"context"
	"errors"
	"testing"

	openai "github.com/sashabaranov/go-openai"

	"github.com/tickerhub/tickerhub/internal/config"
	"github.com/tickerhub/tickerhub/pkg/models"
)

// fakeChatClient returns a canned completion or error and records calls.
type fakeChatClient struct {
	content string
	err     error
	calls   int
}

func (f *fakeChatClient) CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	f.calls++
	if f.err != nil {
		return openai.ChatCompletionResponse{}, f.err
	}
	return openai.ChatCompletionResponse{
		Choices: []openai.ChatCompletionChoice{
			{Message: openai.ChatCompletionMessage{Content: f.content}},
		},
	}, nil
}

func testConfig() config.AIConfig {
	return config.AIConfig{
		Model:          "gpt-4o-mini",
		DailyQuota:     10,
		MinQueryLength: 10,
		CacheTTLSec:    600,
	}
}

func TestParseStrictAIPath(t *testing.T) {
	fake := &fakeChatClient{content: `{"type":"stock","sector":"Technology","changeDirection":"up"}`}
	p := NewParserWithClient(testConfig(), fake)

	result, err := p.ParseStrict(context.Background(), "tech stocks going up today")
	if err != nil {
		t.Fatalf("ParseStrict: %v", err)
	}
	if !result.AIParsed || result.FromCache {
		t.Errorf("provenance: aiParsed=%v fromCache=%v", result.AIParsed, result.FromCache)
	}
	if result.Filters.Type != "stock" {
		t.Errorf("type: got %q", result.Filters.Type)
	}
	if result.Filters.Sector != "Technology" {
		t.Errorf("sector: got %q", result.Filters.Sector)
	}
	if result.Filters.ChangeDirection != models.ChangeUp {
		t.Errorf("direction: got %q", result.Filters.ChangeDirection)
	}
}

func TestParseStrictCachesResponses(t *testing.T) {
	fake := &fakeChatClient{content: `{"type":"crypto"}`}
	p := NewParserWithClient(testConfig(), fake)
	ctx := context.Background()

	if _, err := p.ParseStrict(ctx, "best defi tokens right now"); err != nil {
		t.Fatalf("first parse: %v", err)
	}
	// Same query, different case — must hit the cache.
	second, err := p.ParseStrict(ctx, "Best DeFi Tokens RIGHT NOW")
	if err != nil {
		t.Fatalf("second parse: %v", err)
	}
	if !second.FromCache {
		t.Error("second parse should come from cache")
	}
	if fake.calls != 1 {
		t.Errorf("model called %d times, want 1", fake.calls)
	}
}

func TestParseStrictMarkdownFence(t *testing.T) {
	fake := &fakeChatClient{content: "```json\n{\"type\":\"both\",\"symbols\":[\"aapl\",\" msft \"]}\n```"}
	p := NewParserWithClient(testConfig(), fake)

	result, err := p.ParseStrict(context.Background(), "compare apple and microsoft")
	if err != nil {
		t.Fatalf("ParseStrict: %v", err)
	}
	if len(result.Filters.Symbols) != 2 || result.Filters.Symbols[0] != "AAPL" || result.Filters.Symbols[1] != "MSFT" {
		t.Errorf("symbols not normalized: %v", result.Filters.Symbols)
	}
}

func TestParseStrictErrors(t *testing.T) {
	ctx := context.Background()

	// Not configured.
	p := NewParserWithClient(testConfig(), nil)
	if _, err := p.ParseStrict(ctx, "tech stocks going up"); !errors.Is(err, ErrNotConfigured) {
		t.Errorf("unconfigured: got %v, want ErrNotConfigured", err)
	}

	// Too short.
	p = NewParserWithClient(testConfig(), &fakeChatClient{content: "{}"})
	if _, err := p.ParseStrict(ctx, "AAPL"); !errors.Is(err, ErrQueryTooShort) {
		t.Errorf("short query: got %v, want ErrQueryTooShort", err)
	}

	// Garbage model output.
	p = NewParserWithClient(testConfig(), &fakeChatClient{content: "sorry, I cannot help with that"})
	if _, err := p.ParseStrict(ctx, "tech stocks going up"); !errors.Is(err, ErrBadResponse) {
		t.Errorf("garbage output: got %v, want ErrBadResponse", err)
	}
}

func TestParseStrictQuota(t *testing.T) {
	cfg := testConfig()
	cfg.DailyQuota = 1
	fake := &fakeChatClient{content: `{"type":"both"}`}
	p := NewParserWithClient(cfg, fake)
	ctx := context.Background()

	if _, err := p.ParseStrict(ctx, "first long enough query"); err != nil {
		t.Fatalf("first parse: %v", err)
	}
	if _, err := p.ParseStrict(ctx, "second long enough query"); !errors.Is(err, ErrQuotaExceeded) {
		t.Errorf("over quota: got %v, want ErrQuotaExceeded", err)
	}
}

func TestParseFallsBackToHeuristic(t *testing.T) {
	fake := &fakeChatClient{err: errors.New("upstream 500")}
	p := NewParserWithClient(testConfig(), fake)

	result := p.Parse(context.Background(), "crypto coins going down")
	if result.AIParsed {
		t.Error("failed AI call should not report aiParsed")
	}
	if result.Filters.Type != "crypto" {
		t.Errorf("heuristic type: got %q", result.Filters.Type)
	}
	if result.Filters.ChangeDirection != models.ChangeDown {
		t.Errorf("heuristic direction: got %q", result.Filters.ChangeDirection)
	}
}

func TestStatus(t *testing.T) {
	p := NewParserWithClient(testConfig(), &fakeChatClient{content: "{}"})
	s := p.Status()
	if !s.Configured || !s.Available {
		t.Errorf("configured parser: %+v", s)
	}
	if s.RequestsRemaining != 10 {
		t.Errorf("remaining: got %d, want 10", s.RequestsRemaining)
	}

	unconfigured := NewParserWithClient(testConfig(), nil)
	s = unconfigured.Status()
	if s.Configured || s.Available {
		t.Errorf("unconfigured parser: %+v", s)
	}
}

func TestStatusUnavailableAfterFailure(t *testing.T) {
	fake := &fakeChatClient{err: errors.New("connection refused")}
	p := NewParserWithClient(testConfig(), fake)

	p.Parse(context.Background(), "tech stocks going up")
	if s := p.Status(); s.Available {
		t.Error("status should report unavailable after a failed model call")
	}
}

func TestUnavailableWindowSkipsModelAndQuota(t *testing.T) {
	fake := &fakeChatClient{err: errors.New("connection refused")}
	p := NewParserWithClient(testConfig(), fake)
	ctx := context.Background()

	// First call reaches the model, fails, and pins the unavailable
	// status for the cache window.
	p.Parse(ctx, "tech stocks going up")
	remaining := p.quota.Remaining()

	// While pinned, a new query short-circuits without touching the
	// model or the quota.
	if _, err := p.ParseStrict(ctx, "energy companies falling hard"); !errors.Is(err, ErrUnavailable) {
		t.Errorf("pinned window: got %v, want ErrUnavailable", err)
	}
	result := p.Parse(ctx, "crypto coins going down")
	if result.AIParsed {
		t.Error("pinned window should fall back to the heuristic")
	}
	if result.Filters.Type != "crypto" {
		t.Errorf("heuristic type: got %q", result.Filters.Type)
	}

	if fake.calls != 1 {
		t.Errorf("model called %d times, want 1", fake.calls)
	}
	if got := p.quota.Remaining(); got != remaining {
		t.Errorf("quota consumed while unavailable: %d -> %d", remaining, got)
	}
}

func TestHeuristicParse(t *testing.T) {
	tests := []struct {
		name  string
		query string
		check func(t *testing.T, f models.SearchFilters)
	}{
		{
			name:  "sector and direction",
			query: "tech stocks going up",
			check: func(t *testing.T, f models.SearchFilters) {
				if f.Type != "stock" || f.Sector != "Technology" || f.ChangeDirection != models.ChangeUp {
					t.Errorf("got %+v", f)
				}
			},
		},
		{
			name:  "crypto down",
			query: "crypto losers today",
			check: func(t *testing.T, f models.SearchFilters) {
				if f.Type != "crypto" || f.ChangeDirection != models.ChangeDown {
					t.Errorf("got %+v", f)
				}
			},
		},
		{
			name:  "explicit symbols and compare",
			query: "compare AAPL vs MSFT",
			check: func(t *testing.T, f models.SearchFilters) {
				if f.Action != models.ActionCompare {
					t.Errorf("action: got %q", f.Action)
				}
				if len(f.Symbols) != 2 || f.Symbols[0] != "AAPL" || f.Symbols[1] != "MSFT" {
					t.Errorf("symbols: got %v", f.Symbols)
				}
			},
		},
		{
			name:  "no signals defaults to both",
			query: "interesting things",
			check: func(t *testing.T, f models.SearchFilters) {
				if f.Type != "both" || f.ChangeDirection != "" {
					t.Errorf("got %+v", f)
				}
			},
		},
		{
			name:  "whole word direction matching",
			query: "upcoming bank earnings",
			check: func(t *testing.T, f models.SearchFilters) {
				if f.ChangeDirection != "" {
					t.Errorf("upcoming misread as direction: %+v", f)
				}
				if f.Sector != "Financials" {
					t.Errorf("sector: got %q", f.Sector)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check(t, heuristicParse(tt.query))
		})
	}
}

func TestNormalizeFilters(t *testing.T) {
	f := normalizeFilters(models.SearchFilters{
		Type:            "STOCKS",
		ChangeDirection: "sideways",
		Action:          "delete",
		PriceRange:      &models.PriceRange{},
	})
	if f.Type != "stock" {
		t.Errorf("type: got %q", f.Type)
	}
	if f.ChangeDirection != "" {
		t.Errorf("direction: got %q", f.ChangeDirection)
	}
	if f.Action != models.ActionSearch {
		t.Errorf("action: got %q", f.Action)
	}
	if f.PriceRange != nil {
		t.Error("empty price range should be dropped")
	}
}
