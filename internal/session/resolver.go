// Package session implements the search-submit state machine: given
// the raw text a user submits, decide where the UI should navigate.
// Blockchain identifiers win over everything, natural language goes
// through the filter parser, bare tickers resolve to the best catalog
// match, and anything else lands on the generic results page.
package session

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/tickerhub/tickerhub/internal/aifilter"
	"github.com/tickerhub/tickerhub/internal/chain"
	"github.com/tickerhub/tickerhub/internal/search"
	"github.com/tickerhub/tickerhub/pkg/models"
)

// parseTimeout bounds the background model parse kicked off by Resolve.
const parseTimeout = 15 * time.Second

// NavigationKind labels the destination category of a resolved query.
type NavigationKind string

const (
	NavTxHash         NavigationKind = "tx"
	NavAddress        NavigationKind = "address"
	NavBlock          NavigationKind = "block"
	NavFilteredSearch NavigationKind = "filtered_search"
	NavAsset          NavigationKind = "asset"
	NavGenericSearch  NavigationKind = "generic_search"
)

// Navigation is the resolver verdict: where to go and with what
// context. Filters is set only for filtered searches, Result only for
// direct asset hits.
type Navigation struct {
	Kind    NavigationKind        `json:"kind"`
	Route   string                `json:"route"`
	Query   string                `json:"query"`
	Filters *models.SearchFilters `json:"filters,omitempty"`
	Result  *models.SearchResult  `json:"result,omitempty"`
}

// Resolver resolves submitted queries against the search service and
// the AI filter parser. Safe for concurrent use.
type Resolver struct {
	search *search.Service
	parser *aifilter.Parser
}

// NewResolver wires a resolver to its collaborators.
func NewResolver(searchSvc *search.Service, parser *aifilter.Parser) *Resolver {
	return &Resolver{search: searchSvc, parser: parser}
}

// Resolve classifies query and returns the navigation verdict.
// Priority order: blockchain identifier, natural-language filter
// parse, top catalog match, generic search.
//
// The natural-language branch never waits on the model: it returns the
// filtered-search navigation immediately with heuristic filters and
// runs the AI parse in the background, applying the result to sess
// under the generation guard. Pass a nil sess to skip the background
// parse.
func (r *Resolver) Resolve(ctx context.Context, sess *Session, query string) (Navigation, error) {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return Navigation{Kind: NavGenericSearch, Route: "/search", Query: ""}, nil
	}

	if id := chain.Classify(trimmed); id.Kind != chain.KindNone {
		return chainNavigation(id), nil
	}

	// Multi-word input at or above the AI minimum length reads as
	// natural language. Shorter input, multi-word or not, tries a
	// direct asset match first.
	if strings.ContainsAny(trimmed, " \t") && len(trimmed) >= r.parser.MinQueryLength() {
		filters := r.parser.ParseLocal(trimmed)
		if sess != nil {
			gen := sess.Begin(trimmed)
			pctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), parseTimeout)
			go func() {
				defer cancel()
				result := r.parser.Parse(pctx, trimmed)
				sess.Apply(gen, result.Filters, result.AIParsed)
			}()
		}
		return Navigation{
			Kind:    NavFilteredSearch,
			Route:   "/search?q=" + url.QueryEscape(trimmed),
			Query:   trimmed,
			Filters: &filters,
		}, nil
	}

	top, ok, err := r.search.TopResult(trimmed)
	if err != nil {
		return Navigation{}, fmt.Errorf("resolving %q: %w", trimmed, err)
	}
	if ok {
		return assetNavigation(trimmed, top), nil
	}

	return Navigation{
		Kind:  NavGenericSearch,
		Route: "/search?q=" + url.QueryEscape(trimmed),
		Query: trimmed,
	}, nil
}

func chainNavigation(id chain.Identifier) Navigation {
	nav := Navigation{Query: id.Value}
	switch id.Kind {
	case chain.KindTxHash:
		nav.Kind = NavTxHash
		nav.Route = "/tx/" + id.Value
	case chain.KindAddress:
		nav.Kind = NavAddress
		nav.Route = "/address/" + id.Value
	case chain.KindBlockNumber:
		nav.Kind = NavBlock
		nav.Route = "/block/" + id.Value
	}
	return nav
}

func assetNavigation(query string, top models.SearchResult) Navigation {
	nav := Navigation{Kind: NavAsset, Query: query, Result: &top}
	if top.Type == models.AssetCrypto {
		nav.Route = "/crypto/" + top.ID
	} else {
		nav.Route = "/stocks/" + top.Symbol
	}
	return nav
}

// Session holds the per-user search state: the live query, the latest
// parsed filters, and the memoized suggestion list. Filter application
// is guarded by a generation counter so a slow parse for an abandoned
// query can never clobber a newer one.
type Session struct {
	mu sync.Mutex

	gen      uint64
	query    string
	filters  *models.SearchFilters
	aiParsed bool

	suggestQuery string
	suggestions  []models.SearchResult
}

// NewSession returns an empty session.
func NewSession() *Session {
	return &Session{}
}

// Begin records a new live query and returns its generation token.
// Any in-flight parse started for an earlier query becomes stale.
func (s *Session) Begin(query string) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gen++
	s.query = query
	s.filters = nil
	s.aiParsed = false
	return s.gen
}

// Apply installs parsed filters if gen still names the live query.
// Returns false when the result is stale and was dropped.
func (s *Session) Apply(gen uint64, filters models.SearchFilters, aiParsed bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.gen {
		return false
	}
	s.filters = &filters
	s.aiParsed = aiParsed
	return true
}

// Filters returns the currently applied filters, if any.
func (s *Session) Filters() (models.SearchFilters, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.filters == nil {
		return models.SearchFilters{}, false
	}
	return *s.filters, true
}

// Query returns the live query text.
func (s *Session) Query() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.query
}

// Clear resets the session to its empty state. The generation keeps
// advancing so stale parses stay stale.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gen++
	s.query = ""
	s.filters = nil
	s.aiParsed = false
	s.suggestQuery = ""
	s.suggestions = nil
}

// ParseInto runs the filter parser for query and applies the result to
// sess under last-write-wins. It returns the parse outcome and whether
// it was applied.
func (r *Resolver) ParseInto(ctx context.Context, sess *Session, query string) (aifilter.ParseResult, bool) {
	gen := sess.Begin(query)
	result := r.parser.Parse(ctx, query)
	applied := sess.Apply(gen, result.Filters, result.AIParsed)
	return result, applied
}

// Suggest returns typeahead suggestions for query, memoized on the
// session so repeated keystroke renders of the same text are free.
func (r *Resolver) Suggest(ctx context.Context, sess *Session, query string) ([]models.SearchResult, error) {
	sess.mu.Lock()
	if sess.suggestQuery == query && sess.suggestions != nil {
		cached := sess.suggestions
		sess.mu.Unlock()
		return cached, nil
	}
	sess.mu.Unlock()

	suggestions, err := r.search.Suggestions(query, 0)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	sess.suggestQuery = query
	sess.suggestions = suggestions
	sess.mu.Unlock()
	return suggestions, nil
}
