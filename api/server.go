// Package api provides the HTTP REST API server for TickerHub.
//
// It exposes endpoints for asset search, typeahead suggestions,
// query resolution, AI filter parsing, catalog lookups, quotes,
// and market news.
package api

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/tickerhub/tickerhub/internal/aifilter"
	"github.com/tickerhub/tickerhub/internal/catalog"
	"github.com/tickerhub/tickerhub/internal/config"
	"github.com/tickerhub/tickerhub/internal/marketdata"
	"github.com/tickerhub/tickerhub/internal/search"
	"github.com/tickerhub/tickerhub/internal/session"
	"github.com/tickerhub/tickerhub/pkg/utils"
)

// Server is the HTTP API server.
type Server struct {
	router   chi.Router
	cfg      *config.Config
	catalog  *catalog.Catalog
	search   *search.Service
	parser   *aifilter.Parser
	resolver *session.Resolver
	session  *session.Session
	news     *marketdata.News
	quotes   *marketdata.Quotes
	version  string
}

// NewServer creates a configured API server with all routes and middleware.
func NewServer(cfg *config.Config, version string) (*Server, error) {
	cat, err := catalog.NewFromConfig(cfg.Catalog)
	if err != nil {
		return nil, err
	}
	searchSvc, err := search.New(cat, cfg.Search)
	if err != nil {
		return nil, err
	}

	parser := aifilter.NewParser(cfg.AI)

	srv := &Server{
		cfg:      cfg,
		catalog:  cat,
		search:   searchSvc,
		parser:   parser,
		resolver: session.NewResolver(searchSvc, parser),
		session:  session.NewSession(),
		news:     marketdata.NewNews(time.Duration(cfg.News.CacheTTLSec) * time.Second),
		quotes:   marketdata.NewQuotes(),
		version:  version,
	}

	srv.router = srv.buildRouter()
	return srv, nil
}

// Router returns the chi router for testing.
func (s *Server) Router() chi.Router {
	return s.router
}

// ListenAndServe starts the HTTP server with graceful shutdown.
func (s *Server) ListenAndServe(addr string) error {
	httpSrv := &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("HTTP server error: %v", err)
		}
	}()

	<-done
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := httpSrv.Shutdown(ctx); err != nil {
		return err
	}
	return s.search.Close()
}

// buildRouter configures all routes and middleware.
func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	// CORS
	origins := []string{"*"}
	if len(s.cfg.API.CORSOrigins) > 0 {
		origins = s.cfg.API.CORSOrigins
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Health check
	r.Get("/health", s.handleHealth)

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", s.handleHealth)

		// Search
		r.Get("/search", s.handleSearch)
		r.Get("/search/suggest", s.handleSuggest)
		r.Post("/search/resolve", s.handleResolve)
		r.Post("/search/parse", s.handleParse)
		r.Get("/search/ai/status", s.handleAIStatus)

		// Catalog
		r.Get("/assets/popular", s.handlePopularAssets)
		r.Get("/stocks/{symbol}", s.handleStock)
		r.Get("/crypto/{id}", s.handleCrypto)

		// Market data
		r.Get("/quote/{symbol}", s.handleQuote)
		r.Get("/news", s.handleNews)

		// Configuration
		r.Get("/config/keys", s.handleConfigKeys)
	})

	return r
}

// ============================================================
// Request / Response types
// ============================================================

// APIResponse is the standard JSON envelope.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// ResolveRequest is the body for POST /api/v1/search/resolve.
type ResolveRequest struct {
	Query string `json:"query"`
}

// ParseRequest is the body for POST /api/v1/search/parse.
type ParseRequest struct {
	Query string `json:"query"`
}

// ============================================================
// Handlers
// ============================================================

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, APIResponse{
		Success: true,
		Data: map[string]interface{}{
			"status":        "ok",
			"version":       s.version,
			"market_status": utils.MarketStatus(),
			"time_et":       utils.FormatDateTimeET(utils.NowET()),
		},
	})
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if query == "" {
		writeError(w, http.StatusBadRequest, "q is required")
		return
	}
	assetType := r.URL.Query().Get("type")
	limit := queryInt(r, "limit", 0)

	results, err := s.search.Search(query, assetType, limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, APIResponse{
		Success: true,
		Data:    results,
	})
}

func (s *Server) handleSuggest(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	limit := queryInt(r, "limit", 0)

	suggestions, err := s.search.Suggestions(query, limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, APIResponse{
		Success: true,
		Data:    suggestions,
	})
}

func (s *Server) handleResolve(w http.ResponseWriter, r *http.Request) {
	var req ResolveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	nav, err := s.resolver.Resolve(r.Context(), s.session, req.Query)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, APIResponse{
		Success: true,
		Data:    nav,
	})
}

func (s *Server) handleParse(w http.ResponseWriter, r *http.Request) {
	var req ParseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Query == "" {
		writeError(w, http.StatusBadRequest, "query is required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 15*time.Second)
	defer cancel()

	result := s.parser.Parse(ctx, req.Query)
	writeJSON(w, http.StatusOK, APIResponse{
		Success: true,
		Data:    result,
	})
}

func (s *Server) handleAIStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, APIResponse{
		Success: true,
		Data:    s.parser.Status(),
	})
}

func (s *Server) handlePopularAssets(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, APIResponse{
		Success: true,
		Data:    s.catalog.PopularAssets(),
	})
}

func (s *Server) handleStock(w http.ResponseWriter, r *http.Request) {
	symbol := chi.URLParam(r, "symbol")
	stock, ok := s.catalog.GetStockBySymbol(symbol)
	if !ok {
		writeError(w, http.StatusNotFound, "stock not found")
		return
	}

	writeJSON(w, http.StatusOK, APIResponse{
		Success: true,
		Data:    stock,
	})
}

func (s *Server) handleCrypto(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	crypto, ok := s.catalog.GetCryptoByID(id)
	if !ok {
		writeError(w, http.StatusNotFound, "crypto asset not found")
		return
	}

	writeJSON(w, http.StatusOK, APIResponse{
		Success: true,
		Data:    crypto,
	})
}

func (s *Server) handleQuote(w http.ResponseWriter, r *http.Request) {
	symbol := chi.URLParam(r, "symbol")
	if symbol == "" {
		writeError(w, http.StatusBadRequest, "symbol is required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 15*time.Second)
	defer cancel()

	quote, err := s.quotes.Get(ctx, symbol)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, APIResponse{
		Success: true,
		Data:    quote,
	})
}

func (s *Server) handleNews(w http.ResponseWriter, r *http.Request) {
	limit := queryInt(r, "limit", s.cfg.News.DefaultLimit)
	symbol := r.URL.Query().Get("symbol")

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	var err error
	var articles interface{}
	if symbol != "" {
		name := ""
		if stock, ok := s.catalog.GetStockBySymbol(symbol); ok {
			name = stock.Name
		} else if crypto, ok := s.catalog.GetCryptoByID(symbol); ok {
			name = crypto.Name
		}
		articles, err = s.news.AssetNews(ctx, symbol, name, limit)
	} else {
		articles, err = s.news.MarketNews(ctx, limit)
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, APIResponse{
		Success: true,
		Data:    articles,
	})
}

func (s *Server) handleConfigKeys(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, APIResponse{
		Success: true,
		Data:    config.CheckAPIKeys(s.cfg),
	})
}

// ============================================================
// Helpers
// ============================================================

func queryInt(r *http.Request, key string, fallback int) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return fallback
	}
	return n
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("failed to write JSON response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, APIResponse{
		Success: false,
		Error:   msg,
	})
}
