// TickerHub — asset search and suggestion service for stocks & crypto.
//
// Main CLI entrypoint using cobra command framework.
package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tickerhub/tickerhub/api"
	"github.com/tickerhub/tickerhub/internal/aifilter"
	"github.com/tickerhub/tickerhub/internal/catalog"
	"github.com/tickerhub/tickerhub/internal/config"
	"github.com/tickerhub/tickerhub/internal/search"
	"github.com/tickerhub/tickerhub/internal/session"
	"github.com/tickerhub/tickerhub/pkg/models"
	"github.com/tickerhub/tickerhub/pkg/utils"
)

// Build-time variables (set via -ldflags).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// Global config
var cfg *config.Config

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tickerhub",
	Short: "TickerHub — asset search & suggestion service for stocks and crypto",
	Long: `TickerHub
A market-data dashboard backend: fuzzy search over static stock and
crypto catalogs, typeahead suggestions, AI-assisted natural-language
filters, and blockchain-identifier routing.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		configFile, _ := cmd.Flags().GetString("config")
		if configFile != "" {
			cfg, err = config.LoadFromFile(configFile)
		} else {
			cfg, err = config.Load()
		}
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "config file path (default: ./config/config.yaml)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(suggestCmd)
	rootCmd.AddCommand(resolveCmd)
	rootCmd.AddCommand(statusCmd)
}

// --- Version Command ---

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("TickerHub %s\n", version)
		fmt.Printf("  commit:  %s\n", commit)
		fmt.Printf("  built:   %s\n", date)
	},
}

// --- Serve Command ---

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		srv, err := api.NewServer(cfg, version)
		if err != nil {
			return fmt.Errorf("server setup failed: %w", err)
		}

		addr := fmt.Sprintf("%s:%d", cfg.API.Host, cfg.API.Port)
		fmt.Printf("🌐 Starting TickerHub API server on %s\n", addr)
		return srv.ListenAndServe(addr)
	},
}

// --- Search Command ---

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search the asset catalogs from the command line",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		query := joinArgs(args)
		assetType, _ := cmd.Flags().GetString("type")
		limit, _ := cmd.Flags().GetInt("limit")

		svc, err := buildSearchService()
		if err != nil {
			return err
		}
		defer svc.Close()

		results, err := svc.Search(query, assetType, limit)
		if err != nil {
			return err
		}
		if len(results) == 0 {
			fmt.Println("No matches.")
			return nil
		}
		printResults(results)
		return nil
	},
}

func init() {
	searchCmd.Flags().String("type", "both", "asset type: stock, crypto, or both")
	searchCmd.Flags().Int("limit", 10, "maximum number of results")
}

// --- Suggest Command ---

var suggestCmd = &cobra.Command{
	Use:   "suggest [partial-query]",
	Short: "Show typeahead suggestions for a partial query",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := buildSearchService()
		if err != nil {
			return err
		}
		defer svc.Close()

		results, err := svc.Suggestions(joinArgs(args), 0)
		if err != nil {
			return err
		}
		printResults(results)
		return nil
	},
}

// --- Resolve Command ---

var resolveCmd = &cobra.Command{
	Use:   "resolve [query]",
	Short: "Show where a submitted query would navigate",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		query := joinArgs(args)

		svc, err := buildSearchService()
		if err != nil {
			return err
		}
		defer svc.Close()

		resolver := session.NewResolver(svc, aifilter.NewParser(cfg.AI))
		// No session: the process exits before a background parse
		// could land anywhere.
		nav, err := resolver.Resolve(context.Background(), nil, query)
		if err != nil {
			return err
		}

		fmt.Printf("Query: %s\n", nav.Query)
		fmt.Printf("Kind:  %s\n", nav.Kind)
		fmt.Printf("Route: %s\n", nav.Route)
		if nav.Filters != nil {
			fmt.Printf("Filters: type=%s sector=%s direction=%s symbols=%v\n",
				nav.Filters.Type, nav.Filters.Sector, nav.Filters.ChangeDirection, nav.Filters.Symbols)
		}
		return nil
	},
}

// --- Status Command ---

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show system status and configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println("═══════════════════════════════════════")
		fmt.Println("  TickerHub — System Status")
		fmt.Println("═══════════════════════════════════════")
		fmt.Printf("  Version:       %s (%s)\n", version, commit)
		fmt.Printf("  Market Status: %s\n", utils.MarketStatus())
		fmt.Printf("  Time (ET):     %s\n", utils.FormatDateTimeET(utils.NowET()))
		fmt.Println()

		// Config summary
		fmt.Println("  Configuration:")
		fmt.Printf("    AI Model:      %s\n", cfg.AI.Model)
		fmt.Printf("    API Server:    %s:%d\n", cfg.API.Host, cfg.API.Port)
		fmt.Printf("    Max Results:   %d (suggest %d)\n", cfg.Search.MaxResults, cfg.Search.SuggestLimit)
		fmt.Println()

		// AI parser availability
		parser := aifilter.NewParser(cfg.AI)
		st := parser.Status()
		fmt.Println("  AI Filter Parser:")
		fmt.Printf("    Configured:    %v\n", st.Configured)
		fmt.Printf("    Available:     %v\n", st.Available)
		if st.RequestsRemaining >= 0 {
			fmt.Printf("    Quota left:    %d\n", st.RequestsRemaining)
		}
		fmt.Println()

		// API keys status
		fmt.Println("  API Keys:")
		keys := config.CheckAPIKeys(cfg)
		for _, k := range keys {
			status := "❌ not set"
			if k.IsSet {
				status = fmt.Sprintf("✅ set (%s: %s)", k.Source, k.Masked)
			}
			fmt.Printf("    %-25s %s\n", k.Name+":", status)
		}

		fmt.Println("═══════════════════════════════════════")
		return nil
	},
}

// --- Helpers ---

func buildSearchService() (*search.Service, error) {
	cat, err := catalog.NewFromConfig(cfg.Catalog)
	if err != nil {
		return nil, err
	}
	return search.New(cat, cfg.Search)
}

func joinArgs(args []string) string {
	return strings.Join(args, " ")
}

func printResults(results []models.SearchResult) {
	for _, r := range results {
		label := r.Symbol
		if r.Type == models.AssetCrypto {
			label = fmt.Sprintf("%s (%s)", r.Symbol, r.ID)
		}
		fmt.Printf("  %-6s %-24s %-32s %-24s score=%.3f\n", r.Type, label, r.Name, r.Category, r.Score)
	}
}
