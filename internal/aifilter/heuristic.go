package aifilter

import (
	"strings"

	"github.com/tickerhub/tickerhub/pkg/models"
	"github.com/tickerhub/tickerhub/pkg/utils"
)

// sectorKeywords maps query fragments to canonical catalog sectors.
var sectorKeywords = map[string]string{
	"tech":          "Technology",
	"technology":    "Technology",
	"software":      "Technology",
	"semiconductor": "Technology",
	"chip":          "Technology",
	"health":        "Healthcare",
	"healthcare":    "Healthcare",
	"pharma":        "Healthcare",
	"biotech":       "Healthcare",
	"financ":        "Financials",
	"bank":          "Financials",
	"payment":       "Financials",
	"energy":        "Energy",
	"oil":           "Energy",
	"gas":           "Energy",
	"industrial":    "Industrials",
	"defense":       "Industrials",
	"aerospace":     "Industrials",
	"retail":        "Consumer Discretionary",
	"telecom":       "Communication Services",
	"media":         "Communication Services",
	"streaming":     "Communication Services",
}

var upWords = []string{"up", "rising", "gaining", "gainers", "green", "bullish", "growing", "surging"}
var downWords = []string{"down", "falling", "losing", "losers", "red", "bearish", "dropping", "crashing"}

var cryptoWords = []string{"crypto", "cryptocurrency", "coin", "coins", "token", "tokens", "defi", "altcoin"}
var stockWords = []string{"stock", "stocks", "share", "shares", "equity", "equities", "company", "companies"}

// stopWords are dropped before the leftover tokens become keywords.
var stopWords = map[string]bool{
	"a": true, "an": true, "the": true, "and": true, "or": true,
	"of": true, "in": true, "on": true, "to": true, "for": true,
	"with": true, "that": true, "are": true, "is": true, "show": true,
	"me": true, "find": true, "top": true, "best": true, "going": true,
	"compare": true, "versus": true,
}

// ParseLocal runs only the keyword heuristic, never the model. It is
// the instant path callers use while a model parse is still in flight.
func (p *Parser) ParseLocal(query string) models.SearchFilters {
	return heuristicParse(query)
}

// heuristicParse is the deterministic fallback: keyword matching over
// the raw query. It always produces usable filters.
func heuristicParse(query string) models.SearchFilters {
	filters := models.SearchFilters{Type: "both", Action: models.ActionSearch}

	lowered := strings.ToLower(query)
	if containsAny(lowered, "compare", " vs ", " vs. ", "versus") {
		filters.Action = models.ActionCompare
	}

	hasCrypto := containsWordAny(lowered, cryptoWords)
	hasStock := containsWordAny(lowered, stockWords)
	switch {
	case hasCrypto && !hasStock:
		filters.Type = "crypto"
	case hasStock && !hasCrypto:
		filters.Type = "stock"
	}

	for fragment, sector := range sectorKeywords {
		if strings.Contains(lowered, fragment) {
			filters.Sector = sector
			break
		}
	}

	if containsWordAny(lowered, upWords) {
		filters.ChangeDirection = models.ChangeUp
	} else if containsWordAny(lowered, downWords) {
		filters.ChangeDirection = models.ChangeDown
	}

	for _, token := range strings.Fields(query) {
		clean := strings.Trim(token, ".,!?;:()")

		// ALL-CAPS ticker-shaped tokens pass through as symbols.
		if clean == strings.ToUpper(clean) && utils.IsTickerLike(clean) {
			filters.Symbols = append(filters.Symbols, utils.NormalizeSymbol(clean))
			continue
		}

		word := strings.ToLower(clean)
		if len(word) < 3 || stopWords[word] {
			continue
		}
		if containsWordAny(word, upWords) || containsWordAny(word, downWords) ||
			containsWordAny(word, cryptoWords) || containsWordAny(word, stockWords) {
			continue
		}
		filters.Keywords = append(filters.Keywords, word)
	}

	return filters
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

// containsWordAny matches whole words only, so "upcoming" does not
// read as direction "up".
func containsWordAny(s string, words []string) bool {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return !('a' <= r && r <= 'z') && !('0' <= r && r <= '9')
	})
	for _, f := range fields {
		for _, w := range words {
			if f == w {
				return true
			}
		}
	}
	return false
}
