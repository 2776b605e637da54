// Package utils provides small shared helpers: symbol normalization and
// the market-hours clock backing the dashboard's market status display.
package utils

import "strings"

// NormalizeSymbol normalizes a user-input ticker: trims whitespace,
// uppercases, and strips a leading $ (common in chat-style input).
func NormalizeSymbol(symbol string) string {
	symbol = strings.TrimSpace(strings.ToUpper(symbol))
	return strings.TrimPrefix(symbol, "$")
}

// IsTickerLike reports whether the input looks like a bare ticker:
// 1 to 5 ASCII letters, nothing else. Used to keep short symbol
// queries out of the natural-language path.
func IsTickerLike(s string) bool {
	s = strings.TrimSpace(s)
	if len(s) < 1 || len(s) > 5 {
		return false
	}
	for _, r := range s {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') {
			return false
		}
	}
	return true
}
