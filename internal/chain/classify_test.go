package chain

import (
	"strings"
	"testing"
)

func TestClassify(t *testing.T) {
	txHash := "0x" + strings.Repeat("ab12", 16)  // 64 hex chars
	address := "0x" + strings.Repeat("Cd34", 10) // 40 hex chars, mixed case

	tests := []struct {
		name string
		in   string
		want IdentifierKind
	}{
		{"tx hash", txHash, KindTxHash},
		{"tx hash with whitespace", "  " + txHash + "\n", KindTxHash},
		{"address", address, KindAddress},
		{"block number", "19000000", KindBlockNumber},
		{"single digit block", "0", KindBlockNumber},
		{"twelve digit block", "123456789012", KindBlockNumber},
		{"thirteen digits too long", "1234567890123", KindNone},
		{"0x wrong length", "0xabc123", KindNone},
		{"0x 63 hex chars", "0x" + strings.Repeat("a", 63), KindNone},
		{"0x 41 hex chars", "0x" + strings.Repeat("a", 41), KindNone},
		{"non-hex after 0x", "0x" + strings.Repeat("g", 64), KindNone},
		{"ticker", "AAPL", KindNone},
		{"natural language", "tech stocks going up", KindNone},
		{"empty", "", KindNone},
		{"digits with spaces inside", "190 000", KindNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.in)
			if got.Kind != tt.want {
				t.Errorf("Classify(%q): got %q, want %q", tt.in, got.Kind, tt.want)
			}
			if got.Value != strings.TrimSpace(tt.in) {
				t.Errorf("Classify(%q): value %q not trimmed input", tt.in, got.Value)
			}
		})
	}
}

func TestClassifyPreservesHexCase(t *testing.T) {
	in := "0x" + strings.Repeat("AbCd", 10)
	got := Classify(in)
	if got.Value != in {
		t.Errorf("hex case changed: got %q", got.Value)
	}
}

func TestIsIdentifier(t *testing.T) {
	if !IsIdentifier("42") {
		t.Error("block number should be an identifier")
	}
	if IsIdentifier("bitcoin") {
		t.Error("asset name should not be an identifier")
	}
}
