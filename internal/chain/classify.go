// Package chain classifies raw query strings that look like blockchain
// identifiers: transaction hashes, account addresses, block numbers.
package chain

import (
	"regexp"
	"strings"
)

// IdentifierKind is the classification of a blockchain-looking query.
type IdentifierKind string

const (
	KindTxHash      IdentifierKind = "tx_hash"
	KindAddress     IdentifierKind = "address"
	KindBlockNumber IdentifierKind = "block_number"
	KindNone        IdentifierKind = "none"
)

var (
	txHashRe  = regexp.MustCompile(`^0x[0-9a-fA-F]{64}$`)
	addressRe = regexp.MustCompile(`^0x[0-9a-fA-F]{40}$`)
	blockRe   = regexp.MustCompile(`^[0-9]{1,12}$`)
)

// Identifier is a classified blockchain identifier. Value keeps the
// trimmed input exactly as typed (hex case preserved).
type Identifier struct {
	Kind  IdentifierKind `json:"kind"`
	Value string         `json:"value"`
}

// Classify inspects a raw query and reports whether it is a blockchain
// identifier. Hash length wins over address length; a pure digit run of
// up to twelve characters reads as a block number. Anything else,
// including 0x strings of the wrong length, classifies as KindNone.
func Classify(input string) Identifier {
	trimmed := strings.TrimSpace(input)

	switch {
	case txHashRe.MatchString(trimmed):
		return Identifier{Kind: KindTxHash, Value: trimmed}
	case addressRe.MatchString(trimmed):
		return Identifier{Kind: KindAddress, Value: trimmed}
	case blockRe.MatchString(trimmed):
		return Identifier{Kind: KindBlockNumber, Value: trimmed}
	default:
		return Identifier{Kind: KindNone, Value: trimmed}
	}
}

// IsIdentifier reports whether input classifies as anything other
// than KindNone.
func IsIdentifier(input string) bool {
	return Classify(input).Kind != KindNone
}
