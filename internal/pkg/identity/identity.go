// Package identity normalizes marketplace account names for storage and
// comparison. Names are case-insensitive on the marketplace, so two spellings
// that differ only by case map to the same hash.
package identity

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// Hash is the normalized form of a marketplace account name. It is the only
// representation ever written to the ledger or held in the reservation set.
type Hash string

func Normalize(name string) Hash {
	sum := sha256.Sum256([]byte(strings.ToLower(strings.TrimSpace(name))))
	return Hash(hex.EncodeToString(sum[:]))
}

func (h Hash) String() string {
	return string(h)
}
