//go:build unit

package identity_test

import (
	"testing"

	"spigot-link/internal/pkg/identity"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	t.Run("case insensitive", func(t *testing.T) {
		assert.Equal(t, identity.Normalize("Steve87"), identity.Normalize("steve87"))
		assert.Equal(t, identity.Normalize("STEVE87"), identity.Normalize("sTeVe87"))
	})

	t.Run("whitespace trimmed", func(t *testing.T) {
		assert.Equal(t, identity.Normalize("Steve87"), identity.Normalize("  Steve87 "))
	})

	t.Run("distinct names stay distinct", func(t *testing.T) {
		assert.NotEqual(t, identity.Normalize("Steve87"), identity.Normalize("Steve88"))
	})

	t.Run("hex encoded sha256", func(t *testing.T) {
		h := identity.Normalize("Steve87")
		assert.Len(t, h.String(), 64)
	})
}
