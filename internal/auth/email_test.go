package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "alice@example.com", NormalizeEmail("Alice@Example.COM"))
	assert.Equal(t, "alice@example.com", NormalizeEmail("  alice@example.com\t"))
	// NFKC folds the fullwidth form to plain ASCII.
	assert.Equal(t, "a@example.com", NormalizeEmail("ａ@example.com"))
}
