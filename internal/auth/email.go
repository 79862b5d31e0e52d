package auth

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// NormalizeEmail canonicalizes an email address for storage and lookup:
// NFKC unicode normalization, then lowercase, then surrounding whitespace
// stripped. The unique index on users.email applies to the normalized form,
// so "Alice@Example.COM" and "alice@example.com" are the same account.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(norm.NFKC.String(email)))
}
