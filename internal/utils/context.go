package utils

import (
	"context"
)

type contextKey string

const ContextClaimsKey contextKey = "claims"

// Claims is the verified identity extracted from a session token. Handlers
// always take the acting user from here, never from a request body field.
type Claims struct {
	UserID string
	Email  string
	Role   string
}

func GetClaimsFromContext(ctx context.Context) (Claims, bool) {
	claims, ok := ctx.Value(ContextClaimsKey).(Claims)
	return claims, ok
}

func GetUserIDFromContext(ctx context.Context) (string, bool) {
	claims, ok := GetClaimsFromContext(ctx)
	if !ok {
		return "", false
	}
	return claims.UserID, true
}
