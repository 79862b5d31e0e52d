package auth

import (
	"errors"
	"time"

	"github.com/EventCentral/EC-Backend/internal/utils"
	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid token")

// tokenClaims is the JWT payload for a session token. Tokens are stateless:
// a token stays valid until its expiry even if the user's role changes.
type tokenClaims struct {
	jwt.RegisteredClaims
	Email  string `json:"email"`
	Role   string `json:"role"`
	UserID string `json:"user_id"`
}

// TokenIssuer signs and verifies session tokens with a process-wide HMAC
// secret. The secret is read-only after construction.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenIssuer(secret string, ttl time.Duration) *TokenIssuer {
	return &TokenIssuer{secret: []byte(secret), ttl: ttl}
}

// Issue returns a signed token carrying the user's email, role and id,
// expiring ttl from now.
func (ti *TokenIssuer) Issue(user User) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, tokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ti.ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
		Email:  user.Email,
		Role:   user.Role,
		UserID: user.UserID,
	})

	return token.SignedString(ti.secret)
}

// Verify parses and validates a token string and returns its claims.
// Rejects bad signatures, non-HMAC signing methods, malformed tokens and
// expired tokens. There is no revocation list; a token is valid for its
// full lifetime.
func (ti *TokenIssuer) Verify(tokenString string) (utils.Claims, error) {
	claims := &tokenClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return ti.secret, nil
	})
	if err != nil {
		return utils.Claims{}, err
	}

	if !token.Valid || claims.UserID == "" {
		return utils.Claims{}, ErrInvalidToken
	}

	return utils.Claims{
		UserID: claims.UserID,
		Email:  claims.Email,
		Role:   claims.Role,
	}, nil
}
