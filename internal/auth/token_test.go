package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndVerify(t *testing.T) {
	ti := NewTokenIssuer("test-secret", time.Hour)

	user := User{
		UserID: "user-123",
		Email:  "alice@example.com",
		Role:   RoleAdmin,
	}

	token, err := ti.Issue(user)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ti.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.UserID)
	assert.Equal(t, "alice@example.com", claims.Email)
	assert.Equal(t, RoleAdmin, claims.Role)
}

func TestVerifyExpiredToken(t *testing.T) {
	// Negative TTL issues a token that expired in the past; a valid
	// signature must not rescue it.
	ti := NewTokenIssuer("test-secret", -time.Hour)

	token, err := ti.Issue(User{UserID: "user-123", Email: "a@b.c", Role: RoleUser})
	require.NoError(t, err)

	_, err = ti.Verify(token)
	assert.Error(t, err)
}

func TestVerifyWrongSecret(t *testing.T) {
	issuer := NewTokenIssuer("secret-one", time.Hour)
	verifier := NewTokenIssuer("secret-two", time.Hour)

	token, err := issuer.Issue(User{UserID: "user-123", Email: "a@b.c", Role: RoleUser})
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.Error(t, err)
}

func TestVerifyMalformedToken(t *testing.T) {
	ti := NewTokenIssuer("test-secret", time.Hour)

	_, err := ti.Verify("not-a-token")
	assert.Error(t, err)
}

func TestVerifyRejectsNonHMACSigningMethod(t *testing.T) {
	ti := NewTokenIssuer("test-secret", time.Hour)

	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, tokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
		UserID: "user-123",
	})
	token, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = ti.Verify(token)
	assert.Error(t, err)
}

func TestVerifyRejectsMissingUserID(t *testing.T) {
	ti := NewTokenIssuer("test-secret", time.Hour)

	signed := jwt.NewWithClaims(jwt.SigningMethodHS256, tokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
		Email: "a@b.c",
	})
	token, err := signed.SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = ti.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
