package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/EventCentral/EC-Backend/internal/middleware"
	"github.com/EventCentral/EC-Backend/internal/utils"
)

// mockVerifier implements middleware.TokenVerifier without any crypto.
type mockVerifier struct {
	claims utils.Claims
	err    error
}

func (m mockVerifier) Verify(token string) (utils.Claims, error) {
	return m.claims, m.err
}

// callWithHeader wraps a 200-OK inner handler in the gate, optionally setting
// an Authorization header, and returns the recorded response.
func callWithHeader(t *testing.T, mw func(http.Handler) http.Handler, header string) *httptest.ResponseRecorder {
	t.Helper()

	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	handler := mw(inner)
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

// TestGate_MissingHeader verifies that a protected route with no
// Authorization header receives a 401 response.
func TestGate_MissingHeader(t *testing.T) {
	mw := middleware.Gate(mockVerifier{}, middleware.Policy{})

	rec := callWithHeader(t, mw, "")

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}
}

// TestGate_MalformedHeader verifies that a non-bearer Authorization header
// receives a 401 response.
func TestGate_MalformedHeader(t *testing.T) {
	mw := middleware.Gate(mockVerifier{}, middleware.Policy{})

	rec := callWithHeader(t, mw, "Basic dXNlcjpwYXNz")

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}
}

// TestGate_InvalidToken verifies that a verifier rejection results in 401.
func TestGate_InvalidToken(t *testing.T) {
	mw := middleware.Gate(mockVerifier{err: errors.New("bad signature")}, middleware.Policy{})

	rec := callWithHeader(t, mw, "Bearer garbage")

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}
}

// TestGate_WrongRole verifies that a valid token with the wrong role is
// rejected as 403, not 401.
func TestGate_WrongRole(t *testing.T) {
	verifier := mockVerifier{claims: utils.Claims{UserID: "u1", Role: "user"}}
	mw := middleware.Gate(verifier, middleware.Policy{Role: "admin"})

	rec := callWithHeader(t, mw, "Bearer some-token")

	if rec.Code != http.StatusForbidden {
		t.Errorf("expected 403, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "admin access required") {
		t.Errorf("expected admin-required message, got: %q", rec.Body.String())
	}
}

// TestGate_NoTokenAdminRoute verifies the 401-vs-403 distinction from the
// other side: the same admin route with no token at all is 401.
func TestGate_NoTokenAdminRoute(t *testing.T) {
	verifier := mockVerifier{claims: utils.Claims{UserID: "u1", Role: "user"}}
	mw := middleware.Gate(verifier, middleware.Policy{Role: "admin"})

	rec := callWithHeader(t, mw, "")

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}
}

// TestGate_ValidToken verifies that a valid token passes and the claims are
// injected into the request context.
func TestGate_ValidToken(t *testing.T) {
	want := utils.Claims{UserID: "test-user-123", Email: "a@b.c", Role: "admin"}
	mw := middleware.Gate(mockVerifier{claims: want}, middleware.Policy{Role: "admin"})

	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, ok := utils.GetClaimsFromContext(r.Context())
		if !ok {
			http.Error(w, "claims not in context", http.StatusInternalServerError)
			return
		}
		if got != want {
			http.Error(w, "wrong claims in context", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
	})

	handler := mw(inner)
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set("Authorization", "Bearer some-token")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
}

// TestGate_Anonymous verifies that an anonymous policy lets a request with no
// token straight through.
func TestGate_Anonymous(t *testing.T) {
	mw := middleware.Gate(mockVerifier{err: errors.New("should not be called")}, middleware.Policy{AllowAnonymous: true})

	rec := callWithHeader(t, mw, "")

	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
}
