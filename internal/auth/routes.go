package auth

import (
	"net/http"

	"github.com/EventCentral/EC-Backend/internal/middleware"
	"github.com/go-chi/chi/v5"
)

// policies is the access table for auth operations, consulted by the gate
// when routes are mounted. Login and register are the only anonymous
// operations in the whole API.
var policies = map[string]middleware.Policy{
	"register": {AllowAnonymous: true},
	"login":    {AllowAnonymous: true},
	"me":       {},
}

func SetupRoutes(s *Service) http.Handler {
	r := chi.NewRouter()

	// 5 req/s with a burst of 10 per IP on the credential endpoints.
	r.Use(middleware.RateLimit(5, 10))

	r.With(middleware.Gate(s.Tokens, policies["register"])).Post("/register", s.RegisterHandler)
	r.With(middleware.Gate(s.Tokens, policies["login"])).Post("/login", s.LoginHandler)
	r.With(middleware.Gate(s.Tokens, policies["me"])).Get("/me", s.MeHandler)

	return r
}
