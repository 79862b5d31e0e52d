package dashboard

import (
	"net/http"

	"github.com/EventCentral/EC-Backend/internal/middleware"
	"github.com/go-chi/chi/v5"
)

var policies = map[string]middleware.Policy{
	"stats": {Role: "admin"},
}

func SetupRoutes(h *Handler, verifier middleware.TokenVerifier) http.Handler {
	r := chi.NewRouter()

	r.With(middleware.Gate(verifier, policies["stats"])).Get("/stats", h.StatsHandler)

	return r
}
