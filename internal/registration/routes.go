package registration

import (
	"net/http"

	"github.com/EventCentral/EC-Backend/internal/middleware"
	"github.com/go-chi/chi/v5"
)

// policies is the access table for registration operations. The public count
// endpoint is the only anonymous one; everything else needs a valid token of
// any role.
var policies = map[string]middleware.Policy{
	"register":      {},
	"unregister":    {},
	"mine":          {},
	"count":         {AllowAnonymous: true},
	"is-registered": {},
}

func SetupRoutes(h *Handler, verifier middleware.TokenVerifier) http.Handler {
	r := chi.NewRouter()

	r.With(middleware.Gate(verifier, policies["mine"])).Get("/mine", h.MyRegistrationsHandler)
	r.With(middleware.Gate(verifier, policies["register"])).Post("/{event_id}", h.RegisterHandler)
	r.With(middleware.Gate(verifier, policies["unregister"])).Delete("/{event_id}", h.UnregisterHandler)
	r.With(middleware.Gate(verifier, policies["count"])).Get("/{event_id}/count", h.CountHandler)
	r.With(middleware.Gate(verifier, policies["is-registered"])).Get("/{event_id}/is-registered", h.IsRegisteredHandler)

	return r
}
