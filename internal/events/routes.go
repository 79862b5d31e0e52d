package events

import (
	"net/http"

	"github.com/EventCentral/EC-Backend/internal/middleware"
	"github.com/go-chi/chi/v5"
)

// policies is the access table for event operations: reads need any valid
// token, mutations need the admin role.
var policies = map[string]middleware.Policy{
	"list":   {},
	"get":    {},
	"create": {Role: "admin"},
	"update": {Role: "admin"},
	"delete": {Role: "admin"},
}

func SetupRoutes(h *Handler, verifier middleware.TokenVerifier) http.Handler {
	r := chi.NewRouter()

	r.With(middleware.Gate(verifier, policies["list"])).Get("/", h.ListEvents)
	r.With(middleware.Gate(verifier, policies["get"])).Get("/{event_id}", h.GetEvent)
	r.With(middleware.Gate(verifier, policies["create"])).Post("/", h.CreateEvent)
	r.With(middleware.Gate(verifier, policies["update"])).Put("/{event_id}", h.UpdateEvent)
	r.With(middleware.Gate(verifier, policies["delete"])).Delete("/{event_id}", h.DeleteEvent)

	return r
}
