package registration

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/EventCentral/EC-Backend/internal/utils"
	"github.com/go-chi/chi/v5"
)

type Handler struct {
	Ledger *Ledger
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"message": message})
}

// RegisterHandler handles POST /eventregistration/{event_id}. The acting
// user comes from the verified token claims.
func (h *Handler) RegisterHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized: missing user ID in context", http.StatusUnauthorized)
		return
	}
	eventID := chi.URLParam(r, "event_id")

	result, err := h.Ledger.Register(userID, eventID)
	if err != nil {
		log.Printf("[registration] register error: %v", err)
		http.Error(w, "Failed to register for event", http.StatusInternalServerError)
		return
	}
	if !result.OK {
		writeMessage(w, http.StatusBadRequest, result.Message)
		return
	}
	writeMessage(w, http.StatusOK, result.Message)
}

// UnregisterHandler handles DELETE /eventregistration/{event_id}.
func (h *Handler) UnregisterHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized: missing user ID in context", http.StatusUnauthorized)
		return
	}
	eventID := chi.URLParam(r, "event_id")

	result, err := h.Ledger.Unregister(userID, eventID)
	if err != nil {
		log.Printf("[registration] unregister error: %v", err)
		http.Error(w, "Failed to unregister from event", http.StatusInternalServerError)
		return
	}
	if !result.OK {
		writeMessage(w, http.StatusBadRequest, result.Message)
		return
	}
	writeMessage(w, http.StatusOK, result.Message)
}

// MyRegistrationsHandler handles GET /eventregistration/mine.
func (h *Handler) MyRegistrationsHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized: missing user ID in context", http.StatusUnauthorized)
		return
	}

	evs, err := h.Ledger.ListForUser(userID)
	if err != nil {
		log.Printf("[registration] list error: %v", err)
		http.Error(w, "Failed to fetch registrations", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(evs)
}

// CountHandler handles GET /eventregistration/{event_id}/count.
func (h *Handler) CountHandler(w http.ResponseWriter, r *http.Request) {
	eventID := chi.URLParam(r, "event_id")

	count, err := h.Ledger.CountForEvent(eventID)
	if err != nil {
		log.Printf("[registration] count error: %v", err)
		http.Error(w, "Failed to count registrations", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]int64{"count": count})
}

// IsRegisteredHandler handles GET /eventregistration/{event_id}/is-registered.
func (h *Handler) IsRegisteredHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized: missing user ID in context", http.StatusUnauthorized)
		return
	}
	eventID := chi.URLParam(r, "event_id")

	registered, err := h.Ledger.IsRegistered(userID, eventID)
	if err != nil {
		log.Printf("[registration] is-registered error: %v", err)
		http.Error(w, "Failed to check registration", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]bool{"isRegistered": registered})
}
