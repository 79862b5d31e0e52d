package events

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/EventCentral/EC-Backend/internal/utils"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Handler struct {
	DB *gorm.DB
}

// ListEvents returns all events with their creator info.
func (h *Handler) ListEvents(w http.ResponseWriter, r *http.Request) {
	var evs []Event
	if err := h.DB.Preload("Creator").Find(&evs).Error; err != nil {
		log.Printf("[events] list error: %v", err)
		http.Error(w, "Failed to fetch events", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(evs)
}

// GetEvent returns a single event by ID.
func (h *Handler) GetEvent(w http.ResponseWriter, r *http.Request) {
	eventID := chi.URLParam(r, "event_id")

	var ev Event
	if err := h.DB.Preload("Creator").First(&ev, "id = ?", eventID).Error; err != nil {
		http.Error(w, "Event not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(ev)
}

type eventRequest struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Date        time.Time `json:"date"`
	Location    string    `json:"location"`
}

// CreateEvent inserts a new event. The creator is always the authenticated
// admin from the token claims, regardless of any id in the body.
func (h *Handler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	claims, ok := utils.GetClaimsFromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized: missing claims in context", http.StatusUnauthorized)
		return
	}

	var req eventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request format", http.StatusBadRequest)
		return
	}
	if req.Title == "" {
		http.Error(w, "Title is required", http.StatusBadRequest)
		return
	}

	ev := Event{
		ID:          uuid.New().String(),
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Date:        req.Date,
		Location:    req.Location,
		CreatorID:   claims.UserID,
	}

	if err := h.DB.Create(&ev).Error; err != nil {
		log.Printf("[events] create error: %v", err)
		http.Error(w, "Failed to create event", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(ev)
}

// UpdateEvent replaces an event's fields. A body ID that disagrees with the
// URL is a validation error, not a rename.
func (h *Handler) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	eventID := chi.URLParam(r, "event_id")

	var req eventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request format", http.StatusBadRequest)
		return
	}
	if req.ID != "" && req.ID != eventID {
		http.Error(w, "Event ID mismatch", http.StatusBadRequest)
		return
	}

	var ev Event
	if err := h.DB.First(&ev, "id = ?", eventID).Error; err != nil {
		http.Error(w, "Event not found", http.StatusNotFound)
		return
	}

	ev.Title = req.Title
	ev.Description = req.Description
	ev.Category = req.Category
	ev.Date = req.Date
	ev.Location = req.Location

	if err := h.DB.Save(&ev).Error; err != nil {
		// The row may have been deleted between the read and the write;
		// recheck once before reporting a server error.
		var recheck Event
		if recheckErr := h.DB.First(&recheck, "id = ?", eventID).Error; errors.Is(recheckErr, gorm.ErrRecordNotFound) {
			http.Error(w, "Event not found", http.StatusNotFound)
			return
		}
		log.Printf("[events] update error: %v", err)
		http.Error(w, "Failed to update event", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(ev)
}

// DeleteEvent removes an event by ID.
func (h *Handler) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	eventID := chi.URLParam(r, "event_id")

	var ev Event
	if err := h.DB.First(&ev, "id = ?", eventID).Error; err != nil {
		http.Error(w, "Event not found", http.StatusNotFound)
		return
	}

	if err := h.DB.Delete(&ev).Error; err != nil {
		log.Printf("[events] delete error: %v", err)
		http.Error(w, "Failed to delete event", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
