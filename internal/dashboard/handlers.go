package dashboard

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/EventCentral/EC-Backend/internal/auth"
	"github.com/EventCentral/EC-Backend/internal/events"
	"github.com/EventCentral/EC-Backend/internal/registration"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type Handler struct {
	DB *gorm.DB
}

type eventStats struct {
	EventID string `json:"event_id"`
	Title   string `json:"title"`
	Count   int64  `json:"count"`
}

type statsResponse struct {
	TotalEvents        int64        `json:"total_events"`
	TotalUsers         int64        `json:"total_users"`
	TotalRegistrations int64        `json:"total_registrations"`
	Events             []eventStats `json:"events"`
}

// StatsHandler returns aggregate counts for the admin dashboard: totals plus
// per-event registration counts fetched in one round trip.
func (h *Handler) StatsHandler(w http.ResponseWriter, r *http.Request) {
	var resp statsResponse

	if err := h.DB.Model(&events.Event{}).Count(&resp.TotalEvents).Error; err != nil {
		log.Printf("[dashboard] event count error: %v", err)
		http.Error(w, "Failed to fetch stats", http.StatusInternalServerError)
		return
	}
	if err := h.DB.Model(&auth.User{}).Count(&resp.TotalUsers).Error; err != nil {
		log.Printf("[dashboard] user count error: %v", err)
		http.Error(w, "Failed to fetch stats", http.StatusInternalServerError)
		return
	}
	if err := h.DB.Model(&registration.Registration{}).Count(&resp.TotalRegistrations).Error; err != nil {
		log.Printf("[dashboard] registration count error: %v", err)
		http.Error(w, "Failed to fetch stats", http.StatusInternalServerError)
		return
	}

	var evs []struct {
		ID    string
		Title string
	}
	if err := h.DB.Model(&events.Event{}).Select("id", "title").Scan(&evs).Error; err != nil {
		log.Printf("[dashboard] event list error: %v", err)
		http.Error(w, "Failed to fetch stats", http.StatusInternalServerError)
		return
	}

	counts := map[string]int64{}
	if len(evs) > 0 {
		ids := make([]string, 0, len(evs))
		for _, ev := range evs {
			ids = append(ids, ev.ID)
		}

		var rows []struct {
			EventID string
			Count   int64
		}
		if err := h.DB.Raw(`
			SELECT event_id, COUNT(*) AS count
			FROM app_registration.registrations
			WHERE event_id = ANY(?)
			GROUP BY event_id
		`, pq.Array(ids)).Scan(&rows).Error; err != nil {
			log.Printf("[dashboard] per-event count error: %v", err)
			http.Error(w, "Failed to fetch stats", http.StatusInternalServerError)
			return
		}
		for _, row := range rows {
			counts[row.EventID] = row.Count
		}
	}

	resp.Events = make([]eventStats, 0, len(evs))
	for _, ev := range evs {
		resp.Events = append(resp.Events, eventStats{
			EventID: ev.ID,
			Title:   ev.Title,
			Count:   counts[ev.ID],
		})
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}
