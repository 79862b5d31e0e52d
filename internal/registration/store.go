package registration

import (
	"errors"

	"github.com/EventCentral/EC-Backend/internal/db"
	"github.com/EventCentral/EC-Backend/internal/events"
	"gorm.io/gorm"
)

var ErrAlreadyRegistered = errors.New("registration already exists")

// Store persists registrations and answers the queries the ledger needs.
type Store interface {
	Exists(userID, eventID string) (bool, error)
	Create(reg *Registration) error
	Delete(userID, eventID string) (deleted bool, err error)
	EventsForUser(userID string) ([]events.Event, error)
	CountForEvent(eventID string) (int64, error)
	EventExists(eventID string) (bool, error)
}

// GormStore is the Postgres-backed Store.
type GormStore struct {
	DB *gorm.DB
}

func (s *GormStore) Exists(userID, eventID string) (bool, error) {
	var count int64
	err := s.DB.Model(&Registration{}).
		Where("user_id = ? AND event_id = ?", userID, eventID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Create inserts the registration. The (user_id, event_id) unique index is
// the authoritative duplicate check; a conflicting concurrent insert comes
// back as ErrAlreadyRegistered.
func (s *GormStore) Create(reg *Registration) error {
	if err := s.DB.Create(reg).Error; err != nil {
		if db.IsUniqueViolation(err) {
			return ErrAlreadyRegistered
		}
		return err
	}
	return nil
}

func (s *GormStore) Delete(userID, eventID string) (bool, error) {
	result := s.DB.Where("user_id = ? AND event_id = ?", userID, eventID).
		Delete(&Registration{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// EventsForUser joins registrations to the event store. Row order is
// whatever the join produces; callers must sort if they need stability.
func (s *GormStore) EventsForUser(userID string) ([]events.Event, error) {
	var evs []events.Event
	err := s.DB.Raw(`
		SELECT e.*
		FROM app_events.events e
		JOIN app_registration.registrations r ON r.event_id = e.id
		WHERE r.user_id = ?
	`, userID).Scan(&evs).Error
	if err != nil {
		return nil, err
	}
	return evs, nil
}

func (s *GormStore) CountForEvent(eventID string) (int64, error) {
	var count int64
	err := s.DB.Model(&Registration{}).
		Where("event_id = ?", eventID).
		Count(&count).Error
	return count, err
}

func (s *GormStore) EventExists(eventID string) (bool, error) {
	var count int64
	err := s.DB.Model(&events.Event{}).Where("id = ?", eventID).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
