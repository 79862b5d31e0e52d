package registration

import "time"

// Registration records that a user intends to attend an event. The composite
// unique index makes the at-most-one-per-(user, event) invariant a property
// of the table, not of the handlers that write to it.
type Registration struct {
	ID           string    `gorm:"primaryKey" json:"id"`
	UserID       string    `gorm:"not null;uniqueIndex:idx_registrations_user_event" json:"user_id"`
	EventID      string    `gorm:"not null;uniqueIndex:idx_registrations_user_event" json:"event_id"`
	RegisteredAt time.Time `json:"registered_at"`
}

func (Registration) TableName() string { return "app_registration.registrations" }
