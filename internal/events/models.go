package events

import "time"

// Creator is a read-only view of the account that created an event,
// mapped onto the auth schema for joins.
type Creator struct {
	UserID   string `gorm:"primaryKey" json:"user_id"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
}

func (Creator) TableName() string { return "app_auth.users" }

type Event struct {
	ID          string    `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"not null" json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Date        time.Time `json:"date"`
	Location    string    `json:"location"`
	CreatorID   string    `gorm:"index;not null" json:"creator_id"`
	Creator     *Creator  `gorm:"foreignKey:CreatorID" json:"creator,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (Event) TableName() string { return "app_events.events" }
