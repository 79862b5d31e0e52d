package registration

import (
	"errors"
	"time"

	"github.com/EventCentral/EC-Backend/internal/events"
	"github.com/google/uuid"
)

// Result is the outcome of a register/unregister attempt. Message is the
// user-facing explanation when OK is false.
type Result struct {
	OK      bool
	Message string
}

// Ledger maintains the one-registration-per-(user, event) invariant and
// exposes registration queries.
type Ledger struct {
	store Store
}

func NewLedger(store Store) *Ledger {
	return &Ledger{store: store}
}

// Register records that userID attends eventID. The duplicate check runs
// before the event-existence check, so a stale registration for a deleted
// event still reports "Already registered". The pre-checks are fast paths;
// the unique index decides races.
func (l *Ledger) Register(userID, eventID string) (Result, error) {
	exists, err := l.store.Exists(userID, eventID)
	if err != nil {
		return Result{}, err
	}
	if exists {
		return Result{Message: "Already registered"}, nil
	}

	eventExists, err := l.store.EventExists(eventID)
	if err != nil {
		return Result{}, err
	}
	if !eventExists {
		return Result{Message: "Event does not exist"}, nil
	}

	reg := Registration{
		ID:           uuid.New().String(),
		UserID:       userID,
		EventID:      eventID,
		RegisteredAt: time.Now().UTC(),
	}
	if err := l.store.Create(&reg); err != nil {
		if errors.Is(err, ErrAlreadyRegistered) {
			// Lost a race with an identical request; same outcome as the pre-check.
			return Result{Message: "Already registered"}, nil
		}
		return Result{}, err
	}

	return Result{OK: true, Message: "Registered successfully"}, nil
}

// Unregister removes userID's registration for eventID.
func (l *Ledger) Unregister(userID, eventID string) (Result, error) {
	deleted, err := l.store.Delete(userID, eventID)
	if err != nil {
		return Result{}, err
	}
	if !deleted {
		return Result{Message: "Registration not found"}, nil
	}
	return Result{OK: true, Message: "Unregistered successfully"}, nil
}

// ListForUser returns the events the user is registered for. Order is
// unspecified.
func (l *Ledger) ListForUser(userID string) ([]events.Event, error) {
	return l.store.EventsForUser(userID)
}

// CountForEvent returns the number of registrations for an event, zero if none.
func (l *Ledger) CountForEvent(eventID string) (int64, error) {
	return l.store.CountForEvent(eventID)
}

// IsRegistered reports whether the user holds a registration for the event.
func (l *Ledger) IsRegistered(userID, eventID string) (bool, error) {
	return l.store.Exists(userID, eventID)
}
