package auth

import (
	"errors"

	"github.com/EventCentral/EC-Backend/internal/db"
	"gorm.io/gorm"
)

var ErrDuplicateEmail = errors.New("email already registered")

// UserStore persists user accounts. Emails passed in are expected to be
// normalized already (see NormalizeEmail).
type UserStore interface {
	ExistsByEmail(email string) (bool, error)
	Create(user *User) error
	FindByEmail(email string) (*User, error)
}

// GormUserStore is the Postgres-backed UserStore.
type GormUserStore struct {
	DB *gorm.DB
}

func (s *GormUserStore) ExistsByEmail(email string) (bool, error) {
	var count int64
	if err := s.DB.Model(&User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Create inserts the user. The unique index on email is the authoritative
// duplicate check: a conflicting concurrent registration surfaces here as
// ErrDuplicateEmail even when ExistsByEmail said the email was free.
func (s *GormUserStore) Create(user *User) error {
	if err := s.DB.Create(user).Error; err != nil {
		if db.IsUniqueViolation(err) {
			return ErrDuplicateEmail
		}
		return err
	}
	return nil
}

func (s *GormUserStore) FindByEmail(email string) (*User, error) {
	var user User
	if err := s.DB.First(&user, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}
