package services

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/lastortilhas/restaurant-api/models"
	"gorm.io/gorm"
)

// Identity is the resolved (user, role) pair for an authenticated
// request, whichever credential produced it.
type Identity struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Role      string `json:"role"`
}

var ErrSessionNotFound = errors.New("session not found or expired")

// SessionStore keeps server-side login sessions. Implementations must
// tolerate concurrent access; a session is only ever written by its
// owning client so last-write-wins is fine.
type SessionStore interface {
	Create(identity Identity) (sid string, err error)
	Get(sid string) (*Identity, error)
	Delete(sid string) error
}

// GormSessionStore persists sessions in the sessions table so logins
// survive process restarts.
type GormSessionStore struct {
	db  *gorm.DB
	ttl time.Duration
}

func NewGormSessionStore(db *gorm.DB, ttl time.Duration) *GormSessionStore {
	if ttl <= 0 {
		ttl = 7 * 24 * time.Hour
	}
	return &GormSessionStore{db: db, ttl: ttl}
}

func (s *GormSessionStore) Create(identity Identity) (string, error) {
	data, err := json.Marshal(identity)
	if err != nil {
		return "", err
	}

	session := models.Session{
		SID:    uuid.NewString(),
		Data:   string(data),
		Expire: time.Now().Add(s.ttl),
	}
	if err := s.db.Create(&session).Error; err != nil {
		return "", err
	}
	return session.SID, nil
}

func (s *GormSessionStore) Get(sid string) (*Identity, error) {
	var session models.Session
	if err := s.db.First(&session, "sid = ?", sid).Error; err != nil {
		return nil, ErrSessionNotFound
	}

	if time.Now().After(session.Expire) {
		// Expired sessions are reaped lazily on lookup.
		s.db.Delete(&models.Session{}, "sid = ?", sid)
		return nil, ErrSessionNotFound
	}

	var identity Identity
	if err := json.Unmarshal([]byte(session.Data), &identity); err != nil {
		return nil, err
	}
	return &identity, nil
}

func (s *GormSessionStore) Delete(sid string) error {
	return s.db.Delete(&models.Session{}, "sid = ?", sid).Error
}
