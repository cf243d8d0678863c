package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/lastortilhas/restaurant-api/models"
)

func newTestStore(t *testing.T, ttl time.Duration) (*GormSessionStore, *gorm.DB) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open in-memory sqlite: %v", err)
	}
	if err := db.AutoMigrate(&models.Session{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return NewGormSessionStore(db, ttl), db
}

func TestSessionRoundTrip(t *testing.T) {
	store, _ := newTestStore(t, time.Hour)

	identity := Identity{ID: "u-1", Email: "ana@example.com", FirstName: "Ana", Role: "user"}
	sid, err := store.Create(identity)
	assert.NoError(t, err)
	assert.NotEmpty(t, sid)

	got, err := store.Get(sid)
	assert.NoError(t, err)
	assert.Equal(t, &identity, got)
}

func TestSessionDelete(t *testing.T) {
	store, _ := newTestStore(t, time.Hour)

	sid, err := store.Create(Identity{ID: "u-1", Role: "user"})
	assert.NoError(t, err)
	assert.NoError(t, store.Delete(sid))

	_, err = store.Get(sid)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSessionExpiry(t *testing.T) {
	store, db := newTestStore(t, 10*time.Millisecond)

	sid, err := store.Create(Identity{ID: "u-1", Role: "user"})
	assert.NoError(t, err)

	time.Sleep(20 * time.Millisecond)

	_, err = store.Get(sid)
	assert.ErrorIs(t, err, ErrSessionNotFound)

	// The expired row is reaped on lookup.
	var count int64
	db.Model(&models.Session{}).Where("sid = ?", sid).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestSessionUnknownSID(t *testing.T) {
	store, _ := newTestStore(t, time.Hour)

	_, err := store.Get("never-issued")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}
