package utils

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/lastortilhas/restaurant-api/models"
)

// resetJWTSecret forces the next jwtSecret call to re-read the
// environment, and restores that state when the test ends.
func resetJWTSecret(t *testing.T) {
	jwtSecretOnce = sync.Once{}
	jwtSecretKey = nil
	t.Cleanup(func() {
		jwtSecretOnce = sync.Once{}
		jwtSecretKey = nil
	})
}

func TestJWTSecretResolvedAtFirstUse(t *testing.T) {
	// The secret must pick up an environment value set after package
	// load, the way .env loading in main provides it.
	resetJWTSecret(t)
	t.Setenv("JWT_SECRET", "late-bound-secret")

	assert.Equal(t, []byte("late-bound-secret"), jwtSecret())

	user := &models.User{ID: "u-1", Role: "user"}
	token, err := GenerateToken(user, time.Hour)
	assert.NoError(t, err)
	claims, err := ParseToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "u-1", claims.UserID)
}

func TestTokenRoundTrip(t *testing.T) {
	user := &models.User{
		ID:        "u-42",
		Email:     "ana@example.com",
		FirstName: "Ana",
		LastName:  "Gomes",
		Role:      "admin",
	}

	token, err := GenerateToken(user, time.Hour)
	assert.NoError(t, err)

	claims, err := ParseToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "u-42", claims.UserID)
	assert.Equal(t, "ana@example.com", claims.Email)
	assert.Equal(t, "Ana", claims.FirstName)
	assert.Equal(t, "Gomes", claims.LastName)
	assert.Equal(t, "admin", claims.Role)
}

func TestTokenTTLClamp(t *testing.T) {
	user := &models.User{ID: "u-1", Role: "user"}

	// Over a week falls back to the 24h default.
	token, err := GenerateToken(user, 30*24*time.Hour)
	assert.NoError(t, err)

	claims, err := ParseToken(token)
	assert.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(24*time.Hour), claims.ExpiresAt.Time, time.Minute)
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	_, err := ParseToken("not-a-token")
	assert.Error(t, err)
}

func TestParseTokenRejectsExpired(t *testing.T) {
	// A negative ttl is coerced to the default, so sign with a tiny
	// positive ttl and wait it out.
	user := &models.User{ID: "u-1", Role: "user"}
	token, err := GenerateToken(user, time.Millisecond)
	assert.NoError(t, err)

	time.Sleep(5 * time.Millisecond)

	_, err = ParseToken(token)
	assert.Error(t, err)
}
