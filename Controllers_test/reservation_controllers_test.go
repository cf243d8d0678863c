package Controllers_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/lastortilhas/restaurant-api/controllers"
	"github.com/lastortilhas/restaurant-api/models"
)

func setupReservationTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open in-memory sqlite: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Reservation{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

func setupReservationRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	ctrl := controllers.NewReservationController(db)
	r.POST("/reservations", ctrl.CreateReservation)
	r.GET("/reservations", ctrl.GetAllReservations)
	r.PUT("/reservations/:id", ctrl.UpdateReservationStatus)
	return r
}

func TestReservationRoundTrip(t *testing.T) {
	db := setupReservationTestDB(t)
	r := setupReservationRouter(db)

	w := postJSON(t, r, "/reservations", map[string]interface{}{
		"name":   "Ana",
		"phone":  "+244900000000",
		"date":   "2025-06-01",
		"time":   "19:00",
		"guests": 2,
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	created := decodeEnvelope(t, w)["data"].(map[string]interface{})
	assert.Equal(t, "pending", created["status"])

	// Read back through the admin-facing list.
	req := httptest.NewRequest(http.MethodGet, "/reservations", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	list := decodeEnvelope(t, rec)["data"].([]interface{})
	assert.Len(t, list, 1)
	row := list[0].(map[string]interface{})
	assert.Equal(t, "Ana", row["name"])
	assert.Equal(t, "+244900000000", row["phone"])
	assert.Equal(t, "19:00", row["time"])
	assert.Equal(t, float64(2), row["guests"])
	assert.Equal(t, "pending", row["status"])
	assert.True(t, strings.HasPrefix(row["date"].(string), "2025-06-01"),
		"date should be normalized to 2025-06-01, got %v", row["date"])
}

func TestReservationRequiredFields(t *testing.T) {
	db := setupReservationTestDB(t)
	r := setupReservationRouter(db)

	cases := []map[string]interface{}{
		{"phone": "+244900000000", "date": "2025-06-01", "time": "19:00", "guests": 2},        // no name
		{"name": "Ana", "date": "2025-06-01", "time": "19:00", "guests": 2},                   // no phone
		{"name": "Ana", "phone": "+244900000000", "time": "19:00", "guests": 2},               // no date
		{"name": "Ana", "phone": "+244900000000", "date": "2025-06-01", "guests": 2},          // no time
		{"name": "Ana", "phone": "+244900000000", "date": "2025-06-01", "time": "19:00"},      // no guests
		{"name": "Ana", "phone": "+2449", "date": "2025-06-01", "time": "19:00", "guests": 0}, // guests < 1
		{"name": "Ana", "phone": "+2449", "date": "June first", "time": "19:00", "guests": 2}, // bad date
		{"name": "Ana", "phone": "+2449", "date": "2025-06-01", "time": "late", "guests": 2},  // bad time
	}

	for _, payload := range cases {
		w := postJSON(t, r, "/reservations", payload)
		assert.Equal(t, http.StatusBadRequest, w.Code, "payload %v should be rejected", payload)
	}

	var count int64
	db.Model(&models.Reservation{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestReservationStatusUpdate(t *testing.T) {
	db := setupReservationTestDB(t)
	r := setupReservationRouter(db)

	w := postJSON(t, r, "/reservations", map[string]interface{}{
		"name":   "Jo",
		"phone":  "+244911111111",
		"date":   "2025-07-15",
		"time":   "20:30",
		"guests": 4,
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	w = putJSON(t, r, "/reservations/1", map[string]string{"status": "confirmed"})
	assert.Equal(t, http.StatusOK, w.Code)
	updated := decodeEnvelope(t, w)["data"].(map[string]interface{})
	assert.Equal(t, "confirmed", updated["status"])
}

func TestReservationRejectsUnknownStatus(t *testing.T) {
	db := setupReservationTestDB(t)
	r := setupReservationRouter(db)

	w := postJSON(t, r, "/reservations", map[string]interface{}{
		"name":   "Rui",
		"phone":  "+244922222222",
		"date":   "2025-08-01",
		"time":   "18:00",
		"guests": 3,
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	w = putJSON(t, r, "/reservations/1", map[string]string{"status": "arrived"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// The stored status is untouched.
	var reservation models.Reservation
	db.First(&reservation, 1)
	assert.Equal(t, "pending", reservation.Status)
}
