package Controllers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/lastortilhas/restaurant-api/controllers"
	"github.com/lastortilhas/restaurant-api/middlewares"
	"github.com/lastortilhas/restaurant-api/models"
	"github.com/lastortilhas/restaurant-api/services"
)

func setupAdminRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open in-memory sqlite: %v", err)
	}
	err = db.AutoMigrate(
		&models.User{},
		&models.Session{},
		&models.MenuCategory{},
		&models.MenuItem{},
		&models.Reservation{},
		&models.ContactMessage{},
		&models.GalleryImage{},
	)
	if err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	gin.SetMode(gin.TestMode)
	sessions := services.NewGormSessionStore(db, 0)
	adminCtrl := controllers.NewAdminController(db)

	r := gin.New()
	admin := r.Group("/")
	admin.Use(middlewares.AuthMiddleware(sessions))
	admin.Use(middlewares.RequireRole("admin"))
	admin.GET("/admin/stats", adminCtrl.GetDashboardStats)
	return r, db
}

func statsRequest(r *gin.Engine, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/admin/stats", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestDashboardStats(t *testing.T) {
	r, db := setupAdminRouter(t)

	db.Create(&models.MenuCategory{Name: "Tacos", Slug: "tacos"})
	db.Create(&models.MenuItem{CategoryID: 1, Name: "Active", Price: 5, Active: true})
	db.Create(&models.MenuItem{CategoryID: 1, Name: "Inactive", Price: 5, Active: false})
	db.Create(&models.Reservation{Name: "Ana", Phone: "+2449", Time: "19:00", Guests: 2, Status: "pending"})
	db.Create(&models.Reservation{Name: "Rui", Phone: "+2449", Time: "20:00", Guests: 2, Status: "confirmed"})
	db.Create(&models.ContactMessage{Name: "Jo", Email: "jo@x.com", Message: "Hi", Status: "new"})
	db.Create(&models.GalleryImage{ImageUrl: "a.jpg", Active: true})
	db.Create(&models.User{Email: "u@example.com", Role: "user"})

	w := statsRequest(r, bearerFor(t, "admin"))
	assert.Equal(t, http.StatusOK, w.Code)

	stats := decodeEnvelope(t, w)["data"].(map[string]interface{})
	assert.Equal(t, float64(2), stats["total_reservations"])
	assert.Equal(t, float64(1), stats["pending_reservations"])
	assert.Equal(t, float64(1), stats["new_messages"])
	assert.Equal(t, float64(1), stats["active_menu_items"])
	assert.Equal(t, float64(1), stats["gallery_images"])
	assert.Equal(t, float64(1), stats["total_users"])
}

func TestDashboardStatsFailingDB(t *testing.T) {
	r, db := setupAdminRouter(t)
	token := bearerFor(t, "admin")

	// Drop a counted table so the query fails mid-handler.
	err := db.Migrator().DropTable(&models.ContactMessage{})
	assert.NoError(t, err)

	w := statsRequest(r, token)
	assert.Equal(t, http.StatusInternalServerError, w.Code)

	resp := decodeEnvelope(t, w)
	assert.Equal(t, false, resp["success"])
}

func TestDashboardStatsGating(t *testing.T) {
	r, _ := setupAdminRouter(t)

	// No identity at all.
	w := statsRequest(r, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Authenticated but not admin.
	w = statsRequest(r, bearerFor(t, "user"))
	assert.Equal(t, http.StatusForbidden, w.Code)

	// Garbage token.
	w = statsRequest(r, "Bearer not-a-token")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
