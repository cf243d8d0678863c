package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lastortilhas/restaurant-api/config"
	"github.com/lastortilhas/restaurant-api/controllers"
	"github.com/lastortilhas/restaurant-api/middlewares"
	"github.com/lastortilhas/restaurant-api/services"
	"github.com/lastortilhas/restaurant-api/utils"
	"gorm.io/gorm"
)

// availableEndpoints backs the 404 body: the API surface is small
// enough to enumerate for the caller.
var availableEndpoints = []string{
	"GET /health",
	"POST /auth/register",
	"POST /auth/login",
	"POST /auth/logout",
	"GET /auth/user",
	"GET /menu/categories",
	"GET /menu/items",
	"GET /gallery",
	"POST /reservations",
	"POST /contact",
	"GET /reservations (admin)",
	"PUT /reservations/:id (admin)",
	"GET /contact (admin)",
	"PUT /contact/:id (admin)",
	"GET /admin/stats (admin)",
	"GET|POST|PUT|DELETE /admin/menu/... (admin)",
	"GET|POST|PUT|DELETE /admin/gallery/... (admin)",
	"GET /admin/reports/reservations.{csv,pdf} (admin)",
}

func SetupRouter(db *gorm.DB, sessions services.SessionStore, cfg *config.Config) *gin.Engine {
	r := gin.New()

	r.Use(middlewares.Recovery(cfg.IsProduction()))
	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares(cfg.AllowedOrigins))
	r.Use(middlewares.LoggerMiddleware())

	userCtrl := controllers.NewUserController(db, sessions)
	userCtrl.TokenTTL = cfg.TokenTTL
	userCtrl.SessionTTL = cfg.SessionTTL
	userCtrl.AllowImplicitRegistration = cfg.AllowImplicitRegistration
	userCtrl.SecureCookies = cfg.IsProduction()

	categoryCtrl := controllers.NewMenuCategoryController(db)
	menuCtrl := controllers.NewMenuItemController(db)
	galleryCtrl := controllers.NewGalleryController(db)
	reservationCtrl := controllers.NewReservationController(db)
	contactCtrl := controllers.NewContactController(db)
	adminCtrl := controllers.NewAdminController(db)
	reportCtrl := controllers.NewReportController(db)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "OK"})
	})

	// ----------------------------------------------------------------
	//                      PUBLIC ROUTES
	// ----------------------------------------------------------------
	limiter := middlewares.NewStrictRateLimiter()
	authPublic := r.Group("/auth")
	authPublic.Use(limiter.Limit())
	{
		authPublic.POST("/register", userCtrl.Register)
		authPublic.POST("/login", userCtrl.Login)
	}

	r.GET("/menu/categories", categoryCtrl.GetAllCategories)
	r.GET("/menu/items", menuCtrl.GetMenuItems)
	r.GET("/gallery", galleryCtrl.GetGallery)

	r.POST("/reservations", reservationCtrl.CreateReservation)
	r.POST("/contact", contactCtrl.CreateMessage)

	// ----------------------------------------------------------------
	//                      AUTHENTICATED ROUTES
	// ----------------------------------------------------------------
	authed := r.Group("/")
	authed.Use(middlewares.AuthMiddleware(sessions))
	{
		authed.GET("/auth/user", userCtrl.GetProfile)
		authed.POST("/auth/logout", userCtrl.Logout)
	}

	// ----------------------------------------------------------------
	//                      ADMIN ROUTES
	// ----------------------------------------------------------------
	admin := r.Group("/")
	admin.Use(middlewares.AuthMiddleware(sessions))
	admin.Use(middlewares.RequireRole("admin"))
	{
		admin.GET("/reservations", reservationCtrl.GetAllReservations)
		admin.PUT("/reservations/:id", reservationCtrl.UpdateReservationStatus)

		admin.GET("/contact", contactCtrl.GetAllMessages)
		admin.PUT("/contact/:id", contactCtrl.UpdateMessageStatus)

		admin.GET("/admin/stats", adminCtrl.GetDashboardStats)

		admin.POST("/admin/menu/categories", categoryCtrl.CreateCategory)
		admin.PUT("/admin/menu/categories/:id", categoryCtrl.UpdateCategory)

		admin.GET("/admin/menu/items", menuCtrl.GetAllMenuItems)
		admin.POST("/admin/menu/items", menuCtrl.CreateMenuItem)
		admin.PUT("/admin/menu/items/:id", menuCtrl.UpdateMenuItem)
		admin.DELETE("/admin/menu/items/:id", menuCtrl.DeleteMenuItem)

		admin.GET("/admin/gallery", galleryCtrl.GetAllGallery)
		admin.POST("/admin/gallery", galleryCtrl.CreateImage)
		admin.PUT("/admin/gallery/:id", galleryCtrl.UpdateImage)
		admin.DELETE("/admin/gallery/:id", galleryCtrl.DeleteImage)

		admin.GET("/admin/reports/reservations.csv", reportCtrl.ExportReservationsCSV)
		admin.GET("/admin/reports/reservations.pdf", reportCtrl.ExportReservationsPDF)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, utils.JSONResponse{
			Success: false,
			Error:   "not found",
			Data: gin.H{
				"available_endpoints": availableEndpoints,
			},
			Timestamp: time.Now().UTC(),
		})
	})

	return r
}
