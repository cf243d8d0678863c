package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lastortilhas/restaurant-api/models"
	"github.com/lastortilhas/restaurant-api/utils"
	"gorm.io/gorm"
)

type AdminController struct {
	DB *gorm.DB
}

func NewAdminController(db *gorm.DB) *AdminController {
	return &AdminController{DB: db}
}

// GetDashboardStats computes the dashboard counters. Recomputed per
// request, nothing is cached.
func (ac *AdminController) GetDashboardStats(c *gin.Context) {
	var stats struct {
		TotalReservations   int64 `json:"total_reservations"`
		PendingReservations int64 `json:"pending_reservations"`
		NewMessages         int64 `json:"new_messages"`
		ActiveMenuItems     int64 `json:"active_menu_items"`
		GalleryImages       int64 `json:"gallery_images"`
		TotalUsers          int64 `json:"total_users"`
	}

	counts := []error{
		ac.DB.Model(&models.Reservation{}).Count(&stats.TotalReservations).Error,
		ac.DB.Model(&models.Reservation{}).Where("status = ?", models.ReservationPending).Count(&stats.PendingReservations).Error,
		ac.DB.Model(&models.ContactMessage{}).Where("status = ?", models.MessageNew).Count(&stats.NewMessages).Error,
		ac.DB.Model(&models.MenuItem{}).Where("active = ?", true).Count(&stats.ActiveMenuItems).Error,
		ac.DB.Model(&models.GalleryImage{}).Where("active = ?", true).Count(&stats.GalleryImages).Error,
		ac.DB.Model(&models.User{}).Count(&stats.TotalUsers).Error,
	}
	for _, err := range counts {
		if err != nil {
			utils.RespondError(c, http.StatusInternalServerError, err)
			return
		}
	}

	utils.RespondJSON(c, http.StatusOK, stats)
}
