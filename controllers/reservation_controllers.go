package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lastortilhas/restaurant-api/models"
	"github.com/lastortilhas/restaurant-api/utils"
	"gorm.io/gorm"
)

type ReservationController struct {
	DB *gorm.DB
}

func NewReservationController(db *gorm.DB) *ReservationController {
	return &ReservationController{DB: db}
}

// CreateReservation takes the public booking form. No authentication:
// anonymous bookings are allowed, a known user may attach its id.
func (rc *ReservationController) CreateReservation(c *gin.Context) {
	var body struct {
		UserID *string `json:"user_id"`
		Name   string  `json:"name" binding:"required"`
		Phone  string  `json:"phone" binding:"required"`
		Email  *string `json:"email" binding:"omitempty,email"`
		Date   string  `json:"date" binding:"required"`
		Time   string  `json:"time" binding:"required"`
		Guests int     `json:"guests" binding:"required,min=1"`
		Notes  *string `json:"notes"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	date, err := parseReservationDate(body.Date)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if _, err := time.Parse("15:04", body.Time); err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("time must be in HH:MM format"))
		return
	}

	reservation := models.Reservation{
		UserID: body.UserID,
		Name:   body.Name,
		Phone:  body.Phone,
		Email:  body.Email,
		Date:   date,
		Time:   body.Time,
		Guests: body.Guests,
		Notes:  body.Notes,
		Status: models.ReservationPending,
	}
	if err := rc.DB.Create(&reservation).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("New reservation #%d for %s (%d guests on %s %s)",
		reservation.ID, reservation.Name, reservation.Guests,
		reservation.Date.Format("2006-01-02"), reservation.Time)

	utils.RespondJSON(c, http.StatusCreated, reservation)
}

// GetAllReservations lists every reservation, newest first (admin).
func (rc *ReservationController) GetAllReservations(c *gin.Context) {
	var reservations []models.Reservation
	if err := rc.DB.Order("created_at desc").Find(&reservations).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, reservations)
}

// UpdateReservationStatus moves a reservation through its lifecycle
// (admin). Unknown statuses are rejected before anything is written.
func (rc *ReservationController) UpdateReservationStatus(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid reservation id"))
		return
	}

	var body struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if !models.ValidReservationStatus(body.Status) {
		utils.RespondError(c, http.StatusBadRequest,
			fmt.Errorf("invalid status %q, must be one of: pending, confirmed, cancelled, completed", body.Status))
		return
	}

	var reservation models.Reservation
	if err := rc.DB.First(&reservation, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("reservation not found"))
		return
	}

	reservation.Status = body.Status
	if err := rc.DB.Save(&reservation).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, reservation)
}

// parseReservationDate accepts the plain form date and, for older
// clients, a full RFC 3339 timestamp. The result is normalized to
// midnight UTC.
func parseReservationDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t.UTC(), nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	return time.Time{}, errors.New("date must be in YYYY-MM-DD format")
}
