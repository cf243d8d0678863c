package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lastortilhas/restaurant-api/models"
	"github.com/lastortilhas/restaurant-api/utils"
	"gorm.io/gorm"
)

type ContactController struct {
	DB *gorm.DB
}

func NewContactController(db *gorm.DB) *ContactController {
	return &ContactController{DB: db}
}

// CreateMessage takes the public contact form.
func (cc *ContactController) CreateMessage(c *gin.Context) {
	var body struct {
		Name    string  `json:"name" binding:"required"`
		Email   string  `json:"email" binding:"required,email"`
		Phone   *string `json:"phone"`
		Message string  `json:"message" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	message := models.ContactMessage{
		Name:    body.Name,
		Email:   body.Email,
		Phone:   body.Phone,
		Message: body.Message,
		Status:  models.MessageNew,
	}
	if err := cc.DB.Create(&message).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusCreated, message)
}

// GetAllMessages lists every message, newest first (admin).
func (cc *ContactController) GetAllMessages(c *gin.Context) {
	var messages []models.ContactMessage
	if err := cc.DB.Order("created_at desc").Find(&messages).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, messages)
}

// UpdateMessageStatus marks a message read or replied (admin).
func (cc *ContactController) UpdateMessageStatus(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid message id"))
		return
	}

	var body struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if !models.ValidMessageStatus(body.Status) {
		utils.RespondError(c, http.StatusBadRequest,
			fmt.Errorf("invalid status %q, must be one of: new, read, replied", body.Status))
		return
	}

	var message models.ContactMessage
	if err := cc.DB.First(&message, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("message not found"))
		return
	}

	message.Status = body.Status
	if err := cc.DB.Save(&message).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, message)
}
