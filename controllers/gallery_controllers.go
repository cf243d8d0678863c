package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lastortilhas/restaurant-api/models"
	"github.com/lastortilhas/restaurant-api/utils"
	"gorm.io/gorm"
)

type GalleryController struct {
	DB *gorm.DB
}

func NewGalleryController(db *gorm.DB) *GalleryController {
	return &GalleryController{DB: db}
}

// GetGallery lists active images in display order.
func (gc *GalleryController) GetGallery(c *gin.Context) {
	var images []models.GalleryImage
	if err := gc.DB.Where("active = ?", true).Order("display_order asc").Find(&images).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, images)
}

// GetAllGallery lists every image including soft-deleted ones (admin).
func (gc *GalleryController) GetAllGallery(c *gin.Context) {
	var images []models.GalleryImage
	if err := gc.DB.Order("display_order asc").Find(&images).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, images)
}

// CreateImage (admin).
func (gc *GalleryController) CreateImage(c *gin.Context) {
	var body struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		ImageUrl    string `json:"image_url" binding:"required"`
		Category    string `json:"category"`
		Order       int    `json:"order"`
		Featured    bool   `json:"featured"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	image := models.GalleryImage{
		Title:       body.Title,
		Description: body.Description,
		ImageUrl:    body.ImageUrl,
		Category:    body.Category,
		Order:       body.Order,
		Featured:    body.Featured,
		Active:      true,
	}
	if err := gc.DB.Create(&image).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusCreated, image)
}

// UpdateImage (admin).
func (gc *GalleryController) UpdateImage(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid gallery image id"))
		return
	}

	var body struct {
		Title       *string `json:"title"`
		Description *string `json:"description"`
		ImageUrl    *string `json:"image_url"`
		Category    *string `json:"category"`
		Order       *int    `json:"order"`
		Featured    *bool   `json:"featured"`
		Active      *bool   `json:"active"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var image models.GalleryImage
	if err := gc.DB.First(&image, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("gallery image not found"))
		return
	}

	if body.Title != nil {
		image.Title = *body.Title
	}
	if body.Description != nil {
		image.Description = *body.Description
	}
	if body.ImageUrl != nil {
		image.ImageUrl = *body.ImageUrl
	}
	if body.Category != nil {
		image.Category = *body.Category
	}
	if body.Order != nil {
		image.Order = *body.Order
	}
	if body.Featured != nil {
		image.Featured = *body.Featured
	}
	if body.Active != nil {
		image.Active = *body.Active
	}

	if err := gc.DB.Save(&image).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, image)
}

// DeleteImage soft-deletes by flipping the active flag.
func (gc *GalleryController) DeleteImage(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid gallery image id"))
		return
	}

	var image models.GalleryImage
	if err := gc.DB.First(&image, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("gallery image not found"))
		return
	}

	image.Active = false
	if err := gc.DB.Save(&image).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, gin.H{"id": image.ID, "active": false})
}
