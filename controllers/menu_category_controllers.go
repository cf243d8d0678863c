package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/lastortilhas/restaurant-api/models"
	"github.com/lastortilhas/restaurant-api/utils"
	"gorm.io/gorm"
)

type MenuCategoryController struct {
	DB *gorm.DB
}

func NewMenuCategoryController(db *gorm.DB) *MenuCategoryController {
	return &MenuCategoryController{DB: db}
}

// GetAllCategories lists categories in display order.
func (mcc *MenuCategoryController) GetAllCategories(c *gin.Context) {
	var categories []models.MenuCategory
	if err := mcc.DB.Order("display_order asc").Find(&categories).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, categories)
}

// CreateCategory (admin).
func (mcc *MenuCategoryController) CreateCategory(c *gin.Context) {
	var body struct {
		Name        string `json:"name" binding:"required"`
		NameEn      string `json:"name_en"`
		Slug        string `json:"slug"`
		Description string `json:"description"`
		Order       int    `json:"order"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if body.Slug == "" {
		body.Slug = slugify(body.Name)
	}

	category := models.MenuCategory{
		Name:        body.Name,
		NameEn:      body.NameEn,
		Slug:        body.Slug,
		Description: body.Description,
		Order:       body.Order,
	}
	if err := mcc.DB.Create(&category).Error; err != nil {
		utils.RespondError(c, http.StatusConflict, errors.New("category slug already exists"))
		return
	}

	utils.RespondJSON(c, http.StatusCreated, category)
}

// UpdateCategory (admin).
func (mcc *MenuCategoryController) UpdateCategory(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid category id"))
		return
	}

	var body struct {
		Name        *string `json:"name"`
		NameEn      *string `json:"name_en"`
		Slug        *string `json:"slug"`
		Description *string `json:"description"`
		Order       *int    `json:"order"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var category models.MenuCategory
	if err := mcc.DB.First(&category, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("category not found"))
		return
	}

	if body.Name != nil {
		category.Name = *body.Name
	}
	if body.NameEn != nil {
		category.NameEn = *body.NameEn
	}
	if body.Slug != nil {
		category.Slug = *body.Slug
	}
	if body.Description != nil {
		category.Description = *body.Description
	}
	if body.Order != nil {
		category.Order = *body.Order
	}

	if err := mcc.DB.Save(&category).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, category)
}

// Category deletion is deliberately not exposed: menu items reference
// categories and would be orphaned.

func slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '_':
			b.WriteRune('-')
		}
	}
	return strings.Trim(b.String(), "-")
}
