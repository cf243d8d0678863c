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

type MenuItemController struct {
	DB *gorm.DB
}

func NewMenuItemController(db *gorm.DB) *MenuItemController {
	return &MenuItemController{DB: db}
}

// GetMenuItems lists active items in display order, optionally
// filtered by ?categoryId=.
func (mc *MenuItemController) GetMenuItems(c *gin.Context) {
	query := mc.DB.Preload("Category").
		Where("active = ?", true).
		Order("display_order asc")

	if categoryID := c.Query("categoryId"); categoryID != "" {
		id, err := strconv.Atoi(categoryID)
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, errors.New("invalid categoryId"))
			return
		}
		query = query.Where("category_id = ?", id)
	}

	var items []models.MenuItem
	if err := query.Find(&items).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, items)
}

// GetAllMenuItems lists every item including soft-deleted ones (admin).
func (mc *MenuItemController) GetAllMenuItems(c *gin.Context) {
	var items []models.MenuItem
	if err := mc.DB.Preload("Category").Order("display_order asc").Find(&items).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, items)
}

// CreateMenuItem (admin).
func (mc *MenuItemController) CreateMenuItem(c *gin.Context) {
	// Price is a pointer so a zero price survives the required check.
	var body struct {
		CategoryID    uint     `json:"category_id" binding:"required"`
		Name          string   `json:"name" binding:"required"`
		NameEn        string   `json:"name_en"`
		Description   string   `json:"description"`
		DescriptionEn string   `json:"description_en"`
		Price         *float64 `json:"price" binding:"required,gte=0"`
		ImageUrl      *string  `json:"image_url"`
		Featured      bool     `json:"featured"`
		Order         int      `json:"order"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	// The category must exist before the item may reference it.
	var category models.MenuCategory
	if err := mc.DB.First(&category, body.CategoryID).Error; err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("category_id does not reference an existing category"))
		return
	}

	item := models.MenuItem{
		CategoryID:    body.CategoryID,
		Name:          body.Name,
		NameEn:        body.NameEn,
		Description:   body.Description,
		DescriptionEn: body.DescriptionEn,
		Price:         *body.Price,
		ImageUrl:      body.ImageUrl,
		Active:        true,
		Featured:      body.Featured,
		Order:         body.Order,
	}
	if err := mc.DB.Create(&item).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	item.Category = category

	utils.RespondJSON(c, http.StatusCreated, item)
}

// UpdateMenuItem (admin).
func (mc *MenuItemController) UpdateMenuItem(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid menu item id"))
		return
	}

	var body struct {
		CategoryID    *uint    `json:"category_id"`
		Name          *string  `json:"name"`
		NameEn        *string  `json:"name_en"`
		Description   *string  `json:"description"`
		DescriptionEn *string  `json:"description_en"`
		Price         *float64 `json:"price"`
		ImageUrl      *string  `json:"image_url"`
		Active        *bool    `json:"active"`
		Featured      *bool    `json:"featured"`
		Order         *int     `json:"order"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var item models.MenuItem
	if err := mc.DB.First(&item, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("menu item not found"))
		return
	}

	if body.CategoryID != nil {
		var category models.MenuCategory
		if err := mc.DB.First(&category, *body.CategoryID).Error; err != nil {
			utils.RespondError(c, http.StatusBadRequest, errors.New("category_id does not reference an existing category"))
			return
		}
		item.CategoryID = *body.CategoryID
	}
	if body.Name != nil {
		item.Name = *body.Name
	}
	if body.NameEn != nil {
		item.NameEn = *body.NameEn
	}
	if body.Description != nil {
		item.Description = *body.Description
	}
	if body.DescriptionEn != nil {
		item.DescriptionEn = *body.DescriptionEn
	}
	if body.Price != nil {
		if *body.Price < 0 {
			utils.RespondError(c, http.StatusBadRequest, errors.New("price must not be negative"))
			return
		}
		item.Price = *body.Price
	}
	if body.ImageUrl != nil {
		item.ImageUrl = body.ImageUrl
	}
	if body.Active != nil {
		item.Active = *body.Active
	}
	if body.Featured != nil {
		item.Featured = *body.Featured
	}
	if body.Order != nil {
		item.Order = *body.Order
	}

	if err := mc.DB.Save(&item).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, item)
}

// DeleteMenuItem flips the active flag; the row stays in storage and
// disappears from the public listing.
func (mc *MenuItemController) DeleteMenuItem(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid menu item id"))
		return
	}

	var item models.MenuItem
	if err := mc.DB.First(&item, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("menu item not found"))
		return
	}

	item.Active = false
	if err := mc.DB.Save(&item).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, gin.H{"id": item.ID, "active": false})
}
