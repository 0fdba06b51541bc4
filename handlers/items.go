package handlers

import (
	"net/http"

	"menucloud-api/config"
	"menucloud-api/middleware"
	"menucloud-api/models"
	"menucloud-api/pkg/respond"

	"github.com/gin-gonic/gin"
)

type CreateMenuItemRequest struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description"`
	Price       float64  `json:"price" binding:"gte=0"`
	Category    string   `json:"category"`
	Image       string   `json:"image"`
	Tags        []string `json:"tags"`
	IsAvailable *bool    `json:"is_available"`
}

// CreateMenuItem adds a new item to the admin's menu
func CreateMenuItem(c *gin.Context) {
	admin := middleware.CurrentAdmin(c)

	menu := ownedMenu(config.DB, admin.ID)
	if menu == nil {
		respond.NotFound(c, "Menu not found for this admin. Create a menu first.")
		return
	}

	var req CreateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.BadRequest(c, err.Error())
		return
	}

	available := true
	if req.IsAvailable != nil {
		available = *req.IsAvailable
	}

	item := models.MenuItem{
		MenuID:      menu.ID,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		Image:       req.Image,
		Tags:        models.Tags(req.Tags),
		IsAvailable: available,
	}
	if err := config.DB.Create(&item).Error; err != nil {
		respond.ServerError(c, "Failed to add menu item")
		return
	}
	c.JSON(http.StatusCreated, item)
}

// ListMenuItems returns every item on the admin's menu
func ListMenuItems(c *gin.Context) {
	admin := middleware.CurrentAdmin(c)

	menu := ownedMenu(config.DB, admin.ID)
	if menu == nil {
		respond.NotFound(c, "Menu not found for this admin")
		return
	}

	items := []models.MenuItem{}
	if err := config.DB.Where("menu_id = ?", menu.ID).Find(&items).Error; err != nil {
		respond.ServerError(c, "Failed to list menu items")
		return
	}
	c.JSON(http.StatusOK, items)
}

// resolveOwnedItem fetches the item by id, then checks it sits on the
// caller's menu — existence strictly before ownership, so probing a missing
// id reads 404 and probing someone else's reads 403. A non-nil return means
// the response has been written already.
func resolveOwnedItem(c *gin.Context) *models.MenuItem {
	admin := middleware.CurrentAdmin(c)

	var item models.MenuItem
	if err := config.DB.First(&item, c.Param("id")).Error; err != nil {
		respond.NotFound(c, "Menu item not found")
		return nil
	}

	menu := ownedMenu(config.DB, admin.ID)
	if menu == nil || item.MenuID != menu.ID {
		respond.Forbidden(c, "Not authorized to access this menu item")
		return nil
	}
	return &item
}

// GetMenuItem returns a single item owned by the caller
func GetMenuItem(c *gin.Context) {
	item := resolveOwnedItem(c)
	if item == nil {
		return
	}
	c.JSON(http.StatusOK, item)
}

type UpdateMenuItemRequest struct {
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	Price       *float64  `json:"price" binding:"omitempty,gte=0"`
	Category    *string   `json:"category"`
	Image       *string   `json:"image"`
	Tags        *[]string `json:"tags"`
	IsAvailable *bool     `json:"is_available"`
}

// UpdateMenuItem partially updates an item: absent fields keep their values
func UpdateMenuItem(c *gin.Context) {
	item := resolveOwnedItem(c)
	if item == nil {
		return
	}

	var req UpdateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.BadRequest(c, err.Error())
		return
	}

	if req.Name != "" {
		item.Name = req.Name
	}
	if req.Description != nil {
		item.Description = *req.Description
	}
	if req.Price != nil {
		item.Price = *req.Price
	}
	if req.Category != nil {
		item.Category = *req.Category
	}
	if req.Image != nil {
		item.Image = *req.Image
	}
	if req.Tags != nil {
		item.Tags = models.Tags(*req.Tags)
	}
	if req.IsAvailable != nil {
		item.IsAvailable = *req.IsAvailable
	}

	if err := config.DB.Save(item).Error; err != nil {
		respond.ServerError(c, "Failed to update menu item")
		return
	}
	c.JSON(http.StatusOK, item)
}

// DeleteMenuItem removes an item from the caller's menu
func DeleteMenuItem(c *gin.Context) {
	item := resolveOwnedItem(c)
	if item == nil {
		return
	}

	if err := config.DB.Delete(item).Error; err != nil {
		respond.ServerError(c, "Failed to delete menu item")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Menu item removed"})
}
