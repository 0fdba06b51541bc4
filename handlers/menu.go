package handlers

import (
	"net/http"

	"menucloud-api/config"
	"menucloud-api/menulink"
	"menucloud-api/middleware"
	"menucloud-api/models"
	"menucloud-api/pkg/respond"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CreateMenuRequest struct {
	RestaurantName string `json:"restaurant_name" binding:"required"`
}

func menuResponse(menu *models.Menu) gin.H {
	return gin.H{
		"id":              menu.ID,
		"admin_id":        menu.AdminID,
		"restaurant_name": menu.RestaurantName,
		"link_id":         menu.LinkID,
	}
}

// linkIDTaken checks a candidate link id against existing menus.
func linkIDTaken(id string) (bool, error) {
	var count int64
	if err := config.DB.Model(&models.Menu{}).Where("link_id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// CreateMenu creates the one menu an admin may own
func CreateMenu(c *gin.Context) {
	admin := middleware.CurrentAdmin(c)

	var req CreateMenuRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.BadRequest(c, err.Error())
		return
	}

	var existing models.Menu
	if err := config.DB.Where("admin_id = ?", admin.ID).First(&existing).Error; err == nil {
		respond.Conflict(c, "Menu already exists for this admin")
		return
	}

	linkID, err := menulink.GenerateUnique(linkIDTaken)
	if err != nil {
		respond.ServerError(c, "Failed to generate menu link")
		return
	}

	menu := models.Menu{
		AdminID:        admin.ID,
		RestaurantName: req.RestaurantName,
		LinkID:         linkID,
	}
	if err := config.DB.Create(&menu).Error; err != nil {
		if isUniqueViolation(err) {
			respond.Conflict(c, "Menu already exists for this admin")
			return
		}
		respond.ServerError(c, "Failed to create menu")
		return
	}

	c.JSON(http.StatusCreated, menuResponse(&menu))
}

// GetMyMenu fetches the menu owned by the logged-in admin
func GetMyMenu(c *gin.Context) {
	admin := middleware.CurrentAdmin(c)

	var menu models.Menu
	if err := config.DB.Where("admin_id = ?", admin.ID).First(&menu).Error; err != nil {
		respond.NotFound(c, "Menu not found for this admin")
		return
	}
	c.JSON(http.StatusOK, menuResponse(&menu))
}

// RegenerateLink replaces the menu's public link id. The old id stops
// resolving the moment the update commits; any printed QR code against it is
// dead for good.
func RegenerateLink(c *gin.Context) {
	admin := middleware.CurrentAdmin(c)

	var menu models.Menu
	if err := config.DB.Where("admin_id = ?", admin.ID).First(&menu).Error; err != nil {
		respond.NotFound(c, "Menu not found for this admin")
		return
	}

	linkID, err := menulink.GenerateUnique(linkIDTaken)
	if err != nil {
		respond.ServerError(c, "Failed to generate menu link")
		return
	}

	menu.LinkID = linkID
	if err := config.DB.Save(&menu).Error; err != nil {
		respond.ServerError(c, "Failed to regenerate menu link")
		return
	}

	c.JSON(http.StatusOK, menuResponse(&menu))
}

// ownedMenu loads the admin's menu, or nil when none exists.
func ownedMenu(db *gorm.DB, adminID uint) *models.Menu {
	var menu models.Menu
	if err := db.Where("admin_id = ?", adminID).First(&menu).Error; err != nil {
		return nil
	}
	return &menu
}
