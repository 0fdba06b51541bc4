package handlers

import (
	"net/http"

	"menucloud-api/config"
	"menucloud-api/menulink"
	"menucloud-api/models"
	"menucloud-api/pkg/respond"

	"github.com/gin-gonic/gin"
)

// GetPublicMenu returns a menu by its public link id — no auth, no admin
// identity anywhere in the response. Unavailable items are included with
// their flag intact so the client can show them as sold out.
func GetPublicMenu(c *gin.Context) {
	var menu models.Menu
	if err := config.DB.Where("link_id = ?", c.Param("linkId")).First(&menu).Error; err != nil {
		respond.NotFound(c, "Menu not found")
		return
	}

	items := []models.MenuItem{}
	if err := config.DB.Where("menu_id = ?", menu.ID).Find(&items).Error; err != nil {
		respond.ServerError(c, "Failed to load menu items")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"restaurantName": menu.RestaurantName,
		"menuItems":      items,
	})
}

// GetQRCode renders the public menu URL for a link id as a PNG data URI.
// The id is not looked up; a code for a dead link scans to a 404 page.
func GetQRCode(c *gin.Context) {
	dataURI, err := menulink.QRDataURI(config.Load().PublicBaseURL, c.Param("linkId"))
	if err != nil {
		respond.ServerError(c, "Error generating QR code")
		return
	}
	c.JSON(http.StatusOK, gin.H{"qrCode": dataURI})
}
