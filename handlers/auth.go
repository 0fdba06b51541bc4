package handlers

import (
	"net/http"

	"menucloud-api/config"
	"menucloud-api/middleware"
	"menucloud-api/models"
	"menucloud-api/pkg/respond"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

type RegisterRequest struct {
	Name           string `json:"name" binding:"required"`
	Email          string `json:"email" binding:"required,email"`
	Password       string `json:"password" binding:"required,min=6"`
	RestaurantName string `json:"restaurant_name"`
	Phone          string `json:"phone"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func profileResponse(admin *models.Admin, token string) gin.H {
	return gin.H{
		"id":              admin.ID,
		"name":            admin.Name,
		"email":           admin.Email,
		"restaurant_name": admin.RestaurantName,
		"phone":           admin.Phone,
		"token":           token,
	}
}

// Register creates a new admin account
func Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.BadRequest(c, err.Error())
		return
	}

	// Check email uniqueness; the unique index is the authority if two
	// registrations race past this read.
	var existing models.Admin
	if result := config.DB.Where("email = ?", req.Email).First(&existing); result.Error == nil {
		respond.Conflict(c, "Email already registered")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		respond.ServerError(c, "Failed to hash password")
		return
	}

	admin := models.Admin{
		Name:           req.Name,
		Email:          req.Email,
		PasswordHash:   string(hash),
		RestaurantName: req.RestaurantName,
		Phone:          req.Phone,
	}

	if err := config.DB.Create(&admin).Error; err != nil {
		if isUniqueViolation(err) {
			respond.Conflict(c, "Email already registered")
			return
		}
		respond.ServerError(c, "Failed to create admin")
		return
	}

	token, err := middleware.GenerateToken(&admin)
	if err != nil {
		respond.ServerError(c, "Failed to generate token")
		return
	}

	c.JSON(http.StatusCreated, profileResponse(&admin, token))
}

// Login authenticates an admin and returns a JWT
func Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.BadRequest(c, err.Error())
		return
	}

	var admin models.Admin
	if err := config.DB.Where("email = ?", req.Email).First(&admin).Error; err != nil {
		respond.Unauthorized(c, "Invalid email or password")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(req.Password)); err != nil {
		respond.Unauthorized(c, "Invalid email or password")
		return
	}

	token, err := middleware.GenerateToken(&admin)
	if err != nil {
		respond.ServerError(c, "Failed to generate token")
		return
	}

	c.JSON(http.StatusOK, profileResponse(&admin, token))
}

// GetProfile returns the authenticated admin's profile
func GetProfile(c *gin.Context) {
	admin := middleware.CurrentAdmin(c)
	c.JSON(http.StatusOK, gin.H{
		"id":              admin.ID,
		"name":            admin.Name,
		"email":           admin.Email,
		"restaurant_name": admin.RestaurantName,
		"phone":           admin.Phone,
	})
}

type UpdateProfileRequest struct {
	Name           string `json:"name"`
	Email          string `json:"email" binding:"omitempty,email"`
	Password       string `json:"password" binding:"omitempty,min=6"`
	RestaurantName string `json:"restaurant_name"`
	Phone          string `json:"phone"`
}

// UpdateProfile overwrites supplied profile fields; the password is only
// rehashed when a new one arrives. A fresh token is returned because the
// email baked into the old one may have changed.
func UpdateProfile(c *gin.Context) {
	admin := middleware.CurrentAdmin(c)

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.BadRequest(c, err.Error())
		return
	}

	if req.Name != "" {
		admin.Name = req.Name
	}
	if req.Email != "" {
		admin.Email = req.Email
	}
	if req.RestaurantName != "" {
		admin.RestaurantName = req.RestaurantName
	}
	if req.Phone != "" {
		admin.Phone = req.Phone
	}
	if req.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			respond.ServerError(c, "Failed to hash password")
			return
		}
		admin.PasswordHash = string(hash)
	}

	if err := config.DB.Save(admin).Error; err != nil {
		if isUniqueViolation(err) {
			respond.Conflict(c, "Email already registered")
			return
		}
		respond.ServerError(c, "Failed to update profile")
		return
	}

	token, err := middleware.GenerateToken(admin)
	if err != nil {
		respond.ServerError(c, "Failed to generate token")
		return
	}

	c.JSON(http.StatusOK, profileResponse(admin, token))
}
