package middleware

import (
	"strings"
	"time"

	"menucloud-api/config"
	"menucloud-api/models"
	"menucloud-api/pkg/respond"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const adminContextKey = "currentAdmin"

type Claims struct {
	AdminID uint   `json:"admin_id"`
	Email   string `json:"email"`
	jwt.RegisteredClaims
}

// GenerateToken creates a signed JWT for a given admin
func GenerateToken(admin *models.Admin) (string, error) {
	cfg := config.Load()
	claims := Claims{
		AdminID: admin.ID,
		Email:   admin.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(cfg.JWTTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(cfg.JWTSecret)
}

// AuthRequired validates the bearer token, loads the admin it names, and
// attaches the record to the request context. A token whose admin no longer
// exists is as unauthorized as no token at all.
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			respond.Unauthorized(c, "Authorization header required (Bearer <token>)")
			c.Abort()
			return
		}
		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		claims := &Claims{}
		token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
			return config.Load().JWTSecret, nil
		})
		if err != nil || !token.Valid {
			respond.Unauthorized(c, "Invalid or expired token")
			c.Abort()
			return
		}

		var admin models.Admin
		if err := config.DB.First(&admin, claims.AdminID).Error; err != nil {
			respond.Unauthorized(c, "Admin account no longer exists")
			c.Abort()
			return
		}

		c.Set(adminContextKey, &admin)
		c.Next()
	}
}

// CurrentAdmin extracts the authenticated admin attached by AuthRequired.
func CurrentAdmin(c *gin.Context) *models.Admin {
	val, _ := c.Get(adminContextKey)
	return val.(*models.Admin)
}
