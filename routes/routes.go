package routes

import (
	"menucloud-api/handlers"
	"menucloud-api/middleware"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine) {
	// ── Public routes ──────────────────────────────────────────────
	public := r.Group("/api")
	{
		public.POST("/admin/register", handlers.Register)
		public.POST("/admin/login", handlers.Login)

		// Customer-facing menu access, keyed by link id only
		public.GET("/menu/:linkId", handlers.GetPublicMenu)
		public.GET("/menu/qr/:linkId", handlers.GetQRCode)
	}

	// ── Admin routes (bearer token) ────────────────────────────────
	private := r.Group("/api")
	private.Use(middleware.AuthRequired())
	{
		private.GET("/admin/profile", handlers.GetProfile)
		private.PUT("/admin/profile", handlers.UpdateProfile)

		// Menu management
		private.POST("/menu", handlers.CreateMenu)
		private.GET("/menu", handlers.GetMyMenu)
		private.POST("/menu/regenerate-link", handlers.RegenerateLink)

		// Item management
		private.POST("/menu/items", handlers.CreateMenuItem)
		private.GET("/menu/items", handlers.ListMenuItems)
		private.GET("/menu/items/:id", handlers.GetMenuItem)
		private.PUT("/menu/items/:id", handlers.UpdateMenuItem)
		private.DELETE("/menu/items/:id", handlers.DeleteMenuItem)

		// Asset upload (forwarded to the asset host)
		private.POST("/upload", handlers.UploadImage)
	}
}
