package routes

import (
	"ecobin_backend/internal/controllers"
	"ecobin_backend/internal/middleware"

	"github.com/gin-gonic/gin"
)

// ProfileRoutes covers the self-service endpoints open to any
// authenticated user regardless of role.
func ProfileRoutes(r *gin.Engine) {
	profile := r.Group("/adminuser")
	profile.Use(middleware.RequireAuth())
	{
		profile.GET("/get-profile", controllers.GetMyProfile)
	}
}
