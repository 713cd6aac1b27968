package routes

import (
	"ecobin_backend/internal/controllers"
	"ecobin_backend/internal/middleware"

	"github.com/gin-gonic/gin"
)

func AdminRoutes(r *gin.Engine) {
	admin := r.Group("/admin")
	admin.Use(middleware.RequireAuthWithRole("ADMIN"))
	{
		admin.GET("/allUser", controllers.GetAllUsers)
		admin.GET("/getUsers/:userId", controllers.GetUserByID)
		admin.PUT("/update/:userId", controllers.UpdateUser)
		admin.DELETE("/delete/:userId", controllers.DeleteUser)
	}
}
