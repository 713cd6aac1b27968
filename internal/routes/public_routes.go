package routes

import (
	"ecobin_backend/internal/controllers"

	"github.com/gin-gonic/gin"
)

// PublicRoutes registers the unauthenticated CRUD surface consumed by
// the frontend. Paths follow the frontend's existing API contract.
func PublicRoutes(r *gin.Engine) {
	public := r.Group("/public")
	{
		// Collection schedules (multipart form + truck image)
		public.POST("/addSchedule", controllers.AddSchedule)
		public.GET("/getAllSchedule", controllers.GetAllSchedules)
		public.GET("/getById/:id", controllers.GetScheduleByID)
		public.PUT("/updateSchedule/:id", controllers.UpdateSchedule)
		public.DELETE("/deleteSchedule/:id", controllers.DeleteSchedule)

		// Contact messages (JSON body)
		public.POST("/addContact", controllers.AddContact)
		public.GET("/allContact", controllers.GetAllContacts)
		public.GET("/contactId/:id", controllers.GetContactByID)
		public.PUT("/updateContact/:id", controllers.UpdateContact)
		public.DELETE("/deleteContact/:id", controllers.DeleteContact)

		// Pickup requests (JSON body)
		public.POST("/addRequest", controllers.AddPickupRequest)
		public.GET("/getAllRequest", controllers.GetAllPickupRequests)
		public.GET("/getIdByRequest/:id", controllers.GetPickupRequestByID)
		public.PUT("/updateWasteRequest/:id", controllers.UpdatePickupRequest)
		public.DELETE("/deleteWasteRequest/:id", controllers.DeletePickupRequest)

		// Waste reports (multipart form + waste image)
		public.POST("/addReporting", controllers.AddReport)
		public.GET("/getAllReport", controllers.GetAllReports)
		public.GET("/getReportById/:id", controllers.GetReportByID)
		public.PUT("/updateReport/:id", controllers.UpdateReport)
		public.DELETE("/deleteReport/:id", controllers.DeleteReport)

		// Detection intake and classification stub
		public.POST("/detections", controllers.SaveDetection)
		public.POST("/classify", controllers.ClassifyWaste)
	}
}
