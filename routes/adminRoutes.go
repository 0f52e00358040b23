package routes

import (
	"github.com/ammafood/amma-api/controllers"
	"github.com/ammafood/amma-api/middlewares"
	"github.com/gin-gonic/gin"
)

func AdminRoutes(server *gin.Engine) {
	admin := server.Group("/admin", middlewares.RequireAdmin())
	{
		admin.GET("/menu", controllers.GetMenu)
		admin.POST("/menu", controllers.CreateMenuItem)
		admin.PUT("/menu/:id", controllers.UpdateMenuItem)
		admin.DELETE("/menu/:id", controllers.DeleteMenuItem)
		admin.POST("/menu/seed", controllers.SeedMenu)
		admin.POST("/menu/image", controllers.UploadMenuImage)

		admin.GET("/orders", controllers.GetOrders)
		admin.GET("/orders/stream", controllers.StreamOrders)
		admin.PATCH("/orders/:orderId/status", controllers.UpdateOrderStatus)

		admin.GET("/announcements", controllers.GetAnnouncements)
		admin.POST("/announcements", controllers.CreateAnnouncement)
		admin.PUT("/announcements/:id", controllers.UpdateAnnouncement)
		admin.DELETE("/announcements/:id", controllers.DeleteAnnouncement)

		admin.GET("/videos", controllers.GetVideos)
		admin.POST("/videos", controllers.CreateVideo)
		admin.PUT("/videos/:id", controllers.UpdateVideo)
		admin.POST("/videos/:id/activate", controllers.ActivateVideo)
		admin.DELETE("/videos/:id", controllers.DeleteVideo)

		admin.GET("/settings", controllers.GetSettings)
		admin.PUT("/settings", controllers.UpdateSettings)
		admin.POST("/settings/categories", controllers.AddCategory)
		admin.PATCH("/settings/categories/:name", controllers.RenameCategory)
		admin.DELETE("/settings/categories/:name", controllers.DeleteCategory)

		admin.GET("/analytics/sales", controllers.GetSalesData)
		admin.POST("/reset", controllers.ResetLocalData)
	}
}
