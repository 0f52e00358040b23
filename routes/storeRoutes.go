package routes

import (
	"github.com/ammafood/amma-api/controllers"
	"github.com/gin-gonic/gin"
)

// StoreRoutes are the public storefront endpoints.
func StoreRoutes(server *gin.Engine) {
	server.GET("/menu", controllers.GetMenu)
	server.GET("/announcements", controllers.GetActiveAnnouncements)
	server.GET("/video", controllers.GetActiveVideo)
	server.GET("/settings/public", controllers.GetPublicSettings)
	server.POST("/order", controllers.CreateOrder)
}
