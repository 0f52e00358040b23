package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func GetHome(ctx *gin.Context) {
	message := `Welcome to the Amma Food Center API ❤️.

The following are the endpoints for this API:

STOREFRONT
- GET "/menu" - Browse the menu
- GET "/announcements" - Active announcements
- GET "/video" - Active preview video
- GET "/settings/public" - WhatsApp number and categories
- POST "/order" - Place an order (returns the WhatsApp hand-off link)

AUTH
- POST "/auth/login" - Admin login
- POST "/auth/logout" - Admin logout
- GET "/auth/session" - Current session

ADMIN (requires login)
- GET/POST "/admin/menu", PUT/DELETE "/admin/menu/:id"
- POST "/admin/menu/seed" - Restore the seed menu
- POST "/admin/menu/image" - Upload and resize a menu image
- GET "/admin/orders", GET "/admin/orders/stream"
- PATCH "/admin/orders/:orderId/status" - Move an order along its lifecycle
- GET/POST "/admin/announcements", PUT/DELETE "/admin/announcements/:id"
- GET/POST "/admin/videos", PUT/DELETE "/admin/videos/:id"
- POST "/admin/videos/:id/activate" - Activate one video, deactivate the rest
- GET/PUT "/admin/settings", category management under "/admin/settings/categories"
- GET "/admin/analytics/sales" - Daily sales buckets
- POST "/admin/reset" - Clear all local data`

	ctx.JSON(http.StatusOK, gin.H{
		"message": message,
	})
}
