package controllers

import (
	"net/http"

	"github.com/ammafood/amma-api/services"
	"github.com/gin-gonic/gin"
)

// GetSalesData serves the daily sales chart, cancelled orders excluded.
func GetSalesData(ctx *gin.Context) {
	sales := services.Default.GetSalesData(ctx.Request.Context())
	sendJSONResponse(ctx, http.StatusOK, gin.H{"sales": sales})
}
