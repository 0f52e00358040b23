package controllers

import (
	"errors"
	"io"
	"log"
	"net/http"

	"github.com/ammafood/amma-api/config"
	"github.com/ammafood/amma-api/models"
	"github.com/ammafood/amma-api/services"
	"github.com/ammafood/amma-api/utils"
	"github.com/gin-gonic/gin"
)

type checkoutRequest struct {
	Customer models.CustomerInfo `json:"customer"`
	Items    []models.CartItem   `json:"items"`
	Platform string              `json:"platform"`
}

// CreateOrder is the storefront checkout. On success the response carries
// the order id and the pre-filled WhatsApp deep link that completes the
// hand-off; there is no server-side order acceptance beyond this.
func CreateOrder(ctx *gin.Context) {
	var req checkoutRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Println("Checkout bind error:", err)
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	order := models.Order{
		Customer: req.Customer,
		Items:    req.Items,
		Platform: req.Platform,
	}

	id, err := services.Default.CreateOrder(ctx.Request.Context(), &order)
	if err != nil {
		var validation *services.ValidationError
		if errors.As(err, &validation) {
			ctx.JSON(http.StatusBadRequest, gin.H{
				"message": "Please correct the highlighted fields",
				"errors":  validation.Fields,
			})
			return
		}
		log.Println("Order create error:", err)
		sendErrorResponse(ctx, http.StatusInsufficientStorage, err.Error())
		return
	}

	settings := services.Default.GetSettings(ctx.Request.Context())
	whatsappURL := utils.BuildWhatsAppLink(
		settings.WhatsAppNumber,
		config.StoreName,
		config.Currency,
		order.Customer,
		order.Items,
		order.TotalAmount,
	)

	sendJSONResponse(ctx, http.StatusCreated, gin.H{
		"orderId":     id,
		"totalAmount": order.TotalAmount,
		"whatsappUrl": whatsappURL,
	})
}

func GetOrders(ctx *gin.Context) {
	orders := services.Default.GetOrders(ctx.Request.Context())
	sendJSONResponse(ctx, http.StatusOK, gin.H{"orders": orders})
}

// StreamOrders pushes the order list over SSE using the data service
// subscription, so the dashboard updates without refreshing.
func StreamOrders(ctx *gin.Context) {
	updates := make(chan []models.Order, 1)
	unsubscribe := services.Default.SubscribeToOrders(func(orders []models.Order) {
		select {
		case updates <- orders:
		default:
		}
	})
	defer unsubscribe()

	ctx.Stream(func(w io.Writer) bool {
		select {
		case <-ctx.Request.Context().Done():
			return false
		case orders := <-updates:
			ctx.SSEvent("orders", orders)
			return true
		}
	})
}

func UpdateOrderStatus(ctx *gin.Context) {
	var statusData struct {
		Status string `json:"status"`
	}
	if err := ctx.ShouldBindJSON(&statusData); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	err := services.Default.UpdateOrderStatus(ctx.Request.Context(), ctx.Param("orderId"), statusData.Status)
	if err != nil {
		var transition *services.InvalidTransitionError
		switch {
		case errors.Is(err, services.ErrOrderNotFound):
			sendErrorResponse(ctx, http.StatusNotFound, "Order not found")
		case errors.Is(err, services.ErrInvalidStatus):
			sendErrorResponse(ctx, http.StatusBadRequest, "Unknown order status")
		case errors.As(err, &transition):
			sendErrorResponse(ctx, http.StatusConflict, transition.Error())
		default:
			log.Println("Order status update error:", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalError)
		}
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Order status updated successfully."})
}
