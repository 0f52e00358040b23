package controllers

import (
	"log"
	"net/http"

	"github.com/ammafood/amma-api/models"
	"github.com/ammafood/amma-api/services"
	"github.com/gin-gonic/gin"
)

// GetActiveAnnouncements serves the storefront rotation.
func GetActiveAnnouncements(ctx *gin.Context) {
	items := services.Default.ActiveAnnouncements(ctx.Request.Context())
	sendJSONResponse(ctx, http.StatusOK, gin.H{"announcements": items})
}

func GetAnnouncements(ctx *gin.Context) {
	items := services.Default.GetAnnouncements(ctx.Request.Context())
	sendJSONResponse(ctx, http.StatusOK, gin.H{"announcements": items})
}

func CreateAnnouncement(ctx *gin.Context) {
	var item models.Announcement
	if err := ctx.ShouldBindJSON(&item); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}
	if item.Type != models.AnnouncementText && item.Type != models.AnnouncementImage {
		sendErrorResponse(ctx, http.StatusBadRequest, "Announcement type must be text or image")
		return
	}
	if err := services.Default.SaveAnnouncement(ctx.Request.Context(), &item); err != nil {
		log.Println("Announcement save error:", err)
		sendErrorResponse(ctx, http.StatusInsufficientStorage, err.Error())
		return
	}
	sendJSONResponse(ctx, http.StatusCreated, item)
}

func UpdateAnnouncement(ctx *gin.Context) {
	var item models.Announcement
	if err := ctx.ShouldBindJSON(&item); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}
	item.ID = ctx.Param("id")
	if err := services.Default.SaveAnnouncement(ctx.Request.Context(), &item); err != nil {
		log.Println("Announcement save error:", err)
		sendErrorResponse(ctx, http.StatusInsufficientStorage, err.Error())
		return
	}
	sendJSONResponse(ctx, http.StatusOK, item)
}

func DeleteAnnouncement(ctx *gin.Context) {
	if err := services.Default.DeleteAnnouncement(ctx.Request.Context(), ctx.Param("id")); err != nil {
		log.Println("Announcement delete error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalError)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Announcement deleted"})
}
