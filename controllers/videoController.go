package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/ammafood/amma-api/models"
	"github.com/ammafood/amma-api/services"
	"github.com/gin-gonic/gin"
)

// GetActiveVideo serves the storefront hero video, 404 when none is active.
func GetActiveVideo(ctx *gin.Context) {
	video := services.Default.GetActivePreviewVideo(ctx.Request.Context())
	if video == nil {
		sendErrorResponse(ctx, http.StatusNotFound, "No active preview video")
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"video": video})
}

func GetVideos(ctx *gin.Context) {
	videos := services.Default.GetVideos(ctx.Request.Context())
	sendJSONResponse(ctx, http.StatusOK, gin.H{"videos": videos})
}

func CreateVideo(ctx *gin.Context) {
	var video models.PreviewVideo
	if err := ctx.ShouldBindJSON(&video); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}
	if video.URL == "" {
		sendErrorResponse(ctx, http.StatusBadRequest, "Video URL is required")
		return
	}
	if err := services.Default.SavePreviewVideo(ctx.Request.Context(), &video); err != nil {
		log.Println("Video save error:", err)
		sendErrorResponse(ctx, http.StatusInsufficientStorage, err.Error())
		return
	}
	sendJSONResponse(ctx, http.StatusCreated, video)
}

func UpdateVideo(ctx *gin.Context) {
	var video models.PreviewVideo
	if err := ctx.ShouldBindJSON(&video); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}
	video.ID = ctx.Param("id")
	if err := services.Default.SavePreviewVideo(ctx.Request.Context(), &video); err != nil {
		log.Println("Video save error:", err)
		sendErrorResponse(ctx, http.StatusInsufficientStorage, err.Error())
		return
	}
	sendJSONResponse(ctx, http.StatusOK, video)
}

// ActivateVideo flips one video active and every other video inactive.
func ActivateVideo(ctx *gin.Context) {
	err := services.Default.ActivateVideo(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrVideoNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, "Video not found")
			return
		}
		log.Println("Video activate error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalError)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Video activated"})
}

func DeleteVideo(ctx *gin.Context) {
	if err := services.Default.DeletePreviewVideo(ctx.Request.Context(), ctx.Param("id")); err != nil {
		log.Println("Video delete error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalError)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Video deleted"})
}
