package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/ammafood/amma-api/models"
	"github.com/ammafood/amma-api/services"
	"github.com/gin-gonic/gin"
)

// GetPublicSettings exposes only what the storefront needs: the WhatsApp
// hand-off number and the category tabs.
func GetPublicSettings(ctx *gin.Context) {
	settings := services.Default.GetSettings(ctx.Request.Context())
	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"whatsappNumber": settings.WhatsAppNumber,
		"categories":     settings.Categories,
	})
}

func GetSettings(ctx *gin.Context) {
	settings := services.Default.GetSettings(ctx.Request.Context())
	sendJSONResponse(ctx, http.StatusOK, gin.H{"settings": settings})
}

func UpdateSettings(ctx *gin.Context) {
	var settings models.AppSettings
	if err := ctx.ShouldBindJSON(&settings); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}
	if err := services.Default.SaveSettings(ctx.Request.Context(), settings); err != nil {
		log.Println("Settings save error:", err)
		sendErrorResponse(ctx, http.StatusInsufficientStorage, err.Error())
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"settings": services.Default.GetSettings(ctx.Request.Context())})
}

func AddCategory(ctx *gin.Context) {
	var body struct {
		Name string `json:"name" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}
	if err := services.Default.AddCategory(ctx.Request.Context(), body.Name); err != nil {
		if errors.Is(err, services.ErrCategoryExists) {
			sendErrorResponse(ctx, http.StatusConflict, "Category already exists")
			return
		}
		log.Println("Category add error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalError)
		return
	}
	sendJSONResponse(ctx, http.StatusCreated, gin.H{"message": "Category added"})
}

// DeleteCategory removes a category tab. Menu items referencing it keep
// their category string; they simply stop matching any tab.
func DeleteCategory(ctx *gin.Context) {
	if err := services.Default.DeleteCategory(ctx.Request.Context(), ctx.Param("name")); err != nil {
		if errors.Is(err, services.ErrCategoryNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, "Category not found")
			return
		}
		log.Println("Category delete error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalError)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Category deleted"})
}

// RenameCategory renames a tab and cascades the rename to menu items.
func RenameCategory(ctx *gin.Context) {
	var body struct {
		Name string `json:"name" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}
	if err := services.Default.RenameCategory(ctx.Request.Context(), ctx.Param("name"), body.Name); err != nil {
		if errors.Is(err, services.ErrCategoryNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, "Category not found")
			return
		}
		log.Println("Category rename error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalError)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Category renamed"})
}

// ResetLocalData clears every local snapshot; the next reads come back with
// seeds and defaults.
func ResetLocalData(ctx *gin.Context) {
	if err := services.Default.ClearLocalData(); err != nil {
		log.Println("Local data reset error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalError)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Local data cleared"})
}
