package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/ammafood/amma-api/models"
	"github.com/ammafood/amma-api/services"
	"github.com/gin-gonic/gin"
)

const (
	msgInvalidInput       = "invalid input"
	msgInvalidCredentials = "invalid email or password"
	msgInternalError      = "Internal server error"
)

func sendJSONResponse(ctx *gin.Context, status int, data any) {
	ctx.JSON(status, data)
}

func sendErrorResponse(ctx *gin.Context, status int, message string) {
	sendJSONResponse(ctx, status, gin.H{"message": message})
}

// Login authenticates the dashboard. In remote mode the response carries a
// JWT; in demo mode a server-side session is created instead and the token
// field stays empty.
func Login(ctx *gin.Context) {
	var loginData models.LoginData
	if err := ctx.ShouldBindJSON(&loginData); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	user, token, err := services.Default.LoginAdmin(ctx.Request.Context(), loginData.Email, loginData.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			sendErrorResponse(ctx, http.StatusUnauthorized, msgInvalidCredentials)
			return
		}
		log.Println("Login error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalError)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"user":  user,
		"token": token,
	})
}

func Logout(ctx *gin.Context) {
	if err := services.Default.LogoutAdmin(); err != nil {
		log.Println("Logout error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalError)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Logged out"})
}

// GetSession reports demo-mode session presence.
func GetSession(ctx *gin.Context) {
	user := services.Default.CurrentSession()
	if user == nil {
		sendJSONResponse(ctx, http.StatusOK, gin.H{"user": nil})
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"user": user})
}
