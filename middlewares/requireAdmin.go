package middlewares

import (
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/ammafood/amma-api/services"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// RequireAdmin guards the dashboard routes. With a remote tier configured it
// validates a Bearer JWT and the admin role claim; in local demo mode it
// checks the session token in session storage.
func RequireAdmin() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if services.Default.RemoteEnabled() {
			requireAdminJWT(ctx)
			return
		}

		user := services.Default.CurrentSession()
		if user == nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Admin login required"})
			return
		}
		ctx.Set("user", *user)
		ctx.Next()
	}
}

func requireAdminJWT(ctx *gin.Context) {
	header := ctx.GetHeader("Authorization")
	tokenString, found := strings.CutPrefix(header, "Bearer ")
	if !found || tokenString == "" {
		ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Missing authorization token"})
		return
	}

	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil || !token.Valid {
		ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid or expired token"})
		return
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid token claims"})
		return
	}
	role, ok := claims["role"].(string)
	if !ok || role != "admin" {
		ctx.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Admin access required"})
		return
	}

	ctx.Set("user", claims)
	ctx.Next()
}
