package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/robowebsolution/glory-home-eg-sub001/auth"
)

// SetupAuthRoutes registers the "/auth/*" session endpoints.
func SetupAuthRoutes(r *gin.Engine, db *gorm.DB) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/login", auth.LoginHandler(db))
		authGroup.POST("/logout", auth.LogoutHandler())
	}
}
