package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes is the single entry-point that wires up the public API,
// auth endpoints and the guarded admin surface.
func SetupRoutes(r *gin.Engine, db *gorm.DB) {
	// Public catalog/content API (edge cached)
	SetupPublicRoutes(r, db)

	// Session endpoints (no middleware)
	SetupAuthRoutes(r, db)

	// Admin back office (session + allow-list guarded)
	SetupAdminRoutes(r, db)
}
