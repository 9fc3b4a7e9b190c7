package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/robowebsolution/glory-home-eg-sub001/auth"
)

// RequireAdmin gates every /admin/* route except the login page. A request
// passes only when it carries a verifiable session token whose user id
// exists in the admin allow-list; everything else fails closed.
func RequireAdmin(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/admin/login") {
			c.Next()
			return
		}

		token := auth.TokenFromRequest(c)
		if token == "" {
			rejectAdmin(c)
			return
		}

		userID, err := auth.VerifySession(token)
		if err != nil {
			rejectAdmin(c)
			return
		}

		if !auth.IsAdmin(db, userID) {
			rejectAdmin(c)
			return
		}

		c.Set("admin_id", userID.String())
		c.Next()
	}
}

// rejectAdmin redirects browsers to the login page and answers API clients
// with a bare 401. Non-admins get the same treatment as anonymous callers.
func rejectAdmin(c *gin.Context) {
	if strings.Contains(c.GetHeader("Accept"), "text/html") {
		c.Redirect(http.StatusTemporaryRedirect, "/admin/login")
	} else {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Admin session required"})
	}
	c.Abort()
}
