package middleware

import (
	"fmt"

	"github.com/gin-gonic/gin"
)

// CacheFor stamps the fixed-window edge cache header on public read
// endpoints. Within the window repeated requests are served from the edge.
func CacheFor(seconds int) gin.HandlerFunc {
	header := fmt.Sprintf("public, s-maxage=%d, stale-while-revalidate=60", seconds)
	return func(c *gin.Context) {
		c.Header("Cache-Control", header)
		c.Next()
	}
}
