package sitecontroller

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
)

// RobotsTXT keeps crawlers out of the admin, API and auth surfaces.
func RobotsTXT() gin.HandlerFunc {
	return func(c *gin.Context) {
		body := "User-agent: *\n" +
			"Disallow: /admin/\n" +
			"Disallow: /api/\n" +
			"Disallow: /auth/\n" +
			"Disallow: /orders\n" +
			"\n" +
			"Sitemap: " + siteURL() + "/sitemap.xml\n"
		c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(body))
	}
}

func siteURL() string {
	if u := os.Getenv("SITE_URL"); u != "" {
		return u
	}
	return "https://gloryhome-eg.com"
}
