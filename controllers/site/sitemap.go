package sitecontroller

import (
	"encoding/xml"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/robowebsolution/glory-home-eg-sub001/models"
)

// sitemapProductCap bounds the number of product URLs in the sitemap.
const sitemapProductCap = 50

type sitemapURL struct {
	Loc string `xml:"loc"`
}

type urlSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

// Sitemap aggregates the static routes plus live category slugs and up to
// fifty product URLs. Store failures degrade to the static set rather
// than failing the response.
func Sitemap(db *gorm.DB) gin.HandlerFunc {
	staticPaths := []string{"", "/products", "/projects", "/videos", "/contact"}

	return func(c *gin.Context) {
		base := siteURL()

		set := urlSet{XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9"}
		for _, p := range staticPaths {
			set.URLs = append(set.URLs, sitemapURL{Loc: base + p})
		}

		var categories []models.Category
		if err := db.Order("created_at ASC").Find(&categories).Error; err != nil {
			log.Printf("❌ Sitemap category fetch failed: %v", err)
		} else {
			for _, cat := range categories {
				set.URLs = append(set.URLs, sitemapURL{Loc: base + "/category/" + cat.Slug})
			}
		}

		var products []models.Product
		if err := db.Order("created_at DESC").Limit(sitemapProductCap).Find(&products).Error; err != nil {
			log.Printf("❌ Sitemap product fetch failed: %v", err)
		} else {
			for _, p := range products {
				set.URLs = append(set.URLs, sitemapURL{Loc: base + "/products/" + p.ID.String()})
			}
		}

		body, err := xml.MarshalIndent(set, "", "  ")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build sitemap"})
			return
		}
		c.Data(http.StatusOK, "application/xml; charset=utf-8", append([]byte(xml.Header), body...))
	}
}
