package admincontroller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/robowebsolution/glory-home-eg-sub001/models"
)

// GetAllAdmins lists the allow-list rows.
func GetAllAdmins(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		admins := make([]models.AdminUser, 0)
		if err := db.Order("created_at ASC").Find(&admins).Error; err != nil {
			log.Println("❌ Failed to fetch admins:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch admins", "admins": []models.AdminUser{}})
			return
		}
		c.JSON(http.StatusOK, admins)
	}
}

// Dashboard returns the content counts the admin landing page shows.
func Dashboard(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var products, categories, projects, reviews, customers, videos, unread int64
		queries := []struct {
			dest  *int64
			query *gorm.DB
		}{
			{&products, db.Model(&models.Product{})},
			{&categories, db.Model(&models.Category{})},
			{&projects, db.Model(&models.Project{})},
			{&reviews, db.Model(&models.Review{})},
			{&customers, db.Model(&models.Customer{})},
			{&videos, db.Model(&models.Video{})},
			{&unread, db.Model(&models.ContactMessage{}).Where("is_read = ?", false)},
		}
		for _, q := range queries {
			if err := q.query.Count(q.dest).Error; err != nil {
				log.Println("❌ Dashboard count failed:", err)
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load dashboard"})
				return
			}
		}

		c.JSON(http.StatusOK, gin.H{"ok": true, "counts": gin.H{
			"products":        products,
			"categories":      categories,
			"projects":        projects,
			"reviews":         reviews,
			"customers":       customers,
			"videos":          videos,
			"unread_messages": unread,
		}})
	}
}
