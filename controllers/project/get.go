package projectcontroller

import (
	"log"
	"math/rand"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/robowebsolution/glory-home-eg-sub001/models"
)

const (
	defaultProjectLimit = 12
	maxProjectLimit     = 50
)

// preloadImages keeps gallery images in display order; position 0 is the cover.
func preloadImages(db *gorm.DB) *gorm.DB {
	return db.Order("position ASC")
}

// GetProjectCategories serves GET /api/project-categories.
func GetProjectCategories(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		categories := make([]models.ProjectCategory, 0)
		if err := db.Order("created_at ASC").Find(&categories).Error; err != nil {
			log.Printf("❌ Failed to fetch project categories: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "Failed to fetch project categories", "categories": []models.ProjectCategory{}})
			return
		}
		c.JSON(http.StatusOK, gin.H{"ok": true, "categories": categories})
	}
}

// GetProjects serves GET /api/projects?category_id=&limit=&random=.
// With random set, an oversized pool of the newest projects is fetched,
// shuffled, and truncated to the limit, so the carousel varies between
// cache windows without ever duplicating a project id.
func GetProjects(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit := defaultProjectLimit
		if limitStr := c.Query("limit"); limitStr != "" {
			if n, err := strconv.Atoi(limitStr); err == nil && n > 0 {
				limit = n
			}
		}
		if limit > maxProjectLimit {
			limit = maxProjectLimit
		}
		random := c.Query("random") == "1" || c.Query("random") == "true"

		query := db.Model(&models.Project{}).Preload("Images", preloadImages)

		if catStr := c.Query("category_id"); catStr != "" {
			cid, err := uuid.Parse(catStr)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "Invalid category_id", "projects": []models.Project{}})
				return
			}
			query = query.Where("category_id = ?", cid)
		}

		fetch := limit
		if random {
			fetch = 4 * limit
			if fetch > maxProjectLimit {
				fetch = maxProjectLimit
			}
		}

		projects := make([]models.Project, 0)
		if err := query.Order("created_at DESC").Limit(fetch).Find(&projects).Error; err != nil {
			log.Printf("❌ Failed to fetch projects: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "Failed to fetch projects", "projects": []models.Project{}})
			return
		}

		if random {
			rand.Shuffle(len(projects), func(i, j int) {
				projects[i], projects[j] = projects[j], projects[i]
			})
			if len(projects) > limit {
				projects = projects[:limit]
			}
		}

		c.JSON(http.StatusOK, gin.H{"ok": true, "projects": projects})
	}
}

// GetProjectByID serves GET /api/projects/:id.
func GetProjectByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "Invalid project id"})
			return
		}

		var project models.Project
		if err := db.Preload("Images", preloadImages).First(&project, "id = ?", id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "Project not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"ok": true, "project": project})
	}
}
