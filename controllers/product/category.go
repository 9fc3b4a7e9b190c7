package productcontroller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/robowebsolution/glory-home-eg-sub001/models"
)

// FindCategoryBySlug resolves a computed slug to a category row. Slugs are
// derived from English names at read time, so the scan walks categories
// oldest-first and the first match wins on a collision.
func FindCategoryBySlug(db *gorm.DB, slug string) (*models.Category, error) {
	var categories []models.Category
	if err := db.Order("created_at ASC").Find(&categories).Error; err != nil {
		return nil, err
	}
	for i := range categories {
		if categories[i].Slug == slug {
			return &categories[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

// GetAllCategories serves GET /api/categories.
func GetAllCategories(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		categories := make([]models.Category, 0)
		if err := db.Order("created_at ASC").Find(&categories).Error; err != nil {
			log.Printf("❌ Failed to fetch categories: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch categories", "categories": []models.Category{}})
			return
		}
		c.JSON(http.StatusOK, categories)
	}
}

// GetCategoryBySlug serves GET /api/categories/:slug.
func GetCategoryBySlug(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		cat, err := FindCategoryBySlug(db, c.Param("slug"))
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
			return
		} else if err != nil {
			log.Printf("❌ Failed to fetch category: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch category"})
			return
		}
		c.JSON(http.StatusOK, cat)
	}
}

type categoryRequest struct {
	ARName        string `json:"name_ar" binding:"required"`
	EName         string `json:"name_en" binding:"required"`
	ARDescription string `json:"description_ar"`
	EDescription  string `json:"description_en"`
	Image         string `json:"image_url" binding:"omitempty,url"`
}

// CreateCategory creates a commerce category (admin only).
func CreateCategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req categoryRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "name_ar and name_en are required"})
			return
		}

		category := models.Category{
			ARName:        req.ARName,
			EName:         req.EName,
			ARDescription: req.ARDescription,
			EDescription:  req.EDescription,
			Image:         req.Image,
		}
		if err := db.Create(&category).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create category"})
			return
		}

		category.Slug = models.Slugify(category.EName)
		c.JSON(http.StatusCreated, category)
	}
}

// UpdateCategory updates name/description/image fields (admin only).
func UpdateCategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category id"})
			return
		}

		var category models.Category
		if err := db.First(&category, "id = ?", id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
			return
		}

		var req categoryRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "name_ar and name_en are required"})
			return
		}

		category.ARName = req.ARName
		category.EName = req.EName
		category.ARDescription = req.ARDescription
		category.EDescription = req.EDescription
		category.Image = req.Image

		if err := db.Save(&category).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update category"})
			return
		}

		category.Slug = models.Slugify(category.EName)
		c.JSON(http.StatusOK, category)
	}
}

// DeleteCategory removes a category and detaches its products inside a
// transaction so the catalog never references a missing category.
func DeleteCategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category id"})
			return
		}

		var category models.Category
		if err := db.First(&category, "id = ?", id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
			return
		}

		tx := db.Begin()
		if tx.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to start transaction"})
			return
		}

		if err := tx.Model(&models.Product{}).
			Where("category_id = ?", category.ID).
			Update("category_id", nil).Error; err != nil {
			tx.Rollback()
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to detach products"})
			return
		}

		if err := tx.Delete(&category).Error; err != nil {
			tx.Rollback()
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete category"})
			return
		}

		if err := tx.Commit().Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to commit transaction"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Category deleted successfully"})
	}
}
