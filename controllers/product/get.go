package productcontroller

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/robowebsolution/glory-home-eg-sub001/models"
)

// maxProductLimit caps the limit query parameter on the public listing.
const maxProductLimit = 100

// GetProducts serves GET /api/products?category=&featured=&limit=.
// The category filter accepts either a UUID (direct id match) or a slug
// derived from the English category name. Errors never surface as null
// list data; callers always get an array.
func GetProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.Model(&models.Product{}).Preload("Category")

		if category := c.Query("category"); category != "" {
			if cid, err := uuid.Parse(category); err == nil {
				query = query.Where("category_id = ?", cid)
			} else {
				cat, err := FindCategoryBySlug(db, category)
				if err == gorm.ErrRecordNotFound {
					// Unknown slug matches nothing.
					c.JSON(http.StatusOK, []models.Product{})
					return
				} else if err != nil {
					log.Printf("❌ Category slug lookup failed: %v", err)
					c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products", "products": []models.Product{}})
					return
				}
				query = query.Where("category_id = ?", cat.ID)
			}
		}

		if isTruthy(c.Query("featured")) {
			query = query.Where("is_featured = ?", true)
		}

		// Non-positive or unparsable limits are ignored.
		if limitStr := c.Query("limit"); limitStr != "" {
			if n, err := strconv.Atoi(limitStr); err == nil && n > 0 {
				if n > maxProductLimit {
					n = maxProductLimit
				}
				query = query.Limit(n)
			}
		}

		products := make([]models.Product, 0)
		if err := query.Order("created_at DESC").Find(&products).Error; err != nil {
			log.Printf("❌ Failed to fetch products: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products", "products": []models.Product{}})
			return
		}

		c.JSON(http.StatusOK, products)
	}
}

// GetProductByID serves GET /api/products/:id.
func GetProductByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product id"})
			return
		}

		var product models.Product
		if err := db.Preload("Category").First(&product, "id = ?", id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}

		c.JSON(http.StatusOK, product)
	}
}

func isTruthy(v string) bool {
	return v == "1" || v == "true" || v == "TRUE" || v == "True"
}
