package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/robowebsolution/glory-home-eg-sub001/models"
)

type productRequest struct {
	ARName        string     `json:"name_ar"`
	EName         string     `json:"name_en" binding:"required"`
	ARDescription string     `json:"description_ar"`
	EDescription  string     `json:"description_en"`
	Price         float64    `json:"price" binding:"required,gt=0"`
	SalePrice     *float64   `json:"sale_price" binding:"omitempty,gt=0"`
	InStock       *bool      `json:"in_stock"`
	IsFeatured    bool       `json:"is_featured"`
	IsNew         bool       `json:"is_new"`
	CategoryID    *uuid.UUID `json:"category_id"`
	Image         string     `json:"image_url" binding:"required,url"`
	VideoURL      string     `json:"video_url" binding:"omitempty,url"`
	ExtraImages   []string   `json:"additional_images" binding:"omitempty,dive,url"`
	Tags          []string   `json:"tags"`
	WidthCM       float64    `json:"width_cm" binding:"omitempty,gte=0"`
	HeightCM      float64    `json:"height_cm" binding:"omitempty,gte=0"`
	DepthCM       float64    `json:"depth_cm" binding:"omitempty,gte=0"`
}

func (req *productRequest) apply(p *models.Product) {
	p.ARName = req.ARName
	p.EName = req.EName
	p.ARDescription = req.ARDescription
	p.EDescription = req.EDescription
	p.Price = req.Price
	p.SalePrice = req.SalePrice
	p.InStock = req.InStock == nil || *req.InStock
	p.IsFeatured = req.IsFeatured
	p.IsNew = req.IsNew
	p.CategoryID = req.CategoryID
	p.Image = req.Image
	p.VideoURL = req.VideoURL
	p.ExtraImages = pq.StringArray(req.ExtraImages)
	p.Tags = pq.StringArray(req.Tags)
	p.WidthCM = req.WidthCM
	p.HeightCM = req.HeightCM
	p.DepthCM = req.DepthCM
}

// checkCategory rejects writes that reference a category that does not exist.
func checkCategory(db *gorm.DB, id *uuid.UUID) bool {
	if id == nil {
		return true
	}
	var count int64
	if err := db.Model(&models.Category{}).Where("id = ?", *id).Count(&count).Error; err != nil {
		return false
	}
	return count > 0
}

// GetProductsAdmin lists the full catalog for the admin tables, including
// out-of-stock rows, optionally filtered by a bilingual search term.
func GetProductsAdmin(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.Model(&models.Product{}).Preload("Category")

		if search := c.Query("search"); search != "" {
			likePattern := "%" + search + "%"
			query = query.Where(
				"e_name ILIKE ? OR e_description ILIKE ? OR ar_name ILIKE ? OR ar_description ILIKE ?",
				likePattern, likePattern, likePattern, likePattern,
			)
		}

		products := make([]models.Product, 0)
		if err := query.Order("created_at DESC").Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products", "products": []models.Product{}})
			return
		}
		c.JSON(http.StatusOK, products)
	}
}

// CreateProduct creates a new product (admin only).
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req productRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if !checkCategory(db, req.CategoryID) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown category_id"})
			return
		}

		var product models.Product
		req.apply(&product)

		if err := db.Create(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			return
		}

		c.JSON(http.StatusCreated, product)
	}
}

// UpdateProduct replaces the editable fields of a product (admin only).
func UpdateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product id"})
			return
		}

		var product models.Product
		if err := db.First(&product, "id = ?", id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}

		var req productRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if !checkCategory(db, req.CategoryID) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown category_id"})
			return
		}

		req.apply(&product)

		if err := db.Save(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
			return
		}

		c.JSON(http.StatusOK, product)
	}
}

// DeleteProduct soft-deletes a product so it disappears from the catalog
// but stays recoverable in the table.
func DeleteProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product id"})
			return
		}

		result := db.Delete(&models.Product{}, "id = ?", id)
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
	}
}
