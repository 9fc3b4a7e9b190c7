package customercontroller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/robowebsolution/glory-home-eg-sub001/models"
)

// GetCustomers serves GET /api/customers for the customers strip.
func GetCustomers(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		customers := make([]models.Customer, 0)
		if err := db.Order("created_at DESC").Find(&customers).Error; err != nil {
			log.Printf("❌ Failed to fetch customers: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch customers", "customers": []models.Customer{}})
			return
		}
		c.JSON(http.StatusOK, customers)
	}
}

// CreateCustomer adds a customer image record (admin only).
func CreateCustomer(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Image string `json:"image_url" binding:"required,url"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "image_url is required"})
			return
		}

		customer := models.Customer{Image: req.Image}
		if err := db.Create(&customer).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create customer"})
			return
		}

		c.JSON(http.StatusCreated, customer)
	}
}

// DeleteCustomer removes a customer image record (admin only).
func DeleteCustomer(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid customer id"})
			return
		}

		result := db.Delete(&models.Customer{}, "id = ?", id)
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete customer"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Customer not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Customer deleted successfully"})
	}
}
