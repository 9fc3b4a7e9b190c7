package reviewcontroller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/robowebsolution/glory-home-eg-sub001/models"
)

// GetReviews serves GET /api/reviews, newest first.
func GetReviews(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		reviews := make([]models.Review, 0)
		if err := db.Order("created_at DESC").Find(&reviews).Error; err != nil {
			log.Printf("❌ Failed to fetch reviews: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch reviews", "reviews": []models.Review{}})
			return
		}
		c.JSON(http.StatusOK, reviews)
	}
}

type reviewRequest struct {
	ARComment string `json:"comment_ar"`
	EComment  string `json:"comment_en"`
}

// CreateReview saves a bilingual testimonial (admin only). Either language
// may be empty, but not both; empty text is stored as empty, never
// synthesized from the other language.
func CreateReview(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req reviewRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		if req.ARComment == "" && req.EComment == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "comment_ar or comment_en is required"})
			return
		}

		review := models.Review{
			ARComment: req.ARComment,
			EComment:  req.EComment,
		}
		if err := db.Create(&review).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create review"})
			return
		}

		c.JSON(http.StatusCreated, review)
	}
}

// UpdateReview replaces both comment fields (admin only).
func UpdateReview(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid review id"})
			return
		}

		var review models.Review
		if err := db.First(&review, "id = ?", id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Review not found"})
			return
		}

		var req reviewRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		if req.ARComment == "" && req.EComment == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "comment_ar or comment_en is required"})
			return
		}

		review.ARComment = req.ARComment
		review.EComment = req.EComment

		if err := db.Save(&review).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update review"})
			return
		}

		c.JSON(http.StatusOK, review)
	}
}

// DeleteReview removes a testimonial (admin only).
func DeleteReview(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid review id"})
			return
		}

		result := db.Delete(&models.Review{}, "id = ?", id)
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete review"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Review not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Review deleted successfully"})
	}
}
