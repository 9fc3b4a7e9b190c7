package contactcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/robowebsolution/glory-home-eg-sub001/models"
)

// SubmitContact serves POST /api/contact. The row write is the primary
// effect; SMTP forwarding and the admin websocket broadcast are
// best-effort and never fail the request.
func SubmitContact(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Name    string `json:"name" binding:"required"`
			Email   string `json:"email" binding:"required,email"`
			Message string `json:"message" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "name, email and message are required"})
			return
		}

		message := models.ContactMessage{
			Name:    req.Name,
			Email:   req.Email,
			Message: req.Message,
		}
		if err := db.Create(&message).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save message"})
			return
		}

		go forwardMessage(message)
		broadcastNewMessage(message)

		c.JSON(http.StatusCreated, gin.H{
			"message": "Message received",
			"data":    message,
		})
	}
}
