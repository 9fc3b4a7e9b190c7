package contactcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"

	"github.com/robowebsolution/glory-home-eg-sub001/models"
)

// GetMessages lists the inbox, newest first, optionally unread only.
func GetMessages(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.Model(&models.ContactMessage{})
		if c.Query("unread") == "1" || c.Query("unread") == "true" {
			query = query.Where("is_read = ?", false)
		}

		messages := make([]models.ContactMessage, 0)
		if err := query.Order("created_at DESC").Find(&messages).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch messages", "messages": []models.ContactMessage{}})
			return
		}
		c.JSON(http.StatusOK, messages)
	}
}

// ToggleRead flips the is_read flag on a message.
func ToggleRead(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid message id"})
			return
		}

		var message models.ContactMessage
		if err := db.First(&message, "id = ?", id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Message not found"})
			return
		}

		if err := db.Model(&message).Update("is_read", !message.IsRead).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update message"})
			return
		}

		message.IsRead = !message.IsRead
		c.JSON(http.StatusOK, message)
	}
}

// DeleteMessage removes a message from the inbox.
func DeleteMessage(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid message id"})
			return
		}

		result := db.Delete(&models.ContactMessage{}, "id = ?", id)
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete message"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Message not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Message deleted successfully"})
	}
}

// ExportMessagesToExcel streams the inbox as an .xlsx download.
func ExportMessagesToExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var messages []models.ContactMessage
		if err := db.Order("created_at DESC").Find(&messages).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch messages"})
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Messages")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		headerRow := sheet.AddRow()
		for _, h := range []string{"ID", "Name", "Email", "Message", "Read", "ReceivedAt"} {
			headerRow.AddCell().SetValue(h)
		}

		for _, m := range messages {
			row := sheet.AddRow()
			row.AddCell().SetValue(m.ID.String())
			row.AddCell().SetValue(m.Name)
			row.AddCell().SetValue(m.Email)
			row.AddCell().SetValue(m.Message)
			row.AddCell().SetValue(m.IsRead)
			row.AddCell().SetValue(m.CreatedAt.Format("2006-01-02 15:04:05"))
		}

		c.Header("Content-Disposition", "attachment; filename=contact-messages.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
			return
		}
	}
}
