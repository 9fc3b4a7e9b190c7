package videocontroller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/robowebsolution/glory-home-eg-sub001/models"
)

// GetVideos serves GET /api/videos.
func GetVideos(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		videos := make([]models.Video, 0)
		if err := db.Order("created_at DESC").Find(&videos).Error; err != nil {
			log.Printf("❌ Failed to fetch videos: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "Failed to fetch videos", "videos": []models.Video{}})
			return
		}
		c.JSON(http.StatusOK, gin.H{"ok": true, "videos": videos})
	}
}

type videoRequest struct {
	ARTitle   string `json:"title_ar"`
	ETitle    string `json:"title_en" binding:"required"`
	SrcURL    string `json:"src_url" binding:"required,url"`
	Thumbnail string `json:"thumbnail_url" binding:"omitempty,url"`
	Duration  int    `json:"duration_seconds" binding:"omitempty,gte=0"`
}

// CreateVideo adds a showcase video (admin only).
func CreateVideo(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req videoRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		video := models.Video{
			ARTitle:   req.ARTitle,
			ETitle:    req.ETitle,
			SrcURL:    req.SrcURL,
			Thumbnail: req.Thumbnail,
			Duration:  req.Duration,
		}
		if err := db.Create(&video).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create video"})
			return
		}

		c.JSON(http.StatusCreated, video)
	}
}

// UpdateVideo replaces the editable fields of a video (admin only).
func UpdateVideo(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid video id"})
			return
		}

		var video models.Video
		if err := db.First(&video, "id = ?", id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Video not found"})
			return
		}

		var req videoRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		video.ARTitle = req.ARTitle
		video.ETitle = req.ETitle
		video.SrcURL = req.SrcURL
		video.Thumbnail = req.Thumbnail
		video.Duration = req.Duration

		if err := db.Save(&video).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update video"})
			return
		}

		c.JSON(http.StatusOK, video)
	}
}

// DeleteVideo removes a video (admin only).
func DeleteVideo(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid video id"})
			return
		}

		result := db.Delete(&models.Video{}, "id = ?", id)
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete video"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Video not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Video deleted successfully"})
	}
}
