package projectcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/robowebsolution/glory-home-eg-sub001/models"
)

type projectCategoryRequest struct {
	ARName string `json:"name_ar" binding:"required"`
	EName  string `json:"name_en" binding:"required"`
	Cover  string `json:"cover_url" binding:"omitempty,url"`
}

// CreateProjectCategory creates a portfolio category (admin only).
func CreateProjectCategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req projectCategoryRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "name_ar and name_en are required"})
			return
		}

		category := models.ProjectCategory{
			ARName: req.ARName,
			EName:  req.EName,
			Cover:  req.Cover,
		}
		if err := db.Create(&category).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create project category"})
			return
		}

		category.Slug = models.Slugify(category.EName)
		c.JSON(http.StatusCreated, category)
	}
}

// UpdateProjectCategory updates a portfolio category (admin only).
func UpdateProjectCategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category id"})
			return
		}

		var category models.ProjectCategory
		if err := db.First(&category, "id = ?", id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Project category not found"})
			return
		}

		var req projectCategoryRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "name_ar and name_en are required"})
			return
		}

		category.ARName = req.ARName
		category.EName = req.EName
		category.Cover = req.Cover

		if err := db.Save(&category).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update project category"})
			return
		}

		category.Slug = models.Slugify(category.EName)
		c.JSON(http.StatusOK, category)
	}
}

// DeleteProjectCategory removes a portfolio category and detaches its
// projects in a transaction.
func DeleteProjectCategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category id"})
			return
		}

		var category models.ProjectCategory
		if err := db.First(&category, "id = ?", id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Project category not found"})
			return
		}

		tx := db.Begin()
		if tx.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to start transaction"})
			return
		}

		if err := tx.Model(&models.Project{}).
			Where("category_id = ?", category.ID).
			Update("category_id", nil).Error; err != nil {
			tx.Rollback()
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to detach projects"})
			return
		}

		if err := tx.Delete(&category).Error; err != nil {
			tx.Rollback()
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete project category"})
			return
		}

		if err := tx.Commit().Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to commit transaction"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Project category deleted successfully"})
	}
}

type projectRequest struct {
	ARName        string     `json:"name_ar"`
	EName         string     `json:"name_en" binding:"required"`
	ARDescription string     `json:"description_ar"`
	EDescription  string     `json:"description_en"`
	CategoryID    *uuid.UUID `json:"category_id"`
	Images        []string   `json:"images" binding:"required,min=1,dive,url"`
}

// CreateProject creates a project with its ordered image list in one
// transaction. The first image is the gallery cover.
func CreateProject(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req projectRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		tx := db.Begin()
		if tx.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to start transaction"})
			return
		}

		project := models.Project{
			ARName:        req.ARName,
			EName:         req.EName,
			ARDescription: req.ARDescription,
			EDescription:  req.EDescription,
			CategoryID:    req.CategoryID,
		}
		if err := tx.Create(&project).Error; err != nil {
			tx.Rollback()
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create project"})
			return
		}

		if err := insertImages(tx, project.ID, req.Images); err != nil {
			tx.Rollback()
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save project images"})
			return
		}

		if err := tx.Commit().Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to commit transaction"})
			return
		}

		if err := db.Preload("Images", preloadImages).First(&project, "id = ?", project.ID).Error; err == nil {
			c.JSON(http.StatusCreated, gin.H{"ok": true, "project": project})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"ok": true, "project": project})
	}
}

// UpdateProject replaces project fields and the image list atomically;
// positions are reassigned from the incoming order.
func UpdateProject(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project id"})
			return
		}

		var project models.Project
		if err := db.First(&project, "id = ?", id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
			return
		}

		var req projectRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		tx := db.Begin()
		if tx.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to start transaction"})
			return
		}

		project.ARName = req.ARName
		project.EName = req.EName
		project.ARDescription = req.ARDescription
		project.EDescription = req.EDescription
		project.CategoryID = req.CategoryID

		if err := tx.Save(&project).Error; err != nil {
			tx.Rollback()
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update project"})
			return
		}

		if err := tx.Where("project_id = ?", project.ID).Delete(&models.ProjectImage{}).Error; err != nil {
			tx.Rollback()
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to replace project images"})
			return
		}
		if err := insertImages(tx, project.ID, req.Images); err != nil {
			tx.Rollback()
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save project images"})
			return
		}

		if err := tx.Commit().Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to commit transaction"})
			return
		}

		if err := db.Preload("Images", preloadImages).First(&project, "id = ?", project.ID).Error; err == nil {
			c.JSON(http.StatusOK, gin.H{"ok": true, "project": project})
			return
		}
		c.JSON(http.StatusOK, gin.H{"ok": true, "project": project})
	}
}

// DeleteProject removes a project; images cascade.
func DeleteProject(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project id"})
			return
		}

		tx := db.Begin()
		if tx.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to start transaction"})
			return
		}

		if err := tx.Where("project_id = ?", id).Delete(&models.ProjectImage{}).Error; err != nil {
			tx.Rollback()
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete project images"})
			return
		}

		result := tx.Delete(&models.Project{}, "id = ?", id)
		if result.Error != nil {
			tx.Rollback()
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete project"})
			return
		}
		if result.RowsAffected == 0 {
			tx.Rollback()
			c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
			return
		}

		if err := tx.Commit().Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to commit transaction"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Project deleted successfully"})
	}
}

func insertImages(tx *gorm.DB, projectID uuid.UUID, urls []string) error {
	for i, url := range urls {
		image := models.ProjectImage{
			ProjectID: projectID,
			URL:       url,
			Position:  i,
		}
		if err := tx.Create(&image).Error; err != nil {
			return err
		}
	}
	return nil
}
