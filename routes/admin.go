package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/robowebsolution/glory-home-eg-sub001/auth"
	adminController "github.com/robowebsolution/glory-home-eg-sub001/controllers/admin"
	contactController "github.com/robowebsolution/glory-home-eg-sub001/controllers/contact"
	customerController "github.com/robowebsolution/glory-home-eg-sub001/controllers/customer"
	productController "github.com/robowebsolution/glory-home-eg-sub001/controllers/product"
	projectController "github.com/robowebsolution/glory-home-eg-sub001/controllers/project"
	reviewController "github.com/robowebsolution/glory-home-eg-sub001/controllers/review"
	videoController "github.com/robowebsolution/glory-home-eg-sub001/controllers/video"
	"github.com/robowebsolution/glory-home-eg-sub001/middleware"
)

// SetupAdminRoutes registers all "/admin/*" endpoints behind the
// session + allow-list guard. The login page is the only exemption.
func SetupAdminRoutes(r *gin.Engine, db *gorm.DB) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.RequireAdmin(db))
	{
		adminGroup.GET("/login", auth.LoginGate(db))
		adminGroup.GET("/dashboard", adminController.Dashboard(db))
		adminGroup.GET("/admins", adminController.GetAllAdmins(db))

		// ─────────── Product Management ───────────
		productAdmin := adminGroup.Group("/products")
		{
			productAdmin.GET("", productController.GetProductsAdmin(db))
			productAdmin.POST("", productController.CreateProduct(db))
			productAdmin.PUT("/:id", productController.UpdateProduct(db))
			productAdmin.DELETE("/:id", productController.DeleteProduct(db))
			productAdmin.GET("/export-excel", productController.ExportProductsToExcel(db))
		}

		// ─────────── Category Management ───────────
		categoryAdmin := adminGroup.Group("/categories")
		{
			categoryAdmin.GET("", productController.GetAllCategories(db))
			categoryAdmin.POST("", productController.CreateCategory(db))
			categoryAdmin.PUT("/:id", productController.UpdateCategory(db))
			categoryAdmin.DELETE("/:id", productController.DeleteCategory(db))
		}

		// ─────────── Portfolio Management ───────────
		projectCategoryAdmin := adminGroup.Group("/project-categories")
		{
			projectCategoryAdmin.GET("", projectController.GetProjectCategories(db))
			projectCategoryAdmin.POST("", projectController.CreateProjectCategory(db))
			projectCategoryAdmin.PUT("/:id", projectController.UpdateProjectCategory(db))
			projectCategoryAdmin.DELETE("/:id", projectController.DeleteProjectCategory(db))
		}
		projectAdmin := adminGroup.Group("/projects")
		{
			projectAdmin.GET("", projectController.GetProjects(db))
			projectAdmin.POST("", projectController.CreateProject(db))
			projectAdmin.PUT("/:id", projectController.UpdateProject(db))
			projectAdmin.DELETE("/:id", projectController.DeleteProject(db))
		}

		// ─────────── Testimonials ───────────
		reviewAdmin := adminGroup.Group("/reviews")
		{
			reviewAdmin.GET("", reviewController.GetReviews(db))
			reviewAdmin.POST("", reviewController.CreateReview(db))
			reviewAdmin.PUT("/:id", reviewController.UpdateReview(db))
			reviewAdmin.DELETE("/:id", reviewController.DeleteReview(db))
		}
		customerAdmin := adminGroup.Group("/customers")
		{
			customerAdmin.GET("", customerController.GetCustomers(db))
			customerAdmin.POST("", customerController.CreateCustomer(db))
			customerAdmin.DELETE("/:id", customerController.DeleteCustomer(db))
		}

		// ─────────── Videos ───────────
		videoAdmin := adminGroup.Group("/videos")
		{
			videoAdmin.GET("", videoController.GetVideos(db))
			videoAdmin.POST("", videoController.CreateVideo(db))
			videoAdmin.PUT("/:id", videoController.UpdateVideo(db))
			videoAdmin.DELETE("/:id", videoController.DeleteVideo(db))
		}

		// ─────────── Contact Inbox ───────────
		messageAdmin := adminGroup.Group("/messages")
		{
			messageAdmin.GET("", contactController.GetMessages(db))
			messageAdmin.PUT("/:id/read", contactController.ToggleRead(db))
			messageAdmin.DELETE("/:id", contactController.DeleteMessage(db))
			messageAdmin.GET("/export-excel", contactController.ExportMessagesToExcel(db))
			messageAdmin.GET("/ws", contactController.MessagesWebSocket)
		}
	}
}
